package pedigree

import (
	"github.com/carbocation/pfx"
)

// InferParallel produces the same results as Infer, sharding the
// evidence-consistent trait assignments across the given number of workers.
// Every candidate world is independent and the accumulators merge by
// summation, so this is safe; it only pays off for larger families, since the
// whole space is tiny for small ones.
//
// Each worker keeps its own accumulator, and the accumulators are merged
// after all workers finish rather than mutated concurrently.
func (f *Family) InferParallel(tables Tables, workers int) (Results, error) {
	if workers <= 1 {
		return f.Infer(tables)
	}

	if err := tables.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	jobs := make(chan TraitAssignment)
	output := make(chan Results)

	for w := 0; w < workers; w++ {
		go func() {
			acc := newResults(f)
			genes := make(GeneAssignment, f.Len())
			for traits := range jobs {
				f.enumerateGenes(tables, 0, genes, traits, acc)
			}
			output <- acc
		}()
	}

	go func() {
		traits := make(TraitAssignment, f.Len())
		f.walkTraits(0, traits, func(traits TraitAssignment) {
			// The recursion reuses one map, so each worker gets its own copy.
			shard := make(TraitAssignment, len(traits))
			for name, hasTrait := range traits {
				shard[name] = hasTrait
			}
			jobs <- shard
		})
		close(jobs)
	}()

	results := newResults(f)
	for w := 0; w < workers; w++ {
		results.merge(<-output)
	}

	if err := results.Normalize(); err != nil {
		return nil, pfx.Err(err)
	}

	return results, nil
}
