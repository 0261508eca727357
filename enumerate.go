package pedigree

import (
	"github.com/carbocation/pfx"
)

// Infer enumerates every joint gene/trait assignment consistent with the
// family's observed trait values, scores each with JointProbability, and
// returns the normalized marginal distributions for every person.
//
// The enumeration space is 3^n gene assignments crossed with 2^(n-k) trait
// assignments for n people of whom k have observed traits; worlds that would
// conflict with an observation are never scored.
func (f *Family) Infer(tables Tables) (Results, error) {
	if err := tables.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	results := newResults(f)
	genes := make(GeneAssignment, f.Len())
	traits := make(TraitAssignment, f.Len())

	f.walkTraits(0, traits, func(traits TraitAssignment) {
		f.enumerateGenes(tables, 0, genes, traits, results)
	})

	if err := results.Normalize(); err != nil {
		return nil, pfx.Err(err)
	}

	return results, nil
}

// walkTraits recursively assigns a trait value to each person from position i
// onward and invokes fn once per complete evidence-consistent assignment.
// People with a known trait status keep that value; everyone else varies over
// both possibilities.
func (f *Family) walkTraits(i int, traits TraitAssignment, fn func(TraitAssignment)) {
	if i == len(f.names) {
		fn(traits)
		return
	}

	name := f.names[i]
	switch f.People[name].Trait {
	case TraitPresent:
		traits[name] = true
		f.walkTraits(i+1, traits, fn)
	case TraitAbsent:
		traits[name] = false
		f.walkTraits(i+1, traits, fn)
	default:
		for _, hasTrait := range []bool{false, true} {
			traits[name] = hasTrait
			f.walkTraits(i+1, traits, fn)
		}
	}
}

// enumerateGenes recursively assigns a gene count to each person from
// position i onward; at each complete assignment it scores the world and
// folds the result into the accumulators.
func (f *Family) enumerateGenes(tables Tables, i int, genes GeneAssignment, traits TraitAssignment, acc Results) {
	if i == len(f.names) {
		acc.add(genes, traits, f.JointProbability(tables, genes, traits))
		return
	}

	name := f.names[i]
	for g := Gene0; g <= Gene2; g++ {
		genes[name] = g
		f.enumerateGenes(tables, i+1, genes, traits, acc)
	}
}
