package pedigree

import (
	"errors"
	"fmt"

	"github.com/carbocation/pfx"
)

// ErrZeroProbabilityMass indicates that every enumerated world for some
// person carried probability 0, leaving nothing to normalize. Individually
// observed trait values are always satisfiable under the model, so this
// signals a logic error upstream rather than a recoverable condition.
var ErrZeroProbabilityMass = errors.New("zero probability mass")

// Distribution holds one person's marginal totals: raw accumulated sums
// during enumeration, proper probability distributions after Normalize.
type Distribution struct {
	Gene  [NGeneCounts]float64
	Trait [2]float64 // indexed by TraitIndex
}

// TraitIndex converts a trait value into its slot in Distribution.Trait.
func TraitIndex(hasTrait bool) int {
	if hasTrait {
		return 1
	}

	return 0
}

// Results maps each person's name to their marginal distributions.
type Results map[string]*Distribution

func newResults(f *Family) Results {
	r := make(Results, f.Len())
	for _, name := range f.names {
		r[name] = &Distribution{}
	}

	return r
}

// add folds one world's joint probability into every person's accumulator
// bucket for the gene count and trait value that this world assigns them.
func (r Results) add(genes GeneAssignment, traits TraitAssignment, p float64) {
	for name, d := range r {
		d.Gene[genes[name]] += p
		d.Trait[TraitIndex(traits[name])] += p
	}
}

// merge sums another accumulator into r. Addition is commutative, so merge
// order across parallel workers does not affect the result.
func (r Results) merge(other Results) {
	for name, d := range r {
		o := other[name]
		for g := range d.Gene {
			d.Gene[g] += o.Gene[g]
		}
		d.Trait[0] += o.Trait[0]
		d.Trait[1] += o.Trait[1]
	}
}

// Normalize rescales each person's gene totals and trait totals so that each
// sums to 1, independently per person and per distribution. Returns
// ErrZeroProbabilityMass if any bucket sum is exactly 0.
func (r Results) Normalize() error {
	for name, d := range r {
		var geneSum float64
		for _, v := range d.Gene {
			geneSum += v
		}
		if geneSum == 0 {
			return pfx.Err(fmt.Errorf("%w: gene totals for %q sum to 0", ErrZeroProbabilityMass, name))
		}
		for g := range d.Gene {
			d.Gene[g] /= geneSum
		}

		traitSum := d.Trait[0] + d.Trait[1]
		if traitSum == 0 {
			return pfx.Err(fmt.Errorf("%w: trait totals for %q sum to 0", ErrZeroProbabilityMass, name))
		}
		d.Trait[0] /= traitSum
		d.Trait[1] /= traitSum
	}

	return nil
}
