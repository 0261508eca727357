package pedigree

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// probTolerance is the absolute tolerance used when checking that a
// distribution sums to 1.
const probTolerance = 1e-9

// Tables holds the probability configuration for the inheritance network: the
// unconditional gene count distribution for founders, the mutation rate
// applied when a copy is transmitted, and the trait emission distribution per
// gene count. Construct once, treat as read-only.
type Tables struct {
	Prior    [NGeneCounts]float64 // P(gene count) for a person with no recorded parents
	Mutation float64              // probability that a transmitted copy flips value
	Trait    [NGeneCounts]float64 // P(trait present | gene count)
}

// DefaultTables returns the standard configuration.
func DefaultTables() Tables {
	return Tables{
		Prior:    [NGeneCounts]float64{0.96, 0.03, 0.01},
		Mutation: 0.01,
		Trait:    [NGeneCounts]float64{0.01, 0.56, 0.65},
	}
}

// Validate confirms that the prior sums to 1 and that every entry is a
// probability. Tables that fail validation produce meaningless inferences.
func (t Tables) Validate() error {
	var sum float64
	for g, p := range t.Prior {
		if p < 0 || p > 1 {
			return pfx.Err(fmt.Errorf("prior for gene count %d is %f, which is not a probability", g, p))
		}
		sum += p
	}
	if math.Abs(sum-1) > probTolerance {
		return pfx.Err(fmt.Errorf("gene count prior sums to %f; expected 1", sum))
	}

	if t.Mutation < 0 || t.Mutation > 1 {
		return pfx.Err(fmt.Errorf("mutation rate is %f, which is not a probability", t.Mutation))
	}

	for g, p := range t.Trait {
		if p < 0 || p > 1 {
			return pfx.Err(fmt.Errorf("trait probability for gene count %d is %f, which is not a probability", g, p))
		}
	}

	return nil
}

// GenePrior returns the unconditional probability that a founder carries g
// copies of the variant.
func (t Tables) GenePrior(g GeneCount) float64 {
	return t.Prior[g]
}

// PassProbability returns the probability that a parent carrying g copies
// transmits one copy of the variant to a child, folding in mutation. A parent
// with one copy transmits at exactly 0.5: the mutated and unmutated paths,
// 0.5*(1-m) + 0.5*m, cancel the mutation term.
func (t Tables) PassProbability(g GeneCount) float64 {
	switch g {
	case Gene0:
		return t.Mutation
	case Gene1:
		return 0.5
	}

	return 1 - t.Mutation
}

// TraitProbability returns P(trait = hasTrait | gene count = g).
func (t Tables) TraitProbability(g GeneCount, hasTrait bool) float64 {
	if hasTrait {
		return t.Trait[g]
	}

	return 1 - t.Trait[g]
}
