package pedigree

import (
	"errors"
	"math"
	"testing"
)

func TestSingleFounderRecoversPrior(t *testing.T) {
	f, err := New([]Person{{Name: "Solo"}})
	if err != nil {
		t.Fatal(err)
	}

	tables := DefaultTables()
	results, err := f.Infer(tables)
	if err != nil {
		t.Fatal(err)
	}

	// With no relatives and no observation, the marginal gene distribution is
	// exactly the configured prior.
	d := results["Solo"]
	for g := Gene0; g <= Gene2; g++ {
		if math.Abs(d.Gene[g]-tables.GenePrior(g)) > probTolerance {
			t.Errorf("Gene count %s: got %f, expected the prior %f", g, d.Gene[g], tables.GenePrior(g))
		}
	}
}

func TestDistributionsSumToOne(t *testing.T) {
	f := canonicalFamily(t)

	results, err := f.Infer(DefaultTables())
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range f.Names() {
		d := results[name]

		var geneSum float64
		for _, p := range d.Gene {
			geneSum += p
		}
		if math.Abs(geneSum-1) > probTolerance {
			t.Errorf("%s: gene distribution sums to %.12f, expected 1", name, geneSum)
		}

		if traitSum := d.Trait[0] + d.Trait[1]; math.Abs(traitSum-1) > probTolerance {
			t.Errorf("%s: trait distribution sums to %.12f, expected 1", name, traitSum)
		}
	}
}

func TestObservedTraitIsNeverContradicted(t *testing.T) {
	// Two founders with unknown traits, one child observed to have the trait.
	// Every world where the child lacks the trait is pruned, so the child's
	// posterior puts all trait mass on true.
	f, err := New([]Person{
		{Name: "mother"},
		{Name: "father"},
		{Name: "child", Mother: "mother", Father: "father", Trait: TraitPresent},
	})
	if err != nil {
		t.Fatal(err)
	}

	results, err := f.Infer(DefaultTables())
	if err != nil {
		t.Fatal(err)
	}

	d := results["child"]
	pTrue := d.Trait[TraitIndex(true)]
	pFalse := d.Trait[TraitIndex(false)]

	if pTrue <= 0 {
		t.Errorf("Got p(trait)=%f for the observed child, expected > 0", pTrue)
	}
	if pFalse != 0 {
		t.Errorf("Got p(no trait)=%f for the observed child, expected 0", pFalse)
	}
	if math.Abs(pTrue+pFalse-1) > probTolerance {
		t.Errorf("Child trait distribution sums to %f, expected 1", pTrue+pFalse)
	}
}

func TestWorldCounts(t *testing.T) {
	if got := Worlds(0, 0); got != 1 {
		t.Errorf("Got %d, expected 1", got)
	}
	if got := Worlds(3, 0); got != 216 {
		t.Errorf("Got %d, expected 3^3 * 2^3 = 216", got)
	}
	if got := Worlds(3, 1); got != 108 {
		t.Errorf("Got %d, expected 3^3 * 2^2 = 108", got)
	}

	// The canonical family has 3 people with 2 observed traits, so pruning
	// leaves 3^3 * 2^1 scored worlds.
	f := canonicalFamily(t)

	traitAssignments := 0
	traits := make(TraitAssignment, f.Len())
	f.walkTraits(0, traits, func(TraitAssignment) {
		traitAssignments++
	})

	scored := traitAssignments * 27
	if want := Worlds(f.Len(), f.ObservedCount()); scored != want {
		t.Errorf("Scored %d worlds, expected %d", scored, want)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	f := canonicalFamily(t)
	tables := DefaultTables()

	sequential, err := f.Infer(tables)
	if err != nil {
		t.Fatal(err)
	}

	parallel, err := f.InferParallel(tables, 3)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range f.Names() {
		s, p := sequential[name], parallel[name]
		for g := range s.Gene {
			if math.Abs(s.Gene[g]-p.Gene[g]) > 1e-12 {
				t.Errorf("%s gene %d: sequential %.15f vs parallel %.15f", name, g, s.Gene[g], p.Gene[g])
			}
		}
		for i := range s.Trait {
			if math.Abs(s.Trait[i]-p.Trait[i]) > 1e-12 {
				t.Errorf("%s trait slot %d: sequential %.15f vs parallel %.15f", name, i, s.Trait[i], p.Trait[i])
			}
		}
	}
}

func TestZeroProbabilityMass(t *testing.T) {
	// A founder who always carries 0 copies, never expresses the trait, and
	// yet was observed with it: every world scores 0.
	tables := Tables{
		Prior:    [NGeneCounts]float64{1, 0, 0},
		Mutation: 0,
		Trait:    [NGeneCounts]float64{0, 0, 0},
	}
	if err := tables.Validate(); err != nil {
		t.Fatal(err)
	}

	f, err := New([]Person{{Name: "Solo", Trait: TraitPresent}})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.Infer(tables); !errors.Is(err, ErrZeroProbabilityMass) {
		t.Errorf("Got %v, expected ErrZeroProbabilityMass", err)
	}
}

func TestInferRejectsInvalidTables(t *testing.T) {
	f := canonicalFamily(t)

	bad := DefaultTables()
	bad.Prior = [NGeneCounts]float64{0.9, 0.2, 0.1}

	if _, err := f.Infer(bad); err == nil {
		t.Error("Expected an error for tables whose prior does not sum to 1")
	}
}
