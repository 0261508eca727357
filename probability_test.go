package pedigree

import (
	"math"
	"testing"
)

func TestPassProbability(t *testing.T) {
	tables := DefaultTables()

	if got := tables.PassProbability(Gene0); got != tables.Mutation {
		t.Errorf("Got %f, expected the mutation rate %f", got, tables.Mutation)
	}

	// The two inheritance paths for a heterozygous parent cancel mutation to
	// exactly 0.5
	if got := tables.PassProbability(Gene1); got != 0.5 {
		t.Errorf("Got %f, expected 0.5", got)
	}

	if got := tables.PassProbability(Gene2); got != 1-tables.Mutation {
		t.Errorf("Got %f, expected %f", got, 1-tables.Mutation)
	}
}

func TestTraitProbabilitySumsToOne(t *testing.T) {
	tables := DefaultTables()

	for g := Gene0; g <= Gene2; g++ {
		sum := tables.TraitProbability(g, true) + tables.TraitProbability(g, false)
		if math.Abs(sum-1) > probTolerance {
			t.Errorf("Trait probabilities for gene count %s sum to %f, expected 1", g, sum)
		}
	}
}

func TestTransmissionDistributionSumsToOne(t *testing.T) {
	// Parents with gene counts 0 and 2: the child gene count distribution is
	// (1-m)m, m^2+(1-m)^2, (1-m)m
	tables := DefaultTables()
	m := tables.Mutation

	pMother := tables.PassProbability(Gene0)
	pFather := tables.PassProbability(Gene2)

	child0 := (1 - pMother) * (1 - pFather)
	child1 := pMother*(1-pFather) + (1-pMother)*pFather
	child2 := pMother * pFather

	if math.Abs(child0-(1-m)*m) > probTolerance {
		t.Errorf("Got %f for child gene count 0, expected %f", child0, (1-m)*m)
	}
	if math.Abs(child1-(m*m+(1-m)*(1-m))) > probTolerance {
		t.Errorf("Got %f for child gene count 1, expected %f", child1, m*m+(1-m)*(1-m))
	}
	if math.Abs(child2-(1-m)*m) > probTolerance {
		t.Errorf("Got %f for child gene count 2, expected %f", child2, (1-m)*m)
	}

	if sum := child0 + child1 + child2; math.Abs(sum-1) > probTolerance {
		t.Errorf("Child gene count distribution sums to %f, expected 1", sum)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultTables().Validate(); err != nil {
		t.Fatal(err)
	}

	bad := DefaultTables()
	bad.Prior = [NGeneCounts]float64{0.5, 0.3, 0.3}
	if err := bad.Validate(); err == nil {
		t.Error("Expected an error for a prior that does not sum to 1")
	}

	bad = DefaultTables()
	bad.Mutation = 1.5
	if err := bad.Validate(); err == nil {
		t.Error("Expected an error for a mutation rate above 1")
	}
}
