package pedigree

// GeneAssignment maps every person in a family to a candidate gene count for
// one world. Ephemeral: built up during enumeration and consumed immediately.
type GeneAssignment map[string]GeneCount

// TraitAssignment maps every person in a family to a candidate trait value
// for one world.
type TraitAssignment map[string]bool

// JointProbability computes the probability of one complete joint assignment
// of gene counts and trait values under the inheritance network. Each
// person's gene count depends only on the parents' gene counts (or on the
// prior for founders), each person's trait depends only on their own gene
// count, and people are otherwise independent, so the joint probability is
// the product of the per-person factors.
//
// JointProbability does not mutate the family or the assignments.
func (f *Family) JointProbability(tables Tables, genes GeneAssignment, traits TraitAssignment) float64 {
	joint := 1.0

	for _, name := range f.names {
		person := f.People[name]
		g := genes[name]

		var geneProb float64
		if person.Founder() {
			geneProb = tables.GenePrior(g)
		} else {
			// Each parent independently transmits the variant or not; combine
			// the two transmission events into the probability of the child
			// ending up with exactly g copies.
			pMother := tables.PassProbability(genes[person.Mother])
			pFather := tables.PassProbability(genes[person.Father])

			switch g {
			case Gene0:
				geneProb = (1 - pMother) * (1 - pFather)
			case Gene1:
				geneProb = pMother*(1-pFather) + (1-pMother)*pFather
			case Gene2:
				geneProb = pMother * pFather
			}
		}

		joint *= geneProb * tables.TraitProbability(g, traits[name])
	}

	return joint
}
