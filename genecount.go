package pedigree

// GeneCount is the number of copies of the variant allele that a person carries
type GeneCount uint8

const (
	Gene0 GeneCount = iota
	Gene1
	Gene2
)

// NGeneCounts is the size of the gene count domain
const NGeneCounts = 3

func (g GeneCount) String() string {
	switch g {
	case Gene0:
		return "0"
	case Gene1:
		return "1"
	case Gene2:
		return "2"

	default:
		return "Illegal selection"
	}
}
