package pedigree

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// TraitStatus indicates what is known about whether a person exhibits the
// trait. Only TraitAbsent and TraitPresent count as evidence; TraitUnknown
// people vary over both possibilities during enumeration.
type TraitStatus uint8

const (
	TraitUnknown TraitStatus = iota
	TraitAbsent
	TraitPresent
)

func (t TraitStatus) String() string {
	switch t {
	case TraitUnknown:
		return ""
	case TraitAbsent:
		return "0"
	case TraitPresent:
		return "1"

	default:
		return "Illegal selection"
	}
}

// Known reports whether the trait value was actually observed.
func (t TraitStatus) Known() bool {
	return t != TraitUnknown
}

// ParseTraitStatus takes the raw trait field from a family data file and
// returns its standard interpretation. An empty field means the trait was
// never observed for that person.
func ParseTraitStatus(field string) (TraitStatus, error) {
	switch field {
	case "":
		return TraitUnknown, nil
	case "0":
		return TraitAbsent, nil
	case "1":
		return TraitPresent, nil
	}

	return TraitUnknown, pfx.Err(fmt.Errorf("trait field %q is expected to be blank, 0, or 1", field))
}
