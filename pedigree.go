package pedigree

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

// ErrMalformedPedigree indicates that the family graph is invalid: a parent
// reference does not resolve to a known person, or a person has exactly one
// parent specified. Inference cannot proceed on an invalid graph.
var ErrMalformedPedigree = errors.New("malformed pedigree")

// Person is one member of a family. Mother and Father are either both empty
// (a founder) or both name other people in the same family.
type Person struct {
	Name   string
	Mother string
	Father string
	Trait  TraitStatus
}

// Founder reports whether this person has no recorded parents.
func (p Person) Founder() bool {
	return p.Mother == "" && p.Father == ""
}

// Family is a validated pedigree: a name-keyed map of people whose parent
// references all resolve within the family. Construct with New or Load;
// immutable thereafter.
type Family struct {
	People map[string]Person

	// names preserves input order so that enumeration and output are stable
	// across runs.
	names []string
}

// New validates people as a pedigree and returns the resulting Family.
func New(people []Person) (*Family, error) {
	f := &Family{
		People: make(map[string]Person, len(people)),
		names:  make([]string, 0, len(people)),
	}

	for _, p := range people {
		if p.Name == "" {
			return nil, pfx.Err(fmt.Errorf("%w: a person has no name", ErrMalformedPedigree))
		}
		if _, exists := f.People[p.Name]; exists {
			return nil, pfx.Err(fmt.Errorf("%w: the name %q appears more than once", ErrMalformedPedigree, p.Name))
		}
		f.People[p.Name] = p
		f.names = append(f.names, p.Name)
	}

	// Validate in input order so that the same malformed pedigree always
	// surfaces the same error.
	for _, name := range f.names {
		p := f.People[name]
		if (p.Mother == "") != (p.Father == "") {
			return nil, pfx.Err(fmt.Errorf("%w: %q has exactly one parent specified; expected both or neither", ErrMalformedPedigree, p.Name))
		}
		for _, parent := range []string{p.Mother, p.Father} {
			if parent == "" {
				continue
			}
			if parent == p.Name {
				return nil, pfx.Err(fmt.Errorf("%w: %q lists themself as a parent", ErrMalformedPedigree, p.Name))
			}
			if _, known := f.People[parent]; !known {
				return nil, pfx.Err(fmt.Errorf("%w: %q lists parent %q, who is not in the family", ErrMalformedPedigree, p.Name, parent))
			}
		}
	}

	return f, nil
}

// Names returns the family members in input order.
func (f *Family) Names() []string {
	return f.names
}

// Len returns the number of people in the family.
func (f *Family) Len() int {
	return len(f.names)
}

// ObservedCount returns the number of people whose trait status is known.
func (f *Family) ObservedCount() int {
	k := 0
	for _, name := range f.names {
		if f.People[name].Trait.Known() {
			k++
		}
	}

	return k
}

// LoadReader parses family data in CSV form from r. The file must carry a
// header naming the fields name, mother, father, and trait; mother and father
// must both be blank or both be names in the file; trait should be 0 or 1 if
// known, blank otherwise.
func LoadReader(r io.Reader) (*Family, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(err)
	}

	col := make(map[string]int, len(header))
	for i, field := range header {
		col[strings.TrimSpace(field)] = i
	}
	for _, field := range []string{"name", "mother", "father", "trait"} {
		if _, ok := col[field]; !ok {
			return nil, pfx.Err(fmt.Errorf("family data header is missing the %q field", field))
		}
	}

	var people []Person
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		trait, err := ParseTraitStatus(record[col["trait"]])
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("person %q: %v", record[col["name"]], err))
		}

		people = append(people, Person{
			Name:   record[col["name"]],
			Mother: record[col["mother"]],
			Father: record[col["father"]],
			Trait:  trait,
		})
	}

	return New(people)
}
