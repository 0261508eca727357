package pedigree

import (
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// PDIIndex wraps a pedigree index: a SQLite file (.pdi) holding a family's
// members and metadata about when and from what the index was built.
type PDIIndex struct {
	DB       *sqlx.DB
	Metadata *PDIMetadata
}

func (p *PDIIndex) Close() error {
	return p.DB.Close()
}

// PersonRow conforms to the data found in the rows of the SQLite table
// "Person" from pedigree index (.pdi) files, and can be easily parsed with
// sqlx.
type PersonRow struct {
	Name   string `db:"name"`
	Mother string `db:"mother"`
	Father string `db:"father"`
	Trait  string `db:"trait"`
}

// PDIMetadata conforms to the data found in the rows of the SQLite table
// "Metadata" from pedigree index files.
type PDIMetadata struct {
	SourceFilename    string `db:"source_filename"`
	NPeople           uint   `db:"n_people"`
	IndexCreationTime Time   `db:"index_creation_time"`
}

// ReadFamily loads the complete, validated family back out of the index.
func (p *PDIIndex) ReadFamily() (*Family, error) {
	rows, err := p.DB.Queryx("SELECT name, mother, father, trait FROM Person ORDER BY rowid ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	var row PersonRow
	var people []Person
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}

		trait, err := ParseTraitStatus(row.Trait)
		if err != nil {
			return nil, pfx.Err(err)
		}

		people = append(people, Person{
			Name:   row.Name,
			Mother: row.Mother,
			Father: row.Father,
			Trait:  trait,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return New(people)
}

const pdiSchema = `
CREATE TABLE IF NOT EXISTS Person (
	name TEXT NOT NULL PRIMARY KEY,
	mother TEXT NOT NULL,
	father TEXT NOT NULL,
	trait TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS Metadata (
	source_filename TEXT,
	n_people INT,
	index_creation_time INT
);
`

// CreatePDI writes family into a pedigree index at path, recording source as
// the filename the family was loaded from. The trait column stores the same
// blank/0/1 encoding as the family data files.
func CreatePDI(path string, family *Family, source string) error {
	pdi, err := OpenPDI(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer pdi.Close()

	if _, err := pdi.DB.Exec(pdiSchema); err != nil {
		return pfx.Err(err)
	}

	tx, err := pdi.DB.Beginx()
	if err != nil {
		return pfx.Err(err)
	}

	for _, name := range family.Names() {
		person := family.People[name]
		if _, err := tx.Exec("INSERT INTO Person (name, mother, father, trait) VALUES (?, ?, ?, ?)",
			person.Name, person.Mother, person.Father, person.Trait.String()); err != nil {
			tx.Rollback()
			return pfx.Err(err)
		}
	}

	if _, err := tx.Exec("INSERT INTO Metadata (source_filename, n_people, index_creation_time) VALUES (?, ?, ?)",
		source, family.Len(), time.Now().Unix()); err != nil {
		tx.Rollback()
		return pfx.Err(err)
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
