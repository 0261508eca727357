//go:build cgo

package pedigree

// If cgo is enabled, we will use the mattn cgo sqlite3 driver. It is faster
// than the modernc sqlite driver.

import (
	"strings"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

const whichSQLiteDriver = "sqlite3"

// OpenPDI opens the pedigree index at path, creating the file if it does not
// yet exist.
func OpenPDI(path string) (*PDIIndex, error) {
	pdi := &PDIIndex{
		Metadata: &PDIMetadata{},
	}

	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html . It seems that sqlite3 permitted
	// URI filenames without the file: prefix, but that is not standard.
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	pdi.DB = db

	// A freshly created index has no metadata yet; ignore any error
	_ = pdi.DB.Get(pdi.Metadata, "SELECT * FROM Metadata LIMIT 1")

	return pdi, nil
}
