package main

import (
	"flag"
	"log"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/carbocation/pedigree"
	"github.com/carbocation/pfx"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	path := flag.String("family", "", "Filename of the family data CSV to process")
	idxPath := flag.String("pdi", "", "Filename of the pdi (index) file to create")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No family data file found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	if *idxPath == "" {
		*idxPath = *path + ".pdi"
	}

	if strings.HasPrefix(*idxPath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*idxPath = filepath.Join(usr.HomeDir, (*idxPath)[2:])
	}

	log.Println("Opening family data:", *path)
	family, err := pedigree.Load(*path)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Loaded", family.Len(), "people,", family.ObservedCount(), "with observed traits")

	log.Println("Using the", pedigree.WhichSQLiteDriver(), "SQLite driver")
	if err := pedigree.CreatePDI(*idxPath, family, *path); err != nil {
		log.Fatalln(err)
	}
	log.Println("Wrote index:", *idxPath)

	// Read it back as a consistency check
	pdi, err := pedigree.OpenPDI(*idxPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer pdi.Close()

	log.Printf("PDI Metadata: source=%s n_people=%d created=%s\n",
		pdi.Metadata.SourceFilename,
		pdi.Metadata.NPeople,
		time.Time(pdi.Metadata.IndexCreationTime).Format(time.RFC3339))

	indexed, err := pdi.ReadFamily()
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Read back", indexed.Len(), "people from the index")
}
