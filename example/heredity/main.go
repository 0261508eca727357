package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pedigree"
	"github.com/carbocation/pfx"
)

func main() {
	path := flag.String("family", "", "Filename of the family data CSV to process. May be .gz or .zst compressed, or a gs:// path")
	workers := flag.Int("workers", 1, "Number of parallel inference workers")
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

	family, err := pedigree.Load(*path)
	if err != nil {
		log.Fatalln(err)
	}

	results, err := family.InferParallel(pedigree.DefaultTables(), *workers)
	if err != nil {
		log.Fatalln(err)
	}

	for _, name := range family.Names() {
		d := results[name]
		fmt.Printf("%s:\n", name)
		fmt.Printf("  Gene:\n")
		for g := pedigree.Gene0; g <= pedigree.Gene2; g++ {
			fmt.Printf("    %s: %.4f\n", g, d.Gene[g])
		}
		fmt.Printf("  Trait:\n")
		fmt.Printf("    True: %.4f\n", d.Trait[pedigree.TraitIndex(true)])
		fmt.Printf("    False: %.4f\n", d.Trait[pedigree.TraitIndex(false)])
	}
}
