package main

import (
	"flag"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/carbocation/pedigree"
)

// Summary accumulates results across all processed family files.
type Summary struct {
	Families int
	People   int
	Worlds   int
	Elapsed  time.Duration
}

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "Number of concurrent families to process")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.PrintDefaults()
		log.Fatalln("No family data files found; pass one or more CSV paths as arguments")
	}

	jobs := make(chan string)
	output := make(chan Summary)
	confirmDone := make(chan struct{})

	go func() {
		accumulator := Summary{}
		for o := range output {
			accumulator.Families += o.Families
			accumulator.People += o.People
			accumulator.Worlds += o.Worlds
			accumulator.Elapsed += o.Elapsed
		}
		log.Println("Final accumulated stats")
		log.Printf("%+v\n", accumulator)
		close(confirmDone)
	}()

	log.Println("Launching", *workers, "workers")
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			Worker(workerID, jobs, output)
		}(i)
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)

	wg.Wait()
	close(output)
	<-confirmDone
}

// Worker loads and infers one family at a time. Each family is independent,
// so workers share nothing but the channels.
func Worker(workerID int, jobs <-chan string, output chan<- Summary) {
	tables := pedigree.DefaultTables()

	for path := range jobs {
		start := time.Now()

		family, err := pedigree.Load(path)
		if err != nil {
			log.Printf("Worker %d: %s: %v\n", workerID, path, err)
			continue
		}

		if _, err := family.Infer(tables); err != nil {
			log.Printf("Worker %d: %s: %v\n", workerID, path, err)
			continue
		}

		elapsed := time.Since(start)
		log.Printf("Worker %d: %s: %d people, %d worlds, %s\n",
			workerID, path, family.Len(),
			pedigree.Worlds(family.Len(), family.ObservedCount()), elapsed)

		output <- Summary{
			Families: 1,
			People:   family.Len(),
			Worlds:   pedigree.Worlds(family.Len(), family.ObservedCount()),
			Elapsed:  elapsed,
		}
	}
}
