package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/carbocation/bitcursor"
	"github.com/carbocation/pfx"
)

// maxRun is the largest run an 8-bit run-length code could represent; longer
// runs are split the way such a codec would split them.
const maxRun = 255

func main() {
	path := flag.String("filename", "", "Filename of the file whose bit runs to survey")
	flag.Parse()

	if *path == "" {
		log.Fatalln("-filename is required")
	}

	c, err := bitcursor.Open(*path)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	defer c.Close()

	// Run-length codes conventionally start counting a run of zeros.
	current := false
	run := 0
	runs := 0

	for !c.IsAtEnd() {
		bit, err := c.ReadBit()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}

		switch {
		case bit != current:
			fmt.Println(run)
			runs++
			current = bit
			run = 1
		case run == maxRun:
			fmt.Println(run)
			fmt.Println(0)
			runs += 2
			run = 1
		default:
			run++
		}
	}
	fmt.Println(run)
	runs++

	log.Println("Emitted", runs, "runs")
}
