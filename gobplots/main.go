// Copyright (c) 2024 Aaron Anderson
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/azanderson/gotupper"
	"github.com/azanderson/gotupper/binutil"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	// kingpin app
	app     = kingpin.New("gobplots", "Read named plot numbers from csv and save them in a gob file.")
	inFile  = app.Flag("in", "A source csv file containing plots.").Short('i').Default("plots.csv").String()
	outFile = app.Flag("out", "A destination gob file containing plots.").Short('o').Default("plots.gob").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	plots := gotupper.LoadPlotsFromCSV(*inFile)
	if err := binutil.Save(*outFile, plots); err != nil {
		log.Fatal(err)
	}
	log.Printf("Saved %v plots in %v\n", len(*plots), *outFile)
}
