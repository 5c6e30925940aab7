// Copyright (c) 2024 Aaron Anderson
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package gotupper

import (
	"bytes"
	"encoding/csv"
	"encoding/gob"
	"io"
	"os"
)

// Plots holds a slice of pointers to Plot
type Plots []*Plot

// GetIndexOf finds the index in Plots
func (plots Plots) GetIndexOf(p *Plot) int {
	index := 0
	for _, plot := range plots {
		if plot.IsDuplicate(p) {
			return index
		}
		index++
	}
	return -1
}

// MarshalBinary overwrites the marshaller in gob encoding Plots
func (plots *Plots) MarshalBinary() (_ []byte, err error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	// Size of plots
	enc.Encode(len(*plots))
	for _, plot := range *plots {
		// Plot
		enc.Encode(plot)
	}

	return buf.Bytes(), err
}

// UnmarshalBinary overwrites the unmarshaller in gob decoding Plots
func (plots *Plots) UnmarshalBinary(data []byte) (err error) {
	dec := gob.NewDecoder(bytes.NewReader(data))

	// Size of Plots
	var plotsSize int
	if err = dec.Decode(&plotsSize); err != nil {
		return
	}

	for i := 0; i < plotsSize; i++ {
		plot := Plot{}
		// Plot
		if err = dec.Decode(&plot); err != nil {
			return
		}
		*plots = append(*plots, &plot)
	}

	return
}

// LoadPlotsFromCSV reads name,k records from a csv file and returns a
// pointer to Plots; rows that fail validation are skipped
func LoadPlotsFromCSV(inputFile string) *Plots {
	// Check inputFile
	fp, err := os.Open(inputFile)
	if err != nil {
		panic(err)
	}
	defer fp.Close()

	// Read CSV and store in Plots
	plots := Plots{}
	reader := csv.NewReader(fp)
	reader.Comma = ','
	reader.LazyQuotes = true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if len(record) == 2 {
			plotRecord := &PlotRecord{record[0], record[1]} // Name, K
			plot, err := NewPlot(plotRecord)
			if err != nil {
				continue
			}
			plots = append(plots, plot)
		}
	}

	return &plots
}

// WriteToCSV saves the plot library as name,k records
func (plots Plots) WriteToCSV(output string) error {
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	for _, plot := range plots {
		record := []string{plot.Name, plot.K.String()}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
