// Copyright (c) 2024 Aaron Anderson
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package gotupper

import (
	"bytes"
	"encoding/gob"
	"math/big"
)

// Plot holds a single named entry of the plot library
type Plot struct {
	Name string
	K    *big.Int
}

// IsEqual to another Plot by taking one as its argument
// return true if they are the same
func (p *Plot) IsEqual(pp *Plot) bool {
	if p.Name == pp.Name && p.K.Cmp(pp.K) == 0 {
		return true
	}
	return false
}

// IsDuplicate to test another Plot by comparing only the names
// return true if the names are the same
func (p *Plot) IsDuplicate(pp *Plot) bool {
	return p.Name == pp.Name
}

// Grid decodes the plot number into its pixel grid
func (p *Plot) Grid() Grid {
	return Decode(p.K)
}

// InString returns the Plot contents in a PlotRecord
func (p *Plot) InString() *PlotRecord {
	return &PlotRecord{
		Name: p.Name,
		K:    p.K.String(),
	}
}

// MarshalBinary overwrites the marshaller in gob encoding *Plot
func (p *Plot) MarshalBinary() (_ []byte, err error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	enc.Encode(p.Name)
	enc.Encode(p.K)
	return buf.Bytes(), err
}

// UnmarshalBinary overwrites the unmarshaller in gob decoding *Plot
func (p *Plot) UnmarshalBinary(data []byte) (err error) {
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err = dec.Decode(&p.Name); err != nil {
		return
	}
	if err = dec.Decode(&p.K); err != nil {
		return
	}
	return
}

// NewPlot validates a PlotRecord and builds a Plot from it
func NewPlot(record *PlotRecord) (*Plot, error) {
	k, err := ParseK(record.K)
	if err != nil {
		return nil, err
	}
	return &Plot{Name: record.Name, K: k}, nil
}
