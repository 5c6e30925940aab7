// Copyright (c) 2024 Aaron Anderson
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package gotupper

import "bytes"

const (
	// GridWidth is the number of pixel columns in a plot
	GridWidth = 106
	// GridHeight is the number of pixel rows in a plot
	GridHeight = 17
	// BitmapBits is the fixed bit string length backing a plot
	BitmapBits = GridWidth * GridHeight
)

// Grid is one plot of Tupper's formula: 106 columns of 17 binary
// cells each, indexed [column][row], 1 = filled and 0 = empty
type Grid [GridWidth][GridHeight]uint8

// Bit returns the cell at grid column x and row y
func (g Grid) Bit(x, y int) uint8 {
	return g[x][y]
}

// Rows returns the grid as 17 strings of '0'/'1' in visual order:
// the leftmost drawn column first in each string, the top row first.
// Grid column i is drawn at the (106-i)-th visual column.
func (g Grid) Rows() []string {
	rows := make([]string, GridHeight)
	for j := 0; j < GridHeight; j++ {
		row := make([]byte, GridWidth)
		for v := 0; v < GridWidth; v++ {
			row[v] = '0' + g[GridWidth-1-v][j]
		}
		rows[j] = string(row)
	}
	return rows
}

// String renders the grid as ASCII art, '#' for filled cells and '.'
// for empty ones, in the same visual order as Rows
func (g Grid) String() string {
	var buf bytes.Buffer
	for j := 0; j < GridHeight; j++ {
		for v := 0; v < GridWidth; v++ {
			if g[GridWidth-1-v][j] == 1 {
				buf.WriteRune('#')
			} else {
				buf.WriteRune('.')
			}
		}
		buf.WriteRune('\n')
	}
	return buf.String()
}
