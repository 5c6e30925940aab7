// Copyright (c) 2024 Aaron Anderson
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package gotupper

// PlotRecord stores the Plot contents in string with json tags
type PlotRecord struct {
	Name string `json:"Name"`
	K    string `json:"K"`
}
