// Copyright (c) 2024 Aaron Anderson
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package gotupper

// PlotManager is a struct for the plot library management channel
type PlotManager struct {
	Action ManagementAction
	Plots  Plots
}

// ManagementAction is a type for PlotManager
type ManagementAction int

const (
	// RetrievePlots is a const for retrieving plots
	RetrievePlots ManagementAction = iota
	// AddPlots is a const for adding plots
	AddPlots
	// DeletePlots is a const for deleting plots
	DeletePlots
)
