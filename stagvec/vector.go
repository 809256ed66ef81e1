// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stagvec implements the global and local vectors a Distribution's
// scatter plans move data between: a flat global slice sized by
// Distribution.GlobalCount, and a flat local (ghosted) slice sized by
// Distribution.LocalLength.
package stagvec

import "github.com/cpmech/gofemstag/stagdist"

// Global is a vector in the flat global numbering, one entry per dof this
// communicator's ranks collectively own.
type Global struct {
	Data []float64
}

// NewGlobal allocates a Global vector sized from d.
func NewGlobal(d *stagdist.Distribution) *Global {
	return &Global{Data: make([]float64, d.GlobalCount())}
}

// Local is a vector in one rank's local (ghosted) numbering, one entry per
// slot in its ghost box, including dummy entries (never written, always
// left at zero).
type Local struct {
	Data []float64
}

// NewLocal allocates a Local vector sized from d.
func NewLocal(d *stagdist.Distribution) *Local {
	return &Local{Data: make([]float64, d.LocalLength())}
}

// At returns the component-th dof at sub-location loc of cell (i,j,k),
// where (i,j,k) are global element coordinates of a cell inside this rank's
// ghost box (ghost cells included; GhostCorners' start maps to local cell 0).
func (v *Local) At(d *stagdist.Distribution, i, j, k int, loc stagdist.Location, component int) float64 {
	return v.Data[v.slot(d, i, j, k, loc, component)]
}

// Set writes the component-th dof at sub-location loc of cell (i,j,k).
func (v *Local) Set(d *stagdist.Distribution, i, j, k int, loc stagdist.Location, component int, value float64) {
	v.Data[v.slot(d, i, j, k, loc, component)] = value
}

func (v *Local) slot(d *stagdist.Distribution, i, j, k int, loc stagdist.Location, component int) int {
	start, n := d.GhostCorners()
	epe := d.EntriesPerElement()
	cell := (i - start[stagdist.X]) + (j-start[stagdist.Y])*n[stagdist.X] + (k-start[stagdist.Z])*n[stagdist.X]*n[stagdist.Y]
	return cell*epe + d.LocationSlot(loc) + component
}
