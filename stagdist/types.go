// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stagdist implements the parallel staggered-grid data distribution
// engine: the local<->global index numbering, ghost halo, and scatter plans
// for a 3-D regular grid partitioned across an MPI communicator.
package stagdist

// Axis indexes the three spatial axes, always in x, y, z order.
const (
	X = 0
	Y = 1
	Z = 2
)

// Auto marks a rank-grid component to be chosen by RankGridChooser rather
// than supplied by the caller.
const Auto = -1

// BoundaryType is one of the three boundary conditions an axis may have.
type BoundaryType int

// boundary types
const (
	BoundaryNone BoundaryType = iota
	BoundaryGhosted
	BoundaryPeriodic
)

func (b BoundaryType) String() string {
	switch b {
	case BoundaryNone:
		return "none"
	case BoundaryGhosted:
		return "ghosted"
	case BoundaryPeriodic:
		return "periodic"
	}
	return "invalid"
}

// StencilType is one of the three ghost-communication stencils.
type StencilType int

// stencil types
const (
	StencilNone StencilType = iota
	StencilStar
	StencilBox
)

func (s StencilType) String() string {
	switch s {
	case StencilNone:
		return "none"
	case StencilStar:
		return "star"
	case StencilBox:
		return "box"
	}
	return "invalid"
}

// Stratum is one of the four cell strata carrying degrees of freedom.
type Stratum int

// strata. Named with a Dof prefix to avoid colliding with the identically
// named Location constants (a cell's canonical vertex/edge/face/element
// sub-locations use the same words, but Location and Stratum are distinct
// axes of classification).
const (
	DofVertex Stratum = iota
	DofEdge
	DofFace
	DofElement
)

// Epe returns entries-per-element: the per-cell dof count
// d0 + 3*d1 + 3*d2 + d3.
func Epe(dof [4]int) int {
	return dof[0] + 3*dof[1] + 3*dof[2] + dof[3]
}

// faceDof returns the dof count living on one axis-aligned face:
// d0 + 2*d1 + d2 (a face carries its own d2, plus the two edges and the
// corner it borders that are not double counted elsewhere).
func faceDof(dof [4]int) int { return dof[0] + 2*dof[1] + dof[2] }

// edgeDof returns the dof count living on one edge: d0 + d1.
func edgeDof(dof [4]int) int { return dof[0] + dof[1] }

// cornerDof returns the dof count living on one vertex: d0.
func cornerDof(dof [4]int) int { return dof[0] }
