// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stagmat wraps gosl/la's sparse assembly and solve API (la.Triplet
// and la.LinSol, the same pair fem.Domain assembles its Jacobian with) for
// operators defined over a Distribution's local-to-global map.
package stagmat

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gofemstag/stagdist"
)

// Matrix is a square operator over the global numbering, assembled entry by
// entry from each rank's local stencil footprint and solved with gosl/la's
// triplet-backed linear solver. Grounded on fem.Domain's Kb/LinSol pair:
// the same la.Triplet assembly target and la.GetSolver-selected la.LinSol
// (umfpack for a single rank, mumps once distributed).
type Matrix struct {
	triplet la.Triplet
	solver  la.LinSol
	ready   bool
}

// New allocates a Matrix sized for d's global numbering, with nnzMax the
// expected maximum number of nonzero entries (local dof count times
// entries-per-element times the stencil footprint is a reasonable upper
// bound, mirroring fem.Domain's o.Kb.Init(o.Nyb, o.Nyb, o.NnzKb+2*o.NnzA)),
// and picks the solver fem.Domain's NewDomain picks: mumps once d spans
// more than one rank, umfpack otherwise.
func New(d *stagdist.Distribution, nnzMax int) *Matrix {
	m := &Matrix{}
	n := int(d.GlobalCount())
	m.triplet.Init(n, n, nnzMax)
	name := "umfpack"
	if d.Comm.Distributed() {
		name = "mumps"
	}
	m.solver = la.GetSolver(name)
	return m
}

// Start begins a new assembly pass, discarding any previously accumulated
// entries.
func (m *Matrix) Start() { m.triplet.Start() }

// Put accumulates value into the (globalRow, globalCol) entry. Safe to call
// more than once per entry; duplicate puts are summed, matching
// la.Triplet's own accumulation semantics.
func (m *Matrix) Put(globalRow, globalCol int64, value float64) {
	m.triplet.Put(int(globalRow), int(globalCol), value)
}

// Factor prepares the linear solver from the assembled triplet, mirroring
// fem.Domain's d.LinSol.InitR / d.LinSol.Fact pair.
func (m *Matrix) Factor(symmetric, verbose, timing bool) error {
	m.solver.InitR(&m.triplet, symmetric, verbose, timing)
	m.ready = true
	return m.solver.Fact()
}

// Solve solves m*x = b in place into x, mirroring d.LinSol.SolveR.
func (m *Matrix) Solve(x, b []float64) error {
	return m.solver.SolveR(x, b, false)
}

// Clean releases the solver's internal state (MUMPS/UMFPACK handles).
func (m *Matrix) Clean() {
	if m.ready {
		m.solver.Clean()
	}
}
