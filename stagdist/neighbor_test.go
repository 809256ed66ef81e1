// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_neighbor01(tst *testing.T) {

	utl.TTitle("neighbor01: quadrant offset/index round-trip")

	for q := 0; q < NumQuadrants; q++ {
		ox, oy, oz := QuadrantOffset(q)
		chk.IntAssert(QuadrantIndex(ox, oy, oz), q)
	}
	chk.IntAssert(QuadrantIndex(0, 0, 0), SelfQuadrant)
}

func Test_neighbor02(tst *testing.T) {

	utl.TTitle("neighbor02: interior rank has all 27 neighbors, periodic")

	b := [3]BoundaryType{BoundaryPeriodic, BoundaryPeriodic, BoundaryPeriodic}
	n := ComputeNeighbors([3]int{3, 3, 3}, [3]int{1, 1, 1}, b)
	for q := 0; q < NumQuadrants; q++ {
		if n[q] < 0 {
			tst.Errorf("quadrant %d: expected a neighbor, got none", q)
		}
	}
	chk.IntAssert(n[SelfQuadrant], 1+1*3+1*3*3)
}

func Test_neighbor03(tst *testing.T) {

	utl.TTitle("neighbor03: corner rank on non-periodic boundaries has no neighbor on its low sides")

	b := [3]BoundaryType{BoundaryNone, BoundaryNone, BoundaryNone}
	n := ComputeNeighbors([3]int{2, 2, 2}, [3]int{0, 0, 0}, b)
	for q := 0; q < NumQuadrants; q++ {
		ox, oy, oz := QuadrantOffset(q)
		if ox < 0 || oy < 0 || oz < 0 {
			if n[q] != noNeighborSentinel {
				tst.Errorf("quadrant %d: expected no neighbor off a low non-periodic boundary, got %d", q, n[q])
			}
		}
	}
	chk.IntAssert(n[SelfQuadrant], 0)
}

func Test_neighbor04(tst *testing.T) {

	utl.TTitle("neighbor04: stencil inclusion rules")

	if !includedInStencil(SelfQuadrant, StencilNone) {
		tst.Errorf("self must always be included regardless of stencil type")
	}
	faceQ := QuadrantIndex(1, 0, 0)
	if includedInStencil(faceQ, StencilNone) {
		tst.Errorf("StencilNone must exclude every non-self quadrant")
	}
	if !includedInStencil(faceQ, StencilStar) {
		tst.Errorf("StencilStar must include face neighbors")
	}
	edgeQ := QuadrantIndex(1, 1, 0)
	if includedInStencil(edgeQ, StencilStar) {
		tst.Errorf("StencilStar must exclude edge-diagonal quadrants")
	}
	cornerQ := QuadrantIndex(1, 1, 1)
	if includedInStencil(cornerQ, StencilStar) {
		tst.Errorf("StencilStar must exclude corner quadrants")
	}
	if !includedInStencil(cornerQ, StencilBox) {
		tst.Errorf("StencilBox must include every quadrant")
	}
}
