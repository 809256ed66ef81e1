// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofemstag/mpix"
)

// newTestDistribution builds and sets up a single-rank Distribution, the way
// every scenario in spec §8 starts from comm.Size == 1 before scaling up.
func newTestDistribution(tst *testing.T, n, r [3]int, dof [4]int, b [3]BoundaryType, stencil StencilType, width int) *Distribution {
	comm := mpix.Comm{Rank: 0, Size: 1}
	d, err := Create3D(comm, n, r, dof, b, stencil, width, [3][]int{})
	if err != nil {
		tst.Errorf("Create3D failed: %v", err)
		return nil
	}
	if err := d.SetUp(); err != nil {
		tst.Errorf("SetUp failed: %v", err)
		return nil
	}
	return d
}

func Test_distribution01(tst *testing.T) {

	utl.TTitle("distribution01: single rank, no ghosts, scatter plan agrees with the local-to-global map")

	dof := [4]int{1, 0, 0, 1}
	d := newTestDistribution(tst, [3]int{2, 2, 2}, [3]int{1, 1, 1}, dof,
		[3]BoundaryType{BoundaryNone, BoundaryNone, BoundaryNone}, StencilNone, 0)
	if d == nil {
		return
	}
	defer d.Destroy()

	chk.IntAssert(int(d.GlobalCount()), int(globalIntervalSize([3]int{2, 2, 2}, [3]bool{true, true, true}, dof)))
	chk.IntAssert(d.LocalLength(), 3*3*3*Epe(dof)) // ghost box == owned box plus the one extra far-boundary row per axis

	l2g := d.LocalToGlobal()
	for _, g := range l2g {
		if g < -1 || g >= d.GlobalCount() {
			tst.Errorf("local-to-global entry %d out of range [-1, %d)", g, d.GlobalCount())
		}
	}

	plan := d.ScatterPlan()
	if len(plan.Local) == 0 {
		tst.Errorf("expected a non-empty scatter plan for an owned-only single rank")
	}
	for i, local := range plan.Local {
		if l2g[local] != plan.Global[i] {
			tst.Errorf("scatter plan entry %d inconsistent with local-to-global map: %d != %d", i, l2g[local], plan.Global[i])
		}
	}
}

func Test_distribution02(tst *testing.T) {

	utl.TTitle("distribution02: single periodic rank needs an injective plan")

	dof := [4]int{0, 0, 0, 1}
	d := newTestDistribution(tst, [3]int{4, 4, 4}, [3]int{1, 1, 1}, dof,
		[3]BoundaryType{BoundaryPeriodic, BoundaryPeriodic, BoundaryPeriodic}, StencilStar, 1)
	if d == nil {
		return
	}
	defer d.Destroy()

	inj := d.InjectivePlan()
	if inj == nil {
		tst.Errorf("expected a non-nil injective plan for a fully periodic single-rank grid")
		return
	}
	// element-only dof: exactly one (local, global) pair per owned element, and
	// every global index in [0, G) appears exactly once.
	chk.IntAssert(len(inj.Local), 4*4*4)
	seen := make(map[int64]bool)
	for _, g := range inj.Global {
		if seen[g] {
			tst.Errorf("injective plan must not repeat a global index, got duplicate %d", g)
		}
		seen[g] = true
	}
	chk.IntAssert(len(seen), int(d.GlobalCount()))
}

func Test_distribution03(tst *testing.T) {

	utl.TTitle("distribution03: non-periodic far boundary contributes extra dof rows")

	dof := [4]int{1, 0, 0, 0} // vertex-only: easiest to hand-check
	d := newTestDistribution(tst, [3]int{3, 3, 3}, [3]int{1, 1, 1}, dof,
		[3]BoundaryType{BoundaryNone, BoundaryNone, BoundaryNone}, StencilNone, 0)
	if d == nil {
		return
	}
	defer d.Destroy()

	// 3x3x3 elements => 4x4x4 vertices
	chk.IntAssert(int(d.GlobalCount()), 64)
}

func Test_distribution04(tst *testing.T) {

	utl.TTitle("distribution04: stencil none produces no ghost dof at all")

	dof := [4]int{1, 0, 0, 1}
	d := newTestDistribution(tst, [3]int{4, 4, 4}, [3]int{1, 1, 1}, dof,
		[3]BoundaryType{BoundaryGhosted, BoundaryGhosted, BoundaryGhosted}, StencilNone, 0)
	if d == nil {
		return
	}
	defer d.Destroy()

	start, size, extra := d.Corners()
	gstart, gn := d.GhostCorners()
	for a := 0; a < 3; a++ {
		if gstart[a] != start[a] {
			tst.Errorf("axis %d: ghost start %d must equal owned start %d when stencil is none", a, gstart[a], start[a])
		}
		if gn[a] != size[a]+extra[a] {
			tst.Errorf("axis %d: ghost size %d must equal owned size + extra %d when stencil is none", a, gn[a], size[a]+extra[a])
		}
	}
}
