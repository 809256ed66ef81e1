// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package restrict

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofemstag/mpix"
	"github.com/cpmech/gofemstag/stagdist"
	"github.com/cpmech/gofemstag/stagvec"
)

func newGrid(tst *testing.T, n [3]int, dof [4]int) *stagdist.Distribution {
	comm := mpix.Comm{Rank: 0, Size: 1}
	d, err := stagdist.Create3D(comm, n, [3]int{1, 1, 1}, dof,
		[3]stagdist.BoundaryType{stagdist.BoundaryNone, stagdist.BoundaryNone, stagdist.BoundaryNone},
		stagdist.StencilStar, 1, [3][]int{})
	if err != nil {
		tst.Fatalf("Create3D failed: %v", err)
	}
	if err := d.SetUp(); err != nil {
		tst.Fatalf("SetUp failed: %v", err)
	}
	return d
}

func Test_restrict01(tst *testing.T) {

	utl.TTitle("restrict01: element dof averages uniformly over the 2x2x2 fine block")

	dof := [4]int{0, 0, 0, 1}
	fine := newGrid(tst, [3]int{4, 4, 4}, dof)
	coarse := newGrid(tst, [3]int{2, 2, 2}, dof)
	defer fine.Destroy()
	defer coarse.Destroy()

	r, err := New(fine, coarse, false)
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}

	fv := stagvec.NewLocal(fine)
	cv := stagvec.NewLocal(coarse)
	for i := range fv.Data {
		fv.Data[i] = 1
	}

	r.Restrict(fv, cv)

	start, size, _ := coarse.Corners()
	for k := start[stagdist.Z]; k < start[stagdist.Z]+size[stagdist.Z]; k++ {
		for j := start[stagdist.Y]; j < start[stagdist.Y]+size[stagdist.Y]; j++ {
			for i := start[stagdist.X]; i < start[stagdist.X]+size[stagdist.X]; i++ {
				got := cv.At(coarse, i, j, k, stagdist.Element, 0)
				chk.Scalar(tst, "uniform element restriction", 1e-13, got, 1)
			}
		}
	}
}

func Test_restrict02(tst *testing.T) {

	utl.TTitle("restrict02: mismatched dof vectors are rejected")

	fine := newGrid(tst, [3]int{4, 4, 4}, [4]int{1, 0, 0, 1})
	coarse := newGrid(tst, [3]int{2, 2, 2}, [4]int{0, 0, 0, 1})
	defer fine.Destroy()
	defer coarse.Destroy()

	_, err := New(fine, coarse, false)
	if err == nil {
		tst.Errorf("expected an error for mismatched dof vectors")
	}
}

func Test_restrict03(tst *testing.T) {

	utl.TTitle("restrict03: non-integer refinement ratio is rejected")

	fine := newGrid(tst, [3]int{5, 4, 4}, [4]int{0, 0, 0, 1})
	coarse := newGrid(tst, [3]int{2, 2, 2}, [4]int{0, 0, 0, 1})
	defer fine.Destroy()
	defer coarse.Destroy()

	_, err := New(fine, coarse, false)
	if err == nil {
		tst.Errorf("expected an error when fine size is not a multiple of coarse size")
	}
}
