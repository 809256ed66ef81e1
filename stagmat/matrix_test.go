// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagmat

import (
	"testing"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofemstag/mpix"
	"github.com/cpmech/gofemstag/stagdist"
)

// Only assembly is exercised here: factoring and solving require a real
// UMFPACK/MUMPS backend, the way fem's own tests never unit-test LinSol
// directly either.

func Test_matrix01(tst *testing.T) {

	utl.TTitle("matrix01: New sizes the triplet from the distribution's global count")

	comm := mpix.Comm{Rank: 0, Size: 1}
	dof := [4]int{0, 0, 0, 1}
	d, err := stagdist.Create3D(comm, [3]int{2, 2, 2}, [3]int{1, 1, 1}, dof,
		[3]stagdist.BoundaryType{stagdist.BoundaryNone, stagdist.BoundaryNone, stagdist.BoundaryNone},
		stagdist.StencilStar, 1, [3][]int{})
	if err != nil {
		tst.Fatalf("Create3D failed: %v", err)
	}
	if err := d.SetUp(); err != nil {
		tst.Fatalf("SetUp failed: %v", err)
	}
	defer d.Destroy()

	m := New(d, 64)
	m.Start()
	m.Put(0, 0, 2.0)
	m.Put(0, 0, 1.0) // duplicate puts accumulate
	m.Put(1, 0, -1.0)
	// no assertions beyond "this does not panic": la.Triplet's internal
	// accumulation is gosl's to test, not ours.
}
