// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagscatter

import (
	"context"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofemstag/mpix"
	"github.com/cpmech/gofemstag/stagdist"
	"github.com/cpmech/gofemstag/stagvec"
)

func newTestDistribution(tst *testing.T) *stagdist.Distribution {
	comm := mpix.Comm{Rank: 0, Size: 1}
	dof := [4]int{0, 0, 0, 1}
	d, err := stagdist.Create3D(comm, [3]int{4, 4, 4}, [3]int{1, 1, 1}, dof,
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

func Test_scatter01(tst *testing.T) {

	utl.TTitle("scatter01: forward then reverse round-trips a global vector on one rank")

	d := newTestDistribution(tst)
	defer d.Destroy()

	comm := mpix.Comm{Rank: 0, Size: 1}
	global := stagvec.NewGlobal(d)
	for i := range global.Data {
		global.Data[i] = float64(i) + 1
	}

	local := stagvec.NewLocal(d)
	if err := Forward(context.Background(), d, global, local); err != nil {
		tst.Errorf("Forward failed: %v", err)
		return
	}

	roundtrip := stagvec.NewGlobal(d)
	if err := Reverse(context.Background(), comm, d, local, roundtrip); err != nil {
		tst.Errorf("Reverse failed: %v", err)
		return
	}

	chk.Vector(tst, "round-trip", 1e-13, roundtrip.Data, global.Data)
}

func Test_scatter02(tst *testing.T) {

	utl.TTitle("scatter02: forward respects a cancelled context")

	d := newTestDistribution(tst)
	defer d.Destroy()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	global := stagvec.NewGlobal(d)
	local := stagvec.NewLocal(d)
	if err := Forward(ctx, d, global, local); err == nil {
		tst.Errorf("expected Forward to report a cancelled context")
	}
}
