// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpix

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/utl"
)

func Test_mpix01(tst *testing.T) {

	utl.TTitle("mpix01: a single-rank communicator is not distributed")

	c := Comm{Rank: 0, Size: 1}
	if c.Distributed() {
		tst.Errorf("a size-1 communicator must not report as distributed")
	}
	if !c.Root() {
		tst.Errorf("rank 0 must always be Root")
	}
}

func Test_mpix02(tst *testing.T) {

	utl.TTitle("mpix02: AllOK on a single rank just reflects its own error")

	c := Comm{Rank: 0, Size: 1}
	if !c.AllOK(nil) {
		tst.Errorf("AllOK(nil) must be true on a single rank")
	}
	if c.AllOK(errors.New("boom")) {
		tst.Errorf("AllOK(err) must be false on a single rank")
	}
}

func Test_mpix03(tst *testing.T) {

	utl.TTitle("mpix03: AllSumFloats and BroadcastInt are no-ops when not distributed")

	c := Comm{Rank: 0, Size: 1}
	data := []float64{1, 2, 3}
	c.AllSumFloats(data)
	if data[0] != 1 || data[1] != 2 || data[2] != 3 {
		tst.Errorf("AllSumFloats must leave data untouched on a single-rank communicator")
	}
	if c.BroadcastInt(7) != 7 {
		tst.Errorf("BroadcastInt must return its input on a single-rank communicator")
	}
}
