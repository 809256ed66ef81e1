// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_rankgrid01(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	utl.TTitle("rankgrid01: fully automatic")

	r, err := ChooseRankGrid([3]int{10, 10, 10}, 8, [3]int{Auto, Auto, Auto})
	if err != nil {
		tst.Errorf("ChooseRankGrid failed: %v", err)
		return
	}
	utl.Pforan("r = %v\n", r)
	chk.IntAssert(r[X]*r[Y]*r[Z], 8)
}

func Test_rankgrid02(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	utl.TTitle("rankgrid02: one axis fixed")

	r, err := ChooseRankGrid([3]int{10, 10, 10}, 8, [3]int{2, Auto, Auto})
	if err != nil {
		tst.Errorf("ChooseRankGrid failed: %v", err)
		return
	}
	chk.IntAssert(r[X], 2)
	chk.IntAssert(r[X]*r[Y]*r[Z], 8)
}

func Test_rankgrid03(tst *testing.T) {

	utl.TTitle("rankgrid03: fully specified grid whose product mismatches p")

	_, err := ChooseRankGrid([3]int{10, 10, 10}, 8, [3]int{2, 2, 3})
	if err == nil {
		tst.Errorf("expected an error for a rank grid whose product does not match the communicator size")
	}
}

func Test_rankgrid04(tst *testing.T) {

	utl.TTitle("rankgrid04: requested rank count exceeds element count")

	_, err := ChooseRankGrid([3]int{2, 10, 10}, 8, [3]int{4, Auto, Auto})
	if err == nil {
		tst.Errorf("expected an error for a rank count exceeding the element count")
	}
}
