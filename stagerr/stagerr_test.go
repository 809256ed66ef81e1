// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagerr

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_stagerr01(tst *testing.T) {

	utl.TTitle("stagerr01: Err carries its kind and a formatted message")

	err := Err(ArgOutOfRange, "bad value %d", 42)
	chk.StrAssert(err.Error(), "ArgOutOfRange: bad value 42")
	if KindOf(err) != ArgOutOfRange {
		tst.Errorf("expected KindOf to recover ArgOutOfRange")
	}
}

func Test_stagerr02(tst *testing.T) {

	utl.TTitle("stagerr02: KindOf treats a foreign error as Plib")

	if KindOf(errors.New("not ours")) != Plib {
		tst.Errorf("expected a foreign error to classify as Plib")
	}
}
