// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

import (
	"math"

	"github.com/cpmech/gofemstag/stagerr"
)

// ChooseRankGrid picks the rank grid R for a communicator of size p, given
// the global element counts n and a (possibly partially) requested grid
// req, where req[a] == Auto means "pick this axis". It is deterministic and
// communicator-size-driven: every rank computes the same answer from the
// same inputs, with no communication required.
func ChooseRankGrid(n [3]int, p int, req [3]int) ([3]int, error) {
	var r [3]int
	var free []int
	for a := 0; a < 3; a++ {
		if req[a] == Auto {
			free = append(free, a)
			continue
		}
		if req[a] <= 0 {
			return r, stagerr.Err(stagerr.ArgOutOfRange, "requested rank count for axis %d must be positive, got %d", a, req[a])
		}
		if req[a] > n[a] {
			return r, stagerr.Err(stagerr.ArgOutOfRange, "requested rank count %d for axis %d exceeds element count %d", req[a], a, n[a])
		}
		r[a] = req[a]
	}

	switch len(free) {
	case 0:
		if r[X]*r[Y]*r[Z] != p {
			return r, stagerr.Err(stagerr.ArgOutOfRange, "requested rank grid %v has product %d, not communicator size %d", r, r[X]*r[Y]*r[Z], p)
		}

	case 1:
		a := free[0]
		other := r[(a+1)%3] * r[(a+2)%3]
		if other == 0 || p%other != 0 {
			return r, stagerr.Err(stagerr.ArgOutOfRange, "no valid rank count for axis %d divides communicator size %d", a, p)
		}
		r[a] = p / other
		if r[a] < 1 || r[a] > n[a] {
			return r, stagerr.Err(stagerr.ArgOutOfRange, "computed rank count %d for axis %d is invalid (n=%d)", r[a], a, n[a])
		}

	case 2:
		fixed := 0
		for a := 0; a < 3; a++ {
			if r[a] != 0 {
				fixed = a
			}
		}
		rest := p / r[fixed]
		if rest == 0 || p%r[fixed] != 0 {
			return r, stagerr.Err(stagerr.ArgOutOfRange, "fixed rank count %d does not divide communicator size %d", r[fixed], p)
		}
		a0, a1 := free[0], free[1]
		r0 := squarishFactor(n[a0], n[a1], rest)
		for r0 > 1 && rest%r0 != 0 {
			r0--
		}
		if r0 < 1 || rest%r0 != 0 {
			return r, stagerr.Err(stagerr.ArgOutOfRange, "no valid partition of %d ranks between axes %d and %d", rest, a0, a1)
		}
		r[a0] = r0
		r[a1] = rest / r0
		if r[a0] > n[a0] || r[a1] > n[a1] {
			return r, stagerr.Err(stagerr.ArgOutOfRange, "computed rank grid %v exceeds element counts %v", r, n)
		}

	case 3:
		// Fully automatic: match the aspect ratio of n (§4.1).
		ry := int(math.Round(math.Cbrt(float64(n[Y]*n[Y]*p) / float64(n[Z]*n[X]))))
		if ry < 1 {
			ry = 1
		}
		for ry > 1 && p%ry != 0 {
			ry--
		}
		rx := int(math.Round(math.Sqrt(float64(n[X]*p) / float64(n[Z]*ry))))
		if rx < 1 {
			rx = 1
		}
		for rx > 1 && p%(rx*ry) != 0 {
			rx--
		}
		if p%(rx*ry) != 0 {
			return r, stagerr.Err(stagerr.ArgOutOfRange, "could not find a valid rank grid for %d ranks and sizes %v", p, n)
		}
		rz := p / (rx * ry)
		if n[X] > n[Z] && rx < rz {
			rx, rz = rz, rx
		}
		r[X], r[Y], r[Z] = rx, ry, rz
		if r[X] > n[X] || r[Y] > n[Y] || r[Z] > n[Z] {
			return r, stagerr.Err(stagerr.ArgOutOfRange, "automatic rank grid %v exceeds element counts %v", r, n)
		}
	}

	return r, nil
}

// squarishFactor estimates a divisor-search starting point for splitting
// `rest` ranks between two axes of sizes na, nb, matching the aspect ratio
// na/nb as closely as possible.
func squarishFactor(na, nb, rest int) int {
	v := int(math.Round(math.Sqrt(float64(na*rest) / float64(nb))))
	if v < 1 {
		v = 1
	}
	if v > rest {
		v = rest
	}
	return v
}
