// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

import "github.com/cpmech/gofemstag/stagerr"

// AxisPartition is the owned (start, size) sub-interval of one axis on one
// rank, plus whether this rank is the first or last along that axis.
type AxisPartition struct {
	Start, Size int
	First, Last bool
}

// axisSizes returns the per-rank element counts along one axis: either the
// user-supplied partition vector l (validated to sum to n and have r
// entries), or the default partition that places any remainder on the
// low-numbered ranks.
func axisSizes(n, r int, l []int) ([]int, error) {
	if l != nil {
		if len(l) != r {
			return nil, stagerr.Err(stagerr.ArgOutOfRange, "partition vector has %d entries, expected %d", len(l), r)
		}
		sum := 0
		for _, s := range l {
			if s <= 0 {
				return nil, stagerr.Err(stagerr.ArgOutOfRange, "partition vector entries must be positive, got %v", l)
			}
			sum += s
		}
		if sum != n {
			return nil, stagerr.Err(stagerr.ArgOutOfRange, "partition vector sums to %d, expected %d", sum, n)
		}
		out := make([]int, r)
		copy(out, l)
		return out, nil
	}

	base := n / r
	rem := n % r
	out := make([]int, r)
	for i := 0; i < r; i++ {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out, nil
}

// ComputeOwnedBox computes this rank's owned (start, size) interval on
// every axis, given the rank grid r, this rank's position rankPos within
// it, the global sizes n, and optional per-axis partition vectors l (nil
// entries mean "use the default partition").
func ComputeOwnedBox(n, r, rankPos [3]int, l [3][]int) ([3]AxisPartition, error) {
	var out [3]AxisPartition
	for a := 0; a < 3; a++ {
		sizes, err := axisSizes(n[a], r[a], l[a])
		if err != nil {
			return out, err
		}
		start := 0
		for i := 0; i < rankPos[a]; i++ {
			start += sizes[i]
		}
		out[a] = AxisPartition{
			Start: start,
			Size:  sizes[rankPos[a]],
			First: rankPos[a] == 0,
			Last:  rankPos[a] == r[a]-1,
		}
	}
	return out, nil
}
