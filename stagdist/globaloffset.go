// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

import (
	"math"

	"github.com/cpmech/gofemstag/stagerr"
)

// globalIntervalSize computes a rank's contiguous slice of the flat global
// numbering (§3): the owned cells' dof, plus any extra dof contributed by
// this rank sitting on a non-periodic far boundary (one extra face/edge/
// corner row per boundary it sits on, per axis/axis-pair/triple).
func globalIntervalSize(size [3]int, far [3]bool, dof [4]int) int64 {
	epe := int64(Epe(dof))
	f := int64(faceDof(dof))
	e := int64(edgeDof(dof))
	v := int64(cornerDof(dof))
	sx, sy, sz := int64(size[X]), int64(size[Y]), int64(size[Z])

	total := sx * sy * sz * epe
	if far[X] {
		total += sy * sz * f
	}
	if far[Y] {
		total += sx * sz * f
	}
	if far[Z] {
		total += sx * sy * f
	}
	if far[X] && far[Y] {
		total += sz * e
	}
	if far[X] && far[Z] {
		total += sy * e
	}
	if far[Y] && far[Z] {
		total += sx * e
	}
	if far[X] && far[Y] && far[Z] {
		total += v
	}
	return total
}

// GlobalOffsetTable holds, for every rank in lexicographic (x fastest, then
// y, then z) order, the running offset into the flat global numbering and
// the total global count G.
type GlobalOffsetTable struct {
	Offsets []int64 // length = Rx*Ry*Rz
	G       int64
}

// ComputeGlobalOffsets walks the rank grid in lexicographic order,
// accumulating each rank's global interval size (§3) into a running total.
// l supplies optional per-axis partition vectors, exactly as ComputeOwnedBox
// accepts. Fails with IntOverflow if G would exceed the 32-bit MPI index
// range this build assumes.
func ComputeGlobalOffsets(n, r [3]int, b [3]BoundaryType, dof [4]int, l [3][]int) (*GlobalOffsetTable, error) {
	layout, err := computeAxisLayouts(n, r, l)
	if err != nil {
		return nil, err
	}

	nRanks := r[X] * r[Y] * r[Z]
	table := &GlobalOffsetTable{Offsets: make([]int64, nRanks)}

	var running int64
	for rz := 0; rz < r[Z]; rz++ {
		for ry := 0; ry < r[Y]; ry++ {
			for rx := 0; rx < r[X]; rx++ {
				idx := rx + ry*r[X] + rz*r[X]*r[Y]
				size := [3]int{layout[X].Sizes[rx], layout[Y].Sizes[ry], layout[Z].Sizes[rz]}
				far := [3]bool{
					rx == r[X]-1 && b[X] != BoundaryPeriodic,
					ry == r[Y]-1 && b[Y] != BoundaryPeriodic,
					rz == r[Z]-1 && b[Z] != BoundaryPeriodic,
				}
				table.Offsets[idx] = running
				running += globalIntervalSize(size, far, dof)
			}
		}
	}
	table.G = running

	if table.G > math.MaxInt32 {
		return nil, stagerr.Err(stagerr.IntOverflow, "global index count %d exceeds the 32-bit MPI index range", table.G)
	}
	return table, nil
}
