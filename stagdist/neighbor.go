// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

// NumQuadrants is the number of 3-D neighbor quadrants (3^3).
const NumQuadrants = 27

// SelfQuadrant is the flattened index of the (0,0,0) offset, i.e. self.
const SelfQuadrant = 13

// QuadrantOffset decodes a flattened quadrant index (0..26) into its signed
// 3-D offset in {-1,0,+1}^3. The flattening is lexicographic with x
// fastest, matching ScatterBuilder's and LocalToGlobalBuilder's required
// iteration order.
func QuadrantOffset(q int) (ox, oy, oz int) {
	ox = q%3 - 1
	oy = (q/3)%3 - 1
	oz = (q / 9) - 1
	return
}

// QuadrantIndex is the inverse of QuadrantOffset.
func QuadrantIndex(ox, oy, oz int) int {
	return (ox + 1) + (oy+1)*3 + (oz+1)*9
}

const noNeighborSentinel = -1

// axisNeighborCoord computes the rank coordinate reached by stepping `off`
// (-1, 0, or +1) along one axis from rankPos, given that axis's rank count
// r and boundary type b. ok is false if there is no such neighbor (a
// non-periodic physical boundary).
func axisNeighborCoord(rankPos, off, r int, b BoundaryType) (coord int, ok bool) {
	switch off {
	case 0:
		return rankPos, true
	case -1:
		if rankPos > 0 {
			return rankPos - 1, true
		}
		if b == BoundaryPeriodic {
			return r - 1, true
		}
		return noNeighborSentinel, false
	case 1:
		if rankPos < r-1 {
			return rankPos + 1, true
		}
		if b == BoundaryPeriodic {
			return 0, true
		}
		return noNeighborSentinel, false
	}
	return noNeighborSentinel, false
}

// ComputeNeighbors produces the 27 neighbor ranks of this rank (at position
// rankPos within the r x r x r... rank grid), indexed by flattened 3-D
// offset per QuadrantIndex. Entries with no neighbor (off a non-periodic
// boundary) are -1.
func ComputeNeighbors(r, rankPos [3]int, b [3]BoundaryType) [NumQuadrants]int {
	var out [NumQuadrants]int
	for q := 0; q < NumQuadrants; q++ {
		ox, oy, oz := QuadrantOffset(q)
		x, okx := axisNeighborCoord(rankPos[X], ox, r[X], b[X])
		y, oky := axisNeighborCoord(rankPos[Y], oy, r[Y], b[Y])
		z, okz := axisNeighborCoord(rankPos[Z], oz, r[Z], b[Z])
		if !okx || !oky || !okz {
			out[q] = noNeighborSentinel
			continue
		}
		out[q] = x + y*r[X] + z*r[X]*r[Y]
	}
	return out
}

// includedInStencil reports whether quadrant q participates in the given
// stencil type. NONE keeps only self, no ghost neighbors at all; STAR adds
// the 6 face neighbors (excludes the 12 edge-diagonal and 8 corner
// quadrants); BOX keeps all 27.
func includedInStencil(q int, s StencilType) bool {
	if q == SelfQuadrant {
		return true
	}
	if s == StencilBox {
		return true
	}
	if s == StencilNone {
		return false
	}
	ox, oy, oz := QuadrantOffset(q)
	nonzero := 0
	if ox != 0 {
		nonzero++
	}
	if oy != 0 {
		nonzero++
	}
	if oz != 0 {
		nonzero++
	}
	return nonzero <= 1 // StencilStar
}
