// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

// AxisLayout is the full per-rank partition of one axis: every rank's
// owned size and cumulative start. ScatterBuilder and LocalToGlobalBuilder
// need this for every axis to translate a neighbor's owned coordinates
// into that neighbor's own global numbering, without any communication
// (every rank can compute every other rank's partition from the shared
// construction parameters).
type AxisLayout struct {
	Sizes  []int // per rank index along this axis
	Starts []int // cumulative start per rank index
}

// computeAxisLayouts builds the AxisLayout for all three axes.
func computeAxisLayouts(n, r [3]int, l [3][]int) ([3]AxisLayout, error) {
	var out [3]AxisLayout
	for a := 0; a < 3; a++ {
		sizes, err := axisSizes(n[a], r[a], l[a])
		if err != nil {
			return out, err
		}
		starts := make([]int, r[a])
		running := 0
		for i, s := range sizes {
			starts[i] = running
			running += s
		}
		out[a] = AxisLayout{Sizes: sizes, Starts: starts}
	}
	return out, nil
}

// wrapCoord folds a global element coordinate that has run off the [0,N)
// range back into it, for periodic axes only. Non-periodic axes never
// produce negative coordinates, and a coordinate equal to N is the
// legitimate "extra" boundary row, not a wrap candidate.
func wrapCoord(coord, n int, periodic bool) int {
	if !periodic {
		return coord
	}
	if coord < 0 {
		return coord + n
	}
	if coord >= n {
		return coord - n
	}
	return coord
}
