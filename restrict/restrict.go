// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package restrict implements a geometric two-grid coarsening operator for
// data laid out on a staggered grid: for each coarse sub-location, it reads
// the corresponding fine dof, averaged over the fine cells the coarse cell
// covers along each axis the sub-location's stratum spans.
package restrict

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofemstag/stagdist"
	"github.com/cpmech/gofemstag/stagvec"
)

// Restrictor carries the precomputed per-axis refinement ratios between a
// fine and a coarse Distribution sharing the same dof vector and rank
// topology.
type Restrictor struct {
	fine, coarse *stagdist.Distribution
	ratio        [3]int
	dof          [4]int

	// weightedOdd selects, for an axis with an odd refinement ratio, a
	// weighted average over all ratio fine cells instead of direct
	// injection of the center one. Off by default (§8's Open Question:
	// direct injection is the documented default; this is the opt-in
	// alternative).
	weightedOdd bool
}

// New validates that fine and coarse share a dof vector and that fine's
// global sizes are an integer multiple of coarse's along every axis, and
// returns a ready-to-use Restrictor.
func New(fine, coarse *stagdist.Distribution, weightedOdd bool) (*Restrictor, error) {
	fdof, cdof := fine.Dof(), coarse.Dof()
	if fdof != cdof {
		return nil, utl.Err("restrict: fine dof %v and coarse dof %v must match", fdof, cdof)
	}
	fn, cn := fine.GlobalSizes(), coarse.GlobalSizes()
	var ratio [3]int
	for a := 0; a < 3; a++ {
		if cn[a] == 0 || fn[a]%cn[a] != 0 {
			return nil, utl.Err("restrict: fine size %d is not a multiple of coarse size %d on axis %d", fn[a], cn[a], a)
		}
		ratio[a] = fn[a] / cn[a]
	}
	return &Restrictor{fine: fine, coarse: coarse, ratio: ratio, dof: fdof, weightedOdd: weightedOdd}, nil
}

// Restrict zeroes coarse and fills its owned cells from fine. Both vectors
// must already carry up-to-date ghost data for the axes being averaged
// (Restrict itself performs no communication).
func (r *Restrictor) Restrict(fine, coarse *stagvec.Local) {
	for i := range coarse.Data {
		coarse.Data[i] = 0
	}

	cStart, cSize, cExtra := r.coarse.Corners()

	for k := 0; k <= cSize[stagdist.Z]; k++ {
		if k == cSize[stagdist.Z] && cExtra[stagdist.Z] == 0 {
			break
		}
		for j := 0; j <= cSize[stagdist.Y]; j++ {
			if j == cSize[stagdist.Y] && cExtra[stagdist.Y] == 0 {
				break
			}
			for i := 0; i <= cSize[stagdist.X]; i++ {
				if i == cSize[stagdist.X] && cExtra[stagdist.X] == 0 {
					break
				}
				ci, cj, ck := cStart[stagdist.X]+i, cStart[stagdist.Y]+j, cStart[stagdist.Z]+k
				extra := [3]bool{i == cSize[stagdist.X], j == cSize[stagdist.Y], k == cSize[stagdist.Z]}

				for _, g := range stagdist.CanonicalGroups {
					// a group averaged along an axis at its extra position
					// does not exist there (it would lie past the far wall)
					avg := averagedAxes(g.Stratum, g.Axis)
					if (extra[stagdist.X] && avg[stagdist.X]) || (extra[stagdist.Y] && avg[stagdist.Y]) || (extra[stagdist.Z] && avg[stagdist.Z]) {
						continue
					}
					n := dofCount(g.Stratum, r.dof)
					for c := 0; c < n; c++ {
						r.restrictOne(fine, coarse, ci, cj, ck, g, c)
					}
				}
			}
		}
	}
}

func dofCount(s stagdist.Stratum, dof [4]int) int { return dof[s] }

// averagedAxes reports, for stratum s with running/normal axis `axis`,
// which axes the restriction averages over: none for a vertex, the running
// axis for an edge, the two non-normal axes for a face, all three for an
// element.
func averagedAxes(s stagdist.Stratum, axis int) [3]bool {
	switch s {
	case stagdist.DofVertex:
		return [3]bool{}
	case stagdist.DofEdge:
		var a [3]bool
		a[axis] = true
		return a
	case stagdist.DofFace:
		a := [3]bool{true, true, true}
		a[axis] = false
		return a
	default: // DofElement
		return [3]bool{true, true, true}
	}
}

func (r *Restrictor) restrictOne(fine, coarse *stagvec.Local, ci, cj, ck int, g stagdist.CanonicalGroup, component int) {
	avg := averagedAxes(g.Stratum, g.Axis)

	lo := [3]int{ci * r.ratio[stagdist.X], cj * r.ratio[stagdist.Y], ck * r.ratio[stagdist.Z]}
	var span [3]int
	for a := 0; a < 3; a++ {
		if avg[a] {
			span[a] = r.ratio[a]
		} else {
			// non-averaged axis: direct injection at the shared coarse/fine
			// vertex/face-normal plane, regardless of the axis's own
			// refinement-ratio parity (DMStagRestrictSimple_3d never offsets
			// these).
			span[a] = 1
		}
	}

	if odd := (avg[stagdist.X] && r.ratio[stagdist.X]%2 == 1) ||
		(avg[stagdist.Y] && r.ratio[stagdist.Y]%2 == 1) ||
		(avg[stagdist.Z] && r.ratio[stagdist.Z]%2 == 1); odd && !r.weightedOdd {
		for a := 0; a < 3; a++ {
			if avg[a] && r.ratio[a]%2 == 1 {
				lo[a] += r.ratio[a] / 2
				span[a] = 1
			}
		}
	}

	var sum float64
	count := 0
	for dk := 0; dk < span[stagdist.Z]; dk++ {
		for dj := 0; dj < span[stagdist.Y]; dj++ {
			for di := 0; di < span[stagdist.X]; di++ {
				fi, fj, fk := lo[stagdist.X]+di, lo[stagdist.Y]+dj, lo[stagdist.Z]+dk
				sum += fine.At(r.fine, fi, fj, fk, g.Loc, component)
				count++
			}
		}
	}
	coarse.Set(r.coarse, ci, cj, ck, g.Loc, component, sum/float64(count))
}
