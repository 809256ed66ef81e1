// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

// Plan is a flat list of (local, global) index pairs: Local[i] is a slot in
// this rank's dense local (ghosted) array, Global[i] the corresponding slot
// in the flat global numbering. Applying it is a scatter: copy
// global[Global[i]] into local[Local[i]] (forward), or the reverse for an
// injective plan.
type Plan struct {
	Local  []int
	Global []int64
}

// axisBand is the half-open [lo, hi) range of raw (possibly out-of-[0,N)
// for a periodic wrap, or equal to N at a non-periodic far boundary's extra
// row) global coordinates that one neighbor quadrant covers along one axis.
type axisBand struct{ lo, hi int }

// quadrantBand computes, for one axis, the band covered by offset o (-1, 0,
// or +1), given this rank's owned partition, its ghost box, and whether it
// contributes an extra far-boundary row (self-owned, not a neighbor's).
func quadrantBand(o int, owned AxisPartition, ghostStart, ghostN int, selfExtra bool) axisBand {
	ownedEnd := owned.Start + owned.Size
	if selfExtra {
		ownedEnd++
	}
	switch o {
	case -1:
		return axisBand{ghostStart, owned.Start}
	case 1:
		return axisBand{ownedEnd, ghostStart + ghostN}
	default:
		return axisBand{owned.Start, ownedEnd}
	}
}

// buildScatterPlan builds the forward (global->local) scatter plan: for
// every local ghost-box slot that has a source (an owning rank reachable
// within the configured stencil), the (local, global) pair identifying it.
// It iterates the 27 neighbor quadrants once each; since ComputeNeighbors
// always resolves the (0,0,0) quadrant to this rank's own rank, the self
// region is covered by the exact same code path as every other neighbor,
// with no special case.
func buildScatterPlan(d *Distribution) (*Plan, error) {
	p := &d.params
	layout, err := computeAxisLayouts(p.N, p.R, p.L)
	if err != nil {
		return nil, err
	}

	selfExtra := [3]bool{}
	for a := 0; a < 3; a++ {
		selfExtra[a] = d.owned[a].Last && p.B[a] != BoundaryPeriodic
	}

	plan := &Plan{}

	for q := 0; q < NumQuadrants; q++ {
		if !includedInStencil(q, p.Stencil) {
			continue
		}
		nbr := d.neighbors[q]
		if nbr == noNeighborSentinel {
			continue
		}
		ox, oy, oz := QuadrantOffset(q)

		bx := quadrantBand(ox, d.owned[X], d.ghost.start[X], d.ghost.n[X], selfExtra[X])
		by := quadrantBand(oy, d.owned[Y], d.ghost.start[Y], d.ghost.n[Y], selfExtra[Y])
		bz := quadrantBand(oz, d.owned[Z], d.ghost.start[Z], d.ghost.n[Z], selfExtra[Z])
		if bx.lo >= bx.hi || by.lo >= by.hi || bz.lo >= bz.hi {
			continue
		}

		nbrPos := rankPosition(nbr, p.R)
		nbrSize := [3]int{layout[X].Sizes[nbrPos[X]], layout[Y].Sizes[nbrPos[Y]], layout[Z].Sizes[nbrPos[Z]]}
		nbrStart := [3]int{layout[X].Starts[nbrPos[X]], layout[Y].Starts[nbrPos[Y]], layout[Z].Starts[nbrPos[Z]]}
		nbrFar := [3]bool{
			nbrPos[X] == p.R[X]-1 && p.B[X] != BoundaryPeriodic,
			nbrPos[Y] == p.R[Y]-1 && p.B[Y] != BoundaryPeriodic,
			nbrPos[Z] == p.R[Z]-1 && p.B[Z] != BoundaryPeriodic,
		}
		indexer := newOwnedIndexer(nbrSize, nbrFar, p.Dof)
		nbrBase := d.offsets.Offsets[nbrPos[X]+nbrPos[Y]*p.R[X]+nbrPos[Z]*p.R[X]*p.R[Y]]

		for k := bz.lo; k < bz.hi; k++ {
			wk := wrapCoord(k, p.N[Z], p.B[Z] == BoundaryPeriodic)
			for j := by.lo; j < by.hi; j++ {
				wj := wrapCoord(j, p.N[Y], p.B[Y] == BoundaryPeriodic)
				for i := bx.lo; i < bx.hi; i++ {
					wi := wrapCoord(i, p.N[X], p.B[X] == BoundaryPeriodic)
					ni, nj, nk := wi-nbrStart[X], wj-nbrStart[Y], wk-nbrStart[Z]

					localCell := int64(i-d.ghost.start[X]) +
						int64(j-d.ghost.start[Y])*int64(d.ghost.n[X]) +
						int64(k-d.ghost.start[Z])*int64(d.ghost.n[X])*int64(d.ghost.n[Y])

					for _, g := range CanonicalGroups {
						n := dofCount(g.Stratum, p.Dof)
						for c := 0; c < n; c++ {
							gIdx, ok := indexer.index(ni, nj, nk, g.Loc, c)
							if !ok {
								continue
							}
							slot, _ := slotInFullCell(g.Loc, p.Dof, c)
							local := int(localCell)*d.epe + slot
							plan.Local = append(plan.Local, local)
							plan.Global = append(plan.Global, nbrBase+gIdx)
						}
					}
				}
			}
		}
	}

	return plan, nil
}
