// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

// buildInjectivePlan builds the reverse (local->global) scatter plan used
// when the forward plan is not injective: a periodic axis with exactly one
// rank maps both the owned region and its own periodic-wrap ghost band to
// the same global dof, so a naive reverse of the forward plan would write
// each such global entry twice. This plan instead walks only the
// self-owned (plus any non-periodic far-boundary extra row) region once,
// producing exactly one (local, global) pair per global dof this rank
// owns.
func buildInjectivePlan(d *Distribution) (*Plan, error) {
	p := &d.params

	selfExtra := [3]bool{}
	for a := 0; a < 3; a++ {
		selfExtra[a] = d.owned[a].Last && p.B[a] != BoundaryPeriodic
	}

	bx := quadrantBand(0, d.owned[X], d.ghost.start[X], d.ghost.n[X], selfExtra[X])
	by := quadrantBand(0, d.owned[Y], d.ghost.start[Y], d.ghost.n[Y], selfExtra[Y])
	bz := quadrantBand(0, d.owned[Z], d.ghost.start[Z], d.ghost.n[Z], selfExtra[Z])

	indexer := newOwnedIndexer([3]int{d.owned[X].Size, d.owned[Y].Size, d.owned[Z].Size}, selfExtra, p.Dof)
	selfIdx := d.rankPos[X] + d.rankPos[Y]*p.R[X] + d.rankPos[Z]*p.R[X]*p.R[Y]
	selfBase := d.offsets.Offsets[selfIdx]

	plan := &Plan{}
	for k := bz.lo; k < bz.hi; k++ {
		nk := k - d.owned[Z].Start
		for j := by.lo; j < by.hi; j++ {
			nj := j - d.owned[Y].Start
			for i := bx.lo; i < bx.hi; i++ {
				ni := i - d.owned[X].Start

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
						plan.Global = append(plan.Global, selfBase+gIdx)
					}
				}
			}
		}
	}

	return plan, nil
}
