// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

// buildLocalToGlobal builds the dense local->global map: one entry per
// local (ghosted) slot, holding the global index that owns it, or -1 for a
// dummy (a slot with no source, either because it is outside the
// configured stencil's reach or because it sits at a non-periodic
// boundary's non-surviving position). It is a direct materialization of the
// scatter plan already built for this rank: every (local, global) pair the
// plan records is exactly one populated entry.
func buildLocalToGlobal(d *Distribution) ([]int64, error) {
	n := d.ghost.n[X] * d.ghost.n[Y] * d.ghost.n[Z] * d.epe
	out := make([]int64, n)
	for i := range out {
		out[i] = -1
	}
	for i, local := range d.scatter.Local {
		out[local] = d.scatter.Global[i]
	}
	return out, nil
}
