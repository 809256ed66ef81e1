// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stagscatter applies the scatter plans stagdist builds: Forward
// copies a global vector's entries into a rank's local ghosted vector,
// Reverse does the opposite using the injective plan when the forward plan
// is not one-to-one (§4.8). The global vector is kept fully replicated on
// every rank (the simplest correct carrier for the small-to-medium grids
// this engine targets); only the index plans themselves are truly
// distributed, computed once per rank with no communication.
package stagscatter

import (
	"context"

	"github.com/cpmech/gofemstag/mpix"
	"github.com/cpmech/gofemstag/stagdist"
	"github.com/cpmech/gofemstag/stagvec"
)

// Forward copies global's entries into local per d's forward scatter plan.
// It never blocks on ctx (the copy itself is local, O(plan length)); ctx is
// accepted so callers driving a set of ranks through a cancellable pipeline
// have one signature for every collective step.
func Forward(ctx context.Context, d *stagdist.Distribution, global *stagvec.Global, local *stagvec.Local) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	plan := d.ScatterPlan()
	for i, g := range plan.Global {
		local.Data[plan.Local[i]] = global.Data[g]
	}
	return nil
}

// Reverse copies local's owned entries back into global per d's injective
// plan when one is needed (a periodic axis with a single rank, where the
// forward plan maps more than one local slot to the same global entry), or
// the ordinary scatter plan restricted to the self quadrant otherwise. It
// then all-reduce-sums the replicated global vector across comm so every
// rank's copy agrees, since different ranks may have written disjoint
// entries of the same replicated array.
func Reverse(ctx context.Context, comm mpix.Comm, d *stagdist.Distribution, local *stagvec.Local, global *stagvec.Global) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	plan := d.InjectivePlan()
	if plan == nil {
		plan = ownedOnly(d)
	}
	mine := make([]float64, len(global.Data))
	for i, g := range plan.Global {
		mine[g] = local.Data[plan.Local[i]]
	}
	comm.AllSumFloats(mine)
	copy(global.Data, mine)
	return nil
}

// ownedOnly extracts the subset of the forward scatter plan belonging to
// the self quadrant, used by Reverse when no injective plan was built
// (the forward plan is already one-to-one on the owned region in that
// case).
func ownedOnly(d *stagdist.Distribution) *stagdist.Plan {
	full := d.ScatterPlan()
	g0 := d.GlobalSelfRange()
	out := &stagdist.Plan{}
	for i, g := range full.Global {
		if g >= g0[0] && g < g0[1] {
			out.Local = append(out.Local, full.Local[i])
			out.Global = append(out.Global, g)
		}
	}
	return out
}
