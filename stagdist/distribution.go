// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

import (
	"github.com/cpmech/gofemstag/mpix"
	"github.com/cpmech/gofemstag/stagerr"
)

// Params are the six construction parameters from which the entire
// distribution state is reconstructed on every process start; nothing is
// persisted beyond them.
type Params struct {
	N       [3]int       // global element counts
	R       [3]int       // requested rank grid; Auto entries are chosen by ChooseRankGrid
	Dof     [4]int       // dof per vertex, edge, face, element
	B       [3]BoundaryType
	Stencil StencilType
	Width   int
	L       [3][]int // optional per-axis partition vectors; nil means default partition
}

// Distribution is the set-up result for one rank: its owned and ghost
// sub-boxes, the rank's position in the grid, the global offset table, the
// neighbor table, the location offset table, the scatter plan, the
// local-to-global map, and (when applicable) the injective local-to-global
// map. Immutable once SetUp returns; destroyed with Destroy.
//
// This is the Topology3D variant of the tagged-variant/interface root the
// source's class hierarchy maps to in Go (§9 design notes); a Topology
// interface with 1-D/2-D variants would live alongside this one, but those
// dimensions are out of scope (§1 Non-goals).
type Distribution struct {
	Comm mpix.Comm

	params Params
	epe    int

	rankPos [3]int
	owned   [3]AxisPartition
	ghost   struct {
		start [3]int
		n     [3]int
	}

	neighbors [NumQuadrants]int
	offsets   *GlobalOffsetTable
	locTable  *LocationOffsetTable

	scatter    *Plan
	localToGlobal []int64
	injective     *Plan

	ready bool
}

// Create3D validates the construction parameters and returns a
// not-yet-set-up Distribution. comm is typically mpix.World(). Mirrors
// DMStagCreate3d's signature (§6): global sizes, rank grid (components may
// be Auto), dof vector, stencil type and width, optional partition vectors.
func Create3D(comm mpix.Comm, n, r [3]int, dof [4]int, b [3]BoundaryType, stencil StencilType, width int, l [3][]int) (*Distribution, error) {
	for a := 0; a < 3; a++ {
		if n[a] <= 0 {
			return nil, stagerr.Err(stagerr.ArgOutOfRange, "global size for axis %d must be positive, got %d", a, n[a])
		}
	}
	for i, d := range dof {
		if d < 0 {
			return nil, stagerr.Err(stagerr.ArgOutOfRange, "dof count %d (stratum %d) must be non-negative", d, i)
		}
	}

	grid, err := ChooseRankGrid(n, comm.Size, r)
	if err != nil {
		return nil, err
	}

	return &Distribution{
		Comm: comm,
		params: Params{
			N: n, R: grid, Dof: dof, B: b, Stencil: stencil, Width: width, L: l,
		},
		epe: Epe(dof),
	}, nil
}

// SetUp runs the full construction algorithm in dependency order: owned
// box, neighbor table, global offsets, ghost box, location offsets, scatter
// plan, local-to-global map, and (when applicable) the injective map. Any
// failure aborts set-up collectively: every rank votes via mpix.Comm.AllOK
// before SetUp returns an error, so a geometry violation detected on one
// rank does not leave the others blocked on a later collective.
func (d *Distribution) SetUp() error {
	err := d.setUpLocal()
	if !d.Comm.AllOK(err) {
		if err == nil {
			err = stagerr.Err(stagerr.Plib, "set-up failed on a peer rank")
		}
		return err
	}
	d.ready = true
	return nil
}

func (d *Distribution) setUpLocal() error {
	p := &d.params

	d.rankPos = rankPosition(d.Comm.Rank, p.R)

	owned, err := ComputeOwnedBox(p.N, p.R, d.rankPos, p.L)
	if err != nil {
		return err
	}
	d.owned = owned

	d.neighbors = ComputeNeighbors(p.R, d.rankPos, p.B)

	offsets, err := ComputeGlobalOffsets(p.N, p.R, p.B, p.Dof, p.L)
	if err != nil {
		return err
	}
	d.offsets = offsets

	for a := 0; a < 3; a++ {
		start, ng, err := ComputeGhostBox(d.owned[a], p.B[a], p.Stencil, p.Width)
		if err != nil {
			return err
		}
		d.ghost.start[a] = start
		d.ghost.n[a] = ng
	}

	epr := d.ghost.n[X] * d.epe
	epl := d.ghost.n[Y] * epr
	d.locTable = computeLocationOffsets(p.Dof, epr, epl)

	scatter, err := buildScatterPlan(d)
	if err != nil {
		return err
	}
	d.scatter = scatter

	l2g, err := buildLocalToGlobal(d)
	if err != nil {
		return err
	}
	d.localToGlobal = l2g

	if onePeriodicRankPerAxis(p.R, p.B) {
		inj, err := buildInjectivePlan(d)
		if err != nil {
			return err
		}
		d.injective = inj
	}

	return nil
}

// onePeriodicRankPerAxis reports whether any axis is periodic with exactly
// one rank, the case in which the forward scatter plan double-counts an
// owned dof (once directly, once through the periodic wrap) and an
// injective reverse map is required (§4.8).
func onePeriodicRankPerAxis(r [3]int, b [3]BoundaryType) bool {
	for a := 0; a < 3; a++ {
		if b[a] == BoundaryPeriodic && r[a] == 1 {
			return true
		}
	}
	return false
}

// rankPosition decodes a flat rank index into its 3-D grid position, x
// fastest, matching the flattening used throughout (rank = x + y*Rx +
// z*Rx*Ry).
func rankPosition(rank int, r [3]int) [3]int {
	x := rank % r[X]
	y := (rank / r[X]) % r[Y]
	z := rank / (r[X] * r[Y])
	return [3]int{x, y, z}
}

// Destroy releases the distribution's tables. Must be called collectively;
// thereafter the Distribution is not safe to use.
func (d *Distribution) Destroy() {
	d.scatter = nil
	d.injective = nil
	d.localToGlobal = nil
	d.offsets = nil
	d.locTable = nil
	d.ready = false
}

// --- queries (§6) ---

// GlobalSizes returns (Nx, Ny, Nz).
func (d *Distribution) GlobalSizes() [3]int { return d.params.N }

// Dof returns (d0, d1, d2, d3).
func (d *Distribution) Dof() [4]int { return d.params.Dof }

// EntriesPerElement returns epe, used by matrix preallocation.
func (d *Distribution) EntriesPerElement() int { return d.epe }

// Corners returns this rank's owned (start, size) and, per axis, the
// number of extra (non-element) dof rows it contributes as a non-periodic
// far boundary (0 or 1).
func (d *Distribution) Corners() (start, size, nExtra [3]int) {
	for a := 0; a < 3; a++ {
		start[a] = d.owned[a].Start
		size[a] = d.owned[a].Size
		if d.owned[a].Last && d.params.B[a] != BoundaryPeriodic {
			nExtra[a] = 1
		}
	}
	return
}

// GhostCorners returns this rank's ghost (startGhost, nGhost).
func (d *Distribution) GhostCorners() (startGhost, nGhost [3]int) {
	return d.ghost.start, d.ghost.n
}

// LocationSlot returns the offset, within a cell's local block, of the
// first dof of sub-location loc.
func (d *Distribution) LocationSlot(loc Location) int {
	return d.locTable.At(loc)
}

// Neighbors returns the 27 neighbor ranks, indexed by QuadrantIndex; -1
// means no neighbor at that quadrant.
func (d *Distribution) Neighbors() [NumQuadrants]int { return d.neighbors }

// RankGrid returns the rank grid R actually chosen (AUTO entries resolved).
func (d *Distribution) RankGrid() [3]int { return d.params.R }

// GlobalCount returns G, the total size of the flat global numbering.
func (d *Distribution) GlobalCount() int64 {
	if d.offsets == nil {
		return 0
	}
	return d.offsets.G
}

// GlobalSelfRange returns the [start, end) half-open range this rank owns
// within the flat global numbering.
func (d *Distribution) GlobalSelfRange() [2]int64 {
	p := &d.params
	idx := d.rankPos[X] + d.rankPos[Y]*p.R[X] + d.rankPos[Z]*p.R[X]*p.R[Y]
	start := d.offsets.Offsets[idx]
	end := d.offsets.G
	if idx+1 < len(d.offsets.Offsets) {
		end = d.offsets.Offsets[idx+1]
	}
	return [2]int64{start, end}
}

// ScatterPlan returns the global->local scatter plan built by ScatterBuilder.
func (d *Distribution) ScatterPlan() *Plan { return d.scatter }

// InjectivePlan returns the reverse local->global scatter plan, or nil if
// no axis is periodic with exactly one rank.
func (d *Distribution) InjectivePlan() *Plan { return d.injective }

// LocalToGlobal returns the full local->global map, including -1 sentinels
// at dummy entries.
func (d *Distribution) LocalToGlobal() []int64 { return d.localToGlobal }

// LocalLength returns the length of the local numbering (ghost-box volume *
// epe), i.e. len(LocalToGlobal()).
func (d *Distribution) LocalLength() int {
	return d.ghost.n[X] * d.ghost.n[Y] * d.ghost.n[Z] * d.epe
}

// Stencil returns the stencil type and width used to build the ghost halo.
func (d *Distribution) Stencil() (StencilType, int) { return d.params.Stencil, d.params.Width }

// Boundaries returns the per-axis boundary types.
func (d *Distribution) Boundaries() [3]BoundaryType { return d.params.B }
