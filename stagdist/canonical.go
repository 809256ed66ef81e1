// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

// CanonicalGroup is one of the 8 sub-locations a cell canonically owns,
// plus the classification needed to decide whether it survives at a
// non-periodic far boundary: an edge survives unless its running axis is
// the extra one; a face survives unless either of its two non-normal axes
// is extra; the vertex always survives; the element never does at an
// extra position.
type CanonicalGroup struct {
	Loc     Location
	Stratum Stratum
	Axis    int // running axis for Edge, normal axis for Face; unused otherwise
}

var CanonicalGroups = [8]CanonicalGroup{
	{BackDownLeft, DofVertex, -1},
	{BackDown, DofEdge, X},
	{BackLeft, DofEdge, Y},
	{DownLeft, DofEdge, Z},
	{Back, DofFace, Z},
	{Down, DofFace, Y},
	{Left, DofFace, X},
	{Element, DofElement, -1},
}

// edgeByRunningAxis maps an axis to the canonical edge that runs along it.
var edgeByRunningAxis = [3]Location{X: BackDown, Y: BackLeft, Z: DownLeft}

// faceByNormalAxis maps an axis to the canonical face normal to it.
var faceByNormalAxis = [3]Location{X: Left, Y: Down, Z: Back}

// dofCount returns the per-cell dof count of stratum s.
func dofCount(s Stratum, dof [4]int) int { return dof[s] }

// survives reports whether canonical group g has a real (non-dummy) dof at
// a cell position with the given per-axis extra flags (§4.7's rule of
// thumb: "a dof is real iff it lies on the face/edge/vertex that the extra
// slab still provides").
func (g CanonicalGroup) survives(extra [3]bool) bool {
	switch g.Stratum {
	case DofVertex:
		return true
	case DofElement:
		return !extra[X] && !extra[Y] && !extra[Z]
	case DofEdge:
		return !extra[g.Axis]
	case DofFace:
		for b := 0; b < 3; b++ {
			if b != g.Axis && extra[b] {
				return false
			}
		}
		return true
	}
	return false
}

// slotInFullCell returns the offset within a full (epe-length) cell block
// of component `component` of canonical location loc, and whether it is in
// range.
func slotInFullCell(loc Location, dof [4]int, component int) (int, bool) {
	d0, d1, d2 := dof[0], dof[1], dof[2]
	switch loc {
	case BackDownLeft:
		return component, component < d0
	case BackDown:
		return d0 + component, component < d1
	case BackLeft:
		return d0 + d1 + component, component < d1
	case DownLeft:
		return d0 + 2*d1 + component, component < d1
	case Back:
		return d0 + 3*d1 + component, component < d2
	case Down:
		return d0 + 3*d1 + d2 + component, component < d2
	case Left:
		return d0 + 3*d1 + 2*d2 + component, component < d2
	case Element:
		return d0 + 3*d1 + 3*d2 + component, component < dof[3]
	}
	return 0, false
}

// otherAxesAscending returns the two axes other than `axis`, in ascending
// order.
func otherAxesAscending(axis int) (int, int) {
	switch axis {
	case X:
		return Y, Z
	case Y:
		return X, Z
	default:
		return X, Y
	}
}

// slotInFaceBlock returns the offset within a reduced f-entry block (one
// axis, `axis`, at its far extra position) of component `component` of
// canonical location loc. Layout: vertex, edge(other1), edge(other2),
// face(axis).
func slotInFaceBlock(axis int, loc Location, dof [4]int, component int) (int, bool) {
	d0, d1 := dof[0], dof[1]
	other1, other2 := otherAxesAscending(axis)
	switch loc {
	case BackDownLeft:
		return component, component < d0
	case edgeByRunningAxis[other1]:
		return d0 + component, component < d1
	case edgeByRunningAxis[other2]:
		return d0 + d1 + component, component < d1
	case faceByNormalAxis[axis]:
		return d0 + 2*d1 + component, component < dof[2]
	}
	return 0, false
}

// slotInEdgeBlock returns the offset within a reduced e-entry block (two
// axes at their far extra position, leaving `thirdAxis` free) of component
// `component` of canonical location loc. Layout: vertex, edge(thirdAxis).
func slotInEdgeBlock(thirdAxis int, loc Location, dof [4]int, component int) (int, bool) {
	d0 := dof[0]
	switch loc {
	case BackDownLeft:
		return component, component < d0
	case edgeByRunningAxis[thirdAxis]:
		return d0 + component, component < dof[1]
	}
	return 0, false
}

// slotInCornerBlock returns the offset within a reduced v-entry block (all
// three axes at their far extra position) of component `component` of
// canonical location loc. Layout: vertex only.
func slotInCornerBlock(loc Location, dof [4]int, component int) (int, bool) {
	if loc == BackDownLeft {
		return component, component < dof[0]
	}
	return 0, false
}

// ownedIndexer computes the global index of any dof owned by one rank,
// given that rank's owned size and its per-axis far-boundary flags, in O(1)
// per lookup. It is the mechanical counterpart of globalIntervalSize: the
// same 8 additive blocks (body, 3 face, 3 edge, 1 corner), but returning an
// index within the block rather than just its size. ScatterBuilder and
// LocalToGlobalBuilder build one of these per neighbor rank (using that
// neighbor's own size/far flags, since every rank can compute any other
// rank's partition locally) to translate a global cell coordinate into that
// neighbor's share of the flat global numbering.
type ownedIndexer struct {
	size [3]int
	far  [3]bool
	dof  [4]int
	epe  int

	faceDofCount   int
	edgeDofCount   int
	cornerDofCount int

	bodyBase   int64
	faceBase   [3]int64 // indexed by the far axis
	edgeBase   [3]int64 // indexed by the one axis NOT at its far boundary
	cornerBase int64
}

// newOwnedIndexer precomputes the block bases for one rank's owned region.
func newOwnedIndexer(size [3]int, far [3]bool, dof [4]int) *ownedIndexer {
	idx := &ownedIndexer{
		size:           size,
		far:            far,
		dof:            dof,
		epe:            Epe(dof),
		faceDofCount:   faceDof(dof),
		edgeDofCount:   edgeDof(dof),
		cornerDofCount: cornerDof(dof),
	}

	sx, sy, sz := int64(size[X]), int64(size[Y]), int64(size[Z])
	f, e, v := int64(idx.faceDofCount), int64(idx.edgeDofCount), int64(idx.cornerDofCount)

	base := sx * sy * sz * int64(idx.epe)
	if far[X] {
		idx.faceBase[X] = base
		base += sy * sz * f
	}
	if far[Y] {
		idx.faceBase[Y] = base
		base += sx * sz * f
	}
	if far[Z] {
		idx.faceBase[Z] = base
		base += sx * sy * f
	}
	if far[X] && far[Y] {
		idx.edgeBase[Z] = base
		base += sz * e
	}
	if far[X] && far[Z] {
		idx.edgeBase[Y] = base
		base += sy * e
	}
	if far[Y] && far[Z] {
		idx.edgeBase[X] = base
		base += sx * e
	}
	if far[X] && far[Y] && far[Z] {
		idx.cornerBase = base
	}
	return idx
}

// index returns the global index (relative to this rank's own offset) of
// component `component` at sub-location loc of cell (i,j,k), where (i,j,k)
// are coordinates local to this rank's owned box: 0..size[a]-1 for an
// interior cell along axis a, or exactly size[a] for the one extra row this
// rank contributes as a non-periodic far boundary along axis a. ok is false
// for any coordinate or location/component combination that does not exist
// (out of range, or a dummy that does not survive at this position).
func (idx *ownedIndexer) index(i, j, k int, loc Location, component int) (int64, bool) {
	extraX := i == idx.size[X]
	extraY := j == idx.size[Y]
	extraZ := k == idx.size[Z]
	if (extraX && !idx.far[X]) || (extraY && !idx.far[Y]) || (extraZ && !idx.far[Z]) {
		return 0, false
	}
	if i < 0 || i > idx.size[X] || j < 0 || j > idx.size[Y] || k < 0 || k > idx.size[Z] {
		return 0, false
	}

	switch {
	case !extraX && !extraY && !extraZ:
		slot, ok := slotInFullCell(loc, idx.dof, component)
		if !ok {
			return 0, false
		}
		cell := int64(i) + int64(j)*int64(idx.size[X]) + int64(k)*int64(idx.size[X])*int64(idx.size[Y])
		return idx.bodyBase + cell*int64(idx.epe) + int64(slot), true

	case extraX && !extraY && !extraZ:
		slot, ok := slotInFaceBlock(X, loc, idx.dof, component)
		if !ok {
			return 0, false
		}
		cell := int64(j) + int64(k)*int64(idx.size[Y])
		return idx.faceBase[X] + cell*int64(idx.faceDofCount) + int64(slot), true

	case !extraX && extraY && !extraZ:
		slot, ok := slotInFaceBlock(Y, loc, idx.dof, component)
		if !ok {
			return 0, false
		}
		cell := int64(i) + int64(k)*int64(idx.size[X])
		return idx.faceBase[Y] + cell*int64(idx.faceDofCount) + int64(slot), true

	case !extraX && !extraY && extraZ:
		slot, ok := slotInFaceBlock(Z, loc, idx.dof, component)
		if !ok {
			return 0, false
		}
		cell := int64(i) + int64(j)*int64(idx.size[X])
		return idx.faceBase[Z] + cell*int64(idx.faceDofCount) + int64(slot), true

	case extraX && extraY && !extraZ:
		slot, ok := slotInEdgeBlock(Z, loc, idx.dof, component)
		if !ok {
			return 0, false
		}
		return idx.edgeBase[Z] + int64(k)*int64(idx.edgeDofCount) + int64(slot), true

	case extraX && !extraY && extraZ:
		slot, ok := slotInEdgeBlock(Y, loc, idx.dof, component)
		if !ok {
			return 0, false
		}
		return idx.edgeBase[Y] + int64(j)*int64(idx.edgeDofCount) + int64(slot), true

	case !extraX && extraY && extraZ:
		slot, ok := slotInEdgeBlock(X, loc, idx.dof, component)
		if !ok {
			return 0, false
		}
		return idx.edgeBase[X] + int64(i)*int64(idx.edgeDofCount) + int64(slot), true

	default: // extraX && extraY && extraZ
		slot, ok := slotInCornerBlock(loc, idx.dof, component)
		if !ok {
			return 0, false
		}
		return idx.cornerBase + int64(slot), true
	}
}
