// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

// Location names one of the 27 sub-locations within a cell. Of these, 8 are
// canonically owned by the cell (BackDownLeft, the three "back/down/left"
// edges, the three "back/down/left" faces, and Element); the other 19 are
// addressing conveniences that resolve to a canonical location of a
// neighboring cell.
type Location int

// the 27 sub-locations, grouped by stratum (1 element + 6 faces + 12 edges +
// 8 vertices), matching the staggered-grid naming this engine's set-up
// algorithm was distilled from.
const (
	Element Location = iota

	Left
	Right
	Down
	Up
	Back
	Front

	DownLeft
	DownRight
	UpLeft
	UpRight
	BackLeft
	BackRight
	FrontLeft
	FrontRight
	BackDown
	BackUp
	FrontDown
	FrontUp

	BackDownLeft
	BackDownRight
	BackUpLeft
	BackUpRight
	FrontDownLeft
	FrontDownRight
	FrontUpLeft
	FrontUpRight

	numLocations = 27
)

var locationNames = [numLocations]string{
	Element:       "element",
	Left:          "left",
	Right:         "right",
	Down:          "down",
	Up:            "up",
	Back:          "back",
	Front:         "front",
	DownLeft:      "down-left",
	DownRight:     "down-right",
	UpLeft:        "up-left",
	UpRight:       "up-right",
	BackLeft:      "back-left",
	BackRight:     "back-right",
	FrontLeft:     "front-left",
	FrontRight:    "front-right",
	BackDown:      "back-down",
	BackUp:        "back-up",
	FrontDown:     "front-down",
	FrontUp:       "front-up",
	BackDownLeft:  "back-down-left",
	BackDownRight: "back-down-right",
	BackUpLeft:    "back-up-left",
	BackUpRight:   "back-up-right",
	FrontDownLeft: "front-down-left",
	FrontDownRight: "front-down-right",
	FrontUpLeft:   "front-up-left",
	FrontUpRight:  "front-up-right",
}

func (l Location) String() string {
	if l < 0 || int(l) >= numLocations {
		return "invalid"
	}
	return locationNames[l]
}

// LocationOffsetTable is the fixed per-element stride table: for each of
// the 27 sub-location names, the signed offset (in local entries, i.e.
// scalar slots) from a cell's base index to the first dof of that
// sub-location. Computed once from the dof vector and the ghost-row/layer
// strides (epe, epr, epl).
type LocationOffsetTable struct {
	offsets [numLocations]int
}

// At returns the offset for location l.
func (t *LocationOffsetTable) At(l Location) int { return t.offsets[l] }

// computeLocationOffsets builds the table. epr = nGhostX*epe (row pitch),
// epl = nGhostY*epr (layer pitch). The eight canonical offsets are laid out
// first, in VERTEX, EDGE(x3), FACE(x3), ELEMENT order (§3 of the local
// numbering contract); the 19 non-canonical names are each a canonical
// offset of a neighboring cell, i.e. a +/- epe, epr, or epl shift, exactly
// as the source computes DMSTAG_RIGHT = DMSTAG_LEFT + epe and so on.
func computeLocationOffsets(dof [4]int, epr, epl int) *LocationOffsetTable {
	d0, d1, d2 := dof[0], dof[1], dof[2]
	epe := Epe(dof)

	t := &LocationOffsetTable{}

	// canonical: VERTEX, 3 EDGE groups, 3 FACE groups, ELEMENT
	backDownLeft := 0
	backDown := backDownLeft + d0
	backLeft := backDown + d1
	downLeft := backLeft + d1
	back := downLeft + d1
	down := back + d2
	left := down + d2
	element := left + d2

	t.offsets[BackDownLeft] = backDownLeft
	t.offsets[BackDown] = backDown
	t.offsets[BackLeft] = backLeft
	t.offsets[DownLeft] = downLeft
	t.offsets[Back] = back
	t.offsets[Down] = down
	t.offsets[Left] = left
	t.offsets[Element] = element

	// non-canonical: shift to the canonical location of the +1 neighbor
	// along x (epe), y (epr), or z (epl).
	t.offsets[BackDownRight] = backDownLeft + epe
	t.offsets[BackUpLeft] = backDownLeft + epr
	t.offsets[BackUpRight] = t.offsets[BackUpLeft] + epe
	t.offsets[FrontDownLeft] = backDownLeft + epl
	t.offsets[FrontDownRight] = t.offsets[FrontDownLeft] + epe
	t.offsets[FrontUpLeft] = t.offsets[FrontDownLeft] + epr
	t.offsets[FrontUpRight] = t.offsets[FrontUpLeft] + epe

	t.offsets[BackRight] = backLeft + epe
	t.offsets[FrontLeft] = backLeft + epl
	t.offsets[FrontRight] = t.offsets[FrontLeft] + epe
	t.offsets[BackUp] = backDown + epr
	t.offsets[FrontDown] = backDown + epl
	t.offsets[FrontUp] = t.offsets[FrontDown] + epr
	t.offsets[DownRight] = downLeft + epe
	t.offsets[UpLeft] = downLeft + epr
	t.offsets[UpRight] = t.offsets[UpLeft] + epe

	t.offsets[Right] = left + epe
	t.offsets[Up] = down + epr
	t.offsets[Front] = back + epl

	return t
}
