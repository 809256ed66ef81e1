// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stagdist

import "github.com/cpmech/gofemstag/stagerr"

// ComputeGhostBox computes one axis's ghost (startGhost, nGhost) from its
// owned AxisPartition, boundary type, stencil type, and width, by the §4.5
// table.
func ComputeGhostBox(owned AxisPartition, b BoundaryType, s StencilType, w int) (startGhost, nGhost int, err error) {
	if w < 0 {
		return 0, 0, stagerr.Err(stagerr.ArgOutOfRange, "stencil width must be non-negative, got %d", w)
	}
	if s == StencilNone && w != 0 {
		return 0, 0, stagerr.Err(stagerr.SupUnsupported, "stencil width %d is invalid with stencil type none", w)
	}
	if w > owned.Size {
		return 0, 0, stagerr.Err(stagerr.SupUnsupported, "stencil width %d exceeds local size %d", w, owned.Size)
	}

	hasInterior := s == StencilStar || s == StencilBox

	switch b {
	case BoundaryNone, BoundaryGhosted:
		if !hasInterior {
			extra := 0
			if owned.Last {
				extra = 1
			}
			return owned.Start, owned.Size + extra, nil
		}
		if b == BoundaryNone {
			left := 0
			if !owned.First {
				left = w
			}
			right := w
			if owned.Last {
				right = 1
			} else {
				right = w
			}
			return owned.Start - left, owned.Size + left + right, nil
		}
		// GHOSTED, STAR/BOX
		extra := 0
		if owned.Last && w == 0 {
			extra = 1
		}
		return owned.Start - w, owned.Size + 2*w + extra, nil

	case BoundaryPeriodic:
		if !hasInterior {
			return owned.Start, owned.Size, nil
		}
		return owned.Start - w, owned.Size + 2*w, nil
	}

	return 0, 0, stagerr.Err(stagerr.SupUnsupported, "unsupported boundary type %v", b)
}
