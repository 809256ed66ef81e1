// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the .json configuration file read by the
// gofemstag command: the global element counts, rank grid, dof vector,
// boundary conditions, and stencil a Distribution is set up from.
package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofemstag/stagdist"
)

// AxisConfig holds one axis's global size, requested rank count (0 means
// AUTO), boundary type, and optional explicit partition vector.
type AxisConfig struct {
	N         int    `json:"n"`         // global element count
	Ranks     int    `json:"ranks"`     // requested rank count; 0 means AUTO
	Boundary  string `json:"boundary"`  // "none", "ghosted", or "periodic"
	Partition []int  `json:"partition"` // optional explicit per-rank sizes
}

// GridConfig holds everything a Distribution is built from: three axis
// configs, the dof vector, and the stencil. Grounded on inp.Data: a plain
// JSON-tagged struct with SetDefault/PostProcess, read with ReadGrid the
// way inp.ReadSim reads a .sim file.
type GridConfig struct {
	Desc string `json:"desc"` // description of the run

	X AxisConfig `json:"x"`
	Y AxisConfig `json:"y"`
	Z AxisConfig `json:"z"`

	Dof [4]int `json:"dof"` // dof per vertex, edge, face, element

	Stencil      string `json:"stencil"`      // "none", "star", or "box"
	StencilWidth int    `json:"stencil_width"`

	DirOut string `json:"dirout"` // output directory; set by PostProcess, nothing in this module writes to it

	// derived
	FnameKey string
}

// SetDefault fills in the values a bare-minimum config file may omit.
func (o *GridConfig) SetDefault() {
	o.Stencil = "star"
	o.StencilWidth = 1
	o.X.Boundary = "none"
	o.Y.Boundary = "none"
	o.Z.Boundary = "none"
}

// PostProcess derives FnameKey and DirOut from the file path, mirroring
// inp.Data.PostProcess.
func (o *GridConfig) PostProcess(dir, fn string) {
	o.FnameKey = io.FnKey(fn)
	if o.DirOut == "" {
		o.DirOut = "/tmp/gofemstag/" + o.FnameKey
	}
}

// ReadGrid reads and validates a GridConfig from a JSON file, mirroring
// inp.ReadSim's read/default/unmarshal/post-process sequence. Returns nil on
// a read or parse error (and logs it, via io.PfRed, exactly as ReadSim
// does), so callers need only check for a nil return.
func ReadGrid(dir, fn string) *GridConfig {
	var o GridConfig
	o.SetDefault()

	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		io.PfRed("config: cannot read grid file %s/%s\n%v\n", dir, fn, err)
		return nil
	}

	if err := json.Unmarshal(b, &o); err != nil {
		io.PfRed("config: cannot unmarshal grid file %s/%s\n%v\n", dir, fn, err)
		return nil
	}

	o.PostProcess(dir, fn)
	return &o
}

// BoundaryType parses one axis's "none"/"ghosted"/"periodic" tag.
func BoundaryType(tag string) stagdist.BoundaryType {
	switch tag {
	case "ghosted":
		return stagdist.BoundaryGhosted
	case "periodic":
		return stagdist.BoundaryPeriodic
	default:
		return stagdist.BoundaryNone
	}
}

// StencilType parses the "none"/"star"/"box" tag.
func StencilType(tag string) stagdist.StencilType {
	switch tag {
	case "none":
		return stagdist.StencilNone
	case "box":
		return stagdist.StencilBox
	default:
		return stagdist.StencilStar
	}
}

// Params converts the config into the N/R/B/Dof/Stencil/Width/L
// construction parameters stagdist.Create3D expects. ranksOverride, when
// non-nil, replaces the three requested rank counts (used by the -ranks_x/
// y/z command-line flags, which take precedence over the config file).
func (o *GridConfig) Params(ranksOverride *[3]int) (n, r [3]int, dof [4]int, b [3]stagdist.BoundaryType, stencil stagdist.StencilType, width int, l [3][]int) {
	axes := [3]AxisConfig{o.X, o.Y, o.Z}
	for a := 0; a < 3; a++ {
		n[a] = axes[a].N
		r[a] = axes[a].Ranks
		if r[a] == 0 {
			r[a] = stagdist.Auto
		}
		b[a] = BoundaryType(axes[a].Boundary)
		if len(axes[a].Partition) > 0 {
			l[a] = axes[a].Partition
		}
	}
	if ranksOverride != nil {
		for a := 0; a < 3; a++ {
			if ranksOverride[a] > 0 {
				r[a] = ranksOverride[a]
			}
		}
	}
	dof = o.Dof
	stencil = StencilType(o.Stencil)
	width = o.StencilWidth
	if n[stagdist.X] <= 0 || n[stagdist.Y] <= 0 || n[stagdist.Z] <= 0 {
		chk.Panic("config: grid sizes must be positive, got %v", n)
	}
	return
}
