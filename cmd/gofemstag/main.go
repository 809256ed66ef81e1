// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"path/filepath"

	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofemstag/config"
	"github.com/cpmech/gofemstag/mpix"
	"github.com/cpmech/gofemstag/stagdist"
)

func main() {

	// catch errors
	utl.Tsilent = false
	defer func() {
		if mpi.Rank() == 0 {
			if err := recover(); err != nil {
				utl.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// message
	utl.PfWhite("\nGofemstag -- parallel staggered-grid data distribution\n\n")
	utl.Pf("Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.\n")
	utl.Pf("Use of this source code is governed by a BSD-style\n")
	utl.Pf("license that can be found in the LICENSE file.\n\n")

	// flags
	cfgPath := flag.String("config", "", "path to a grid JSON config file")
	gx := flag.Int("grid_x", 0, "global element count along x (overrides config)")
	gy := flag.Int("grid_y", 0, "global element count along y (overrides config)")
	gz := flag.Int("grid_z", 0, "global element count along z (overrides config)")
	rx := flag.Int("ranks_x", 0, "requested rank count along x (overrides config; 0 keeps the config value)")
	ry := flag.Int("ranks_y", 0, "requested rank count along y (overrides config; 0 keeps the config value)")
	rz := flag.Int("ranks_z", 0, "requested rank count along z (overrides config; 0 keeps the config value)")
	width := flag.Int("stencil_width", 0, "ghost stencil width (overrides config)")
	bx := flag.String("boundary_x", "", "none|ghosted|periodic along x (overrides config)")
	by := flag.String("boundary_y", "", "none|ghosted|periodic along y (overrides config)")
	bz := flag.String("boundary_z", "", "none|ghosted|periodic along z (overrides config)")
	flag.Parse()

	if *cfgPath == "" {
		utl.Panic("Please, provide a -config file. Ex.: -config grid.json\n")
	}

	dir, fn := filepath.Split(*cfgPath)
	cfg := config.ReadGrid(dir, fn)
	if cfg == nil {
		utl.Panic("Start failed: could not read %s\n", *cfgPath)
		return
	}

	// command-line overrides, the way main.go's positional args override inp.Data
	if *gx > 0 {
		cfg.X.N = *gx
	}
	if *gy > 0 {
		cfg.Y.N = *gy
	}
	if *gz > 0 {
		cfg.Z.N = *gz
	}
	if *width > 0 {
		cfg.StencilWidth = *width
	}
	if *bx != "" {
		cfg.X.Boundary = *bx
	}
	if *by != "" {
		cfg.Y.Boundary = *by
	}
	if *bz != "" {
		cfg.Z.Boundary = *bz
	}
	var ranksOverride *[3]int
	if *rx > 0 || *ry > 0 || *rz > 0 {
		ranksOverride = &[3]int{*rx, *ry, *rz}
	}

	comm := mpix.World()
	n, r, dof, b, stencil, w, l := cfg.Params(ranksOverride)

	d, err := stagdist.Create3D(comm, n, r, dof, b, stencil, w, l)
	if err != nil {
		utl.Panic("Start failed: %v\n", err)
		return
	}
	if err := d.SetUp(); err != nil {
		utl.Panic("SetUp failed: %v\n", err)
		return
	}
	defer d.Destroy()

	if comm.Root() {
		start, size, extra := d.Corners()
		utl.Pf("rank %d/%d owns cells %v + size %v + extra %v, %d global dof\n",
			comm.Rank, comm.Size, start, size, extra, d.GlobalCount())
	}
}
