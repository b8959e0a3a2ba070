// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gomorph/gomorph/fem"
	"github.com/gomorph/gomorph/inp"
	"github.com/gomorph/gomorph/msolid"
	"github.com/gomorph/gomorph/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "data/cube", ".sim", true)
	verbose := io.ArgToBool(1, true)
	savevtk := io.ArgToBool(2, true)
	checkmat := io.ArgToBool(3, false)

	// message
	if verbose {
		io.Pf("\nGomorph -- incremental FE solver for history-dependent rubber-like materials\n\n")
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}

	// material model
	mdl, err := msolid.New(sim.Mat.Model)
	if err != nil {
		chk.Panic("cannot allocate model:\n%v", err)
	}
	err = mdl.Init(sim.Mat.Prms)
	if err != nil {
		chk.Panic("cannot initialise model:\n%v", err)
	}

	// material check mode: print the nominal stress of an incompressible
	// uniaxial stretch history and quit
	if checkmat {
		λs := []float64{1.0, 1.1, 1.2, 1.3, 1.4, 1.5}
		P, _, err2 := msolid.Uniaxial(mdl, λs)
		if err2 != nil {
			chk.Panic("material check failed:\n%v", err2)
		}
		io.Pf("material %q (%s)\n", sim.Mat.Name, sim.Mat.Model)
		for k, λ := range λs {
			io.Pf("  λ=%4.2f  P=%13.6e\n", λ, P[k])
		}
		return
	}

	// domain
	msh, err := fem.NewMesh(sim.Mesh.Verts, sim.Mesh.Cells)
	if err != nil {
		chk.Panic("cannot build mesh:\n%v", err)
	}
	dom, err := fem.NewDomain(msh, mdl)
	if err != nil {
		chk.Panic("cannot build domain:\n%v", err)
	}

	// fields, boundary conditions and corrector
	fields := fem.Fields{fem.NewField("u", len(msh.Verts), 3)}
	bcs := fem.NewBcs(sim.Bcs)
	cor := fem.NewCorrector(dom)
	cor.NmaxIt = sim.Solver.NmaxIt
	cor.Tol = sim.Solver.Tol
	cor.ShowR = sim.Data.ShowR && verbose

	// run stages; the committed constitutive state carries over from one
	// stage to the next
	drv := fem.Driver{
		Asm:     dom,
		Fields:  fields,
		Bcs:     bcs,
		Cor:     cor,
		Verbose: verbose,
	}
	nvtk := 0
	for _, stg := range sim.Stages {
		drv.Boundary = stg.Boundary
		res, status, err := drv.Run(stg.Moves)
		if verbose {
			io.Pf("\nstage %v: %d of %d increments converged\n", status, len(res), len(stg.Moves))
		}
		if savevtk {
			for _, r := range res {
				nvtk++
				fn := io.Sf("%s_%03d.vtk", fnkey, nvtk)
				if err2 := out.WriteVTK(fn, msh, r); err2 != nil {
					chk.Panic("cannot write results:\n%v", err2)
				}
			}
		}
		if status == fem.Aborted {
			chk.Panic("stage aborted:\n%v", err)
		}
	}
}
