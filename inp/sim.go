// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// Data holds global simulation data
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/gomorph
	ShowR  bool   `json:"showr"`  // show residuals per iteration
}

// SolverData holds Newton-Raphson corrector data
type SolverData struct {
	NmaxIt int     `json:"nmaxit"` // maximum number of iterations per increment
	Tol    float64 `json:"tol"`    // tolerance on the relative residual norm
}

// MeshData holds the discretized body: vertex coordinates and cell connectivity
type MeshData struct {
	Verts [][]float64 `json:"verts"` // [nverts][3] coordinates
	Cells [][]int     `json:"cells"` // [ncells][8] hex8 connectivity
}

// BcData holds one essential boundary condition specification
type BcData struct {
	Name  string  `json:"name"`  // identifier; e.g. "move", "fixbottom"
	Field string  `json:"field"` // field key; e.g. "u"
	Nodes []int   `json:"nodes"` // constrained vertices
	Mask  []bool  `json:"mask"`  // per-component fixed flags
	Value float64 `json:"value"` // target value applied to masked components
}

// StageData holds one increment sequence: the boundary whose target is
// updated and the ordered values it takes
type StageData struct {
	Boundary string    `json:"boundary"` // name of the moving boundary condition
	Moves    []float64 `json:"moves"`    // ordered target values, one per increment
}

// Simulation holds all data read from a .sim file
type Simulation struct {
	Data   Data         `json:"data"`
	Solver SolverData   `json:"solver"`
	Mat    MatData      `json:"mat"`
	Mesh   MeshData     `json:"mesh"`
	Bcs    []*BcData    `json:"bcs"`
	Stages []*StageData `json:"stages"`
}

// ReadSim reads a simulation file, sets default values and checks consistency
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("inp: cannot read simulation file %q: %v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("inp: cannot parse simulation file %q: %v", simfilepath, err)
	}

	// defaults
	if o.Solver.NmaxIt < 1 {
		o.Solver.NmaxIt = 8
	}
	if o.Solver.Tol <= 0 {
		o.Solver.Tol = 1e-6
	}

	// check
	if len(o.Mesh.Verts) < 1 {
		return nil, chk.Err("inp: simulation %q has no vertices", simfilepath)
	}
	for i, c := range o.Mesh.Cells {
		if len(c) != 8 {
			return nil, chk.Err("inp: cell %d must have 8 vertices (hex8); got %d", i, len(c))
		}
		for _, v := range c {
			if v < 0 || v >= len(o.Mesh.Verts) {
				return nil, chk.Err("inp: cell %d references vertex %d out of range", i, v)
			}
		}
	}
	if o.Mat.Model == "" {
		return nil, chk.Err("inp: simulation %q has no material model", simfilepath)
	}
	for _, stg := range o.Stages {
		found := false
		for _, bc := range o.Bcs {
			if bc.Name == stg.Boundary {
				found = true
			}
		}
		if !found {
			return nil, chk.Err("inp: stage references unknown boundary %q", stg.Boundary)
		}
	}
	return
}
