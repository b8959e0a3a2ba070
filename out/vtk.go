// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of results for visualization
package out

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/gomorph/gomorph/fem"
)

// WriteVTK writes one converged increment to a legacy ASCII VTK file with
// displacements and reaction forces as point data
func WriteVTK(filename string, msh *fem.Mesh, res *fem.Result) (err error) {

	u := res.Fields[0]
	if u.Nnod != len(msh.Verts) {
		return chk.Err("out: field has %d nodes; mesh has %d vertices", u.Nnod, len(msh.Verts))
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "# vtk DataFile Version 3.0\n")
	fmt.Fprintf(&b, "gomorph results\n")
	fmt.Fprintf(&b, "ASCII\n")
	fmt.Fprintf(&b, "DATASET UNSTRUCTURED_GRID\n")

	fmt.Fprintf(&b, "POINTS %d float\n", len(msh.Verts))
	for _, v := range msh.Verts {
		fmt.Fprintf(&b, "%g %g %g\n", v[0], v[1], v[2])
	}

	fmt.Fprintf(&b, "CELLS %d %d\n", len(msh.Cells), 9*len(msh.Cells))
	for _, c := range msh.Cells {
		fmt.Fprintf(&b, "8 %d %d %d %d %d %d %d %d\n", c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7])
	}
	fmt.Fprintf(&b, "CELL_TYPES %d\n", len(msh.Cells))
	for range msh.Cells {
		fmt.Fprintf(&b, "12\n") // VTK_HEXAHEDRON
	}

	// reaction forces: first-field block of the residual
	react := fem.Split(res.R, res.Unstack)[0]

	fmt.Fprintf(&b, "POINT_DATA %d\n", u.Nnod)
	fmt.Fprintf(&b, "VECTORS displacement float\n")
	for n := 0; n < u.Nnod; n++ {
		fmt.Fprintf(&b, "%g %g %g\n", u.Vals[n*u.Ndim], u.Vals[n*u.Ndim+1], u.Vals[n*u.Ndim+2])
	}
	fmt.Fprintf(&b, "VECTORS reaction_force float\n")
	for n := 0; n < u.Nnod; n++ {
		fmt.Fprintf(&b, "%g %g %g\n", react[n*u.Ndim], react[n*u.Ndim+1], react[n*u.Ndim+2])
	}

	err = os.WriteFile(filename, b.Bytes(), 0644)
	if err != nil {
		return chk.Err("out: cannot write VTK file %q: %v", filename, err)
	}
	return
}

// ReactionForce extracts, per converged increment, the total reaction force
// (per component) over the nodes of the named boundary condition
func ReactionForce(results []*fem.Result, bcs fem.Bcs, name string) (force [][]float64, err error) {
	bc := bcs.Find(name)
	if bc == nil {
		return nil, chk.Err("out: boundary condition %q does not exist", name)
	}
	for _, res := range results {
		u := res.Fields[0]
		react := fem.Split(res.R, res.Unstack)[0]
		f := make([]float64, u.Ndim)
		for _, n := range bc.Nodes {
			for c := 0; c < u.Ndim; c++ {
				f[c] += react[n*u.Ndim+c]
			}
		}
		force = append(force, f)
	}
	return
}
