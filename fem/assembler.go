// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/james-bowman/sparse"

	"github.com/cpmech/gosl/chk"
)

// Mesh holds the vertices and hex8 cells of the discretized body
type Mesh struct {
	Verts [][]float64 // [nverts][3] coordinates
	Cells [][]int     // [ncells][8] connectivity
}

// NewMesh checks and wraps vertex/cell data
func NewMesh(verts [][]float64, cells [][]int) (o *Mesh, err error) {
	for i, v := range verts {
		if len(v) != 3 {
			return nil, chk.Err("fem: vertex %d must have 3 coordinates; got %d", i, len(v))
		}
	}
	for i, c := range cells {
		if len(c) != 8 {
			return nil, chk.Err("fem: cell %d must have 8 vertices (hex8); got %d", i, len(c))
		}
	}
	return &Mesh{verts, cells}, nil
}

// Assembler integrates the weak form over the body. The corrector treats it
// as a black box producing dimensionally-correct global contributions.
//
// Residual must overwrite r completely (the vector is rebuilt fresh every
// iteration); Tangent receives a freshly allocated matrix. Both evaluate the
// constitutive law against the committed state sv of the previous increment.
// UpdateState produces the new per-point states (and, optionally, the strain
// measure C and stress S snapshots when non-nil) from converged fields.
type Assembler interface {
	Ny() int
	Nip() int
	InitStates() [][]float64
	Residual(r []float64, fields Fields, sv [][]float64) error
	Tangent(K *sparse.DOK, fields Fields, sv [][]float64) error
	UpdateState(svNew, svPrev [][]float64, fields Fields, C, S [][]float64) error
}
