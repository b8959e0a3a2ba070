// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// ReducedSystem holds the free-free block of the global tangent and the
// right-hand side after static condensation of the prescribed dofs:
//  K11 δy1 = -r[dof1] - K10 δy0
type ReducedSystem struct {
	K11  *mat.Dense
	Rhs  *mat.VecDense
	dof0 []int
	dof1 []int
}

// ReduceSystem eliminates the prescribed dofs from the full residual r and
// tangent K by static condensation, folding the known increments δy0 into
// the right-hand side
func ReduceSystem(r []float64, K *sparse.DOK, dof0, dof1 []int, δy0 []float64) (o *ReducedSystem) {
	n1 := len(dof1)
	o = &ReducedSystem{dof0: dof0, dof1: dof1}
	if n1 == 0 {
		return
	}
	o.K11 = mat.NewDense(n1, n1, nil)
	o.Rhs = mat.NewVecDense(n1, nil)
	for a, I := range dof1 {
		for b, J := range dof1 {
			o.K11.Set(a, b, K.At(I, J))
		}
		rhs := -r[I]
		for b, J := range dof0 {
			rhs -= K.At(I, J) * δy0[b]
		}
		o.Rhs.SetVec(a, rhs)
	}
	return
}

// Solve factorizes the reduced tangent and returns the full-length (ny)
// correction vector with the prescribed increments δy0 merged back at their
// slots, matching the global unknown stacking
func (o *ReducedSystem) Solve(ny int, δy0 []float64) (δy []float64, err error) {
	δy = make([]float64, ny)
	for b, J := range o.dof0 {
		δy[J] = δy0[b]
	}
	n1 := len(o.dof1)
	if n1 == 0 {
		return
	}
	var lu mat.LU
	lu.Factorize(o.K11)
	x := mat.NewVecDense(n1, nil)
	err = lu.SolveVecTo(x, false, o.Rhs)
	if err != nil {
		cond, ok := err.(mat.Condition)
		if !ok || math.IsInf(float64(cond), 1) {
			return nil, singErr("reduced tangent is singular to working precision: %v", err)
		}
		// near-singular: the solution is still usable; divergence checks
		// downstream will catch a breakdown
		err = nil
	}
	for a, I := range o.dof1 {
		δy[I] = x.AtVec(a)
	}
	return
}
