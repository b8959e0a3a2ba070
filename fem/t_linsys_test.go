// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/james-bowman/sparse"
)

func Test_linsys01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linsys01. static condensation of a 3x3 system")

	// K = | 4 1 0 |   r = | 0.1 |   dof0 = {0}, δy0 = {0.5}
	//     | 1 3 1 |       | 0.2 |
	//     | 0 1 2 |       | 0.3 |
	K := sparse.NewDOK(3, 3)
	K.Set(0, 0, 4)
	K.Set(0, 1, 1)
	K.Set(1, 0, 1)
	K.Set(1, 1, 3)
	K.Set(1, 2, 1)
	K.Set(2, 1, 1)
	K.Set(2, 2, 2)
	r := []float64{0.1, 0.2, 0.3}

	dof0 := []int{0}
	dof1 := []int{1, 2}
	δy0 := []float64{0.5}

	rs := ReduceSystem(r, K, dof0, dof1, δy0)
	chk.Float64(tst, "K11[0][0]", 1e-17, rs.K11.At(0, 0), 3)
	chk.Float64(tst, "K11[0][1]", 1e-17, rs.K11.At(0, 1), 1)
	chk.Float64(tst, "K11[1][0]", 1e-17, rs.K11.At(1, 0), 1)
	chk.Float64(tst, "K11[1][1]", 1e-17, rs.K11.At(1, 1), 2)
	chk.Float64(tst, "rhs[0]", 1e-15, rs.Rhs.AtVec(0), -0.7)
	chk.Float64(tst, "rhs[1]", 1e-15, rs.Rhs.AtVec(1), -0.3)

	δy, err := rs.Solve(3, δy0)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	io.Pforan("δy = %v\n", δy)
	chk.Array(tst, "δy", 1e-14, δy, []float64{0.5, -0.22, -0.04})
}

func Test_linsys02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linsys02. singular reduced tangent")

	K := sparse.NewDOK(3, 3) // zero matrix
	r := []float64{1, 1, 1}
	rs := ReduceSystem(r, K, nil, []int{0, 1, 2}, nil)
	_, err := rs.Solve(3, nil)
	if err == nil {
		tst.Errorf("Solve must fail for a singular system\n")
		return
	}
	if _, ok := err.(*SingularSystemError); !ok {
		tst.Errorf("error must be a *SingularSystemError; got %T\n", err)
	}
}

func Test_linsys03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linsys03. all dofs prescribed")

	K := sparse.NewDOK(2, 2)
	K.Set(0, 0, 1)
	K.Set(1, 1, 1)
	r := []float64{0.4, -0.4}
	δy0 := []float64{0.1, 0.2}

	rs := ReduceSystem(r, K, []int{0, 1}, nil, δy0)
	δy, err := rs.Solve(2, δy0)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.Array(tst, "δy", 1e-17, δy, []float64{0.1, 0.2})
}
