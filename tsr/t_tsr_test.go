// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_conv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conv01. vector/matrix conversions")

	v := []float64{1, 2, 3, 4, 5, 6}
	t := M(v)
	chk.Float64(tst, "t00", 1e-17, t.At(0, 0), 1)
	chk.Float64(tst, "t01", 1e-17, t.At(0, 1), 2)
	chk.Float64(tst, "t02", 1e-17, t.At(0, 2), 3)
	chk.Float64(tst, "t10", 1e-17, t.At(1, 0), 2)
	chk.Float64(tst, "t11", 1e-17, t.At(1, 1), 4)
	chk.Float64(tst, "t12", 1e-17, t.At(1, 2), 5)
	chk.Float64(tst, "t20", 1e-17, t.At(2, 0), 3)
	chk.Float64(tst, "t21", 1e-17, t.At(2, 1), 5)
	chk.Float64(tst, "t22", 1e-17, t.At(2, 2), 6)

	w := V(t)
	chk.Array(tst, "v", 1e-17, w, v)

	chk.Array(tst, "I", 1e-17, Ident(), []float64{1, 0, 0, 1, 0, 1})
	chk.Float64(tst, "tr", 1e-17, Tr(t), 11)
	chk.Float64(tst, "det", 1e-14, Det(v), -1)
	chk.Float64(tst, "det(M)", 1e-14, mat.Det(t), -1)
}

func Test_dev01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dev01. deviator and symmetrizer")

	t := M([]float64{1, 2, 3, 4, 5, 6})
	d := mat.NewDense(3, 3, nil)
	DevTo(d, t)
	chk.Float64(tst, "tr(dev)", 1e-15, Tr(d), 0)
	chk.Float64(tst, "d01", 1e-17, d.At(0, 1), 2)

	// dst aliasing the argument
	DevTo(t, t)
	chk.Float64(tst, "tr(dev) alias", 1e-15, Tr(t), 0)

	a := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	SymTo(a, a)
	chk.Float64(tst, "a01", 1e-17, a.At(0, 1), 3)
	chk.Float64(tst, "a10", 1e-17, a.At(1, 0), 3)
	chk.Float64(tst, "a02", 1e-17, a.At(0, 2), 5)
	chk.Float64(tst, "a12", 1e-17, a.At(1, 2), 7)
	chk.Float64(tst, "a00", 1e-17, a.At(0, 0), 1)
}

func Test_inv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inv01. inverse")

	v := []float64{2, 0.1, 0, 3, 0.2, 4}
	t := M(v)
	ti := mat.NewDense(3, 3, nil)
	err := InvTo(ti, t)
	if err != nil {
		tst.Errorf("InvTo failed: %v\n", err)
		return
	}
	p := mat.NewDense(3, 3, nil)
	p.Mul(t, ti)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			val := 0.0
			if i == j {
				val = 1.0
			}
			chk.Float64(tst, io.Sf("(t⋅t⁻¹)[%d][%d]", i, j), 1e-14, p.At(i, j), val)
		}
	}
}

func Test_eigen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eigen01. eigenvalues and Tresca invariant")

	t := M([]float64{3, 0, 0, 1, 0, 2})
	λ := make([]float64, 3)
	err := Eigenvals(λ, t)
	if err != nil {
		tst.Errorf("Eigenvals failed: %v\n", err)
		return
	}
	chk.Array(tst, "λ", 1e-14, λ, []float64{1, 2, 3})

	res, err := Tresca(t)
	if err != nil {
		tst.Errorf("Tresca failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Tresca", 1e-14, res, 2)

	// non-diagonal: eigenvalues of [[2,1],[1,2]] block are 1 and 3
	t = M([]float64{2, 1, 0, 2, 0, 5})
	err = Eigenvals(λ, t)
	if err != nil {
		tst.Errorf("Eigenvals failed: %v\n", err)
		return
	}
	chk.Array(tst, "λ", 1e-14, λ, []float64{1, 3, 5})
}

func Test_expm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expm01. matrix exponential")

	z := mat.NewDense(3, 3, nil)
	e := mat.NewDense(3, 3, nil)
	ExpmTo(e, z)
	chk.Array(tst, "exp(0)", 1e-15, V(e), Ident())

	d := M([]float64{1, 0, 0, 2, 0, -1})
	ExpmTo(e, d)
	chk.Float64(tst, "e00", 1e-13, e.At(0, 0), math.E)
	chk.Float64(tst, "e11", 1e-13, e.At(1, 1), math.Exp(2))
	chk.Float64(tst, "e22", 1e-13, e.At(2, 2), math.Exp(-1))
	chk.Float64(tst, "e01", 1e-13, e.At(0, 1), 0)
}

func Test_finite01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("finite01. finiteness checks")

	if !VecFinite([]float64{1, -2, 0}) {
		tst.Errorf("finite vector flagged as non-finite\n")
	}
	if VecFinite([]float64{1, math.NaN(), 0}) {
		tst.Errorf("NaN not detected\n")
	}
	if VecFinite([]float64{1, math.Inf(1), 0}) {
		tst.Errorf("+Inf not detected\n")
	}
	t := M([]float64{1, 2, 3, 4, 5, 6})
	if !MatFinite(t) {
		tst.Errorf("finite matrix flagged as non-finite\n")
	}
	t.Set(1, 2, math.Inf(-1))
	if MatFinite(t) {
		tst.Errorf("-Inf not detected\n")
	}
}
