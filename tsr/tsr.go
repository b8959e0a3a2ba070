// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tsr implements operations on symmetric second order tensors.
// Tensors are stored either as full 3x3 matrices (gonum mat.Dense) or as
// 6-component vectors collecting the upper triangle in row-major order:
//  v = {t00, t01, t02, t11, t12, t22}
package tsr

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// upper triangle index maps for the 6-component vector representation
var (
	ti = [6]int{0, 0, 0, 1, 1, 2}
	tj = [6]int{0, 1, 2, 1, 2, 2}
)

// Alloc allocates a 6-component tensor vector
func Alloc() []float64 {
	return make([]float64, 6)
}

// Ident returns the identity tensor in vector form
func Ident() []float64 {
	return []float64{1, 0, 0, 1, 0, 1}
}

// Vec2Ten converts vector v into full (symmetric) matrix t
func Vec2Ten(t *mat.Dense, v []float64) {
	for k := 0; k < 6; k++ {
		t.Set(ti[k], tj[k], v[k])
		t.Set(tj[k], ti[k], v[k])
	}
}

// Ten2Vec collects the upper triangle of t into vector v.
// t must be symmetric; the lower triangle is ignored.
func Ten2Vec(v []float64, t mat.Matrix) {
	for k := 0; k < 6; k++ {
		v[k] = t.At(ti[k], tj[k])
	}
}

// M allocates a full matrix from vector v
func M(v []float64) (t *mat.Dense) {
	t = mat.NewDense(3, 3, nil)
	Vec2Ten(t, v)
	return
}

// V allocates a vector from the upper triangle of t
func V(t mat.Matrix) (v []float64) {
	v = Alloc()
	Ten2Vec(v, t)
	return
}

// Tr returns the trace of t
func Tr(t mat.Matrix) float64 {
	return t.At(0, 0) + t.At(1, 1) + t.At(2, 2)
}

// Det returns the determinant of vector-form tensor v
func Det(v []float64) float64 {
	return v[0]*(v[3]*v[5]-v[4]*v[4]) - v[1]*(v[1]*v[5]-v[4]*v[2]) + v[2]*(v[1]*v[4]-v[3]*v[2])
}

// DevTo sets dst := t - tr(t)/3 I
func DevTo(dst *mat.Dense, t mat.Matrix) {
	m := Tr(t) / 3.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dst.Set(i, j, t.At(i, j))
		}
		dst.Set(i, i, t.At(i, i)-m)
	}
}

// SymTo sets dst := (t + tᵀ)/2; dst may alias t
func SymTo(dst *mat.Dense, t mat.Matrix) {
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			v := (t.At(i, j) + t.At(j, i)) / 2.0
			dst.Set(i, j, v)
			dst.Set(j, i, v)
		}
	}
}

// InvTo sets dst := t⁻¹
func InvTo(dst *mat.Dense, t *mat.Dense) (err error) {
	err = dst.Inverse(t)
	if err != nil {
		return chk.Err("tsr: cannot invert tensor: %v", err)
	}
	return
}

// Eigenvals computes the three eigenvalues of the symmetric part of t,
// sorted in ascending order: λ[0] ≤ λ[1] ≤ λ[2]
func Eigenvals(λ []float64, t mat.Matrix) (err error) {
	s := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			s.SetSym(i, j, (t.At(i, j)+t.At(j, i))/2.0)
		}
	}
	var es mat.EigenSym
	if !es.Factorize(s, false) {
		return chk.Err("tsr: eigen decomposition failed")
	}
	es.Values(λ)
	return
}

// Tresca returns the difference between the largest and the smallest
// eigenvalue of (the symmetric part of) t
func Tresca(t mat.Matrix) (res float64, err error) {
	λ := make([]float64, 3)
	err = Eigenvals(λ, t)
	if err != nil {
		return
	}
	return λ[2] - λ[0], nil
}

// ExpmTo sets dst := exp(t) using the scaling-and-squaring matrix exponential
func ExpmTo(dst, t *mat.Dense) {
	dst.Exp(t)
}

// VecFinite tells whether all components of v are finite
func VecFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// MatFinite tells whether all components of t are finite
func MatFinite(t mat.Matrix) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x := t.At(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return false
			}
		}
	}
	return true
}
