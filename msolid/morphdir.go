// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/gomorph/gomorph/inp"
	"github.com/gomorph/gomorph/tsr"
)

// Bažant-Oh (1986) 21-point optimal Gaussian scheme over the half sphere.
// Weights are doubled to account for the antipodal directions, so they sum
// to one.
var (
	boDirs [21][3]float64
	boWgts [21]float64
)

func init() {

	// 3 axis directions
	w1 := 2.0 * 0.0265214244093
	boDirs[0] = [3]float64{1, 0, 0}
	boDirs[1] = [3]float64{0, 1, 0}
	boDirs[2] = [3]float64{0, 0, 1}
	for i := 0; i < 3; i++ {
		boWgts[i] = w1
	}

	// 6 in-plane diagonal directions
	w2 := 2.0 * 0.0199301476312
	s := 1.0 / math.Sqrt2
	diag := [6][3]float64{
		{s, s, 0}, {s, -s, 0},
		{s, 0, s}, {s, 0, -s},
		{0, s, s}, {0, s, -s},
	}
	for i, d := range diag {
		boDirs[3+i] = d
		boWgts[3+i] = w2
	}

	// 12 off-axis directions: x1 component cycled through the coordinates,
	// sign patterns on the two x2 components
	w3 := 2.0 * 0.0250712367487
	x1 := 0.836095596749
	x2 := 0.387907304067
	k := 9
	for pos := 0; pos < 3; pos++ {
		for _, s2 := range []float64{1, -1} {
			for _, s3 := range []float64{1, -1} {
				var d [3]float64
				d[pos] = x1
				d[(pos+1)%3] = s2 * x2
				d[(pos+2)%3] = s3 * x2
				boDirs[k] = d
				boWgts[k] = w3
				k++
			}
		}
	}
}

// MorphRepDir implements the MORPH model by the concept of representative
// directions: the one-dimensional uniaxial form of the law is evaluated
// independently along a fixed set of unit directions and the directional
// stresses are homogenized back into a tensor by affine-projection averaging.
// The stacked state vector has 21x4 = 84 scalars:
//  sv[0:21]   -- CTS:  per-direction ratcheted history invariants
//  sv[21:42]  -- λ-1:  per-direction stretch at the last converged increment
//  sv[42:63]  -- SA1:  per-direction first overstress component
//  sv[63:84]  -- SA2:  per-direction second overstress component
type MorphRepDir struct {
	p [8]float64 // material parameters p1..p8
	ε float64    // stabilization of the normalizations
}

// add model to factory
func init() {
	allocators["morph-repdir"] = func() Model { return new(MorphRepDir) }
}

// Init initialises model
func (o *MorphRepDir) Init(prms inp.Prms) (err error) {
	o.ε = 1e-8
	for _, p := range prms {
		switch p.N {
		case "p1":
			o.p[0] = p.V
		case "p2":
			o.p[1] = p.V
		case "p3":
			o.p[2] = p.V
		case "p4":
			o.p[3] = p.V
		case "p5":
			o.p[4] = p.V
		case "p6":
			o.p[5] = p.V
		case "p7":
			o.p[6] = p.V
		case "p8":
			o.p[7] = p.V
		case "eps":
			o.ε = p.V
		default:
			return chk.Err("morph-repdir: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o MorphRepDir) GetPrms() inp.Prms {
	return inp.Prms{
		&inp.Prm{N: "p1", V: 0.011},
		&inp.Prm{N: "p2", V: 0.408},
		&inp.Prm{N: "p3", V: 0.421},
		&inp.Prm{N: "p4", V: 6.85},
		&inp.Prm{N: "p5", V: 0.0056},
		&inp.Prm{N: "p6", V: 5.54},
		&inp.Prm{N: "p7", V: 5.84},
		&inp.Prm{N: "p8", V: 0.117},
	}
}

// Nstate returns the number of state scalars
func (o MorphRepDir) Nstate() int {
	return 84
}

// uniaxial computes the force (per undeformed area) of the uniaxial
// incompressible MORPH law for stretch λ and the per-direction state
// (CTSn, λn, SA1n, SA2n)
func (o *MorphRepDir) uniaxial(λ, CTSn, λn, SA1n, SA2n float64) (f, CTS, SA1, SA2 float64) {

	CT := math.Abs(λ*λ - 1.0/λ)
	CTS = math.Max(CT, CTSn)

	λ3 := λ * λ * λ
	L1 := 2.0 * (λ3/λn - λn*λn) / 3.0
	L2 := (λn*λn/λ3 - 1.0/λn) / 3.0
	LT := math.Abs(L1 - L2)

	α := o.p[0] + o.p[1]*sigmoid(o.p[2]*CTS)
	β := o.p[3] * sigmoid(o.p[2]*CTS)
	γ := o.p[4] * CTS * (1.0 - sigmoid(CTS/o.p[5]))

	L1n := L1 / (o.ε + LT)
	L2n := L2 / (o.ε + LT)
	CTn := CT / (o.ε + CTS)

	SL1 := (γ*math.Exp(o.p[6]*L1n*CTn) + o.p[7]*L1n) / (λ * λ)
	SL2 := (γ*math.Exp(o.p[6]*L2n*CTn) + o.p[7]*L2n) * λ

	SA1 = (SA1n + β*LT*SL1) / (1.0 + β*LT)
	SA2 = (SA2n + β*LT*SL2) / (1.0 + β*LT)

	dψdλ := (2.0*α+SA1)*λ - (2.0*α+SA2)/(λ*λ)
	f = 5.0 * dψdλ
	return
}

// Evaluate computes the second Piola-Kirchhoff stress S and the new state
// svNew from the right Cauchy-Green tensor C and the previous committed
// state svPrev, by affine-stretch homogenization over the representative
// directions:
//  S = Σᵢ wᵢ (fᵢ/λᵢ) rᵢ⊗rᵢ   with   λᵢ = √(rᵢ·C·rᵢ)
func (o *MorphRepDir) Evaluate(S, svNew, C, svPrev []float64) (err error) {

	Cm := tsr.M(C)
	for i := range S {
		S[i] = 0
	}

	for i := 0; i < 21; i++ {
		r := boDirs[i]

		// affine stretch along direction r
		λ2 := 0.0
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				λ2 += r[a] * Cm.At(a, b) * r[b]
			}
		}
		if λ2 <= 0 {
			return chk.Err("morph-repdir: non-positive squared stretch along direction %d: %g", i, λ2)
		}
		λ := math.Sqrt(λ2)

		// uniaxial law with the previous per-direction state
		f, CTS, SA1, SA2 := o.uniaxial(λ, svPrev[i], svPrev[21+i]+1.0, svPrev[42+i], svPrev[63+i])

		// homogenize
		w := boWgts[i]
		k := 0
		for a := 0; a < 3; a++ {
			for b := a; b < 3; b++ {
				S[k] += w * (f / λ) * r[a] * r[b]
				k++
			}
		}

		svNew[i] = CTS
		svNew[21+i] = λ - 1.0
		svNew[42+i] = SA1
		svNew[63+i] = SA2
	}

	// fall back to the previous state if the stacking is not finite
	if !tsr.VecFinite(svNew) {
		copy(svNew, svPrev)
	}
	return
}
