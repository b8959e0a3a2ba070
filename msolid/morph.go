// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/gomorph/gomorph/inp"
	"github.com/gomorph/gomorph/tsr"
)

// Morph implements the MORPH model for rubber-like materials [BesdoIhlemann03].
// The stacked state vector has 13 scalars:
//  sv[0]    -- CTS: maximum Tresca invariant of ĈG reached in the load history
//  sv[1:7]  -- C:   right Cauchy-Green tensor at the last converged increment
//  sv[7:13] -- SA:  overstress tensor at the last converged increment
//
//  [BesdoIhlemann03] D. Besdo, J. Ihlemann. A phenomenological constitutive
//  model for rubberlike materials and its numerical applications. Int. J.
//  Plasticity 19 (2003) 1019-1036
type Morph struct {
	p [8]float64 // material parameters p1..p8
	ε float64    // stabilization of the normalizations
}

// add model to factory
func init() {
	allocators["morph"] = func() Model { return new(Morph) }
}

// Init initialises model
func (o *Morph) Init(prms inp.Prms) (err error) {
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
			return chk.Err("morph: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Morph) GetPrms() inp.Prms {
	return inp.Prms{
		&inp.Prm{N: "p1", V: 0.039},
		&inp.Prm{N: "p2", V: 0.371},
		&inp.Prm{N: "p3", V: 0.174},
		&inp.Prm{N: "p4", V: 2.41},
		&inp.Prm{N: "p5", V: 0.0094},
		&inp.Prm{N: "p6", V: 6.84},
		&inp.Prm{N: "p7", V: 5.65},
		&inp.Prm{N: "p8", V: 0.244},
	}
}

// Nstate returns the number of state scalars
func (o Morph) Nstate() int {
	return 13
}

// sigmoid is the algebraic sigmoid function. It never reaches 0 nor ±1 and
// therefore keeps the softening scalars away from their singular limits.
func sigmoid(x float64) float64 {
	return 1.0 / math.Sqrt(1.0+x*x)
}

// Evaluate computes the second Piola-Kirchhoff stress S and the new state
// svNew from the right Cauchy-Green tensor C and the previous committed
// state svPrev. If the new state cannot be stacked with finite values, the
// previous state is returned unchanged.
func (o *Morph) Evaluate(S, svNew, C, svPrev []float64) (err error) {

	// previous state
	CTSn := svPrev[0]
	Cn := tsr.M(svPrev[1:7])
	SAn := tsr.M(svPrev[7:13])

	// volumetric / distortional split: ĈG = C det(C)^{-1/3}
	Cm := tsr.M(C)
	I3 := tsr.Det(C)
	if I3 <= 0 {
		return chk.Err("morph: non-positive determinant of strain measure: det(C)=%g", I3)
	}
	CG := mat.NewDense(3, 3, nil)
	CG.Scale(math.Pow(I3, -1.0/3.0), Cm)

	// inverse of and incremental right Cauchy-Green tensor
	invC := mat.NewDense(3, 3, nil)
	err = tsr.InvTo(invC, Cm)
	if err != nil {
		return
	}
	dC := mat.NewDense(3, 3, nil)
	dC.Sub(Cm, Cn)

	// Tresca invariant of ĈG and ratcheted history invariant
	CTG, err := tsr.Tresca(CG)
	if err != nil {
		return
	}
	CTS := math.Max(CTG, CTSn)

	// softening scalars
	α := o.p[0] + o.p[1]*sigmoid(o.p[2]*CTS)
	β := o.p[3] * sigmoid(o.p[2]*CTS)
	γ := o.p[4] * CTS * (1.0 - sigmoid(CTS/o.p[5]))

	// incremental tensor LG = sym(dev(C⁻¹ ΔC)) ĈG and its Tresca invariant
	A := mat.NewDense(3, 3, nil)
	A.Mul(invC, dC)
	tsr.DevTo(A, A)
	tsr.SymTo(A, A)
	LG := mat.NewDense(3, 3, nil)
	LG.Mul(A, CG)
	LTG, err := tsr.Tresca(LG)
	if err != nil {
		return
	}

	// normalize LG by its own invariant. The ε stabilization keeps the
	// direction bounded when the increment degenerates to pure roundoff,
	// e.g. at the first evaluation from the virgin state where ΔC = C and
	// C⁻¹ΔC is the identity up to machine precision
	LG.Scale(1.0/(o.ε+LTG), LG)

	// stabilized CTG/CTS ratio; zero at the undeformed state where both
	// invariants vanish
	ratio := CTG / (o.ε + CTS)

	// limiting stress SL = (γ exp(p7 L̂G CTG/CTS) + p8 L̂G) C⁻¹
	A.Scale(o.p[6]*ratio, LG)
	E := mat.NewDense(3, 3, nil)
	tsr.ExpmTo(E, A)
	A.Scale(γ, E)
	B := mat.NewDense(3, 3, nil)
	B.Scale(o.p[7], LG)
	A.Add(A, B)
	SL := mat.NewDense(3, 3, nil)
	SL.Mul(A, invC)

	// overstress update (implicit-Euler discretization of the relaxation law)
	SA := mat.NewDense(3, 3, nil)
	SA.Scale(β*LTG, SL)
	SA.Add(SAn, SA)
	SA.Scale(1.0/(1.0+β*LTG), SA)

	// stress: S = 2α dev(ĈG) C⁻¹ + dev(SA C) C⁻¹
	tsr.DevTo(A, CG)
	Sm := mat.NewDense(3, 3, nil)
	Sm.Mul(A, invC)
	Sm.Scale(2.0*α, Sm)
	A.Mul(SA, Cm)
	tsr.DevTo(A, A)
	B.Mul(A, invC)
	Sm.Add(Sm, B)
	tsr.SymTo(Sm, Sm)
	tsr.Ten2Vec(S, Sm)

	// new state: (CTS, C, SA); fall back to the previous state if the
	// stacking is not finite
	svNew[0] = CTS
	copy(svNew[1:7], C)
	tsr.Ten2Vec(svNew[7:13], SA)
	if !tsr.VecFinite(svNew) {
		copy(svNew, svPrev)
	}
	return
}
