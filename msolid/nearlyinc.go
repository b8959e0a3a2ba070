// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gomorph/gomorph/inp"
	"github.com/gomorph/gomorph/tsr"
)

// NearlyIncompressible augments a purely distortional base model with the
// volumetric strain energy U(J) = κ/2 (J-1)², J = √det(C), giving
//  S = S_base + κ J (J-1) C⁻¹
// Without this term an equilibrium problem with traction-free faces admits
// the trivial uniform-shrink solution at zero stress.
type NearlyIncompressible struct {
	Base Model
	κ    float64 // bulk modulus of the volumetric penalty
}

// add wrapped models to factory
func init() {
	allocators["morph-nearlyinc"] = func() Model {
		return &NearlyIncompressible{Base: new(Morph)}
	}
	allocators["morph-repdir-nearlyinc"] = func() Model {
		return &NearlyIncompressible{Base: new(MorphRepDir)}
	}
}

// Init pulls the bulk modulus and forwards the remaining parameters
func (o *NearlyIncompressible) Init(prms inp.Prms) (err error) {
	o.κ = 5000.0
	var rest inp.Prms
	for _, p := range prms {
		if p.N == "kappa" {
			o.κ = p.V
			continue
		}
		rest = append(rest, p)
	}
	return o.Base.Init(rest)
}

// GetPrms gets (an example of) parameters
func (o NearlyIncompressible) GetPrms() inp.Prms {
	return append(o.Base.GetPrms(), &inp.Prm{N: "kappa", V: 5000.0})
}

// Nstate returns the number of state scalars
func (o NearlyIncompressible) Nstate() int {
	return o.Base.Nstate()
}

// Evaluate adds the volumetric stress to the base response
func (o *NearlyIncompressible) Evaluate(S, svNew, C, svPrev []float64) (err error) {
	err = o.Base.Evaluate(S, svNew, C, svPrev)
	if err != nil {
		return
	}
	Cm := tsr.M(C)
	invC := mat.NewDense(3, 3, nil)
	err = tsr.InvTo(invC, Cm)
	if err != nil {
		return
	}
	J := math.Sqrt(tsr.Det(C))
	coef := o.κ * J * (J - 1.0)
	iv := tsr.V(invC)
	for k := 0; k < 6; k++ {
		S[k] += coef * iv[k]
	}
	return
}
