// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements hyperelastic constitutive models with
// path-dependent internal state variables. Models are pure functions: a stress
// measure and a new state vector are computed from a strain measure and the
// previous committed state, without hidden state across calls.
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/gomorph/gomorph/inp"
)

// Model defines the contract of history-dependent hyperelastic models.
//
// Evaluate computes the second Piola-Kirchhoff stress S (6-component tensor
// vector) and the new stacked state svNew from the right Cauchy-Green tensor
// C (6-component tensor vector) and the previous committed state svPrev.
// Implementations must not mutate svPrev and must be safe for concurrent use.
type Model interface {
	Init(prms inp.Prms) error
	Nstate() int
	Evaluate(S, svNew, C, svPrev []float64) error
	GetPrms() inp.Prms
}

// allocators holds model constructors
var allocators = map[string]func() Model{}

// New allocates a model by name; e.g. "morph" or "morph-repdir"
func New(name string) (Model, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("msolid: model named %q is not available", name)
	}
	return alloc(), nil
}

// NewStateVars allocates a zeroed state vector for model m
func NewStateVars(m Model) []float64 {
	return make([]float64, m.Nstate())
}

// Tangent computes the consistent tangent operator D[i][j] = ∂S[i]/∂C[j]
// (6x6) by central differences of Evaluate around C with state svPrev.
func Tangent(D [][]float64, m Model, C, svPrev []float64) (err error) {
	Sp := make([]float64, 6)
	Sm := make([]float64, 6)
	Cp := make([]float64, 6)
	sv := NewStateVars(m)
	for j := 0; j < 6; j++ {
		h := 1e-6 * (1.0 + abs(C[j]))
		copy(Cp, C)
		Cp[j] = C[j] + h
		err = m.Evaluate(Sp, sv, Cp, svPrev)
		if err != nil {
			return
		}
		Cp[j] = C[j] - h
		err = m.Evaluate(Sm, sv, Cp, svPrev)
		if err != nil {
			return
		}
		for i := 0; i < 6; i++ {
			D[i][j] = (Sp[i] - Sm[i]) / (2.0 * h)
		}
	}
	return
}

// AllocTangent allocates a 6x6 tangent matrix
func AllocTangent() [][]float64 {
	return utl.Alloc(6, 6)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
