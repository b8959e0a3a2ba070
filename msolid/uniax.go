// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// Uniaxial drives model m through an incompressible uniaxial stretch history
// λs, threading the state vector from step to step. For each step it returns
// the nominal axial stress P = (σ_axial - σ_lateral)/λ, where σ is the Cauchy
// stress and the superimposed pressure makes the lateral stress vanish.
// The final committed state is returned as well.
func Uniaxial(m Model, λs []float64) (P []float64, sv []float64, err error) {
	P = make([]float64, len(λs))
	sv = NewStateVars(m)
	svNew := NewStateVars(m)
	S := make([]float64, 6)
	C := make([]float64, 6)
	for k, λ := range λs {
		C[0] = λ * λ
		C[1], C[2], C[4] = 0, 0, 0
		C[3] = 1.0 / λ
		C[5] = 1.0 / λ
		err = m.Evaluate(S, svNew, C, sv)
		if err != nil {
			return
		}
		σ1 := λ * λ * S[0]         // axial Cauchy stress (J = 1)
		σ2 := S[3] / λ             // lateral Cauchy stress
		P[k] = (σ1 - σ2) / λ
		copy(sv, svNew)
	}
	return
}
