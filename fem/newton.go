// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gomorph/gomorph/tsr"
)

// Status is the outcome of one Newton-Raphson correction
type Status int

const (
	Converged Status = iota
	Diverged
	MaxIterExceeded
)

func (o Status) String() string {
	switch o {
	case Converged:
		return "converged"
	case Diverged:
		return "diverged"
	case MaxIterExceeded:
		return "max-iterations-exceeded"
	}
	return "unknown"
}

// IterInfo holds structured per-iteration diagnostics
type IterInfo struct {
	It        int       // iteration index (1-based)
	NormR     float64   // relative residual norm
	NormDelta []float64 // per-field correction norms
}

// Corrector drives one increment to equilibrium with the Newton-Raphson
// method. It operates on a working copy of the fields and commits back to the
// caller's storage only on convergence, so failed increments leave no partial
// mutation behind.
type Corrector struct {

	// input
	Asm    Assembler
	NmaxIt int     // iteration cap
	Tol    float64 // tolerance on the relative residual norm
	ShowR  bool    // print one line per iteration

	// injected observer of per-iteration diagnostics (may be nil)
	Observer func(IterInfo)

	// results of the last run
	R []float64   // last assembled residual
	K *sparse.DOK // last assembled tangent
}

// NewCorrector allocates a corrector with default settings
func NewCorrector(asm Assembler) *Corrector {
	return &Corrector{Asm: asm, NmaxIt: 8, Tol: 1e-6}
}

// normAt returns the Euclidean norm of r over the index set dofs
func normAt(r []float64, dofs []int) float64 {
	sum := 0.0
	for _, eq := range dofs {
		sum += r[eq] * r[eq]
	}
	return math.Sqrt(sum)
}

// Run corrects fields towards equilibrium for the prescribed-dof targets
// u0ext (ordered as dof0), evaluating the constitutive law against the
// committed state sv of the previous increment. Fields are updated in the
// caller's storage only when the status is Converged.
func (o *Corrector) Run(fields Fields, sv [][]float64, dof0, dof1, unstack []int, u0ext []float64) (status Status, it int, err error) {

	// working copy; the caller's fields stay untouched until convergence
	work := fields.Clone()
	ny := work.Ntotal()
	y := make([]float64, ny)
	δy0 := make([]float64, len(dof0))

	// initial residual and tangent at the committed state
	o.R = make([]float64, ny)
	if err = o.Asm.Residual(o.R, work, sv); err != nil {
		return Diverged, 0, err
	}
	o.K = sparse.NewDOK(ny, ny)
	if err = o.Asm.Tangent(o.K, work, sv); err != nil {
		return Diverged, 0, err
	}

	for it = 1; it <= o.NmaxIt; it++ {

		// prescribed-dof increments towards the boundary targets
		work.Pack(y)
		for b, eq := range dof0 {
			δy0[b] = u0ext[b] - y[eq]
		}

		// partition and solve; a singular reduced tangent surfaces as a
		// divergence of the current increment
		rs := ReduceSystem(o.R, o.K, dof0, dof1, δy0)
		δy, err2 := rs.Solve(ny, δy0)
		if err2 != nil {
			return Diverged, it, err2
		}

		// a non-finite correction signals a non-recoverable breakdown
		if !tsr.VecFinite(δy) {
			return Diverged, it, chk.Err("fem: Newton correction contains non-finite values")
		}

		// apply correction to every field
		parts := Split(δy, unstack)
		normδ := make([]float64, len(parts))
		for i, f := range work {
			f.Add(parts[i])
			normδ[i] = floats.Norm(parts[i], 2)
		}

		// recompute residual at the corrected trial fields
		if err = o.Asm.Residual(o.R, work, sv); err != nil {
			return Diverged, it, err
		}
		if !tsr.VecFinite(o.R) {
			return Diverged, it, chk.Err("fem: residual contains non-finite values")
		}

		// convergence check: the reaction norm is the reference; when no
		// reaction is expected the reference falls back to one
		rref := normAt(o.R, dof0)
		if rref == 0 {
			rref = 1
		}
		normR := normAt(o.R, dof1) / rref

		if o.Observer != nil {
			o.Observer(IterInfo{it, normR, normδ})
		}
		if o.ShowR {
			msg := io.Sf("#%3d: |r|=%13.6e", it, normR)
			for i, nd := range normδ {
				msg += io.Sf(" (|δ%d|=%13.6e)", i+1, nd)
			}
			io.Pf("%s\n", msg)
		}

		if normR < o.Tol {
			for i, f := range fields {
				copy(f.Vals, work[i].Vals)
			}
			return Converged, it, nil
		}

		// full tangent recomputation for the next iteration
		o.K = sparse.NewDOK(ny, ny)
		if err = o.Asm.Tangent(o.K, work, sv); err != nil {
			return Diverged, it, err
		}
	}
	return MaxIterExceeded, o.NmaxIt, nil
}
