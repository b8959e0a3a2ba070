// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/james-bowman/sparse"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// RunStatus is the outcome of one increment sequence
type RunStatus int

const (
	Completed RunStatus = iota
	Aborted
)

func (o RunStatus) String() string {
	if o == Completed {
		return "completed"
	}
	return "aborted"
}

// Result is an immutable snapshot of one converged increment, used only for
// downstream reporting
type Result struct {
	Fields    Fields      // converged field values (deep copy)
	R         []float64   // residual
	K         *sparse.DOK // tangent of the last iteration
	C         [][]float64 // strain measure per integration point
	S         [][]float64 // stress per integration point
	Unstack   []int       // split boundaries of the stacked global vector
	Converged bool
	Niter     int     // number of iterations spent
	Move      float64 // boundary target of this increment
}

// Driver runs an ordered sequence of boundary increments, invoking the
// Newton-Raphson corrector per increment. It is the sole owner of the
// committed constitutive state baseline, which is swapped only on
// convergence; failed increments abort the sequence and leave the last
// converged state in place.
type Driver struct {

	// input
	Asm      Assembler
	Fields   Fields
	Bcs      Bcs
	Boundary string // name of the boundary whose target is updated per increment
	Cor      *Corrector
	Verbose  bool

	// committed state baseline (allocated on first run if nil)
	Sv [][]float64
}

// Run performs one increment per value in moves. It returns the results of
// the converged increments; callers must check the status (Completed vs
// Aborted) and the count of returned increments to know whether the full
// sequence was reached.
func (o *Driver) Run(moves []float64) (res []*Result, status RunStatus, err error) {

	// partition the dofs once per increment sequence
	dof0, dof1, unstack, err := PartitionDofs(o.Fields, o.Bcs)
	if err != nil {
		return nil, Aborted, err
	}
	bc := o.Bcs.Find(o.Boundary)
	if bc == nil {
		return nil, Aborted, confErr("boundary condition %q does not exist", o.Boundary)
	}
	if o.Sv == nil {
		o.Sv = o.Asm.InitStates()
	}

	for inc, move := range moves {

		// set new value on boundary and obtain prescribed-dof targets
		bc.Value = move
		u0ext := ApplyEssential(o.Fields, o.Bcs, dof0)

		if o.Verbose {
			io.Pf("\nincrement %2d   (move=%g)\n", inc+1, move)
		}

		// correct towards equilibrium
		st, nit, err2 := o.Cor.Run(o.Fields, o.Sv, dof0, dof1, unstack, u0ext)
		if st != Converged {
			if o.Verbose {
				io.Pfred("increment %2d %v after %d iterations\n", inc+1, st, nit)
			}
			if err2 == nil {
				err2 = chk.Err("fem: increment %d %v after %d iterations", inc+1, st, nit)
			}
			return res, Aborted, err2
		}

		// commit the new constitutive state as the baseline of the next
		// increment and record the result snapshot
		svNew := o.Asm.InitStates()
		C := utl.Alloc(o.Asm.Nip(), 6)
		S := utl.Alloc(o.Asm.Nip(), 6)
		err2 = o.Asm.UpdateState(svNew, o.Sv, o.Fields, C, S)
		if err2 != nil {
			return res, Aborted, err2
		}
		o.Sv = svNew

		rcopy := make([]float64, len(o.Cor.R))
		copy(rcopy, o.Cor.R)
		res = append(res, &Result{
			Fields:    o.Fields.Clone(),
			R:         rcopy,
			K:         o.Cor.K,
			C:         C,
			S:         S,
			Unstack:   unstack,
			Converged: true,
			Niter:     nit,
			Move:      move,
		})
	}
	return res, Completed, nil
}
