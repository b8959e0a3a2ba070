// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_newton01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton01. zero load converges immediately")

	asm := &spring1d{k: 100, nanAbove: math.Inf(1)}
	fields := Fields{NewField("u", 2, 1)}
	bcs := Bcs{&EssentialBc{"fix", "u", []int{0}, []bool{true}, 0}}
	dof0, dof1, unstack, err := PartitionDofs(fields, bcs)
	if err != nil {
		tst.Errorf("PartitionDofs failed: %v\n", err)
		return
	}
	u0ext := ApplyEssential(fields, bcs, dof0)

	var infos []IterInfo
	cor := NewCorrector(asm)
	cor.Observer = func(info IterInfo) { infos = append(infos, info) }

	status, it, err := cor.Run(fields, asm.InitStates(), dof0, dof1, unstack, u0ext)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if status != Converged {
		tst.Errorf("status: got %v, want %v\n", status, Converged)
		return
	}
	if it != 1 {
		tst.Errorf("iterations: got %d, want 1\n", it)
	}
	if len(infos) != 1 {
		tst.Errorf("observer calls: got %d, want 1\n", len(infos))
		return
	}
	chk.Float64(tst, "|r| rel", 1e-17, infos[0].NormR, 0)
	chk.Array(tst, "u", 1e-17, fields[0].Vals, []float64{0, 0})
}

func Test_newton02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton02. prescribed move and reference fallback")

	asm := &spring1d{k: 100, nanAbove: math.Inf(1)}
	fields := Fields{NewField("u", 2, 1)}
	bcs := Bcs{&EssentialBc{"move", "u", []int{0}, []bool{true}, 0.5}}
	dof0, dof1, unstack, err := PartitionDofs(fields, bcs)
	if err != nil {
		tst.Errorf("PartitionDofs failed: %v\n", err)
		return
	}
	u0ext := ApplyEssential(fields, bcs, dof0)

	var infos []IterInfo
	cor := NewCorrector(asm)
	cor.Observer = func(info IterInfo) { infos = append(infos, info) }

	status, it, err := cor.Run(fields, asm.InitStates(), dof0, dof1, unstack, u0ext)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if status != Converged {
		tst.Errorf("status: got %v, want %v\n", status, Converged)
		return
	}
	io.Pforan("it = %d, u = %v\n", it, fields[0].Vals)

	// the free node follows the spring; both nodes end at the target
	chk.Array(tst, "u", 1e-12, fields[0].Vals, []float64{0.5, 0.5})

	// at equilibrium the reaction vanishes and the residual norm stays
	// finite through the unit reference fallback
	for _, info := range infos {
		if math.IsNaN(info.NormR) || math.IsInf(info.NormR, 0) {
			tst.Errorf("residual norm must stay finite: %v\n", info.NormR)
			return
		}
	}
}

func Test_newton03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton03. non-finite residual diverges without committing")

	asm := &spring1d{k: 100, nanAbove: 0.25}
	fields := Fields{NewField("u", 2, 1)}
	bcs := Bcs{&EssentialBc{"move", "u", []int{0}, []bool{true}, 0.5}}
	dof0, dof1, unstack, err := PartitionDofs(fields, bcs)
	if err != nil {
		tst.Errorf("PartitionDofs failed: %v\n", err)
		return
	}
	u0ext := ApplyEssential(fields, bcs, dof0)

	cor := NewCorrector(asm)
	status, _, err := cor.Run(fields, asm.InitStates(), dof0, dof1, unstack, u0ext)
	if status != Diverged {
		tst.Errorf("status: got %v, want %v\n", status, Diverged)
	}
	if err == nil {
		tst.Errorf("divergence must carry an error\n")
	}

	// the caller's fields must be untouched
	chk.Array(tst, "u", 1e-17, fields[0].Vals, []float64{0, 0})
}

func Test_newton04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton04. status strings")

	if Converged.String() != "converged" {
		tst.Errorf("wrong string for Converged: %q\n", Converged.String())
	}
	if Diverged.String() != "diverged" {
		tst.Errorf("wrong string for Diverged: %q\n", Diverged.String())
	}
	if MaxIterExceeded.String() != "max-iterations-exceeded" {
		tst.Errorf("wrong string for MaxIterExceeded: %q\n", MaxIterExceeded.String())
	}
}
