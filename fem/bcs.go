// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/gomorph/gomorph/inp"

// EssentialBc prescribes the masked components of one field over a set of
// nodes. Value is the current target; the increment driver mutates it once
// per increment.
type EssentialBc struct {
	Name  string  // identifier; e.g. "move"
	Field string  // field key; e.g. "u"
	Nodes []int   // constrained nodes
	Mask  []bool  // [ndim] fixed components
	Value float64 // target value applied to the masked components
}

// Bcs holds all essential boundary conditions
type Bcs []*EssentialBc

// Find returns the boundary condition with the given name or nil
func (o Bcs) Find(name string) *EssentialBc {
	for _, bc := range o {
		if bc.Name == name {
			return bc
		}
	}
	return nil
}

// NewBcs converts input data into boundary conditions
func NewBcs(data []*inp.BcData) (bcs Bcs) {
	for _, d := range data {
		bcs = append(bcs, &EssentialBc{d.Name, d.Field, d.Nodes, d.Mask, d.Value})
	}
	return
}
