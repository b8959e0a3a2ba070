// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "sort"

// PartitionDofs splits the stacked global unknown index space into prescribed
// (dof0) and free (dof1) subsets and computes the unstack boundaries needed
// to split/merge the stacked multi-field vector. dof0 and dof1 are disjoint
// and together cover every scalar unknown of every field.
func PartitionDofs(fields Fields, bcs Bcs) (dof0, dof1, unstack []int, err error) {

	// field offsets in the stacked global vector
	offsets := make(map[string]int)
	n := 0
	for _, f := range fields {
		offsets[f.Key] = n
		n += f.Num()
	}
	ny := n

	// mark prescribed dofs
	claimed := make(map[int]string) // dof => bc name
	for _, bc := range bcs {
		fld := fields.Find(bc.Field)
		if fld == nil {
			return nil, nil, nil, confErr("boundary condition %q references unknown field %q", bc.Name, bc.Field)
		}
		if len(bc.Mask) != fld.Ndim {
			return nil, nil, nil, confErr("boundary condition %q has mask of length %d; field %q has %d components", bc.Name, len(bc.Mask), fld.Key, fld.Ndim)
		}
		off := offsets[bc.Field]
		for _, nod := range bc.Nodes {
			if nod < 0 || nod >= fld.Nnod {
				return nil, nil, nil, confErr("boundary condition %q references node %d outside field %q (%d nodes)", bc.Name, nod, fld.Key, fld.Nnod)
			}
			for c, fixed := range bc.Mask {
				if !fixed {
					continue
				}
				eq := off + nod*fld.Ndim + c
				if owner, ok := claimed[eq]; ok && owner != bc.Name {
					return nil, nil, nil, confErr("dof %d is claimed by both %q and %q", eq, owner, bc.Name)
				}
				claimed[eq] = bc.Name
			}
		}
	}

	// collect prescribed and free sets
	dof0 = make([]int, 0, len(claimed))
	for eq := range claimed {
		dof0 = append(dof0, eq)
	}
	sort.Ints(dof0)
	dof1 = make([]int, 0, ny-len(dof0))
	k := 0
	for eq := 0; eq < ny; eq++ {
		if k < len(dof0) && dof0[k] == eq {
			k++
			continue
		}
		dof1 = append(dof1, eq)
	}

	unstack = fields.Unstack()
	return
}

// ApplyEssential returns the target absolute values of the prescribed dofs,
// ordered as dof0. Each prescribed dof takes the Value of the boundary
// condition claiming it.
func ApplyEssential(fields Fields, bcs Bcs, dof0 []int) (u0ext []float64) {

	offsets := make(map[string]int)
	n := 0
	for _, f := range fields {
		offsets[f.Key] = n
		n += f.Num()
	}

	target := make(map[int]float64)
	for _, bc := range bcs {
		fld := fields.Find(bc.Field)
		if fld == nil {
			continue
		}
		off := offsets[bc.Field]
		for _, nod := range bc.Nodes {
			for c, fixed := range bc.Mask {
				if fixed {
					target[off+nod*fld.Ndim+c] = bc.Value
				}
			}
		}
	}

	u0ext = make([]float64, len(dof0))
	for b, eq := range dof0 {
		u0ext[b] = target[eq]
	}
	return
}
