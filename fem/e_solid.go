// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"runtime"
	"sync"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/utl"

	"github.com/gomorph/gomorph/msolid"
	"github.com/gomorph/gomorph/shp"
	"github.com/gomorph/gomorph/tsr"
)

// ElemU is a total-Lagrangian solid element (hex8) with displacements u as
// primary variables. The deformation gradient F = I + ∂u/∂X is computed at
// each integration point, the material model provides the second
// Piola-Kirchhoff stress from C = FᵀF, and the element tangent is obtained
// by forward-difference perturbation of the internal force vector.
type ElemU struct {

	// basic data
	Id   int         // element (cell) id
	X    [][]float64 // [8][3] nodal coordinates
	Shp  *shp.Hex8   // shape structure
	Mdl  msolid.Model
	Umap []int // assembly map (element equations) [24]
	ip0  int   // global index of this element's first integration point

	// precomputed at reference configuration
	G  [][][]float64 // [nip][8][3] shape gradients
	dv []float64     // [nip] det(J)·w
}

// newElemU allocates an element and precomputes reference-configuration data
func newElemU(msh *Mesh, cid int, mdl msolid.Model) (o *ElemU, err error) {
	o = new(ElemU)
	o.Id = cid
	o.Shp = shp.NewHex8()
	o.Mdl = mdl
	cell := msh.Cells[cid]
	o.X = make([][]float64, 8)
	o.Umap = make([]int, 24)
	for a, v := range cell {
		o.X[a] = msh.Verts[v]
		for i := 0; i < 3; i++ {
			o.Umap[a*3+i] = v*3 + i
		}
	}
	nip := len(o.Shp.Ips)
	o.ip0 = cid * nip
	o.G = make([][][]float64, nip)
	o.dv = make([]float64, nip)
	N := make([]float64, 8)
	for ip, p := range o.Shp.Ips {
		o.G[ip] = utl.Alloc(8, 3)
		o.dv[ip], err = o.Shp.CalcAtIp(N, o.G[ip], o.X, p)
		if err != nil {
			return nil, err
		}
	}
	return
}

// localU extracts the element displacement vector from the global field values
func (o *ElemU) localU(u []float64) (ue []float64) {
	ue = make([]float64, 24)
	for r, eq := range o.Umap {
		ue[r] = u[eq]
	}
	return
}

// ipDefGrad computes the deformation gradient at integration point ip
func (o *ElemU) ipDefGrad(F *mat.Dense, ue []float64, ip int) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for a := 0; a < 8; a++ {
				sum += ue[a*3+i] * o.G[ip][a][j]
			}
			if i == j {
				sum += 1.0
			}
			F.Set(i, j, sum)
		}
	}
}

// intForces computes the element internal force vector
//  fl[a*3+i] = Σ_ip P[i][J] G[a][J] dv     with  P = F·S
func (o *ElemU) intForces(ue []float64, sv [][]float64) (fl []float64, err error) {
	fl = make([]float64, 24)
	F := mat.NewDense(3, 3, nil)
	Cm := mat.NewDense(3, 3, nil)
	Sm := mat.NewDense(3, 3, nil)
	P := mat.NewDense(3, 3, nil)
	C6 := tsr.Alloc()
	S6 := tsr.Alloc()
	svTmp := msolid.NewStateVars(o.Mdl)
	for ip := range o.Shp.Ips {
		o.ipDefGrad(F, ue, ip)
		Cm.Mul(F.T(), F)
		tsr.Ten2Vec(C6, Cm)
		err = o.Mdl.Evaluate(S6, svTmp, C6, sv[o.ip0+ip])
		if err != nil {
			return
		}
		tsr.Vec2Ten(Sm, S6)
		P.Mul(F, Sm)
		for a := 0; a < 8; a++ {
			for i := 0; i < 3; i++ {
				sum := 0.0
				for j := 0; j < 3; j++ {
					sum += P.At(i, j) * o.G[ip][a][j]
				}
				fl[a*3+i] += sum * o.dv[ip]
			}
		}
	}
	return
}

// stiffness computes the element tangent by forward differences of the
// internal force vector
func (o *ElemU) stiffness(ue []float64, sv [][]float64) (kl [][]float64, err error) {
	kl = utl.Alloc(24, 24)
	fl0, err := o.intForces(ue, sv)
	if err != nil {
		return
	}
	up := make([]float64, 24)
	for b := 0; b < 24; b++ {
		copy(up, ue)
		h := 1e-7 * (1.0 + abs(ue[b]))
		up[b] += h
		flb, err2 := o.intForces(up, sv)
		if err2 != nil {
			return nil, err2
		}
		for r := 0; r < 24; r++ {
			kl[r][b] = (flb[r] - fl0[r]) / h
		}
	}
	return
}

// update evaluates the model at every integration point of the element,
// writing new states (and optional C/S snapshots) at the global slots
func (o *ElemU) update(svNew, svPrev [][]float64, ue []float64, C, S [][]float64) (err error) {
	F := mat.NewDense(3, 3, nil)
	Cm := mat.NewDense(3, 3, nil)
	C6 := tsr.Alloc()
	S6 := tsr.Alloc()
	for ip := range o.Shp.Ips {
		o.ipDefGrad(F, ue, ip)
		Cm.Mul(F.T(), F)
		tsr.Ten2Vec(C6, Cm)
		gid := o.ip0 + ip
		err = o.Mdl.Evaluate(S6, svNew[gid], C6, svPrev[gid])
		if err != nil {
			return
		}
		if C != nil {
			copy(C[gid], C6)
		}
		if S != nil {
			copy(S[gid], S6)
		}
	}
	return
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Domain implements Assembler for a mesh of solid elements sharing one
// material model. Element loops fan out over a bounded set of goroutines;
// the scatter into shared global entries is serialized after the barrier.
type Domain struct {
	Msh   *Mesh
	Mdl   msolid.Model
	Elems []*ElemU
	ny    int
	nip   int
}

// NewDomain builds all elements of the mesh
func NewDomain(msh *Mesh, mdl msolid.Model) (o *Domain, err error) {
	o = &Domain{Msh: msh, Mdl: mdl}
	for cid := range msh.Cells {
		e, err2 := newElemU(msh, cid, mdl)
		if err2 != nil {
			return nil, err2
		}
		o.Elems = append(o.Elems, e)
		o.nip += len(e.Shp.Ips)
	}
	o.ny = 3 * len(msh.Verts)
	return
}

// Ny returns the total number of displacement unknowns
func (o *Domain) Ny() int { return o.ny }

// Nip returns the total number of integration points
func (o *Domain) Nip() int { return o.nip }

// InitStates allocates zeroed state vectors, one per integration point
func (o *Domain) InitStates() [][]float64 {
	sv := make([][]float64, o.nip)
	for i := range sv {
		sv[i] = msolid.NewStateVars(o.Mdl)
	}
	return sv
}

// forEachElem runs fcn over all elements on a worker pool with a barrier
func (o *Domain) forEachElem(fcn func(e *ElemU) error) (err error) {
	nele := len(o.Elems)
	errs := make([]error, nele)
	nw := runtime.NumCPU()
	if nw > nele {
		nw = nele
	}
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < nele; i += nw {
				errs[i] = fcn(o.Elems[i])
			}
		}(w)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return
}

// Residual assembles the global residual vector (internal forces) for the
// current trial fields and the committed constitutive state
func (o *Domain) Residual(r []float64, fields Fields, sv [][]float64) (err error) {
	u := fields[0].Vals
	for i := range r {
		r[i] = 0
	}
	fls := make([][]float64, len(o.Elems))
	err = o.forEachElem(func(e *ElemU) error {
		fl, err2 := e.intForces(e.localU(u), sv)
		if err2 != nil {
			return err2
		}
		fls[e.Id] = fl
		return nil
	})
	if err != nil {
		return
	}
	for i, e := range o.Elems {
		for row, eq := range e.Umap {
			r[eq] += fls[i][row]
		}
	}
	return
}

// Tangent assembles the global tangent matrix for the current trial fields
// and the committed constitutive state
func (o *Domain) Tangent(K *sparse.DOK, fields Fields, sv [][]float64) (err error) {
	u := fields[0].Vals
	kls := make([][][]float64, len(o.Elems))
	err = o.forEachElem(func(e *ElemU) error {
		kl, err2 := e.stiffness(e.localU(u), sv)
		if err2 != nil {
			return err2
		}
		kls[e.Id] = kl
		return nil
	})
	if err != nil {
		return
	}
	for i, e := range o.Elems {
		for row, I := range e.Umap {
			for col, J := range e.Umap {
				K.Set(I, J, K.At(I, J)+kls[i][row][col])
			}
		}
	}
	return
}

// UpdateState produces the new constitutive states from the converged fields
func (o *Domain) UpdateState(svNew, svPrev [][]float64, fields Fields, C, S [][]float64) (err error) {
	u := fields[0].Vals
	return o.forEachElem(func(e *ElemU) error {
		return e.update(svNew, svPrev, e.localU(u), C, S)
	})
}
