// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/james-bowman/sparse"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// spring1d is a one-dimensional two-node linear spring used to exercise the
// corrector and the increment driver without a mesh. The residual becomes NaN
// as soon as any displacement exceeds nanAbove, mimicking a constitutive
// breakdown. Each call of UpdateState increments the single state scalar.
type spring1d struct {
	k        float64
	nanAbove float64
}

func (o *spring1d) Ny() int  { return 2 }
func (o *spring1d) Nip() int { return 1 }

func (o *spring1d) InitStates() [][]float64 {
	return [][]float64{make([]float64, 1)}
}

func (o *spring1d) Residual(r []float64, fields Fields, sv [][]float64) error {
	u := fields[0].Vals
	r[0] = o.k * (u[0] - u[1])
	r[1] = o.k * (u[1] - u[0])
	for _, v := range u {
		if math.Abs(v) > o.nanAbove {
			r[0], r[1] = math.NaN(), math.NaN()
		}
	}
	return nil
}

func (o *spring1d) Tangent(K *sparse.DOK, fields Fields, sv [][]float64) error {
	K.Set(0, 0, o.k)
	K.Set(0, 1, -o.k)
	K.Set(1, 0, -o.k)
	K.Set(1, 1, o.k)
	return nil
}

func (o *spring1d) UpdateState(svNew, svPrev [][]float64, fields Fields, C, S [][]float64) error {
	svNew[0][0] = svPrev[0][0] + 1
	return nil
}
