// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions and integration points
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Ipoint holds integration point data: natural coordinates and weight
type Ipoint struct {
	R, S, T float64 // natural coordinates
	W       float64 // weight
}

// natural coordinates of hex8 vertices
//
//           4________________7
//         ,'|              ,'|
//       ,'  |            ,'  |
//     ,'    |          ,'    |
//   5'===============6'      |
//   |       |        |       |
//   |       0________|_______3
//   |     ,'         |     ,'
//   |   ,'           |   ,'
//   | ,'             | ,'
//   1________________2'
var hex8nat = [8][3]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// Hex8 holds hex8 (trilinear brick) shape data
type Hex8 struct {
	Nverts int       // number of vertices
	Ips    []*Ipoint // integration points (2x2x2 Gauss rule)
}

// NewHex8 allocates hex8 shape data
func NewHex8() (o *Hex8) {
	o = new(Hex8)
	o.Nverts = 8
	g := 1.0 / math.Sqrt(3.0)
	for _, t := range []float64{-g, g} {
		for _, s := range []float64{-g, g} {
			for _, r := range []float64{-g, g} {
				o.Ips = append(o.Ips, &Ipoint{r, s, t, 1})
			}
		}
	}
	return
}

// Func computes the shape functions N and their natural derivatives dNdr at
// natural coordinates (r,s,t)
func (o *Hex8) Func(N []float64, dNdr [][]float64, r, s, t float64) {
	for a := 0; a < 8; a++ {
		ra, sa, ta := hex8nat[a][0], hex8nat[a][1], hex8nat[a][2]
		N[a] = (1.0 + r*ra) * (1.0 + s*sa) * (1.0 + t*ta) / 8.0
		dNdr[a][0] = ra * (1.0 + s*sa) * (1.0 + t*ta) / 8.0
		dNdr[a][1] = sa * (1.0 + r*ra) * (1.0 + t*ta) / 8.0
		dNdr[a][2] = ta * (1.0 + r*ra) * (1.0 + s*sa) / 8.0
	}
}

// CalcAtIp computes, at integration point ip of an element with nodal
// coordinates X [8][3], the shape functions N, the gradients G = dN/dx with
// respect to real coordinates, and the coefficient dv = det(J)·w for domain
// integration
func (o *Hex8) CalcAtIp(N []float64, G [][]float64, X [][]float64, ip *Ipoint) (dv float64, err error) {

	dNdr := [8][3]float64{}
	work := make([][]float64, 8)
	for a := 0; a < 8; a++ {
		work[a] = dNdr[a][:]
	}
	o.Func(N, work, ip.R, ip.S, ip.T)

	// Jacobian J[i][j] = Σ_a X[a][i] dNdr[a][j]
	J := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for a := 0; a < 8; a++ {
				sum += X[a][i] * dNdr[a][j]
			}
			J.Set(i, j, sum)
		}
	}
	detJ := mat.Det(J)
	if detJ <= 0 {
		return 0, chk.Err("shp: non-positive Jacobian determinant: %g", detJ)
	}

	// G[a][i] = Σ_j dNdr[a][j] Jinv[j][i]
	Jinv := mat.NewDense(3, 3, nil)
	err = Jinv.Inverse(J)
	if err != nil {
		return 0, chk.Err("shp: cannot invert Jacobian: %v", err)
	}
	for a := 0; a < 8; a++ {
		for i := 0; i < 3; i++ {
			sum := 0.0
			for j := 0; j < 3; j++ {
				sum += dNdr[a][j] * Jinv.At(j, i)
			}
			G[a][i] = sum
		}
	}
	return detJ * ip.W, nil
}
