// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// Prm holds one material parameter as a name/value pair
type Prm struct {
	N string  `json:"n"` // name; e.g. "p1"
	V float64 `json:"v"` // value
}

// Prms holds a set of material parameters
type Prms []*Prm

// Find returns the parameter named n or nil
func (o Prms) Find(n string) *Prm {
	for _, p := range o {
		if p.N == n {
			return p
		}
	}
	return nil
}

// MatData holds the material name, model key and parameters
type MatData struct {
	Name  string `json:"name"`  // material name; e.g. "rubberA"
	Model string `json:"model"` // model key; e.g. "morph" or "morph-repdir"
	Prms  Prms   `json:"prms"`  // parameters
}
