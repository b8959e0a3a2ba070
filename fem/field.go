// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// Field holds the nodal values of one physical field; e.g. displacements,
// pressure or volume ratio. Values are stored flat, node-major:
//  Vals[node*Ndim+comp]
type Field struct {
	Key  string    // field key; e.g. "u"
	Nnod int       // number of nodes
	Ndim int       // number of components per node
	Vals []float64 // current values [Nnod*Ndim]
}

// NewField allocates a field with zeroed values
func NewField(key string, nnod, ndim int) *Field {
	return &Field{key, nnod, ndim, make([]float64, nnod*ndim)}
}

// Num returns the number of scalar unknowns of this field
func (o *Field) Num() int {
	return len(o.Vals)
}

// Add adds the correction δ to the field values
func (o *Field) Add(δ []float64) {
	for i, d := range δ {
		o.Vals[i] += d
	}
}

// Clone returns a deep copy
func (o *Field) Clone() *Field {
	c := &Field{o.Key, o.Nnod, o.Ndim, make([]float64, len(o.Vals))}
	copy(c.Vals, o.Vals)
	return c
}

// Fields is an ordered set of fields logically stacked into one global vector
type Fields []*Field

// Find returns the field with the given key or nil
func (o Fields) Find(key string) *Field {
	for _, f := range o {
		if f.Key == key {
			return f
		}
	}
	return nil
}

// Ntotal returns the total number of scalar unknowns of all fields
func (o Fields) Ntotal() (n int) {
	for _, f := range o {
		n += f.Num()
	}
	return
}

// Unstack returns the cumulative split boundaries of the stacked global
// vector: one entry per field except the last
func (o Fields) Unstack() (boundaries []int) {
	n := 0
	for _, f := range o[:len(o)-1] {
		n += f.Num()
		boundaries = append(boundaries, n)
	}
	return
}

// Pack copies all field values into the stacked global vector y
func (o Fields) Pack(y []float64) {
	n := 0
	for _, f := range o {
		copy(y[n:n+f.Num()], f.Vals)
		n += f.Num()
	}
}

// Clone returns a deep copy of all fields
func (o Fields) Clone() Fields {
	c := make(Fields, len(o))
	for i, f := range o {
		c[i] = f.Clone()
	}
	return c
}

// Split splits the stacked global vector y at the unstack boundaries,
// returning one slice per field (views into y, no copies)
func Split(y []float64, unstack []int) (parts [][]float64) {
	start := 0
	for _, b := range unstack {
		parts = append(parts, y[start:b])
		start = b
	}
	return append(parts, y[start:])
}

// Merge re-stacks per-field slices into the global vector y
func Merge(y []float64, parts [][]float64) {
	n := 0
	for _, p := range parts {
		copy(y[n:n+len(p)], p)
		n += len(p)
	}
}
