// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

package grd

import (
	"github.com/cpmech/gosl/chk"
)

// Field gives 2D-indexed access to the values of one processor's owned window
// plus a one-cell ghost halo. The halo is read-only from the kernels' point
// of view; it is refreshed from the full-length natural-ordering vector that
// this processor holds (see LoadFrom). Indices passed to the accessors are
// always global grid indices
type Field struct {
	grid *Grid
	win  Window
	nx   int       // Xm+2: buffer extent along x, including halo
	ny   int       // Ym+2: buffer extent along y, including halo
	vals []float64 // [nx*ny] values over owned+halo points
}

// NewField allocates a field over the owned+halo window of w
func NewField(g *Grid, w Window) (o *Field) {
	o = new(Field)
	o.grid = g
	o.win = w
	o.nx = w.Xm + 2
	o.ny = w.Ym + 2
	o.vals = make([]float64, o.nx*o.ny)
	return
}

// Window returns the owned window
func (o *Field) Window() Window {
	return o.win
}

// index maps global (i,j) to the local buffer position, halting on accesses
// beyond the owned+halo rectangle
func (o *Field) index(i, j int) int {
	li := i - o.win.Xs + 1
	lj := j - o.win.Ys + 1
	if li < 0 || li >= o.nx || lj < 0 || lj >= o.ny {
		chk.Panic("field access at (%d,%d) is outside the owned+halo window {xs=%d xm=%d ys=%d ym=%d}", i, j, o.win.Xs, o.win.Xm, o.win.Ys, o.win.Ym)
	}
	return li + lj*o.nx
}

// Get returns the value at global point (i,j); (i,j) may lie in the halo
func (o *Field) Get(i, j int) float64 {
	return o.vals[o.index(i, j)]
}

// Set stores v at global point (i,j); (i,j) must be owned
func (o *Field) Set(i, j int, v float64) {
	if !o.win.Contains(i, j) {
		chk.Panic("field write at (%d,%d) is outside the owned window {xs=%d xm=%d ys=%d ym=%d}", i, j, o.win.Xs, o.win.Xm, o.win.Ys, o.win.Ym)
	}
	o.vals[o.index(i, j)] = v
}

// Add increments the value at (i,j), which may lie in the halo. This is used
// by the finite-difference Jacobian to perturb stencil neighbours of owned
// rows; halo increments stay local to this processor
func (o *Field) Add(i, j int, dv float64) {
	o.vals[o.index(i, j)] += dv
}

// LoadFrom refreshes owned and halo values from the full-length vector v
// (natural ordering, len = Mx*My). Halo cells beyond the physical domain are
// left untouched; the kernels never read them
func (o *Field) LoadFrom(v []float64) {
	g := o.grid
	for j := o.win.Ys - 1; j <= o.win.Ys+o.win.Ym; j++ {
		if j < 0 || j >= g.My {
			continue
		}
		for i := o.win.Xs - 1; i <= o.win.Xs+o.win.Xm; i++ {
			if i < 0 || i >= g.Mx {
				continue
			}
			o.vals[o.index(i, j)] = v[g.Eq(i, j)]
		}
	}
}

// StoreTo copies the owned values into the full-length vector v
func (o *Field) StoreTo(v []float64) {
	g := o.grid
	for j := o.win.Ys; j < o.win.Ys+o.win.Ym; j++ {
		for i := o.win.Xs; i < o.win.Xs+o.win.Xm; i++ {
			v[g.Eq(i, j)] = o.vals[o.index(i, j)]
		}
	}
}
