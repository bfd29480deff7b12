// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

// package grd implements the structured grid descriptor: global geometry,
// the per-processor ownership window and the solution field with its
// one-cell ghost halo
package grd

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Grid holds the global geometry of a 2D rectangular grid over [0,1]×[0,1]
type Grid struct {
	Mx int     // number of grid points along x
	My int     // number of grid points along y
	Hx float64 // cell spacing along x = 1/(Mx-1)
	Hy float64 // cell spacing along y = 1/(My-1)
}

// New returns a new grid. Mx and My must be at least 2
func New(mx, my int) (o *Grid, err error) {
	if mx < 2 || my < 2 {
		return nil, chk.Err("grid dimensions must be at least 2: Mx=%d, My=%d", mx, my)
	}
	o = new(Grid)
	o.Mx = mx
	o.My = my
	o.Hx = 1.0 / float64(mx-1)
	o.Hy = 1.0 / float64(my-1)
	return
}

// Eq returns the equation (row) number of grid point (i,j) in natural ordering
func (o *Grid) Eq(i, j int) int {
	return i + j*o.Mx
}

// OnBoundary tells whether grid point (i,j) lies on the physical boundary
func (o *Grid) OnBoundary(i, j int) bool {
	return i == 0 || j == 0 || i == o.Mx-1 || j == o.My-1
}

// Window defines the sub-rectangle of grid points owned by one processor
type Window struct {
	Xs int // first owned index along x
	Ys int // first owned index along y
	Xm int // number of owned points along x
	Ym int // number of owned points along y
}

// Contains tells whether (i,j) is owned by this window
func (o Window) Contains(i, j int) bool {
	return i >= o.Xs && i < o.Xs+o.Xm && j >= o.Ys && j < o.Ys+o.Ym
}

// Partition returns the ownership window of processor 'proc' when the grid is
// split across 'nproc' processors. Processors are arranged in a near-square
// Cartesian box; leftover points go to the lower-index slices so the windows
// are disjoint and covering
func (o *Grid) Partition(nproc, proc int) (w Window, err error) {
	if nproc < 1 || proc < 0 || proc >= nproc {
		return w, chk.Err("invalid partition request: nproc=%d, proc=%d", nproc, proc)
	}
	npx, npy := boxFactors(nproc)
	if npx > o.Mx || npy > o.My {
		return w, chk.Err("cannot partition %d×%d grid across %d×%d processors", o.Mx, o.My, npx, npy)
	}
	px := proc % npx
	py := proc / npx
	w.Xs, w.Xm = split1d(o.Mx, npx, px)
	w.Ys, w.Ym = split1d(o.My, npy, py)
	return
}

// boxFactors finds the factor pair npx*npy == nproc closest to a square box
func boxFactors(nproc int) (npx, npy int) {
	npx = 1
	for f := 1; f <= int(math.Sqrt(float64(nproc))); f++ {
		if nproc%f == 0 {
			npx = f
		}
	}
	npy = nproc / npx
	return
}

// split1d splits n points across np slices; slice 'p' gets its start and size
func split1d(n, np, p int) (start, size int) {
	base := n / np
	rem := n % np
	size = base
	if p < rem {
		size++
		start = p * (base + 1)
		return
	}
	start = rem*(base+1) + (p-rem)*base
	return
}
