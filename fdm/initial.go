// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

package fdm

import (
	"github.com/cpmech/pbratu/grd"
)

// InitialGuess fills the owned window of x with the starting profile: zero on
// the physical boundary (homogeneous Dirichlet) and the smooth bump
//
//   u(i,j) = (1 - xx²)(1 - yy²)    xx = 2i/(Mx-1) - 1,  yy = 2j/(My-1) - 1
//
// inside. The bump satisfies the boundary condition and gives Newton a
// non-trivial, non-singular starting point. Deterministic given the geometry
func (o *Domain) InitialGuess(x *grd.Field) {
	g := o.Grid
	w := o.Win
	for j := w.Ys; j < w.Ys+w.Ym; j++ {
		for i := w.Xs; i < w.Xs+w.Xm; i++ {
			if g.OnBoundary(i, j) {
				x.Set(i, j, 0.0)
				continue
			}
			xx := 2.0*float64(i)/float64(g.Mx-1) - 1.0
			yy := 2.0*float64(j)/float64(g.My-1) - 1.0
			x.Set(i, j, (1.0-xx*xx)*(1.0-yy*yy))
		}
	}
}
