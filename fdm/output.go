// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

package fdm

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
)

// PlotSolution draws contours of the current solution and saves the figure
// to dirout/fname. Call on one processor only; the solution vector is full
// length on every processor after a solve
func PlotSolution(d *Domain, dirout, fname string) {
	g := d.Grid
	X := la.MatAlloc(g.My, g.Mx)
	Y := la.MatAlloc(g.My, g.Mx)
	Z := la.MatAlloc(g.My, g.Mx)
	for j := 0; j < g.My; j++ {
		for i := 0; i < g.Mx; i++ {
			X[j][i] = float64(i) * g.Hx
			Y[j][i] = float64(j) * g.Hy
			Z[j][i] = d.Y[g.Eq(i, j)]
		}
	}
	plt.ContourSimple(X, Y, Z, "linewidths=[1], clip_on=0")
	plt.Gll("$x$", "$y$", "")
	plt.SaveD(dirout, fname)
}
