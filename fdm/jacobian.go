// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

package fdm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/pbratu/grd"
	"github.com/cpmech/pbratu/inp"
)

// edgeVals holds the per-edge quantities an interior Jacobian row needs: the
// gradients and diffusivities of the four edges plus the derived skew, cross
// and Newton-corrected terms
type edgeVals struct {
	uxE, uyE, uxW, uyW float64
	uxN, uyN, uxS, uyS float64
	eE, eW, eN, eS     float64 // eta at each edge
	skewE, skewW       float64 // deta·ux·uy: mixed-partial contribution
	skewN, skewS       float64
	crossEW, crossNS   float64
	newtE, newtW       float64 // eta + deta·(gradient component)²
	newtN, newtS       float64
}

// edgesAt recomputes the residual's edge gradients at (i,j) together with the
// diffusivity derivatives
func (o *Domain) edgesAt(x *grd.Field, i, j int) (ev edgeVals) {
	g := o.Grid
	dhx, dhy := 1.0/g.Hx, 1.0/g.Hy
	u := x.Get(i, j)
	ev.uxE = dhx * (x.Get(i+1, j) - u)
	ev.uyE = 0.25 * dhy * (x.Get(i, j+1) + x.Get(i+1, j+1) - x.Get(i, j-1) - x.Get(i+1, j-1))
	ev.uxW = dhx * (u - x.Get(i-1, j))
	ev.uyW = 0.25 * dhy * (x.Get(i-1, j+1) + x.Get(i, j+1) - x.Get(i-1, j-1) - x.Get(i, j-1))
	ev.uxN = 0.25 * dhx * (x.Get(i+1, j) + x.Get(i+1, j+1) - x.Get(i-1, j) - x.Get(i-1, j+1))
	ev.uyN = dhy * (x.Get(i, j+1) - u)
	ev.uxS = 0.25 * dhx * (x.Get(i+1, j-1) + x.Get(i+1, j) - x.Get(i-1, j-1) - x.Get(i-1, j))
	ev.uyS = dhy * (u - x.Get(i, j-1))
	ev.eE = o.Mdl.Eta(ev.uxE, ev.uyE)
	ev.eW = o.Mdl.Eta(ev.uxW, ev.uyW)
	ev.eN = o.Mdl.Eta(ev.uxN, ev.uyN)
	ev.eS = o.Mdl.Eta(ev.uxS, ev.uyS)
	deE := o.Mdl.Deta(ev.uxE, ev.uyE)
	deW := o.Mdl.Deta(ev.uxW, ev.uyW)
	deN := o.Mdl.Deta(ev.uxN, ev.uyN)
	deS := o.Mdl.Deta(ev.uxS, ev.uyS)
	ev.skewE = deE * ev.uxE * ev.uyE
	ev.skewW = deW * ev.uxW * ev.uyW
	ev.skewN = deN * ev.uxN * ev.uyN
	ev.skewS = deS * ev.uxS * ev.uyS
	ev.crossEW = 0.25 * (ev.skewE - ev.skewW)
	ev.crossNS = 0.25 * (ev.skewN - ev.skewS)
	ev.newtE = ev.eE + deE*ev.uxE*ev.uxE
	ev.newtW = ev.eW + deW*ev.uxW*ev.uxW
	ev.newtN = ev.eN + deN*ev.uyN*ev.uyN
	ev.newtS = ev.eS + deS*ev.uyS*ev.uyS
	return
}

// FormJacobian stages the Jacobian rows of the owned window into Kb and
// finalizes the assembly. The variant is selected by the parameters:
//
//   plain  -- 5-point rows with the constant p=2 coefficients
//   picard -- 5-point rows weighted by the current edge diffusivities
//   star   -- 5-point rows with the full derivative; the cross terms that
//             belong on the (absent) diagonal neighbours are folded onto the
//             orthogonal ones, a documented accuracy trade-off
//   full   -- 9-point rows; the exact derivative of the edge-averaged scheme
//
// An unrecognized variant is a configuration error naming the value. Staging
// is serial: Triplet.Put is not safe for concurrent use
func (o *Domain) FormJacobian(Kb *la.Triplet, x *grd.Field) (err error) {

	// fail fast before staging anything
	jt := o.Prms.Jac()
	switch jt {
	case inp.JacPlain, inp.JacPicard, inp.JacStar, inp.JacFull:
	default:
		return chk.Err("jacobian type %d is not available", o.Prms.Jtype)
	}

	g := o.Grid
	w := o.Win
	hx, hy := g.Hx, g.Hy
	hxdhy := hx / hy
	hydhx := hy / hx
	sc := hx * hy * o.Prms.Lambda

	Kb.Start()
	o.nstaged = 0
	for j := w.Ys; j < w.Ys+w.Ym; j++ {
		for i := w.Xs; i < w.Xs+w.Xm; i++ {

			// boundary rows are the identity, matching the residual
			if g.OnBoundary(i, j) {
				o.stage(Kb, i, j, i, j, 1.0)
				continue
			}

			u := x.Get(i, j)
			react := sc * math.Exp(u)
			ev := o.edgesAt(x, i, j)

			switch jt {

			case inp.JacPlain:
				o.stage(Kb, i, j, i, j-1, -hxdhy)
				o.stage(Kb, i, j, i-1, j, -hydhx)
				o.stage(Kb, i, j, i, j, 2.0*(hydhx+hxdhy)-react)
				o.stage(Kb, i, j, i+1, j, -hydhx)
				o.stage(Kb, i, j, i, j+1, -hxdhy)

			case inp.JacPicard:
				o.stage(Kb, i, j, i, j-1, -hxdhy*ev.eS)
				o.stage(Kb, i, j, i-1, j, -hydhx*ev.eW)
				o.stage(Kb, i, j, i, j, (ev.eW+ev.eE)*hydhx+(ev.eS+ev.eN)*hxdhy-react)
				o.stage(Kb, i, j, i+1, j, -hydhx*ev.eE)
				o.stage(Kb, i, j, i, j+1, -hxdhy*ev.eN)

			case inp.JacStar:
				o.stage(Kb, i, j, i, j-1, -hxdhy*ev.newtS+ev.crossEW)
				o.stage(Kb, i, j, i-1, j, -hydhx*ev.newtW+ev.crossNS)
				o.stage(Kb, i, j, i, j, hxdhy*(ev.newtN+ev.newtS)+hydhx*(ev.newtE+ev.newtW)-react)
				o.stage(Kb, i, j, i+1, j, -hydhx*ev.newtE-ev.crossNS)
				o.stage(Kb, i, j, i, j+1, -hxdhy*ev.newtN-ev.crossEW)

			case inp.JacFull:
				o.stage(Kb, i, j, i-1, j-1, -0.25*(ev.skewS+ev.skewW))
				o.stage(Kb, i, j, i, j-1, -hxdhy*ev.newtS+ev.crossEW)
				o.stage(Kb, i, j, i+1, j-1, 0.25*(ev.skewS+ev.skewE))
				o.stage(Kb, i, j, i-1, j, -hydhx*ev.newtW+ev.crossNS)
				o.stage(Kb, i, j, i, j, hxdhy*(ev.newtN+ev.newtS)+hydhx*(ev.newtE+ev.newtW)-react)
				o.stage(Kb, i, j, i+1, j, -hydhx*ev.newtE-ev.crossNS)
				o.stage(Kb, i, j, i-1, j+1, 0.25*(ev.skewN+ev.skewW))
				o.stage(Kb, i, j, i, j+1, -hxdhy*ev.newtN-ev.crossEW)
				o.stage(Kb, i, j, i+1, j+1, -0.25*(ev.skewN+ev.skewE))
			}
		}
	}
	o.finalize()
	return
}

// FormJacobianFD builds the Jacobian rows of the owned window from central
// differences of the residual, column by column over the allocated stencil
// pattern. Used when the analytic Jacobian is not registered. The
// perturbations go through the field, so halo columns of edge rows are
// handled like any other; step is the difference step
func (o *Domain) FormJacobianFD(Kb *la.Triplet, x *grd.Field, step float64) (err error) {
	if step <= 0 {
		return chk.Err("finite-difference step must be positive; step=%g is invalid", step)
	}
	g := o.Grid
	w := o.Win
	offsets := boxOffsets
	if o.Star {
		offsets = starOffsets
	}
	Kb.Start()
	o.nstaged = 0
	for j := w.Ys; j < w.Ys+w.Ym; j++ {
		for i := w.Xs; i < w.Xs+w.Xm; i++ {
			if g.OnBoundary(i, j) {
				o.stage(Kb, i, j, i, j, 1.0)
				continue
			}
			for _, d := range offsets {
				ic, jc := i+d[0], j+d[1]
				x.Add(ic, jc, step)
				rp := o.residAt(x, i, j)
				x.Add(ic, jc, -2.0*step)
				rm := o.residAt(x, i, j)
				x.Add(ic, jc, step)
				o.stage(Kb, i, j, ic, jc, (rp-rm)/(2.0*step))
			}
		}
	}
	o.finalize()
	return
}

// column offsets of one interior row, centre first
var (
	starOffsets = [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	boxOffsets  = [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)
