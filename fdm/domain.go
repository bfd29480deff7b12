// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

package fdm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/pbratu/grd"
	"github.com/cpmech/pbratu/inp"
	"github.com/cpmech/pbratu/mdl"
)

// Domain holds the grid window, solution vectors and the Jacobian matrix of
// one processor. Vectors are full length in natural ordering; each processor
// evaluates only the rows of its owned window and the vectors are reconciled
// across processors by the solver (see s_newton.go)
type Domain struct {

	// init: auxiliary variables
	Distr bool            // distributed/parallel run
	Proc  int             // this processor number
	Grid  *grd.Grid       // grid geometry
	Win   grd.Window      // owned window of this processor
	Prms  *inp.Parameters // [from caller] problem parameters; immutable during the solve
	Mdl   mdl.Model       // diffusivity closure

	// solution and residual
	Ny int          // total number of equations = Mx*My
	Y  []float64    // primary variables
	Fb []float64    // negative of residual
	Wb []float64    // workspace
	X  *grd.Field   // solution over owned+halo window
	F  *grd.Field   // residual over owned window

	// Jacobian and linear solver
	Kb       *la.Triplet // Jacobian == dRdy
	NnzKb    int         // number of nonzeros in Kb matrix
	Star     bool        // Kb preallocated with the 5-point (star) pattern
	LinSol   la.LinSol   // linear solver
	InitLSol bool        // flag telling that linear solver needs to be initialised prior to any further call

	// frozen nonzero structure
	nstaged int // entries staged during the current assembly
	patNnz  int // entries of the first (pattern-defining) assembly; 0 means not frozen yet
}

// NewDomain returns a new domain for processor 'proc' out of 'nproc'
func NewDomain(g *grd.Grid, prms *inp.Parameters, lsname string, proc, nproc int, distr bool) (o *Domain, err error) {

	// basic data
	o = new(Domain)
	o.Distr = distr
	o.Proc = proc
	o.Grid = g
	o.Prms = prms
	o.Win, err = g.Partition(nproc, proc)
	if err != nil {
		return nil, err
	}

	// diffusivity closure
	o.Mdl, err = mdl.New("plaplace")
	if err != nil {
		return nil, err
	}
	err = o.Mdl.Init(prms.ClosureParams())
	if err != nil {
		return nil, err
	}

	// vectors and fields
	o.Ny = g.Mx * g.My
	o.Y = make([]float64, o.Ny)
	o.Fb = make([]float64, o.Ny)
	o.Wb = make([]float64, o.Ny)
	o.X = grd.NewField(g, o.Win)
	o.F = grd.NewField(g, o.Win)

	// count nonzeros of the owned rows: 1 per boundary row, 5 or 9 per
	// interior row depending on the preallocated stencil pattern
	o.Star = prms.AllocStar
	perRow := 9
	if o.Star {
		perRow = 5
	}
	for j := o.Win.Ys; j < o.Win.Ys+o.Win.Ym; j++ {
		for i := o.Win.Xs; i < o.Win.Xs+o.Win.Xm; i++ {
			if g.OnBoundary(i, j) {
				o.NnzKb++
			} else {
				o.NnzKb += perRow
			}
		}
	}
	o.Kb = new(la.Triplet)
	o.Kb.Init(o.Ny, o.Ny, o.NnzKb)

	// linear solver
	o.LinSol = la.GetSolver(lsname)
	o.InitLSol = true
	return
}

// Free frees memory
func (o *Domain) Free() {
	o.LinSol.Free()
	o.InitLSol = true
}

// stage puts one entry of row (i,j), column (ic,jc) into Kb after checking it
// against the allocated stencil pattern. A violation means the chosen
// Jacobian variant does not fit the preallocated structure; this is a
// programming/configuration mismatch and therefore fatal
func (o *Domain) stage(Kb *la.Triplet, i, j, ic, jc int, v float64) {
	g := o.Grid
	if g.OnBoundary(i, j) {
		if ic != i || jc != j {
			chk.Panic("boundary row (%d,%d) admits only its diagonal entry; got column (%d,%d)", i, j, ic, jc)
		}
	} else {
		di := ic - i
		dj := jc - j
		if di < -1 || di > 1 || dj < -1 || dj > 1 {
			chk.Panic("column (%d,%d) is outside the stencil of row (%d,%d)", ic, jc, i, j)
		}
		if o.Star && di != 0 && dj != 0 {
			chk.Panic("new nonzero at offset (%+d,%+d) of row (%d,%d) is outside the allocated star pattern", di, dj, i, j)
		}
	}
	Kb.Put(g.Eq(i, j), g.Eq(ic, jc), v)
	o.nstaged++
}

// finalize ends one assembly pass. The first pass defines the nonzero
// structure; any later pass staging a different number of entries would have
// changed the structure after it was frozen
func (o *Domain) finalize() {
	if o.patNnz == 0 {
		o.patNnz = o.nstaged
		return
	}
	if o.nstaged != o.patNnz {
		chk.Panic("nonzero structure changed after assembly was finalized: %d entries staged, frozen pattern has %d", o.nstaged, o.patNnz)
	}
}
