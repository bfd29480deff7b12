// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

// package fdm implements the finite difference kernels and the Newton driver
// for the p-Laplacian + Bratu (solid fuel ignition) problem
//
//   -div(η ∇u) - λ exp(u) = 0   in (0,1)×(0,1),   u = 0 on the boundary
//
// with the regularized p-Laplacian closure η = (ε² + |∇u|²/2)^((p-2)/2)
package fdm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/pbratu/grd"
	"github.com/cpmech/pbratu/inp"
)

// Main holds all data for one solve
type Main struct {
	Sim     *inp.Simulation // simulation data
	Grid    *grd.Grid       // grid geometry
	Dom     *Domain         // this processor's domain
	Solver  *Newton         // nonlinear solver
	Nproc   int             // number of processors
	Proc    int             // processor id
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   sim           -- simulation data (validated here; fails fast)
//   allowParallel -- allow parallel execution; otherwise, run in serial mode regardless whether MPI is on or not
//   verbose       -- show messages
func NewMain(sim *inp.Simulation, allowParallel, verbose bool) (o *Main) {

	// check input
	o = new(Main)
	o.Sim = sim
	if err := sim.Validate(); err != nil {
		chk.Panic("invalid simulation data:\n%v", err)
	}

	// multiprocessing data
	o.Nproc = 1
	distr := false
	if mpi.IsOn() && allowParallel {
		o.Proc = mpi.Rank()
		o.Nproc = mpi.Size()
		distr = o.Nproc > 1
		if distr {
			o.Sim.LinSol.Name = "mumps"
		}
	}
	o.ShowMsg = verbose && o.Proc == 0

	// advisory warnings
	if o.ShowMsg {
		sim.Prms.Warn()
	}

	// grid and domain
	var err error
	o.Grid, err = grd.New(sim.Mx, sim.My)
	if err != nil {
		chk.Panic("cannot allocate grid:\n%v", err)
	}
	o.Dom, err = NewDomain(o.Grid, &sim.Prms, sim.LinSol.Name, o.Proc, o.Nproc, distr)
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}

	// solver
	o.Solver = NewNewton(o.Dom, &sim.Solver)
	return
}

// Run generates the initial guess, solves the nonlinear system and reports
// the convergence reason with the iteration count
func (o *Main) Run() (reason Reason, it int, err error) {

	// initial guess over the owned window, merged across processors
	d := o.Dom
	d.InitialGuess(d.X)
	d.X.StoreTo(d.Y)
	if d.Distr {
		mpi.AllReduceSum(d.Y, d.Wb)
	}

	// solve
	reason, it, err = o.Solver.Run()
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("%s Number of Newton iterations = %d\n", reason, it)
	}
	return
}

// Free frees memory
func (o *Main) Free() {
	o.Dom.Free()
}
