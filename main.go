// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

// pbratu solves the p-Laplacian + Bratu (solid fuel ignition) problem on a
// 2D rectangular grid with Newton-Raphson iterations.
//
//   Usage: pbratu [simfile.sim] [mx] [my] [jtype] [p] [epsilon] [lambda] [myjac] [allocstar] [verbose] [doplot]
//
// When a .sim file is given it configures the whole run; otherwise the
// positional arguments override the defaults (4×4 grid, lambda=6, p=2,
// epsilon=1e-5, full Jacobian). jtype selects the Jacobian strategy:
// 1=plain, 2=picard, 3=star, 4=full
package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/pbratu/fdm"
	"github.com/cpmech/pbratu/inp"
)

func main() {

	// catch errors
	failed := false
	defer func() {
		if err := recover(); err != nil {
			failed = true
			if mpi.Rank() == 0 {
				io.PfRed("\nERROR: %v\n", err)
				chk.Verbose = true
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
		mpi.Stop(false)
		if failed {
			os.Exit(1)
		}
	}()
	mpi.Start(false)

	// read input parameters
	simfnpath, _ := io.ArgToFilename(0, "", ".sim", false)
	sim := inp.ReadSim(simfnpath)
	if simfnpath == "" {
		sim.Mx = io.ArgToInt(1, sim.Mx)
		sim.My = io.ArgToInt(2, sim.My)
		sim.Prms.Jtype = io.ArgToInt(3, sim.Prms.Jtype)
		sim.Prms.P = io.ArgToFloat(4, sim.Prms.P)
		sim.Prms.Eps = io.ArgToFloat(5, sim.Prms.Eps)
		sim.Prms.Lambda = io.ArgToFloat(6, sim.Prms.Lambda)
		sim.Prms.MyJac = io.ArgToBool(7, sim.Prms.MyJac)
		sim.Prms.AllocStar = io.ArgToBool(8, sim.Prms.AllocStar)
	}
	verbose := io.ArgToBool(9, true)
	doplot := io.ArgToBool(10, false)

	// solve
	m := fdm.NewMain(sim, true, verbose)
	defer m.Free()
	reason, _, err := m.Run()
	if err != nil {
		chk.Panic("solve failed:\n%v", err)
	}
	if !reason.Converged() {
		chk.Panic("nonlinear solver did not converge: %v", reason)
	}

	// plot solution
	if doplot && m.Proc == 0 {
		fdm.PlotSolution(m.Dom, "/tmp/pbratu", "solution.png")
	}
}
