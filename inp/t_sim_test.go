// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

package inp

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. defaults")

	sim := ReadSim("")
	chk.IntAssert(sim.Mx, 4)
	chk.IntAssert(sim.My, 4)
	chk.Scalar(tst, "lambda", 1e-17, sim.Prms.Lambda, 6.0)
	chk.Scalar(tst, "p", 1e-17, sim.Prms.P, 2.0)
	chk.Scalar(tst, "epsilon", 1e-17, sim.Prms.Eps, 1e-5)
	chk.IntAssert(sim.Prms.Jtype, int(JacFull))
	if !sim.Prms.MyJac {
		tst.Errorf("analytic Jacobian should be on by default\n")
		return
	}
	if sim.Prms.AllocStar {
		tst.Errorf("box preallocation should be on by default\n")
		return
	}
	chk.StrAssert(sim.LinSol.Name, "umfpack")
	if sim.Solver.Itol <= 0 {
		tst.Errorf("Itol was not derived: %g\n", sim.Solver.Itol)
		return
	}
	if err := sim.Validate(); err != nil {
		tst.Errorf("default simulation should validate: %v\n", err)
		return
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. read .sim file")

	sim := ReadSim("data/pbratu01.sim")
	chk.IntAssert(sim.Mx, 16)
	chk.IntAssert(sim.My, 16)
	chk.Scalar(tst, "lambda", 1e-17, sim.Prms.Lambda, 5.0)
	chk.Scalar(tst, "p", 1e-17, sim.Prms.P, 3.0)
	chk.Scalar(tst, "epsilon", 1e-17, sim.Prms.Eps, 1e-3)
	chk.IntAssert(sim.Prms.Jtype, int(JacPicard))
	if !sim.Prms.AllocStar {
		tst.Errorf("allocstar should be set by the file\n")
		return
	}
	chk.IntAssert(sim.Solver.NmaxIt, 40)
	if err := sim.Validate(); err != nil {
		tst.Errorf("simulation should validate: %v\n", err)
		return
	}
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. invalid configurations are named")

	sim := ReadSim("")
	sim.Prms.Jtype = 5
	err := sim.Validate()
	if err == nil {
		tst.Errorf("jtype=5 should have failed validation\n")
		return
	}
	if !strings.Contains(err.Error(), "5") {
		tst.Errorf("error message must name the invalid jtype: %v\n", err)
		return
	}
	io.Pfgrey("  expected error: %v\n", err)

	sim = ReadSim("")
	sim.Mx = 1
	err = sim.Validate()
	if err == nil {
		tst.Errorf("Mx=1 should have failed validation\n")
		return
	}
	if !strings.Contains(err.Error(), "Mx=1") {
		tst.Errorf("error message must name the invalid dimension: %v\n", err)
		return
	}

	sim = ReadSim("")
	sim.Prms.P = 0.9
	if sim.Validate() == nil {
		tst.Errorf("p=0.9 should have failed validation\n")
		return
	}

	sim = ReadSim("")
	sim.Prms.Eps = -1e-5
	if sim.Validate() == nil {
		tst.Errorf("epsilon<0 should have failed validation\n")
		return
	}
}

func Test_sim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim04. jacobian type names")

	chk.StrAssert(JacPlain.String(), "plain")
	chk.StrAssert(JacPicard.String(), "picard")
	chk.StrAssert(JacStar.String(), "star")
	chk.StrAssert(JacFull.String(), "full")
	chk.StrAssert(JacType(7).String(), "unknown(7)")
}
