// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

package fdm

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/pbratu/inp"
)

// denseJacobian assembles and returns the dense Jacobian of d
func denseJacobian(tst *testing.T, d *Domain) [][]float64 {
	err := d.FormJacobian(d.Kb, d.X)
	if err != nil {
		tst.Fatalf("FormJacobian failed: %v\n", err)
	}
	return d.Kb.ToMatrix(nil).ToDense()
}

func Test_jac01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jac01. all variants coincide at p=2")

	// at p=2 the diffusivity is constant and its derivative vanishes
	// exactly, so picard, star and full rows all reduce to the plain ones
	var ref [][]float64
	for jt := int(inp.JacPlain); jt <= int(inp.JacFull); jt++ {
		prms := newTestParams() // p=2
		prms.Jtype = jt
		d := newTestDomain(tst, 6, 5, prms)
		setTestField(d)
		K := denseJacobian(tst, d)
		if jt == int(inp.JacPlain) {
			ref = K
		} else {
			chk.Matrix(tst, io.Sf("K(%v) == K(plain)", inp.JacType(jt)), 1e-14, K, ref)
		}
		d.Free()
	}
}

func Test_jac02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jac02. full variant against central differences")

	prms := newTestParams()
	prms.P = 3.0
	prms.Eps = 1e-2
	prms.Lambda = 1.0
	d := newTestDomain(tst, 5, 5, prms)
	defer d.Free()
	setTestField(d)
	K := denseJacobian(tst, d)

	g := d.Grid
	ytmp := make([]float64, d.Ny)
	for r := 0; r < d.Ny; r++ {
		ir, jr := r%g.Mx, r/g.Mx
		for c := 0; c < d.Ny; c++ {
			dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
				copy(ytmp, d.Y)
				ytmp[c] = x
				d.X.LoadFrom(ytmp)
				res = d.residAt(d.X, ir, jr)
				d.X.LoadFrom(d.Y)
				return
			}, d.Y[c], 1e-4)
			chk.AnaNum(tst, io.Sf("J%2d,%2d", r, c), 1e-5, K[r][c], dnum, false)
		}
	}
}

func Test_jac03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jac03. full variant against gonum fd.Jacobian")

	prms := newTestParams()
	prms.P = 2.5
	prms.Eps = 1e-2
	prms.Lambda = 3.0
	d := newTestDomain(tst, 4, 4, prms)
	defer d.Free()
	d.InitialGuess(d.X)
	d.X.StoreTo(d.Y)
	d.X.LoadFrom(d.Y)
	K := denseJacobian(tst, d)

	g := d.Grid
	resid := func(y, x []float64) {
		d.X.LoadFrom(x)
		for j := 0; j < g.My; j++ {
			for i := 0; i < g.Mx; i++ {
				y[g.Eq(i, j)] = d.residAt(d.X, i, j)
			}
		}
	}
	jac := mat.NewDense(d.Ny, d.Ny, nil)
	fd.Jacobian(jac, resid, d.Y, &fd.JacobianSettings{Formula: fd.Central})
	d.X.LoadFrom(d.Y)

	for r := 0; r < d.Ny; r++ {
		for c := 0; c < d.Ny; c++ {
			chk.AnaNum(tst, io.Sf("J%2d,%2d", r, c), 1e-5, K[r][c], jac.At(r, c), false)
		}
	}
}

func Test_jac04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jac04. diffusion rows conserve and have positive diagonals")

	// with lambda=0 every interior row is pure diffusion: its entries must
	// sum to zero (discrete conservation) with a positive diagonal, for all
	// variants and also for p<2
	for jt := int(inp.JacPlain); jt <= int(inp.JacFull); jt++ {
		prms := newTestParams()
		prms.P = 1.5
		prms.Eps = 1e-2
		prms.Lambda = 0.0
		prms.Jtype = jt
		d := newTestDomain(tst, 6, 6, prms)
		d.InitialGuess(d.X)
		K := denseJacobian(tst, d)
		g := d.Grid
		for j := 1; j < g.My-1; j++ {
			for i := 1; i < g.Mx-1; i++ {
				r := g.Eq(i, j)
				sum := 0.0
				for c := 0; c < d.Ny; c++ {
					sum += K[r][c]
				}
				chk.Scalar(tst, io.Sf("%v: row %d sum", inp.JacType(jt), r), 1e-12, sum, 0.0)
				if K[r][r] <= 0 {
					tst.Errorf("%v: diagonal of row %d is not positive: %g\n", inp.JacType(jt), r, K[r][r])
					return
				}
			}
		}
		d.Free()
	}
}

func Test_jac05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jac05. unsupported jacobian type is named")

	for _, pair := range [][]int{{4, 4}, {8, 6}} {
		prms := newTestParams()
		prms.Jtype = 5
		d := newTestDomain(tst, pair[0], pair[1], prms)
		d.InitialGuess(d.X)
		err := d.FormJacobian(d.Kb, d.X)
		if err == nil {
			tst.Errorf("jtype=5 should have failed\n")
			return
		}
		if !strings.Contains(err.Error(), "5") {
			tst.Errorf("error message must name the invalid jtype: %v\n", err)
			return
		}
		io.Pfgrey("  expected error: %v\n", err)
		d.Free()
	}
}

func Test_jac06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jac06. star preallocation rejects the 9-point variant")

	// star variant fits the star pattern
	prms := newTestParams()
	prms.P = 3.0
	prms.AllocStar = true
	prms.Jtype = int(inp.JacStar)
	d := newTestDomain(tst, 5, 5, prms)
	d.InitialGuess(d.X)
	if err := d.FormJacobian(d.Kb, d.X); err != nil {
		tst.Errorf("star variant should fit the star pattern: %v\n", err)
		return
	}
	d.Free()

	// full variant against a star allocation is a structural error
	prms = newTestParams()
	prms.P = 3.0
	prms.AllocStar = true
	prms.Jtype = int(inp.JacFull)
	d = newTestDomain(tst, 5, 5, prms)
	defer d.Free()
	d.InitialGuess(d.X)
	defer func() {
		if recover() == nil {
			tst.Errorf("staging a 9-point row into a star pattern should be fatal\n")
		}
	}()
	d.FormJacobian(d.Kb, d.X)
}

func Test_jac07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jac07. finite-difference assembly matches the full variant")

	prms := newTestParams()
	prms.P = 3.0
	prms.Eps = 1e-2
	prms.Lambda = 1.0
	d := newTestDomain(tst, 5, 5, prms)
	defer d.Free()
	d.InitialGuess(d.X)
	d.X.StoreTo(d.Y)
	Kana := denseJacobian(tst, d)

	dfd := newTestDomain(tst, 5, 5, prms)
	defer dfd.Free()
	dfd.InitialGuess(dfd.X)
	err := dfd.FormJacobianFD(dfd.Kb, dfd.X, 1e-6)
	if err != nil {
		tst.Errorf("FormJacobianFD failed: %v\n", err)
		return
	}
	Kfd := dfd.Kb.ToMatrix(nil).ToDense()
	chk.Matrix(tst, "Kfd == Kana", 1e-6, Kfd, Kana)

	// invalid step
	if dfd.FormJacobianFD(dfd.Kb, dfd.X, 0) == nil {
		tst.Errorf("zero step should have failed\n")
		return
	}
}
