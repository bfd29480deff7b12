// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

package fdm

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/pbratu/inp"
)

// Reason tells why the Newton iteration stopped
type Reason int

const (
	ReasonNone     Reason = iota // still iterating
	ConvergedFbRel               // |fb| dropped below FbTol·|fb0|
	ConvergedFbAbs               // |fb| dropped below FbMin
	ConvergedDuRms               // RMS of δu dropped below Itol
	DivergedFbUp                 // residual grew between iterations
	DivergedDuUp                 // increment grew between iterations
	DivergedMaxIt                // iteration cap reached
)

// String returns the name of the stopping reason
func (o Reason) String() string {
	switch o {
	case ConvergedFbRel:
		return "CONVERGED_FB_RELATIVE"
	case ConvergedFbAbs:
		return "CONVERGED_FB_ABSOLUTE"
	case ConvergedDuRms:
		return "CONVERGED_DU_RMS"
	case DivergedFbUp:
		return "DIVERGED_FB_INCREASE"
	case DivergedDuUp:
		return "DIVERGED_DU_INCREASE"
	case DivergedMaxIt:
		return "DIVERGED_MAX_IT"
	}
	return "NONE"
}

// Converged tells whether the reason is one of the converged ones
func (o Reason) Converged() bool {
	return o == ConvergedFbRel || o == ConvergedFbAbs || o == ConvergedDuRms
}

// Newton solves the nonlinear system with Newton-Raphson iterations: each
// iteration asks the domain for a fresh residual and (unless the tangent is
// held constant) a fresh Jacobian, solves the linearised system and updates
// the primary variables. The solver owns all solver-level decisions; the
// domain kernels only evaluate
type Newton struct {
	Dom  *Domain
	Conf *inp.SolverData
}

// NewNewton returns a Newton solver
func NewNewton(d *Domain, conf *inp.SolverData) *Newton {
	return &Newton{Dom: d, Conf: conf}
}

// Run iterates until convergence, divergence or the iteration cap and
// returns the stopping reason with the number of iterations performed
func (o *Newton) Run() (reason Reason, it int, err error) {

	d := o.Dom
	cf := o.Conf
	var largFb, largFb0, Lδu float64
	var prevFb, prevLδu float64
	reason = DivergedMaxIt

	for it = 0; it < cf.NmaxIt; it++ {

		// ghost values must be visible before evaluation begins
		d.X.LoadFrom(d.Y)

		// assemble right-hand side vector (fb) with negative of residuals
		la.VecFill(d.Fb, 0)
		d.FormResidual(d.F, d.X)
		d.AddToRhs(d.Fb)

		// join all fb
		if d.Distr {
			mpi.AllReduceSum(d.Fb, d.Wb)
		}

		// check largest absolute component of fb
		largFb = la.VecLargest(d.Fb, 1)
		if it == 0 {
			largFb0 = largFb
		} else {
			if largFb < cf.FbTol*largFb0 {
				reason = ConvergedFbRel
				break
			}
			if largFb < cf.FbMin {
				reason = ConvergedFbAbs
				break
			}
		}
		if it > 1 && cf.DvgCtrl && largFb > prevFb {
			reason = DivergedFbUp
			break
		}
		prevFb = largFb

		// assemble and factorise Jacobian matrix
		if it == 0 || !cf.CteTg {
			if d.Prms.MyJac {
				err = d.FormJacobian(d.Kb, d.X)
			} else {
				err = d.FormJacobianFD(d.Kb, d.X, cf.FdStep)
			}
			if err != nil {
				return
			}
			if d.InitLSol {
				err = d.LinSol.InitR(d.Kb, false, false, false)
				if err != nil {
					return
				}
				d.InitLSol = false
			}
			err = d.LinSol.Fact()
			if err != nil {
				return
			}
		}

		// solve for δy and update primary variables
		err = d.LinSol.SolveR(d.Wb, d.Fb, false)
		if err != nil {
			return
		}
		for i := 0; i < d.Ny; i++ {
			d.Y[i] += d.Wb[i]
		}

		// check RMS norm of δu
		Lδu = la.VecRmsErr(d.Wb, cf.Atol, cf.Rtol, d.Y)
		if cf.ShowR {
			io.Pf("%4d%23.15e%23.15e\n", it, largFb, Lδu)
		}
		if Lδu < cf.Itol {
			it++
			reason = ConvergedDuRms
			break
		}
		if it > 1 && cf.DvgCtrl && Lδu > prevLδu {
			reason = DivergedDuUp
			break
		}
		prevLδu = Lδu
	}
	return
}
