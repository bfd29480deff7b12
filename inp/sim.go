// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name    string `json:"name"`    // "mumps" or "umfpack"
	Verbose bool   `json:"verbose"` // verbose?
	Timing  bool   `json:"timing"`  // show timing statistics
}

// SetDefault sets default values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
}

// SolverData holds Newton solver data
type SolverData struct {
	NmaxIt  int     `json:"nmaxit"`  // number of max iterations
	Atol    float64 `json:"atol"`    // absolute tolerance
	Rtol    float64 `json:"rtol"`    // relative tolerance
	FbTol   float64 `json:"fbtol"`   // tolerance for convergence on fb
	FbMin   float64 `json:"fbmin"`   // minimum value of fb
	DvgCtrl bool    `json:"dvgctrl"` // stop on residual or increment increase
	CteTg   bool    `json:"ctetg"`   // constant tangent (modified Newton) during iterations
	ShowR   bool    `json:"showr"`   // show residual
	FdStep  float64 `json:"fdstep"`  // step for the finite-difference Jacobian

	// derived
	Itol float64 `json:"-"` // iterations tolerance
	Eps  float64 `json:"-"` // smallest value allowed for convergence constants
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.NmaxIt = 20
	o.Atol = 1e-6
	o.Rtol = 1e-6
	o.FbTol = 1e-8
	o.FbMin = 1e-14
	o.FdStep = 1e-6
	o.Eps = 1e-16
}

// PostProcess performs a post-processing of the just read json file
func (o *SolverData) PostProcess() {
	o.Itol = utl.Max(10.0*o.Eps/o.Rtol, utl.Min(0.01, math.Sqrt(o.Rtol)))
}

// Simulation holds all simulation data
type Simulation struct {
	Desc   string     `json:"desc"`   // description of simulation
	Mx     int        `json:"mx"`     // number of grid points along x
	My     int        `json:"my"`     // number of grid points along y
	Prms   Parameters `json:"params"` // problem parameters
	Solver SolverData `json:"solver"` // Newton solver data
	LinSol LinSolData `json:"linsol"` // linear solver data
}

// ReadSim reads simulation data from a .sim JSON file; an empty path returns
// the defaults (4×4 grid, lambda=6, p=2, epsilon=1e-5, full Jacobian)
func ReadSim(simfilepath string) (o *Simulation) {

	// new sim with default values
	o = new(Simulation)
	o.Mx = 4
	o.My = 4
	o.Prms.SetDefault()
	o.Solver.SetDefault()
	o.LinSol.SetDefault()

	// read file
	if simfilepath != "" {
		b, err := io.ReadFile(simfilepath)
		if err != nil {
			chk.Panic("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
		}
		err = json.Unmarshal(b, o)
		if err != nil {
			chk.Panic("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
		}
	}

	// set solver constants
	o.Solver.PostProcess()
	return
}

// Validate fails fast on configuration no solve could accept
func (o *Simulation) Validate() (err error) {
	if o.Mx < 2 || o.My < 2 {
		return chk.Err("grid dimensions must be at least 2: Mx=%d, My=%d", o.Mx, o.My)
	}
	return o.Prms.Validate()
}
