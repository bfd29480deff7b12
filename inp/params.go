// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// known stability range of the Bratu parameter for p=2
const (
	BratuLambdaMin = 0.0
	BratuLambdaMax = 6.81
)

// JacType selects the Jacobian assembly strategy
type JacType int

const (
	JacPlain  JacType = iota + 1 // 5-point, constant p=2 coefficients
	JacPicard                    // 5-point, current diffusivities, no derivative
	JacStar                      // 5-point, full derivative with truncated cross terms
	JacFull                      // 9-point, exact analytic Jacobian
)

// String returns the name of the Jacobian type
func (o JacType) String() string {
	switch o {
	case JacPlain:
		return "plain"
	case JacPicard:
		return "picard"
	case JacStar:
		return "star"
	case JacFull:
		return "full"
	}
	return io.Sf("unknown(%d)", int(o))
}

// Parameters holds the problem parameters of one solve. The structure is
// fixed for the whole solve and passed by reference into every kernel call
type Parameters struct {
	Lambda    float64 `json:"lambda"`    // Bratu parameter
	P         float64 `json:"p"`         // exponent in p-Laplacian
	Eps       float64 `json:"epsilon"`   // strain regularization in p-Laplacian
	Jtype     int     `json:"jtype"`     // Jacobian type: 1=plain, 2=picard, 3=star, 4=full
	MyJac     bool    `json:"myjac"`     // register the analytic Jacobian; otherwise use finite differences
	AllocStar bool    `json:"allocstar"` // preallocate the matrix with the 5-point (star) pattern
}

// SetDefault sets default values
func (o *Parameters) SetDefault() {
	o.Lambda = 6.0
	o.P = 2.0
	o.Eps = 1e-5
	o.Jtype = int(JacFull)
	o.MyJac = true
	o.AllocStar = false
}

// Jac returns the Jacobian type
func (o *Parameters) Jac() JacType {
	return JacType(o.Jtype)
}

// Validate fails on any parameter value no solve could accept, naming the
// offending value
func (o *Parameters) Validate() (err error) {
	if o.P < 1.0 {
		return chk.Err("exponent p must be at least 1; p=%g is invalid", o.P)
	}
	if o.Eps <= 0 {
		return chk.Err("regularization epsilon must be positive; epsilon=%g is invalid", o.Eps)
	}
	if o.Jtype < int(JacPlain) || o.Jtype > int(JacFull) {
		return chk.Err("jacobian type %d is not available", o.Jtype)
	}
	return
}

// Warn prints advisory warnings. Lambda outside the known-stable range for
// p=2 is a physical-modelling caution, not an error; execution continues
func (o *Parameters) Warn() {
	if o.Lambda < BratuLambdaMin || o.Lambda > BratuLambdaMax {
		io.Pf("WARNING: lambda %g out of range for p=2\n", o.Lambda)
	}
}

// ClosureParams returns the parameters of the diffusivity closure
func (o *Parameters) ClosureParams() fun.Params {
	return fun.Params{
		&fun.P{N: "p", V: o.P},
		&fun.P{N: "eps", V: o.Eps},
	}
}
