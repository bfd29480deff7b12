// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// PLaplace implements the regularized p-Laplacian diffusivity
//
//   η(γ) = (ε² + γ)^((p-2)/2)      γ = (ux² + uy²)/2
//
// The ε² term keeps η finite and positive where the gradient vanishes, which
// matters for p < 2. For p == 2 the diffusivity is the constant 1 and its
// derivative is identically zero; that case is taken exactly, not as a
// numerical limit, so the assembled Jacobian stays symmetric at p == 2
type PLaplace struct {
	P   float64 // exponent of the p-Laplacian
	Eps float64 // strain regularization
}

// add model to factory
func init() {
	allocators["plaplace"] = func() Model { return new(PLaplace) }
}

// Init initialises this structure
func (o *PLaplace) Init(prms fun.Params) (err error) {
	o.P = 2.0
	o.Eps = 1e-5
	prms.Connect(&o.P, "p", "p PLaplace model")
	prms.Connect(&o.Eps, "eps", "eps PLaplace model")
	if o.P < 1.0 {
		return chk.Err("PLaplace model: exponent p must be at least 1; p=%g is invalid", o.P)
	}
	if o.Eps <= 0 {
		return chk.Err("PLaplace model: regularization eps must be positive; eps=%g is invalid", o.Eps)
	}
	return
}

// Eta computes the diffusivity at edge gradient (ux,uy)
func (o *PLaplace) Eta(ux, uy float64) float64 {
	return math.Pow(o.Eps*o.Eps+0.5*(ux*ux+uy*uy), 0.5*(o.P-2.0))
}

// Deta computes dEta/dγ with γ = (ux²+uy²)/2
func (o *PLaplace) Deta(ux, uy float64) float64 {
	if o.P == 2.0 {
		return 0
	}
	return math.Pow(o.Eps*o.Eps+0.5*(ux*ux+uy*uy), 0.5*(o.P-4.0)) * 0.5 * (o.P - 2.0)
}
