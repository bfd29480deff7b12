// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the license file.

// package mdl implements diffusivity closures for nonlinear diffusion problems
package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines diffusivity closures: the scalar coefficient scaling the flux
// across one cell edge, as a function of the edge gradient estimate, and its
// derivative with respect to the gradient-magnitude-squared term
type Model interface {
	Init(prms fun.Params) error  // Init initialises this structure
	Eta(ux, uy float64) float64  // Eta computes the diffusivity at edge gradient (ux,uy)
	Deta(ux, uy float64) float64 // Deta computes dEta/dγ with γ = (ux²+uy²)/2
}

// New returns a diffusivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mdl' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
