// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package creep implements steady-state creep rate models for quartz
//  References:
//   [1] Frost HJ and Ashby MF (1982) Deformation-Mechanism Maps: The Plasticity
//       and Creep of Metals and Ceramics, Pergamon Press, Oxford
package creep

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// physical constants
const (
	KB   = 1.38062e-23 // Boltzmann constant [J/K]
	Rgas = 8.3143      // universal gas constant [J/(mol·K)]
)

// Model defines the interface for steady-state creep rate models. Temperatures
// are absolute [K] and stresses are shear stresses normalised by the shear
// modulus. Rates are pure functions of (T, σ): models hold material constants
// set once by Init and never mutate them afterwards.
type Model interface {
	Init(prms dbf.Params) error      // initialises model with material parameters
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Rate(T, σ float64) float64       // computes strain rate [1/s]
	DrateDsig(T, σ float64) float64  // computes ∂Rate/∂σ at fixed temperature
}

// New returns new creep rate model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'creep' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// getPrmValues extracts named parameters from a (possibly larger) material
// parameter set. Names required by other mechanisms may be present and are
// ignored; the requested ones must exist and be positive.
func getPrmValues(prms dbf.Params, model string, names ...string) (values []float64, err error) {
	var found []bool
	values, found = prms.GetValues(names)
	for i, name := range names {
		if !found[i] {
			return nil, chk.Err("%s: parameter %q must be given in database of material parameters", model, name)
		}
		if values[i] <= 0 {
			return nil, chk.Err("%s: parameter %q must be positive. %v is invalid", model, name, values[i])
		}
	}
	return
}
