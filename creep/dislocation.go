// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package creep

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Dislocation implements the dislocation (power-law) creep rate
//  rate = μ·b·DL·σ³·exp(-HL/(R·T)) / (kB·T)
type Dislocation struct {

	// parameters
	μ  float64 // shear modulus [Pa]
	b  float64 // Burgers vector length [m]
	dl float64 // lattice diffusion coefficient [m²/s]
	hl float64 // lattice diffusion activation enthalpy [J/mol]
}

// add model to factory
func init() {
	allocators["dc"] = func() Model { return new(Dislocation) }
}

// Init initialises model
func (o *Dislocation) Init(prms dbf.Params) (err error) {
	v, err := getPrmValues(prms, "dc", "mu", "b", "dl", "hl")
	if err != nil {
		return
	}
	o.μ, o.b, o.dl, o.hl = v[0], v[1], v[2], v[3]
	return
}

// GetPrms gets (an example) of parameters
func (o Dislocation) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "mu", V: 42e9},
		&dbf.P{N: "b", V: 5e-10},
		&dbf.P{N: "dl", V: 2.9e-5},
		&dbf.P{N: "hl", V: 243e3},
	}
}

// Rate computes the steady-state strain rate. Cubic in σ.
func (o Dislocation) Rate(T, σ float64) float64 {
	return o.μ * o.b * o.dl * σ * σ * σ * math.Exp(-o.hl/(Rgas*T)) / (KB * T)
}

// DrateDsig computes ∂Rate/∂σ at fixed temperature
func (o Dislocation) DrateDsig(T, σ float64) float64 {
	return 3.0 * o.μ * o.b * o.dl * σ * σ * math.Exp(-o.hl/(Rgas*T)) / (KB * T)
}
