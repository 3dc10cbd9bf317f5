// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package creep

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// NabarroHerring implements the Nabarro-Herring creep rate, where vacancies
// diffuse through the grain interior
//  rate = Anh·μ·V·DL·σ·exp(-HL/(R·T)) / (R·d²·T)
type NabarroHerring struct {

	// parameters
	a  float64 // geometry factor Anh [-]
	μ  float64 // shear modulus [Pa]
	v  float64 // molar volume [m³/mol]
	dl float64 // lattice diffusion coefficient [m²/s]
	hl float64 // lattice diffusion activation enthalpy [J/mol]
	d  float64 // grain size [m]
}

// add model to factory
func init() {
	allocators["nh"] = func() Model { return new(NabarroHerring) }
}

// Init initialises model
func (o *NabarroHerring) Init(prms dbf.Params) (err error) {
	v, err := getPrmValues(prms, "nh", "anh", "mu", "v", "dl", "hl", "dgrain")
	if err != nil {
		return
	}
	o.a, o.μ, o.v, o.dl, o.hl, o.d = v[0], v[1], v[2], v[3], v[4], v[5]
	return
}

// GetPrms gets (an example) of parameters
func (o NabarroHerring) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "anh", V: 16},
		&dbf.P{N: "mu", V: 42e9},
		&dbf.P{N: "v", V: 2.6e-5},
		&dbf.P{N: "dl", V: 2.9e-5},
		&dbf.P{N: "hl", V: 243e3},
		&dbf.P{N: "dgrain", V: 1e-5},
	}
}

// Rate computes the steady-state strain rate. Linear in σ.
func (o NabarroHerring) Rate(T, σ float64) float64 {
	return o.a * o.μ * o.v * o.dl * σ * math.Exp(-o.hl/(Rgas*T)) / (Rgas * o.d * o.d * T)
}

// DrateDsig computes ∂Rate/∂σ at fixed temperature
func (o NabarroHerring) DrateDsig(T, σ float64) float64 {
	return o.a * o.μ * o.v * o.dl * math.Exp(-o.hl/(Rgas*T)) / (Rgas * o.d * o.d * T)
}
