// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package creep

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Coble implements the Coble creep rate, where vacancies diffuse along grain
// boundaries of finite width
//  rate = Ac·μ·V·DG·w·σ·exp(-HG/(R·T)) / (R·d³·T)
type Coble struct {

	// parameters
	a  float64 // geometry factor Ac [-]
	μ  float64 // shear modulus [Pa]
	v  float64 // molar volume [m³/mol]
	dg float64 // grain-boundary diffusion coefficient [m²/s]
	w  float64 // grain-boundary width [m]
	hg float64 // grain-boundary diffusion activation enthalpy [J/mol]
	d  float64 // grain size [m]
}

// add model to factory
func init() {
	allocators["cc"] = func() Model { return new(Coble) }
}

// Init initialises model
func (o *Coble) Init(prms dbf.Params) (err error) {
	v, err := getPrmValues(prms, "cc", "ac", "mu", "v", "dg", "w", "hg", "dgrain")
	if err != nil {
		return
	}
	o.a, o.μ, o.v, o.dg, o.w, o.hg, o.d = v[0], v[1], v[2], v[3], v[4], v[5], v[6]
	return
}

// GetPrms gets (an example) of parameters
func (o Coble) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "ac", V: 141},
		&dbf.P{N: "mu", V: 42e9},
		&dbf.P{N: "v", V: 2.6e-5},
		&dbf.P{N: "dg", V: 3e-8},
		&dbf.P{N: "w", V: 1e-9},
		&dbf.P{N: "hg", V: 113e3},
		&dbf.P{N: "dgrain", V: 1e-5},
	}
}

// Rate computes the steady-state strain rate. Linear in σ.
func (o Coble) Rate(T, σ float64) float64 {
	return o.a * o.μ * o.v * o.dg * o.w * σ * math.Exp(-o.hg/(Rgas*T)) / (Rgas * o.d * o.d * o.d * T)
}

// DrateDsig computes ∂Rate/∂σ at fixed temperature
func (o Coble) DrateDsig(T, σ float64) float64 {
	return o.a * o.μ * o.v * o.dg * o.w * math.Exp(-o.hg/(Rgas*T)) / (Rgas * o.d * o.d * o.d * T)
}
