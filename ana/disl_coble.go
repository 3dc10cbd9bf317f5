// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/acbuie/stress-domains/creep"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// DislCoble computes the boundary between the dislocation creep and Coble
// domains. The two mechanisms carry different activation enthalpies, so the
// boundary is a curve in the (T, σ) plane
//
//   σ(T) = sqrt( Ac·V·DG·w·kB / (R·d³·b·DL) · exp( (HL-HG)/(R·T) ) )
type DislCoble struct {

	// input
	ac float64 // Coble geometry factor [-]
	v  float64 // molar volume [m³/mol]
	dg float64 // grain-boundary diffusion coefficient [m²/s]
	w  float64 // grain-boundary width [m]
	d  float64 // grain size [m]
	b  float64 // Burgers vector length [m]
	dl float64 // lattice diffusion coefficient [m²/s]
	hl float64 // lattice diffusion activation enthalpy [J/mol]
	hg float64 // grain-boundary diffusion activation enthalpy [J/mol]
}

// Init initialises this structure with quartz default values
func (o *DislCoble) Init(prms dbf.Params) {

	// default values
	o.ac = 141
	o.v = 2.6e-5
	o.dg = 3e-8
	o.w = 1e-9
	o.d = 1e-5
	o.b = 5e-10
	o.dl = 2.9e-5
	o.hl = 243e3
	o.hg = 113e3

	// parameters
	for _, p := range prms {
		switch p.N {
		case "ac":
			o.ac = p.V
		case "v":
			o.v = p.V
		case "dg":
			o.dg = p.V
		case "w":
			o.w = p.V
		case "dgrain":
			o.d = p.V
		case "b":
			o.b = p.V
		case "dl":
			o.dl = p.V
		case "hl":
			o.hl = p.V
		case "hg":
			o.hg = p.V
		}
	}
}

// Sig returns the normalised stress of the boundary at temperature T [K]
func (o DislCoble) Sig(T float64) float64 {
	return math.Sqrt(o.ac * o.v * o.dg * o.w * creep.KB / (creep.Rgas * o.d * o.d * o.d * o.b * o.dl) * math.Exp((o.hl-o.hg)/(creep.Rgas*T)))
}

// CheckRates checks that the two mechanisms produce equal rates on the curve.
// tol is relative.
func (o DislCoble) CheckRates(tst *testing.T, tol float64, dc, cc creep.Model, Tvals []float64) {
	for _, T := range Tvals {
		σ := o.Sig(T)
		chk.Float64(tst, io.Sf("dc/cc @ T=%g", T), tol, dc.Rate(T, σ)/cc.Rate(T, σ), 1.0)
	}
}
