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

// NabarroCoble computes the boundary between the Nabarro-Herring and Coble
// domains. Both rates are linear in stress, so stress cancels and the
// boundary is a constant temperature line: grain-boundary diffusion wins
// below T*, lattice diffusion above
//
//   T* = (HL - HG) / ( R · ln( Anh·DL·d / (Ac·DG·w) ) )
type NabarroCoble struct {

	// input
	anh   float64 // Nabarro-Herring geometry factor [-]
	ac    float64 // Coble geometry factor [-]
	dl    float64 // lattice diffusion coefficient [m²/s]
	dg    float64 // grain-boundary diffusion coefficient [m²/s]
	w     float64 // grain-boundary width [m]
	d     float64 // grain size [m]
	hl    float64 // lattice diffusion activation enthalpy [J/mol]
	hg    float64 // grain-boundary diffusion activation enthalpy [J/mol]
	tmelt float64 // melting temperature [K]
}

// Init initialises this structure with quartz default values
func (o *NabarroCoble) Init(prms dbf.Params) {

	// default values
	o.anh = 16
	o.ac = 141
	o.dl = 2.9e-5
	o.dg = 3e-8
	o.w = 1e-9
	o.d = 1e-5
	o.hl = 243e3
	o.hg = 113e3
	o.tmelt = 1550

	// parameters
	for _, p := range prms {
		switch p.N {
		case "anh":
			o.anh = p.V
		case "ac":
			o.ac = p.V
		case "dl":
			o.dl = p.V
		case "dg":
			o.dg = p.V
		case "w":
			o.w = p.V
		case "dgrain":
			o.d = p.V
		case "hl":
			o.hl = p.V
		case "hg":
			o.hg = p.V
		case "tmelt":
			o.tmelt = p.V
		}
	}
}

// Tstar returns the absolute temperature of the boundary line [K]
func (o NabarroCoble) Tstar() float64 {
	return (o.hl - o.hg) / (creep.Rgas * math.Log(o.anh*o.dl*o.d/(o.ac*o.dg*o.w)))
}

// TstarFrac returns the homologous temperature of the boundary line
func (o NabarroCoble) TstarFrac() float64 {
	return o.Tstar() / o.tmelt
}

// CheckRates checks that the two mechanisms produce equal rates on the line.
// tol is relative.
func (o NabarroCoble) CheckRates(tst *testing.T, tol float64, nh, cc creep.Model, σvals []float64) {
	T := o.Tstar()
	for _, σ := range σvals {
		chk.Float64(tst, io.Sf("nh/cc @ T* σ=%g", σ), tol, nh.Rate(T, σ)/cc.Rate(T, σ), 1.0)
	}
}
