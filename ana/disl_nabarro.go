// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for the boundaries between
// creep mechanism domains
package ana

import (
	"math"
	"testing"

	"github.com/acbuie/stress-domains/creep"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// DislNabarro computes the boundary between the dislocation creep and
// Nabarro-Herring domains. Both rates carry the same lattice diffusion
// term, so temperature cancels and the boundary is a constant stress line
//
//   σ/μ
//    1 ┤ dislocation
//      │             │
//   σ* ┤─────────────┘ · · · ·
//      │  Nabarro-Herring
//      └──┬───────────────┬── T/Tm
//        0.2             1.0
//
//   σ* = sqrt( Anh·V·kB / (R·d²·b) )
type DislNabarro struct {

	// input
	anh float64 // Nabarro-Herring geometry factor [-]
	v   float64 // molar volume [m³/mol]
	d   float64 // grain size [m]
	b   float64 // Burgers vector length [m]
}

// Init initialises this structure with quartz default values
func (o *DislNabarro) Init(prms dbf.Params) {

	// default values
	o.anh = 16
	o.v = 2.6e-5
	o.d = 1e-5
	o.b = 5e-10

	// parameters
	for _, p := range prms {
		switch p.N {
		case "anh":
			o.anh = p.V
		case "v":
			o.v = p.V
		case "dgrain":
			o.d = p.V
		case "b":
			o.b = p.V
		}
	}
}

// Sigstar returns the normalised stress of the boundary line
func (o DislNabarro) Sigstar() float64 {
	return math.Sqrt(o.anh * o.v * creep.KB / (creep.Rgas * o.d * o.d * o.b))
}

// CheckRates checks that the two mechanisms produce equal rates on the line.
// tol is relative.
func (o DislNabarro) CheckRates(tst *testing.T, tol float64, dc, nh creep.Model, Tvals []float64) {
	σ := o.Sigstar()
	for _, T := range Tvals {
		chk.Float64(tst, io.Sf("dc/nh @ T=%g σ*", T), tol, dc.Rate(T, σ)/nh.Rate(T, σ), 1.0)
	}
}
