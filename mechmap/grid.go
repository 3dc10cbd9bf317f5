// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mechmap assembles deformation-mechanism maps: creep rate surfaces
// over a (temperature, stress) grid, the dominant mechanism envelope and the
// boundary cells between mechanism domains.
package mechmap

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid holds the rectangular evaluation grid of a mechanism map. Rows follow
// the stress axis and columns the temperature axis, so surfaces index as
// Z[j][i] with j over Sig and i over Tfrac.
type Grid struct {

	// input
	Tmelt float64 // melting temperature [K]

	// axes
	Tfrac []float64 // homologous temperature stations, increasing
	Sig   []float64 // normalised shear stress stations, decreasing

	// meshgrid
	X [][]float64 // X[j][i] = Tfrac[i]
	Y [][]float64 // Y[j][i] = Sig[j]
}

// NewGrid returns a grid with n linearly spaced homologous temperature
// stations from tfMin to tfMax and n geometrically spaced stress stations
// from sigMax down to sigMin
func NewGrid(tfMin, tfMax, sigMax, sigMin float64, n int, tmelt float64) (o *Grid, err error) {

	// check
	if n < 2 {
		return nil, chk.Err("grid needs at least 2 stations per axis. n=%d is invalid", n)
	}
	if tmelt <= 0 {
		return nil, chk.Err("melting temperature must be positive. tmelt=%g is invalid", tmelt)
	}
	if sigMax <= 0 || sigMin <= 0 {
		return nil, chk.Err("stress limits must be positive. sigMax=%g and sigMin=%g are invalid", sigMax, sigMin)
	}

	// axes
	o = new(Grid)
	o.Tmelt = tmelt
	o.Tfrac = utl.LinSpace(tfMin, tfMax, n)
	expons := utl.LinSpace(math.Log10(sigMax), math.Log10(sigMin), n)
	o.Sig = make([]float64, n)
	for j, e := range expons {
		o.Sig[j] = math.Pow(10, e)
	}
	o.Sig[0] = sigMax // keep endpoints exact
	o.Sig[n-1] = sigMin

	// meshgrid
	o.X = utl.Alloc(n, n)
	o.Y = utl.Alloc(n, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			o.X[j][i] = o.Tfrac[i]
			o.Y[j][i] = o.Sig[j]
		}
	}
	return
}

// Tkelvin returns the absolute temperature of column i
func (o *Grid) Tkelvin(i int) float64 {
	return o.Tfrac[i] * o.Tmelt
}
