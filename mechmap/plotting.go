// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mechmap

import (
	"math"

	"github.com/cpmech/gosl/plt"
)

// Plot draws the boundary cells of a computed map in the (T/Tm, log10(σ/μ))
// plane, one colour per mechanism pair. Diagnostics only; nothing in the map
// computation depends on it.
func Plot(o *Map, dirout, fnkey string) {
	plotCells(o, o.Bnd.AB, &plt.A{C: "r", Ls: "none", M: "o", Ms: 2, L: "dc/nh"})
	plotCells(o, o.Bnd.BC, &plt.A{C: "g", Ls: "none", M: "o", Ms: 2, L: "nh/cc"})
	plotCells(o, o.Bnd.CA, &plt.A{C: "b", Ls: "none", M: "o", Ms: 2, L: "cc/dc"})
	plt.Gll("$T/T_m$", "$\\log_{10}(\\sigma_s/\\mu)$", nil)
	plt.SaveD(dirout, fnkey+".eps")
}

// plotCells draws one set of boundary cells
func plotCells(o *Map, cells []Index, args *plt.A) {
	if len(cells) == 0 {
		return
	}
	X := make([]float64, len(cells))
	Y := make([]float64, len(cells))
	for k, c := range cells {
		X[k] = o.Grid.Tfrac[c.J]
		Y[k] = math.Log10(o.Grid.Sig[c.I])
	}
	plt.Plot(X, Y, args)
}
