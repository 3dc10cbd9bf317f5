// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mechmap

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// DefaultTol is the relative threshold for boundary detection
const DefaultTol = 0.01

// Index locates one grid cell; I is the row (stress index) and J the column
// (temperature index)
type Index struct {
	I int // row
	J int // column
}

// BoundarySet holds the cells where pairs of rate surfaces meet while
// dominating the remaining one
type BoundarySet struct {
	AB []Index // surface 1 meets surface 2
	BC []Index // surface 2 meets surface 3
	CA []Index // surface 3 meets surface 1
}

// Ntotal returns the total number of boundary cells
func (o *BoundarySet) Ntotal() int {
	return len(o.AB) + len(o.BC) + len(o.CA)
}

// checkShapes panics unless the three surfaces have exactly equal shapes.
// Shape mismatch means the surfaces were built from different grids and no
// elementwise result would be meaningful.
func checkShapes(z1, z2, z3 [][]float64) {
	if len(z2) != len(z1) || len(z3) != len(z1) {
		chk.Panic("number of rows of surfaces must be equal. %d, %d and %d are invalid", len(z1), len(z2), len(z3))
	}
	for j := range z1 {
		if len(z2[j]) != len(z1[j]) || len(z3[j]) != len(z1[j]) {
			chk.Panic("number of columns in row %d of surfaces must be equal. %d, %d and %d are invalid", j, len(z1[j]), len(z2[j]), len(z3[j]))
		}
	}
}

// Dominant computes the elementwise maximum of three rate surfaces. The
// result has the shape of the inputs; any non-finite input cell produces a
// non-finite output cell.
func Dominant(z1, z2, z3 [][]float64) (zmax [][]float64) {
	checkShapes(z1, z2, z3)
	zmax = make([][]float64, len(z1))
	for j := range z1 {
		zmax[j] = make([]float64, len(z1[j]))
		for i := range z1[j] {
			zmax[j][i] = math.Max(z1[j][i], math.Max(z2[j][i], z3[j][i]))
		}
	}
	return
}

// Boundaries collects the cells where two surfaces produce nearly equal
// dominant rates. A cell joins a pair when the absolute difference is below
// tol relative to the pair's first surface (z1 for AB, z2 for BC, z3 for CA)
// and that first surface strictly exceeds the remaining one; exact ties are
// excluded. Comparisons involving NaN are false, so cells holding non-finite
// rates are never collected. A non-positive tol yields empty sets. Cells
// appear in row-major scan order.
func Boundaries(z1, z2, z3 [][]float64, tol float64) (o *BoundarySet) {
	checkShapes(z1, z2, z3)
	o = new(BoundarySet)
	if tol <= 0 {
		return
	}
	for j := range z1 {
		for i := range z1[j] {
			a, b, c := z1[j][i], z2[j][i], z3[j][i]
			if math.Abs(a-b) < a*tol && a > c {
				o.AB = append(o.AB, Index{I: j, J: i})
			}
			if math.Abs(b-c) < b*tol && b > a {
				o.BC = append(o.BC, Index{I: j, J: i})
			}
			if math.Abs(c-a) < c*tol && c > b {
				o.CA = append(o.CA, Index{I: j, J: i})
			}
		}
	}
	return
}
