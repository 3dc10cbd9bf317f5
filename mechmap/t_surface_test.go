// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mechmap

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// checkCells compares boundary cells against expected (row, col) pairs
func checkCells(tst *testing.T, msg string, cells []Index, correct [][]int) {
	if len(cells) != len(correct) {
		tst.Errorf("%s: number of cells is %d. %d is correct\n", msg, len(cells), len(correct))
		return
	}
	for k, c := range cells {
		chk.Ints(tst, io.Sf("%s[%d]", msg, k), []int{c.I, c.J}, correct[k])
	}
}

func Test_surf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf01. dominant surface")

	z1 := [][]float64{{1, 5}, {8, 2}}
	z2 := [][]float64{{5, 4}, {8, 1}}
	z3 := [][]float64{{3, 6}, {7, 3}}

	zmax := Dominant(z1, z2, z3)
	chk.Deep2(tst, "zmax", 1e-17, zmax, [][]float64{{5, 6}, {8, 3}})

	// order of arguments is irrelevant
	chk.Deep2(tst, "zmax (2,3,1)", 1e-17, Dominant(z2, z3, z1), zmax)
	chk.Deep2(tst, "zmax (3,1,2)", 1e-17, Dominant(z3, z1, z2), zmax)

	// inputs are left alone
	chk.Deep2(tst, "z1", 1e-17, z1, [][]float64{{1, 5}, {8, 2}})
}

func Test_surf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf02. boundary cells")

	z1 := [][]float64{{10, 10, 10}, {1, 1, 0.1}, {7, 7, 2}}
	z2 := [][]float64{{10.05, 20, 10.05}, {1, 0.5, 0.5}, {7.02, 6, 2}}
	z3 := [][]float64{{0, 0, 30}, {3, 1.005, 0.4995}, {0, 0, 9}}

	bnd := Boundaries(z1, z2, z3, 0.01)
	io.Pforan("AB = %v\nBC = %v\nCA = %v\n", bnd.AB, bnd.BC, bnd.CA)
	checkCells(tst, "AB", bnd.AB, [][]int{{0, 0}, {2, 0}}) // row-major order
	checkCells(tst, "BC", bnd.BC, [][]int{{1, 2}})
	checkCells(tst, "CA", bnd.CA, [][]int{{1, 1}})
	if bnd.Ntotal() != 4 {
		tst.Errorf("total number of boundary cells must be 4. %d is invalid\n", bnd.Ntotal())
		return
	}

	// cell (0,2) has near-equal z1 and z2 but z3 dominates, so no set takes it
	// cell (1,0) has exactly equal z1 and z2 under a dominant z3; also excluded
}

func Test_surf03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf03. threshold scales by the pair's first surface")

	// 0.995 is below 1% of z1 but above 1% of z2, so the cell counts for the
	// (z1, z2) order and not for the reversed one
	z1 := [][]float64{{100}}
	z2 := [][]float64{{99.005}}
	z3 := [][]float64{{0}}

	bnd := Boundaries(z1, z2, z3, 0.01)
	checkCells(tst, "AB", bnd.AB, [][]int{{0, 0}})

	bndRev := Boundaries(z2, z1, z3, 0.01)
	checkCells(tst, "AB (reversed)", bndRev.AB, [][]int{})
}

func Test_surf04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf04. degenerate thresholds and ties")

	z1 := [][]float64{{10, 10}, {1, 1}}
	z2 := [][]float64{{10.05, 20}, {1, 2}}
	z3 := [][]float64{{0, 0}, {0, 0}}

	// detections exist with the default threshold
	bnd := Boundaries(z1, z2, z3, DefaultTol)
	if bnd.Ntotal() == 0 {
		tst.Errorf("default threshold should detect cells\n")
		return
	}

	// but a non-positive threshold yields empty sets
	for _, tol := range []float64{0, -1} {
		bnd = Boundaries(z1, z2, z3, tol)
		if bnd.Ntotal() != 0 {
			tst.Errorf("tol=%g must yield empty sets. %d cells are invalid\n", tol, bnd.Ntotal())
			return
		}
	}

	// equal surfaces tie everywhere and ties are excluded
	ze := [][]float64{{5, 5}, {5, 5}}
	bnd = Boundaries(ze, ze, ze, DefaultTol)
	if bnd.Ntotal() != 0 {
		tst.Errorf("equal surfaces must yield empty sets. %d cells are invalid\n", bnd.Ntotal())
		return
	}
}

func Test_surf05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf05. non-finite cells")

	nan := math.NaN()
	z1 := [][]float64{{nan, 2}, {4, 1}}
	z2 := [][]float64{{nan, 2.001}, {nan, 3}}
	z3 := [][]float64{{nan, 0}, {0, 0}}

	// non-finite inputs survive in the dominant surface
	zmax := Dominant(z1, z2, z3)
	if !math.IsNaN(zmax[0][0]) || !math.IsNaN(zmax[1][0]) {
		tst.Errorf("NaN cells must propagate to the dominant surface\n")
		return
	}
	chk.Float64(tst, "zmax[0][1]", 1e-17, zmax[0][1], 2.001)
	chk.Float64(tst, "zmax[1][1]", 1e-17, zmax[1][1], 3)

	// but never enter boundary sets
	bnd := Boundaries(z1, z2, z3, 0.01)
	checkCells(tst, "AB", bnd.AB, [][]int{{0, 1}})
	checkCells(tst, "BC", bnd.BC, [][]int{})
	checkCells(tst, "CA", bnd.CA, [][]int{})
}

func Test_surf06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf06. shape mismatch panics")

	z3x3 := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	z4x4 := [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}

	func() {
		defer func() {
			if err := recover(); err == nil {
				tst.Errorf("Dominant should have panicked with 3x3 and 4x4 surfaces\n")
			} else if chk.Verbose {
				io.Pf("OK. panic caught: %v\n", err)
			}
		}()
		Dominant(z3x3, z4x4, z3x3)
	}()

	zrag := [][]float64{{1, 2, 3}, {4, 5}, {7, 8, 9}}
	func() {
		defer func() {
			if err := recover(); err == nil {
				tst.Errorf("Boundaries should have panicked with ragged surfaces\n")
			} else if chk.Verbose {
				io.Pf("OK. panic caught: %v\n", err)
			}
		}()
		Boundaries(z3x3, zrag, z3x3, 0.01)
	}()
}
