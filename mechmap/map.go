// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mechmap

import (
	"sync"

	"github.com/acbuie/stress-domains/creep"
	"github.com/acbuie/stress-domains/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Map computes a complete deformation-mechanism map: three creep rate
// surfaces over a (temperature, stress) grid, their dominant envelope and
// the boundary cells between mechanism domains
type Map struct {

	// input
	Sim *inp.Sim // simulation data

	// derived
	Grid *Grid       // evaluation grid
	Dc   creep.Model // dislocation creep
	Nh   creep.Model // Nabarro-Herring creep
	Cc   creep.Model // Coble creep
	Tol  float64     // boundary detection threshold

	// results
	Zdc  [][]float64  // dislocation creep rates
	Znh  [][]float64  // Nabarro-Herring creep rates
	Zcc  [][]float64  // Coble creep rates
	Zmax [][]float64  // dominant envelope
	Bnd  *BoundarySet // boundary cells
}

// NewMap allocates a map generator from simulation input. The material
// attached to sim must carry the full creep parameter set plus 'tmelt'.
// A zero threshold in the input means unset and takes DefaultTol; negative
// values are kept and produce no boundaries.
func NewMap(sim *inp.Sim) (o *Map, err error) {

	// material
	if sim.Mat == nil {
		return nil, chk.Err("simulation input has no material attached")
	}
	tmelt := sim.Mat.Prms.Find("tmelt")
	if tmelt == nil {
		return nil, chk.Err("material %q misses parameter 'tmelt'", sim.Mat.Name)
	}

	// grid
	o = new(Map)
	o.Sim = sim
	o.Grid, err = NewGrid(sim.Grid.TfracMin, sim.Grid.TfracMax, sim.Grid.SigMax, sim.Grid.SigMin, sim.Grid.Ngrid, tmelt.V)
	if err != nil {
		return nil, err
	}

	// models
	o.Dc, err = newModel("dc", sim.Mat.Prms)
	if err != nil {
		return nil, err
	}
	o.Nh, err = newModel("nh", sim.Mat.Prms)
	if err != nil {
		return nil, err
	}
	o.Cc, err = newModel("cc", sim.Mat.Prms)
	if err != nil {
		return nil, err
	}

	// threshold
	o.Tol = sim.Grid.Tol
	if o.Tol == 0 {
		o.Tol = DefaultTol
	}
	return
}

// newModel allocates and initialises one creep model
func newModel(name string, prms dbf.Params) (creep.Model, error) {
	mdl, err := creep.New(name)
	if err != nil {
		return nil, err
	}
	err = mdl.Init(prms)
	if err != nil {
		return nil, chk.Err("cannot initialise %q model: %v", name, err)
	}
	return mdl, nil
}

// RateGrid evaluates one mechanism over the grid. The result pairs stress row
// j with temperature column i: Z[j][i] = Rate(Tkelvin(i), Sig[j]).
func RateGrid(mdl creep.Model, g *Grid) (Z [][]float64) {
	Z = utl.Alloc(len(g.Sig), len(g.Tfrac))
	for j, σ := range g.Sig {
		for i := range g.Tfrac {
			Z[j][i] = mdl.Rate(g.Tkelvin(i), σ)
		}
	}
	return
}

// Compute fills the three rate surfaces, the dominant envelope and the
// boundary sets. The mechanisms are independent and run concurrently.
func (o *Map) Compute() {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); o.Zdc = RateGrid(o.Dc, o.Grid) }()
	go func() { defer wg.Done(); o.Znh = RateGrid(o.Nh, o.Grid) }()
	go func() { defer wg.Done(); o.Zcc = RateGrid(o.Cc, o.Grid) }()
	wg.Wait()
	o.Zmax = Dominant(o.Zdc, o.Znh, o.Zcc)
	o.Bnd = Boundaries(o.Zdc, o.Znh, o.Zcc, o.Tol)
}

// CountDominant counts the cells where each mechanism provides the largest
// rate. Ties go to the first mechanism in dc, nh, cc order.
func (o *Map) CountDominant() (ndc, nnh, ncc int) {
	for j := range o.Zmax {
		for i := range o.Zmax[j] {
			switch {
			case o.Zdc[j][i] >= o.Znh[j][i] && o.Zdc[j][i] >= o.Zcc[j][i]:
				ndc++
			case o.Znh[j][i] >= o.Zcc[j][i]:
				nnh++
			default:
				ncc++
			}
		}
	}
	return
}

// Summary returns a report of the map contents. Call it after Compute.
func (o *Map) Summary() (l string) {
	nT := len(o.Grid.Tfrac)
	nσ := len(o.Grid.Sig)
	ndc, nnh, ncc := o.CountDominant()
	l = io.Sf("%-20s = %q\n", "material", o.Sim.Data.Material)
	l += io.Sf("%-20s = %d × %d (nσ × nT)\n", "grid", nσ, nT)
	l += io.Sf("%-20s = [%g, %g] K\n", "temperature range", o.Grid.Tkelvin(0), o.Grid.Tkelvin(nT-1))
	l += io.Sf("%-20s = [%g, %g]\n", "stress range σ/μ", o.Grid.Sig[nσ-1], o.Grid.Sig[0])
	l += io.Sf("%-20s = %g\n", "boundary threshold", o.Tol)
	l += io.Sf("%-20s = dc:%d  nh:%d  cc:%d\n", "dominant cells", ndc, nnh, ncc)
	l += io.Sf("%-20s = dc/nh:%d  nh/cc:%d  cc/dc:%d\n", "boundary cells", len(o.Bnd.AB), len(o.Bnd.BC), len(o.Bnd.CA))
	return
}
