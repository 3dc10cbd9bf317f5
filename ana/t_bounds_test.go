// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/acbuie/stress-domains/creep"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// newModels allocates and initialises the three mechanisms with the quartz set
func newModels(tst *testing.T) (dc, nh, cc creep.Model) {
	var err error
	prms := creep.QuartzPrms()
	if dc, err = creep.New("dc"); err == nil {
		err = dc.Init(prms)
	}
	if err != nil {
		tst.Fatalf("cannot build dc model: %v\n", err)
	}
	if nh, err = creep.New("nh"); err == nil {
		err = nh.Init(prms)
	}
	if err != nil {
		tst.Fatalf("cannot build nh model: %v\n", err)
	}
	if cc, err = creep.New("cc"); err == nil {
		err = cc.Init(prms)
	}
	if err != nil {
		tst.Fatalf("cannot build cc model: %v\n", err)
	}
	return
}

func Test_bounds01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds01. dislocation / Nabarro-Herring line")

	var o DislNabarro
	o.Init(creep.QuartzPrms())
	io.Pforan("σ* = %v\n", o.Sigstar())
	chk.Float64(tst, "σ*", 1e-17, o.Sigstar(), 1.1754005725281378e-04)

	// the defaults are the quartz values
	var d DislNabarro
	d.Init(nil)
	chk.Float64(tst, "σ* (defaults)", 0, d.Sigstar(), o.Sigstar())

	// rates coincide on the line
	dc, nh, _ := newModels(tst)
	o.CheckRates(tst, 1e-13, dc, nh, []float64{400, 700, 1000, 1300, 1550})
}

func Test_bounds02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds02. Nabarro-Herring / Coble line")

	var o NabarroCoble
	o.Init(creep.QuartzPrms())
	io.Pforan("T* = %v K  (T*/Tm = %v)\n", o.Tstar(), o.TstarFrac())
	chk.Float64(tst, "T*", 1e-9, o.Tstar(), 1124.2224752964403)
	chk.Float64(tst, "T*/Tm", 1e-12, o.TstarFrac(), 0.725304822771897)

	// rates coincide on the line
	_, nh, cc := newModels(tst)
	o.CheckRates(tst, 1e-13, nh, cc, []float64{1e-6, 1e-4, 1e-2, 1})
}

func Test_bounds03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds03. dislocation / Coble curve")

	var o DislCoble
	o.Init(creep.QuartzPrms())
	for _, T := range []float64{775.0, 1000.0, 1240.0, 1550.0} {
		io.Pforan("σ(%g K) = %v\n", T, o.Sig(T))
	}
	chk.Float64(tst, "σ(775K)", 1e-15, o.Sig(775), 2.6981559303376032e-03)
	chk.Float64(tst, "σ(1000K)", 1e-15, o.Sig(1000), 2.7883597501590976e-04)
	chk.Float64(tst, "σ(1240K)", 1e-15, o.Sig(1240), 6.140494010744946e-05)
	chk.Float64(tst, "σ(1550K)", 1e-15, o.Sig(1550), 1.7401314968981437e-05)

	// the curve falls with temperature
	if o.Sig(1550) >= o.Sig(775) {
		tst.Errorf("boundary stress must decrease with temperature\n")
		return
	}

	// rates coincide on the curve
	dc, _, cc := newModels(tst)
	o.CheckRates(tst, 1e-13, dc, cc, []float64{500, 775, 1000, 1240, 1550})
}

func Test_bounds04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds04. triple point")

	prms := creep.QuartzPrms()
	var dn DislNabarro
	var nc NabarroCoble
	var dcc DislCoble
	dn.Init(prms)
	nc.Init(prms)
	dcc.Init(prms)

	// the three lines meet at one point
	Tt := nc.Tstar()
	σt := dn.Sigstar()
	io.Pforan("triple point: T = %v K, σ = %v\n", Tt, σt)
	chk.Float64(tst, "σ(T*) = σ*", 1e-15, dcc.Sig(Tt), σt)

	// and the three rates are equal there
	dc, nh, cc := newModels(tst)
	chk.Float64(tst, "dc/nh", 1e-12, dc.Rate(Tt, σt)/nh.Rate(Tt, σt), 1.0)
	chk.Float64(tst, "nh/cc", 1e-12, nh.Rate(Tt, σt)/cc.Rate(Tt, σt), 1.0)
	chk.Float64(tst, "cc/dc", 1e-12, cc.Rate(Tt, σt)/dc.Rate(Tt, σt), 1.0)
}
