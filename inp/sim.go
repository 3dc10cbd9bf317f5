// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global simulation data
type Data struct {
	Desc     string `json:"desc"`     // description of simulation
	MatFile  string `json:"matfile"`  // materials database filename, relative to the .sim directory
	Material string `json:"material"` // name of material in database
}

// GridData holds evaluation grid data
type GridData struct {
	Ngrid    int     `json:"ngrid"`  // number of stations along each axis
	TfracMin float64 `json:"tfmin"`  // smallest homologous temperature
	TfracMax float64 `json:"tfmax"`  // largest homologous temperature
	SigMax   float64 `json:"sigmax"` // largest normalised stress
	SigMin   float64 `json:"sigmin"` // smallest normalised stress
	Tol      float64 `json:"tol"`    // boundary detection threshold; 0 means default
}

// Sim holds all data required to generate one mechanism map
type Sim struct {

	// input
	Data Data     `json:"data"` // global data
	Grid GridData `json:"grid"` // evaluation grid data

	// derived
	Mat *Material // material read from Data.MatFile
}

// ReadSim reads a simulation file and the materials database it names.
// Grid entries left out take defaults: 1000 stations per axis, homologous
// temperatures from 0.2 to 1.0 and stresses from 1 down to 1e-6. An axis
// pair is defaulted only when both of its limits are absent, so an explicit
// zero lower limit survives.
func ReadSim(dir, fn string) (o *Sim, err error) {

	// read file
	o = new(Sim)
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q: %v", fn, err)
	}

	// fix grid data
	if o.Grid.Ngrid == 0 {
		o.Grid.Ngrid = 1000
	}
	if o.Grid.TfracMin == 0 && o.Grid.TfracMax == 0 {
		o.Grid.TfracMin, o.Grid.TfracMax = 0.2, 1.0
	}
	if o.Grid.SigMax == 0 && o.Grid.SigMin == 0 {
		o.Grid.SigMax, o.Grid.SigMin = 1.0, 1e-6
	}

	// material
	if o.Data.MatFile == "" {
		return nil, chk.Err("simulation file %q misses the materials database filename", fn)
	}
	mdb, err := ReadMat(dir, o.Data.MatFile)
	if err != nil {
		return nil, err
	}
	o.Mat = mdb.Get(o.Data.Material)
	if o.Mat == nil {
		return nil, chk.Err("cannot find material %q in %q", o.Data.Material, o.Data.MatFile)
	}
	return
}

// String outputs simulation data in JSON format
func (o Sim) String() string {
	l := "{\n"
	l += io.Sf("  \"data\" : {\"desc\":%q, \"matfile\":%q, \"material\":%q},\n", o.Data.Desc, o.Data.MatFile, o.Data.Material)
	l += io.Sf("  \"grid\" : {\"ngrid\":%d, \"tfmin\":%v, \"tfmax\":%v, \"sigmax\":%v, \"sigmin\":%v, \"tol\":%v}\n",
		o.Grid.Ngrid, o.Grid.TfracMin, o.Grid.TfracMax, o.Grid.SigMax, o.Grid.SigMin, o.Grid.Tol)
	l += "}"
	return l
}
