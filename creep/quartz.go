// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package creep

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// QuartzPrms returns the reference material parameter set for quartz. The set
// is the union of what the three mechanisms need; each model extracts its own
// subset during Init.
func QuartzPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "mu", V: 42e9},      // shear modulus [Pa]
		&dbf.P{N: "b", V: 5e-10},      // Burgers vector length [m]
		&dbf.P{N: "v", V: 2.6e-5},     // molar volume [m³/mol]
		&dbf.P{N: "w", V: 1e-9},       // grain-boundary width [m]
		&dbf.P{N: "dgrain", V: 1e-5},  // grain size [m]
		&dbf.P{N: "dl", V: 2.9e-5},    // lattice diffusion coefficient [m²/s]
		&dbf.P{N: "dg", V: 3e-8},      // grain-boundary diffusion coefficient [m²/s]
		&dbf.P{N: "hl", V: 243e3},     // lattice diffusion activation enthalpy [J/mol]
		&dbf.P{N: "hg", V: 113e3},     // grain-boundary diffusion activation enthalpy [J/mol]
		&dbf.P{N: "tmelt", V: 1550},   // melting temperature [K]
		&dbf.P{N: "anh", V: 16},       // Nabarro-Herring geometry factor [-]
		&dbf.P{N: "ac", V: 141},       // Coble geometry factor [-]
	}
}
