// Copyright 2026 The Stress-Domains Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/acbuie/stress-domains/inp"
	"github.com/acbuie/stress-domains/mechmap"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "data/mapgen", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doprof := io.ArgToInt(2, 0)

	// message
	if verbose {
		io.PfWhite("\nStress-Domains Version 1.0 -- Deformation Mechanism Maps\n")
		io.Pf("Copyright 2026 The Stress-Domains Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.DoProf(false, doprof)()
	}

	// simulation data
	dir, fn := filepath.Split(fnamepath)
	sim, err := inp.ReadSim(dir, fn)
	if err != nil {
		chk.Panic("cannot read simulation input:\n%v", err)
	}

	// generate map
	mp, err := mechmap.NewMap(sim)
	if err != nil {
		chk.Panic("cannot allocate map generator:\n%v", err)
	}
	mp.Compute()

	// results
	if verbose {
		io.Pf("\n%v", mp.Summary())
	}
}
