// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mlau154/SU2-TailRotation/flow"
	"github.com/mlau154/SU2-TailRotation/inp"
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
	fnamepath, _ := io.ArgToFilename(0, "inp/data/tailsa", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nTailRotation Version 1.0 -- Spalart-Allmaras Source Terms\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
		))
	}

	// load simulation
	sim := inp.ReadSim(fnamepath, "", erasePrev, true)
	if sim.TurbMdl == nil {
		chk.Panic("simulation file %q does not define the turbulence material", fnamepath)
	}

	// materials and parameters
	if verbose {
		io.Pf("\nmaterials:\n%v\n", sim.MatModels)
		io.Pf("\nparameters of %q:\n", sim.Turb.Mat)
		for _, p := range sim.TurbMdl.GetPrms(false) {
			io.Pf("  %-8s = %v\n", p.N, p.V)
		}
	}

	// evaluation at a reference point of the log layer, one meter above the
	// wall, where the strain magnitude matches the rotation measure
	idx := flow.NewIndices(sim.Turb.Ndim, sim.Turb.Nspecies)
	sta := flow.NewState(idx)
	sta.Prim[idx.Density()] = 1.225
	sta.Prim[idx.LaminarViscosity()] = 1.7894e-5
	sta.Vorticity[2] = 1.0
	sta.StrainMag = 1.0
	sta.Nue = 1e-3
	sta.Dist = 1.0
	sta.Volume = 1.0
	res, jac := sim.TurbMdl.Compute(sta)

	// results
	table := io.ArgsTable("SOURCE TERMS AT THE REFERENCE POINT",
		"production", "prod", sim.TurbMdl.GetProduction(),
		"destruction", "dest", sim.TurbMdl.GetDestruction(),
		"cross production", "cross", sim.TurbMdl.GetCrossProduction(),
		"residual", "res", res,
		"derivative", "jac", jac,
	)
	io.Pf("\n%v\n", table)
	io.WriteStringToFileD(sim.DirOut, sim.Key+".res", table)
	if verbose {
		io.Pf("results saved in %s\n", sim.DirOut)
	}
}
