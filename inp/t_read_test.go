// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mlau154/SU2-TailRotation/flow"
)

func verbose() {
	chk.Verbose = true
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb1, err := ReadMat("data", "tailsa.mat", 3, 0, false, false)
	if err != nil {
		tst.Errorf("cannot read tailsa.mat:\n%v", err)
		return
	}
	io.Pforan("tailsa.mat just read:\n%v\n", mdb1)

	// all materials have initialised models
	chk.IntAssert(len(mdb1.Materials), 3)
	chk.IntAssert(len(mdb1.Turbs), 3)
	for _, name := range []string{"air-sa", "air-sa-neg", "air-sa-edw"} {
		m := mdb1.Get(name)
		if m == nil {
			tst.Errorf("material %q is not in the database\n", name)
			return
		}
		if m.Turb == nil {
			tst.Errorf("model of material %q was not allocated\n", name)
			return
		}
	}
	if mdb1.Get("air-sst") != nil {
		tst.Errorf("unknown material name must return nil\n")
		return
	}

	// overridden and default parameters
	for _, p := range mdb1.Get("air-sa").Turb.GetPrms(false) {
		switch p.N {
		case "tuinf":
			chk.Float64(tst, "tuinf", 1e-17, p.V, 0.012)
		case "cb1":
			chk.Float64(tst, "cb1", 1e-17, p.V, 0.1355)
		case "kappa":
			chk.Float64(tst, "kappa", 1e-17, p.V, 0.41)
		}
	}

	// write and read back
	fn := "test_tailsa.mat"
	io.WriteStringToFileD("/tmp/tailrotation/inp", fn, mdb1.String())
	mdb2, err := ReadMat("/tmp/tailrotation/inp", fn, 3, 0, false, false)
	if err != nil {
		tst.Errorf("cannot read %s:\n%v", fn, err)
		return
	}
	io.Pfblue2("\n%v\n", mdb2)
	chk.IntAssert(len(mdb2.Materials), 3)
	for _, p := range mdb2.Get("air-sa").Prms {
		if p.N == "tuinf" {
			chk.Float64(tst, "tuinf (read back)", 1e-17, p.V, 0.012)
		}
	}
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. incorrect materials files")

	_, err := ReadMat("data", "badtype.mat", 3, 0, false, false)
	if err == nil {
		tst.Errorf("reading a file with an unknown material type must fail\n")
		return
	}
	io.Pfgrey("OK. error = %v\n", err)

	_, err = ReadMat("data", "badmodel.mat", 3, 0, false, false)
	if err == nil {
		tst.Errorf("reading a file with an unknown model name must fail\n")
		return
	}
	io.Pfgrey("OK. error = %v\n", err)

	_, err = ReadMat("data", "absent.mat", 3, 0, false, false)
	if err == nil {
		tst.Errorf("reading a file that does not exist must fail\n")
		return
	}
	io.Pfgrey("OK. error = %v\n", err)
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. simulation input file")

	sim := ReadSim("data/tailsa.sim", "", true, false)
	if sim == nil {
		tst.Errorf("cannot read tailsa.sim\n")
		return
	}
	if chk.Verbose {
		sim.GetInfo(os.Stdout)
		io.Pf("\n")
	}

	io.Pfyel("Key    = %v\n", sim.Key)
	io.Pfyel("DirOut = %v\n", sim.DirOut)

	chk.String(tst, sim.Key, "tailsa")
	chk.String(tst, sim.DirOut, "/tmp/tailrotation/tailsa")
	chk.IntAssert(sim.Turb.Ndim, 3)
	chk.IntAssert(sim.Turb.Nspecies, 0)
	if !sim.Turb.RotFrame {
		tst.Errorf("the rotating frame flag must be loaded\n")
		return
	}
	if sim.Turb.Transition {
		tst.Errorf("the transition flag must default to false\n")
		return
	}
	if sim.TurbMdl == nil {
		tst.Errorf("the turbulence model must be taken from the materials database\n")
		return
	}
	chk.IntAssert(len(sim.MatModels.Turbs), 3)

	// alias changes the key only
	simb := ReadSim("data/tailsa.sim", "check", false, false)
	chk.String(tst, simb.Key, "tailsa-check")
	chk.String(tst, simb.DirOut, "/tmp/tailrotation/tailsa")
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. evaluation with the configured model")

	sim := ReadSim("data/tailsa.sim", "", false, false)
	if sim == nil {
		tst.Errorf("cannot read tailsa.sim\n")
		return
	}

	// point one meter above the wall where the strain magnitude matches the
	// rotation measure, so the rotating frame correction is a no-op
	idx := flow.NewIndices(sim.Turb.Ndim, sim.Turb.Nspecies)
	sta := flow.NewState(idx)
	sta.Prim[idx.Density()] = 1.0
	sta.Prim[idx.LaminarViscosity()] = 1.5e-5
	sta.Vorticity[2] = 1.0
	sta.StrainMag = 1.0
	sta.Nue = 1e-3
	sta.Dist = 1.0
	sta.Volume = 1.0

	res, jac := sim.TurbMdl.Compute(sta)
	chk.Float64(tst, "res", 1e-14, res, 1.3549744533462464e-4)
	chk.Float64(tst, "jac", 1e-12, jac, 0.13547244001005188)
}
