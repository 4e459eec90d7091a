// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"encoding/json"
	"math"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/mlau154/SU2-TailRotation/flow"
	"github.com/mlau154/SU2-TailRotation/inp"
)

type Input struct {
	Dir     string  // directory with .sim and .mat files
	SimFn   string  // simulation filename
	MatName string  // material name
	Ustar   float64 // friction velocity of the log layer
	Rho     float64 // density
	Mu      float64 // laminar dynamic viscosity
	Rough   float64 // equivalent sand-grain roughness height
	Dmin    float64 // smallest wall distance
	Dmax    float64 // largest wall distance
	Np      int     // number of points along the profile
	FigKey  string  // filename key of figure; empty means no figure

	// derived
	inpfn string
}

func (o *Input) PostProcess() {
	if o.Ustar <= 0 {
		o.Ustar = 0.5
	}
	if o.Rho <= 0 {
		o.Rho = 1.225
	}
	if o.Mu <= 0 {
		o.Mu = 1.7894e-5
	}
	if o.Dmin <= 0 {
		o.Dmin = 1e-5
	}
	if o.Dmax <= o.Dmin {
		o.Dmax = 0.1
	}
	if o.Np < 2 {
		o.Np = 33
	}
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"input filename", "inpfn", o.inpfn,
		"directory with .sim and .mat files", "Dir", o.Dir,
		"simulation filename", "SimFn", o.SimFn,
		"material name", "MatName", o.MatName,
		"friction velocity", "Ustar", o.Ustar,
		"density", "Rho", o.Rho,
		"laminar viscosity", "Mu", o.Mu,
		"roughness height", "Rough", o.Rough,
		"smallest wall distance", "Dmin", o.Dmin,
		"largest wall distance", "Dmax", o.Dmax,
		"number of points", "Np", o.Np,
		"figure filename key", "FigKey", o.FigKey,
	)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data file
	var in Input
	in.inpfn, _ = io.ArgToFilename(0, "data/sasweep", ".inp", true)

	// read and parse input data
	b, err := io.ReadFile(in.inpfn)
	if err != nil {
		io.PfRed("cannot read %s\n", in.inpfn)
		return
	}
	err = json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", in.inpfn)
		return
	}
	in.PostProcess()

	// print input table
	io.Pf("%v\n", in)

	// load simulation
	sim := inp.ReadSim(in.Dir+"/"+in.SimFn, "", false, false)
	if sim == nil {
		io.PfRed("cannot load simulation\n")
		return
	}

	// get material data
	mat := sim.MatModels.Get(in.MatName)
	if mat == nil {
		io.PfRed("cannot get material\n")
		return
	}
	mdl := mat.Turb
	if mdl == nil {
		io.PfRed("cannot get turbulence model\n")
		return
	}

	// flow state along a log-layer profile: the turbulence scalar grows
	// linearly with the wall distance while the vorticity decays with it
	κ := 0.41
	idx := flow.NewIndices(sim.Turb.Ndim, sim.Turb.Nspecies)
	sta := flow.NewState(idx)
	sta.Prim[idx.Density()] = in.Rho
	sta.Prim[idx.LaminarViscosity()] = in.Mu
	sta.Roughness = in.Rough
	sta.Volume = 1.0

	D := make([]float64, in.Np)
	Res := make([]float64, in.Np)
	Jac := make([]float64, in.Np)
	Prod := make([]float64, in.Np)
	Dest := make([]float64, in.Np)

	io.Pf("%14s%14s%14s%14s%14s%14s\n", "d", "nue", "prod", "dest", "res", "jac")
	for i, ell := range utl.LinSpace(math.Log10(in.Dmin), math.Log10(in.Dmax), in.Np) {
		d := math.Pow(10.0, ell)
		sta.Dist = d
		sta.Nue = κ * in.Ustar * d
		sta.Vorticity[2] = in.Ustar / (κ * d)
		sta.StrainMag = sta.Vorticity[2]
		Res[i], Jac[i] = mdl.Compute(sta)
		D[i] = d
		Prod[i], Dest[i] = mdl.GetProduction(), mdl.GetDestruction()
		io.Pf("%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e\n", d, sta.Nue, Prod[i], Dest[i], Res[i], Jac[i])
	}

	// plot
	if in.FigKey != "" {
		plt.Reset(false, nil)
		plt.Subplot(2, 1, 1)
		plt.Plot(D, Prod, &plt.A{C: "b", Ls: "-", L: "production"})
		plt.Plot(D, Dest, &plt.A{C: "r", Ls: "-", L: "destruction"})
		plt.Gll("$d$", "source terms", nil)

		plt.Subplot(2, 1, 2)
		plt.Plot(D, Res, &plt.A{C: "k", Ls: "-", L: "residual"})
		plt.Plot(D, Jac, &plt.A{C: "g", Ls: "--", L: "derivative"})
		plt.Gll("$d$", "residual", nil)
		plt.SetTicksNormal()

		plt.Save("/tmp/tailrotation", in.FigKey+".eps")
	}
}
