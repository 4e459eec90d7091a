// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mlau154/SU2-TailRotation/mdl/turbulence"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/tailrotation
}

// TurbData holds the definition of the turbulence problem
type TurbData struct {
	Ndim       int    `json:"ndim"`       // space dimension; default is 3
	Nspecies   int    `json:"nspecies"`   // number of species in the flow mixture
	Mat        string `json:"mat"`        // name of the turbulence material
	RotFrame   bool   `json:"rotframe"`   // apply the rotating reference frame correction
	Transition bool   `json:"transition"` // blend the production with the transition model
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data Data     `json:"data"` // global simulation data
	Turb TurbData `json:"turb"` // turbulence problem definition

	// derived
	DirOut    string               // directory to save results
	Key       string               // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	MatModels *MatDb               // materials and models
	TurbMdl   *turbulence.SourceSA // model of the material named in Turb.Mat
}

// SetDefault sets default values
func (o *TurbData) SetDefault() {
	o.Ndim = 3
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Turb.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/tailrotation/" + fnkey
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// check problem definition
	if o.Turb.Ndim != 2 && o.Turb.Ndim != 3 {
		chk.Panic("ReadSim: space dimension must be 2 or 3. %d is invalid", o.Turb.Ndim)
	}
	if o.Turb.Nspecies < 0 {
		chk.Panic("ReadSim: number of species cannot be negative. %d is invalid", o.Turb.Nspecies)
	}

	// read materials database and initialise models
	o.MatModels, err = ReadMat(dir, o.Data.Matfile, o.Turb.Ndim, o.Turb.Nspecies, o.Turb.RotFrame, o.Turb.Transition)
	if err != nil {
		chk.Panic("loading materials and initialising models failed:\n%v", err)
	}

	// derived: turbulence model
	if o.Turb.Mat != "" {
		mat := o.MatModels.Get(o.Turb.Mat)
		if mat == nil {
			chk.Panic("cannot find turbulence material named %q", o.Turb.Mat)
		}
		if mat.Turb == nil {
			chk.Panic("turbulence model in material (%q) is not available", o.Turb.Mat)
		}
		o.TurbMdl = mat.Turb
	}

	// results
	return &o
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
