// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/mlau154/SU2-TailRotation/mdl/turbulence"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; e.g. "turb"
	Model string     `json:"model"` // name of model; e.g. "sa", "sa-ft2", "sa-neg"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Turb *turbulence.SourceSA // pointer to actual turbulence model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Turbs map[string]*Material // subset with materials/models: turbulence
}

// ReadMat reads all materials data from a .mat JSON file and initialises the
// models for the given problem definition
func ReadMat(dir, fn string, ndim, nspecies int, rotframe, transition bool) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// subsets
	mdb.Turbs = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "turb":
			mdb.Turbs[m.Name] = m
		default:
			err = chk.Err("material type %q is incorrect; option is \"turb\"", m.Type)
			return
		}
	}

	// alloc/init: turbulence models
	for _, m := range mdb.Turbs {
		m.Turb, err = turbulence.New(m.Model)
		if err != nil {
			return
		}
		err = m.Turb.Init(ndim, nspecies, rotframe, transition, m.Prms)
		if err != nil {
			return
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n", o.Name, o.Type, o.Model, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\":%q, \"v\":%v}", p.N, p.V)
	}
	l += "\n      ]\n    }"
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
