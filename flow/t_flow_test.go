// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func verbose() {
	chk.Verbose = true
}

func Test_indices01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("indices01. primitive variables layout")

	// 3D, single fluid
	idx := NewIndices(3, 0)
	chk.IntAssert(idx.NDim(), 3)
	chk.Ints(tst, "offsets (3D, 0 species)",
		[]int{idx.Temperature(), idx.Velocity(), idx.Pressure(), idx.Density(), idx.Enthalpy(),
			idx.SoundSpeed(), idx.LaminarViscosity(), idx.EddyViscosity(), idx.ThermalConductivity(),
			idx.CpTotal(), idx.NPrim()},
		[]int{0, 1, 4, 5, 6, 7, 8, 9, 10, 11, 12})

	// 2D, single fluid
	idx = NewIndices(2, 0)
	chk.Ints(tst, "offsets (2D, 0 species)",
		[]int{idx.Temperature(), idx.Velocity(), idx.Pressure(), idx.Density(), idx.LaminarViscosity(), idx.NPrim()},
		[]int{0, 1, 3, 4, 7, 11})

	// 3D, two species: everything shifts by the species count
	idx = NewIndices(3, 2)
	chk.Ints(tst, "offsets (3D, 2 species)",
		[]int{idx.Temperature(), idx.Velocity(), idx.Pressure(), idx.Density(), idx.LaminarViscosity(), idx.NPrim()},
		[]int{2, 3, 6, 7, 10, 14})
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. flow state buffers and accessors")

	idx := NewIndices(3, 0)
	sta := NewState(idx)
	chk.IntAssert(len(sta.Prim), idx.NPrim())
	chk.IntAssert(len(sta.GradPrim), idx.NPrim())
	chk.IntAssert(len(sta.GradPrim[0]), 3)
	chk.IntAssert(len(sta.Vorticity), 3)
	chk.IntAssert(len(sta.GradNue), 3)

	sta.Prim[idx.Density()] = 1.225
	sta.Prim[idx.LaminarViscosity()] = 1.7894e-5
	sta.Prim[idx.Velocity()+0] = 10.0
	sta.Prim[idx.Velocity()+2] = -2.0
	chk.Float64(tst, "rho", 1e-17, sta.Density(idx), 1.225)
	chk.Float64(tst, "mu", 1e-17, sta.LaminarViscosity(idx), 1.7894e-5)
	chk.Float64(tst, "u0", 1e-17, sta.Velocity(idx, 0), 10.0)
	chk.Float64(tst, "u2", 1e-17, sta.Velocity(idx, 2), -2.0)

	sta.SetVelocityGrad(idx, 1, 0, 0.25)
	chk.Float64(tst, "du1/dx0", 1e-17, sta.GradPrim[idx.Velocity()+1][0], 0.25)
}
