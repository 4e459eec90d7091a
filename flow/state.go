// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/cpmech/gosl/utl"

// State holds the flow quantities of one control volume as seen by a
// turbulence closure: primitive variables and their gradients, the vorticity
// vector, the transported turbulence scalar and its gradient, and the local
// geometry data. All buffers are owned by the caller and are read-only to the
// closure models.
type State struct {
	Prim      []float64   // primitive variables; see Indices for the layout
	GradPrim  [][]float64 // spatial gradients of the primitive variables [nprim][ndim]
	Vorticity []float64   // vorticity vector; 3 components, third is zero in 2D
	StrainMag float64     // strain rate magnitude
	Nue       float64     // transported turbulence scalar (modified eddy viscosity)
	GradNue   []float64   // spatial gradient of the turbulence scalar [ndim]
	Dist      float64     // distance to the nearest solid wall
	Roughness float64     // equivalent sand-grain roughness height of that wall
	Volume    float64     // size of the control volume
}

// NewState allocates the buffers of a flow state according to the layout
// defined by idx. Geometry and scalar fields start at zero.
func NewState(idx Indices) (o *State) {
	o = new(State)
	o.Prim = make([]float64, idx.NPrim())
	o.GradPrim = utl.Alloc(idx.NPrim(), idx.NDim())
	o.Vorticity = make([]float64, 3)
	o.GradNue = make([]float64, idx.NDim())
	return
}

// Density returns the local density
func (o *State) Density(idx Indices) float64 { return o.Prim[idx.Density()] }

// LaminarViscosity returns the local laminar (dynamic) viscosity
func (o *State) LaminarViscosity(idx Indices) float64 { return o.Prim[idx.LaminarViscosity()] }

// Velocity returns the i-th velocity component
func (o *State) Velocity(idx Indices, i int) float64 { return o.Prim[idx.Velocity()+i] }

// SetVelocityGrad sets ∂u_i/∂x_j in the primitive-gradient buffer
func (o *State) SetVelocityGrad(idx Indices, i, j int, value float64) {
	o.GradPrim[idx.Velocity()+i][j] = value
}
