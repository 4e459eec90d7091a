// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

// eps protects the division by the wall distance in the roughness correction
const eps = 1e-16

// Scratch holds the model constants together with the auxiliary quantities
// exchanged by the closure stages during the evaluation of the source term at
// one control volume. A fresh copy is created per evaluation and discarded at
// its end; nothing persists between mesh points or iterations. Fields with a
// D prefix are derivatives with respect to the turbulence scalar.
type Scratch struct {

	// constants
	Cb1      float64 // production constant
	Cb2      float64 // cross production constant
	Sigma    float64 // diffusion constant
	Cb2Sigma float64 // cb2/sigma
	K2       float64 // von Karman constant squared
	Cw1      float64 // destruction constant, cb1/k2 + (1+cb2)/sigma
	Cw2      float64 // wall destruction shape constant
	Cw36     float64 // cw3 to the sixth power
	Cv13     float64 // cv1 to the third power
	Ct3, Ct4 float64 // trip term constants
	Cr1      float64 // roughness correction constant

	// closure functions and derivatives
	Ft2, DFt2   float64 // laminar suppression term
	R, DR       float64 // wall destruction ratio
	G, DG       float64 // wall destruction shape function
	Glim        float64 // limiter of g
	Fw, DFw     float64 // wall destruction function
	Ji, DJi     float64 // ratio of turbulence scalar to laminar kinematic viscosity
	Fv1, DFv1   float64 // first viscous function
	Fv2, DFv2   float64 // second viscous function
	Shat, DShat float64 // modified vorticity

	// helpers
	Omega     float64 // raw rotation measure
	S         float64 // rotation measure entering the source terms
	Nu        float64 // laminar kinematic viscosity
	Dist2     float64 // squared wall distance
	InvK2d2   float64 // 1/(k2*dist2)
	InvShat   float64 // 1/Shat
	G6        float64 // g to the sixth power
	Norm2Grad float64 // squared norm of the turbulence scalar gradient
}
