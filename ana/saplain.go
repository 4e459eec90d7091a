// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import "math"

// standard closure constants of the Spalart-Allmaras model
const (
	cb1   = 0.1355
	cb2   = 0.622
	sigma = 2.0 / 3.0
	cw2   = 0.3
	cw3   = 2.0
	cv1   = 7.1
	ct3   = 1.2
	ct4   = 0.5
	kappa = 0.41
)

// PlainSA computes the source term of the standard Spalart-Allmaras
// one-equation turbulence model at a single point near a smooth wall, with the
// whole closure chain written out in one flat pass:
//
//    P = cb1・(1 - ft2)・Ŝ・ν̃                 production
//    D = (cw1・fw - cb1・ft2/κ²)・(ν̃/d)²      wall destruction
//    C = (cb2/σ)・‖∇ν̃‖²                      cross production
//
// The residual is P - D + C and its derivative with respect to ν̃ follows from
// the chain rule through χ, fv1, fv2, Ŝ, r, g and fw. PlainSA is an
// independent reference for the composite evaluators in mdl/turbulence.
type PlainSA struct {

	// input
	Rho       float64   // density
	Mu        float64   // laminar dynamic viscosity
	Vorticity []float64 // vorticity vector
	GradNue   []float64 // gradient of the turbulence scalar
	Dist      float64   // distance to the nearest wall
	Volume    float64   // size of the control volume
	Trip      bool      // include the ft2 laminar suppression term

	// computed by Source
	Ji, Fv1, Fv2    float64 // viscous functions
	Ft2             float64 // laminar suppression function
	Shat            float64 // modified vorticity
	R, G, Fw        float64 // wall destruction functions
	Production      float64 // first source component
	Destruction     float64 // second source component
	CrossProduction float64 // third source component
}

// Init initialises the reference state: unit density and vorticity, sea-level
// air viscosity, one meter away from the wall, unit control volume
func (o *PlainSA) Init() {
	o.Rho = 1.0
	o.Mu = 1.5e-5
	o.Vorticity = []float64{0, 0, 1}
	o.GradNue = []float64{0, 0, 0}
	o.Dist = 1.0
	o.Volume = 1.0
}

// Source computes the residual of the turbulence equation and its derivative
// with respect to the turbulence scalar ν̃, both scaled by the control volume
// size. The closure functions are kept in the structure for inspection.
func (o *PlainSA) Source(nue float64) (res, jac float64) {

	o.Ji, o.Fv1, o.Fv2, o.Ft2 = 0, 0, 0, 0
	o.Shat, o.R, o.G, o.Fw = 0, 0, 0, 0
	o.Production, o.Destruction, o.CrossProduction = 0, 0, 0

	// no source at the wall
	if o.Dist <= 1e-10 {
		return
	}

	// viscous functions
	ν := o.Mu / o.Rho
	χ := nue / ν
	χ2 := χ * χ
	χ3 := χ2 * χ
	cv13 := math.Pow(cv1, 3.0)
	o.Ji = χ
	o.Fv1 = χ3 / (χ3 + cv13)
	o.Fv2 = 1.0 - χ/(1.0+χ*o.Fv1)

	// laminar suppression
	dft2 := 0.0
	if o.Trip {
		o.Ft2 = ct3 * math.Exp(-ct4*χ2)
		dft2 = -2.0 * ct4 * χ * o.Ft2 / ν
	}

	// modified vorticity, clipped away from zero
	ω := math.Sqrt(o.Vorticity[0]*o.Vorticity[0] + o.Vorticity[1]*o.Vorticity[1] + o.Vorticity[2]*o.Vorticity[2])
	k2d2 := (kappa * o.Dist) * (kappa * o.Dist)
	o.Shat = ω + nue*o.Fv2/k2d2
	if o.Shat < 1e-10 {
		o.Shat = 1e-10
	}

	// wall destruction functions, with r saturated at 10
	cw36 := math.Pow(cw3, 6.0)
	o.R = math.Min(nue/(o.Shat*k2d2), 10.0)
	o.G = o.R + cw2*(math.Pow(o.R, 6.0)-o.R)
	g6 := math.Pow(o.G, 6.0)
	glim := math.Pow((1.0+cw36)/(g6+cw36), 1.0/6.0)
	o.Fw = o.G * glim

	// source components
	k2 := kappa * kappa
	cw1 := cb1/k2 + (1.0+cb2)/sigma
	o.Production = cb1 * (1.0 - o.Ft2) * o.Shat * nue
	o.Destruction = (cw1*o.Fw - cb1*o.Ft2/k2) * (nue / o.Dist) * (nue / o.Dist)
	o.CrossProduction = (cb2 / sigma) * (o.GradNue[0]*o.GradNue[0] + o.GradNue[1]*o.GradNue[1] + o.GradNue[2]*o.GradNue[2])

	// chain rule for the derivative with respect to ν̃
	dfv1 := 3.0 * χ2 * cv13 / (ν * math.Pow(χ3+cv13, 2.0))
	dfv2 := -(1.0/ν - χ2*dfv1) / math.Pow(1.0+χ*o.Fv1, 2.0)
	dshat := 0.0
	if o.Shat > 1e-10 {
		dshat = (o.Fv2 + nue*dfv2) / k2d2
	}
	dr := 0.0
	if o.R != 10.0 {
		dr = (o.Shat - nue*dshat) / (o.Shat * o.Shat * k2d2)
	}
	dg := dr * (1.0 + cw2*(6.0*math.Pow(o.R, 5.0)-1.0))
	dfw := dg * glim * (1.0 - g6/(g6+cw36))
	jac = cb1 * (-o.Shat*nue*dft2 + (1.0-o.Ft2)*(nue*dshat+o.Shat))
	jac -= (cw1*dfw-cb1/k2*dft2)*(nue/o.Dist)*(nue/o.Dist) + (cw1*o.Fw-cb1*o.Ft2/k2)*2.0*nue/(o.Dist*o.Dist)

	// residual scaled by the control volume size
	res = (o.Production - o.Destruction + o.CrossProduction) * o.Volume
	jac *= o.Volume
	return
}
