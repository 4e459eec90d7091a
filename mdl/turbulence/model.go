// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package turbulence implements the source term of the Spalart-Allmaras
// one-equation turbulence model and its published variants. The evaluator is
// assembled from five independent closures (rotation measure, laminar
// suppression, modified vorticity, wall destruction chain and source terms),
// each selectable from a database of variants, and returns the residual
// together with the analytic derivative required by implicit solvers.
//  References:
//   [1] Spalart PR and Allmaras SR (1994) A one-equation turbulence model for
//       aerodynamic flows, La Recherche Aerospatiale, 1, 5-21
//   [2] Allmaras SR, Johnson FT and Spalart PR (2012) Modifications and clarifications
//       for the implementation of the Spalart-Allmaras turbulence model, ICCFD7-1902
//   [3] Edwards JR and Chandra S (1996) Comparison of eddy viscosity-transport
//       turbulence models for three-dimensional, shock-separated flowfields,
//       AIAA Journal, 34(4), 756-763
//   [4] Aupoix B and Spalart PR (2003) Extensions of the Spalart-Allmaras turbulence
//       model to account for wall roughness, Int J of Heat and Fluid Flow, 24, 454-462
package turbulence

import (
	"github.com/cpmech/gosl/chk"

	"github.com/mlau154/SU2-TailRotation/flow"
)

// Vorticity computes the raw rotation measure Omega from local velocity data
type Vorticity interface {
	Get(sta *flow.State, idx flow.Indices, w *Scratch) // writes Omega
}

// TripTerm computes the laminar suppression term ft2 and its derivative
type TripTerm interface {
	Get(w *Scratch) // reads Ji and DJi; writes Ft2 and DFt2
}

// ModVort computes the modified vorticity Shat and its derivative
type ModVort interface {
	Get(nue float64, w *Scratch) // reads S, Ji, Fv1, Fv2 and derivatives; writes Shat and DShat
}

// AuxFunc computes the wall destruction chain r, g, glim, fw and derivatives
type AuxFunc interface {
	Get(nue float64, w *Scratch) // reads Shat, DShat, InvShat, InvK2d2; writes R through DFw
}

// SourceTerms combines the closure functions into the production, destruction
// and cross production terms plus the net Jacobian contribution
type SourceTerms interface {
	Get(nue float64, w *Scratch) (prod, dest, cross, jac float64)
}

// NewVorticity returns a new rotation measure closure
func NewVorticity(name string) (Vorticity, error) {
	allocator, ok := vorticityAllocators[name]
	if !ok {
		return nil, chk.Err("vorticity closure %q is not available in 'turbulence' database", name)
	}
	return allocator(), nil
}

// NewTripTerm returns a new laminar suppression closure
func NewTripTerm(name string) (TripTerm, error) {
	allocator, ok := tripAllocators[name]
	if !ok {
		return nil, chk.Err("trip term closure %q is not available in 'turbulence' database", name)
	}
	return allocator(), nil
}

// NewModVort returns a new modified vorticity closure
func NewModVort(name string) (ModVort, error) {
	allocator, ok := modvortAllocators[name]
	if !ok {
		return nil, chk.Err("modified vorticity closure %q is not available in 'turbulence' database", name)
	}
	return allocator(), nil
}

// NewAuxFunc returns a new wall destruction closure
func NewAuxFunc(name string) (AuxFunc, error) {
	allocator, ok := auxAllocators[name]
	if !ok {
		return nil, chk.Err("wall destruction closure %q is not available in 'turbulence' database", name)
	}
	return allocator(), nil
}

// NewSourceTerms returns a new source terms closure
func NewSourceTerms(name string) (SourceTerms, error) {
	allocator, ok := sourceAllocators[name]
	if !ok {
		return nil, chk.Err("source terms closure %q is not available in 'turbulence' database", name)
	}
	return allocator(), nil
}
