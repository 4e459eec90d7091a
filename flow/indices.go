// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow provides read-only access to the per-point flow state consumed
// by turbulence closure models. The solver owns the buffers; this package only
// defines their layout and convenient accessors.
package flow

// Indices maps named primitive quantities to offsets within the primitive
// variables vector of a compressible flow solver. The vector starts with the
// species mass fractions, followed by temperature, the velocity components and
// the remaining thermodynamic and transport properties.
type Indices struct {
	ndim     int // space dimension
	nspecies int // number of species transported by the flow solver
}

// NewIndices returns the index mapping for a given space dimension and number
// of transported species
func NewIndices(ndim, nspecies int) Indices {
	return Indices{ndim, nspecies}
}

// NDim returns the space dimension
func (o Indices) NDim() int { return o.ndim }

// Temperature returns the offset of the temperature
func (o Indices) Temperature() int { return o.nspecies }

// Velocity returns the offset of the first velocity component
func (o Indices) Velocity() int { return o.nspecies + 1 }

// Pressure returns the offset of the pressure
func (o Indices) Pressure() int { return o.nspecies + o.ndim + 1 }

// Density returns the offset of the density
func (o Indices) Density() int { return o.nspecies + o.ndim + 2 }

// Enthalpy returns the offset of the enthalpy
func (o Indices) Enthalpy() int { return o.nspecies + o.ndim + 3 }

// SoundSpeed returns the offset of the sound speed
func (o Indices) SoundSpeed() int { return o.nspecies + o.ndim + 4 }

// LaminarViscosity returns the offset of the laminar (dynamic) viscosity
func (o Indices) LaminarViscosity() int { return o.nspecies + o.ndim + 5 }

// EddyViscosity returns the offset of the turbulent eddy viscosity
func (o Indices) EddyViscosity() int { return o.nspecies + o.ndim + 6 }

// ThermalConductivity returns the offset of the thermal conductivity
func (o Indices) ThermalConductivity() int { return o.nspecies + o.ndim + 7 }

// CpTotal returns the offset of the specific heat at constant pressure
func (o Indices) CpTotal() int { return o.nspecies + o.ndim + 8 }

// NPrim returns the total number of primitive variables
func (o Indices) NPrim() int { return o.nspecies + o.ndim + 9 }
