// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

import "math"

// Ft2Zero disables the laminar suppression term; this is the common production
// configuration [2]
type Ft2Zero struct{}

// Get sets ft2 and its derivative to zero
func (o Ft2Zero) Get(w *Scratch) {
	w.Ft2 = 0.0
	w.DFt2 = 0.0
}

// Ft2NonZero implements the exponential trip function of the original model [1]
type Ft2NonZero struct{}

// Get computes ft2 = ct3*exp(-ct4*Ji²) and its derivative
func (o Ft2NonZero) Get(w *Scratch) {
	xsi2 := math.Pow(w.Ji, 2.0)
	w.Ft2 = w.Ct3 * math.Exp(-w.Ct4*xsi2)
	w.DFt2 = -2.0 * w.Ct4 * w.Ji * w.Ft2 * w.DJi
}

// tripAllocators holds all available laminar suppression closures
var tripAllocators = map[string]func() TripTerm{
	"zero":    func() TripTerm { return new(Ft2Zero) },
	"nonzero": func() TripTerm { return new(Ft2NonZero) },
}
