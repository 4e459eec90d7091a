// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

import "math"

// ModVortBsl implements the baseline modified vorticity [1]
type ModVortBsl struct{}

// Get computes Shat = S + nue*fv2/(k2*d2) with a 1e-10 floor. The derivative
// is zeroed whenever the floor is active.
func (o ModVortBsl) Get(nue float64, w *Scratch) {
	Sbar := nue * w.Fv2 * w.InvK2d2
	w.Shat = w.S + Sbar
	w.Shat = math.Max(w.Shat, 1.0e-10)
	dSbar := (w.Fv2 + nue*w.DFv2) * w.InvK2d2
	if w.Shat <= 1.0e-10 {
		w.DShat = 0.0
	} else {
		w.DShat = dSbar
	}
}

// ModVortEdw implements the modified vorticity of Edwards and Chandra [3]
type ModVortEdw struct{}

// Get computes Shat = S*(1/Ji + fv1) with a 1e-16 guard on Ji and on the raw
// value, then the 1e-10 floor; the two clamps are applied in this order
func (o ModVortEdw) Get(nue float64, w *Scratch) {
	w.Shat = math.Max(w.S*(1.0/math.Max(w.Ji, 1.0e-16)+w.Fv1), 1.0e-16)
	w.Shat = math.Max(w.Shat, 1.0e-10)
	if w.Shat <= 1.0e-10 {
		w.DShat = 0.0
	} else {
		w.DShat = -w.S*math.Pow(w.Ji, -2.0)/w.Nu + w.S*w.DFv1
	}
}

// ModVortNeg guards the baseline closure against non-positive turbulence
// scalar values [2]
type ModVortNeg struct{}

// Get delegates to the baseline closure for positive nue and leaves Shat and
// its derivative untouched otherwise; the negative branch of the source terms
// does not consume them
func (o ModVortNeg) Get(nue float64, w *Scratch) {
	if nue > 0.0 {
		// the clipping of Sbar against -cv2*S from [2] eq. 12 is not applied
		ModVortBsl{}.Get(nue, w)
	}
}

// modvortAllocators holds all available modified vorticity closures
var modvortAllocators = map[string]func() ModVort{
	"bsl": func() ModVort { return new(ModVortBsl) },
	"edw": func() ModVort { return new(ModVortEdw) },
	"neg": func() ModVort { return new(ModVortNeg) },
}
