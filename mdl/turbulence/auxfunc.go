// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

import "math"

// AuxBsl implements the baseline wall destruction chain r, g, fw [1]
type AuxBsl struct{}

// Get computes r = min(nue/(Shat*k2*d2), 10) and the g and fw functions. The
// derivative of r is zeroed exactly at the saturation value.
func (o AuxBsl) Get(nue float64, w *Scratch) {
	w.R = math.Min(nue*w.InvShat*w.InvK2d2, 10.0)
	w.DR = (w.Shat - nue*w.DShat) * w.InvShat * w.InvShat * w.InvK2d2
	if w.R == 10.0 {
		w.DR = 0.0
	}
	wallFunctions(w)
}

// AuxEdw implements the wall destruction chain with the hyperbolic tangent
// limiter of Edwards and Chandra [3]
type AuxEdw struct{}

// Get computes the baseline r then remaps it through tanh(r)/tanh(1). The
// derivative transform evaluates tanh at the remapped r.
func (o AuxEdw) Get(nue float64, w *Scratch) {
	w.R = math.Min(nue*w.InvShat*w.InvK2d2, 10.0)
	w.R = math.Tanh(w.R) / math.Tanh(1.0)
	w.DR = (w.Shat - nue*w.DShat) * w.InvShat * w.InvShat * w.InvK2d2
	w.DR = (1.0 - math.Pow(math.Tanh(w.R), 2.0)) * w.DR / math.Tanh(1.0)
	wallFunctions(w)
}

// wallFunctions computes g, its limiter and fw together with the derivatives,
// from previously computed R and DR
func wallFunctions(w *Scratch) {
	w.G = w.R + w.Cw2*(math.Pow(w.R, 6.0)-w.R)
	w.G6 = math.Pow(w.G, 6.0)
	w.Glim = math.Pow((1.0+w.Cw36)/(w.G6+w.Cw36), 1.0/6.0)
	w.Fw = w.G * w.Glim
	w.DG = w.DR * (1.0 + w.Cw2*(6.0*math.Pow(w.R, 5.0)-1.0))
	w.DFw = w.DG * w.Glim * (1.0 - w.G6/(w.G6+w.Cw36))
}

// auxAllocators holds all available wall destruction closures
var auxAllocators = map[string]func() AuxFunc{
	"bsl": func() AuxFunc { return new(AuxBsl) },
	"edw": func() AuxFunc { return new(AuxEdw) },
}
