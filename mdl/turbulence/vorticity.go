// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

import (
	"math"

	"github.com/mlau154/SU2-TailRotation/flow"
)

// VortBsl implements the baseline rotation measure: the norm of the vorticity
// vector [1]
type VortBsl struct{}

// Get computes Omega as the Euclidean norm of the 3-component vorticity vector
func (o VortBsl) Get(sta *flow.State, idx flow.Indices, w *Scratch) {
	w.Omega = math.Sqrt(sta.Vorticity[0]*sta.Vorticity[0] +
		sta.Vorticity[1]*sta.Vorticity[1] +
		sta.Vorticity[2]*sta.Vorticity[2])
}

// VortEdw implements the strain rate magnitude of Edwards and Chandra [3]
type VortEdw struct{}

// Get computes Omega from the velocity gradient tensor. The radicand is
// clamped at zero against round-off.
func (o VortEdw) Get(sta *flow.State, idx flow.Indices, w *Scratch) {
	ndim := idx.NDim()
	iv := idx.Velocity()
	Sbar := 0.0
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			Sbar += (sta.GradPrim[iv+i][j] + sta.GradPrim[iv+j][i]) * sta.GradPrim[iv+i][j]
		}
	}
	for i := 0; i < ndim; i++ {
		Sbar -= (2.0 / 3.0) * math.Pow(sta.GradPrim[iv+i][i], 2.0)
	}
	w.Omega = math.Sqrt(math.Max(Sbar, 0.0))
}

// vorticityAllocators holds all available rotation measure closures
var vorticityAllocators = map[string]func() Vorticity{
	"bsl": func() Vorticity { return new(VortBsl) },
	"edw": func() Vorticity { return new(VortEdw) },
}
