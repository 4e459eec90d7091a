// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

import (
	"math"

	"github.com/mlau154/SU2-TailRotation/flow"
)

// constants of the BC transition model (2020 revision)
const (
	bcChi1 = 0.002
	bcChi2 = 50.0
)

// blend multiplies the production term by the gamma_BC factor of the
// Bas-Cakmakcioglu algebraic transition model. The production Jacobian keeps
// its unblended value.
//  Reference:
//   [5] Cakmakcioglu SC, Bas O and Kaynak U (2018) A correlation-based algebraic
//       transition model based on the Spalart-Allmaras turbulence model,
//       J of Mechanical Engineering Science, 232(21), 3915-3929
func (o *SourceSA) blend(sta *flow.State, w *Scratch) {

	// turbulence intensity is u'/U so we multiply by 100 to get a percentage
	tu := 100.0 * o.tuinf

	nut := sta.Nue * w.Fv1
	rev := sta.Density(o.idx) * w.Dist2 / sta.LaminarViscosity(o.idx) * w.Omega
	reTheta := rev / 2.193
	reThetaT := 803.73 * math.Pow(tu+0.6067, -1.027) // Menter correlation

	term1 := math.Sqrt(math.Max(reTheta-reThetaT, 0.0) / (bcChi1 * reThetaT))
	term2 := math.Sqrt(math.Max(nut*bcChi2/w.Nu, 0.0))

	o.gammaBC = 1.0 - math.Exp(-(term1 + term2))
	o.production *= o.gammaBC
}
