// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mlau154/SU2-TailRotation/flow"
)

// CheckJacobian compares the analytic Jacobian of the evaluator against the
// numerical derivative of the residual at the given state. h is the step of
// the numerical differentiation; it must keep the sampled interval within the
// branch selected by the sign of the turbulence scalar.
func CheckJacobian(tst *testing.T, msg string, o *SourceSA, sta *flow.State, tol, h float64, verbose bool) {
	if verbose {
		io.Pforan("\n%s: nue=%g, dist=%g\n", msg, sta.Nue, sta.Dist)
	}
	_, jac := o.Compute(sta)
	chk.DerivScaSca(tst, msg, tol, jac, sta.Nue, h, verbose, func(x float64) float64 {
		cp := *sta
		cp.Nue = x
		res, _ := o.Compute(&cp)
		return res
	})
}
