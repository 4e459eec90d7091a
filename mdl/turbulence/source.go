// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

// SrcBsl implements the standard production, destruction and cross production
// terms [1]
type SrcBsl struct{}

// Get combines the closure functions into the three source components and the
// net Jacobian contribution
func (o SrcBsl) Get(nue float64, w *Scratch) (prod, dest, cross, jac float64) {
	prod, jac = o.production(nue, w, jac)
	dest, jac = o.destruction(nue, w, jac)
	cross = o.crossProduction(w)
	return
}

func (o SrcBsl) production(nue float64, w *Scratch, jac float64) (float64, float64) {
	p := w.Cb1 * (1.0 - w.Ft2) * w.Shat * nue
	jac += w.Cb1 * (-w.Shat*nue*w.DFt2 + (1.0-w.Ft2)*(nue*w.DShat+w.Shat))
	return p, jac
}

func (o SrcBsl) destruction(nue float64, w *Scratch, jac float64) (float64, float64) {
	d := (w.Cw1*w.Fw - w.Cb1*w.Ft2/w.K2) * nue * nue / w.Dist2
	jac -= (w.Cw1*w.DFw-w.Cb1/w.K2*w.DFt2)*nue*nue/w.Dist2 +
		(w.Cw1*w.Fw-w.Cb1*w.Ft2/w.K2)*2.0*nue/w.Dist2
	return d, jac
}

// crossProduction contributes nothing to the Jacobian
func (o SrcBsl) crossProduction(w *Scratch) float64 {
	return w.Cb2Sigma * w.Norm2Grad
}

// SrcNeg implements the source terms of the negative continuation of the
// model [2]
type SrcNeg struct{}

// Get delegates to the baseline closure for positive nue and switches to the
// negative-branch formulas otherwise; cross production is shared with the
// baseline
func (o SrcNeg) Get(nue float64, w *Scratch) (prod, dest, cross, jac float64) {
	if nue > 0.0 {
		return SrcBsl{}.Get(nue, w)
	}
	prod, jac = o.production(nue, w, jac)
	dest, jac = o.destruction(nue, w, jac)
	cross = SrcBsl{}.crossProduction(w)
	return
}

func (o SrcNeg) production(nue float64, w *Scratch, jac float64) (float64, float64) {
	p := w.Cb1 * (1.0 - w.Ct3) * w.S * nue
	jac += w.Cb1 * (1.0 - w.Ct3) * w.S
	return p, jac
}

func (o SrcNeg) destruction(nue float64, w *Scratch, jac float64) (float64, float64) {
	d := w.Cw1 * nue * nue / w.Dist2
	jac -= 2.0 * w.Cw1 * nue / w.Dist2
	return d, jac
}

// sourceAllocators holds all available source terms closures
var sourceAllocators = map[string]func() SourceTerms{
	"bsl": func() SourceTerms { return new(SrcBsl) },
	"neg": func() SourceTerms { return new(SrcNeg) },
}
