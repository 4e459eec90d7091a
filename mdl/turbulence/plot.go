// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/mlau154/SU2-TailRotation/flow"
)

// PlotFunctions plots the closure functions and the source components over a
// range of turbulence scalar values, keeping the remaining flow state fixed.
// The figure is saved as dirout/fnkey.eps
func PlotFunctions(dirout, fnkey string, o *SourceSA, sta *flow.State, nuei, nuef float64, np int) {

	Nue := utl.LinSpace(nuei, nuef, np)
	Fv1 := make([]float64, np)
	Fv2 := make([]float64, np)
	Fw := make([]float64, np)
	Prod := make([]float64, np)
	Dest := make([]float64, np)
	Res := make([]float64, np)

	// the state copy shares the read-only buffers
	cp := *sta
	for i, nue := range Nue {
		cp.Nue = nue
		w, res, _ := o.Probe(&cp)
		Fv1[i], Fv2[i], Fw[i] = w.Fv1, w.Fv2, w.Fw
		Prod[i], Dest[i] = o.GetProduction(), o.GetDestruction()
		Res[i] = res
	}

	plt.Subplot(2, 1, 1)
	plt.Plot(Nue, Fv1, &plt.A{C: "b", Ls: "-", L: "$f_{v1}$"})
	plt.Plot(Nue, Fv2, &plt.A{C: "g", Ls: "-", L: "$f_{v2}$"})
	plt.Plot(Nue, Fw, &plt.A{C: "r", Ls: "-", L: "$f_w$"})
	plt.Gll("$\\tilde{\\nu}$", "closure functions", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(Nue, Prod, &plt.A{C: "b", Ls: "-", L: "production"})
	plt.Plot(Nue, Dest, &plt.A{C: "r", Ls: "-", L: "destruction"})
	plt.Plot(Nue, Res, &plt.A{C: "k", Ls: "--", L: "residual"})
	plt.Gll("$\\tilde{\\nu}$", "source terms", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey+".eps")
}
