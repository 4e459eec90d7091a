// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_aux01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("aux01. wall destruction chain")

	o, err := New("sa")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = o.Init(3, 0, false, false, nil)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	_, sta := basicState()
	w, _, _ := o.Probe(sta)
	chk.Float64(tst, "r   ", 1e-13, w.R, 0.005948358522380139)
	chk.Float64(tst, "dr  ", 1e-11, w.DR, 5.948269051598084)
	chk.Float64(tst, "g   ", 1e-13, w.G, 0.004163850965679387)
	chk.Float64(tst, "glim", 1e-12, w.Glim, 1.0025873725752108)
	chk.Float64(tst, "fw  ", 1e-13, w.Fw, 0.0041746243994752515)
	chk.Float64(tst, "dfw ", 1e-11, w.DFw, 4.174561607948455)

	// derivative of fw against numerical differentiation
	chk.DerivScaSca(tst, "dfw/dnue", 1e-7, w.DFw, sta.Nue, 1e-6, chk.Verbose, func(x float64) (float64, error) {
		cp := *sta
		cp.Nue = x
		wx, _, _ := o.Probe(&cp)
		return wx.Fw, nil
	})
}

func Test_aux02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("aux02. saturation of r")

	o, err := New("sa")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = o.Init(3, 0, false, false, nil)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// nearly vanishing vorticity saturates r and kills the derivatives
	_, sta := basicState()
	sta.Vorticity[2] = 1e-9
	w, _, _ := o.Probe(sta)
	chk.Float64(tst, "r (saturated)  ", 1e-17, w.R, 10.0)
	chk.Float64(tst, "dr (saturated) ", 1e-17, w.DR, 0.0)
	chk.Float64(tst, "dfw (saturated)", 1e-17, w.DFw, 0.0)
	chk.Float64(tst, "fw (saturated) ", 1e-12, w.Fw, 2.005174745150423)

	// the Jacobian stays consistent on the saturated plateau
	CheckJacobian(tst, "jac (saturated)", o, sta, 1e-9, 1e-6, chk.Verbose)
}

func Test_aux03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("aux03. Edwards limiter")

	o, err := New("sa-edw")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = o.Init(3, 0, false, false, nil)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	idx, sta := basicState()
	sta.SetVelocityGrad(idx, 0, 1, 2.0)
	w, _, _ := o.Probe(sta)
	chk.Float64(tst, "r", 1e-13, w.R, 0.003852369503364922)

	// the remapped r stays within [0, 1/tanh(1)) for any scalar value
	rmax := 1.0 / math.Tanh(1.0)
	for _, nue := range utl.LinSpace(1e-6, 0.3, 101) {
		cp := *sta
		cp.Nue = nue
		wx, _, _ := o.Probe(&cp)
		if wx.R < 0.0 || wx.R >= rmax {
			tst.Errorf("r=%v is outside [0, %v)\n", wx.R, rmax)
			return
		}
	}
}
