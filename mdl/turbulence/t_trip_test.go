// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_ft201(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ft201. laminar suppression off")

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
	chk.Float64(tst, "ft2 ", 1e-17, w.Ft2, 0.0)
	chk.Float64(tst, "dft2", 1e-17, w.DFt2, 0.0)
}

func Test_ft202(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ft202. exponential trip function")

	o, err := New("sa-ft2")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = o.Init(3, 0, false, false, nil)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// nue twice the kinematic viscosity gives Ji = 2 exactly
	_, sta := basicState()
	sta.Nue = 3e-5
	w, _, _ := o.Probe(sta)
	chk.Float64(tst, "Ji  ", 1e-15, w.Ji, 2.0)
	chk.Float64(tst, "ft2 ", 1e-15, w.Ft2, 1.2*math.Exp(-2.0))
	chk.Float64(tst, "dft2", 1e-9, w.DFt2, -21653.645317858034)

	// derivative against numerical differentiation
	chk.DerivScaSca(tst, "dft2/dnue", 1e-3, w.DFt2, sta.Nue, 1e-9, chk.Verbose, func(x float64) (float64, error) {
		cp := *sta
		cp.Nue = x
		wx, _, _ := o.Probe(&cp)
		return wx.Ft2, nil
	})
}
