// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbulence

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/mlau154/SU2-TailRotation/flow"
)

// SourceSA evaluates the source term of the Spalart-Allmaras equation at one
// control volume. The five closures are selected at construction; Compute is
// then a pure function of the flow state and may be called concurrently on
// distinct evaluators.
type SourceSA struct {

	// closures
	vort  Vorticity   // rotation measure
	trip  TripTerm    // laminar suppression
	mvort ModVort     // modified vorticity
	aux   AuxFunc     // wall destruction chain
	src   SourceTerms // production, destruction, cross production

	// configuration
	idx        flow.Indices // access to the primitive variables
	rotframe   bool         // rotating reference frame
	transition bool         // blend production with the BC transition model
	proto      Scratch      // constants; copied into the scratch of each evaluation

	// parameters
	cb1, cb2, sigma float64
	cw2, cw3, cv1   float64
	ct3, ct4        float64
	kappa, cr1      float64
	tuinf           float64 // freestream turbulence intensity (fraction)

	// results of the last evaluation; unscaled by the volume
	production      float64
	destruction     float64
	crossProduction float64
	addSourceTerm   float64
	gammaBC         float64
	roughwall       bool

	// transition coupling
	intermittency float64

	// AddSource, when set, contributes an additional source term and Jacobian
	// pair, folded in additively before the volume scaling
	AddSource func(sta *flow.State, w *Scratch) (src, jac float64) `json:"-"`
}

// schemes maps composite model names to the five closure selections, in the
// order: vorticity, trip, modvort, aux, source
var schemes = map[string][]string{
	"sa":         {"bsl", "zero", "bsl", "bsl", "bsl"},
	"sa-ft2":     {"bsl", "nonzero", "bsl", "bsl", "bsl"},
	"sa-neg":     {"bsl", "zero", "neg", "bsl", "neg"},
	"sa-neg-ft2": {"bsl", "nonzero", "neg", "bsl", "neg"},
	"sa-edw":     {"edw", "zero", "edw", "edw", "bsl"},
}

// New returns a source term evaluator for a named composite scheme
func New(scheme string) (o *SourceSA, err error) {
	sel, ok := schemes[scheme]
	if !ok {
		return nil, chk.Err("scheme %q is not available in 'turbulence' database", scheme)
	}
	return NewComposite(sel[0], sel[1], sel[2], sel[3], sel[4])
}

// NewComposite returns a source term evaluator with each closure chosen
// independently from the closure databases
func NewComposite(vort, trip, mvort, aux, src string) (o *SourceSA, err error) {
	o = new(SourceSA)
	o.vort, err = NewVorticity(vort)
	if err != nil {
		return nil, err
	}
	o.trip, err = NewTripTerm(trip)
	if err != nil {
		return nil, err
	}
	o.mvort, err = NewModVort(mvort)
	if err != nil {
		return nil, err
	}
	o.aux, err = NewAuxFunc(aux)
	if err != nil {
		return nil, err
	}
	o.src, err = NewSourceTerms(src)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Init initialises the evaluator for a given space dimension, number of
// species and frame/transition flags. prms may override the standard model
// constants.
func (o *SourceSA) Init(ndim, nspecies int, rotframe, transition bool, prms dbf.Params) (err error) {
	o.idx = flow.NewIndices(ndim, nspecies)
	o.rotframe = rotframe
	o.transition = transition
	o.cb1, o.cb2, o.sigma = 0.1355, 0.622, 2.0/3.0
	o.cw2, o.cw3, o.cv1 = 0.3, 2.0, 7.1
	o.ct3, o.ct4 = 1.2, 0.5
	o.kappa, o.cr1 = 0.41, 0.5
	o.tuinf = 0.05
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "cb1":
			o.cb1 = p.V
		case "cb2":
			o.cb2 = p.V
		case "sigma":
			o.sigma = p.V
		case "cw2":
			o.cw2 = p.V
		case "cw3":
			o.cw3 = p.V
		case "cv1":
			o.cv1 = p.V
		case "ct3":
			o.ct3 = p.V
		case "ct4":
			o.ct4 = p.V
		case "kappa":
			o.kappa = p.V
		case "cr1":
			o.cr1 = p.V
		case "tuinf":
			o.tuinf = p.V
		default:
			return chk.Err("turbulence: parameter named %q is incorrect\n", p.N)
		}
	}
	o.derived()
	return
}

// GetPrms gets (an example of) parameters
func (o SourceSA) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "cb1", V: 0.1355},
			&dbf.P{N: "cb2", V: 0.622},
			&dbf.P{N: "sigma", V: 2.0 / 3.0},
			&dbf.P{N: "cw2", V: 0.3},
			&dbf.P{N: "cw3", V: 2.0},
			&dbf.P{N: "cv1", V: 7.1},
			&dbf.P{N: "ct3", V: 1.2},
			&dbf.P{N: "ct4", V: 0.5},
			&dbf.P{N: "kappa", V: 0.41},
			&dbf.P{N: "cr1", V: 0.5},
			&dbf.P{N: "tuinf", V: 0.05},
		}
	}
	return dbf.Params{
		&dbf.P{N: "cb1", V: o.cb1},
		&dbf.P{N: "cb2", V: o.cb2},
		&dbf.P{N: "sigma", V: o.sigma},
		&dbf.P{N: "cw2", V: o.cw2},
		&dbf.P{N: "cw3", V: o.cw3},
		&dbf.P{N: "cv1", V: o.cv1},
		&dbf.P{N: "ct3", V: o.ct3},
		&dbf.P{N: "ct4", V: o.ct4},
		&dbf.P{N: "kappa", V: o.kappa},
		&dbf.P{N: "cr1", V: o.cr1},
		&dbf.P{N: "tuinf", V: o.tuinf},
	}
}

// derived computes the derived constants stamped into each evaluation
func (o *SourceSA) derived() {
	o.proto.Cb1 = o.cb1
	o.proto.Cb2 = o.cb2
	o.proto.Sigma = o.sigma
	o.proto.Cb2Sigma = o.cb2 / o.sigma
	o.proto.K2 = o.kappa * o.kappa
	o.proto.Cw1 = o.cb1/o.proto.K2 + (1.0+o.cb2)/o.sigma
	o.proto.Cw2 = o.cw2
	o.proto.Cw36 = math.Pow(o.cw3, 6.0)
	o.proto.Cv13 = math.Pow(o.cv1, 3.0)
	o.proto.Ct3 = o.ct3
	o.proto.Ct4 = o.ct4
	o.proto.Cr1 = o.cr1
}

// Compute evaluates the source term of the turbulence equation at one control
// volume. It returns the residual (production - destruction + cross
// production, plus any additional source) and the derivative of the residual
// with respect to the turbulence scalar, both scaled by the volume.
func (o *SourceSA) Compute(sta *flow.State) (res, jac float64) {
	w := o.proto
	return o.run(sta, &w)
}

// Probe evaluates the source term and also returns the scratch record, for
// inspection by tests and plotting helpers
func (o *SourceSA) Probe(sta *flow.State) (w Scratch, res, jac float64) {
	w = o.proto
	res, jac = o.run(sta, &w)
	return
}

// run performs one evaluation using the given scratch record
func (o *SourceSA) run(sta *flow.State, w *Scratch) (res, jac float64) {

	o.roughwall = sta.Roughness > 0

	o.production = 0.0
	o.destruction = 0.0
	o.crossProduction = 0.0
	o.addSourceTerm = 0.0

	// rotation measure
	o.vort.Get(sta, o.idx, w)

	// rotational correction; bounds negative excursions of zero-mean strain
	if o.rotframe {
		w.Omega += 2.0 * math.Min(0.0, sta.StrainMag-w.Omega)
	}

	// near-wall singularity: no source term at all
	if sta.Dist <= 1e-10 {
		return
	}

	w.S = w.Omega
	w.Dist2 = sta.Dist * sta.Dist
	w.Nu = sta.LaminarViscosity(o.idx) / sta.Density(o.idx)
	w.InvK2d2 = 1.0 / (w.K2 * w.Dist2)

	// viscous functions
	o.viscousChain(sta.Nue, sta.Roughness, sta.Dist, w)

	// laminar suppression
	o.trip.Get(w)

	// modified vorticity
	o.mvort.Get(sta.Nue, w)
	w.InvShat = 1.0 / w.Shat

	// wall destruction chain
	o.aux.Get(sta.Nue, w)

	// squared norm of the turbulence scalar gradient
	w.Norm2Grad = 0.0
	for i := 0; i < o.idx.NDim(); i++ {
		w.Norm2Grad += sta.GradNue[i] * sta.GradNue[i]
	}

	// production, destruction, cross production and jacobian
	o.production, o.destruction, o.crossProduction, jac = o.src.Get(sta.Nue, w)

	// transition blend
	if o.transition {
		o.blend(sta, w)
	}

	// additional source terms
	if o.AddSource != nil {
		var djac float64
		o.addSourceTerm, djac = o.AddSource(sta, w)
		jac += djac
	}

	// residual and jacobian scaled by the control volume size
	res = (o.production - o.destruction + o.crossProduction + o.addSourceTerm) * sta.Volume
	jac *= sta.Volume
	return
}

// viscousChain computes Ji, fv1, fv2 and their derivatives. Roughness shifts
// Ji [4]; fv2 keeps the plain nue/nu ratio so roughness enters only through
// fv1.
func (o *SourceSA) viscousChain(nue, roughness, dist float64, w *Scratch) {
	w.Ji = nue/w.Nu + w.Cr1*(roughness/(dist+eps))
	w.DJi = 1.0 / w.Nu
	Ji2 := w.Ji * w.Ji
	Ji3 := Ji2 * w.Ji
	w.Fv1 = Ji3 / (Ji3 + w.Cv13)
	w.DFv1 = 3.0 * Ji2 * w.Cv13 / (w.Nu * math.Pow(Ji3+w.Cv13, 2.0))
	w.Fv2 = 1.0 - nue/(w.Nu+nue*w.Fv1)
	w.DFv2 = -(1.0/w.Nu - Ji2*w.DFv1) / math.Pow(1.0+w.Ji*w.Fv1, 2.0)
}

// SetIntermittency sets the intermittency provided by an external transition
// model
func (o *SourceSA) SetIntermittency(v float64) { o.intermittency = v }

// GetIntermittency returns the intermittency set by an external transition model
func (o *SourceSA) GetIntermittency() float64 { return o.intermittency }

// SetProduction sets the production term
func (o *SourceSA) SetProduction(v float64) { o.production = v }

// GetProduction returns the production term of the last evaluation
func (o *SourceSA) GetProduction() float64 { return o.production }

// SetDestruction sets the destruction term
func (o *SourceSA) SetDestruction(v float64) { o.destruction = v }

// GetDestruction returns the destruction term of the last evaluation
func (o *SourceSA) GetDestruction() float64 { return o.destruction }

// SetCrossProduction sets the cross production term
func (o *SourceSA) SetCrossProduction(v float64) { o.crossProduction = v }

// GetCrossProduction returns the cross production term of the last evaluation
func (o *SourceSA) GetCrossProduction() float64 { return o.crossProduction }

// GetAddSourceTerm returns the additional source term of the last evaluation
func (o *SourceSA) GetAddSourceTerm() float64 { return o.addSourceTerm }

// GetGammaBC returns the blend factor of the BC transition model
func (o *SourceSA) GetGammaBC() float64 { return o.gammaBC }

// Roughwall tells whether the last evaluation saw a rough wall
func (o *SourceSA) Roughwall() bool { return o.roughwall }
