// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fiber provides the state and update rule for a one-dimensional
excitable fiber: a ring of membrane potential samples advanced by the
Lax-Friedrichs scheme, reduced by an inhibitory drive, with both edge
samples overwritten by random noise on every step.
*/
package fiber

import (
	"errors"
	"fmt"

	"github.com/emer/oscpair/interinhib"
)

// Params are the simulation parameters shared by a pair of coupled fibers.
// Call Update after changing any of them, to recompute the derived values.
type Params struct {

	// fiber length, in cm
	L float64 `def:"10" toml:"L"`

	// spatial step, in cm
	Dx float64 `def:"0.1" toml:"dx"`

	// time step, in ms
	Dt float64 `def:"0.01" toml:"dt"`

	// total simulated time, in ms
	T float64 `def:"5" toml:"T"`

	// membrane capacitance (uF/cm^2) -- not used by the update rule
	Cm float64 `def:"1" toml:"Cm"`

	// membrane resistance (kOhm cm^2) -- not used by the update rule
	Rm float64 `def:"1" toml:"Rm"`

	// intracellular resistivity (Ohm cm) -- not used by the update rule
	Ri float64 `def:"100" toml:"Ri"`

	// inhibitory reversal potential, in mV
	EInh float64 `def:"-70" toml:"E_inh"`

	// inhibitory conductance: strength of the mutual inhibition between fibers
	GInh float64 `def:"0.1" toml:"g_inh"`

	// standard deviation of the noise written into the boundary samples each step
	NoiseAmp float64 `def:"0.05" toml:"noise_amplitude"`

	// seed for the random key -- same seed gives bit-identical runs
	Seed int64 `def:"42" toml:"random_seed"`

	// initial stimulus potential, in mV, placed at N/3 on fiber 1 and 2N/3 on fiber 2
	StimV float64 `def:"50" toml:"stim_v"`

	// draw the left and right boundary noise independently.  By default both
	// boundaries receive the same value, drawn twice from the same key.
	IndepBoundary bool `toml:"indep_boundary"`

	// number of spatial samples: floor(L / Dx)
	N int `inactive:"+" toml:"-"`

	// number of time steps: floor(T / Dt)
	M int `inactive:"+" toml:"-"`

	// stability factor: Dt / Dx^2
	Lambda float64 `inactive:"+" toml:"-"`
}

func (pr *Params) Defaults() {
	pr.L = 10
	pr.Dx = 0.1
	pr.Dt = 0.01
	pr.T = 5
	pr.Cm = 1
	pr.Rm = 1
	pr.Ri = 100
	pr.EInh = -70
	pr.GInh = 0.1
	pr.NoiseAmp = 0.05
	pr.Seed = 42
	pr.StimV = 50
	pr.IndepBoundary = false
	pr.Update()
}

// Update recomputes N, M and Lambda.
func (pr *Params) Update() {
	pr.N = int(pr.L / pr.Dx)
	pr.M = int(pr.T / pr.Dt)
	pr.Lambda = pr.Dt / (pr.Dx * pr.Dx)
}

// Inhib returns the inter-fiber inhibition params.
func (pr *Params) Inhib() interinhib.InterInhib {
	return interinhib.InterInhib{Gi: pr.GInh, E: pr.EInh}
}

// Stim1 returns the stimulus index for fiber 1.
func (pr *Params) Stim1() int {
	return pr.N / 3
}

// Stim2 returns the stimulus index for fiber 2.
func (pr *Params) Stim2() int {
	return 2 * pr.N / 3
}

// Stable returns true if Lambda is within the stability bound of the scheme.
func (pr *Params) Stable() bool {
	return pr.Lambda <= 0.5
}

// Validate checks the parameters, returning all problems joined.
// The simulator never calls this itself: bad params fail at run time.
func (pr *Params) Validate() error {
	pr.Update()
	var errs []error
	if pr.Dx <= 0 || pr.Dt <= 0 {
		errs = append(errs, fmt.Errorf("dx: %g, dt: %g: %w", pr.Dx, pr.Dt, ErrStep))
	}
	if pr.N < 3 {
		errs = append(errs, fmt.Errorf("N = %d samples: %w", pr.N, ErrGeometry))
	}
	if pr.Dx > 0 && !pr.Stable() {
		errs = append(errs, fmt.Errorf("lambda = %g: %w", pr.Lambda, ErrUnstable))
	}
	return errors.Join(errs...)
}

func (pr *Params) String() string {
	return fmt.Sprintf("L: %g dx: %g dt: %g T: %g N: %d M: %d lambda: %g g_inh: %g E_inh: %g noise: %g seed: %d",
		pr.L, pr.Dx, pr.Dt, pr.T, pr.N, pr.M, pr.Lambda, pr.GInh, pr.EInh, pr.NoiseAmp, pr.Seed)
}
