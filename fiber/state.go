// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"github.com/emer/oscpair/rkey"
	"gonum.org/v1/gonum/floats"
)

// State is the membrane potential (mV) at each spatial sample of a fiber.
// Indexes wrap around: the neighbor of the last sample is the first.
type State []float64

// NewState returns a resting (all zero) state of n samples
// with stimulus value stim at index idx.
func NewState(n, idx int, stim float64) State {
	st := make(State, n)
	st[idx] = stim
	return st
}

// LaxFriedrichs writes one Lax-Friedrichs diffusion step of v into dst,
// with periodic neighbors:
//
//	dst[i] = 0.5*(v[i+1] + v[i-1]) + lambda*(v[i+1] - 2*v[i] + v[i-1])
//
// dst and v must not be the same slice.
func LaxFriedrichs(dst, v State, lambda float64) {
	n := len(v)
	for i := range v {
		l := v[(i-1+n)%n]
		r := v[(i+1)%n]
		dst[i] = 0.5*(r+l) + lambda*(r-2*v[i]+l)
	}
}

// Step writes the next state of v into dst: Lax-Friedrichs diffusion,
// minus drive*Dt, then noisy boundaries drawn from key.
// dst and v must not be the same slice.
func (pr *Params) Step(dst, v, drive State, key rkey.Key) {
	LaxFriedrichs(dst, v, pr.Lambda)
	floats.AddScaled(dst, -pr.Dt, drive)
	pr.ApplyNoisyBoundary(dst, key)
}

// ApplyNoisyBoundary overwrites the first and last samples with NoiseAmp
// scaled standard normal values determined by key.  Both values are drawn
// afresh from the same key, so they are identical unless IndepBoundary is
// set, in which case they are the first two draws of the key's stream.
// key is not advanced.
func (pr *Params) ApplyNoisyBoundary(v State, key rkey.Key) {
	var zl, zr float64
	if pr.IndepBoundary {
		zs := key.Normals(2)
		zl, zr = zs[0], zs[1]
	} else {
		zl, zr = key.Normal(), key.Normal()
	}
	v[0] = zl * pr.NoiseAmp
	v[len(v)-1] = zr * pr.NoiseAmp
}

// MaxAbs returns the largest absolute value in the state.
func (st State) MaxAbs() float64 {
	return max(floats.Max(st), -floats.Min(st))
}
