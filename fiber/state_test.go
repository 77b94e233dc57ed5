// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"math"
	"testing"

	"github.com/emer/oscpair/rkey"
	"github.com/stretchr/testify/require"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-10

func TestLaxFriedrichs(t *testing.T) {
	v := State{0, 0, 50, 0, 0, 10}
	lambda := 0.25
	// dst[i] = 0.75*(r+l) - 0.5*v[i]
	cor := State{7.5, 37.5, -25, 37.5, 7.5, -5}
	dst := make(State, len(v))
	LaxFriedrichs(dst, v, lambda)
	for i := range v {
		dif := math.Abs(dst[i] - cor[i])
		if dif > difTol {
			t.Errorf("LF err: idx: %v, v: %v, dst: %v, cor: %v, dif: %v\n", i, v[i], dst[i], cor[i], dif)
		}
	}
}

func TestLaxFriedrichsAveraging(t *testing.T) {
	// with no diffusion term the update is a convex average: peak never grows
	v := NewState(50, 16, 50)
	nv := make(State, len(v))
	prev := v.MaxAbs()
	for s := 0; s < 200; s++ {
		LaxFriedrichs(nv, v, 0)
		mx := nv.MaxAbs()
		if mx > prev {
			t.Fatalf("step %d: max abs grew from %v to %v", s, prev, mx)
		}
		prev = mx
		v, nv = nv, v
	}
}

func TestLaxFriedrichsCheckerboard(t *testing.T) {
	// the alternating mode is amplified by -(1 + 4 lambda) on each step
	lambda := 0.1
	v := State{1, -1, 1, -1, 1, -1}
	dst := make(State, len(v))
	LaxFriedrichs(dst, v, lambda)
	for i := range v {
		cor := -(1 + 4*lambda) * v[i]
		if dif := math.Abs(dst[i] - cor); dif > difTol {
			t.Errorf("checkerboard err: idx: %v, dst: %v, cor: %v", i, dst[i], cor)
		}
	}
}

func TestStepSubtractsDrive(t *testing.T) {
	pr := &Params{}
	pr.Defaults()
	pr.NoiseAmp = 0
	v := State{0, 1, 2, 3, 4}
	drive := State{1, 2, 3, 4, 5}
	lf := make(State, len(v))
	LaxFriedrichs(lf, v, pr.Lambda)
	dst := make(State, len(v))
	pr.Step(dst, v, drive, rkey.NewKey(1))
	require.Equal(t, 0.0, dst[0])
	require.Equal(t, 0.0, dst[4])
	for i := 1; i < 4; i++ {
		cor := lf[i] - drive[i]*pr.Dt
		if dif := math.Abs(dst[i] - cor); dif > difTol {
			t.Errorf("step err: idx: %v, dst: %v, cor: %v", i, dst[i], cor)
		}
	}
}

func TestNoisyBoundaryShared(t *testing.T) {
	pr := &Params{}
	pr.Defaults()
	key := rkey.NewKey(42).Fold(1)
	v := NewState(10, 3, 50)
	pr.ApplyNoisyBoundary(v, key)
	require.Equal(t, v[0], v[9])
	require.Equal(t, key.Normal()*pr.NoiseAmp, v[0])
	require.Equal(t, 50.0, v[3])

	// same key, same values
	w := NewState(10, 3, 50)
	pr.ApplyNoisyBoundary(w, key)
	require.Equal(t, v, w)
}

func TestNoisyBoundaryIndependent(t *testing.T) {
	pr := &Params{}
	pr.Defaults()
	pr.IndepBoundary = true
	v := make(State, 10)
	key := rkey.NewKey(42)
	pr.ApplyNoisyBoundary(v, key)
	require.NotEqual(t, v[0], v[9])
	zs := key.Normals(2)
	require.Equal(t, zs[0]*pr.NoiseAmp, v[0])
	require.Equal(t, zs[1]*pr.NoiseAmp, v[9])
}

func TestNoisyBoundaryZeroAmp(t *testing.T) {
	pr := &Params{}
	pr.Defaults()
	pr.NoiseAmp = 0
	v := State{5, 5, 5, 5}
	pr.ApplyNoisyBoundary(v, rkey.NewKey(3))
	require.True(t, v[0] == 0 && v[3] == 0, "boundaries: %v", v)
}

func TestMaxAbs(t *testing.T) {
	require.Equal(t, 7.0, State{1, -7, 3}.MaxAbs())
	require.Equal(t, 4.0, State{1, -2, 4}.MaxAbs())
}
