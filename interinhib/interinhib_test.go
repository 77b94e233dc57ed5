// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interinhib

import (
	"math"
	"testing"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

func TestMutual(t *testing.T) {
	ii := InterInhib{}
	ii.Defaults()

	v1 := []float64{0, 50, -70, 10}
	v2 := []float64{-70, 0, 20, 50}
	cord1 := []float64{0, 7, 9, 12}
	cord2 := []float64{7, 12, 0, 8}
	d1 := make([]float64, len(v1))
	d2 := make([]float64, len(v1))
	ii.Mutual(v1, v2, d1, d2)

	for i := range v1 {
		if dif := math.Abs(d1[i] - cord1[i]); dif > difTol {
			t.Errorf("d1 err: idx: %v, v2: %v, d1: %v, cord1: %v, dif: %v\n", i, v2[i], d1[i], cord1[i], dif)
		}
		if dif := math.Abs(d2[i] - cord2[i]); dif > difTol {
			t.Errorf("d2 err: idx: %v, v1: %v, d2: %v, cord2: %v, dif: %v\n", i, v1[i], d2[i], cord2[i], dif)
		}
	}
	// inputs untouched
	if v1[1] != 50 || v2[3] != 50 {
		t.Errorf("inputs modified: v1: %v v2: %v", v1, v2)
	}
}

func TestZeroGi(t *testing.T) {
	ii := InterInhib{Gi: 0, E: -70}
	d := []float64{1, 2, 3}
	ii.Drive(d, []float64{5, 6, 7})
	for i, v := range d {
		if v != 0 {
			t.Errorf("zero Gi drive not zero: idx: %v, val: %v", i, v)
		}
	}
}
