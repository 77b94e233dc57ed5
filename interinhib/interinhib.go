// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package interinhib provides inter-fiber inhibition params, where each
fiber's update is reduced by a drive proportional to the other fiber's
membrane potential offset from the inhibitory reversal potential.
Call once per step, before either fiber is updated:

	ii.Mutual(v1, v2, d1, d2) // both drives from the same pre-step state
	pr.Step(nv1, v1, d1, k1)
	pr.Step(nv2, v2, d2, k2)
*/
package interinhib

import "gonum.org/v1/gonum/floats"

// InterInhib specifies symmetric mutual inhibition between two fibers.
type InterInhib struct {

	// inhibitory conductance: multiplier on the other fiber's offset from E
	Gi float64 `def:"0.1"`

	// inhibitory reversal potential, in mV
	E float64 `def:"-70"`
}

func (il *InterInhib) Defaults() {
	il.Gi = 0.1
	il.E = -70
}

// Drive computes the inhibitory drive received from other into drive:
// drive[i] = Gi * (other[i] - E).  drive and other must have the same length.
func (il *InterInhib) Drive(drive, other []float64) {
	copy(drive, other)
	floats.AddConst(-il.E, drive)
	floats.Scale(il.Gi, drive)
}

// Mutual computes the drives for both fibers from the same state snapshot:
// d1 is driven by v2, and d2 by v1.  Neither v1 nor v2 is modified.
func (il *InterInhib) Mutual(v1, v2, d1, d2 []float64) {
	il.Drive(d1, v2)
	il.Drive(d2, v1)
}
