// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package osc

import (
	"math"

	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
	"github.com/emer/oscpair/fiber"
)

// Row returns row s (time step s) of a history, sharing its memory.
func Row(h *etensor.Float64, s int) fiber.State {
	n := h.Dim(1)
	return fiber.State(h.Values[s*n : (s+1)*n])
}

// HistRange returns the min and max over the finite values of the history.
// If there are none, Min is +Inf and Max is -Inf.
func HistRange(h *etensor.Float64) minmax.F64 {
	mm := minmax.F64{}
	mm.SetInfinity()
	for _, v := range h.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		mm.FitValInRange(v)
	}
	return mm
}

// NonFinite returns the number of NaN or Inf values in the history,
// and the first row holding one (-1 if none).
func NonFinite(h *etensor.Float64) (n, first int) {
	first = -1
	cols := h.Dim(1)
	for i, v := range h.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if first < 0 {
				first = i / cols
			}
			n++
		}
	}
	return n, first
}

// PeakAbs returns the largest absolute value of each row of the history.
func PeakAbs(h *etensor.Float64) []float64 {
	m := h.Dim(0)
	pk := make([]float64, m)
	for s := range pk {
		pk[s] = Row(h, s).MaxAbs()
	}
	return pk
}
