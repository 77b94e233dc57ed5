// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package osc

import "github.com/goki/ki/kit"

// Phases are the stages of a simulation run.
type Phases int32

//go:generate stringer -type=Phases

var KiT_Phases = kit.Enums.AddEnum(PhasesN, kit.NotBitFlag, nil)

func (ev Phases) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Phases) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The run phases
const (
	// NotStarted is the state after Init: no step has been taken.
	NotStarted Phases = iota

	// Stepping means at least one step has been recorded, but fewer than M.
	Stepping

	// Done means all M rows of both histories are recorded.
	Done

	PhasesN
)
