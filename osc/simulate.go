// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package osc

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/emer/oscpair/fiber"
)

// ErrFault is wrapped by every RunError.
var ErrFault = errors.New("osc: simulation fault")

// RunError reports a runtime fault (e.g., index out of range from a
// degenerate geometry) at given step.  Step is -1 for faults during setup.
type RunError struct {
	Step  int
	Cause any
}

func (e *RunError) Error() string {
	if e.Step < 0 {
		return fmt.Sprintf("%v during setup: %v", ErrFault, e.Cause)
	}
	return fmt.Sprintf("%v at step %d: %v", ErrFault, e.Step, e.Cause)
}

func (e *RunError) Unwrap() []error {
	if err, ok := e.Cause.(error); ok {
		return []error{ErrFault, err}
	}
	return []error{ErrFault}
}

// Simulate builds a Sim for the params and runs it to completion,
// returning the finished Sim with its histories in Hists.
// Any fault is returned as a *RunError with a nil Sim: partial
// histories are never returned.
func Simulate(pr *fiber.Params, lg *slog.Logger) (done *Sim, err error) {
	var sm *Sim
	defer func() {
		if r := recover(); r != nil {
			step := -1
			if sm != nil {
				step = sm.Cycle
			}
			done = nil
			err = &RunError{Step: step, Cause: r}
		}
	}()
	sm = New(pr)
	sm.Log = lg
	sm.Run()
	return sm, nil
}
