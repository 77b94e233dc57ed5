// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package osc simulates a pair of fibers coupled by mutual inhibition.
Sim owns both fiber states and the random key, advances them through
M steps, and records every post-step state into a history tensor of
shape [M, N] per fiber.

Each step, in order: the key is split into its replacement and one
sub-key per fiber, both inhibitory drives are computed from the
pre-step states, each fiber is advanced by the Lax-Friedrichs rule minus
its drive with noisy boundaries, and both new states are recorded.

Runs are bit-reproducible for a given set of Params.  Nothing is
checked up front: degenerate geometry panics, and an unstable Lambda
silently diverges into Inf / NaN.  Use Simulate to get such faults
back as an error.
*/
package osc

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/oscpair/fiber"
	"github.com/emer/oscpair/interinhib"
	"github.com/emer/oscpair/rkey"
)

// Sim is the coupled oscillator pair simulator.
type Sim struct {

	// simulation parameters -- N, M, Lambda are derived by Init
	Params fiber.Params

	// mutual inhibition, from Params.GInh and Params.EInh
	Inhib interinhib.InterInhib

	// current membrane potential of each fiber
	Fibers [2]fiber.State

	// inhibitory drive received by each fiber on the last step
	Drives [2]fiber.State

	// random key, replaced by its split on every step
	Key rkey.Key

	// current run phase
	Phase Phases

	// number of steps recorded so far
	Cycle int

	// recorded post-step states of each fiber, [M, N] = [Time, Pos]
	Hists [2]*etensor.Float64

	// optional logger -- slog.Default() if nil
	Log *slog.Logger

	// next states, swapped with Fibers after each step
	nxt [2]fiber.State
}

// New returns a simulator initialized from a copy of given params.
func New(pr *fiber.Params) *Sim {
	sm := &Sim{Params: *pr}
	sm.Init()
	return sm
}

// Init (re)initializes all state from Params: both fibers at rest with
// their stimulus, the key from the seed, and empty histories.
func (sm *Sim) Init() {
	pr := &sm.Params
	pr.Update()
	sm.Inhib = pr.Inhib()
	sm.Fibers[0] = fiber.NewState(pr.N, pr.Stim1(), pr.StimV)
	sm.Fibers[1] = fiber.NewState(pr.N, pr.Stim2(), pr.StimV)
	for i := range sm.Drives {
		sm.Drives[i] = make(fiber.State, pr.N)
		sm.nxt[i] = make(fiber.State, pr.N)
	}
	sm.Key = rkey.NewKey(pr.Seed)
	for i := range sm.Hists {
		sm.Hists[i] = etensor.NewFloat64([]int{pr.M, pr.N}, nil, []string{"Time", "Pos"})
	}
	sm.Phase = NotStarted
	sm.Cycle = 0
}

func (sm *Sim) logger() *slog.Logger {
	if sm.Log == nil {
		return slog.Default()
	}
	return sm.Log
}

// StepOnce advances both fibers by one time step and records the new
// states.  Returns false, doing nothing, if all M steps are already done.
func (sm *Sim) StepOnce() bool {
	pr := &sm.Params
	if sm.Cycle >= pr.M {
		sm.Phase = Done
		return false
	}
	sm.Phase = Stepping
	var ka, kb rkey.Key
	sm.Key, ka, kb = sm.Key.Split()

	// both drives from the pre-step snapshot, before either fiber changes
	sm.Inhib.Mutual(sm.Fibers[0], sm.Fibers[1], sm.Drives[0], sm.Drives[1])
	pr.Step(sm.nxt[0], sm.Fibers[0], sm.Drives[0], ka)
	pr.Step(sm.nxt[1], sm.Fibers[1], sm.Drives[1], kb)
	sm.Fibers, sm.nxt = sm.nxt, sm.Fibers

	sm.record(sm.Cycle)
	sm.Cycle++
	if sm.Cycle == pr.M {
		sm.Phase = Done
	}
	return true
}

// record copies the current fiber states into row s of the histories.
func (sm *Sim) record(s int) {
	for i, h := range sm.Hists {
		copy(Row(h, s), sm.Fibers[i])
	}
}

// Run runs all M steps and returns the two histories.  A Sim that has
// already stepped is re-initialized first, so every Run of the same
// params returns the same values.  This differs from continuing on
// from the final fiber states and key of the previous run: no state
// carries over between runs.
func (sm *Sim) Run() (*etensor.Float64, *etensor.Float64) {
	if sm.Phase != NotStarted {
		sm.Init()
	}
	lg := sm.logger()
	lg.Debug("run start", "N", sm.Params.N, "M", sm.Params.M, "lambda", sm.Params.Lambda, "seed", sm.Params.Seed)
	for sm.StepOnce() {
	}
	sm.Phase = Done
	lg.Debug("run done", "steps", sm.Cycle, "key", sm.Key.String())
	return sm.Hists[0], sm.Hists[1]
}

// SizeReport returns a string reporting the memory used by the state
// and history buffers.
func (sm *Sim) SizeReport() string {
	pr := &sm.Params
	var b strings.Builder
	stMem := 3 * len(sm.Fibers) * pr.N * 8
	hMem := 0
	for _, h := range sm.Hists {
		hMem += 8 * h.Len()
	}
	fmt.Fprintf(&b, "%14s:\t Samples: %d\t StateMem: %v\n", "Fibers", pr.N, (datasize.ByteSize)(stMem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Steps: %d\t HistMem: %v\n", "Histories", pr.M, (datasize.ByteSize)(hMem).HumanReadable())
	return b.String()
}
