// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package oscpair is the overall repository for the coupled noisy oscillator
fiber simulation, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* rkey: counter-based random keys, split deterministically once per step so
that a run is bit-reproducible from a single seed.

* interinhib: mutual inhibition between two fibers, as a drive proportional to
the other fiber's potential offset from the inhibitory reversal potential.

* fiber: the simulation params and the per-fiber update: Lax-Friedrichs
diffusion on a ring of samples, minus the inhibitory drive, with random
noise written into both boundary samples.

* osc: the simulator that owns both fibers and the random key, and records
the full [Time, Pos] history of each fiber.

* histplot: renders a history as a heatmap with a color bar.

* examples/oscpair: the runnable program, which loads params from TOML,
runs the simulation, and saves one heatmap per fiber.
*/
package oscpair
