// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import "errors"

var (
	// ErrGeometry means the fiber has too few samples to place both stimuli
	// and the two boundary samples at distinct indexes (N < 3).
	ErrGeometry = errors.New("fiber: degenerate geometry")

	// ErrStep means a non-positive spatial or time step.
	ErrStep = errors.New("fiber: non-positive step size")

	// ErrUnstable means Lambda = dt/dx^2 exceeds 0.5.
	ErrUnstable = errors.New("fiber: stability factor above 0.5")
)
