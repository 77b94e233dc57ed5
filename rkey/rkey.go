// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rkey provides counter-based random keys: small immutable values
from which random numbers are derived as pure functions, and which are
split into new independent keys by a fixed mixing rule.

A Key never changes: drawing from it twice gives the same numbers, and
splitting the same Key always gives the same children.  This makes a whole
simulation bit-reproducible from a single integer seed, regardless of the
order in which sub-streams are consumed.

Derivation uses the splitmix64 finalizer to fold a counter into the two
64-bit key words.  Numbers are drawn from a math/rand/v2 PCG generator
seeded with the two key words.
*/
package rkey

import (
	"fmt"
	"math/rand/v2"
)

// golden is the splitmix64 increment (2^64 / phi).
const golden = 0x9e3779b97f4a7c15

// Key is a counter-based random key.  The zero Key is valid.
type Key [2]uint64

// NewKey returns the root key for given seed.
func NewKey(seed int64) Key {
	return Key{0, uint64(seed)}
}

// Mix is the splitmix64 finalizer.
func Mix(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Fold derives the child key at counter position ctr.
// Different counters give statistically independent children.
func (k Key) Fold(ctr uint64) Key {
	a := Mix(k[0] ^ Mix(k[1]+ctr*golden))
	b := Mix(k[1] ^ Mix(a+ctr+golden))
	return Key{a, b}
}

// Split returns the replacement for this key plus two sub-keys,
// i.e., Fold(0), Fold(1), Fold(2).
func (k Key) Split() (next, a, b Key) {
	ks := k.SplitN(3)
	return ks[0], ks[1], ks[2]
}

// SplitN returns n child keys, Fold(0) .. Fold(n-1).
func (k Key) SplitN(n int) []Key {
	ks := make([]Key, n)
	for i := range ks {
		ks[i] = k.Fold(uint64(i))
	}
	return ks
}

// Rand returns a new generator whose stream is fully determined by the key.
func (k Key) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(k[0], k[1]))
}

// Normal returns a standard normal value determined by the key.
// Repeated calls on the same key return the same value.
func (k Key) Normal() float64 {
	return k.Rand().NormFloat64()
}

// Normals returns n standard normal values drawn in sequence from the key stream.
func (k Key) Normals(n int) []float64 {
	rnd := k.Rand()
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = rnd.NormFloat64()
	}
	return vs
}

func (k Key) String() string {
	return fmt.Sprintf("%016x:%016x", k[0], k[1])
}
