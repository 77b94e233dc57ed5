// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// OpenTOML reads params from a TOML file with the flat keys
// L, dx, dt, T, Cm, Rm, Ri, E_inh, g_inh, noise_amplitude, random_seed.
// Keys missing from the file keep their current values, so call Defaults first.
func (pr *Params) OpenTOML(fname string) error {
	md, err := toml.DecodeFile(fname, pr)
	if err != nil {
		return fmt.Errorf("fiber: reading %s: %w", fname, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return fmt.Errorf("fiber: %s: unknown keys %v", fname, und)
	}
	pr.Update()
	return nil
}

// ReadTOML reads params from TOML text.
func (pr *Params) ReadTOML(r io.Reader) error {
	if _, err := toml.NewDecoder(r).Decode(pr); err != nil {
		return fmt.Errorf("fiber: decoding params: %w", err)
	}
	pr.Update()
	return nil
}

// WriteTOML writes the params (not the derived values) as TOML.
func (pr *Params) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(pr)
}

// SaveTOML writes the params to a TOML file.
func (pr *Params) SaveTOML(fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := pr.WriteTOML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
