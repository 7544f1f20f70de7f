// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

// Script is one entry of the script pool: an initializer method index and
// the list of top-level traits the script exposes.
type Script struct {
	Init   uint32
	Traits []Trait
}

func parseScript(c *Cursor) (Script, error) {
	init, err := c.U30()
	if err != nil {
		return Script{}, err
	}
	traitCount, err := c.U30()
	if err != nil {
		return Script{}, err
	}
	traits := make([]Trait, 0, traitCount)
	for i := uint32(0); i < traitCount; i++ {
		t, err := parseTrait(c)
		if err != nil {
			return Script{}, err
		}
		traits = append(traits, t)
	}
	return Script{Init: init, Traits: traits}, nil
}
