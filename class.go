// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

// Instance flag bits.
const (
	InstanceFlagClassSealed      = 0x01
	InstanceFlagClassFinal       = 0x02
	InstanceFlagClassInterface   = 0x04
	InstanceFlagClassProtectedNs = 0x08
)

// Instance is one entry of the instance pool: the class's name, its
// superclass, its interfaces, its constructor, and its instance traits.
type Instance struct {
	Name           uint32
	SuperName      uint32
	Flags          uint8
	HasProtectedNs bool
	ProtectedNs    uint32
	Interfaces     []uint32
	Iinit          uint32
	Traits         []Trait
}

func parseInstance(c *Cursor) (Instance, error) {
	name, err := c.U30()
	if err != nil {
		return Instance{}, err
	}
	superName, err := c.U30()
	if err != nil {
		return Instance{}, err
	}
	flags, err := c.U8()
	if err != nil {
		return Instance{}, err
	}

	var hasProtectedNs bool
	var protectedNs uint32
	if flags&InstanceFlagClassProtectedNs != 0 {
		hasProtectedNs = true
		protectedNs, err = c.U30()
		if err != nil {
			return Instance{}, err
		}
	}

	intrfCount, err := c.U30()
	if err != nil {
		return Instance{}, err
	}
	interfaces := make([]uint32, 0, intrfCount)
	for i := uint32(0); i < intrfCount; i++ {
		intrf, err := c.U30()
		if err != nil {
			return Instance{}, err
		}
		if intrf == 0 {
			return Instance{}, &BadValue{Msg: "Invalid interface", Val: intrf}
		}
		interfaces = append(interfaces, intrf)
	}

	iinit, err := c.U30()
	if err != nil {
		return Instance{}, err
	}

	traitCount, err := c.U30()
	if err != nil {
		return Instance{}, err
	}
	traits := make([]Trait, 0, traitCount)
	for i := uint32(0); i < traitCount; i++ {
		t, err := parseTrait(c)
		if err != nil {
			return Instance{}, err
		}
		traits = append(traits, t)
	}

	return Instance{
		Name:           name,
		SuperName:      superName,
		Flags:          flags,
		HasProtectedNs: hasProtectedNs,
		ProtectedNs:    protectedNs,
		Interfaces:     interfaces,
		Iinit:          iinit,
		Traits:         traits,
	}, nil
}

// Class is one entry of the class pool, paired by index with the instance
// pool entry of the same index: the class's static initializer and its
// static (class) traits.
type Class struct {
	Cinit  uint32
	Traits []Trait
}

func parseClass(c *Cursor) (Class, error) {
	cinit, err := c.U30()
	if err != nil {
		return Class{}, err
	}
	traitCount, err := c.U30()
	if err != nil {
		return Class{}, err
	}
	traits := make([]Trait, 0, traitCount)
	for i := uint32(0); i < traitCount; i++ {
		t, err := parseTrait(c)
		if err != nil {
			return Class{}, err
		}
		traits = append(traits, t)
	}
	return Class{Cinit: cinit, Traits: traits}, nil
}
