// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "math"

// Namespace kinds, per the AVM2 ABC format.
const (
	NamespaceKindPrivateNs          = 0x05
	NamespaceKindNamespace          = 0x08
	NamespaceKindPackageNamespace   = 0x16
	NamespaceKindPackageInternalNs  = 0x17
	NamespaceKindProtectedNamespace = 0x18
	NamespaceKindExplicitNamespace  = 0x19
	NamespaceKindStaticProtectedNs  = 0x1A
)

// namespaceKindNames mirrors the teacher's dataDirMap-style lookup table in
// pe.go: a flat map from a small enum to its human-readable tag.
var namespaceKindNames = map[uint8]string{
	NamespaceKindPrivateNs:          "PrivateNs",
	NamespaceKindNamespace:          "Namespace",
	NamespaceKindPackageNamespace:   "PackageNamespace",
	NamespaceKindPackageInternalNs:  "PackageInternalNs",
	NamespaceKindProtectedNamespace: "ProtectedNamespace",
	NamespaceKindExplicitNamespace:  "ExplicitNamespace",
	NamespaceKindStaticProtectedNs:  "StaticProtectedNs",
}

// namespaceKindName returns the tag name for a namespace kind byte, or "" if unknown.
func namespaceKindName(kind uint8) string {
	return namespaceKindNames[kind]
}

// Namespace is a single entry of the namespace pool: a kind tag and an
// index into the string pool naming it.
type Namespace struct {
	Kind uint8
	Name uint32
}

// NamespaceSet is an ordered list of indices into the namespace pool. No
// entry may be the reserved index zero.
type NamespaceSet []uint32

// ConstantPool holds the seven pools decoded from the constant-pool section
// of an ABC file, each carrying a reserved, spec-defined zero-th element.
// Pools are built once during parsing and never mutated afterward; callers
// dereference them only through the indices carried by higher sections.
type ConstantPool struct {
	Ints          []int32
	UInts         []uint32
	Doubles       []float64
	Strings       []string
	Namespaces    []Namespace
	NamespaceSets []NamespaceSet
	Multinames    []Multiname
}

func newConstantPool() *ConstantPool {
	return &ConstantPool{
		Ints:          []int32{0},
		UInts:         []uint32{0},
		Doubles:       []float64{math.NaN()},
		Strings:       []string{""},
		Namespaces:    []Namespace{{Kind: 0, Name: 0}},
		NamespaceSets: []NamespaceSet{{}},
		Multinames:    []Multiname{&NullMultiname{}},
	}
}

// parseConstantPool decodes the seven pools in their fixed wire order. Each
// pool is a u30 count followed by count-1 entries; a count of 0 leaves the
// pool holding only its sentinel.
func parseConstantPool(c *Cursor) (*ConstantPool, error) {
	pool := newConstantPool()

	intCount, err := c.U30()
	if err != nil {
		return nil, &ParseError{Msg: "reading int pool count", Offset: c.Offset(), Err: err}
	}
	for i := uint32(1); i < intCount; i++ {
		v, err := c.S32()
		if err != nil {
			return nil, &ParseError{Msg: "reading int pool entry", Offset: c.Offset(), Err: err}
		}
		pool.Ints = append(pool.Ints, v)
	}

	uintCount, err := c.U30()
	if err != nil {
		return nil, &ParseError{Msg: "reading uint pool count", Offset: c.Offset(), Err: err}
	}
	for i := uint32(1); i < uintCount; i++ {
		v, err := c.U32()
		if err != nil {
			return nil, &ParseError{Msg: "reading uint pool entry", Offset: c.Offset(), Err: err}
		}
		pool.UInts = append(pool.UInts, v)
	}

	doubleCount, err := c.U30()
	if err != nil {
		return nil, &ParseError{Msg: "reading double pool count", Offset: c.Offset(), Err: err}
	}
	for i := uint32(1); i < doubleCount; i++ {
		v, err := c.F64()
		if err != nil {
			return nil, &ParseError{Msg: "reading double pool entry", Offset: c.Offset(), Err: err}
		}
		pool.Doubles = append(pool.Doubles, v)
	}

	stringCount, err := c.U30()
	if err != nil {
		return nil, &ParseError{Msg: "reading string pool count", Offset: c.Offset(), Err: err}
	}
	for i := uint32(1); i < stringCount; i++ {
		v, err := c.String()
		if err != nil {
			return nil, &ParseError{Msg: "reading string pool entry", Offset: c.Offset(), Err: err}
		}
		pool.Strings = append(pool.Strings, v)
	}

	nsCount, err := c.U30()
	if err != nil {
		return nil, &ParseError{Msg: "reading namespace pool count", Offset: c.Offset(), Err: err}
	}
	for i := uint32(1); i < nsCount; i++ {
		ns, err := parseNamespace(c)
		if err != nil {
			return nil, &ParseError{Msg: "reading namespace pool entry", Offset: c.Offset(), Err: err}
		}
		pool.Namespaces = append(pool.Namespaces, ns)
	}

	nssCount, err := c.U30()
	if err != nil {
		return nil, &ParseError{Msg: "reading namespace-set pool count", Offset: c.Offset(), Err: err}
	}
	for i := uint32(1); i < nssCount; i++ {
		nss, err := parseNamespaceSet(c)
		if err != nil {
			return nil, &ParseError{Msg: "reading namespace-set pool entry", Offset: c.Offset(), Err: err}
		}
		pool.NamespaceSets = append(pool.NamespaceSets, nss)
	}

	mnCount, err := c.U30()
	if err != nil {
		return nil, &ParseError{Msg: "reading multiname pool count", Offset: c.Offset(), Err: err}
	}
	for i := uint32(1); i < mnCount; i++ {
		mn, err := parseMultiname(c)
		if err != nil {
			return nil, &ParseError{Msg: "reading multiname pool entry", Offset: c.Offset(), Err: err}
		}
		pool.Multinames = append(pool.Multinames, mn)
	}

	return pool, nil
}

func parseNamespace(c *Cursor) (Namespace, error) {
	kind, err := c.U8()
	if err != nil {
		return Namespace{}, err
	}
	name, err := c.U30()
	if err != nil {
		return Namespace{}, err
	}
	return Namespace{Kind: kind, Name: name}, nil
}

func parseNamespaceSet(c *Cursor) (NamespaceSet, error) {
	count, err := c.U30()
	if err != nil {
		return nil, err
	}
	result := make(NamespaceSet, 0, count)
	for i := uint32(0); i < count; i++ {
		entry, err := c.U30()
		if err != nil {
			return nil, err
		}
		if entry == 0 {
			return nil, &BadValue{Msg: "Entry must not be zero", Val: entry}
		}
		result = append(result, entry)
	}
	return result, nil
}
