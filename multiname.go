// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

// MultinameKind is the one-byte tag distinguishing the seven multiname
// variants on the wire.
type MultinameKind uint8

// Multiname kind bytes, per the AVM2 ABC format. TypeName is undocumented
// but observed in real SWFs.
const (
	MultinameKindQName       MultinameKind = 0x07
	MultinameKindQNameA      MultinameKind = 0x0D
	MultinameKindRTQName     MultinameKind = 0x0F
	MultinameKindRTQNameA    MultinameKind = 0x10
	MultinameKindRTQNameL    MultinameKind = 0x11
	MultinameKindRTQNameLA   MultinameKind = 0x12
	MultinameKindMultiname   MultinameKind = 0x09
	MultinameKindMultinameA  MultinameKind = 0x0E
	MultinameKindMultinameL  MultinameKind = 0x1B
	MultinameKindMultinameLA MultinameKind = 0x1C
	MultinameKindTypeName    MultinameKind = 0x1D
)

var multinameKindNames = map[MultinameKind]string{
	MultinameKindQName:       "QName",
	MultinameKindQNameA:      "QNameA",
	MultinameKindRTQName:     "RTQName",
	MultinameKindRTQNameA:    "RTQNameA",
	MultinameKindRTQNameL:    "RTQNameL",
	MultinameKindRTQNameLA:   "RTQNameLA",
	MultinameKindMultiname:   "Multiname",
	MultinameKindMultinameA:  "MultinameA",
	MultinameKindMultinameL:  "MultinameL",
	MultinameKindMultinameLA: "MultinameLA",
	MultinameKindTypeName:    "TypeName",
}

// Multiname is the closed variant enumeration for the seven multiname
// shapes in §3 of the spec. Each concrete type carries exactly the fields
// its wire variant has; Kind identifies which one a value holds, so
// callers can type-switch on the concrete type or branch on Kind alone.
type Multiname interface {
	MultinameKind() MultinameKind
}

// NullMultiname is the reserved zero-th element of the multiname pool.
type NullMultiname struct{}

// MultinameKind implements Multiname.
func (*NullMultiname) MultinameKind() MultinameKind { return 0 }

// QName is the QName/QNameA variant: a namespace index and a name index.
type QName struct {
	Kind MultinameKind
	Ns   uint32
	Name uint32
}

// MultinameKind implements Multiname.
func (q *QName) MultinameKind() MultinameKind { return q.Kind }

// RTQName is the RTQName/RTQNameA variant: a name index, namespace
// resolved at runtime.
type RTQName struct {
	Kind MultinameKind
	Name uint32
}

// MultinameKind implements Multiname.
func (r *RTQName) MultinameKind() MultinameKind { return r.Kind }

// RTQNameL is the RTQNameL/RTQNameLA variant: both namespace and name
// resolved at runtime, no fields on the wire.
type RTQNameL struct {
	Kind MultinameKind
}

// MultinameKind implements Multiname.
func (r *RTQNameL) MultinameKind() MultinameKind { return r.Kind }

// MultinameMulti is the Multiname/MultinameA variant: a name index and a
// namespace-set index, which must not be zero.
type MultinameMulti struct {
	Kind  MultinameKind
	Name  uint32
	NsSet uint32
}

// MultinameKind implements Multiname.
func (m *MultinameMulti) MultinameKind() MultinameKind { return m.Kind }

// MultinameMultiL is the MultinameL/MultinameLA variant: a namespace-set
// index (must not be zero), name resolved at runtime.
type MultinameMultiL struct {
	Kind  MultinameKind
	NsSet uint32
}

// MultinameKind implements Multiname.
func (m *MultinameMultiL) MultinameKind() MultinameKind { return m.Kind }

// TypeName is the undocumented parameterized-type variant: a multiname
// index for the base name and a list of multiname indices for its type
// parameters.
type TypeName struct {
	Name   uint32
	Params []uint32
}

// MultinameKind implements Multiname.
func (*TypeName) MultinameKind() MultinameKind { return MultinameKindTypeName }

func parseMultiname(c *Cursor) (Multiname, error) {
	kindByte, err := c.U8()
	if err != nil {
		return nil, err
	}
	kind := MultinameKind(kindByte)
	if _, ok := multinameKindNames[kind]; !ok {
		return nil, &BadValue{Msg: "Unknown multiname", Val: uint32(kindByte)}
	}

	switch kind {
	case MultinameKindQName, MultinameKindQNameA:
		ns, err := c.U30()
		if err != nil {
			return nil, err
		}
		name, err := c.U30()
		if err != nil {
			return nil, err
		}
		return &QName{Kind: kind, Ns: ns, Name: name}, nil

	case MultinameKindRTQName, MultinameKindRTQNameA:
		name, err := c.U30()
		if err != nil {
			return nil, err
		}
		return &RTQName{Kind: kind, Name: name}, nil

	case MultinameKindRTQNameL, MultinameKindRTQNameLA:
		return &RTQNameL{Kind: kind}, nil

	case MultinameKindMultiname, MultinameKindMultinameA:
		name, err := c.U30()
		if err != nil {
			return nil, err
		}
		nsSet, err := c.U30()
		if err != nil {
			return nil, err
		}
		if nsSet == 0 {
			return nil, &BadValue{Msg: "Invalid ns_set", Val: nsSet}
		}
		return &MultinameMulti{Kind: kind, Name: name, NsSet: nsSet}, nil

	case MultinameKindMultinameL, MultinameKindMultinameLA:
		nsSet, err := c.U30()
		if err != nil {
			return nil, err
		}
		if nsSet == 0 {
			return nil, &BadValue{Msg: "Invalid ns_set", Val: nsSet}
		}
		return &MultinameMultiL{Kind: kind, NsSet: nsSet}, nil

	case MultinameKindTypeName:
		name, err := c.U30()
		if err != nil {
			return nil, err
		}
		count, err := c.U30()
		if err != nil {
			return nil, err
		}
		params := make([]uint32, 0, count)
		for i := uint32(0); i < count; i++ {
			p, err := c.U30()
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
		return &TypeName{Name: name, Params: params}, nil
	}

	// Unreachable: every kind in multinameKindNames is handled above.
	return nil, &BadValue{Msg: "Unknown multiname", Val: uint32(kindByte)}
}
