// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

// Trait kinds, the low nibble of a trait's raw kind byte.
const (
	TraitKindSlot     = 0x00
	TraitKindMethod   = 0x01
	TraitKindGetter   = 0x02
	TraitKindSetter   = 0x03
	TraitKindClass    = 0x04
	TraitKindFunction = 0x05
	TraitKindConst    = 0x06
)

var traitKindNames = map[uint8]string{
	TraitKindSlot:     "Slot",
	TraitKindMethod:   "Method",
	TraitKindGetter:   "Getter",
	TraitKindSetter:   "Setter",
	TraitKindClass:    "Class",
	TraitKindFunction: "Function",
	TraitKindConst:    "Const",
}

// Trait attribute bits, the high nibble of a trait's raw kind byte.
const (
	TraitAttrFinal    = 0x01
	TraitAttrOverride = 0x02
	TraitAttrMetadata = 0x04
)

// TraitData is the closed variant enumeration for the four trait data
// shapes: Slot/Const share a shape, Class, Function, and Method/Getter/
// Setter each have their own.
type TraitData interface {
	traitData()
}

// SlotTrait backs the Slot and Const trait kinds.
type SlotTrait struct {
	SlotID   uint32
	TypeName uint32
	VIndex   uint32
	VKind    uint8
}

func (SlotTrait) traitData() {}

// ClassTrait backs the Class trait kind.
type ClassTrait struct {
	SlotID     uint32
	ClassIndex uint32
}

func (ClassTrait) traitData() {}

// FunctionTrait backs the Function trait kind.
type FunctionTrait struct {
	SlotID       uint32
	FunctionInfo uint32
}

func (FunctionTrait) traitData() {}

// MethodTrait backs the Method, Getter, and Setter trait kinds.
type MethodTrait struct {
	DispID     uint32
	MethodInfo uint32
}

func (MethodTrait) traitData() {}

// Trait is a named slot/method/getter/setter/class/function/const attached
// to an Instance, Class, Script, or MethodBody.
type Trait struct {
	Name     uint32
	RawKind  uint8
	Data     TraitData
	Metadata []uint32
}

// Kind returns the low nibble of RawKind, selecting Data's variant.
func (t Trait) Kind() uint8 {
	return t.RawKind & 0x0F
}

// Attr returns the high nibble of RawKind, the attribute bitmask.
func (t Trait) Attr() uint8 {
	return (t.RawKind >> 4) & 0x0F
}

func parseTrait(c *Cursor) (Trait, error) {
	name, err := c.U30()
	if err != nil {
		return Trait{}, err
	}
	if name == 0 {
		return Trait{}, &BadValue{Msg: "Invalid trait name", Val: name}
	}
	rawKind, err := c.U8()
	if err != nil {
		return Trait{}, err
	}
	kindLow := rawKind & 0x0F
	if _, ok := traitKindNames[kindLow]; !ok {
		return Trait{}, &BadValue{Msg: "Invalid trait kind", Val: uint32(kindLow)}
	}

	var data TraitData
	switch kindLow {
	case TraitKindSlot, TraitKindConst:
		slotID, err := c.U30()
		if err != nil {
			return Trait{}, err
		}
		typeName, err := c.U30()
		if err != nil {
			return Trait{}, err
		}
		vIndex, err := c.U30()
		if err != nil {
			return Trait{}, err
		}
		var vKind uint8
		if vIndex != 0 {
			vKind, err = c.U8()
			if err != nil {
				return Trait{}, err
			}
		}
		data = SlotTrait{SlotID: slotID, TypeName: typeName, VIndex: vIndex, VKind: vKind}

	case TraitKindClass:
		slotID, err := c.U30()
		if err != nil {
			return Trait{}, err
		}
		classIndex, err := c.U30()
		if err != nil {
			return Trait{}, err
		}
		data = ClassTrait{SlotID: slotID, ClassIndex: classIndex}

	case TraitKindFunction:
		slotID, err := c.U30()
		if err != nil {
			return Trait{}, err
		}
		functionInfo, err := c.U30()
		if err != nil {
			return Trait{}, err
		}
		data = FunctionTrait{SlotID: slotID, FunctionInfo: functionInfo}

	case TraitKindMethod, TraitKindGetter, TraitKindSetter:
		dispID, err := c.U30()
		if err != nil {
			return Trait{}, err
		}
		methodInfo, err := c.U30()
		if err != nil {
			return Trait{}, err
		}
		data = MethodTrait{DispID: dispID, MethodInfo: methodInfo}
	}

	var metadata []uint32
	if (rawKind>>4)&TraitAttrMetadata != 0 {
		metadataCount, err := c.U30()
		if err != nil {
			return Trait{}, err
		}
		metadata = make([]uint32, 0, metadataCount)
		for i := uint32(0); i < metadataCount; i++ {
			idx, err := c.U30()
			if err != nil {
				return Trait{}, err
			}
			metadata = append(metadata, idx)
		}
	}

	return Trait{Name: name, RawKind: rawKind, Data: data, Metadata: metadata}, nil
}
