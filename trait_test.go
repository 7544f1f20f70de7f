// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "testing"

func TestParseTraitSlot(t *testing.T) {
	// name=1, kind=Slot(0x00), slot_id=2, type_name=3, vindex=0 (no vkind).
	c := NewCursor([]byte{0x01, TraitKindSlot, 0x02, 0x03, 0x00})
	tr, err := parseTrait(c)
	if err != nil {
		t.Fatalf("parseTrait returned error: %v", err)
	}
	slot, ok := tr.Data.(SlotTrait)
	if !ok {
		t.Fatalf("parseTrait Data = %T, want SlotTrait", tr.Data)
	}
	if slot.SlotID != 2 || slot.TypeName != 3 || slot.VIndex != 0 {
		t.Errorf("SlotTrait = %+v, want {SlotID:2 TypeName:3 VIndex:0}", slot)
	}
}

func TestParseTraitRejectsZeroName(t *testing.T) {
	c := NewCursor([]byte{0x00, TraitKindSlot, 0x00, 0x00, 0x00})
	if _, err := parseTrait(c); err == nil {
		t.Fatal("expected BadValue for a zero trait name")
	}
}

func TestParseTraitMethodWithMetadata(t *testing.T) {
	// name=1, kind=Method(0x01)|attr-metadata(0x04<<4), disp_id=2, method_info=3,
	// metadata_count=1, metadata_index=4.
	rawKind := uint8(TraitKindMethod) | (TraitAttrMetadata << 4)
	c := NewCursor([]byte{0x01, rawKind, 0x02, 0x03, 0x01, 0x04})
	tr, err := parseTrait(c)
	if err != nil {
		t.Fatalf("parseTrait returned error: %v", err)
	}
	mt, ok := tr.Data.(MethodTrait)
	if !ok {
		t.Fatalf("parseTrait Data = %T, want MethodTrait", tr.Data)
	}
	if mt.DispID != 2 || mt.MethodInfo != 3 {
		t.Errorf("MethodTrait = %+v, want {DispID:2 MethodInfo:3}", mt)
	}
	if len(tr.Metadata) != 1 || tr.Metadata[0] != 4 {
		t.Errorf("Metadata = %v, want [4]", tr.Metadata)
	}
}
