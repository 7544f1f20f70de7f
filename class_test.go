// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "testing"

func TestParseInstanceNoProtectedNs(t *testing.T) {
	// name=1, super_name=2, flags=0, interface_count=0, iinit=3, trait_count=0.
	c := NewCursor([]byte{0x01, 0x02, 0x00, 0x00, 0x03, 0x00})
	inst, err := parseInstance(c)
	if err != nil {
		t.Fatalf("parseInstance returned error: %v", err)
	}
	if inst.Name != 1 || inst.SuperName != 2 || inst.Iinit != 3 || inst.HasProtectedNs {
		t.Errorf("parseInstance = %+v, unexpected fields", inst)
	}
}

func TestParseInstanceRejectsZeroInterface(t *testing.T) {
	// name=1, super_name=0, flags=0, interface_count=1, interface=0.
	c := NewCursor([]byte{0x01, 0x00, 0x00, 0x01, 0x00})
	if _, err := parseInstance(c); err == nil {
		t.Fatal("expected BadValue for a zero interface entry")
	}
}

func TestParseClass(t *testing.T) {
	// cinit=1, trait_count=0.
	c := NewCursor([]byte{0x01, 0x00})
	cls, err := parseClass(c)
	if err != nil {
		t.Fatalf("parseClass returned error: %v", err)
	}
	if cls.Cinit != 1 || len(cls.Traits) != 0 {
		t.Errorf("parseClass = %+v, unexpected fields", cls)
	}
}
