// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "testing"

func TestParseMethodBody(t *testing.T) {
	// method=1, max_stack=2, local_count=3, init_scope_depth=0,
	// max_scope_depth=1, code_length=2, code=[0x02,0x47] (nop, returnvoid),
	// exception_count=0, trait_count=0.
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x00, 0x01, 0x02, 0x02, 0x47, 0x00, 0x00})
	mb, err := parseMethodBody(c)
	if err != nil {
		t.Fatalf("parseMethodBody returned error: %v", err)
	}
	if mb.Method != 1 || mb.MaxStack != 2 || mb.LocalCount != 3 {
		t.Errorf("parseMethodBody = %+v, unexpected header fields", mb)
	}
	if len(mb.Code) != 2 || mb.Code[0] != 0x02 || mb.Code[1] != 0x47 {
		t.Errorf("Code = %v, want [0x02 0x47]", mb.Code)
	}
}

func TestParseMethodBodyTruncatedCode(t *testing.T) {
	// code_length=10 but only one byte follows.
	c := NewCursor([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x0A, 0x00})
	if _, err := parseMethodBody(c); err == nil {
		t.Fatal("expected an error for truncated method body code")
	}
}

func TestParseException(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x00, 0x00})
	e, err := parseException(c)
	if err != nil {
		t.Fatalf("parseException returned error: %v", err)
	}
	if e.From != 1 || e.To != 2 || e.Target != 3 || e.ExcType != 0 || e.VarName != 0 {
		t.Errorf("parseException = %+v, unexpected fields", e)
	}
}
