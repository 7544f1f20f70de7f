// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "testing"

func TestCursorU30(t *testing.T) {
	tests := []struct {
		in  []byte
		out uint32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x7F}, 0x7F},
		{[]byte{0xE5, 0x8E, 0x26}, 624485},
	}

	for _, tt := range tests {
		c := NewCursor(tt.in)
		got, err := c.U30()
		if err != nil {
			t.Fatalf("U30(%v) returned error: %v", tt.in, err)
		}
		if got != tt.out {
			t.Errorf("U30(%v) = %d, want %d", tt.in, got, tt.out)
		}
	}
}

func TestCursorU30ShortInput(t *testing.T) {
	c := NewCursor([]byte{0x80})
	if _, err := c.U30(); err == nil {
		t.Fatal("expected a ShortInput error, got nil")
	}
}

func TestCursorS32SignExtends(t *testing.T) {
	// 0xFFFFFFFF encoded as a five-byte AVM2 varint.
	c := NewCursor([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F})
	got, err := c.S32()
	if err != nil {
		t.Fatalf("S32 returned error: %v", err)
	}
	if got != -1 {
		t.Errorf("S32 = %d, want -1", got)
	}
}

func TestCursorS24SignExtends(t *testing.T) {
	// Relative branch target of an ifeq, per spec scenario 3.
	c := NewCursor([]byte{0xFB, 0xFF, 0xFF})
	got, err := c.S24()
	if err != nil {
		t.Fatalf("S24 returned error: %v", err)
	}
	if got != -5 {
		t.Errorf("S24 = %d, want -5", got)
	}
}

func TestCursorS24Positive(t *testing.T) {
	c := NewCursor([]byte{0x10, 0x00, 0x00})
	got, err := c.S24()
	if err != nil {
		t.Fatalf("S24 returned error: %v", err)
	}
	if got != 16 {
		t.Errorf("S24 = %d, want 16", got)
	}
}

func TestCursorString(t *testing.T) {
	// u30 length 5, bytes "hello".
	c := NewCursor([]byte{0x05, 'h', 'e', 'l', 'l', 'o'})
	got, err := c.String()
	if err != nil {
		t.Fatalf("String returned error: %v", err)
	}
	if got != "hello" {
		t.Errorf("String = %q, want %q", got, "hello")
	}
}

func TestCursorStringEmpty(t *testing.T) {
	c := NewCursor([]byte{0x00})
	got, err := c.String()
	if err != nil {
		t.Fatalf("String returned error: %v", err)
	}
	if got != "" {
		t.Errorf("String = %q, want empty", got)
	}
}

func TestCursorStringInvalidUTF8(t *testing.T) {
	c := NewCursor([]byte{0x01, 0xFF})
	got, err := c.String()
	if err != nil {
		t.Fatalf("String returned error: %v", err)
	}
	if got != "�" {
		t.Errorf("String = %q, want replacement character", got)
	}
}
