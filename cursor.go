// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import (
	"math"
	"strings"
)

// Cursor is a read-only, boundary-checked reader over an immutable byte
// slice. It never mutates the slice it was built on; advancing the cursor
// only moves the internal offset. Every reader fails with a *ShortInput
// wrapped in an error when the buffer does not hold enough bytes.
type Cursor struct {
	data []byte
	pos  uint32
}

// NewCursor returns a Cursor positioned at offset 0 of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the current read position.
func (c *Cursor) Offset() uint32 {
	return c.pos
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() uint32 {
	return uint32(len(c.data))
}

// Done reports whether the cursor has consumed the whole buffer.
func (c *Cursor) Done() bool {
	return c.pos >= uint32(len(c.data))
}

func (c *Cursor) short() error {
	return &ShortInput{Offset: c.pos}
}

// Bytes reads n raw bytes and advances the cursor past them.
func (c *Cursor) Bytes(n uint32) ([]byte, error) {
	end := c.pos + n
	if end < c.pos || end > uint32(len(c.data)) {
		return nil, c.short()
	}
	b := c.data[c.pos:end]
	c.pos = end
	return b, nil
}

// U8 reads an unsigned 8-bit integer.
func (c *Cursor) U8() (uint8, error) {
	if c.pos >= uint32(len(c.data)) {
		return 0, c.short()
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

// U16 reads a little-endian unsigned 16-bit integer.
func (c *Cursor) U16() (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

// F64 reads a little-endian IEEE-754 double.
func (c *Cursor) F64() (float64, error) {
	b, err := c.Bytes(8)
	if err != nil {
		return 0, err
	}
	var bits uint64
	for i := 0; i < 8; i++ {
		bits |= uint64(b[i]) << (8 * uint(i))
	}
	return math.Float64frombits(bits), nil
}

// U32 reads the AVM2 variable-length unsigned 32-bit encoding: up to five
// bytes, low 7 bits of each byte carry value, the high bit signals
// continuation. The fifth byte contributes only its low 4 bits, to bit
// positions 28-31; anything above that is discarded.
func (c *Cursor) U32() (uint32, error) {
	b0, err := c.U8()
	if err != nil {
		return 0, err
	}
	result := uint32(b0)
	if result&0x80 == 0 {
		return result, nil
	}

	b1, err := c.U8()
	if err != nil {
		return 0, err
	}
	result = result&0x7F | uint32(b1)<<7
	if result&0x4000 == 0 {
		return result, nil
	}

	b2, err := c.U8()
	if err != nil {
		return 0, err
	}
	result = result&0x3FFF | uint32(b2)<<14
	if result&0x200000 == 0 {
		return result, nil
	}

	b3, err := c.U8()
	if err != nil {
		return 0, err
	}
	result = result&0x1FFFFF | uint32(b3)<<21
	if result&0x10000000 == 0 {
		return result, nil
	}

	b4, err := c.U8()
	if err != nil {
		return 0, err
	}
	return result&0x0FFFFFFF | uint32(b4&0x0F)<<28, nil
}

// U30 reads a u32 and masks it to 30 meaningful bits.
func (c *Cursor) U30() (uint32, error) {
	v, err := c.U32()
	if err != nil {
		return 0, err
	}
	return v & 0x3FFFFFFF, nil
}

// S32 reads a u32 and reinterprets it as a signed 32-bit value: if bit 31
// is set the result is negative. This corrects the reference decoder's
// sign-extension bug noted in spec.md's open questions, where masking a
// 32-bit value against a 64-bit constant is always a no-op.
func (c *Cursor) S32() (int32, error) {
	v, err := c.U32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// S24 reads three little-endian raw bytes and sign-extends them from 24 to
// 32 bits. Branch targets (ifeq, jump, lookupswitch's offsets, ...) need
// this to come out negative when bit 23 is set; the reference decoder
// returns the unsigned 24-bit value, which spec.md flags as a bug.
func (c *Cursor) S24() (int32, error) {
	b, err := c.Bytes(3)
	if err != nil {
		return 0, err
	}
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	if v&0x800000 != 0 {
		v |= 0xFF000000
	}
	return int32(v), nil
}

// String reads a u30 length followed by that many bytes, decoded as UTF-8
// with invalid sequences replaced rather than rejected. A length of 0
// returns the empty string without reading further.
func (c *Cursor) String() (string, error) {
	l, err := c.U30()
	if err != nil {
		return "", err
	}
	if l == 0 {
		return "", nil
	}
	b, err := c.Bytes(l)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(b), "�"), nil
}
