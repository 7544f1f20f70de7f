// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "testing"

func TestDisassembleLookupSwitch(t *testing.T) {
	code := []byte{
		0x1B,             // lookupswitch
		0x10, 0x00, 0x00, // default_offset = 16
		0x02,             // case_count = 2
		0x01, 0x00, 0x00, // case offset 0
		0x02, 0x00, 0x00, // case offset 1
		0x03, 0x00, 0x00, // case offset 2
	}
	mb := MethodBody{Code: code}
	f := &File{Pool: newConstantPool()}

	ops, err := mb.Disassemble(f)
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("len(ops) = %d, want 1", len(ops))
	}
	op := ops[0]
	if op.Name != "lookupswitch" {
		t.Errorf("Name = %q, want lookupswitch", op.Name)
	}
	want := []interface{}{int32(16), uint32(2), int32(1), int32(2), int32(3)}
	if len(op.Operands) != len(want) {
		t.Fatalf("Operands = %v, want %v", op.Operands, want)
	}
	for i, w := range want {
		if op.Operands[i] != w {
			t.Errorf("Operands[%d] = %v (%T), want %v (%T)", i, op.Operands[i], op.Operands[i], w, w)
		}
	}
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	mb := MethodBody{Code: []byte{0xFF}}
	f := &File{Pool: newConstantPool()}
	_, err := mb.Disassemble(f)
	if err == nil {
		t.Fatal("expected a BadOpcode error")
	}
	if _, ok := err.(*BadOpcode); !ok {
		t.Errorf("err = %T, want *BadOpcode", err)
	}
}

func TestStripOperandsMatchesDisassemble(t *testing.T) {
	// nop; pushbyte 5; returnvoid.
	code := []byte{0x02, 0x24, 0x05, 0x47}
	mb := MethodBody{Code: code}
	f := &File{Pool: newConstantPool()}

	ops, err := mb.Disassemble(f)
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}
	stripped, err := mb.StripOperands()
	if err != nil {
		t.Fatalf("StripOperands returned error: %v", err)
	}
	if len(stripped) != len(ops) {
		t.Fatalf("len(stripped) = %d, len(ops) = %d", len(stripped), len(ops))
	}
	for i, op := range ops {
		if stripped[i] != op.Opcode {
			t.Errorf("stripped[%d] = 0x%x, want 0x%x", i, stripped[i], op.Opcode)
		}
	}
}

func TestHandlerErrorFallsBackToRawOperands(t *testing.T) {
	// pushstring with an out-of-range string index: handler panics/errors,
	// raw u30 operand should be kept.
	code := []byte{0x2C, 0x05}
	mb := MethodBody{Code: code}
	f := &File{Pool: newConstantPool()}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Disassemble panicked instead of swallowing the handler error: %v", r)
		}
	}()

	ops, err := mb.Disassemble(f)
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}
	if ops[0].Operands[0] != uint32(5) {
		t.Errorf("Operands[0] = %v, want raw index 5", ops[0].Operands[0])
	}
}
