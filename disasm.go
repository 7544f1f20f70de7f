// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

// OpCode is one decoded instruction: its raw byte, its mnemonic, and its
// operand list. Operands are either raw values (uint32, int32) when no
// handler applies or ran, or resolved strings/values when one did.
type OpCode struct {
	Opcode   uint8
	Name     string
	Operands []interface{}
}

func readOperands(c *Cursor, decoders []operandDecoder) ([]interface{}, error) {
	operands := make([]interface{}, 0, len(decoders))
	for _, decode := range decoders {
		v, err := decode(c)
		if err != nil {
			return nil, err
		}
		operands = append(operands, v)
	}
	return operands, nil
}

// applyHandler runs handler and reports whether it produced a usable
// result. A handler error or panic (e.g. an out-of-range pool index from a
// malformed file) is swallowed here per the disassembler's lenient
// operand-resolution policy; the caller keeps the raw operand list instead.
func applyHandler(handler operandHandler, f *File, mb *MethodBody, operands []interface{}) (resolved []interface{}, ok bool) {
	defer func() {
		if recover() != nil {
			resolved, ok = nil, false
		}
	}()
	result, err := handler(f, mb, operands)
	if err != nil {
		return nil, false
	}
	return result, true
}

// readLookupSwitchTail appends lookupswitch's case_count+1 trailing s24
// case offsets to operands, given operands already holds
// [default_offset, case_count].
func readLookupSwitchTail(c *Cursor, operands []interface{}) ([]interface{}, error) {
	caseCount := operands[1].(uint32)
	for i := uint32(0); i < caseCount+1; i++ {
		v, err := c.S24()
		if err != nil {
			return nil, err
		}
		operands = append(operands, v)
	}
	return operands, nil
}

// Disassemble decodes mb's code blob into a sequence of instructions. It
// fails fatally on an unrecognised opcode byte; a handler error for a
// recognised opcode is swallowed and the raw operand list is kept, so a
// malformed program still disassembles as far as possible.
func (mb *MethodBody) Disassemble(f *File) ([]OpCode, error) {
	c := NewCursor(mb.Code)
	var result []OpCode

	for !c.Done() {
		opByte, err := c.U8()
		if err != nil {
			return nil, err
		}
		entry, ok := opcodeTable[opByte]
		if !ok {
			return nil, &BadOpcode{Byte: opByte}
		}

		operands, err := readOperands(c, entry.Operands)
		if err != nil {
			return nil, err
		}
		if entry.Name == opLookupSwitch {
			operands, err = readLookupSwitchTail(c, operands)
			if err != nil {
				return nil, err
			}
		}

		if entry.Handler != nil {
			if resolved, ok := applyHandler(entry.Handler, f, mb, operands); ok {
				operands = resolved
			}
		}

		result = append(result, OpCode{Opcode: opByte, Name: entry.Name, Operands: operands})
	}

	return result, nil
}

// StripOperands walks mb's code the same way Disassemble does but discards
// operand values, returning only the sequence of opcode bytes. It still
// consumes lookupswitch's variable-length tail to stay in sync with the
// instruction stream.
func (mb *MethodBody) StripOperands() ([]byte, error) {
	c := NewCursor(mb.Code)
	stripped := make([]byte, 0, len(mb.Code))

	for !c.Done() {
		opByte, err := c.U8()
		if err != nil {
			return nil, err
		}
		entry, ok := opcodeTable[opByte]
		if !ok {
			return nil, &BadOpcode{Byte: opByte}
		}
		stripped = append(stripped, opByte)

		operands, err := readOperands(c, entry.Operands)
		if err != nil {
			return nil, err
		}
		if entry.Name == opLookupSwitch {
			if _, err := readLookupSwitchTail(c, operands); err != nil {
				return nil, err
			}
		}
	}

	return stripped, nil
}
