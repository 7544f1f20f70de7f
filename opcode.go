// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "fmt"

// operandDecoder reads one raw operand value from c.
type operandDecoder func(c *Cursor) (interface{}, error)

func decodeU8(c *Cursor) (interface{}, error) {
	v, err := c.U8()
	return uint32(v), err
}

func decodeU30(c *Cursor) (interface{}, error) {
	return c.U30()
}

func decodeS24(c *Cursor) (interface{}, error) {
	return c.S24()
}

// operandHandler rewrites a decoded operand list by substituting pool
// lookups for raw indices. It is applied only after lookupswitch's
// variable-length tail (if any) has been appended to operands. mb is the
// method body currently being disassembled, needed only by newcatch's
// handler to resolve against that body's exception table.
type operandHandler func(f *File, mb *MethodBody, operands []interface{}) ([]interface{}, error)

func handlerString(f *File, mb *MethodBody, operands []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(operands))
	for i, o := range operands {
		out[i] = f.Pool.Strings[o.(uint32)]
	}
	return out, nil
}

func handlerUint(f *File, mb *MethodBody, operands []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(operands))
	for i, o := range operands {
		out[i] = f.Pool.UInts[o.(uint32)]
	}
	return out, nil
}

func handlerInt(f *File, mb *MethodBody, operands []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(operands))
	for i, o := range operands {
		out[i] = f.Pool.Ints[o.(uint32)]
	}
	return out, nil
}

func handlerDouble(f *File, mb *MethodBody, operands []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(operands))
	for i, o := range operands {
		out[i] = f.Pool.Doubles[o.(uint32)]
	}
	return out, nil
}

func handlerMultiname(f *File, mb *MethodBody, operands []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(operands))
	for i, o := range operands {
		out[i] = f.ResolveMultiname(o.(uint32))
	}
	return out, nil
}

func handlerNamespace(f *File, mb *MethodBody, operands []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(operands))
	for i, o := range operands {
		idx := o.(uint32)
		ns := f.Pool.Namespaces[idx]
		out[i] = fmt.Sprintf("%s: %d", namespaceKindName(ns.Kind), ns.Name)
	}
	return out, nil
}

func handlerMethodInfo(f *File, mb *MethodBody, operands []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(operands))
	for i, o := range operands {
		idx := o.(uint32)
		out[i] = f.Methods[idx].Signature(f)
	}
	return out, nil
}

func handlerException(f *File, mb *MethodBody, operands []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(operands))
	for i, o := range operands {
		idx := o.(uint32)
		out[i] = mb.Exceptions[idx].Describe(f)
	}
	return out, nil
}

func handlerMultinameAndArg(f *File, mb *MethodBody, operands []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(operands))
	copy(out, operands)
	out[0] = f.ResolveMultiname(operands[0].(uint32))
	return out, nil
}

func handlerMethodInfoAndArg(f *File, mb *MethodBody, operands []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(operands))
	copy(out, operands)
	idx := operands[0].(uint32)
	if int(idx) < len(f.Methods) {
		out[0] = f.Methods[idx].Signature(f)
	}
	return out, nil
}

// opcodeEntry is one row of the opcode table: a mnemonic, the ordered list
// of raw operand decoders, and an optional handler that resolves those raw
// operands against the parsed unit's pools.
type opcodeEntry struct {
	Name     string
	Operands []operandDecoder
	Handler  operandHandler
}

// opcodeTable is the static, read-only table of every recognised AVM2
// opcode byte. It mirrors the reference decoder's instruction table,
// including the documented instructions and the undocumented ones observed
// in real SWFs (named with an OP_ prefix). The reference lists 0x84 twice
// with the same entry; here it appears once.
var opcodeTable = map[uint8]opcodeEntry{
	0x01: {Name: "OP_bkpt"},
	0x22: {Name: "OP_pushconstant"},
	0x35: {Name: "OP_li8"},
	0x36: {Name: "OP_li16"},
	0x37: {Name: "OP_li32"},
	0x38: {Name: "OP_lf32"},
	0x39: {Name: "OP_lf64"},
	0x3A: {Name: "OP_si8"},
	0x3B: {Name: "OP_si16"},
	0x3C: {Name: "OP_si32"},
	0x3D: {Name: "OP_sf32"},
	0x3E: {Name: "OP_sf64"},
	0x4B: {Name: "OP_callsuperid"},
	0x4D: {Name: "OP_callinterface"},
	0x50: {Name: "OP_sxi1"},
	0x51: {Name: "OP_sxi8"},
	0x52: {Name: "OP_sxi16"},
	0x53: {Name: "OP_applytype", Operands: []operandDecoder{decodeU30}},
	0x5F: {Name: "OP_finddef", Operands: []operandDecoder{decodeU30}},
	0x67: {Name: "OP_getouterscope"},
	0x6B: {Name: "OP_deletepropertylate"},
	0x81: {Name: "OP_coerce_b"},
	0x83: {Name: "OP_coerce_i"},
	0x84: {Name: "OP_coerce_d"},
	0x88: {Name: "OP_coerce_u"},
	0x89: {Name: "OP_coerce_o"},
	0x9A: {Name: "OP_concat"},
	0x9B: {Name: "OP_add_d"},
	0xF2: {Name: "OP_bkptline", Operands: []operandDecoder{decodeU30}},
	0xF3: {Name: "OP_timestamp"},

	0xA0: {Name: "add"},
	0xC5: {Name: "add_i"},
	0x86: {Name: "astype"},
	0x87: {Name: "astypelate"},
	0xA8: {Name: "bitand"},
	0x97: {Name: "bitnot"},
	0xA9: {Name: "bitor"},
	0xAA: {Name: "bitxor"},
	0x41: {Name: "call", Operands: []operandDecoder{decodeU30}},
	0x43: {Name: "callmethod", Operands: []operandDecoder{decodeU30, decodeU30}},
	0x46: {Name: "callproperty", Operands: []operandDecoder{decodeU30, decodeU30}, Handler: handlerMultinameAndArg},
	0x4C: {Name: "callproplex", Operands: []operandDecoder{decodeU30, decodeU30}, Handler: handlerMultinameAndArg},
	0x4F: {Name: "callpropvoid", Operands: []operandDecoder{decodeU30, decodeU30}, Handler: handlerMultinameAndArg},
	0x44: {Name: "callstatic", Operands: []operandDecoder{decodeU30, decodeU30}, Handler: handlerMethodInfoAndArg},
	0x45: {Name: "callsuper", Operands: []operandDecoder{decodeU30, decodeU30}, Handler: handlerMultinameAndArg},
	0x4E: {Name: "callsupervoid", Operands: []operandDecoder{decodeU30, decodeU30}, Handler: handlerMultinameAndArg},
	0x78: {Name: "checkfilter"},
	0x80: {Name: "coerce", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0x82: {Name: "coerce_a"},
	0x85: {Name: "coerce_s"},
	0x42: {Name: "construct", Operands: []operandDecoder{decodeU30}},
	0x4A: {Name: "constructprop", Operands: []operandDecoder{decodeU30, decodeU30}, Handler: handlerMultinameAndArg},
	0x49: {Name: "constructsuper", Operands: []operandDecoder{decodeU30}},
	0x76: {Name: "convert_b"},
	0x73: {Name: "convert_i"},
	0x75: {Name: "convert_d"},
	0x77: {Name: "convert_o"},
	0x74: {Name: "convert_u"},
	0x70: {Name: "convert_s"},
	0xEF: {Name: "debug", Operands: []operandDecoder{decodeU8, decodeU30, decodeU8, decodeU30}},
	0xF1: {Name: "debugfile", Operands: []operandDecoder{decodeU30}, Handler: handlerString},
	0xF0: {Name: "debugline", Operands: []operandDecoder{decodeU30}},
	0x94: {Name: "declocal", Operands: []operandDecoder{decodeU30}},
	0xC3: {Name: "declocal_i", Operands: []operandDecoder{decodeU30}},
	0x93: {Name: "decrement"},
	0xC1: {Name: "decrement_i"},
	0x6A: {Name: "deleteproperty", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0xA3: {Name: "divide"},
	0x2A: {Name: "dup"},
	0x06: {Name: "dxns", Operands: []operandDecoder{decodeU30}, Handler: handlerString},
	0x07: {Name: "dxnslate"},
	0xAB: {Name: "equals"},
	0x72: {Name: "esc_xattr"},
	0x71: {Name: "esc_xelem"},
	0x5E: {Name: "findproperty", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0x5D: {Name: "findpropstrict", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0x59: {Name: "getdescendants", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0x64: {Name: "getglobalscope"},
	0x6E: {Name: "getglobalslot", Operands: []operandDecoder{decodeU30}},
	0x60: {Name: "getlex", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0x62: {Name: "getlocal", Operands: []operandDecoder{decodeU30}},
	0xD0: {Name: "getlocal_0"},
	0xD1: {Name: "getlocal_1"},
	0xD2: {Name: "getlocal_2"},
	0xD3: {Name: "getlocal_3"},
	0x66: {Name: "getproperty", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0x65: {Name: "getscopeobject", Operands: []operandDecoder{decodeU8}},
	0x6C: {Name: "getslot", Operands: []operandDecoder{decodeU30}},
	0x04: {Name: "getsuper", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0xAF: {Name: "greaterthan"},
	0xB0: {Name: "greaterequals"},
	0x1F: {Name: "hasnext"},
	0x32: {Name: "hasnext2", Operands: []operandDecoder{decodeU30, decodeU30}},
	0x13: {Name: "ifeq", Operands: []operandDecoder{decodeS24}},
	0x12: {Name: "iffalse", Operands: []operandDecoder{decodeS24}},
	0x18: {Name: "ifge", Operands: []operandDecoder{decodeS24}},
	0x17: {Name: "ifgt", Operands: []operandDecoder{decodeS24}},
	0x16: {Name: "ifle", Operands: []operandDecoder{decodeS24}},
	0x15: {Name: "iflt", Operands: []operandDecoder{decodeS24}},
	0x0F: {Name: "ifnge", Operands: []operandDecoder{decodeS24}},
	0x0E: {Name: "ifngt", Operands: []operandDecoder{decodeS24}},
	0x0D: {Name: "ifnle", Operands: []operandDecoder{decodeS24}},
	0x0C: {Name: "ifnlt", Operands: []operandDecoder{decodeS24}},
	0x14: {Name: "ifne", Operands: []operandDecoder{decodeS24}},
	0x19: {Name: "ifstricteq", Operands: []operandDecoder{decodeS24}},
	0x1A: {Name: "ifstrictne", Operands: []operandDecoder{decodeS24}},
	0x11: {Name: "iftrue", Operands: []operandDecoder{decodeS24}},
	0xB4: {Name: "in"},
	0x92: {Name: "inclocal", Operands: []operandDecoder{decodeU30}},
	0xC2: {Name: "inclocal_i", Operands: []operandDecoder{decodeU30}},
	0x91: {Name: "increment"},
	0xC0: {Name: "increment_i"},
	0x68: {Name: "initproperty", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0xB1: {Name: "instanceof"},
	0xB2: {Name: "istype", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0xB3: {Name: "istypelate"},
	0x10: {Name: "jump", Operands: []operandDecoder{decodeS24}},
	0x08: {Name: "kill", Operands: []operandDecoder{decodeU30}},
	0x09: {Name: "label"},
	0xAE: {Name: "lessequals"},
	0xAD: {Name: "lessthan"},
	0x34: {Name: "pushdnan"},
	0x1B: {Name: "lookupswitch", Operands: []operandDecoder{decodeS24, decodeU30}},
	0xA5: {Name: "lshift"},
	0xA4: {Name: "modulo"},
	0xA2: {Name: "multiply"},
	0xC7: {Name: "multiply_i"},
	0x90: {Name: "negate"},
	0xC4: {Name: "negate_i"},
	0x57: {Name: "newactivation"},
	0x56: {Name: "newarray", Operands: []operandDecoder{decodeU30}},
	0x5A: {Name: "newcatch", Operands: []operandDecoder{decodeU30}, Handler: handlerException},
	0x58: {Name: "newclass", Operands: []operandDecoder{decodeU30}},
	0x40: {Name: "newfunction", Operands: []operandDecoder{decodeU30}, Handler: handlerMethodInfo},
	0x55: {Name: "newobject", Operands: []operandDecoder{decodeU30}},
	0x1E: {Name: "nextname"},
	0x23: {Name: "nextvalue"},
	0x02: {Name: "nop"},
	0x96: {Name: "not"},
	0x29: {Name: "pop"},
	0x1D: {Name: "popscope"},
	0x24: {Name: "pushbyte", Operands: []operandDecoder{decodeU8}},
	0x2F: {Name: "pushdouble", Operands: []operandDecoder{decodeU30}, Handler: handlerDouble},
	0x27: {Name: "pushfalse"},
	0x2D: {Name: "pushint", Operands: []operandDecoder{decodeU30}, Handler: handlerInt},
	0x31: {Name: "pushnamespace", Operands: []operandDecoder{decodeU30}, Handler: handlerNamespace},
	0x28: {Name: "pushnan"},
	0x20: {Name: "pushnull"},
	0x30: {Name: "pushscope"},
	0x25: {Name: "pushshort", Operands: []operandDecoder{decodeU30}},
	0x2C: {Name: "pushstring", Operands: []operandDecoder{decodeU30}, Handler: handlerString},
	0x26: {Name: "pushtrue"},
	0x2E: {Name: "pushuint", Operands: []operandDecoder{decodeU30}, Handler: handlerUint},
	0x21: {Name: "pushundefined"},
	0x1C: {Name: "pushwith"},
	0x48: {Name: "returnvalue"},
	0x47: {Name: "returnvoid"},
	0xA6: {Name: "rshift"},
	0x63: {Name: "setlocal", Operands: []operandDecoder{decodeU30}},
	0xD4: {Name: "setlocal_0"},
	0xD5: {Name: "setlocal_1"},
	0xD6: {Name: "setlocal_2"},
	0xD7: {Name: "setlocal_3"},
	0x6F: {Name: "setglobalslot", Operands: []operandDecoder{decodeU30}},
	0x61: {Name: "setproperty", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0x6D: {Name: "setslot", Operands: []operandDecoder{decodeU30}},
	0x05: {Name: "setsuper", Operands: []operandDecoder{decodeU30}, Handler: handlerMultiname},
	0xAC: {Name: "strictequals"},
	0xA1: {Name: "subtract"},
	0xC6: {Name: "subtract_i"},
	0x2B: {Name: "swap"},
	0x03: {Name: "throw"},
	0x95: {Name: "typeof"},
	0xA7: {Name: "urshift"},
}

const opLookupSwitch = "lookupswitch"
