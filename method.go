// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "strings"

// Method flag bits.
const (
	MethodFlagNeedArguments  = 0x01
	MethodFlagNeedActivation = 0x02
	MethodFlagNeedRest       = 0x04
	MethodFlagHasOptional    = 0x08
	MethodFlagSetDXNS        = 0x40
	MethodFlagHasParamNames  = 0x80
)

// Option kinds select which pool an optional parameter's default value is
// read from; see resolve.go's resolveOptional.
const (
	OptionKindInt    = 0x03
	OptionKindUInt   = 0x04
	OptionKindDouble = 0x06
	OptionKindUtf8   = 0x01
)

// Option is one entry of a Method's optional-parameter list: an index
// (interpreted against the pool selected by Kind) and the kind byte.
type Option struct {
	Val  uint32
	Kind uint8
}

// Method is one entry of the method-signature pool: a return type, a list
// of parameter types, an optional name, flags, and (conditionally) an
// optional-parameter list and parameter names.
type Method struct {
	ReturnType uint32
	ParamTypes []uint32
	Name       uint32
	Flags      uint8
	Options    []Option
	ParamNames []uint32
}

func parseMethod(c *Cursor) (Method, error) {
	paramCount, err := c.U30()
	if err != nil {
		return Method{}, err
	}
	returnType, err := c.U30()
	if err != nil {
		return Method{}, err
	}
	paramTypes := make([]uint32, 0, paramCount)
	for i := uint32(0); i < paramCount; i++ {
		pt, err := c.U30()
		if err != nil {
			return Method{}, err
		}
		paramTypes = append(paramTypes, pt)
	}
	name, err := c.U30()
	if err != nil {
		return Method{}, err
	}
	flags, err := c.U8()
	if err != nil {
		return Method{}, err
	}

	var options []Option
	if flags&MethodFlagHasOptional != 0 {
		optionCount, err := c.U30()
		if err != nil {
			return Method{}, err
		}
		if optionCount == 0 || optionCount > paramCount {
			return Method{}, &BadValue{Msg: "Invalid option count", Val: optionCount}
		}
		options = make([]Option, 0, optionCount)
		for i := uint32(0); i < optionCount; i++ {
			val, err := c.U30()
			if err != nil {
				return Method{}, err
			}
			kind, err := c.U8()
			if err != nil {
				return Method{}, err
			}
			options = append(options, Option{Val: val, Kind: kind})
		}
	}

	var paramNames []uint32
	if flags&MethodFlagHasParamNames != 0 {
		paramNames = make([]uint32, 0, paramCount)
		for i := uint32(0); i < paramCount; i++ {
			pn, err := c.U30()
			if err != nil {
				return Method{}, err
			}
			paramNames = append(paramNames, pn)
		}
	}

	return Method{
		ReturnType: returnType,
		ParamTypes: paramTypes,
		Name:       name,
		Flags:      flags,
		Options:    options,
		ParamNames: paramNames,
	}, nil
}

// Signature renders the method the way the reference decoder's
// Method.__str__ does: "<return type> <name>(<param types>)", with "*" for
// the any-type sentinel (index 0) and "NO_NAME" for an unnamed method.
func (m Method) Signature(f *File) string {
	returnType := "*"
	if m.ReturnType != 0 {
		returnType = f.ResolveMultiname(m.ReturnType)
	}

	name := "NO_NAME"
	if m.Name != 0 && int(m.Name) < len(f.Pool.Strings) {
		name = f.Pool.Strings[m.Name]
	}

	params := make([]string, len(m.ParamTypes))
	for i, pt := range m.ParamTypes {
		if pt == 0 {
			params[i] = "*"
		} else {
			params[i] = f.ResolveMultiname(pt)
		}
	}

	return returnType + " " + name + "(" + strings.Join(params, ", ") + ")"
}
