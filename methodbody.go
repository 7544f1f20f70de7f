// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "fmt"

// ASException is one entry of a method body's exception table: a protected
// code range, a target offset, and the exception type/variable names it
// catches, both indices into the multiname pool (0 meaning "any").
type ASException struct {
	From     uint32
	To       uint32
	Target   uint32
	ExcType  uint32
	VarName  uint32
}

func parseException(c *Cursor) (ASException, error) {
	from, err := c.U30()
	if err != nil {
		return ASException{}, err
	}
	to, err := c.U30()
	if err != nil {
		return ASException{}, err
	}
	target, err := c.U30()
	if err != nil {
		return ASException{}, err
	}
	excType, err := c.U30()
	if err != nil {
		return ASException{}, err
	}
	varName, err := c.U30()
	if err != nil {
		return ASException{}, err
	}
	return ASException{From: from, To: to, Target: target, ExcType: excType, VarName: varName}, nil
}

// Describe renders the exception entry the way the reference decoder's
// ASException.__str__ does: the exception type, with " as <varname>"
// appended when a catch variable is named.
func (e ASException) Describe(f *File) string {
	excType := "*"
	if e.ExcType != 0 {
		excType = f.ResolveMultiname(e.ExcType)
	}
	if e.VarName == 0 {
		return excType
	}
	return fmt.Sprintf("%s as %s", excType, f.ResolveMultiname(e.VarName))
}

// MethodBody is one entry of the method-body pool, paired with a Method by
// its Method index: the method's frame shape, its raw bytecode, its
// exception table, and its activation-object traits.
type MethodBody struct {
	Method         uint32
	MaxStack       uint32
	LocalCount     uint32
	InitScopeDepth uint32
	MaxScopeDepth  uint32
	Code           []byte
	Exceptions     []ASException
	Traits         []Trait

	// Fingerprint is the opcode-only byte sequence produced by
	// StripOperands, materialized eagerly by Parse unless Options.Fast is
	// set. It is nil until warmed, either by Parse or by an explicit call
	// to StripOperands.
	Fingerprint []byte `json:"fingerprint,omitempty"`
}

func parseMethodBody(c *Cursor) (MethodBody, error) {
	method, err := c.U30()
	if err != nil {
		return MethodBody{}, err
	}
	maxStack, err := c.U30()
	if err != nil {
		return MethodBody{}, err
	}
	localCount, err := c.U30()
	if err != nil {
		return MethodBody{}, err
	}
	initScopeDepth, err := c.U30()
	if err != nil {
		return MethodBody{}, err
	}
	maxScopeDepth, err := c.U30()
	if err != nil {
		return MethodBody{}, err
	}
	codeLength, err := c.U30()
	if err != nil {
		return MethodBody{}, err
	}
	code, err := c.Bytes(codeLength)
	if err != nil {
		return MethodBody{}, &ParseError{Msg: "reading method body code", Offset: c.Offset(), Err: ErrTruncatedCode}
	}

	excCount, err := c.U30()
	if err != nil {
		return MethodBody{}, err
	}
	exceptions := make([]ASException, 0, excCount)
	for i := uint32(0); i < excCount; i++ {
		e, err := parseException(c)
		if err != nil {
			return MethodBody{}, err
		}
		exceptions = append(exceptions, e)
	}

	traitCount, err := c.U30()
	if err != nil {
		return MethodBody{}, err
	}
	traits := make([]Trait, 0, traitCount)
	for i := uint32(0); i < traitCount; i++ {
		t, err := parseTrait(c)
		if err != nil {
			return MethodBody{}, err
		}
		traits = append(traits, t)
	}

	return MethodBody{
		Method:         method,
		MaxStack:       maxStack,
		LocalCount:     localCount,
		InitScopeDepth: initScopeDepth,
		MaxScopeDepth:  maxScopeDepth,
		Code:           code,
		Exceptions:     exceptions,
		Traits:         traits,
	}, nil
}
