// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/go-kratos/kratos/v2/log"
)

// MaxDefaultMethodBodyCount bounds the number of method bodies parsed from a
// single ABC file unless Options.MaxMethodBodyCount overrides it.
const MaxDefaultMethodBodyCount = 1 << 20

// minABCSize is the smallest possible ABC payload: just the version header.
const minABCSize = 4

// File represents one parsed ABC file: the nine decoded sections, linked
// internally by pool indices, plus the resources needed to read it.
type File struct {
	Minor uint16 `json:"minor"`
	Major uint16 `json:"major"`

	Pool *ConstantPool `json:"constant_pool,omitempty"`

	Methods      []Method      `json:"methods,omitempty"`
	Metadata     []Metadata    `json:"metadata,omitempty"`
	Instances    []Instance    `json:"instances,omitempty"`
	Classes      []Class       `json:"classes,omitempty"`
	Scripts      []Script      `json:"scripts,omitempty"`
	MethodBodies []MethodBody  `json:"method_bodies,omitempty"`

	data   mmap.MMap
	f      *os.File
	opts   *Options
	logger *log.Helper
}

// Options controls parsing behaviour.
type Options struct {
	// Fast skips the eager warm-pass Parse otherwise performs over every
	// method body, which disassembles and discards operands to
	// materialize each body's opcode-only Fingerprint up front. All nine
	// sections are still fully parsed either way; Fast only trades that
	// up-front disassembly cost for on-demand StripOperands/Disassemble
	// calls later. By default (false), the warm-pass runs.
	Fast bool

	// MaxMethodBodyCount bounds how many method bodies are parsed, by
	// default MaxDefaultMethodBodyCount.
	MaxMethodBodyCount uint32

	// Logger is a custom logger; by default a stderr logger filtered to
	// error level.
	Logger log.Logger
}

func newFile(opts *Options) *File {
	file := &File{}
	if opts != nil {
		file.opts = opts
	} else {
		file.opts = &Options{}
	}
	if file.opts.MaxMethodBodyCount == 0 {
		file.opts.MaxMethodBodyCount = MaxDefaultMethodBodyCount
	}

	var logger log.Logger
	if file.opts.Logger == nil {
		logger = log.NewStdLogger(os.Stderr)
		file.logger = log.NewHelper(log.NewFilter(logger,
			log.FilterLevel(log.LevelError)))
	} else {
		file.logger = log.NewHelper(file.opts.Logger)
	}
	return file
}

// New instantiates a File with options given a path to a file holding a raw
// DoABC payload.
func New(name string, opts *Options) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	file := newFile(opts)
	file.data = data
	file.f = f
	return file, nil
}

// NewBytes instantiates a File with options given an in-memory DoABC
// payload.
func NewBytes(data []byte, opts *Options) (*File, error) {
	file := newFile(opts)
	file.data = data
	return file, nil
}

// Close releases the resources held by a File opened with New.
func (f *File) Close() error {
	if f.data != nil {
		_ = f.data.Unmap()
	}
	if f.f != nil {
		return f.f.Close()
	}
	return nil
}

// Parse decodes the nine sections of the ABC file in wire order, populating
// f. Unless Options.Fast is set, it then warms every method body's
// Fingerprint by running StripOperands over it up front.
func (f *File) Parse() error {
	if len(f.data) < minABCSize {
		return ErrInvalidABCSize
	}

	c := NewCursor(f.data)

	minor, err := c.U16()
	if err != nil {
		return err
	}
	major, err := c.U16()
	if err != nil {
		return err
	}
	f.Minor = minor
	f.Major = major

	pool, err := parseConstantPool(c)
	if err != nil {
		return err
	}
	f.Pool = pool

	methodCount, err := c.U30()
	if err != nil {
		return &ParseError{Msg: "reading method count", Offset: c.Offset(), Err: err}
	}
	f.Methods = make([]Method, 0, methodCount)
	for i := uint32(0); i < methodCount; i++ {
		m, err := parseMethod(c)
		if err != nil {
			return &ParseError{Msg: "reading method", Offset: c.Offset(), Err: err}
		}
		f.Methods = append(f.Methods, m)
	}

	metadataCount, err := c.U30()
	if err != nil {
		return &ParseError{Msg: "reading metadata count", Offset: c.Offset(), Err: err}
	}
	f.Metadata = make([]Metadata, 0, metadataCount)
	for i := uint32(0); i < metadataCount; i++ {
		m, err := parseMetadata(c)
		if err != nil {
			return &ParseError{Msg: "reading metadata", Offset: c.Offset(), Err: err}
		}
		f.Metadata = append(f.Metadata, m)
	}

	classCount, err := c.U30()
	if err != nil {
		return &ParseError{Msg: "reading class count", Offset: c.Offset(), Err: err}
	}
	f.Instances = make([]Instance, 0, classCount)
	for i := uint32(0); i < classCount; i++ {
		inst, err := parseInstance(c)
		if err != nil {
			return &ParseError{Msg: "reading instance", Offset: c.Offset(), Err: err}
		}
		f.Instances = append(f.Instances, inst)
	}
	f.Classes = make([]Class, 0, classCount)
	for i := uint32(0); i < classCount; i++ {
		cls, err := parseClass(c)
		if err != nil {
			return &ParseError{Msg: "reading class", Offset: c.Offset(), Err: err}
		}
		f.Classes = append(f.Classes, cls)
	}

	scriptCount, err := c.U30()
	if err != nil {
		return &ParseError{Msg: "reading script count", Offset: c.Offset(), Err: err}
	}
	f.Scripts = make([]Script, 0, scriptCount)
	for i := uint32(0); i < scriptCount; i++ {
		s, err := parseScript(c)
		if err != nil {
			return &ParseError{Msg: "reading script", Offset: c.Offset(), Err: err}
		}
		f.Scripts = append(f.Scripts, s)
	}

	bodyCount, err := c.U30()
	if err != nil {
		return &ParseError{Msg: "reading method body count", Offset: c.Offset(), Err: err}
	}
	if bodyCount > f.opts.MaxMethodBodyCount {
		f.logger.Warnf("method body count %d exceeds limit %d, truncating",
			bodyCount, f.opts.MaxMethodBodyCount)
		bodyCount = f.opts.MaxMethodBodyCount
	}
	f.MethodBodies = make([]MethodBody, 0, bodyCount)
	for i := uint32(0); i < bodyCount; i++ {
		mb, err := parseMethodBody(c)
		if err != nil {
			return &ParseError{Msg: "reading method body", Offset: c.Offset(), Err: err}
		}
		f.MethodBodies = append(f.MethodBodies, mb)
	}

	if !f.opts.Fast {
		for i := range f.MethodBodies {
			mb := &f.MethodBodies[i]
			fp, err := mb.StripOperands()
			if err != nil {
				f.logger.Warnf("method body %d: warming fingerprint: %v", i, err)
				continue
			}
			mb.Fingerprint = fp
		}
	}

	return nil
}
