// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "testing"

func newTestFile(pool *ConstantPool) *File {
	return &File{Pool: pool}
}

func TestResolveMultinameQName(t *testing.T) {
	pool := newConstantPool()
	pool.Strings = append(pool.Strings, "flash.display", "MovieClip")
	pool.Namespaces = append(pool.Namespaces, Namespace{Kind: NamespaceKindPackageNamespace, Name: 1})
	pool.Multinames = append(pool.Multinames, &QName{Kind: MultinameKindQName, Ns: 1, Name: 2})

	f := newTestFile(pool)
	got := f.ResolveMultiname(1)
	want := "flash.display.MovieClip"
	if got != want {
		t.Errorf("ResolveMultiname(1) = %q, want %q", got, want)
	}
}

func TestResolveMultinameQNameUnsetNamespace(t *testing.T) {
	pool := newConstantPool()
	pool.Strings = append(pool.Strings, "Foo")
	pool.Multinames = append(pool.Multinames, &QName{Kind: MultinameKindQName, Ns: 0, Name: 1})

	f := newTestFile(pool)
	got := f.ResolveMultiname(1)
	want := "*.Foo"
	if got != want {
		t.Errorf("ResolveMultiname(1) = %q, want %q", got, want)
	}
}

func TestResolveMultinameSentinel(t *testing.T) {
	f := newTestFile(newConstantPool())
	if got := f.ResolveMultiname(0); got != "*" {
		t.Errorf("ResolveMultiname(0) = %q, want \"*\"", got)
	}
}

func TestResolveOptionalKinds(t *testing.T) {
	pool := newConstantPool()
	pool.Ints = append(pool.Ints, 42)
	pool.Strings = append(pool.Strings, "hi")
	f := newTestFile(pool)

	if got := f.ResolveOptional(Option{Val: 1, Kind: OptionKindInt}); got != int32(42) {
		t.Errorf("ResolveOptional(int) = %v, want 42", got)
	}
	if got := f.ResolveOptional(Option{Val: 1, Kind: OptionKindUtf8}); got != "hi" {
		t.Errorf("ResolveOptional(utf8) = %v, want \"hi\"", got)
	}
}
