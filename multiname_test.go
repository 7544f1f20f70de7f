// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "testing"

func TestParseMultinameQName(t *testing.T) {
	// kind=QName, ns=1, name=2.
	c := NewCursor([]byte{byte(MultinameKindQName), 0x01, 0x02})
	mn, err := parseMultiname(c)
	if err != nil {
		t.Fatalf("parseMultiname returned error: %v", err)
	}
	q, ok := mn.(*QName)
	if !ok {
		t.Fatalf("parseMultiname returned %T, want *QName", mn)
	}
	if q.Ns != 1 || q.Name != 2 {
		t.Errorf("QName = %+v, want {Ns:1 Name:2}", q)
	}
}

func TestParseMultinameUnknownKind(t *testing.T) {
	c := NewCursor([]byte{0xFF})
	if _, err := parseMultiname(c); err == nil {
		t.Fatal("expected BadValue for an unrecognised multiname kind")
	}
}

func TestParseMultinameMultinameRejectsZeroNsSet(t *testing.T) {
	c := NewCursor([]byte{byte(MultinameKindMultiname), 0x01, 0x00})
	if _, err := parseMultiname(c); err == nil {
		t.Fatal("expected BadValue for a zero ns_set")
	}
}

func TestParseMultinameTypeName(t *testing.T) {
	// name=1, param count=2, params=[2,3].
	c := NewCursor([]byte{byte(MultinameKindTypeName), 0x01, 0x02, 0x02, 0x03})
	mn, err := parseMultiname(c)
	if err != nil {
		t.Fatalf("parseMultiname returned error: %v", err)
	}
	tn, ok := mn.(*TypeName)
	if !ok {
		t.Fatalf("parseMultiname returned %T, want *TypeName", mn)
	}
	if tn.Name != 1 || len(tn.Params) != 2 || tn.Params[0] != 2 || tn.Params[1] != 3 {
		t.Errorf("TypeName = %+v, want {Name:1 Params:[2 3]}", tn)
	}
}
