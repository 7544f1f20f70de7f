// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "testing"

func TestParseMetadata(t *testing.T) {
	// name=1, item_count=1, key=2, value=3.
	c := NewCursor([]byte{0x01, 0x01, 0x02, 0x03})
	m, err := parseMetadata(c)
	if err != nil {
		t.Fatalf("parseMetadata returned error: %v", err)
	}
	if m.Name != 1 || len(m.Items) != 1 || m.Items[0].Key != 2 || m.Items[0].Value != 3 {
		t.Errorf("parseMetadata = %+v, unexpected fields", m)
	}
}

func TestParseMetadataRejectsZeroName(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x00})
	if _, err := parseMetadata(c); err == nil {
		t.Fatal("expected BadValue for a zero metadata name")
	}
}
