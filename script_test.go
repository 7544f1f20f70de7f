// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import "testing"

func TestParseScript(t *testing.T) {
	// init=1, trait_count=0.
	c := NewCursor([]byte{0x01, 0x00})
	s, err := parseScript(c)
	if err != nil {
		t.Fatalf("parseScript returned error: %v", err)
	}
	if s.Init != 1 || len(s.Traits) != 0 {
		t.Errorf("parseScript = %+v, unexpected fields", s)
	}
}
