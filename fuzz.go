// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

// Fuzz is a go-fuzz entrypoint: it parses data as a DoABC payload and
// disassembles every method body, returning 1 when that succeeds all the
// way through so the fuzzer prioritises inputs that get deep into the
// decoder.
func Fuzz(data []byte) int {
	f, err := NewBytes(data, &Options{})
	if err != nil {
		return 0
	}
	if err := f.Parse(); err != nil {
		return 0
	}
	for i := range f.MethodBodies {
		if _, err := f.MethodBodies[i].Disassemble(f); err != nil {
			return 0
		}
	}
	return 1
}
