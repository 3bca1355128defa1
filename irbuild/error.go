// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irbuild

import (
	"fmt"

	"golang.org/x/irtools/syntax"
)

// A CompileError is a semantic diagnostic carrying the source
// position of the offending construct.  Diagnostics from the SSA
// verifier carry the zero Pos.
type CompileError struct {
	Pos syntax.Pos
	Msg string
}

func (e *CompileError) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Msg) }

// errorf returns a CompileError at pos.
func errorf(pos syntax.Pos, format string, args ...any) error {
	return &CompileError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
