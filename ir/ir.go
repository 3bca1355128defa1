// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ir defines a representation of the elements of a small
// typed intermediate language in static single-assignment (SSA) form,
// together with the machinery to construct, verify and transform it.
//
// The zero-level elements are types, constants and symbols (package
// files type.go, value.go, symbol.go).  Instructions (instr.go) refer
// to symbols and values through addressable slots so that passes can
// rewrite operands in place.  Basic blocks (block.go) hold ordered
// instruction lists and doubly-linked CFG edges; functions (func.go)
// tie blocks to a local scope and a parameter list.
//
// A function enters SSA form through Function.ToSSA, which places phi
// instructions on the iterated dominance frontier and renames
// definitions along the dominator tree (ssa.go).  The invariants of
// the form are checked by the Verifier (verify.go).  Dead-code
// elimination (dce.go) and copy propagation (copyprop.go) run on the
// resulting form.  Copy propagation is a listener over the dominator
// tree walk defined in walk.go; dead-code elimination is a worklist
// over the def-use index (defuse.go), which that walk builds.
package ir

// A Program is a complete translation unit: global variables,
// functions, and the scope that names them.
type Program struct {
	// Vars is the list of global variables, in declaration order.
	Vars []*GlobalVar

	// Funcs is the list of functions, in declaration order.
	Funcs []*Function

	// Global is the scope holding global variables, functions and
	// type aliases.
	Global *Scope
}

// NewProgram returns an empty program with a fresh global scope.
func NewProgram() *Program {
	return &Program{Global: NewScope()}
}
