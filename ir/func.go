// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// This file implements the Function type.

import "fmt"

// An Attrib is a function attribute given in source.
type Attrib int

const (
	// AttribSSA asserts that the function body is already in SSA
	// form; the builder verifies the claim.
	AttribSSA Attrib = iota
)

var attribNames = map[Attrib]string{AttribSSA: "ssa"}

func (a Attrib) String() string { return attribNames[a] }

// AttribFromString looks up an attribute by its spelling.
func AttribFromString(s string) (Attrib, bool) {
	for a, name := range attribNames {
		if name == s {
			return a, true
		}
	}
	return 0, false
}

// A Function is a named body of blocks together with the scope that
// names its parameters and locals.
type Function struct {
	Name string

	// Scope holds parameters and local variables.  After SSA
	// renaming it holds the versioned symbols instead.
	Scope *Scope

	// Params holds the parameter symbols in declaration order.
	// Elements are addressable slots: SSA renaming rewrites them
	// in place.
	Params []Symbol

	// Ret is the return type, Void if none.
	Ret Type

	// Entry is the entry block.  The builder creates the function
	// with a placeholder entry and replaces it when the first
	// labelled block of the body is seen.
	Entry *BasicBlock

	// Exits collects the blocks containing ret instructions.
	Exits []*BasicBlock

	// Attribs is the deduplicated attribute list from source.
	Attribs []Attrib

	ssa bool
}

// NewFunction returns a function with the given signature and a
// placeholder entry block.
func NewFunction(name string, scope *Scope, attribs []Attrib, params []Symbol, ret Type) *Function {
	return &Function{
		Name:    name,
		Scope:   scope,
		Params:  params,
		Ret:     ret,
		Attribs: attribs,
		Entry:   NewBasicBlock(""),
	}
}

func (f *Function) String() string { return "@" + f.Name }

// HasAttrib reports whether the attribute was given for f.
func (f *Function) HasAttrib(a Attrib) bool {
	for _, b := range f.Attribs {
		if a == b {
			return true
		}
	}
	return false
}

// IsSSA reports whether f is in verified or constructed SSA form.
func (f *Function) IsSSA() bool { return f.ssa }

// assertSSA panics if f is not in SSA form.  The SSA-only operations
// (def-use, dead code elimination) guard themselves with it.
func (f *Function) assertSSA() {
	if !f.ssa {
		panic(fmt.Sprintf("fn @%s is not in SSA form", f.Name))
	}
}

// DFS returns the blocks reachable from the entry in depth-first
// preorder.  Successors are visited in edge insertion order, so the
// result is deterministic for a given construction sequence.
func (f *Function) DFS() []*BasicBlock {
	var order []*BasicBlock
	seen := make(map[*BasicBlock]bool)
	var visit func(*BasicBlock)
	visit = func(b *BasicBlock) {
		if seen[b] {
			return
		}
		seen[b] = true
		order = append(order, b)
		for _, s := range b.Succs {
			visit(s)
		}
	}
	visit(f.Entry)
	return order
}

// DomPreorder returns the blocks in a preorder traversal of the
// dominator tree.  Valid after BuildDom.
func (f *Function) DomPreorder() []*BasicBlock {
	var order []*BasicBlock
	var visit func(*BasicBlock)
	visit = func(b *BasicBlock) {
		order = append(order, b)
		for _, c := range b.dominees {
			visit(c)
		}
	}
	visit(f.Entry)
	return order
}

// definedSyms returns the set of local symbols defined by the
// instructions of b.
func definedSyms(b *BasicBlock) map[Symbol]bool {
	def := make(map[Symbol]bool)
	for _, i := range b.Instrs {
		if dst := i.Dst(); dst != nil && (*dst).IsLocalVar() {
			def[*dst] = true
		}
	}
	return def
}
