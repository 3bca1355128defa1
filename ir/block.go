// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// A BasicBlock is a maximal sequence of instructions with a single
// entry at the top and a single control transfer at the bottom.  Phi
// instructions, if any, form a prefix of the instruction list.
//
// Predecessor and successor edges are kept in sync: for every edge
// A->B, A appears in B.Preds and B in A.Succs.  The dominator-tree
// fields are filled in by Function.BuildDom.
type BasicBlock struct {
	Name   string
	Instrs []Instruction

	Preds []*BasicBlock
	Succs []*BasicBlock

	// Dominator tree, valid after Function.BuildDom.
	idom     *BasicBlock
	dominees []*BasicBlock

	// Visit bookkeeping for BuildDom; post is the block's
	// postorder number in the CFG depth-first walk.
	post int
}

// NewBasicBlock returns an empty block with the given label name.
func NewBasicBlock(name string) *BasicBlock {
	return &BasicBlock{Name: name, post: -1}
}

func (b *BasicBlock) String() string { return b.Name }

// Connect adds the directed CFG edge b->c, updating both endpoint
// edge sets.  Adding an existing edge is a no-op.
func (b *BasicBlock) Connect(c *BasicBlock) {
	for _, s := range b.Succs {
		if s == c {
			return
		}
	}
	b.Succs = append(b.Succs, c)
	c.Preds = append(c.Preds, b)
}

// PushBack appends an instruction to the block.
func (b *BasicBlock) PushBack(i Instruction) {
	b.Instrs = append(b.Instrs, i)
}

// PushFront prepends an instruction to the block.  Phi insertion uses
// it so phis end up as a prefix of the list.
func (b *BasicBlock) PushFront(i Instruction) {
	b.Instrs = append([]Instruction{i}, b.Instrs...)
}

// IsComplete reports whether the block ends with a control flow
// instruction.
func (b *BasicBlock) IsComplete() bool {
	n := len(b.Instrs)
	return n > 0 && b.Instrs[n-1].IsCtrl()
}

// Idom returns the immediate dominator of b, or nil for the entry
// block.  Valid after Function.BuildDom.
func (b *BasicBlock) Idom() *BasicBlock { return b.idom }

// Dominees returns the children of b in the dominator tree, ordered
// by block name.  Valid after Function.BuildDom.  The result must not
// be mutated.
func (b *BasicBlock) Dominees() []*BasicBlock { return b.dominees }

// phis returns the phi-instruction prefix of the block.
func (b *BasicBlock) phis() []*Phi {
	var ps []*Phi
	for _, i := range b.Instrs {
		phi, ok := i.(*Phi)
		if !ok {
			break
		}
		ps = append(ps, phi)
	}
	return ps
}

// predIndex returns the index of p in b.Preds, or -1.
func (b *BasicBlock) predIndex(p *BasicBlock) int {
	for i, q := range b.Preds {
		if q == p {
			return i
		}
	}
	return -1
}
