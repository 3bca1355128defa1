// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// This file defines the dominator-tree walk and its three-tier
// listener protocol.  SSA renaming, verification, def-use
// construction and copy propagation all ride on the same walk,
// differing only in the listener; dead-code elimination uses it
// through the def-use index.  Phi insertion does not use the walk: it
// is a worklist over the dominance frontier (ssa.go).
//
// Each tier refines the one below it.  Go interfaces carry no default
// method bodies, so the default behaviors live in the Visit* helpers;
// a concrete listener implements the hooks it cares about and calls
// the helper for the tier above wherever it wants the default.

// A DomTreeListener observes a preorder walk of the dominator tree.
// OnExit fires after the block's dominator-tree children have been
// walked, so a listener can maintain a stack of per-block frames
// covering the root-to-block path.
type DomTreeListener interface {
	OnBegin(f *Function)
	OnEnd(f *Function)
	OnEnter(b *BasicBlock)
	OnExit(b *BasicBlock)
	OnEnterChild(parent, child *BasicBlock)
	OnExitChild(parent, child *BasicBlock)
}

// An InstrListener additionally observes each instruction of the
// entered block, followed by the phi instructions of the block's CFG
// successors (once per phi, from the predecessor side).
type InstrListener interface {
	DomTreeListener
	OnInstr(i Instruction)
	OnSuccPhi(this *BasicBlock, phi *Phi)
}

// A ValueListener additionally observes every operand and destination
// slot.  For a phi instruction only the destination is visited when
// the phi's own block is entered; the source slots are visited from
// the predecessor side via OnSuccPhi, which passes only the slots
// paired with that predecessor.
type ValueListener interface {
	InstrListener
	OnUse(i Instruction, opd *Value)
	OnDef(i Instruction, dst *Symbol)
}

// WalkDom drives l over the dominator tree of f.  BuildDom must have
// run.
func (f *Function) WalkDom(l DomTreeListener) {
	l.OnBegin(f)
	var walk func(*BasicBlock)
	walk = func(b *BasicBlock) {
		l.OnEnter(b)
		for _, c := range b.dominees {
			l.OnEnterChild(b, c)
			walk(c)
			l.OnExitChild(b, c)
		}
		l.OnExit(b)
	}
	walk(f.Entry)
	l.OnEnd(f)
}

// VisitInstrs is the default OnEnter behavior of an InstrListener: it
// visits every instruction of b in order, then for each successor the
// phi prefix of that successor, attributed to b.
func VisitInstrs(l InstrListener, b *BasicBlock) {
	for _, i := range b.Instrs {
		l.OnInstr(i)
	}
	for _, succ := range b.Succs {
		for _, i := range succ.Instrs {
			phi, ok := i.(*Phi)
			if !ok {
				break // phis form a prefix of each block
			}
			l.OnSuccPhi(b, phi)
		}
	}
}

// VisitValues is the default OnInstr behavior of a ValueListener: all
// source slots, then the destination slot.  For a phi instruction
// only the destination is visited; its sources belong to the
// predecessors and are reached through OnSuccPhi.
func VisitValues(l ValueListener, i Instruction) {
	if _, ok := i.(*Phi); !ok {
		for _, opd := range i.Srcs() {
			l.OnUse(i, opd)
		}
	}
	if dst := i.Dst(); dst != nil {
		l.OnDef(i, dst)
	}
}

// VisitSuccPhi is the default OnSuccPhi behavior of a ValueListener:
// it visits the phi source slots whose predecessor is this block.
func VisitSuccPhi(l ValueListener, this *BasicBlock, phi *Phi) {
	for k := range phi.Edges {
		if phi.Edges[k].Pred == this {
			l.OnUse(phi, &phi.Edges[k].Val)
		}
	}
}
