// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// This file checks the SSA invariants of a function: every local has
// a single static definition, every use is dominated by its
// definition, and every phi carries a source for each predecessor.

import "fmt"

// A Verifier checks the SSA form of a function during a dominator
// tree walk.  Errors accumulate in Errs; an empty list after the walk
// means the function is well-formed, and the walk marks it as SSA.
type Verifier struct {
	// def records the symbols seen at a definition point anywhere
	// in the function.
	def map[Symbol]bool

	// avail is the availability stack: one frame per block on the
	// path from the dominator-tree root to the current block,
	// holding the symbols defined in that block.
	avail [][]Symbol

	// Errs collects the diagnostics, in visit order.
	Errs []string
}

// NewVerifier returns a Verifier ready for one WalkDom.
func NewVerifier() *Verifier {
	return &Verifier{def: make(map[Symbol]bool)}
}

func (v *Verifier) OnBegin(f *Function) {
	// Parameters form the root frame.
	frame := make([]Symbol, 0, len(f.Params))
	for _, p := range f.Params {
		v.def[p] = true
		frame = append(frame, p)
	}
	v.avail = append(v.avail, frame)
}

func (v *Verifier) OnEnd(f *Function) {
	f.ssa = true
	v.def = make(map[Symbol]bool)
	v.avail = nil
}

func (v *Verifier) OnEnter(b *BasicBlock) {
	v.avail = append(v.avail, nil)

	// Each predecessor must appear as a source of every phi.
	for _, phi := range b.phis() {
		for _, pred := range b.Preds {
			found := false
			for _, e := range phi.Edges {
				if e.Pred == pred {
					found = true
					break
				}
			}
			if !found {
				v.Errs = append(v.Errs, fmt.Sprintf("phi operand not found for %s", pred.Name))
			}
		}
	}

	VisitInstrs(v, b)
}

func (v *Verifier) OnExit(b *BasicBlock) {
	v.avail = v.avail[:len(v.avail)-1]
}

func (v *Verifier) OnEnterChild(parent, child *BasicBlock) {}
func (v *Verifier) OnExitChild(parent, child *BasicBlock)  {}

func (v *Verifier) OnInstr(i Instruction) { VisitValues(v, i) }

func (v *Verifier) OnSuccPhi(this *BasicBlock, phi *Phi) { VisitSuccPhi(v, this, phi) }

func (v *Verifier) OnUse(i Instruction, opd *Value) {
	if sym, ok := isLocalValue(*opd); ok && !v.isAvail(sym) {
		v.Errs = append(v.Errs, fmt.Sprintf("variable %s is used before defined", sym.Name()))
	}
}

func (v *Verifier) OnDef(i Instruction, dst *Symbol) {
	sym := *dst
	if !sym.IsLocalVar() {
		return
	}
	if v.def[sym] {
		v.Errs = append(v.Errs, fmt.Sprintf("variable %s already defined", sym.Name()))
		return
	}
	v.def[sym] = true
	v.avail[len(v.avail)-1] = append(v.avail[len(v.avail)-1], sym)
}

// isAvail reports whether sym was defined in some frame on the path
// from the root to the current block.
func (v *Verifier) isAvail(sym Symbol) bool {
	for _, frame := range v.avail {
		for _, s := range frame {
			if s == sym {
				return true
			}
		}
	}
	return false
}
