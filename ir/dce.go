// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// This file implements dead-code elimination.  It lives with the SSA
// machinery rather than the optimization passes because SSA
// conversion itself runs it to clean up dead phis and the values that
// feed only them.

// ElimDeadCode removes the instructions of f that define values with
// no remaining uses, using a worklist over the def-use index.  f must
// be in SSA form.
//
// Two rules mark an instruction for removal:
//
// Circular phi: a phi whose destination has exactly one use, where
// the using instruction defines a local whose only use is that same
// phi.  The pair keeps each other alive through the back edge of a
// loop and nothing else; both are removed.
//
// Ordinary: an instruction whose destination has no uses and which
// has no side effects.
//
// Removing an instruction erases it from the use lists of its
// operands and requeues those symbols, so removal cascades.  The pass
// is idempotent.
func (f *Function) ElimDeadCode() {
	f.assertSSA()

	defUse := f.DefUse()

	marked := make(map[Instruction]bool)
	var work []Symbol
	inWork := make(map[Symbol]bool)
	for sym := range defUse {
		work = append(work, sym)
		inWork[sym] = true
	}

	for len(work) > 0 {
		sym := work[len(work)-1]
		work = work[:len(work)-1]
		inWork[sym] = false

		info := defUse[sym]
		if info.Def.Kind != DefInstr {
			continue
		}
		instr := info.Def.Instr

		var remove []Instruction
		if _, ok := instr.(*Phi); ok && len(info.Uses) == 1 {
			// Circular reference: sym's only use defines a
			// local whose only use is sym's phi.
			other := info.Uses[0]
			if dst := other.Dst(); dst != nil && (*dst).IsLocalVar() {
				otherInfo := defUse[*dst]
				if otherInfo != nil && len(otherInfo.Uses) == 1 && otherInfo.Uses[0] == instr {
					remove = append(remove, instr, other)
				}
			}
		} else if len(info.Uses) == 0 && !instr.HasSideEffect() {
			remove = append(remove, instr)
		}

		for _, instr := range remove {
			if marked[instr] {
				continue
			}
			marked[instr] = true
			for _, opd := range instr.Srcs() {
				src, ok := isLocalValue(*opd)
				if !ok {
					continue
				}
				srcInfo := defUse[src]
				if srcInfo == nil {
					continue
				}
				for k, u := range srcInfo.Uses {
					if u == instr {
						srcInfo.Uses = append(srcInfo.Uses[:k], srcInfo.Uses[k+1:]...)
						if !inWork[src] {
							work = append(work, src)
							inWork[src] = true
						}
						break
					}
				}
			}
		}
	}

	// Drop the marked instructions and their destination names.
	for _, b := range f.DomPreorder() {
		kept := b.Instrs[:0]
		for _, i := range b.Instrs {
			if marked[i] {
				if dst := i.Dst(); dst != nil {
					f.Scope.Remove((*dst).Name())
				}
				continue
			}
			kept = append(kept, i)
		}
		b.Instrs = kept
	}
}
