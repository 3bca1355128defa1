// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// This file implements copy propagation on SSA form.  Every mov is
// recorded as a substitution, every dominated use of the mov's
// destination is rewritten to the source, and the movs themselves are
// dropped.  Substitutions are scoped by dominator-tree frame, so each
// replacement target has its defining mov on the dominator chain and
// SSA dominance is preserved.

// PropagateCopies runs copy propagation on f, which must be in SSA
// form.  Afterwards no mov instruction remains and every former use
// of a mov destination reads the mov's source value directly.
func (f *Function) PropagateCopies() {
	f.assertSSA()
	f.WalkDom(&copyListener{sub: make(map[Symbol]Value), rm: make(map[Instruction]bool)})
}

type copyListener struct {
	sub map[Symbol]Value // active substitutions
	def [][]Symbol       // per-block frames of substituted names
	rm  map[Instruction]bool
}

func (c *copyListener) OnBegin(f *Function) {}
func (c *copyListener) OnEnd(f *Function)   {}

func (c *copyListener) OnEnter(b *BasicBlock) {
	c.def = append(c.def, nil)
	VisitInstrs(c, b)

	// Drop the movs recorded while visiting this block.
	kept := b.Instrs[:0]
	for _, i := range b.Instrs {
		if !c.rm[i] {
			kept = append(kept, i)
		}
	}
	b.Instrs = kept
}

func (c *copyListener) OnExit(b *BasicBlock) {
	frame := c.def[len(c.def)-1]
	for _, sym := range frame {
		delete(c.sub, sym)
	}
	c.def = c.def[:len(c.def)-1]
}

func (c *copyListener) OnEnterChild(parent, child *BasicBlock) {}
func (c *copyListener) OnExitChild(parent, child *BasicBlock)  {}

func (c *copyListener) OnInstr(i Instruction) {
	if mov, ok := i.(*Mov); ok {
		// Resolve through the map first so chained movs land on
		// the ultimate source.
		src := mov.Src
		if sym, ok := isLocalValue(src); ok {
			if v, ok := c.sub[sym]; ok {
				src = v
			}
		}
		c.sub[mov.Res] = src
		c.def[len(c.def)-1] = append(c.def[len(c.def)-1], mov.Res)
		c.rm[i] = true
		return
	}
	VisitValues(c, i)
}

func (c *copyListener) OnSuccPhi(this *BasicBlock, phi *Phi) { VisitSuccPhi(c, this, phi) }

func (c *copyListener) OnUse(i Instruction, opd *Value) {
	if sym, ok := isLocalValue(*opd); ok {
		if v, ok := c.sub[sym]; ok {
			*opd = v
		}
	}
}

func (c *copyListener) OnDef(i Instruction, dst *Symbol) {}
