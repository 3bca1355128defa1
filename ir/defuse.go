// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// This file builds the def-use index of an SSA function.

// DefKind discriminates the definition positions of a symbol.
type DefKind int

const (
	// DefParam marks a symbol defined in the parameter list.
	DefParam DefKind = iota

	// DefInstr marks a symbol defined by an instruction.
	DefInstr

	// DefNone is a placeholder for a symbol observed in use whose
	// definition point has not been determined.  Partially
	// transformed SSA may exhibit such symbols.
	DefNone
)

// A DefPos is the definition position of a symbol.
type DefPos struct {
	Kind  DefKind
	Block *BasicBlock // valid for DefInstr
	Instr Instruction // valid for DefInstr
}

// A DefUse carries the definition point and the use points of one
// symbol.
type DefUse struct {
	Def  DefPos
	Uses []Instruction
}

// A DefUseMap indexes every local symbol of a function.
type DefUseMap map[Symbol]*DefUse

// DefUse computes the def-use index of f, which must be in SSA form.
func (f *Function) DefUse() DefUseMap {
	f.assertSSA()
	b := &defUseBuilder{info: make(DefUseMap)}
	f.WalkDom(b)
	return b.info
}

type defUseBuilder struct {
	info DefUseMap
	blk  []*BasicBlock // stack of entered blocks
}

func (d *defUseBuilder) OnBegin(f *Function) {
	for _, p := range f.Params {
		d.info[p] = &DefUse{Def: DefPos{Kind: DefParam}}
	}
}

func (d *defUseBuilder) OnEnd(f *Function) {}

func (d *defUseBuilder) OnEnter(b *BasicBlock) {
	d.blk = append(d.blk, b)
	VisitInstrs(d, b)
}

func (d *defUseBuilder) OnExit(b *BasicBlock) {
	d.blk = d.blk[:len(d.blk)-1]
}

func (d *defUseBuilder) OnEnterChild(parent, child *BasicBlock) {}
func (d *defUseBuilder) OnExitChild(parent, child *BasicBlock)  {}

func (d *defUseBuilder) OnInstr(i Instruction) { VisitValues(d, i) }

func (d *defUseBuilder) OnSuccPhi(this *BasicBlock, phi *Phi) { VisitSuccPhi(d, this, phi) }

func (d *defUseBuilder) OnUse(i Instruction, opd *Value) {
	sym, ok := isLocalValue(*opd)
	if !ok {
		return
	}
	if info, ok := d.info[sym]; ok {
		info.Uses = append(info.Uses, i)
	} else {
		d.info[sym] = &DefUse{
			Def:  DefPos{Kind: DefNone},
			Uses: []Instruction{i},
		}
	}
}

func (d *defUseBuilder) OnDef(i Instruction, dst *Symbol) {
	sym := *dst
	if !sym.IsLocalVar() {
		return
	}
	d.info[sym] = &DefUse{
		Def: DefPos{Kind: DefInstr, Block: d.blk[len(d.blk)-1], Instr: i},
	}
}

// RebuildScope rebuilds the scope of an SSA function from its
// parameters and the destination of every instruction, in depth-first
// block order.
func (f *Function) RebuildScope() {
	f.assertSSA()
	f.Scope.Clear()
	var syms []Symbol
	syms = append(syms, f.Params...)
	for _, b := range f.DFS() {
		for _, i := range b.Instrs {
			if dst := i.Dst(); dst != nil && (*dst).IsLocalVar() {
				syms = append(syms, *dst)
			}
		}
	}
	f.Scope.Append(syms)
}
