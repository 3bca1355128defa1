// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// This file converts a function to SSA form: phi placement on the
// iterated dominance frontier followed by a renaming walk of the
// dominator tree.
//
// Cited papers and resources:
//
// Ron Cytron et al. 1991. Efficiently computing SSA form...
// http://doi.acm.org/10.1145/115372.115320

import (
	"fmt"
	"os"
	"sort"
)

// If true, show diagnostic information at each step of SSA
// conversion.  Very verbose.
const debugSSA = false

// ToSSA converts f to SSA form: it places phi instructions, renames
// definitions and uses along the dominator tree, and removes the dead
// code the transformation leaves behind.  A function already in SSA
// form is left untouched.  BuildDom must have run.
func (f *Function) ToSSA() {
	if f.ssa {
		return
	}
	df := f.ComputeDF()
	f.insertPhi(df)
	f.rename()
	f.ssa = true
	f.ElimDeadCode()
}

// insertPhi places a phi instruction for each variable on the
// iterated dominance frontier of its definition sites, using the
// classical worklist.  The phis are placeholders: every source pair
// still names the original variable, to be rewritten by the renaming
// walk.
func (f *Function) insertPhi(df map[*BasicBlock][]*BasicBlock) {
	blocks := f.DFS()

	// inserted records the variables a phi has been placed for in
	// each block; orig the variables each block defines; defSite
	// the blocks defining each variable.
	inserted := make(map[*BasicBlock]map[Symbol]bool)
	orig := make(map[*BasicBlock]map[Symbol]bool)
	defSite := make(map[Symbol][]*BasicBlock)
	for _, b := range blocks {
		inserted[b] = make(map[Symbol]bool)
		def := definedSyms(b)
		orig[b] = def
		for sym := range def {
			defSite[sym] = append(defSite[sym], b)
		}
	}

	for _, sym := range f.Scope.Symbols() {
		work := append([]*BasicBlock(nil), defSite[sym]...)
		inWork := make(map[*BasicBlock]bool)
		for _, b := range work {
			inWork[b] = true
		}
		for len(work) > 0 {
			b := work[len(work)-1]
			work = work[:len(work)-1]
			inWork[b] = false
			for _, d := range df[b] {
				if inserted[d][sym] {
					continue
				}
				phi := &Phi{Res: sym}
				for _, pred := range d.Preds {
					phi.Edges = append(phi.Edges, PhiSrc{Pred: pred, Val: Var{Sym: sym}})
				}
				sort.Slice(phi.Edges, func(i, j int) bool {
					return phi.Edges[i].Pred.Name < phi.Edges[j].Pred.Name
				})
				d.PushFront(phi)
				if debugSSA {
					fmt.Fprintf(os.Stderr, "place phi for %%%s at block %s\n", sym.Name(), d)
				}
				inserted[d][sym] = true
				if !orig[d][sym] && !inWork[d] {
					work = append(work, d)
					inWork[d] = true
				}
			}
		}
	}
}

// renamedSym tracks the renaming state of one original variable.
type renamedSym struct {
	name  string   // original name
	count int      // number of versions issued
	stack []Symbol // currently live versions, innermost last
}

func (r *renamedSym) latest() Symbol { return r.stack[len(r.stack)-1] }

func (r *renamedSym) pop() { r.stack = r.stack[:len(r.stack)-1] }

// next issues a fresh version of the variable and makes it current.
func (r *renamedSym) next() Symbol {
	r.count++
	sym := NewLocal(fmt.Sprintf("%s.%d", r.name, r.count), r.latest().Type())
	r.stack = append(r.stack, sym)
	return sym
}

// renamer rewrites every definition to a fresh version of its
// variable and every use to the version live on the dominator chain.
type renamer struct {
	syms  map[string]*renamedSym
	def   [][]string // per-block frames of names defined there
	scope *Scope
}

func (f *Function) rename() {
	f.WalkDom(&renamer{syms: make(map[string]*renamedSym)})
}

func (r *renamer) OnBegin(f *Function) {
	// Seed each variable's stack with an unversioned symbol and
	// rebuild the function scope from those.
	var added []Symbol
	for _, sym := range f.Scope.Symbols() {
		fresh := NewLocal(sym.Name(), sym.Type())
		added = append(added, fresh)
		r.syms[sym.Name()] = &renamedSym{name: sym.Name(), stack: []Symbol{fresh}}
	}
	f.Scope.Clear()
	f.Scope.Append(added)

	// Parameters are renamed before any block is entered.
	for i := range f.Params {
		f.Params[i] = r.syms[f.Params[i].Name()].latest()
	}

	r.scope = f.Scope
}

func (r *renamer) OnEnd(f *Function) {
	r.syms = make(map[string]*renamedSym)
	r.def = nil
	r.scope = nil
}

func (r *renamer) OnEnter(b *BasicBlock) {
	r.def = append(r.def, nil)
	VisitInstrs(r, b)
}

func (r *renamer) OnExit(b *BasicBlock) {
	frame := r.def[len(r.def)-1]
	for _, name := range frame {
		r.syms[name].pop()
	}
	r.def = r.def[:len(r.def)-1]
}

func (r *renamer) OnEnterChild(parent, child *BasicBlock) {}
func (r *renamer) OnExitChild(parent, child *BasicBlock)  {}

func (r *renamer) OnInstr(i Instruction) { VisitValues(r, i) }

func (r *renamer) OnSuccPhi(this *BasicBlock, phi *Phi) { VisitSuccPhi(r, this, phi) }

func (r *renamer) OnUse(i Instruction, opd *Value) {
	if sym, ok := isLocalValue(*opd); ok {
		*opd = Var{Sym: r.syms[sym.Name()].latest()}
	}
}

func (r *renamer) OnDef(i Instruction, dst *Symbol) {
	if !(*dst).IsLocalVar() {
		return
	}
	rs := r.syms[(*dst).Name()]
	sym := rs.next()
	r.def[len(r.def)-1] = append(r.def[len(r.def)-1], rs.name)
	r.scope.Insert(sym)
	*dst = sym
}
