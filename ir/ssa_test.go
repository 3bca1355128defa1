// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir_test

import (
	"testing"

	"golang.org/x/irtools/ir"
	"golang.org/x/irtools/irbuild"
)

// build is a test helper that parses and builds src, failing the test
// on any error.
func build(t *testing.T, src string) *ir.Program {
	t.Helper()
	prog, err := irbuild.BuildSource([]byte(src))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return prog
}

// fn returns the named function of prog.
func fn(t *testing.T, prog *ir.Program, name string) *ir.Function {
	t.Helper()
	for _, f := range prog.Funcs {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("function @%s not found", name)
	return nil
}

// blockByName returns the named block of f.
func blockByName(t *testing.T, f *ir.Function, name string) *ir.BasicBlock {
	t.Helper()
	for _, b := range f.DFS() {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("block %s not found", name)
	return nil
}

func TestToSSAStraightLine(t *testing.T) {
	const src = `
fn @f(%x: i64) -> i64 {
$entry:
    %x <- add i64 %x, 1;
    %x <- add i64 %x, 1;
    ret %x;
}
`
	prog := build(t, src)
	f := fn(t, prog, "f")
	f.ToSSA()

	if !f.IsSSA() {
		t.Fatal("function not marked SSA after ToSSA")
	}

	entry := f.Entry
	if len(entry.Instrs) != 3 {
		t.Fatalf("got %d instructions, want 3", len(entry.Instrs))
	}

	fst := entry.Instrs[0].(*ir.Bin)
	snd := entry.Instrs[1].(*ir.Bin)
	ret := entry.Instrs[2].(*ir.Ret)

	if got := fst.Res.Name(); got != "x.1" {
		t.Errorf("first add defines %s, want x.1", got)
	}
	if got := snd.Res.Name(); got != "x.2" {
		t.Errorf("second add defines %s, want x.2", got)
	}
	if got := fst.Fst.(ir.Var).Sym; got != f.Params[0] {
		t.Errorf("first add reads %s, want parameter x", got.Name())
	}
	if got := snd.Fst.(ir.Var).Sym.Name(); got != "x.1" {
		t.Errorf("second add reads %s, want x.1", got)
	}
	if got := ret.Val.(ir.Var).Sym.Name(); got != "x.2" {
		t.Errorf("ret reads %s, want x.2", got)
	}

	// The scope is rebuilt from the renamed symbols.
	for _, name := range []string{"x", "x.1", "x.2"} {
		if f.Scope.Find(name) == nil {
			t.Errorf("scope is missing %s", name)
		}
	}
}

const diamondSrc = `
fn @f(%c: i1) -> i64 {
$entry:
    br %c ? $left : $right;
$left:
    %y <- mov i64 1;
    jmp $join;
$right:
    %y <- mov i64 2;
    jmp $join;
$join:
    %r <- mov i64 %y;
    ret %r;
}
`

func TestToSSADiamond(t *testing.T) {
	prog := build(t, diamondSrc)
	f := fn(t, prog, "f")
	f.ToSSA()

	join := blockByName(t, f, "join")
	var phis []*ir.Phi
	for _, i := range join.Instrs {
		if phi, ok := i.(*ir.Phi); ok {
			phis = append(phis, phi)
		}
	}
	if len(phis) != 1 {
		t.Fatalf("join has %d phis, want exactly 1", len(phis))
	}
	phi := phis[0]

	if len(phi.Edges) != len(join.Preds) {
		t.Fatalf("phi has %d edges, want %d", len(phi.Edges), len(join.Preds))
	}
	for i := 1; i < len(phi.Edges); i++ {
		if phi.Edges[i-1].Pred.Name > phi.Edges[i].Pred.Name {
			t.Errorf("phi edges not ordered by predecessor name: %s > %s",
				phi.Edges[i-1].Pred.Name, phi.Edges[i].Pred.Name)
		}
	}

	// The two arms feed distinct versions of y.
	got := map[string]string{}
	for _, e := range phi.Edges {
		got[e.Pred.Name] = e.Val.(ir.Var).Sym.Name()
	}
	if got["left"] == got["right"] {
		t.Errorf("phi edges read the same version %s from both arms", got["left"])
	}
}

func TestToSSASingleDefinition(t *testing.T) {
	prog := build(t, diamondSrc)
	f := fn(t, prog, "f")
	f.ToSSA()

	// Every local symbol has exactly one definition point, and a
	// fresh verification pass finds nothing to complain about.
	defs := make(map[ir.Symbol]int)
	for _, b := range f.DFS() {
		for _, i := range b.Instrs {
			if dst := i.Dst(); dst != nil && (*dst).IsLocalVar() {
				defs[*dst]++
			}
		}
	}
	for sym, n := range defs {
		if n != 1 {
			t.Errorf("symbol %s has %d definitions", sym.Name(), n)
		}
	}

	v := ir.NewVerifier()
	f.WalkDom(v)
	if len(v.Errs) > 0 {
		t.Errorf("verifier rejects ToSSA output: %s", v.Errs[0])
	}
}

func TestToSSATwiceIsNoop(t *testing.T) {
	prog := build(t, diamondSrc)
	f := fn(t, prog, "f")
	f.ToSSA()
	before := printFn(f)
	f.ToSSA()
	if after := printFn(f); after != before {
		t.Errorf("second ToSSA changed the function:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}
