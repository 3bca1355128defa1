// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir_test

import (
	"testing"

	"golang.org/x/irtools/ir"
)

// loopSrc builds a loop whose induction variable feeds only itself:
// the phi at the head and the add in the latch keep each other alive
// and nothing else reads them.
const loopSrc = `
fn @f(%c: i1) {
$entry:
    %i <- mov i64 0;
    jmp $head;
$head:
    br %c ? $latch : $end;
$latch:
    %i <- add i64 %i, 0;
    jmp $head;
$end:
    ret;
}
`

func TestElimDeadCodeCircularPhi(t *testing.T) {
	prog := build(t, loopSrc)
	f := fn(t, prog, "f")
	f.ToSSA() // runs ElimDeadCode

	for _, b := range f.DFS() {
		for _, i := range b.Instrs {
			switch i.(type) {
			case *ir.Phi:
				t.Errorf("block %s still holds a phi", b.Name)
			case *ir.Bin:
				t.Errorf("block %s still holds the dead add", b.Name)
			case *ir.Mov:
				t.Errorf("block %s still holds the dead mov", b.Name)
			}
		}
	}

	// The removed names are gone from the scope.
	for _, name := range []string{"i.1", "i.2", "i.3"} {
		if f.Scope.Find(name) != nil {
			t.Errorf("scope still holds %s", name)
		}
	}
}

func TestElimDeadCodeKeepsSideEffects(t *testing.T) {
	const src = `
@g: i64;
fn @f() {
$entry:
    %p <- alloc i64;
    st i64 42, %p;
    @g <- mov i64 7;
    ret;
}
`
	prog := build(t, src)
	f := fn(t, prog, "f")
	f.ToSSA()

	entry := f.Entry
	var haveSt, haveGlobalMov, haveAlloc bool
	for _, i := range entry.Instrs {
		switch i := i.(type) {
		case *ir.St:
			haveSt = true
		case *ir.Mov:
			haveGlobalMov = i.Res.IsGlobalVar()
		case *ir.Alloc:
			haveAlloc = true
		}
	}
	if !haveSt {
		t.Error("store was removed")
	}
	if !haveGlobalMov {
		t.Error("global assignment was removed")
	}
	// The alloc feeds the store, so it must survive too.
	if !haveAlloc {
		t.Error("alloc feeding a store was removed")
	}
}

func TestElimDeadCodeIdempotent(t *testing.T) {
	prog := build(t, loopSrc)
	f := fn(t, prog, "f")
	f.ToSSA()
	before := printFn(f)
	f.ElimDeadCode()
	if after := printFn(f); after != before {
		t.Errorf("ElimDeadCode is not idempotent:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}
