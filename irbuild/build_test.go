// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irbuild_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"golang.org/x/irtools/ir"
	"golang.org/x/irtools/irbuild"
)

// buildErr builds src and returns the message of the resulting
// CompileError, failing the test if the build succeeds or fails with
// some other kind of error.
func buildErr(t *testing.T, src string) string {
	t.Helper()
	_, err := irbuild.BuildSource([]byte(src))
	if err == nil {
		t.Fatal("build succeeded, want error")
	}
	var cerr *irbuild.CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %T (%v), want *CompileError", err, err)
	}
	return cerr.Msg
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"operand arity",
			`fn @f() {
$entry:
    %a <- add i64 1, 2, 3;
    ret;
}`,
			"expect 2 operand(s), got 3",
		},
		{
			"incomplete block",
			`fn @f(%x: i64, %y: i64) {
$entry:
    %a <- add i64 %x, %y;
}`,
			"block entry is not complete",
		},
		{
			"global redefinition",
			`@g: i64;
@g: i64;`,
			"variable g already defined",
		},
		{
			"function redefinition",
			`fn @f() {
$entry:
    ret;
}
fn @f() {
$entry:
    ret;
}`,
			"function f already defined",
		},
		{
			"type redefinition",
			`type @t: i64;
type @t: i1;`,
			"type t already defined",
		},
		{
			"parameter redefinition",
			`fn @f(%x: i64, %x: i64) {
$entry:
    ret;
}`,
			"parameter x already defined",
		},
		{
			"global of aggregate type",
			`@g: {i64};`,
			"cannot create global variable of type {i64}",
		},
		{
			"constant out of range",
			`@g <- 2: i1;`,
			"cannot create constant 2 of type i1",
		},
		{
			"main with parameter",
			`fn @main(%x: i64) {
$entry:
    ret;
}`,
			"expect 0 parameter, got 1",
		},
		{
			"main with return type",
			`fn @main() -> i64 {
$entry:
    ret 0;
}`,
			"expect void return type, got i64",
		},
		{
			"call main",
			`fn @main() {
$entry:
    call @main();
    ret;
}`,
			"cannot call function @main",
		},
		{
			"call unknown function",
			`fn @f() {
$entry:
    call @g();
    ret;
}`,
			"function g not found",
		},
		{
			"call non-function",
			`@g: i64;
fn @f() {
$entry:
    call @g();
    ret;
}`,
			"symbol g is not a function",
		},
		{
			"jmp to entry",
			`fn @f() {
$entry:
    jmp $entry;
}`,
			"cannot jump to function entry entry",
		},
		{
			"jmp to unknown label",
			`fn @f() {
$entry:
    jmp $nowhere;
}`,
			"label nowhere not found",
		},
		{
			"phi after non-phi",
			`fn @f(%c: i1) {
$entry:
    br %c ? $a : $b;
$a:
    %x.1 <- mov i64 1;
    jmp $j;
$b:
    %x.2 <- mov i64 2;
    jmp $j;
$j:
    %y <- mov i64 0;
    %x.3 <- phi i64 [$a: %x.1] [$b: %x.2];
    ret;
}`,
			"non-phi instruction found before phi's in block j",
		},
		{
			"global phi destination",
			`@g: i64;
fn @f(%c: i1) {
$entry:
    br %c ? $a : $b;
$a:
    jmp $j;
$b:
    jmp $j;
$j:
    @g <- phi i64 [$a: 1] [$b: 2];
    ret;
}`,
			"destination g is not local variable",
		},
		{
			"unknown operator",
			`fn @f(%x: i64) {
$entry:
    %a <- frob i64 %x;
    ret;
}`,
			"unknown operator frob",
		},
		{
			"mov of aggregate",
			`type @t: {i64};
fn @f(%x: i64) {
$entry:
    %a <- mov @t %x;
    ret;
}`,
			"cannot move value of type @t",
		},
		{
			"neg of i1",
			`fn @f(%c: i1) {
$entry:
    %a <- neg i1 %c;
    ret;
}`,
			"unary operation neg not supported for type i1",
		},
		{
			"operand type mismatch",
			`fn @f(%c: i1) {
$entry:
    %a <- add i64 %c, 1;
    ret;
}`,
			"expect symbol of type i64, found i1",
		},
		{
			"undefined operand",
			`fn @f() {
$entry:
    %a <- add i64 %x, 1;
    ret;
}`,
			"identifier %x not found in local scope",
		},
		{
			"struct index not constant",
			`fn @f(%i: i64) {
$entry:
    %p <- alloc {i64, i64};
    %q <- ptr *i64 %p [%i];
    ret;
}`,
			"index into structure type is not constant",
		},
		{
			"struct index out of range",
			`fn @f() {
$entry:
    %p <- alloc {i64, i64};
    %q <- ptr *i64 %p [2];
    ret;
}`,
			"index 2 out of range 2",
		},
		{
			"array index out of range",
			`fn @f() {
$entry:
    %p <- alloc [4]i64;
    %q <- ptr *i64 %p [4];
    ret;
}`,
			"index 4 out of range 4",
		},
		{
			"index into scalar",
			`fn @f() {
$entry:
    %p <- alloc i64;
    %q <- ptr *i64 %p [0];
    ret;
}`,
			"type i64 is not aggregate",
		},
		{
			"ptr of non-pointer base",
			`fn @f(%x: i64) {
$entry:
    %q <- ptr *i64 %x;
    ret;
}`,
			"expect pointer type, got i64",
		},
		{
			"ret value from void function",
			`fn @f() {
$entry:
    ret 1;
}`,
			"expect void, got value",
		},
		{
			"ret void from value function",
			`fn @f() -> i64 {
$entry:
    ret;
}`,
			"expect value, got void",
		},
		{
			"unknown type",
			`@g: i37;`,
			"unknown type i37",
		},
		{
			"type alias not found",
			`@g: @t;`,
			"type t not found",
		},
		{
			"alias of non-type",
			`@g: i64;
@h: @g;`,
			"g is not a type",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := buildErr(t, tt.src); got != tt.want {
				t.Errorf("got error %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVerifierErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"use before defined",
			`fn [ssa] @f(%c: i1) {
$entry:
    br %c ? $a : $b;
$a:
    %x <- mov i64 1;
    jmp $end;
$b:
    %y <- add i64 %x, 0;
    jmp $end;
$end:
    ret;
}`,
			"variable x is used before defined",
		},
		{
			"multiple definition",
			`fn [ssa] @f() {
$entry:
    %x <- mov i64 1;
    %x <- mov i64 2;
    ret;
}`,
			"variable x already defined",
		},
		{
			"missing phi source",
			`fn @f(%c: i1) -> i64 {
$entry:
    br %c ? $a : $b;
$a:
    %x.1 <- mov i64 1;
    jmp $j;
$b:
    %x.2 <- mov i64 2;
    jmp $j;
$j:
    %y <- phi i64 [$a: %x.1];
    ret %y;
}`,
			"phi operand not found for b",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := buildErr(t, tt.src); got != tt.want {
				t.Errorf("got error %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildHappyPath(t *testing.T) {
	const src = `
type @pair: {i64, *i64};
@g <- 5: i64;

fn @f(%x: i64, %c: i1) -> i64 {
$entry:
    %t <- lt i64 %x, 10;
    br %t ? $small : $big;
$small:
    %r <- mul i64 %x, 2;
    jmp $done;
$big:
    %r <- mov i64 @g;
    jmp $done;
$done:
    ret %r;
}
`
	prog, err := irbuild.BuildSource([]byte(src))
	if err != nil {
		t.Fatal(err)
	}

	// The comparison forced its destination to i1.
	f := prog.Funcs[0]
	cmpInstr := f.Entry.Instrs[0].(*ir.Bin)
	if !cmpInstr.Res.Type().Equal(ir.I1) {
		t.Errorf("comparison destination has type %s, want i1", cmpInstr.Res.Type())
	}

	// The single ret was collected as an exit.
	if len(f.Exits) != 1 {
		t.Errorf("got %d exit blocks, want 1", len(f.Exits))
	}

	// The global scope names the alias, the global and the function.
	for _, name := range []string{"pair", "g", "f"} {
		if prog.Global.Find(name) == nil {
			t.Errorf("global scope is missing %s", name)
		}
	}

	// Same parse tree builds to the same rendering.
	p2, err := irbuild.BuildSource([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	var b1, b2 strings.Builder
	prog.WriteTo(&b1)
	p2.WriteTo(&b2)
	if diff := cmp.Diff(b1.String(), b2.String()); diff != "" {
		t.Errorf("builds differ (-first +second):\n%s", diff)
	}
}

func TestRecursiveAlias(t *testing.T) {
	const src = `
type @node: {i64, *@node};

fn @f() {
$entry:
    %p <- alloc @node;
    %q <- ptr *{i64, *@node} %p;
    ret;
}
`
	prog, err := irbuild.BuildSource([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	sym := prog.Global.Find("node").(*ir.TypeSym)
	st, ok := sym.Def().(ir.StructType)
	if !ok {
		t.Fatalf("alias resolves to %T, want struct", sym.Def())
	}
	// The second field points back to the alias itself.
	pt := st.Fields[1].(ir.PtrType)
	at := pt.Elem.(ir.AliasType)
	if at.Sym != sym {
		t.Error("recursive alias does not point back to its own symbol")
	}
}
