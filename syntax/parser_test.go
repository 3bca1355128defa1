// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"strings"
	"testing"
)

func TestParseProgram(t *testing.T) {
	const src = `
type @pair: {i64, *i64};
@g <- 5: i64;

fn [ssa] @f(%x: i64, %c: i1) -> *[4]i64 {
$entry:
    %t <- lt i64 %x, 10;
    br %t ? $a : $b;
$a:
    %p <- alloc [4]i64;
    %q <- ptr *i64 %p, %x [0];
    st i64 %x, %q;
    %v <- ld i64 %q;
    %n <- new i64, %v;
    jmp $b;
$b:
    %y <- phi *[4]i64 [$entry: %r] [$a: %p];
    %z <- call i64 @h(%x, 1);
    call @h(%x, 2);
    ret %y;
}
`
	prog, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Defs) != 3 {
		t.Fatalf("got %d top-level definitions, want 3", len(prog.Defs))
	}

	alias := prog.Defs[0].(*AliasDef)
	if alias.ID.Name() != "pair" {
		t.Errorf("alias name %q, want pair", alias.ID.Name())
	}
	st := alias.Type.Type.(*StructType)
	if n := len(st.Fields.List); n != 2 {
		t.Errorf("struct has %d fields, want 2", n)
	}

	v := prog.Defs[1].(*VarDef)
	if v.Init == nil || v.Init.Lit != "5" {
		t.Error("global initializer not parsed")
	}

	f := prog.Defs[2].(*FnDef)
	if f.Attribs == nil || len(f.Attribs.List) != 1 || f.Attribs.List[0].Lit != "ssa" {
		t.Error("attribute list not parsed")
	}
	if n := len(f.Sig.Params.List); n != 2 {
		t.Errorf("got %d parameters, want 2", n)
	}
	if f.Sig.Ret == nil {
		t.Fatal("return type not parsed")
	}
	if _, ok := f.Sig.Ret.Type.Type.(*PtrType); !ok {
		t.Errorf("return type is %T, want pointer", f.Sig.Ret.Type.Type)
	}
	if n := len(f.Body.Blocks); n != 3 {
		t.Fatalf("got %d blocks, want 3", n)
	}

	// The phi source pairs carry their predecessor labels.
	b := f.Body.Blocks[2]
	phi := b.Instrs[0].(*AssignInstr).RHS.(*PhiRhs)
	if n := len(phi.List.List); n != 2 {
		t.Fatalf("phi has %d sources, want 2", n)
	}
	if got := phi.List.List[0].Label.Name(); got != "entry" {
		t.Errorf("first phi label %q, want entry", got)
	}

	// ptr with offset and index list.
	a := f.Body.Blocks[1]
	ptr := a.Instrs[1].(*AssignInstr).RHS.(*PtrRhs)
	if n := len(ptr.Opds.List); n != 2 {
		t.Errorf("ptr has %d operands, want 2", n)
	}
	if ptr.Index == nil || len(ptr.Index.List.List) != 1 {
		t.Error("ptr index list not parsed")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // substring of the error message
	}{
		{"missing semicolon", "@g: i64", "expect"},
		{"body without blocks", "fn @f() { }", "{Label}"},
		{"instruction outside block", "fn @f() { ret; }", "{Label}"},
		{"phi without label", `fn @f() {
$b:
    %x <- phi i64 [%y];
    ret;
}`, "Label"},
		{"branch missing question", `fn @f() {
$b:
    br %c $a : $b;
}`, "?"},
		{"stray top level", "jmp $a;", "expect"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("parse succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte("@g @ i64;"))
	serr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %T, want *Error", err)
	}
	if serr.Pos.Line != 1 {
		t.Errorf("error at line %d, want 1", serr.Pos.Line)
	}
}
