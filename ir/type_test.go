// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir_test

import (
	"testing"

	"golang.org/x/irtools/ir"
)

func TestTypeEquality(t *testing.T) {
	pair := ir.StructType{Fields: []ir.Type{ir.I64, ir.PtrType{Elem: ir.I64}}}

	alias := ir.NewTypeSym("pair")
	alias.SetDef(pair)
	at := ir.AliasType{Sym: alias}

	// An alias compares equal to its definition, structurally.
	if !at.Equal(pair) {
		t.Error("alias not equal to its definition")
	}
	if !(ir.PtrType{Elem: at}).Equal(ir.PtrType{Elem: pair}) {
		t.Error("pointer to alias not equal to pointer to definition")
	}

	// Aliases of aliases resolve transitively.
	alias2 := ir.NewTypeSym("pair2")
	alias2.SetDef(at)
	if !(ir.AliasType{Sym: alias2}).Equal(pair) {
		t.Error("alias chain does not resolve")
	}

	if ir.I64.Equal(ir.I1) {
		t.Error("i64 equal to i1")
	}
	if (ir.ArrayType{Elem: ir.I64, Len: 2}).Equal(ir.ArrayType{Elem: ir.I64, Len: 3}) {
		t.Error("arrays of different length compare equal")
	}
}

func TestIsReg(t *testing.T) {
	for _, tt := range []struct {
		typ  ir.Type
		want bool
	}{
		{ir.I1, true},
		{ir.I64, true},
		{ir.PtrType{Elem: ir.StructType{Fields: []ir.Type{ir.I64}}}, true},
		{ir.Void, false},
		{ir.ArrayType{Elem: ir.I64, Len: 4}, false},
		{ir.StructType{Fields: []ir.Type{ir.I64}}, false},
	} {
		if got := ir.IsReg(tt.typ); got != tt.want {
			t.Errorf("IsReg(%s) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestParseConst(t *testing.T) {
	for _, tt := range []struct {
		text string
		typ  ir.Type
		ok   bool
	}{
		{"0", ir.I1, true},
		{"1", ir.I1, true},
		{"2", ir.I1, false},
		{"127", ir.IntType{Bits: 8}, true},
		{"-128", ir.IntType{Bits: 8}, true},
		{"128", ir.IntType{Bits: 8}, false},
		{"9223372036854775807", ir.I64, true},
		{"1", ir.Void, false},
		{"x", ir.I64, false},
	} {
		_, err := ir.ParseConst(tt.text, tt.typ)
		if (err == nil) != tt.ok {
			t.Errorf("ParseConst(%q, %s): err = %v, want ok = %v", tt.text, tt.typ, err, tt.ok)
		}
	}
}

func TestTypeFromString(t *testing.T) {
	for _, tt := range []struct {
		s  string
		ok bool
	}{
		{"void", true},
		{"i1", true},
		{"i64", true},
		{"i7", false},
		{"f64", false},
	} {
		_, err := ir.TypeFromString(tt.s)
		if (err == nil) != tt.ok {
			t.Errorf("TypeFromString(%q): err = %v, want ok = %v", tt.s, err, tt.ok)
		}
	}
}
