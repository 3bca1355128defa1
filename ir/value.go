// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"fmt"
	"strconv"
)

// A Value is an instruction operand: either a reference to a symbol
// or an integer constant.
type Value interface {
	// Type returns the type of the value.
	Type() Type

	// String returns the source syntax of the value.
	String() string
}

// A Var is a use of a symbol.
type Var struct {
	Sym Symbol
}

func (v Var) Type() Type { return v.Sym.Type() }

func (v Var) String() string {
	if v.Sym.IsGlobalVar() {
		return "@" + v.Sym.Name()
	}
	return "%" + v.Sym.Name()
}

// A Const is an integer constant of type i1 or a wider integer type.
type Const struct {
	Typ Type
	Val int64 // 0 or 1 for i1
}

func (c Const) Type() Type     { return c.Typ }
func (c Const) String() string { return strconv.FormatInt(c.Val, 10) }

// ParseConst parses text as a constant of the given target type.
func ParseConst(text string, typ Type) (Const, error) {
	t, ok := typ.Orig().(IntType)
	if !ok {
		return Const{}, fmt.Errorf("cannot create constant %s of type %s", text, typ)
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Const{}, fmt.Errorf("cannot create constant %s of type %s", text, typ)
	}
	if t.Bits == 1 && v != 0 && v != 1 {
		return Const{}, fmt.Errorf("cannot create constant %s of type %s", text, typ)
	}
	if t.Bits < 64 && t.Bits > 1 {
		if max := int64(1)<<(t.Bits-1) - 1; v > max || v < -max-1 {
			return Const{}, fmt.Errorf("cannot create constant %s of type %s", text, typ)
		}
	}
	return Const{Typ: typ, Val: v}, nil
}

// isGlobalValue reports whether v is a use of a global variable.
func isGlobalValue(v Value) bool {
	u, ok := v.(Var)
	return ok && u.Sym.IsGlobalVar()
}

// isLocalValue reports whether v is a use of a local variable,
// returning the symbol if so.
func isLocalValue(v Value) (Symbol, bool) {
	u, ok := v.(Var)
	if ok && u.Sym.IsLocalVar() {
		return u.Sym, true
	}
	return nil, false
}
