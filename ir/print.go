// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// This file renders a program back to source syntax.  The output
// parses and builds to a structurally equal program, which is what
// the round-trip tests rely on.

import (
	"bytes"
	"fmt"
	"io"
)

// WriteTo writes the source rendering of the program to w.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	WriteProgram(&buf, p)
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

var _ io.WriterTo = (*Program)(nil)

// WriteProgram writes to buf the source rendering of p.
func WriteProgram(buf *bytes.Buffer, p *Program) {
	// Type aliases first: globals and functions may mention them.
	for _, sym := range p.Global.Symbols() {
		if t, ok := sym.(*TypeSym); ok {
			fmt.Fprintf(buf, "type @%s: %s;\n", t.Name(), t.Def())
		}
	}
	for _, v := range p.Vars {
		if v.Init != nil {
			fmt.Fprintf(buf, "@%s <- %s: %s;\n", v.Name, v.Init, v.Typ)
		} else {
			fmt.Fprintf(buf, "@%s: %s;\n", v.Name, v.Typ)
		}
	}
	for _, f := range p.Funcs {
		buf.WriteByte('\n')
		WriteFunction(buf, f)
	}
}

// WriteFunction writes to buf the source rendering of f.
func WriteFunction(buf *bytes.Buffer, f *Function) {
	buf.WriteString("fn ")
	if len(f.Attribs) > 0 {
		buf.WriteByte('[')
		for i, a := range f.Attribs {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(a.String())
		}
		buf.WriteString("] ")
	}
	fmt.Fprintf(buf, "@%s(", f.Name)
	for i, p := range f.Params {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%%%s: %s", p.Name(), p.Type())
	}
	buf.WriteByte(')')
	if !f.Ret.Equal(Void) {
		fmt.Fprintf(buf, " -> %s", f.Ret)
	}
	buf.WriteString(" {\n")
	for _, b := range f.DFS() {
		fmt.Fprintf(buf, "$%s:\n", b.Name)
		for _, i := range b.Instrs {
			buf.WriteString("    ")
			writeInstr(buf, i)
			buf.WriteString("\n")
		}
	}
	buf.WriteString("}\n")
}

func writeInstr(buf *bytes.Buffer, instr Instruction) {
	switch i := instr.(type) {
	case *Mov:
		fmt.Fprintf(buf, "%s <- mov %s %s;", Var{i.Res}, i.Res.Type(), i.Src)
	case *Un:
		fmt.Fprintf(buf, "%s <- %s %s %s;", Var{i.Res}, i.Op, i.Res.Type(), i.Opd)
	case *Bin:
		fmt.Fprintf(buf, "%s <- %s %s %s, %s;", Var{i.Res}, i.Op, i.Fst.Type(), i.Fst, i.Snd)
	case *Jmp:
		fmt.Fprintf(buf, "jmp $%s;", i.Tgt.Name)
	case *Br:
		fmt.Fprintf(buf, "br %s ? $%s : $%s;", i.Cond, i.True.Name, i.False.Name)
	case *Call:
		if i.Res != nil {
			fmt.Fprintf(buf, "%s <- call %s @%s(", Var{i.Res}, i.Fn.Ret, i.Fn.Name)
		} else {
			fmt.Fprintf(buf, "call @%s(", i.Fn.Name)
		}
		for k, a := range i.Args {
			if k > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(a.String())
		}
		buf.WriteString(");")
	case *Ret:
		if i.Val != nil {
			fmt.Fprintf(buf, "ret %s;", i.Val)
		} else {
			buf.WriteString("ret;")
		}
	case *Phi:
		fmt.Fprintf(buf, "%s <- phi %s", Var{i.Res}, i.Res.Type())
		for _, e := range i.Edges {
			fmt.Fprintf(buf, " [$%s: %s]", e.Pred.Name, e.Val)
		}
		buf.WriteString(";")
	case *Alloc:
		fmt.Fprintf(buf, "%s <- alloc %s;", Var{i.Res}, pointee(i.Res.Type()))
	case *New:
		fmt.Fprintf(buf, "%s <- new %s", Var{i.Res}, pointee(i.Res.Type()))
		if i.Len != nil {
			fmt.Fprintf(buf, ", %s", i.Len)
		}
		buf.WriteString(";")
	case *Ptr:
		fmt.Fprintf(buf, "%s <- ptr %s %s", Var{i.Res}, i.Res.Type(), i.Base)
		if i.Off != nil {
			fmt.Fprintf(buf, ", %s", i.Off)
		}
		if len(i.Indices) > 0 {
			buf.WriteString(" [")
			for k, x := range i.Indices {
				if k > 0 {
					buf.WriteString(", ")
				}
				buf.WriteString(x.String())
			}
			buf.WriteString("]")
		}
		buf.WriteString(";")
	case *Ld:
		fmt.Fprintf(buf, "%s <- ld %s %s;", Var{i.Res}, i.Res.Type(), i.Ptr)
	case *St:
		fmt.Fprintf(buf, "st %s %s, %s;", i.Src.Type(), i.Src, i.Ptr)
	default:
		panic(fmt.Sprintf("unexpected instruction %T", instr))
	}
}

// pointee returns the element type of a pointer-typed destination.
func pointee(t Type) Type {
	return t.Orig().(PtrType).Elem
}
