// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax defines the concrete syntax of the IR source
// language: its tokens, a scanner, a recursive-descent parser, and
// the parse tree the semantic builder consumes.
//
// Identifiers carry a sigil classifying them: @ for globals, % for
// locals, $ for block labels.  The parser performs no name or type
// resolution; it only establishes tree shape.
package syntax

// A Node is a parse tree node.
type Node interface {
	// Pos returns the source position of the first token of the
	// node.
	Pos() Pos
}

type node struct {
	pos Pos
}

func (n node) Pos() Pos { return n.pos }

// A Program is the root node: the top-level definitions in source
// order.  Each element is an *AliasDef, *VarDef or *FnDef.
type Program struct {
	node
	Defs []Node
}

// An AliasDef declares a named type: type @name: T;
type AliasDef struct {
	node
	ID   Token
	Type *TypeDecl
}

// A VarDef declares a global variable: @name <- init: T;
type VarDef struct {
	node
	ID   Token
	Init *Token // nil if uninitialized
	Type *TypeDecl
}

// A FnDef declares a function: fn [attribs] sig { body }
type FnDef struct {
	node
	Attribs *FnAttribList // nil if absent
	Sig     *FnSig
	Body    *FnBody
}

// A FnSig is a function signature: @name(params) -> ret
type FnSig struct {
	node
	ID     Token
	Params *ParamList
	Ret    *FnRet // nil for void
}

// A FnAttribList is a bracketed attribute list.
type FnAttribList struct {
	node
	List []Token
}

// A ParamList holds the parameter declarations.
type ParamList struct {
	node
	List []*ParamDef
}

// A ParamDef is one parameter: %name: T
type ParamDef struct {
	node
	ID   Token
	Type *TypeDecl
}

// A FnRet is a return type clause: -> T
type FnRet struct {
	node
	Type *TypeDecl
}

// A FnBody is the braced list of labelled blocks.
type FnBody struct {
	node
	Blocks []*BlockDef
}

// A BlockDef is a labelled basic block: $name: instrs
type BlockDef struct {
	node
	ID     Token
	Instrs []Node // *AssignInstr | *NonAssignInstr
}

// An AssignInstr is an instruction with a destination: id <- rhs;
type AssignInstr struct {
	node
	ID  Token
	RHS Node // *CommonRhs | *CallRhs | *PhiRhs | *PtrRhs | *AllocRhs | *NewRhs
}

// A NonAssignInstr wraps an instruction without a destination.
type NonAssignInstr struct {
	node
	Instr Node // *RetInstr | *NoRetCall | *JmpInstr | *BrInstr | *StInstr
}

// A CommonRhs is an operator application: op T opd, opd
type CommonRhs struct {
	node
	Name Token // operator spelling
	Type *TypeDecl
	Opds *OpdList
}

// A CallRhs is a call with a result: call T @f(args)
type CallRhs struct {
	node
	Type *TypeDecl
	Call *FnCall
}

// A PhiRhs is a phi selector: phi T [$pred: opd]...
type PhiRhs struct {
	node
	Type *TypeDecl
	List *PhiList
}

// A PtrRhs is pointer arithmetic: ptr T base(, off)? ([indices])?
type PtrRhs struct {
	node
	Type  *TypeDecl
	Opds  *OpdList
	Index *IndexList // nil if absent
}

// An AllocRhs is a stack allocation: alloc T
type AllocRhs struct {
	node
	Type *TypeDecl
}

// A NewRhs is a heap allocation: new T(, len)?
type NewRhs struct {
	node
	Type *TypeDecl
	Len  *Token // nil if absent
}

// A PhiList holds the bracketed phi source pairs.
type PhiList struct {
	node
	List []*PhiOpd
}

// A PhiOpd is one phi source: [$pred: opd]
type PhiOpd struct {
	node
	Label Token
	Opd   Token
}

// An IndexList is a bracketed operand list of aggregate indices.
type IndexList struct {
	node
	List *OpdList
}

// An OpdList is a comma-separated operand list.
type OpdList struct {
	node
	List []Token
}

// A FnCall is a callee with arguments: @f(args)
type FnCall struct {
	node
	Func Token
	Args *OpdList
}

// A RetInstr returns from the function: ret opd?
type RetInstr struct {
	node
	Opd *Token // nil for void return
}

// A NoRetCall is a call statement discarding any result.
type NoRetCall struct {
	node
	Call *FnCall
}

// A JmpInstr is an unconditional branch: jmp $target
type JmpInstr struct {
	node
	Target Token
}

// A BrInstr is a conditional branch: br cond ? $true : $false
type BrInstr struct {
	node
	Cond  Token
	True  Token
	False Token
}

// A StInstr is a store: st T src, ptr
type StInstr struct {
	node
	Type *TypeDecl
	Src  Token
	Dst  Token
}

// A TypeDecl wraps one type form.
type TypeDecl struct {
	node
	Type Node // *PrimType | *AliasName | *PtrType | *ArrayType | *StructType
}

// A PrimType is a primitive type name: void, i1, i64, ...
type PrimType struct {
	node
	Type Token
}

// An AliasName refers to a declared type: @name
type AliasName struct {
	node
	ID Token
}

// A PtrType is a pointer type: *T
type PtrType struct {
	node
	Target *TypeDecl
}

// An ArrayType is a fixed-length array type: [n]T
type ArrayType struct {
	node
	Len  Token
	Elem *TypeDecl
}

// A StructType is a struct type: {T, T, ...}
type StructType struct {
	node
	Fields *TypeList
}

// A TypeList is a comma-separated list of types.
type TypeList struct {
	node
	List []*TypeDecl
}
