// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// This file defines the instruction set.  Each instruction is a
// pointer type so instructions can be collected in identity-keyed
// sets.  Operand and destination slots are exposed as pointers into
// the instruction (Srcs, Dst) so passes can rewrite them in place
// without rebuilding the instruction list.

// An Instruction is a single IR operation inside a basic block.
type Instruction interface {
	// Name returns the mnemonic of the instruction.
	Name() string

	// IsCtrl reports whether the instruction transfers control.
	// Every basic block ends with exactly one such instruction.
	IsCtrl() bool

	// Dst returns the slot holding the symbol the instruction
	// defines, or nil if it defines none.
	Dst() *Symbol

	// Srcs returns the slots of all source operands.
	Srcs() []*Value

	// HasSideEffect reports whether the instruction has an effect
	// beyond its destination: calls (assumed), stores, and any
	// definition of a global variable.
	HasSideEffect() bool
}

// UnOp is a unary operator.
type UnOp int

const (
	Neg UnOp = iota // two's complement negation
	Not             // bitwise complement
)

var unOpNames = map[UnOp]string{Neg: "neg", Not: "not"}

var unOpFromString = map[string]UnOp{"neg": Neg, "not": Not}

func (op UnOp) String() string { return unOpNames[op] }

// UnOpFromString looks up a unary operator by its spelling.
func UnOpFromString(s string) (UnOp, bool) {
	op, ok := unOpFromString[s]
	return op, ok
}

// AvailFor reports whether the operator is defined for operands of
// type t.  Negation requires a multi-bit integer; complement accepts
// any integer, acting as logical not on i1.
func (op UnOp) AvailFor(t Type) bool {
	i, ok := t.Orig().(IntType)
	if !ok {
		return false
	}
	if op == Neg {
		return i.Bits > 1
	}
	return true
}

// BinOp is a binary operator: arithmetic (Add..Shr) or comparison
// (Eq..Ge).
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Mod
	And
	Or
	Xor
	Shl
	Shr
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
)

var binOpNames = [...]string{
	Add: "add", Sub: "sub", Mul: "mul", Div: "div", Mod: "mod",
	And: "and", Or: "or", Xor: "xor", Shl: "shl", Shr: "shr",
	Eq: "eq", Ne: "ne", Lt: "lt", Le: "le", Gt: "gt", Ge: "ge",
}

var binOpFromString = make(map[string]BinOp)

func init() {
	for op, name := range binOpNames {
		binOpFromString[name] = BinOp(op)
	}
}

func (op BinOp) String() string { return binOpNames[op] }

// BinOpFromString looks up a binary operator by its spelling.
func BinOpFromString(s string) (BinOp, bool) {
	op, ok := binOpFromString[s]
	return op, ok
}

// IsCmp reports whether the operator is a comparison.  Comparisons
// produce an i1 destination regardless of operand type.
func (op BinOp) IsCmp() bool { return op >= Eq }

// AvailFor reports whether the operator is defined for operands of
// type t.  The bitwise connectives and all comparisons accept any
// integer; the remaining arithmetic requires a multi-bit integer.
func (op BinOp) AvailFor(t Type) bool {
	i, ok := t.Orig().(IntType)
	if !ok {
		return false
	}
	switch op {
	case And, Or, Xor, Eq, Ne, Lt, Le, Gt, Ge:
		return true
	}
	return i.Bits > 1
}

// Mov copies a register value.
type Mov struct {
	Src Value
	Res Symbol
}

// Un applies a unary operator.
type Un struct {
	Op  UnOp
	Opd Value
	Res Symbol
}

// Bin applies a binary operator.
type Bin struct {
	Op  BinOp
	Fst Value
	Snd Value
	Res Symbol
}

// Jmp branches unconditionally to Tgt.
type Jmp struct {
	Tgt *BasicBlock
}

// Br branches to True if the i1 condition holds, else to False.
type Br struct {
	Cond  Value
	True  *BasicBlock
	False *BasicBlock
}

// Call invokes a function.  Res is nil when the result, if any, is
// discarded.
type Call struct {
	Fn   *Function
	Args []Value
	Res  Symbol
}

// Ret returns from the enclosing function.  Val is nil for void
// functions.
type Ret struct {
	Val Value
}

// A PhiSrc pairs a predecessor block with the value the phi takes
// when control arrives from it.
type PhiSrc struct {
	Pred *BasicBlock
	Val  Value
}

// Phi selects a value according to the predecessor that transferred
// control.  Its edges are kept sorted by predecessor block name.
type Phi struct {
	Edges []PhiSrc
	Res   Symbol
}

// Alloc allocates stack storage; the destination has pointer type.
type Alloc struct {
	Res Symbol
}

// New allocates heap storage; the optional Len operand is an i64
// element count.
type New struct {
	Res Symbol
	Len Value // nil if absent
}

// Ptr performs pointer arithmetic and aggregate indexing.  Off, if
// present, offsets Base by a multiple of the pointee size; each index
// in Indices then steps into the aggregate.  The destination is a
// pointer to the element reached.
type Ptr struct {
	Base    Value
	Off     Value // nil if absent
	Indices []Value
	Res     Symbol
}

// Ld loads a register value through a pointer.
type Ld struct {
	Ptr Value
	Res Symbol
}

// St stores a register value through a pointer.
type St struct {
	Src Value
	Ptr Value
}

func (*Mov) Name() string   { return "mov" }
func (i *Un) Name() string  { return i.Op.String() }
func (i *Bin) Name() string { return i.Op.String() }
func (*Jmp) Name() string   { return "jmp" }
func (*Br) Name() string    { return "br" }
func (*Call) Name() string  { return "call" }
func (*Ret) Name() string   { return "ret" }
func (*Phi) Name() string   { return "phi" }
func (*Alloc) Name() string { return "alloc" }
func (*New) Name() string   { return "new" }
func (*Ptr) Name() string   { return "ptr" }
func (*Ld) Name() string    { return "ld" }
func (*St) Name() string    { return "st" }

func (*Mov) IsCtrl() bool   { return false }
func (*Un) IsCtrl() bool    { return false }
func (*Bin) IsCtrl() bool   { return false }
func (*Jmp) IsCtrl() bool   { return true }
func (*Br) IsCtrl() bool    { return true }
func (*Call) IsCtrl() bool  { return false }
func (*Ret) IsCtrl() bool   { return true }
func (*Phi) IsCtrl() bool   { return false }
func (*Alloc) IsCtrl() bool { return false }
func (*New) IsCtrl() bool   { return false }
func (*Ptr) IsCtrl() bool   { return false }
func (*Ld) IsCtrl() bool    { return false }
func (*St) IsCtrl() bool    { return false }

func (i *Mov) Dst() *Symbol { return &i.Res }
func (i *Un) Dst() *Symbol  { return &i.Res }
func (i *Bin) Dst() *Symbol { return &i.Res }
func (*Jmp) Dst() *Symbol   { return nil }
func (*Br) Dst() *Symbol    { return nil }
func (i *Call) Dst() *Symbol {
	if i.Res == nil {
		return nil
	}
	return &i.Res
}
func (*Ret) Dst() *Symbol     { return nil }
func (i *Phi) Dst() *Symbol   { return &i.Res }
func (i *Alloc) Dst() *Symbol { return &i.Res }
func (i *New) Dst() *Symbol   { return &i.Res }
func (i *Ptr) Dst() *Symbol   { return &i.Res }
func (i *Ld) Dst() *Symbol    { return &i.Res }
func (*St) Dst() *Symbol      { return nil }

func (i *Mov) Srcs() []*Value { return []*Value{&i.Src} }
func (i *Un) Srcs() []*Value  { return []*Value{&i.Opd} }
func (i *Bin) Srcs() []*Value { return []*Value{&i.Fst, &i.Snd} }
func (*Jmp) Srcs() []*Value   { return nil }
func (i *Br) Srcs() []*Value  { return []*Value{&i.Cond} }
func (i *Call) Srcs() []*Value {
	s := make([]*Value, len(i.Args))
	for k := range i.Args {
		s[k] = &i.Args[k]
	}
	return s
}
func (i *Ret) Srcs() []*Value {
	if i.Val == nil {
		return nil
	}
	return []*Value{&i.Val}
}
func (i *Phi) Srcs() []*Value {
	s := make([]*Value, len(i.Edges))
	for k := range i.Edges {
		s[k] = &i.Edges[k].Val
	}
	return s
}
func (*Alloc) Srcs() []*Value { return nil }
func (i *New) Srcs() []*Value {
	if i.Len == nil {
		return nil
	}
	return []*Value{&i.Len}
}
func (i *Ptr) Srcs() []*Value {
	s := []*Value{&i.Base}
	if i.Off != nil {
		s = append(s, &i.Off)
	}
	for k := range i.Indices {
		s = append(s, &i.Indices[k])
	}
	return s
}
func (i *Ld) Srcs() []*Value { return []*Value{&i.Ptr} }
func (i *St) Srcs() []*Value { return []*Value{&i.Src, &i.Ptr} }

// HasSideEffect implementations.  Calls are assumed effectful, stores
// modify memory, and any other instruction is effectful exactly when
// its destination is a global.

func (*Call) HasSideEffect() bool { return true }
func (*St) HasSideEffect() bool   { return true }

func (i *Mov) HasSideEffect() bool   { return defsGlobal(i) }
func (i *Un) HasSideEffect() bool    { return defsGlobal(i) }
func (i *Bin) HasSideEffect() bool   { return defsGlobal(i) }
func (*Jmp) HasSideEffect() bool     { return false }
func (*Br) HasSideEffect() bool      { return false }
func (*Ret) HasSideEffect() bool     { return false }
func (i *Phi) HasSideEffect() bool   { return defsGlobal(i) }
func (i *Alloc) HasSideEffect() bool { return defsGlobal(i) }
func (i *New) HasSideEffect() bool   { return defsGlobal(i) }
func (i *Ptr) HasSideEffect() bool   { return defsGlobal(i) }
func (i *Ld) HasSideEffect() bool    { return defsGlobal(i) }

func defsGlobal(i Instruction) bool {
	dst := i.Dst()
	return dst != nil && (*dst).IsGlobalVar()
}
