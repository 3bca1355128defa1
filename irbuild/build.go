// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package irbuild lifts a parse tree into the in-memory IR, checking
// names, types and structure as it goes.
//
// Building runs in two passes over the top-level definitions.  The
// first inserts every type alias name with an empty definition and
// then fills each definition in, so aliases may refer forward; it
// also builds global variables and function signatures.  The second
// pass builds function bodies.  The first error found aborts the
// build.
package irbuild

import (
	"sort"
	"strconv"

	"golang.org/x/xerrors"

	"golang.org/x/irtools/ir"
	"golang.org/x/irtools/syntax"
)

// A Builder lifts one parse tree.
type Builder struct {
	root *syntax.Program
}

// NewBuilder returns a builder for the given parse tree.
func NewBuilder(root *syntax.Program) *Builder {
	return &Builder{root: root}
}

// BuildSource parses and builds src in one step.
func BuildSource(src []byte) (*ir.Program, error) {
	root, err := syntax.Parse(src)
	if err != nil {
		return nil, xerrors.Errorf("parse: %w", err)
	}
	return NewBuilder(root).Build()
}

// context carries the state needed while lifting the instructions of
// one function body.
type context struct {
	global *ir.Scope
	fn     *ir.Function
	labels map[string]*ir.BasicBlock
	block  *ir.BasicBlock
}

// Build lifts the parse tree into a program, performing semantic
// analysis along the way.
func (b *Builder) Build() (*ir.Program, error) {
	prog := ir.NewProgram()
	bodies, err := b.buildTopLevel(prog)
	if err != nil {
		return nil, err
	}
	for i, fn := range prog.Funcs {
		if err := b.buildBody(bodies[i], fn, prog.Global); err != nil {
			return nil, err
		}
	}
	return prog, nil
}

func (b *Builder) buildTopLevel(prog *ir.Program) ([]*syntax.FnBody, error) {
	// Insert alias names first so they can be referenced before
	// their definitions are filled in.
	for _, def := range b.root.Defs {
		if alias, ok := def.(*syntax.AliasDef); ok {
			name := alias.ID.Name()
			if !prog.Global.Insert(ir.NewTypeSym(name)) {
				return nil, errorf(alias.Pos(), "type %s already defined", name)
			}
		}
	}

	var bodies []*syntax.FnBody
	for _, def := range b.root.Defs {
		switch def := def.(type) {
		case *syntax.AliasDef:
			sym := prog.Global.Find(def.ID.Name()).(*ir.TypeSym)
			ty, err := b.createType(def.Type, prog.Global)
			if err != nil {
				return nil, err
			}
			sym.SetDef(ty)
		case *syntax.VarDef:
			v, err := b.buildGlobalVar(def, prog.Global)
			if err != nil {
				return nil, err
			}
			prog.Vars = append(prog.Vars, v)
			sym := &ir.GlobalSym{Var: v}
			if !prog.Global.Insert(sym) {
				return nil, errorf(def.Pos(), "variable %s already defined", sym.Name())
			}
		case *syntax.FnDef:
			fn, err := b.buildFnSig(def.Sig, def.Attribs, prog.Global)
			if err != nil {
				return nil, err
			}
			prog.Funcs = append(prog.Funcs, fn)
			sym := &ir.FuncSym{Fn: fn}
			if !prog.Global.Insert(sym) {
				return nil, errorf(def.Pos(), "function %s already defined", sym.Name())
			}
			bodies = append(bodies, def.Body)
		default:
			panic("unexpected top-level definition")
		}
	}
	return bodies, nil
}

func (b *Builder) buildGlobalVar(def *syntax.VarDef, global *ir.Scope) (*ir.GlobalVar, error) {
	ty, err := b.createType(def.Type, global)
	if err != nil {
		return nil, err
	}
	if !ir.IsReg(ty) {
		return nil, errorf(def.ID.Pos, "cannot create global variable of type %s", ty)
	}
	var init *ir.Const
	if def.Init != nil {
		c, err := b.createConst(*def.Init, ty)
		if err != nil {
			return nil, err
		}
		init = &c
	}
	return &ir.GlobalVar{Name: def.ID.Name(), Typ: ty, Init: init}, nil
}

func (b *Builder) buildFnSig(sig *syntax.FnSig, attribs *syntax.FnAttribList, global *ir.Scope) (*ir.Function, error) {
	var list []ir.Attrib
	if attribs != nil {
		for _, tok := range attribs.List {
			a, ok := ir.AttribFromString(tok.Lit)
			if !ok {
				return nil, errorf(tok.Pos, "invalid function attribute")
			}
			for _, prev := range list {
				if prev == a {
					return nil, errorf(tok.Pos, "duplicated attribute %s", a)
				}
			}
			list = append(list, a)
		}
	}

	name := sig.ID.Name()

	scope := ir.NewScope()
	var params []ir.Symbol
	for _, p := range sig.Params.List {
		ty, err := b.createType(p.Type, global)
		if err != nil {
			return nil, err
		}
		sym := ir.NewLocal(p.ID.Name(), ty)
		params = append(params, sym)
		if !scope.Insert(sym) {
			return nil, errorf(p.Pos(), "parameter %s already defined", sym.Name())
		}
	}

	var ret ir.Type = ir.Void
	if sig.Ret != nil {
		var err error
		ret, err = b.createType(sig.Ret.Type, global)
		if err != nil {
			return nil, err
		}
	}

	if err := b.checkSpecialFn(name, params, ret, sig.Pos()); err != nil {
		return nil, err
	}

	return ir.NewFunction(name, scope, list, params, ret), nil
}

// checkSpecialFn enforces the signature constraints of functions with
// reserved meaning: main takes no parameters and returns void.
func (b *Builder) checkSpecialFn(name string, params []ir.Symbol, ret ir.Type, pos syntax.Pos) error {
	if name != "main" {
		return nil
	}
	if len(params) != 0 {
		return errorf(pos, "expect 0 parameter, got %d", len(params))
	}
	if !ret.Equal(ir.Void) {
		return errorf(pos, "expect void return type, got %s", ret)
	}
	return nil
}

func (b *Builder) buildBody(body *syntax.FnBody, fn *ir.Function, global *ir.Scope) error {
	// Create a block per label.  The first block becomes the real
	// entry, replacing the signature-time placeholder.
	labels := make(map[string]*ir.BasicBlock)
	blocks := make([]*ir.BasicBlock, len(body.Blocks))
	for i, bd := range body.Blocks {
		blk := ir.NewBasicBlock(bd.ID.Name())
		labels[blk.Name] = blk
		blocks[i] = blk
		if i == 0 {
			fn.Entry = blk
		}
	}

	ctx := &context{global: global, fn: fn, labels: labels, block: fn.Entry}
	maySSA := fn.HasAttrib(ir.AttribSSA)
	for i, bd := range body.Blocks {
		blk := blocks[i]
		inPhis := true
		for _, t := range bd.Instrs {
			ctx.block = blk
			instr, err := b.buildInstr(t, ctx)
			if err != nil {
				return err
			}

			// A phi marks the function as intended SSA; the
			// claim is verified below.
			_, isPhi := instr.(*ir.Phi)
			if !maySSA {
				maySSA = isPhi
			}

			if isPhi {
				if !inPhis {
					return errorf(bd.Pos(), "non-phi instruction found before phi's in block %s", blk.Name)
				}
			} else {
				inPhis = false
			}
			blk.PushBack(instr)
		}
		if !blk.IsComplete() {
			return errorf(bd.Pos(), "block %s is not complete", blk.Name)
		}
	}

	fn.BuildDom()

	if maySSA {
		v := ir.NewVerifier()
		fn.WalkDom(v)
		if len(v.Errs) > 0 {
			return &CompileError{Pos: syntax.Pos{}, Msg: v.Errs[0]}
		}
	}

	return nil
}

func (b *Builder) buildInstr(t syntax.Node, ctx *context) (ir.Instruction, error) {
	switch t := t.(type) {
	case *syntax.AssignInstr:
		return b.buildAssign(t, ctx)
	case *syntax.NonAssignInstr:
		return b.buildNonAssign(t.Instr, ctx)
	}
	panic("unexpected instruction node")
}

func (b *Builder) buildAssign(d *syntax.AssignInstr, ctx *context) (ir.Instruction, error) {
	switch rhs := d.RHS.(type) {
	case *syntax.CommonRhs:
		ty, err := b.createType(rhs.Type, ctx.global)
		if err != nil {
			return nil, err
		}
		return b.buildOp(d.ID, ty, rhs.Name.Lit, rhs.Opds, ctx, rhs.Pos())
	case *syntax.CallRhs:
		ty, err := b.createType(rhs.Type, ctx.global)
		if err != nil {
			return nil, err
		}
		dst, err := b.createSymbol(d.ID, ty, ctx)
		if err != nil {
			return nil, err
		}
		return b.buildFnCall(rhs.Call, dst, ctx)
	case *syntax.PhiRhs:
		ty, err := b.createType(rhs.Type, ctx.global)
		if err != nil {
			return nil, err
		}
		dst, err := b.createSymbol(d.ID, ty, ctx)
		if err != nil {
			return nil, err
		}
		if !dst.IsLocalVar() {
			return nil, errorf(d.ID.Pos, "destination %s is not local variable", dst.Name())
		}
		return b.buildPhi(ty, dst, rhs.List, ctx, rhs.Pos())
	case *syntax.PtrRhs:
		ty, err := b.createType(rhs.Type, ctx.global)
		if err != nil {
			return nil, err
		}
		dst, err := b.createSymbol(d.ID, ty, ctx)
		if err != nil {
			return nil, err
		}
		return b.buildPtr(dst, rhs.Opds, rhs.Index, ctx, rhs.Pos())
	case *syntax.AllocRhs:
		ty, err := b.createType(rhs.Type, ctx.global)
		if err != nil {
			return nil, err
		}
		dst, err := b.createSymbol(d.ID, ir.PtrType{Elem: ty}, ctx)
		if err != nil {
			return nil, err
		}
		return &ir.Alloc{Res: dst}, nil
	case *syntax.NewRhs:
		ty, err := b.createType(rhs.Type, ctx.global)
		if err != nil {
			return nil, err
		}
		dst, err := b.createSymbol(d.ID, ir.PtrType{Elem: ty}, ctx)
		if err != nil {
			return nil, err
		}
		var length ir.Value
		if rhs.Len != nil {
			length, err = b.createDefVal(ir.I64, *rhs.Len, ctx)
			if err != nil {
				return nil, err
			}
		}
		return &ir.New{Res: dst, Len: length}, nil
	}
	panic("unexpected assignment right-hand side")
}

func (b *Builder) buildOp(dst syntax.Token, ty ir.Type, op string, opds *syntax.OpdList, ctx *context, pos syntax.Pos) (ir.Instruction, error) {
	switch {
	case op == "mov":
		if !ir.IsReg(ty) {
			return nil, errorf(pos, "cannot move value of type %s", ty)
		}
		sym, err := b.createSymbol(dst, ty, ctx)
		if err != nil {
			return nil, err
		}
		src, err := b.buildOpdList([]ir.Type{ty}, opds, ctx)
		if err != nil {
			return nil, err
		}
		return &ir.Mov{Src: src[0], Res: sym}, nil

	case op == "ld":
		if !ir.IsReg(ty) {
			return nil, errorf(pos, "cannot load value of type %s", ty)
		}
		sym, err := b.createSymbol(dst, ty, ctx)
		if err != nil {
			return nil, err
		}
		src, err := b.buildOpdList([]ir.Type{ir.PtrType{Elem: ty}}, opds, ctx)
		if err != nil {
			return nil, err
		}
		return &ir.Ld{Ptr: src[0], Res: sym}, nil
	}

	if un, ok := ir.UnOpFromString(op); ok {
		sym, err := b.createSymbol(dst, ty, ctx)
		if err != nil {
			return nil, err
		}
		if !un.AvailFor(ty) {
			return nil, errorf(pos, "unary operation %s not supported for type %s", un, ty)
		}
		opd, err := b.buildOpdList([]ir.Type{ty}, opds, ctx)
		if err != nil {
			return nil, err
		}
		return &ir.Un{Op: un, Opd: opd[0], Res: sym}, nil
	}

	if bin, ok := ir.BinOpFromString(op); ok {
		if !bin.AvailFor(ty) {
			return nil, errorf(pos, "binary operation %s not supported for type %s", bin, ty)
		}
		// A comparison always produces i1.
		dstTy := ty
		if bin.IsCmp() {
			dstTy = ir.I1
		}
		sym, err := b.createSymbol(dst, dstTy, ctx)
		if err != nil {
			return nil, err
		}
		opd, err := b.buildOpdList([]ir.Type{ty, ty}, opds, ctx)
		if err != nil {
			return nil, err
		}
		return &ir.Bin{Op: bin, Fst: opd[0], Snd: opd[1], Res: sym}, nil
	}

	return nil, errorf(pos, "unknown operator %s", op)
}

func (b *Builder) buildFnCall(call *syntax.FnCall, dst ir.Symbol, ctx *context) (ir.Instruction, error) {
	fnName := call.Func.Name()
	if fnName == "main" {
		return nil, errorf(call.Pos(), "cannot call function @main")
	}
	sym := ctx.global.Find(fnName)
	if sym == nil {
		return nil, errorf(call.Pos(), "function %s not found", fnName)
	}
	fsym, ok := sym.(*ir.FuncSym)
	if !ok {
		return nil, errorf(call.Pos(), "symbol %s is not a function", sym.Name())
	}
	fn := fsym.Fn

	paramTys := make([]ir.Type, len(fn.Params))
	for i, p := range fn.Params {
		paramTys[i] = p.Type()
	}
	args, err := b.buildOpdList(paramTys, call.Args, ctx)
	if err != nil {
		return nil, err
	}

	if dst != nil {
		if !dst.Type().Equal(fn.Ret) {
			return nil, errorf(call.Pos(), "expect type %s, got %s", dst.Type(), fn.Ret)
		}
	}

	return &ir.Call{Fn: fn, Args: args, Res: dst}, nil
}

func (b *Builder) buildPhi(ty ir.Type, dst ir.Symbol, list *syntax.PhiList, ctx *context, pos syntax.Pos) (ir.Instruction, error) {
	if dst.IsGlobalVar() {
		return nil, errorf(pos, "global variable cannot be used as destination of phi instruction")
	}

	var pairs []ir.PhiSrc
	for _, opd := range list.List {
		// The operand may not be defined yet when this phi is
		// read, so it may create its symbol.
		val, err := b.createValue(ty, opd.Opd, ctx)
		if err != nil {
			return nil, err
		}
		if v, ok := val.(ir.Var); ok && v.Sym.IsGlobalVar() {
			return nil, errorf(opd.Opd.Pos, "global variable cannot be used as source of phi instruction")
		}
		labName := opd.Label.Name()
		blk, ok := ctx.labels[labName]
		if !ok {
			return nil, errorf(opd.Label.Pos, "label %s not found", labName)
		}
		pairs = append(pairs, ir.PhiSrc{Pred: blk, Val: val})
	}

	// Canonicalize source order by predecessor block name, so the
	// built IR does not depend on the order given in source.
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Pred.Name < pairs[j].Pred.Name
	})

	return &ir.Phi{Edges: pairs, Res: dst}, nil
}

func (b *Builder) buildPtr(dst ir.Symbol, opds *syntax.OpdList, idx *syntax.IndexList, ctx *context, pos syntax.Pos) (ir.Instruction, error) {
	var base ir.Symbol
	var off ir.Value
	switch n := len(opds.List); n {
	case 1:
		var err error
		base, err = b.findSymbol(opds.List[0], ctx)
		if err != nil {
			return nil, err
		}
	case 2:
		var err error
		base, err = b.findSymbol(opds.List[0], ctx)
		if err != nil {
			return nil, err
		}
		off, err = b.createDefVal(ir.I64, opds.List[1], ctx)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errorf(opds.Pos(), "expect 1 or 2 operands, got %d", n)
	}

	pt, ok := base.Type().Orig().(ir.PtrType)
	if !ok {
		return nil, errorf(pos, "expect pointer type, got %s", base.Type())
	}
	elemTy := pt.Elem

	var indices []ir.Value
	if idx != nil {
		for _, tok := range idx.List.List {
			val, err := b.createDefVal(ir.I64, tok, ctx)
			if err != nil {
				return nil, err
			}
			elemTy, err = b.elemIdx(elemTy, val, tok)
			if err != nil {
				return nil, err
			}
			indices = append(indices, val)
		}
	}

	want := ir.PtrType{Elem: elemTy}
	if !dst.Type().Equal(want) {
		return nil, errorf(pos, "expect type %s, got %s", want, dst.Type())
	}

	return &ir.Ptr{Base: ir.Var{Sym: base}, Off: off, Indices: indices, Res: dst}, nil
}

// elemIdx steps one level into an aggregate type.  A struct step
// requires a constant index within the field count; an array step
// permits a non-constant index but checks constants against the
// length.
func (b *Builder) elemIdx(agTy ir.Type, val ir.Value, tok syntax.Token) (ir.Type, error) {
	switch t := agTy.Orig().(type) {
	case ir.ArrayType:
		if c, ok := val.(ir.Const); ok {
			if c.Val < 0 || c.Val >= int64(t.Len) {
				return nil, errorf(tok.Pos, "index %d out of range %d", c.Val, t.Len)
			}
		}
		return t.Elem, nil
	case ir.StructType:
		c, ok := val.(ir.Const)
		if !ok {
			return nil, errorf(tok.Pos, "index into structure type is not constant")
		}
		if c.Val < 0 || c.Val >= int64(len(t.Fields)) {
			return nil, errorf(tok.Pos, "index %d out of range %d", c.Val, len(t.Fields))
		}
		return t.Fields[c.Val], nil
	}
	return nil, errorf(tok.Pos, "type %s is not aggregate", agTy)
}

func (b *Builder) buildNonAssign(t syntax.Node, ctx *context) (ir.Instruction, error) {
	switch t := t.(type) {
	case *syntax.RetInstr:
		ctx.fn.Exits = append(ctx.fn.Exits, ctx.block)
		if ctx.fn.Ret.Equal(ir.Void) {
			if t.Opd != nil {
				return nil, errorf(t.Pos(), "expect void, got value")
			}
			return &ir.Ret{}, nil
		}
		if t.Opd == nil {
			return nil, errorf(t.Pos(), "expect value, got void")
		}
		val, err := b.createDefVal(ctx.fn.Ret, *t.Opd, ctx)
		if err != nil {
			return nil, err
		}
		return &ir.Ret{Val: val}, nil

	case *syntax.NoRetCall:
		return b.buildFnCall(t.Call, nil, ctx)

	case *syntax.JmpInstr:
		name := t.Target.Name()
		tgt, ok := ctx.labels[name]
		if !ok {
			return nil, errorf(t.Target.Pos, "label %s not found", name)
		}
		ctx.block.Connect(tgt)
		if tgt == ctx.fn.Entry {
			return nil, errorf(t.Target.Pos, "cannot jump to function entry %s", tgt.Name)
		}
		return &ir.Jmp{Tgt: tgt}, nil

	case *syntax.BrInstr:
		cond, err := b.createDefVal(ir.I1, t.Cond, ctx)
		if err != nil {
			return nil, err
		}
		tr, ok := ctx.labels[t.True.Name()]
		if !ok {
			return nil, errorf(t.True.Pos, "label %s not found", t.True.Name())
		}
		fls, ok := ctx.labels[t.False.Name()]
		if !ok {
			return nil, errorf(t.False.Pos, "label %s not found", t.False.Name())
		}
		ctx.block.Connect(tr)
		ctx.block.Connect(fls)
		return &ir.Br{Cond: cond, True: tr, False: fls}, nil

	case *syntax.StInstr:
		ty, err := b.createType(t.Type, ctx.global)
		if err != nil {
			return nil, err
		}
		if !ir.IsReg(ty) {
			return nil, errorf(t.Pos(), "cannot store value of type %s", ty)
		}
		src, err := b.createDefVal(ty, t.Src, ctx)
		if err != nil {
			return nil, err
		}
		dst, err := b.createValue(ir.PtrType{Elem: ty}, t.Dst, ctx)
		if err != nil {
			return nil, err
		}
		return &ir.St{Src: src, Ptr: dst}, nil
	}
	panic("unexpected non-assignment instruction node")
}

// buildOpdList checks the operand count against the expected types
// and builds each operand as a defined value.
func (b *Builder) buildOpdList(tys []ir.Type, opds *syntax.OpdList, ctx *context) ([]ir.Value, error) {
	if len(tys) != len(opds.List) {
		return nil, errorf(opds.Pos(), "expect %d operand(s), got %d", len(tys), len(opds.List))
	}
	vals := make([]ir.Value, len(tys))
	for i, tok := range opds.List {
		v, err := b.createDefVal(tys[i], tok, ctx)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// createValue builds a value from a token, creating the symbol in the
// local scope if it does not exist yet.
func (b *Builder) createValue(ty ir.Type, tok syntax.Token, ctx *context) (ir.Value, error) {
	switch tok.Kind {
	case syntax.GlobalID, syntax.LocalID:
		sym, err := b.createSymbol(tok, ty, ctx)
		if err != nil {
			return nil, err
		}
		return ir.Var{Sym: sym}, nil
	case syntax.IntLit:
		c, err := b.createConst(tok, ty)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	panic("unexpected operand token")
}

// createDefVal builds a value that must already be defined: a known
// variable or a constant.
func (b *Builder) createDefVal(ty ir.Type, tok syntax.Token, ctx *context) (ir.Value, error) {
	switch tok.Kind {
	case syntax.GlobalID, syntax.LocalID:
		sym, err := b.findSymbol(tok, ctx)
		if err != nil {
			return nil, err
		}
		if err := b.checkType(sym, ty, tok.Pos); err != nil {
			return nil, err
		}
		return ir.Var{Sym: sym}, nil
	case syntax.IntLit:
		c, err := b.createConst(tok, ty)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	panic("unexpected operand token")
}

// createSymbol resolves tok, checking its type against ty.  An
// unknown local is created in the function scope with type ty; an
// unknown global is an error.
func (b *Builder) createSymbol(tok syntax.Token, ty ir.Type, ctx *context) (ir.Symbol, error) {
	switch tok.Kind {
	case syntax.GlobalID:
		sym := ctx.global.Find(tok.Name())
		if sym == nil {
			return nil, errorf(tok.Pos, "identifier %s not found in global scope", tok.Lit)
		}
		if err := b.checkType(sym, ty, tok.Pos); err != nil {
			return nil, err
		}
		return sym, nil
	case syntax.LocalID:
		if sym := ctx.fn.Scope.Find(tok.Name()); sym != nil {
			if err := b.checkType(sym, ty, tok.Pos); err != nil {
				return nil, err
			}
			return sym, nil
		}
		sym := ir.NewLocal(tok.Name(), ty)
		ctx.fn.Scope.Insert(sym)
		return sym, nil
	}
	panic("unexpected identifier token")
}

// findSymbol resolves tok, failing if it names nothing.
func (b *Builder) findSymbol(tok syntax.Token, ctx *context) (ir.Symbol, error) {
	switch tok.Kind {
	case syntax.GlobalID:
		if sym := ctx.global.Find(tok.Name()); sym != nil {
			return sym, nil
		}
		return nil, errorf(tok.Pos, "identifier %s not found in global scope", tok.Lit)
	case syntax.LocalID:
		if sym := ctx.fn.Scope.Find(tok.Name()); sym != nil {
			return sym, nil
		}
		return nil, errorf(tok.Pos, "identifier %s not found in local scope", tok.Lit)
	}
	panic("unexpected identifier token")
}

func (b *Builder) checkType(sym ir.Symbol, ty ir.Type, pos syntax.Pos) error {
	if !ty.Equal(sym.Type()) {
		return errorf(pos, "expect symbol of type %s, found %s", ty, sym.Type())
	}
	return nil
}

func (b *Builder) createConst(tok syntax.Token, ty ir.Type) (ir.Const, error) {
	c, err := ir.ParseConst(tok.Lit, ty)
	if err != nil {
		return ir.Const{}, &CompileError{Pos: tok.Pos, Msg: err.Error()}
	}
	return c, nil
}

func (b *Builder) createType(td *syntax.TypeDecl, global *ir.Scope) (ir.Type, error) {
	switch t := td.Type.(type) {
	case *syntax.PrimType:
		ty, err := ir.TypeFromString(t.Type.Lit)
		if err != nil {
			return nil, &CompileError{Pos: t.Type.Pos, Msg: err.Error()}
		}
		return ty, nil
	case *syntax.AliasName:
		name := t.ID.Name()
		sym := global.Find(name)
		if sym == nil {
			return nil, errorf(t.ID.Pos, "type %s not found", name)
		}
		ts, ok := sym.(*ir.TypeSym)
		if !ok {
			return nil, errorf(t.ID.Pos, "%s is not a type", name)
		}
		return ir.AliasType{Sym: ts}, nil
	case *syntax.PtrType:
		elem, err := b.createType(t.Target, global)
		if err != nil {
			return nil, err
		}
		return ir.PtrType{Elem: elem}, nil
	case *syntax.ArrayType:
		n, err := strconv.Atoi(t.Len.Lit)
		if err != nil || n < 0 {
			return nil, errorf(t.Len.Pos, "invalid array length %s", t.Len.Lit)
		}
		elem, err2 := b.createType(t.Elem, global)
		if err2 != nil {
			return nil, err2
		}
		return ir.ArrayType{Elem: elem, Len: n}, nil
	case *syntax.StructType:
		var fields []ir.Type
		for _, f := range t.Fields.List {
			ty, err := b.createType(f, global)
			if err != nil {
				return nil, err
			}
			fields = append(fields, ty)
		}
		return ir.StructType{Fields: fields}, nil
	}
	panic("unexpected type node")
}
