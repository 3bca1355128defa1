// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "fmt"

// A Parser builds the parse tree from a token stream.
type Parser struct {
	sc  *Scanner
	buf []Token // lookahead buffer
	pos Pos     // position of the most recently observed token
}

// NewParser returns a parser reading from the scanner.
func NewParser(sc *Scanner) *Parser {
	return &Parser{sc: sc}
}

// Parse parses a whole source file.
func Parse(src []byte) (*Program, error) {
	return NewParser(NewScanner(src)).Parse()
}

// Parse consumes the token stream and returns the program tree, or
// the first syntax error found.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	for {
		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		var def Node
		switch {
		case tok.Kind == Reserved && tok.Lit == "type":
			def, err = p.aliasDef()
		case tok.Kind == Reserved && tok.Lit == "fn":
			def, err = p.fnDef()
		case tok.Kind == GlobalID:
			def, err = p.varDef()
		case tok.Kind == EOF:
			return prog, nil
		default:
			return nil, p.err([]string{"type", "fn", "{GlobalID}", "EOF"}, tok)
		}
		if err != nil {
			return nil, err
		}
		prog.Defs = append(prog.Defs, def)
	}
}

// aliasDef parses: type @name: T;
func (p *Parser) aliasDef() (Node, error) {
	pos := p.pos
	p.consume() // type
	id, err := p.want(GlobalID)
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Colon); err != nil {
		return nil, err
	}
	ty, err := p.typeDecl()
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Semi); err != nil {
		return nil, err
	}
	return &AliasDef{node: node{pos}, ID: id, Type: ty}, nil
}

// varDef parses: @name <- init: T;  or  @name: T;
func (p *Parser) varDef() (Node, error) {
	pos := p.pos
	id, err := p.want(GlobalID)
	if err != nil {
		return nil, err
	}
	var init *Token
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case LArrow:
		p.consume()
		val, err := p.want(IntLit)
		if err != nil {
			return nil, err
		}
		init = &val
	case Colon:
	default:
		return nil, p.err([]string{"<-", ":"}, tok)
	}
	if _, err := p.want(Colon); err != nil {
		return nil, err
	}
	ty, err := p.typeDecl()
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Semi); err != nil {
		return nil, err
	}
	return &VarDef{node: node{pos}, ID: id, Init: init, Type: ty}, nil
}

// fnDef parses: fn [attribs] sig body
func (p *Parser) fnDef() (Node, error) {
	pos := p.pos
	p.consume() // fn
	var attribs *FnAttribList
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Kind == LBrack {
		attribs, err = p.attribList()
		if err != nil {
			return nil, err
		}
	}
	sig, err := p.fnSig()
	if err != nil {
		return nil, err
	}
	body, err := p.fnBody()
	if err != nil {
		return nil, err
	}
	return &FnDef{node: node{pos}, Attribs: attribs, Sig: sig, Body: body}, nil
}

// attribList parses: [attr, attr]
func (p *Parser) attribList() (*FnAttribList, error) {
	pos := p.pos
	p.consume() // [
	list := &FnAttribList{node: node{pos}}
	for {
		a, err := p.want(Reserved)
		if err != nil {
			return nil, err
		}
		list.List = append(list.List, a)
		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case Comma:
			p.consume()
		case RBrack:
			p.consume()
			return list, nil
		default:
			return nil, p.err([]string{",", "]"}, tok)
		}
	}
}

func (p *Parser) fnSig() (*FnSig, error) {
	pos := p.pos
	id, err := p.want(GlobalID)
	if err != nil {
		return nil, err
	}
	if _, err := p.want(LParen); err != nil {
		return nil, err
	}
	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	if _, err := p.want(RParen); err != nil {
		return nil, err
	}
	var ret *FnRet
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case RArrow:
		retPos := tok.Pos
		p.consume()
		ty, err := p.typeDecl()
		if err != nil {
			return nil, err
		}
		ret = &FnRet{node: node{retPos}, Type: ty}
	case LBrace:
	default:
		return nil, p.err([]string{"->", "{"}, tok)
	}
	return &FnSig{node: node{pos}, ID: id, Params: params, Ret: ret}, nil
}

func (p *Parser) paramList() (*ParamList, error) {
	pos := p.pos
	list := &ParamList{node: node{pos}}
	for {
		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case LocalID:
			def, err := p.paramDef()
			if err != nil {
				return nil, err
			}
			list.List = append(list.List, def)
		case Comma:
			p.consume()
			def, err := p.paramDef()
			if err != nil {
				return nil, err
			}
			list.List = append(list.List, def)
		case RParen:
			return list, nil
		default:
			return nil, p.err([]string{"{LocalID}", ")"}, tok)
		}
	}
}

func (p *Parser) paramDef() (*ParamDef, error) {
	pos := p.pos
	id, err := p.want(LocalID)
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Colon); err != nil {
		return nil, err
	}
	ty, err := p.typeDecl()
	if err != nil {
		return nil, err
	}
	return &ParamDef{node: node{pos}, ID: id, Type: ty}, nil
}

func (p *Parser) fnBody() (*FnBody, error) {
	pos := p.pos
	if _, err := p.want(LBrace); err != nil {
		return nil, err
	}
	body := &FnBody{node: node{pos}}
	for {
		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == Label:
			b, err := p.blockDef()
			if err != nil {
				return nil, err
			}
			body.Blocks = append(body.Blocks, b)
		case tok.Kind == RBrace && len(body.Blocks) > 0:
			p.consume()
			return body, nil
		default:
			expect := []string{"{Label}"}
			if len(body.Blocks) > 0 {
				expect = append(expect, "}")
			}
			return nil, p.err(expect, tok)
		}
	}
}

func (p *Parser) blockDef() (*BlockDef, error) {
	pos := p.pos
	id, err := p.want(Label)
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Colon); err != nil {
		return nil, err
	}
	blk := &BlockDef{node: node{pos}, ID: id}
	for {
		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		switch {
		case tok.IsID(), tok.Kind == Reserved:
			instr, err := p.instrDef()
			if err != nil {
				return nil, err
			}
			blk.Instrs = append(blk.Instrs, instr)
		case (tok.Kind == Label || tok.Kind == RBrace) && len(blk.Instrs) > 0:
			return blk, nil
		default:
			expect := []string{"{Id}", "{Reserved}"}
			if len(blk.Instrs) > 0 {
				expect = append(expect, "{Label}", "}")
			}
			return nil, p.err(expect, tok)
		}
	}
}

func (p *Parser) instrDef() (Node, error) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	var instr Node
	switch {
	case tok.IsID():
		instr, err = p.assignInstr()
	case tok.Kind == Reserved:
		instr, err = p.nonAssignInstr()
	default:
		return nil, p.err([]string{"{Id}", "{Reserved}"}, tok)
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Semi); err != nil {
		return nil, err
	}
	return instr, nil
}

func (p *Parser) assignInstr() (Node, error) {
	pos := p.pos
	id, _ := p.consume()
	if _, err := p.want(LArrow); err != nil {
		return nil, err
	}
	rhs, err := p.assignRHS()
	if err != nil {
		return nil, err
	}
	return &AssignInstr{node: node{pos}, ID: id, RHS: rhs}, nil
}

func (p *Parser) assignRHS() (Node, error) {
	pos := p.pos
	name, err := p.want(Reserved)
	if err != nil {
		return nil, err
	}
	ty, err := p.typeDecl()
	if err != nil {
		return nil, err
	}
	switch name.Lit {
	case "call":
		call, err := p.fnCall()
		if err != nil {
			return nil, err
		}
		return &CallRhs{node: node{pos}, Type: ty, Call: call}, nil
	case "phi":
		list, err := p.phiList()
		if err != nil {
			return nil, err
		}
		return &PhiRhs{node: node{pos}, Type: ty, List: list}, nil
	case "ptr":
		opds, err := p.opdList()
		if err != nil {
			return nil, err
		}
		var index *IndexList
		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		if tok.Kind == LBrack {
			index, err = p.indexList()
			if err != nil {
				return nil, err
			}
		}
		return &PtrRhs{node: node{pos}, Type: ty, Opds: opds, Index: index}, nil
	case "alloc":
		return &AllocRhs{node: node{pos}, Type: ty}, nil
	case "new":
		var length *Token
		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		if tok.Kind == Comma {
			p.consume()
			opd, err := p.opd()
			if err != nil {
				return nil, err
			}
			length = &opd
		}
		return &NewRhs{node: node{pos}, Type: ty, Len: length}, nil
	}
	opds, err := p.opdList()
	if err != nil {
		return nil, err
	}
	return &CommonRhs{node: node{pos}, Name: name, Type: ty, Opds: opds}, nil
}

func (p *Parser) nonAssignInstr() (Node, error) {
	pos := p.pos
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	var instr Node
	switch tok.Lit {
	case "ret":
		instr, err = p.retInstr()
	case "jmp":
		instr, err = p.jmpInstr()
	case "br":
		instr, err = p.brInstr()
	case "call":
		p.consume()
		var call *FnCall
		call, err = p.fnCall()
		if err == nil {
			instr = &NoRetCall{node: node{tok.Pos}, Call: call}
		}
	case "st":
		instr, err = p.stInstr()
	default:
		return nil, p.err([]string{"ret", "jmp", "br", "call", "st"}, tok)
	}
	if err != nil {
		return nil, err
	}
	return &NonAssignInstr{node: node{pos}, Instr: instr}, nil
}

func (p *Parser) retInstr() (Node, error) {
	pos := p.pos
	p.consume() // ret
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	var opd *Token
	switch {
	case tok.IsOpd():
		p.consume()
		opd = &tok
	case tok.Kind == Semi:
	default:
		return nil, p.err([]string{"{Operand}", ";"}, tok)
	}
	return &RetInstr{node: node{pos}, Opd: opd}, nil
}

func (p *Parser) jmpInstr() (Node, error) {
	pos := p.pos
	p.consume() // jmp
	tgt, err := p.want(Label)
	if err != nil {
		return nil, err
	}
	return &JmpInstr{node: node{pos}, Target: tgt}, nil
}

func (p *Parser) brInstr() (Node, error) {
	pos := p.pos
	p.consume() // br
	cond, err := p.opd()
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Question); err != nil {
		return nil, err
	}
	tr, err := p.want(Label)
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Colon); err != nil {
		return nil, err
	}
	fls, err := p.want(Label)
	if err != nil {
		return nil, err
	}
	return &BrInstr{node: node{pos}, Cond: cond, True: tr, False: fls}, nil
}

func (p *Parser) stInstr() (Node, error) {
	pos := p.pos
	p.consume() // st
	ty, err := p.typeDecl()
	if err != nil {
		return nil, err
	}
	src, err := p.opd()
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Comma); err != nil {
		return nil, err
	}
	dst, err := p.opd()
	if err != nil {
		return nil, err
	}
	return &StInstr{node: node{pos}, Type: ty, Src: src, Dst: dst}, nil
}

func (p *Parser) fnCall() (*FnCall, error) {
	pos := p.pos
	fn, err := p.want(GlobalID)
	if err != nil {
		return nil, err
	}
	if _, err := p.want(LParen); err != nil {
		return nil, err
	}
	args, err := p.opdList()
	if err != nil {
		return nil, err
	}
	if _, err := p.want(RParen); err != nil {
		return nil, err
	}
	return &FnCall{node: node{pos}, Func: fn, Args: args}, nil
}

func (p *Parser) phiList() (*PhiList, error) {
	pos := p.pos
	list := &PhiList{node: node{pos}}
	for {
		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == LBrack:
			opd, err := p.phiOpd()
			if err != nil {
				return nil, err
			}
			list.List = append(list.List, opd)
		case tok.Kind == Semi && len(list.List) > 0:
			return list, nil
		default:
			expect := []string{"["}
			if len(list.List) > 0 {
				expect = append(expect, ";")
			}
			return nil, p.err(expect, tok)
		}
	}
}

// phiOpd parses one phi source: [$pred: opd].  The predecessor label
// is mandatory.
func (p *Parser) phiOpd() (*PhiOpd, error) {
	pos := p.pos
	p.consume() // [
	lab, err := p.want(Label)
	if err != nil {
		return nil, err
	}
	if _, err := p.want(Colon); err != nil {
		return nil, err
	}
	opd, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	if !opd.IsLocalOpd() {
		return nil, p.err([]string{"{LocalOperand}"}, opd)
	}
	p.consume()
	if _, err := p.want(RBrack); err != nil {
		return nil, err
	}
	return &PhiOpd{node: node{pos}, Label: lab, Opd: opd}, nil
}

func (p *Parser) indexList() (*IndexList, error) {
	pos := p.pos
	p.consume() // [
	opds, err := p.opdList()
	if err != nil {
		return nil, err
	}
	if _, err := p.want(RBrack); err != nil {
		return nil, err
	}
	return &IndexList{node: node{pos}, List: opds}, nil
}

func (p *Parser) opdList() (*OpdList, error) {
	pos := p.pos
	list := &OpdList{node: node{pos}}
	for {
		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		switch {
		case tok.IsOpd():
			p.consume()
			list.List = append(list.List, tok)
		case tok.Kind == Comma:
			p.consume()
			opd, err := p.opd()
			if err != nil {
				return nil, err
			}
			list.List = append(list.List, opd)
		case tok.Kind == Semi || tok.Kind == RParen || tok.Kind == RBrack || tok.Kind == LBrack:
			return list, nil
		default:
			return nil, p.err([]string{"{Operand}", ",", ";"}, tok)
		}
	}
}

func (p *Parser) opd() (Token, error) {
	tok, err := p.peek(0)
	if err != nil {
		return Token{}, err
	}
	if !tok.IsOpd() {
		return Token{}, p.err([]string{"{Operand}"}, tok)
	}
	p.consume()
	return tok, nil
}

func (p *Parser) typeDecl() (*TypeDecl, error) {
	pos := p.pos
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	var ty Node
	switch tok.Kind {
	case Reserved:
		p.consume()
		ty = &PrimType{node: node{tok.Pos}, Type: tok}
	case GlobalID:
		p.consume()
		ty = &AliasName{node: node{tok.Pos}, ID: tok}
	case Star:
		p.consume()
		tgt, err := p.typeDecl()
		if err != nil {
			return nil, err
		}
		ty = &PtrType{node: node{tok.Pos}, Target: tgt}
	case LBrack:
		p.consume()
		length, err := p.want(IntLit)
		if err != nil {
			return nil, err
		}
		if _, err := p.want(RBrack); err != nil {
			return nil, err
		}
		elem, err := p.typeDecl()
		if err != nil {
			return nil, err
		}
		ty = &ArrayType{node: node{tok.Pos}, Len: length, Elem: elem}
	case LBrace:
		p.consume()
		fields := &TypeList{node: node{tok.Pos}}
		for {
			f, err := p.typeDecl()
			if err != nil {
				return nil, err
			}
			fields.List = append(fields.List, f)
			sep, err := p.peek(0)
			if err != nil {
				return nil, err
			}
			if sep.Kind == Comma {
				p.consume()
				continue
			}
			break
		}
		if _, err := p.want(RBrace); err != nil {
			return nil, err
		}
		ty = &StructType{node: node{tok.Pos}, Fields: fields}
	default:
		return nil, p.err([]string{"{Reserved}", "{GlobalID}", "*", "[", "{"}, tok)
	}
	return &TypeDecl{node: node{pos}, Type: ty}, nil
}

// consume takes one token from the stream.
func (p *Parser) consume() (Token, error) {
	var tok Token
	if len(p.buf) > 0 {
		tok = p.buf[0]
		p.buf = p.buf[1:]
	} else {
		var err error
		tok, err = p.sc.Next()
		if err != nil {
			return Token{}, err
		}
	}
	p.pos = tok.Pos
	return tok, nil
}

// peek looks ahead in the stream without consuming.
func (p *Parser) peek(idx int) (Token, error) {
	for idx >= len(p.buf) {
		tok, err := p.sc.Next()
		if err != nil {
			return Token{}, err
		}
		p.buf = append(p.buf, tok)
	}
	tok := p.buf[idx]
	p.pos = tok.Pos
	return tok, nil
}

// want consumes the next token and checks its kind.
func (p *Parser) want(kind Kind) (Token, error) {
	tok, err := p.consume()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, p.err([]string{kind.String()}, tok)
	}
	return tok, nil
}

// err reports a syntax error with the expected alternatives.
func (p *Parser) err(expect []string, found Token) error {
	return &Error{
		Pos: p.pos,
		Msg: fmt.Sprintf("expect %v, found %q", expect, found),
	}
}
