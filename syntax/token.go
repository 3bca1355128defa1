// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "fmt"

// A Pos is a line/column source position, both 1-based.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// Kind classifies tokens.
type Kind int

const (
	EOF Kind = iota

	GlobalID // @name
	LocalID  // %name
	Label    // $name
	Reserved // bare word: keywords, operators, primitive types
	IntLit   // integer literal, possibly negative

	LArrow // <-
	RArrow // ->
	Comma
	Semi
	Colon
	Question
	LParen
	RParen
	LBrace
	RBrace
	LBrack
	RBrack
	Star
)

var kindNames = [...]string{
	EOF:      "EOF",
	GlobalID: "GlobalID",
	LocalID:  "LocalID",
	Label:    "Label",
	Reserved: "Reserved",
	IntLit:   "Integer",
	LArrow:   "<-",
	RArrow:   "->",
	Comma:    ",",
	Semi:     ";",
	Colon:    ":",
	Question: "?",
	LParen:   "(",
	RParen:   ")",
	LBrace:   "{",
	RBrace:   "}",
	LBrack:   "[",
	RBrack:   "]",
	Star:     "*",
}

func (k Kind) String() string { return kindNames[k] }

// A Token is a single lexeme with its source position.  Identifier
// literals keep their sigil; Name strips it.
type Token struct {
	Kind Kind
	Pos  Pos
	Lit  string
}

func (t Token) String() string {
	if t.Lit != "" {
		return t.Lit
	}
	return t.Kind.String()
}

// Name returns the identifier without its @, % or $ sigil.
func (t Token) Name() string {
	if len(t.Lit) > 0 {
		switch t.Lit[0] {
		case '@', '%', '$':
			return t.Lit[1:]
		}
	}
	return t.Lit
}

// IsID reports whether the token is a global or local identifier.
func (t Token) IsID() bool {
	return t.Kind == GlobalID || t.Kind == LocalID
}

// IsOpd reports whether the token can be an instruction operand.
func (t Token) IsOpd() bool {
	return t.Kind == GlobalID || t.Kind == LocalID || t.Kind == IntLit
}

// IsLocalOpd reports whether the token can be a phi operand: a local
// identifier or a constant.
func (t Token) IsLocalOpd() bool {
	return t.Kind == LocalID || t.Kind == IntLit
}
