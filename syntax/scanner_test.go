// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "testing"

func TestScanner(t *testing.T) {
	const src = `%a <- add i64 %x.1, -2; // comment
jmp $loop;`

	want := []struct {
		kind Kind
		lit  string
	}{
		{LocalID, "%a"},
		{LArrow, "<-"},
		{Reserved, "add"},
		{Reserved, "i64"},
		{LocalID, "%x.1"},
		{Comma, ","},
		{IntLit, "-2"},
		{Semi, ";"},
		{Reserved, "jmp"},
		{Label, "$loop"},
		{Semi, ";"},
		{EOF, ""},
	}

	sc := NewScanner([]byte(src))
	for i, w := range want {
		tok, err := sc.Next()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Kind != w.kind || tok.Lit != w.lit {
			t.Errorf("token %d: got (%v, %q), want (%v, %q)", i, tok.Kind, tok.Lit, w.kind, w.lit)
		}
	}
}

func TestScannerPositions(t *testing.T) {
	sc := NewScanner([]byte("fn\n  @f"))
	tok, _ := sc.Next()
	if tok.Pos != (Pos{Line: 1, Col: 1}) {
		t.Errorf("fn at %v, want 1:1", tok.Pos)
	}
	tok, _ = sc.Next()
	if tok.Pos != (Pos{Line: 2, Col: 3}) {
		t.Errorf("@f at %v, want 2:3", tok.Pos)
	}
}

func TestScannerErrors(t *testing.T) {
	for _, src := range []string{"<", "#", "@;", "- "} {
		sc := NewScanner([]byte(src))
		var err error
		for err == nil {
			var tok Token
			tok, err = sc.Next()
			if tok.Kind == EOF {
				break
			}
		}
		if err == nil {
			t.Errorf("scanning %q succeeded, want error", src)
		}
	}
}

func TestTokenName(t *testing.T) {
	for _, tt := range []struct {
		lit, want string
	}{
		{"@glob", "glob"},
		{"%loc.2", "loc.2"},
		{"$label", "label"},
		{"add", "add"},
	} {
		tok := Token{Lit: tt.lit}
		if got := tok.Name(); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.lit, got, tt.want)
		}
	}
}
