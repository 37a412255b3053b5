/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"testing"
)

func TestMatchWord(t *testing.T) {
	s := Scanner{Input: "$cond rest"}
	width := s.MatchWord()

	if width != 5 {
		t.Errorf("$cond should have width of 5, not %d", width)
	}

	s = Scanner{Input: "#define foo"}
	width = s.MatchWord()

	if width != 7 {
		t.Errorf("#define should have width of 7, not %d", width)
	}

	s = Scanner{Input: "some_func()"}
	width = s.MatchWord()

	if width != 9 {
		t.Errorf("some_func should have width of 9, not %d", width)
	}
}

func TestMatchSymbol(t *testing.T) {
	s := Scanner{Input: "== b"}
	width := s.MatchSymbol()

	if width != 2 {
		t.Errorf("== should have width of 2, not %d", width)
	}

	s = Scanner{Input: ";}"}
	width = s.MatchSymbol()

	if width != 1 {
		t.Errorf("; should stop before the delimiter, got width %d", width)
	}
}

func TestEmit(t *testing.T) {
	s := Scanner{Input: "if (a == b) {\n"}

	expected := []struct {
		tt     TokenType
		lexeme string
		suffix string
	}{
		{TOK_WORD, "if", " "},
		{TOK_DELIM_OPEN, "(", ""},
		{TOK_WORD, "a", " "},
		{TOK_SYMBOL, "==", " "},
		{TOK_WORD, "b", ""},
		{TOK_DELIM_CLOSE, ")", " "},
		{TOK_DELIM_OPEN, "{", "\n"},
		{TOK_EOF, "", ""},
	}

	for _, want := range expected {
		tok := s.Emit()
		if tok.Type != want.tt {
			t.Errorf("wanted %s, got %s", want.tt.ToString(), tok.Type.ToString())
		}
		if tok.Lexeme != want.lexeme {
			t.Errorf("wanted lexeme %q, got %q", want.lexeme, tok.Lexeme)
		}
		if tok.Suffix != want.suffix {
			t.Errorf("wanted suffix %q after %q, got %q", want.suffix, want.lexeme, tok.Suffix)
		}
	}
}

func TestEmitLeadingSeparators(t *testing.T) {
	s := Scanner{Input: "  indented"}

	tok := s.Emit()
	if tok.Type != TOK_BLANK {
		t.Errorf("wanted TOK_BLANK, got %s", tok.Type.ToString())
	}
	if tok.Suffix != "  " {
		t.Errorf("wanted leading separators as suffix, got %q", tok.Suffix)
	}

	tok = s.Emit()
	if tok.Lexeme != "indented" {
		t.Errorf("wanted 'indented', got %q", tok.Lexeme)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		"if (a == b) { some_func(); }\n",
		"  leading indent\n\ttabbed\n",
		"x->y != z;\n\nblank lines\n",
		"héllo wörld()",
		"",
	}

	for _, input := range inputs {
		got := Serialize(Tokenize(input))
		if got != input {
			t.Errorf("round trip of %q produced %q", input, got)
		}
	}
}
