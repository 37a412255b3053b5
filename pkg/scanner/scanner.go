/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kylebrw/slang/pkg/common/parse"
)

// Scanner tokenizes host-syntax text. It knows nothing about rules or
// macros: it splits words, symbol runs and delimiters, and folds every
// separator run into the suffix of the token it follows.
type Scanner struct {
	Input string
	Start int
	Pos   int
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' || r == '#'
}

// MatchWord returns the length of the next token, assuming it is a
// word.
//
// Grammar:
//
//	word            = ['$' / '#'] *(ALPHA / DIGIT / '_')
func (s *Scanner) MatchWord() int {
	i := s.Pos
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	size := 0

	if r == '$' || r == '#' {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	for unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// MatchSymbol returns the length of the next token, assuming it is a
// symbol run.
//
// Grammar:
//
//	symbol          = 1*(any rune that is not a separator, delimiter, or word start)
func (s *Scanner) MatchSymbol() int {
	i := s.Pos
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	size := 0

	for r != utf8.RuneError && !isSeparator(r) && !isWordStart(r) && !isOpening(r) && !isClosing(r) {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

func isOpening(r rune) bool {
	return r == '(' || r == '{' || r == '['
}

func isClosing(r rune) bool {
	return r == ')' || r == '}' || r == ']'
}

// matchSeparators returns the length of the separator run at i.
func (s *Scanner) matchSeparators(i int) int {
	size := 0
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	for isSeparator(r) {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}
	return size
}

// Emit scans and returns the next token, including its separator
// suffix. At end of input it returns a TOK_EOF token.
func (s *Scanner) Emit() parse.Token {
	s.Start = s.Pos

	if s.Pos >= len(s.Input) {
		return parse.Token{
			Type:     TOK_EOF,
			Location: parse.Location{Start: s.Pos, End: s.Pos},
		}
	}

	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	if width == 0 {
		width = 1
	}

	var t TokenType
	var size int

	switch {
	case isSeparator(r):
		t = TOK_BLANK
		size = 0
	case isOpening(r):
		t = TOK_DELIM_OPEN
		size = width
	case isClosing(r):
		t = TOK_DELIM_CLOSE
		size = width
	case isWordStart(r):
		t = TOK_WORD
		size = s.MatchWord()
	default:
		t = TOK_SYMBOL
		size = s.MatchSymbol()
		if size == 0 {
			t = TOK_INVALID
			size = width
		}
	}

	lexeme := s.Input[s.Pos : s.Pos+size]
	loc := parse.Location{Start: s.Pos, End: s.Pos + size}
	s.Pos += size

	sep := s.matchSeparators(s.Pos)
	suffix := s.Input[s.Pos : s.Pos+sep]
	s.Pos += sep

	return parse.Token{
		Type:     t,
		Lexeme:   lexeme,
		Suffix:   suffix,
		Location: loc,
	}
}

// Tokenize scans the whole input into a token slice, suffixes intact.
func Tokenize(input string) []parse.Token {
	s := Scanner{Input: input}
	var tokens []parse.Token

	for {
		tok := s.Emit()
		if tok.Type == TOK_EOF {
			break
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

// Serialize renders a token slice back to text. Tokenize and Serialize
// are inverses over any input.
func Serialize(tokens []parse.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Lexeme)
		b.WriteString(tok.Suffix)
	}
	return b.String()
}
