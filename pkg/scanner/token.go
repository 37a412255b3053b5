/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	// A token with an empty lexeme carrying a pure separator run. Only
	// produced when a scan starts on a separator; everywhere else the
	// separators fold into the previous token's suffix.
	TOK_BLANK

	TOK_WORD
	TOK_SYMBOL
	TOK_DELIM_OPEN
	TOK_DELIM_CLOSE
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_BLANK:
		return "TOK_BLANK"
	case TOK_WORD:
		return "TOK_WORD"
	case TOK_SYMBOL:
		return "TOK_SYMBOL"
	case TOK_DELIM_OPEN:
		return "TOK_DELIM_OPEN"
	case TOK_DELIM_CLOSE:
		return "TOK_DELIM_CLOSE"
	}
	return "TOK_UNKNOWN"
}

// ClosingFor returns the closing delimiter lexeme matching an opening
// delimiter lexeme, or the empty string if open is not a delimiter.
func ClosingFor(open string) string {
	switch open {
	case "(":
		return ")"
	case "{":
		return "}"
	case "[":
		return "]"
	}
	return ""
}
