/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

type TokenType interface {
	ToString() string
}

type Location struct {
	Start int
	End   int
}

// Token is an atomic lexical unit. Suffix holds the run of separator
// characters that followed the token in its source text; serializing a
// token stream concatenates Lexeme+Suffix for each token, so a scanned
// slice round-trips to the exact text it came from.
type Token struct {
	Type     TokenType
	Lexeme   string
	Suffix   string
	Location Location
}
