/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rules

import "github.com/kylebrw/slang/pkg/common/parse"

// ElementKind tags the closed set of pattern and template element
// variants. Every consumption site switches exhaustively over it.
type ElementKind int

const (
	// ElemLiteral matches (or emits) one token by exact lexeme.
	ElemLiteral ElementKind = iota

	// ElemVariable captures (or references) exactly one token.
	ElemVariable

	// ElemBlock captures (or references) a balanced-delimiter span.
	ElemBlock
)

func (k ElementKind) String() string {
	switch k {
	case ElemLiteral:
		return "literal"
	case ElemVariable:
		return "variable"
	case ElemBlock:
		return "block"
	}
	return "unknown"
}

// PatternElement is one slot of a rule's pattern. Token is set for
// literals; Name for captures; Open/Close for block captures.
type PatternElement struct {
	Kind  ElementKind
	Token parse.Token
	Name  string
	Open  string
	Close string
}

// TemplateElement is one slot of a rule's template. Token is set for
// literals. For capture references, Suffix is the separator run the
// emitted span adopts on its last token, which is how template layout
// survives substitution.
type TemplateElement struct {
	Kind   ElementKind
	Token  parse.Token
	Name   string
	Suffix string
}
