/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rules

import (
	"strings"

	"github.com/google/uuid"
)

// Capture records where a placeholder name is bound in a pattern.
type Capture struct {
	Name string
	Kind ElementKind
	Slot int
}

// Rule is a compiled (pattern, template) pair. Immutable after Compile.
type Rule struct {
	Pattern  []PatternElement
	Template []TemplateElement
	Captures map[string]Capture

	src string
}

// String returns the rule's pattern as written, which is how rules are
// named in errors and listings.
func (r *Rule) String() string {
	return r.src
}

// TemplateString reconstructs the template text for display.
func (r *Rule) TemplateString() string {
	var b strings.Builder
	for _, el := range r.Template {
		switch el.Kind {
		case ElemLiteral:
			b.WriteString(el.Token.Lexeme)
			b.WriteString(el.Token.Suffix)
		case ElemVariable, ElemBlock:
			b.WriteString("$")
			b.WriteString(el.Name)
			b.WriteString(el.Suffix)
		}
	}
	return strings.TrimRight(b.String(), " \t\r\n")
}

// patternKey is one slot of a rule's literal-prefix key sequence, the
// domain of the prefix-free check. Capture slots are wildcards.
type patternKey struct {
	lit  string
	wild bool
}

func (r *Rule) keys() []patternKey {
	keys := make([]patternKey, 0, len(r.Pattern))
	for _, el := range r.Pattern {
		switch el.Kind {
		case ElemLiteral:
			keys = append(keys, patternKey{lit: el.Token.Lexeme})
		case ElemVariable, ElemBlock:
			keys = append(keys, patternKey{wild: true})
		}
	}
	return keys
}

// RuleSet is an ordered, immutable collection of compiled rules. The
// prefix-free invariant holds for every set Compile returns: at most
// one rule can match at any stream position. The ID correlates log
// lines and metrics across expansion runs sharing the set.
type RuleSet struct {
	ID    uuid.UUID
	Rules []*Rule
}
