/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package expand

import (
	"fmt"

	"github.com/kylebrw/slang/pkg/common/parse"
	"github.com/kylebrw/slang/pkg/rules"
)

// Match is the outcome of a successful pattern match at one stream
// position. Block bindings hold the tokens inside the delimiter pair;
// Consumed counts the whole span including the delimiters themselves.
type Match struct {
	Rule     *rules.Rule
	Bindings map[string][]parse.Token
	Consumed int
}

// MatchAt finds the rule matching tokens at pos, or nil if none does.
// The prefix-free invariant guarantees at most one rule can succeed,
// so the first match is the only match.
func MatchAt(rs *rules.RuleSet, tokens []parse.Token, pos int) (*Match, error) {
	for _, r := range rs.Rules {
		m, err := matchRule(r, tokens, pos)
		if err != nil {
			return nil, err
		}
		if m != nil {
			return m, nil
		}
	}
	return nil, nil
}

func matchRule(r *rules.Rule, tokens []parse.Token, pos int) (*Match, error) {
	cur := pos
	bindings := make(map[string][]parse.Token, len(r.Captures))

	for _, el := range r.Pattern {
		switch el.Kind {
		case rules.ElemLiteral:
			if cur >= len(tokens) || tokens[cur].Lexeme != el.Token.Lexeme {
				return nil, nil
			}
			cur++

		case rules.ElemVariable:
			if cur >= len(tokens) {
				return nil, nil
			}
			bindings[el.Name] = tokens[cur : cur+1 : cur+1]
			cur++

		case rules.ElemBlock:
			if cur >= len(tokens) || tokens[cur].Lexeme != el.Open {
				return nil, nil
			}
			end, err := scanBalanced(tokens, cur, el.Open, el.Close, r)
			if err != nil {
				return nil, err
			}
			bindings[el.Name] = tokens[cur+1 : end : end]
			cur = end + 1
		}
	}

	return &Match{Rule: r, Bindings: bindings, Consumed: cur - pos}, nil
}

// scanBalanced returns the index of the closer matching the opener at
// start, tracking nesting depth for same-kind delimiters in between.
func scanBalanced(tokens []parse.Token, start int, openLex, closeLex string, r *rules.Rule) (int, error) {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].Lexeme {
		case openLex:
			depth++
		case closeLex:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, &ExpansionError{
		Kind:     UnbalancedInputDelimiter,
		Position: tokens[start].Location.Start,
		Rule:     r.String(),
		Message:  fmt.Sprintf("'%s' is never closed by '%s'", openLex, closeLex),
	}
}
