/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rules

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kylebrw/slang/pkg/common/parse"
	"github.com/kylebrw/slang/pkg/scanner"
)

// DefineKeyword introduces a rule definition. The rest of its line is
// the pattern; the lines up to a blank line (or the next definition,
// or end of input) are the template.
const DefineKeyword = "#define"

// Compile parses tokenized rule definitions into a RuleSet, enforcing
// the prefix-free invariant. It returns either a complete set or a
// *CompileError; there is no partial result.
//
// Grammar:
//
//	rules           = *(definition separator)
//	definition      = "#define" pattern-line template-lines
//	pattern-line    = 1*token EOL
//	template-lines  = 1*(1*token EOL)
//	separator       = *blank-line
func Compile(defTokens []parse.Token) (*RuleSet, error) {
	var compiled []*Rule

	i := 0
	for i < len(defTokens) {
		tok := defTokens[i]
		if tok.Type == scanner.TOK_BLANK {
			i++
			continue
		}
		if tok.Lexeme != DefineKeyword {
			return nil, malformed(tok, fmt.Sprintf("expected '%s', found '%s'", DefineKeyword, tok.Lexeme))
		}
		if strings.Contains(tok.Suffix, "\n") {
			return nil, malformed(tok, "rule has an empty pattern")
		}

		// Pattern: the remainder of the definition line.
		j := i + 1
		var patToks []parse.Token
		for j < len(defTokens) {
			t := defTokens[j]
			patToks = append(patToks, t)
			j++
			if strings.Contains(t.Suffix, "\n") {
				break
			}
		}

		// Template: subsequent lines, up to a blank line or the next
		// definition.
		var tmplToks []parse.Token
		lineStart := true
		for j < len(defTokens) {
			t := defTokens[j]
			if lineStart && t.Lexeme == DefineKeyword {
				break
			}
			tmplToks = append(tmplToks, t)
			j++
			if strings.Count(t.Suffix, "\n") >= 2 {
				break
			}
			lineStart = strings.Contains(t.Suffix, "\n")
		}
		if len(tmplToks) == 0 {
			return nil, malformed(tok, "rule has no template")
		}

		pattern, captures, cerr := parsePattern(patToks)
		if cerr != nil {
			return nil, cerr
		}

		template, cerr := parseTemplate(tmplToks, captures)
		if cerr != nil {
			return nil, cerr
		}

		compiled = append(compiled, &Rule{
			Pattern:  pattern,
			Template: template,
			Captures: captures,
			src:      strings.TrimSpace(scanner.Serialize(patToks)),
		})
		i = j
	}

	trie := newPrefixTrie()
	for _, r := range compiled {
		if conflict := trie.insert(r); conflict != nil {
			return nil, &CompileError{
				Kind:    AmbiguousPrefix,
				Rules:   []string{conflict.String(), r.String()},
				Message: fmt.Sprintf("pattern '%s' shadows '%s': one literal prefix matches the other", r, conflict),
			}
		}
	}

	return &RuleSet{ID: uuid.New(), Rules: compiled}, nil
}

// placeholder reports whether tok is a `$name` placeholder, returning
// the name. A bare `$` yields an empty name, rejected by the caller.
func placeholder(tok parse.Token) (string, bool) {
	if tok.Type != scanner.TOK_WORD || !strings.HasPrefix(tok.Lexeme, "$") {
		return "", false
	}
	return tok.Lexeme[1:], true
}

func malformed(tok parse.Token, msg string) *CompileError {
	return &CompileError{Kind: MalformedPattern, Location: tok.Location, Message: msg}
}

// parsePattern turns a pattern line into elements. A standalone $name
// is a variable capture; `$name` as the sole content of a delimiter
// pair is a block capture over that delimiter kind; everything else is
// a literal. Literal delimiters must balance within the pattern.
func parsePattern(toks []parse.Token) ([]PatternElement, map[string]Capture, *CompileError) {
	var elems []PatternElement
	captures := make(map[string]Capture)

	addCapture := func(name string, kind ElementKind, tok parse.Token) *CompileError {
		if name == "" {
			return malformed(tok, "capture has no name")
		}
		if _, dup := captures[name]; dup {
			return malformed(tok, fmt.Sprintf("duplicate capture '$%s'", name))
		}
		captures[name] = Capture{Name: name, Kind: kind, Slot: len(elems)}
		return nil
	}

	var open []parse.Token // unclosed literal delimiters
	i := 0
	for i < len(toks) {
		tok := toks[i]

		if name, ok := placeholder(tok); ok {
			if err := addCapture(name, ElemVariable, tok); err != nil {
				return nil, nil, err
			}
			elems = append(elems, PatternElement{Kind: ElemVariable, Name: name})
			i++
			continue
		}

		if tok.Type == scanner.TOK_DELIM_OPEN {
			closing := scanner.ClosingFor(tok.Lexeme)
			if i+1 < len(toks) {
				if name, ok := placeholder(toks[i+1]); ok {
					if i+2 >= len(toks) {
						return nil, nil, malformed(tok, fmt.Sprintf("block capture '$%s' is never closed", name))
					}
					if next := toks[i+2]; next.Type == scanner.TOK_DELIM_CLOSE {
						if next.Lexeme != closing {
							return nil, nil, malformed(next, fmt.Sprintf("expected '%s' to close block capture '$%s', found '%s'", closing, name, next.Lexeme))
						}
						if err := addCapture(name, ElemBlock, toks[i+1]); err != nil {
							return nil, nil, err
						}
						elems = append(elems, PatternElement{Kind: ElemBlock, Name: name, Open: tok.Lexeme, Close: closing})
						i += 3
						continue
					}
					// Not a sole-content pair: the delimiter is a
					// literal and $name a variable on later iterations.
				}
			}
			open = append(open, tok)
			elems = append(elems, PatternElement{Kind: ElemLiteral, Token: tok})
			i++
			continue
		}

		if tok.Type == scanner.TOK_DELIM_CLOSE {
			if len(open) == 0 || scanner.ClosingFor(open[len(open)-1].Lexeme) != tok.Lexeme {
				return nil, nil, malformed(tok, fmt.Sprintf("unbalanced '%s' in pattern", tok.Lexeme))
			}
			open = open[:len(open)-1]
		}

		elems = append(elems, PatternElement{Kind: ElemLiteral, Token: tok})
		i++
	}

	if len(open) > 0 {
		last := open[len(open)-1]
		return nil, nil, malformed(last, fmt.Sprintf("unbalanced '%s' in pattern", last.Lexeme))
	}

	return elems, captures, nil
}

// parseTemplate turns template lines into elements, resolving each
// $name against the pattern's capture table. The final element drops
// its trailing separator run: at expansion time the last output token
// of a rewrite adopts the suffix of the last input token it replaced.
func parseTemplate(toks []parse.Token, captures map[string]Capture) ([]TemplateElement, *CompileError) {
	var elems []TemplateElement

	for _, tok := range toks {
		if name, ok := placeholder(tok); ok {
			capture, bound := captures[name]
			if !bound {
				return nil, &CompileError{
					Kind:     UnknownCapture,
					Location: tok.Location,
					Message:  fmt.Sprintf("template references '$%s', which the pattern does not capture", name),
				}
			}
			kind := ElemVariable
			if capture.Kind == ElemBlock {
				kind = ElemBlock
			}
			elems = append(elems, TemplateElement{Kind: kind, Name: name, Suffix: tok.Suffix})
			continue
		}
		elems = append(elems, TemplateElement{Kind: ElemLiteral, Token: tok})
	}

	last := &elems[len(elems)-1]
	switch last.Kind {
	case ElemLiteral:
		last.Token.Suffix = ""
	case ElemVariable, ElemBlock:
		last.Suffix = ""
	}

	return elems, nil
}
