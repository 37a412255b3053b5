/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package expand

import (
	"testing"

	"github.com/kylebrw/slang/pkg/scanner"
)

func TestMatchAt(t *testing.T) {
	rs := mustCompile(t, "#define if ( $cond ) { $block }\nif $cond:\n  $block\n")
	tokens := scanner.Tokenize("noise if (a) { b; } tail\n")

	m, err := MatchAt(rs, tokens, 0)
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Error("no rule should match at position 0")
	}

	m, err = MatchAt(rs, tokens, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil {
		t.Fatal("rule should match at position 1")
	}

	// if ( a ) { b ; } is eight tokens
	if m.Consumed != 8 {
		t.Errorf("wanted 8 tokens consumed, got %d", m.Consumed)
	}

	cond := scanner.Serialize(m.Bindings["cond"])
	if cond != "a" {
		t.Errorf("wanted $cond bound to 'a', got %q", cond)
	}

	block := m.Bindings["block"]
	if len(block) != 2 || block[0].Lexeme != "b" || block[1].Lexeme != ";" {
		t.Errorf("wanted $block bound to 'b ;', got %q", scanner.Serialize(block))
	}
}

func TestMatchAtEndOfInput(t *testing.T) {
	rs := mustCompile(t, "#define let $name = $val\n$name := $val\n")
	tokens := scanner.Tokenize("let x =\n")

	// The pattern needs one more token than the input has.
	m, err := MatchAt(rs, tokens, 0)
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Error("truncated input should not match")
	}
}
