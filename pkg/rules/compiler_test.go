/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylebrw/slang/pkg/scanner"
)

func compileText(t *testing.T, defs string) (*RuleSet, error) {
	t.Helper()
	return Compile(scanner.Tokenize(defs))
}

func TestCompileSimpleRule(t *testing.T) {
	rs, err := compileText(t, "#define if ( $cond ) { $block }\nif $cond:\n  $block\n")
	require.NoError(t, err)
	require.Len(t, rs.Rules, 1)

	r := rs.Rules[0]
	assert.Equal(t, "if ( $cond ) { $block }", r.String())

	require.Len(t, r.Pattern, 3)
	assert.Equal(t, ElemLiteral, r.Pattern[0].Kind)
	assert.Equal(t, "if", r.Pattern[0].Token.Lexeme)
	assert.Equal(t, ElemBlock, r.Pattern[1].Kind)
	assert.Equal(t, "(", r.Pattern[1].Open)
	assert.Equal(t, ")", r.Pattern[1].Close)
	assert.Equal(t, ElemBlock, r.Pattern[2].Kind)
	assert.Equal(t, "{", r.Pattern[2].Open)

	require.Contains(t, r.Captures, "cond")
	require.Contains(t, r.Captures, "block")
	assert.Equal(t, ElemBlock, r.Captures["cond"].Kind)
	assert.Equal(t, 1, r.Captures["cond"].Slot)

	require.Len(t, r.Template, 4)
	assert.Equal(t, ElemLiteral, r.Template[0].Kind)
	assert.Equal(t, ElemBlock, r.Template[1].Kind)
	assert.Equal(t, "cond", r.Template[1].Name)
	assert.Equal(t, ElemLiteral, r.Template[2].Kind)
	assert.Equal(t, "\n  ", r.Template[2].Token.Suffix)
	assert.Equal(t, ElemBlock, r.Template[3].Kind)
	assert.Equal(t, "", r.Template[3].Suffix)
}

func TestCompileVariableCapture(t *testing.T) {
	rs, err := compileText(t, "#define let $name = $val\n$name := $val\n")
	require.NoError(t, err)

	r := rs.Rules[0]
	require.Len(t, r.Pattern, 4)
	assert.Equal(t, ElemVariable, r.Pattern[1].Kind)
	assert.Equal(t, ElemLiteral, r.Pattern[2].Kind)
	assert.Equal(t, ElemVariable, r.Pattern[3].Kind)
	assert.Equal(t, ElemVariable, r.Captures["name"].Kind)
}

func TestCompileVariableInsideLiteralDelimiters(t *testing.T) {
	// $x is not the sole content of the pair, so the braces are
	// literals and $x a plain variable.
	rs, err := compileText(t, "#define { $x extra }\n$x\n")
	require.NoError(t, err)

	r := rs.Rules[0]
	require.Len(t, r.Pattern, 4)
	assert.Equal(t, ElemLiteral, r.Pattern[0].Kind)
	assert.Equal(t, "{", r.Pattern[0].Token.Lexeme)
	assert.Equal(t, ElemVariable, r.Pattern[1].Kind)
	assert.Equal(t, ElemLiteral, r.Pattern[3].Kind)
	assert.Equal(t, "}", r.Pattern[3].Token.Lexeme)
}

func TestCompileDeterministic(t *testing.T) {
	defs := "#define if ( $cond ) { $block }\nif $cond:\n  $block\n\n#define repeat $n { $body }\nfor _ in range($n):\n  $body\n"

	a, err := compileText(t, defs)
	require.NoError(t, err)
	b, err := compileText(t, defs)
	require.NoError(t, err)

	// IDs differ per compilation; the rules must not.
	assert.Equal(t, a.Rules, b.Rules)
}

func TestCompileMultipleRules(t *testing.T) {
	rs, err := compileText(t, "#define inc $x\n$x += 1\n\n#define dec $x\n$x -= 1\n")
	require.NoError(t, err)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, "inc $x", rs.Rules[0].String())
	assert.Equal(t, "dec $x", rs.Rules[1].String())
}

func TestCompileBackToBackDefines(t *testing.T) {
	// A new #define at the start of a line also ends the previous rule.
	rs, err := compileText(t, "#define inc $x\n$x += 1\n#define dec $x\n$x -= 1\n")
	require.NoError(t, err)
	require.Len(t, rs.Rules, 2)
}

func TestAmbiguousPrefix(t *testing.T) {
	tests := []struct {
		name string
		defs string
	}{
		{"literal prefix", "#define if not\nunless\n\n#define if\nwhen\n"},
		{"identical patterns", "#define foo\nbar\n\n#define foo\nbaz\n"},
		{"wildcard shadows literal", "#define if $x\na\n\n#define if then\nb\n"},
		{"literal prefix of wildcard rule", "#define if\na\n\n#define if $x\nb\n"},
		{"wildcard prefix both sides", "#define $a end\nx\n\n#define begin end stop\ny\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compileText(t, tt.defs)
			require.Error(t, err)
			assert.True(t, IsKind(err, AmbiguousPrefix), "wanted AmbiguousPrefix, got %v", err)

			ce := err.(*CompileError)
			assert.Len(t, ce.Rules, 2)
		})
	}
}

func TestNonPrefixRulesCompile(t *testing.T) {
	// Diverging literals after a wildcard keep the set unambiguous.
	_, err := compileText(t, "#define if $x a\n1\n\n#define if then b\n2\n")
	require.NoError(t, err)
}

func TestUnknownCapture(t *testing.T) {
	_, err := compileText(t, "#define if ( $cond ) { $block }\nif $condition:\n  $block\n")
	require.Error(t, err)
	assert.True(t, IsKind(err, UnknownCapture), "wanted UnknownCapture, got %v", err)
}

func TestMalformedPattern(t *testing.T) {
	tests := []struct {
		name string
		defs string
	}{
		{"bare dollar", "#define $ x\ny\n"},
		{"duplicate capture", "#define pair $x $x\n$x\n"},
		{"block never closed", "#define while { $body\n$body\n"},
		{"mismatched block closer", "#define while { $body )\n$body\n"},
		{"unbalanced open", "#define begin (\nx\n"},
		{"unbalanced close", "#define end )\nx\n"},
		{"missing template", "#define lonely\n"},
		{"empty pattern", "#define\nx\n"},
		{"stray token", "stray\n#define a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compileText(t, tt.defs)
			require.Error(t, err)
			assert.True(t, IsKind(err, MalformedPattern), "wanted MalformedPattern, got %v", err)
		})
	}
}

func TestCompileEmptyInput(t *testing.T) {
	rs, err := compileText(t, "\n\n")
	require.NoError(t, err)
	assert.Empty(t, rs.Rules)
}
