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
)

func literalRule(lexemes ...string) *Rule {
	r := &Rule{src: ""}
	for _, l := range lexemes {
		if l == "*" {
			r.Pattern = append(r.Pattern, PatternElement{Kind: ElemVariable, Name: "x"})
			continue
		}
		r.Pattern = append(r.Pattern, PatternElement{Kind: ElemLiteral})
		r.Pattern[len(r.Pattern)-1].Token.Lexeme = l
	}
	return r
}

func TestTrieDisjointInsert(t *testing.T) {
	trie := newPrefixTrie()

	require.Nil(t, trie.insert(literalRule("if", "*", "a")))
	require.Nil(t, trie.insert(literalRule("if", "then", "b")))
	require.Nil(t, trie.insert(literalRule("while", "*")))
}

func TestTrieDetectsPrefix(t *testing.T) {
	trie := newPrefixTrie()
	short := literalRule("if")

	require.Nil(t, trie.insert(short))
	conflict := trie.insert(literalRule("if", "then"))
	assert.Same(t, short, conflict)
}

func TestTrieDetectsExtension(t *testing.T) {
	trie := newPrefixTrie()
	long := literalRule("if", "then", "else")

	require.Nil(t, trie.insert(long))
	conflict := trie.insert(literalRule("if", "*"))
	assert.Same(t, long, conflict)
}

func TestTrieWildcardCrossMatch(t *testing.T) {
	trie := newPrefixTrie()
	wild := literalRule("*", "end")

	require.Nil(t, trie.insert(wild))
	conflict := trie.insert(literalRule("begin", "end", "stop"))
	assert.Same(t, wild, conflict)
}
