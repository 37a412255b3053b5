/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rules

// prefixTrie is a shared trie over rule key sequences, used at compile
// time to enforce the prefix-free invariant. Literal slots are keyed
// edges; capture slots share a single wildcard edge per node, since a
// wildcard matches any token at that position.
type prefixTrie struct {
	root *trieNode
}

type trieNode struct {
	children map[string]*trieNode
	wildcard *trieNode
	rule     *Rule
}

func newPrefixTrie() *prefixTrie {
	return &prefixTrie{root: newTrieNode()}
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[string]*trieNode)}
}

// insert adds a rule's key path. It returns a previously inserted rule
// whose path is a prefix of (or equal to, or an extension of) the new
// path under wildcard-matches-anything comparison, or nil when the
// insertion keeps the set prefix-free.
func (t *prefixTrie) insert(r *Rule) *Rule {
	keys := r.keys()

	if conflict := t.root.shadowed(keys); conflict != nil {
		return conflict
	}

	n := t.root
	for _, k := range keys {
		if k.wild {
			if n.wildcard == nil {
				n.wildcard = newTrieNode()
			}
			n = n.wildcard
			continue
		}
		child, ok := n.children[k.lit]
		if !ok {
			child = newTrieNode()
			n.children[k.lit] = child
		}
		n = child
	}
	n.rule = r
	return nil
}

// shadowed walks every branch compatible with keys and reports the
// first rule found either terminating on the path (existing rule is a
// prefix of the new one) or below its end (new rule is a prefix of an
// existing one).
func (n *trieNode) shadowed(keys []patternKey) *Rule {
	if n.rule != nil {
		return n.rule
	}

	if len(keys) == 0 {
		return n.anyRule()
	}

	k := keys[0]
	if k.wild {
		for _, child := range n.children {
			if r := child.shadowed(keys[1:]); r != nil {
				return r
			}
		}
	} else if child, ok := n.children[k.lit]; ok {
		if r := child.shadowed(keys[1:]); r != nil {
			return r
		}
	}

	if n.wildcard != nil {
		if r := n.wildcard.shadowed(keys[1:]); r != nil {
			return r
		}
	}

	return nil
}

func (n *trieNode) anyRule() *Rule {
	if n.rule != nil {
		return n.rule
	}
	for _, child := range n.children {
		if r := child.anyRule(); r != nil {
			return r
		}
	}
	if n.wildcard != nil {
		return n.wildcard.anyRule()
	}
	return nil
}
