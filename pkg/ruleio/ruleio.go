/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package ruleio is the storage-facing wrapper around the rule
// compiler: it reads macro definition files and hands their tokens to
// rules.Compile. The core stays free of file I/O.
package ruleio

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/kylebrw/slang/pkg/common/parse"
	"github.com/kylebrw/slang/pkg/rules"
	"github.com/kylebrw/slang/pkg/scanner"
)

// LoadRuleSet tokenizes every macro file and compiles the combined
// definitions into a single RuleSet. Files never merge into one rule:
// each is terminated with a blank line before concatenation.
func LoadRuleSet(paths []string) (*rules.RuleSet, error) {
	var defs []parse.Token

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read macro file %s", path)
		}

		text := string(data)
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		text += "\n"

		defs = append(defs, scanner.Tokenize(text)...)
	}

	rs, err := rules.Compile(defs)
	if err != nil {
		return nil, err
	}
	return rs, nil
}
