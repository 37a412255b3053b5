/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rules

import (
	"fmt"

	"github.com/kylebrw/slang/pkg/common/parse"
)

type ErrorKind int

const (
	// AmbiguousPrefix means one rule's literal-token pattern is an
	// exact prefix of another's, so the two could shadow each other.
	AmbiguousPrefix ErrorKind = iota

	// UnknownCapture means a template references a placeholder name the
	// pattern never captures.
	UnknownCapture

	// MalformedPattern covers structural faults in a single rule:
	// unbalanced delimiters, an empty capture name, a duplicate capture
	// name, a missing pattern or template.
	MalformedPattern
)

func (k ErrorKind) String() string {
	switch k {
	case AmbiguousPrefix:
		return "ambiguous prefix"
	case UnknownCapture:
		return "unknown capture"
	case MalformedPattern:
		return "malformed pattern"
	}
	return "unknown"
}

// CompileError is the only error Compile returns. Rules names the
// offending rule patterns: one entry for single-rule faults, two for
// AmbiguousPrefix.
type CompileError struct {
	Kind     ErrorKind
	Location parse.Location
	Rules    []string
	Message  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsKind reports whether err is a *CompileError of the given kind.
func IsKind(err error, k ErrorKind) bool {
	ce, ok := err.(*CompileError)
	return ok && ce.Kind == k
}
