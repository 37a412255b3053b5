/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package expand

import "fmt"

type ErrorKind int

const (
	// UnbalancedInputDelimiter means a block capture found its opening
	// delimiter but the input ended before the matching closer.
	UnbalancedInputDelimiter ErrorKind = iota

	// RecursionLimitExceeded means expansion hit the depth or rewrite
	// budget, which is how runaway self-generating rules surface.
	RecursionLimitExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case UnbalancedInputDelimiter:
		return "unbalanced input delimiter"
	case RecursionLimitExceeded:
		return "recursion limit exceeded"
	}
	return "unknown"
}

// ExpansionError aborts an expansion run; partial output is never
// returned alongside one. Position is a byte offset into the text the
// failing token was scanned from, and Rule names the rule being
// matched or expanded when the failure was detected.
type ExpansionError struct {
	Kind     ErrorKind
	Position int
	Rule     string
	Message  string
}

func (e *ExpansionError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("%s at offset %d (rule '%s'): %s", e.Kind, e.Position, e.Rule, e.Message)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Position, e.Message)
}

// IsKind reports whether err is an *ExpansionError of the given kind.
func IsKind(err error, k ErrorKind) bool {
	ee, ok := err.(*ExpansionError)
	return ok && ee.Kind == k
}
