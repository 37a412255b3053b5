/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package expand applies a compiled RuleSet to a token stream: a
// left-to-right scan that rewrites each match in place and immediately
// rescans, so expansion output can itself be expanded. Captured block
// content is re-driven through the same rule set before it is spliced
// into a template, which is what makes macros compose.
package expand

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/kylebrw/slang/pkg/common/parse"
	"github.com/kylebrw/slang/pkg/rules"
)

const (
	// DefaultMaxDepth bounds nested block re-expansion.
	DefaultMaxDepth = 64

	// DefaultMaxRewrites bounds total rewrites in one run, shared
	// across every nesting level.
	DefaultMaxRewrites = 10000
)

// Driver orchestrates one or more expansion runs over a shared,
// read-only RuleSet. Each run owns its cursor, output and bindings, so
// a single RuleSet is safe to expand with from any number of
// goroutines, each holding its own Driver.
type Driver struct {
	MaxDepth    int
	MaxRewrites int

	rules    *rules.RuleSet
	log      zerolog.Logger
	metrics  MetricsStore
	rewrites int
}

type Option func(*Driver)

func WithLogger(log zerolog.Logger) Option {
	return func(d *Driver) { d.log = log }
}

func WithMetrics(ms MetricsStore) Option {
	return func(d *Driver) { d.metrics = ms }
}

func WithLimits(maxDepth, maxRewrites int) Option {
	return func(d *Driver) {
		d.MaxDepth = maxDepth
		d.MaxRewrites = maxRewrites
	}
}

func NewDriver(rs *rules.RuleSet, opts ...Option) *Driver {
	d := &Driver{
		MaxDepth:    DefaultMaxDepth,
		MaxRewrites: DefaultMaxRewrites,
		rules:       rs,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Expand runs a token stream through a RuleSet with default limits.
func Expand(rs *rules.RuleSet, tokens []parse.Token) ([]parse.Token, error) {
	return NewDriver(rs).Run(tokens)
}

// Run expands tokens until the stream is exhausted, returning the full
// output or an *ExpansionError. On error no partial output is
// returned: a stream that failed mid-expansion cannot be trusted.
func (d *Driver) Run(tokens []parse.Token) ([]parse.Token, error) {
	d.rewrites = 0
	start := time.Now()

	out, err := d.run(tokens, 0)

	if d.metrics != nil {
		d.metrics.IncRuns()
		d.metrics.ObserveRunNS(time.Since(start).Nanoseconds())
		if err != nil {
			if ee, ok := err.(*ExpansionError); ok {
				d.metrics.IncErrors(ee.Kind.String())
			}
		}
	}

	if err != nil {
		d.log.Debug().Str("ruleset", d.rules.ID.String()).Err(err).Msg("expansion failed")
		return nil, err
	}

	d.log.Debug().
		Str("ruleset", d.rules.ID.String()).
		Int("in", len(tokens)).
		Int("out", len(out)).
		Int("rewrites", d.rewrites).
		Msg("expansion complete")

	return out, nil
}

// Rewrites reports the number of rewrites the last Run performed.
func (d *Driver) Rewrites() int {
	return d.rewrites
}

func (d *Driver) run(tokens []parse.Token, depth int) ([]parse.Token, error) {
	if depth > d.MaxDepth {
		return nil, &ExpansionError{
			Kind:    RecursionLimitExceeded,
			Message: "nested block re-expansion exceeded the depth limit",
		}
	}

	// The scan splices rewrites into its working stream, so take a
	// private copy up front.
	work := append([]parse.Token(nil), tokens...)

	var out []parse.Token
	pos := 0
	for pos < len(work) {
		m, err := MatchAt(d.rules, work, pos)
		if err != nil {
			return nil, err
		}

		if m == nil {
			out = append(out, work[pos])
			pos++
			continue
		}

		d.rewrites++
		if d.rewrites > d.MaxRewrites {
			return nil, &ExpansionError{
				Kind:     RecursionLimitExceeded,
				Position: work[pos].Location.Start,
				Rule:     m.Rule.String(),
				Message:  "rewrite budget exhausted; a rule likely regenerates its own pattern",
			}
		}
		if d.metrics != nil {
			d.metrics.IncRewrites(m.Rule.String())
		}

		replacement, err := d.expandTemplate(m, depth)
		if err != nil {
			return nil, err
		}

		// The rewrite inherits the separator run that followed the
		// span it replaced.
		if len(replacement) > 0 {
			replacement[len(replacement)-1].Suffix = work[pos+m.Consumed-1].Suffix
		}

		work = append(work[:pos], append(replacement, work[pos+m.Consumed:]...)...)
		// Stay at pos: the replacement is immediately re-matchable.
	}

	return out, nil
}
