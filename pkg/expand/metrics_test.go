/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package expand

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kylebrw/slang/pkg/scanner"
)

func TestMetricsCollection(t *testing.T) {
	rs := mustCompile(t, "#define inc $x\n$x += 1\n")
	ms := NewMetricsStore()

	d := NewDriver(rs, WithMetrics(ms))
	if _, err := d.Run(scanner.Tokenize("inc a\ninc b\n")); err != nil {
		t.Fatal(err)
	}

	store := ms.(*metricsStore)
	if got := testutil.ToFloat64(store.Runs); got != 1 {
		t.Errorf("wanted 1 run recorded, got %v", got)
	}
	if got := testutil.ToFloat64(store.Rewrites); got != 2 {
		t.Errorf("wanted 2 rewrites recorded, got %v", got)
	}
	if got := testutil.CollectAndCount(store.Errors); got != 0 {
		t.Errorf("wanted no errors recorded, got %v", got)
	}
}

func TestMetricsCountErrors(t *testing.T) {
	rs := mustCompile(t, "#define while { $body }\nloop: $body\n")
	ms := NewMetricsStore()

	d := NewDriver(rs, WithMetrics(ms))
	if _, err := d.Run(scanner.Tokenize("while { broken\n")); err == nil {
		t.Fatal("expected failure")
	}

	store := ms.(*metricsStore)
	if got := testutil.ToFloat64(store.Errors); got != 1 {
		t.Errorf("wanted 1 error recorded, got %v", got)
	}
}
