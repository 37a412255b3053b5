/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package output

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Printable is anything renderable as a header row plus value rows,
// such as a rule listing.
type Printable interface {
	Headers() []string
	Values() [][]string
}

type OutputWriter interface {
	Write(v Printable)
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func (w CSVWriter) Write(v Printable) {
	wtr := csv.NewWriter(w.w)
	wtr.Write(v.Headers())
	wtr.WriteAll(v.Values())
}

func (w TextWriter) Write(v Printable) {
	table := tablewriter.NewWriter(w.w)
	table.SetHeader(v.Headers())
	table.AppendBulk(v.Values())
	table.Render()
}

func (w JSONWriter) Write(v Printable) {
	enc := json.NewEncoder(w.w)
	enc.Encode(v)
}
