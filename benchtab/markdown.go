// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"io"

	"github.com/davidteather/rust-order-book/benchmath"
	"github.com/davidteather/rust-order-book/criterion"
)

// MarkdownOpts configures report rendering.
type MarkdownOpts struct {
	// Delta appends a "vs base" column to each operation table
	// whose records carry both new and base samples, comparing the
	// two runs with a significance test.
	Delta bool
}

// ToMarkdown renders the collected groups as a markdown report.
//
// Each group becomes a level-2 section; each of its operations a
// level-3 section with one table row per implementation, ascending by
// name. The row whose mean equals the operation's best (lowest
// positive) mean is bolded. Implementations without a record for an
// operation produce no row.
func (b *Builder) ToMarkdown(w io.Writer, opts MarkdownOpts) error {
	for _, table := range b.Tables() {
		if err := writeGroup(w, table, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeGroup(w io.Writer, t *Table, opts MarkdownOpts) error {
	if _, err := fmt.Fprintf(w, "## %s\n\n", t.Group); err != nil {
		return err
	}
	for _, op := range t.Ops {
		if err := writeOp(w, t, op, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeOp(w io.Writer, t *Table, op string, opts MarkdownOpts) error {
	// Records for this operation in sorted implementation order.
	var recs []*criterion.Record
	delta := false
	for _, impl := range t.Impls {
		if r := t.Record(impl, op); r != nil {
			recs = append(recs, r)
			if opts.Delta && r.Times != nil && r.BaseTimes != nil {
				delta = true
			}
		}
	}
	bst := best(recs)

	if _, err := fmt.Fprintf(w, "### Operation: `%s`\n\n", op); err != nil {
		return err
	}
	header := "| Implementation | Mean (µs) | Throughput |\n|----------------|-----------|------------|\n"
	if delta {
		header = "| Implementation | Mean (µs) | Throughput | vs base |\n|----------------|-----------|------------|---------|\n"
	}
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	for _, r := range recs {
		mean := fmt.Sprintf("%.2f", r.MeanUs)
		tput := r.ThroughputHuman
		if bst != nil && r.MeanUs == bst.MeanUs {
			mean = "**" + mean + "**"
			tput = "**" + tput + "**"
		}
		var err error
		if delta {
			_, err = fmt.Fprintf(w, "| %s | %s | %s | %s |\n", r.Impl, mean, tput, formatDelta(r))
		} else {
			_, err = fmt.Fprintf(w, "| %s | %s | %s |\n", r.Impl, mean, tput)
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// formatDelta renders the vs-base cell for one record: the percent
// change of the new sample mean against the base sample mean,
// annotated with the significance test result. Records without both
// samples render an empty cell.
func formatDelta(r *criterion.Record) string {
	if r.Times == nil || r.BaseTimes == nil {
		return ""
	}
	// NewSample sorts in place; records stay immutable, so copy.
	base := benchmath.NewSample(append([]float64(nil), r.BaseTimes...))
	new := benchmath.NewSample(append([]float64(nil), r.Times...))
	c := benchmath.Compare(base, new)
	return fmt.Sprintf("%s (%s)", c.FormatDelta(base.Mean(), new.Mean()), c)
}
