// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders benchmark comparison charts as PNG files.
package benchplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/davidteather/rust-order-book/benchtab"
)

// Chart writes one bar chart per table into dir, named
// "<group>.png". Bars show the mean time per implementation, with one
// bar color per operation. dir is created if missing.
func Chart(tables []*benchtab.Table, dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	for _, t := range tables {
		if err := chartGroup(t, dir); err != nil {
			return fmt.Errorf("chart %s: %v", t.Group, err)
		}
	}
	return nil
}

func chartGroup(t *benchtab.Table, dir string) error {
	pl := plot.New()
	pl.Title.Text = t.Group
	pl.Y.Label.Text = "mean (µs)"

	w := vg.Points(15)
	for i, op := range t.Ops {
		// Missing (impl, op) pairs chart as zero-height bars.
		values := make(plotter.Values, len(t.Impls))
		for j, impl := range t.Impls {
			if r := t.Record(impl, op); r != nil {
				values[j] = r.MeanUs
			}
		}
		bar, err := plotter.NewBarChart(values, w)
		if err != nil {
			return err
		}
		bar.LineStyle.Width = vg.Length(0)
		bar.Color = plotutil.Color(i)
		bar.Offset = w * (vg.Length(i) - vg.Length(len(t.Ops)-1)/2)
		pl.Add(bar)
		pl.Legend.Add(op, bar)
	}
	pl.Legend.Top = true
	pl.NominalX(t.Impls...)

	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(20*vg.Centimeter, 10*vg.Centimeter),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(can))

	f, err := os.Create(filepath.Join(dir, fileName(t.Group)))
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// fileName maps a group name to a safe chart file name.
func fileName(group string) string {
	return strings.ReplaceAll(group, "/", "-per-") + ".png"
}
