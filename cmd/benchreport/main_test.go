// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davidteather/rust-order-book/history"
	"github.com/davidteather/rust-order-book/internal/diff"
)

func golden(t *testing.T, goldenFile string, cfg config) {
	t.Helper()

	cfg.base = filepath.Join("testdata", "criterion")
	cfg.output = filepath.Join(t.TempDir(), "benchmarks.md")
	var stdout bytes.Buffer
	if err := benchreport(cfg, &stdout); err != nil {
		t.Fatal(err)
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected output: %s", stdout.String())
	}

	got, err := os.ReadFile(cfg.output)
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(filepath.Join("testdata", goldenFile))
	if err != nil {
		t.Fatal(err)
	}
	if d := diff.Diff(string(want), string(got)); d != "" {
		t.Errorf("report differs from %s:\n%s", goldenFile, d)
	}
}

func TestReport(t *testing.T) {
	golden(t, "benchmarks.golden", config{})
}

func TestReportDelta(t *testing.T) {
	golden(t, "delta.golden", config{delta: true})
}

func TestNoResults(t *testing.T) {
	cfg := config{
		base:   filepath.Join(t.TempDir(), "empty"),
		output: filepath.Join(t.TempDir(), "benchmarks.md"),
	}
	var stdout bytes.Buffer
	if err := benchreport(cfg, &stdout); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "no benchmarks found") {
		t.Errorf("missing warning, got: %q", stdout.String())
	}
	// The (empty) report is still written.
	data, err := os.ReadFile(cfg.output)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("got report %q, want empty", data)
	}
}

func TestReportOverwritesOutput(t *testing.T) {
	cfg := config{
		base:   filepath.Join(t.TempDir(), "empty"),
		output: filepath.Join(t.TempDir(), "benchmarks.md"),
	}
	if err := os.WriteFile(cfg.output, []byte("stale content"), 0666); err != nil {
		t.Fatal(err)
	}
	var stdout bytes.Buffer
	if err := benchreport(cfg, &stdout); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(cfg.output)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("stale content survived: %q", data)
	}
}

func TestReportHistory(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		base:     filepath.Join("testdata", "criterion"),
		output:   filepath.Join(dir, "benchmarks.md"),
		db:       filepath.Join(dir, "history.db"),
		dbDriver: "sqlite3",
	}
	var stdout bytes.Buffer
	if err := benchreport(cfg, &stdout); err != nil {
		t.Fatal(err)
	}

	db, err := history.OpenSQL(cfg.dbDriver, cfg.db)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	ctx := context.Background()
	runs, err := db.Runs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	results, err := db.Results(ctx, runs[0])
	if err != nil {
		t.Fatal(err)
	}
	// testdata/criterion holds four benchmark cases.
	if len(results) != 4 {
		t.Errorf("got %d results, want 4", len(results))
	}
}

func TestReportPlot(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		base:   filepath.Join("testdata", "criterion"),
		output: filepath.Join(dir, "benchmarks.md"),
		plot:   filepath.Join(dir, "charts"),
	}
	var stdout bytes.Buffer
	if err := benchreport(cfg, &stdout); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"map.png", "sort.png"} {
		if _, err := os.Stat(filepath.Join(cfg.plot, name)); err != nil {
			t.Errorf("missing chart: %v", err)
		}
	}
}
