// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/davidteather/rust-order-book/benchtab"
	"github.com/davidteather/rust-order-book/criterion"
)

func TestChart(t *testing.T) {
	b := benchtab.NewBuilder()
	b.Add(&criterion.Record{Group: "sort", Impl: "quick", Op: "1k", MeanUs: 10})
	b.Add(&criterion.Record{Group: "sort", Impl: "merge", Op: "1k", MeanUs: 20})
	b.Add(&criterion.Record{Group: "sort", Impl: "quick", Op: "10k", MeanUs: 150})
	b.Add(&criterion.Record{Group: "maps/lookup", Impl: "hashmap", Op: "hit", MeanUs: 1})

	dir := t.TempDir()
	if err := Chart(b.Tables(), dir); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"sort.png", "maps-per-lookup.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := png.Decode(f); err != nil {
			t.Errorf("%s: not a decodable PNG: %v", name, err)
		}
		f.Close()
	}
}

func TestChartCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts", "nested")
	if err := Chart(nil, dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("dir not created: %v", err)
	}
}

func TestFileName(t *testing.T) {
	if got := fileName("a/b"); got != "a-per-b.png" {
		t.Errorf("got %q, want a-per-b.png", got)
	}
}
