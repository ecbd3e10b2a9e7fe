// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package criterion

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	estimatesFile = "estimates.json"
	benchmarkFile = "benchmark.json"
	sampleFile    = "sample.json"
)

// A Tree loads benchmark records from a Criterion output directory.
type Tree struct {
	// Root is the directory to scan, typically target/criterion.
	Root string

	// LoadSamples requests per-iteration sample times for each
	// record and, for records in a Criterion "new" directory, the
	// samples of the sibling "base" directory. Sample files that
	// are missing or malformed leave the record without samples;
	// they never fail the record itself.
	LoadSamples bool
}

// A WalkError records a failure to load one benchmark case.
type WalkError struct {
	// Dir is the directory of the failed case.
	Dir string
	// Err is the underlying read or parse error.
	Err error
}

func (e *WalkError) Error() string { return fmt.Sprintf("error processing %s: %v", e.Dir, e.Err) }

func (e *WalkError) Unwrap() error { return e.Err }

// Records walks the tree and returns every loadable benchmark case in
// lexical walk order, together with the errors for the cases that
// failed. A failed case never stops the walk; callers are expected to
// report the errors and use the records that did load.
func (t *Tree) Records() ([]*Record, []error) {
	var recs []*Record
	var errs []error
	filepath.WalkDir(t.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, &WalkError{Dir: filepath.Dir(path), Err: err})
			return nil
		}
		if d.IsDir() || d.Name() != estimatesFile {
			return nil
		}
		dir := filepath.Dir(path)
		if _, err := os.Stat(filepath.Join(dir, benchmarkFile)); err != nil {
			// No metadata sibling. Not a benchmark case.
			return nil
		}
		rec, err := t.loadCase(dir)
		if err != nil {
			errs = append(errs, &WalkError{Dir: dir, Err: err})
			return nil
		}
		recs = append(recs, rec)
		return nil
	})
	return recs, errs
}

// loadCase parses one estimates/benchmark pair into a Record.
func (t *Tree) loadCase(dir string) (*Record, error) {
	var est Estimates
	if err := readJSON(filepath.Join(dir, estimatesFile), &est); err != nil {
		return nil, err
	}
	var meta Benchmark
	if err := readJSON(filepath.Join(dir, benchmarkFile), &meta); err != nil {
		return nil, err
	}
	rec := newRecord(&est, &meta)
	if t.LoadSamples {
		rec.Times = loadSampleTimes(filepath.Join(dir, sampleFile))
		if filepath.Base(dir) == "new" {
			rec.BaseTimes = loadSampleTimes(filepath.Join(filepath.Dir(dir), "base", sampleFile))
		}
	}
	return rec, nil
}

// loadSampleTimes reads per-iteration times from a sample.json file.
// Samples are an optional enrichment, so any failure simply yields
// nil.
func loadSampleTimes(path string) []float64 {
	var s SampleFile
	if err := readJSON(path, &s); err != nil {
		return nil
	}
	times, err := s.PerIteration()
	if err != nil {
		return nil
	}
	return times
}

func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("%s: %v", filepath.Base(path), err)
	}
	return nil
}
