// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package criterion reads benchmark results produced by the Criterion
// benchmarking harness.
//
// Criterion writes one directory per benchmark case containing an
// estimates.json file with the measured statistics and a sibling
// benchmark.json file with the case metadata. A Tree walks such a
// directory hierarchy and loads every complete pair into a Record.
//
// Loading is best effort: a malformed or unreadable pair is reported
// and skipped, never aborting the walk. An estimates.json without its
// benchmark.json sibling is skipped silently; Criterion leaves such
// stragglers behind when a benchmark is renamed.
package criterion

import (
	"github.com/davidteather/rust-order-book/benchunit"
)

// Default identifiers substituted when benchmark.json omits or leaves
// empty the corresponding field.
const (
	DefaultGroup = "unknown_group"
	DefaultImpl  = "unknown_impl"
	DefaultOp    = "default"
)

// A Record is one loaded benchmark case. It is immutable once built.
type Record struct {
	// Group is the benchmark group (benchmark.json "group_id"),
	// DefaultGroup when missing.
	Group string

	// Impl is the implementation under test (benchmark.json
	// "function_id"), DefaultImpl when missing.
	Impl string

	// Op is the operation or input label (benchmark.json
	// "value_str"), DefaultOp when missing.
	Op string

	// MeanNs is the mean execution time in nanoseconds
	// (estimates.json "mean.point_estimate"), 0 when missing.
	MeanNs float64

	// ThroughputPerSec is units × 1e9 / MeanNs, or 0 when
	// MeanNs ≤ 0.
	ThroughputPerSec float64

	// MeanUs is MeanNs / 1000.
	MeanUs float64

	// ThroughputHuman is ThroughputPerSec formatted with an SI
	// prefix, e.g. "2.00 Kelem/s".
	ThroughputHuman string

	// Times and BaseTimes are the per-iteration times in
	// nanoseconds from sample.json in this case's directory and in
	// the sibling base directory. They are nil unless the Tree was
	// asked to load samples and the files exist.
	Times, BaseTimes []float64
}

// ID returns the benchmark identifier "impl/op" used to key records
// within a group.
func (r *Record) ID() string {
	return r.Impl + "/" + r.Op
}

// newRecord derives a Record from a parsed estimates/benchmark pair.
func newRecord(est *Estimates, meta *Benchmark) *Record {
	r := &Record{
		Group: meta.GroupID,
		Impl:  meta.FunctionID,
		Op:    meta.ValueStr,
	}
	if r.Group == "" {
		r.Group = DefaultGroup
	}
	if r.Impl == "" {
		r.Impl = DefaultImpl
	}
	if r.Op == "" {
		r.Op = DefaultOp
	}

	if est.Mean != nil {
		r.MeanNs = est.Mean.PointEstimate
	}
	r.MeanUs = r.MeanNs / 1000

	units, unit := meta.units()
	if r.MeanNs > 0 {
		r.ThroughputPerSec = units * 1e9 / r.MeanNs
	}
	r.ThroughputHuman = benchunit.ThroughputUnit(r.ThroughputPerSec, unit)
	return r
}
