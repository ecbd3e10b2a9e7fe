// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath compares distributions of benchmark measurements.
//
// A Sample holds the per-iteration times Criterion records for one
// benchmark run. Two samples, typically a baseline run and a new run
// of the same benchmark, can be compared with a Mann-Whitney U-test to
// decide whether the difference between their means is statistically
// meaningful.
//
// Comparison failures are reported as warnings on the result, not as
// errors; a failed test reads as "no significant difference" so that
// one degenerate sample never aborts a report.
package benchmath

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// DefaultAlpha is the p-value threshold below which Compare rejects
// the null hypothesis that two samples come from the same
// distribution.
const DefaultAlpha = 0.05

// A Sample is a set of repeated measurements of a given benchmark.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements.
// The values slice is sorted in place.
func NewSample(values []float64) *Sample {
	// Sort values for fast order statistics.
	sort.Float64s(values)
	return &Sample{values}
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// Mean returns the arithmetic mean of the sample.
func (s *Sample) Mean() float64 {
	return s.sample().Mean()
}

// A Comparison is the result of comparing two samples to test if they
// come from the same distribution.
type Comparison struct {
	// P is the p-value of the null hypothesis that the two samples
	// come from the same distribution. If P is less than Alpha, we
	// reject the null hypothesis.
	P float64

	// N1 and N2 are the sizes of the two samples.
	N1, N2 int

	// Alpha is the significance threshold for this test.
	Alpha float64

	// Warnings is a list of warnings about this comparison result.
	Warnings []error
}

// Compare tests whether s1 and s2 come from the same distribution
// using the Mann-Whitney U-test. If the test cannot be run (for
// example, because all values are identical), the comparison reports
// P=1 along with a warning.
func Compare(s1, s2 *Sample) Comparison {
	res, err := stats.MannWhitneyUTest(s1.Values, s2.Values, stats.LocationDiffers)
	if err != nil {
		// The U-test failed. Report as if there's no
		// significant difference, along with the error.
		return Comparison{P: 1, N1: len(s1.Values), N2: len(s2.Values), Alpha: DefaultAlpha, Warnings: []error{err}}
	}
	return Comparison{P: res.P, N1: len(s1.Values), N2: len(s2.Values), Alpha: DefaultAlpha}
}

// String summarizes the comparison. The general form of this string
// is "p=0.PPP n=N1+N2" but can be shortened.
func (c Comparison) String() string {
	var s string
	if c.P != 0 {
		s = fmt.Sprintf("p=%0.3f ", c.P)
	}
	if c.N1 == c.N2 {
		// Slightly shorter form for a common case.
		return s + fmt.Sprintf("n=%d", c.N1)
	}
	return s + fmt.Sprintf("n=%d+%d", c.N1, c.N2)
}

// FormatDelta formats the difference in the centers of two compared
// distributions. If the comparison accepts the null hypothesis that
// the samples come from the same distribution, FormatDelta returns "~"
// to indicate there's no meaningful difference. Otherwise, it returns
// the percent difference between the centers.
func (c Comparison) FormatDelta(old, new float64) string {
	if c.P > c.Alpha {
		return "~"
	}
	if old == new {
		return "0.00%"
	}
	if old == 0 {
		return "?"
	}
	pct := ((new / old) - 1.0) * 100.0
	return fmt.Sprintf("%+.2f%%", pct)
}
