// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package criterion

// Estimates is the parsed form of a Criterion estimates.json file.
// Every statistic is optional; a missing statistic is nil rather than
// zero so callers can distinguish "absent" from "measured as 0".
type Estimates struct {
	Mean         *Estimate `json:"mean"`
	Median       *Estimate `json:"median"`
	MedianAbsDev *Estimate `json:"median_abs_dev"`
	StdDev       *Estimate `json:"std_dev"`
	Slope        *Estimate `json:"slope"`
}

// An Estimate is one statistic with its confidence interval. Values
// are in nanoseconds.
type Estimate struct {
	PointEstimate      float64             `json:"point_estimate"`
	StandardError      float64             `json:"standard_error"`
	ConfidenceInterval *ConfidenceInterval `json:"confidence_interval"`
}

// A ConfidenceInterval bounds an Estimate.
type ConfidenceInterval struct {
	ConfidenceLevel float64 `json:"confidence_level"`
	LowerBound      float64 `json:"lower_bound"`
	UpperBound      float64 `json:"upper_bound"`
}
