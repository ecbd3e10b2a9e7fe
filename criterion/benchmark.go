// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package criterion

// Benchmark is the parsed form of a Criterion benchmark.json file.
// All fields are optional; see the Default constants for the values
// substituted when an identifier is missing or empty.
type Benchmark struct {
	GroupID    string      `json:"group_id"`
	FunctionID string      `json:"function_id"`
	ValueStr   string      `json:"value_str"`
	FullID     string      `json:"full_id"`
	Throughput *Throughput `json:"throughput"`
}

// Throughput is the per-iteration work declared by a benchmark.
// Criterion sets at most one of Elements or Bytes.
type Throughput struct {
	Elements *float64 `json:"Elements"`
	Bytes    *float64 `json:"Bytes"`
}

// units returns the per-iteration unit count and base unit name for
// this benchmark. Elements take precedence over Bytes; with neither,
// the count defaults to 1 element per iteration.
func (b *Benchmark) units() (count float64, unit string) {
	if t := b.Throughput; t != nil {
		if t.Elements != nil {
			return *t.Elements, "elem"
		}
		if t.Bytes != nil {
			return *t.Bytes, "B"
		}
	}
	return 1, "elem"
}
