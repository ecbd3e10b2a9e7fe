// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package criterion

import "fmt"

// SampleFile is the parsed form of a Criterion sample.json file.
// Times[i] is the total wall time in nanoseconds spent running
// Iters[i] iterations.
type SampleFile struct {
	SamplingMode string    `json:"sampling_mode"`
	Iters        []float64 `json:"iters"`
	Times        []float64 `json:"times"`
}

// PerIteration returns the estimated time per iteration for each
// sampling batch, in nanoseconds.
func (s *SampleFile) PerIteration() ([]float64, error) {
	if len(s.Iters) != len(s.Times) {
		return nil, fmt.Errorf("sample has %d iteration counts but %d times", len(s.Iters), len(s.Times))
	}
	out := make([]float64, 0, len(s.Times))
	for i, t := range s.Times {
		if s.Iters[i] <= 0 {
			return nil, fmt.Errorf("sample batch %d has non-positive iteration count %v", i, s.Iters[i])
		}
		out = append(out, t/s.Iters[i])
	}
	return out, nil
}
