// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package criterion

import (
	"reflect"
	"testing"
)

func TestPerIteration(t *testing.T) {
	s := &SampleFile{
		Iters: []float64{1, 2, 4},
		Times: []float64{100, 300, 1000},
	}
	got, err := s.PerIteration()
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{100, 150, 250}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPerIterationBad(t *testing.T) {
	s := &SampleFile{Iters: []float64{1, 2}, Times: []float64{100}}
	if _, err := s.PerIteration(); err == nil {
		t.Error("want error for mismatched lengths")
	}

	s = &SampleFile{Iters: []float64{0}, Times: []float64{100}}
	if _, err := s.PerIteration(); err == nil {
		t.Error("want error for zero iteration count")
	}
}
