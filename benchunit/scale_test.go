// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "testing"

func TestThroughput(t *testing.T) {
	test := func(val float64, want string) {
		t.Helper()
		got := Throughput(val)
		if got != want {
			t.Errorf("for %v, got %s, want %s", val, got, want)
		}
	}

	test(0, "0 elem/s")
	test(1, "1.00 elem/s")
	test(999, "999.00 elem/s")
	// Exactly on the first threshold.
	test(1000, "1.00 Kelem/s")
	test(2000, "2.00 Kelem/s")
	test(999999, "1000.00 Kelem/s")
	test(1500000, "1.50 Melem/s")
	test(2.5e9, "2.50 Gelem/s")
	test(7e12, "7.00 Telem/s")
	// The table ends at tera; larger values keep the T prefix.
	test(1234e12, "1234.00 Telem/s")
	// Fractional values are not up-scaled.
	test(0.25, "0.25 elem/s")
}

func TestThroughputUnit(t *testing.T) {
	test := func(val float64, unit, want string) {
		t.Helper()
		got := ThroughputUnit(val, unit)
		if got != want {
			t.Errorf("for %v %s, got %s, want %s", val, unit, got, want)
		}
	}

	test(0, "B", "0 B/s")
	test(1048576, "B", "1.05 MB/s")
}

func TestScale(t *testing.T) {
	test := func(val, wantVal float64, wantPrefix string) {
		t.Helper()
		gotVal, gotPrefix := Scale(val)
		if gotVal != wantVal || gotPrefix != wantPrefix {
			t.Errorf("for %v, got %v %q, want %v %q", val, gotVal, gotPrefix, wantVal, wantPrefix)
		}
	}

	test(0, 0, "")
	test(999.99, 999.99, "")
	test(1e6, 1, "M")
	test(1e15, 1000, "T")
}
