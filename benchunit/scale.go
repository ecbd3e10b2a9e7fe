// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats benchmark throughput values with SI unit
// prefixes.
//
// Criterion reports throughput as elements processed per second.
// Values are scaled down by powers of 1000 and tagged with the
// matching prefix, so 1500000 elem/s renders as "1.50 Melem/s".
package benchunit

import "fmt"

// siPrefixes is the fixed sequence of decimal unit prefixes. Scaling
// stops at the last entry, so values at or above 1000 tera render with
// the "T" prefix and a large mantissa rather than inventing prefixes.
var siPrefixes = [...]string{"", "K", "M", "G", "T"}

// Scale reduces val by factors of 1000 until it is below 1000 or the
// prefix table is exhausted, and returns the scaled value with its
// prefix.
func Scale(val float64) (float64, string) {
	i := 0
	for val >= 1000 && i < len(siPrefixes)-1 {
		val /= 1000
		i++
	}
	return val, siPrefixes[i]
}

// Throughput formats an elements-per-second value using SI scaling,
// e.g. "2.00 Kelem/s". Zero is special-cased to "0 elem/s" so empty
// measurements don't render as "0.00".
func Throughput(val float64) string {
	return ThroughputUnit(val, "elem")
}

// ThroughputUnit is like Throughput with an explicit base unit, e.g.
// "B" for bytes per second.
func ThroughputUnit(val float64, unit string) string {
	if val == 0 {
		return "0 " + unit + "/s"
	}
	scaled, prefix := Scale(val)
	return fmt.Sprintf("%.2f %s%s/s", scaled, prefix, unit)
}
