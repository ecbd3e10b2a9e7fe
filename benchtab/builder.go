// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab presents Criterion benchmark records as per-group
// comparison tables.
package benchtab

import (
	"math"
	"sort"

	"github.com/davidteather/rust-order-book/criterion"
)

// A Builder collects benchmark records into grouped tables.
type Builder struct {
	// groups is the group names in order of first encounter. The
	// report preserves this order.
	groups []string

	// records maps group name → benchmark id ("impl/op") → record.
	// Adding a duplicate id overwrites: last write wins.
	records map[string]map[string]*criterion.Record
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{records: make(map[string]map[string]*criterion.Record)}
}

// Add inserts rec, keyed by its group and benchmark id. A record with
// a previously seen id silently replaces the earlier one.
func (b *Builder) Add(rec *criterion.Record) {
	g := b.records[rec.Group]
	if g == nil {
		g = make(map[string]*criterion.Record)
		b.records[rec.Group] = g
		b.groups = append(b.groups, rec.Group)
	}
	g[rec.ID()] = rec
}

// A Table is the records of one group with its implementation and
// operation axes.
type Table struct {
	// Group is the group name.
	Group string

	// Impls and Ops are the distinct implementation and operation
	// names present in the group, in ascending order.
	Impls, Ops []string

	// Records maps benchmark id ("impl/op") to the group's record.
	Records map[string]*criterion.Record
}

// Record returns the group's record for (impl, op), or nil.
func (t *Table) Record(impl, op string) *criterion.Record {
	return t.Records[impl+"/"+op]
}

// Tables finalizes the Builder into one Table per group, in group
// first-encounter order.
func (b *Builder) Tables() []*Table {
	var tables []*Table
	for _, group := range b.groups {
		recs := b.records[group]
		implSet := make(map[string]bool)
		opSet := make(map[string]bool)
		for _, r := range recs {
			implSet[r.Impl] = true
			opSet[r.Op] = true
		}
		tables = append(tables, &Table{
			Group:   group,
			Impls:   sortedKeys(implSet),
			Ops:     sortedKeys(opSet),
			Records: recs,
		})
	}
	return tables
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// best returns the record with the lowest positive MeanUs, scanning in
// the given order so the first of a tie wins. Records with MeanUs ≤ 0
// are never best unless every record is ≤ 0, in which case the first
// record is returned. Returns nil for an empty slice.
func best(recs []*criterion.Record) *criterion.Record {
	var b *criterion.Record
	for _, r := range recs {
		if b == nil {
			b = r
			continue
		}
		if key(r) < key(b) {
			b = r
		}
	}
	return b
}

// key orders records for the best-scan: non-positive means sort last.
func key(r *criterion.Record) float64 {
	if r.MeanUs <= 0 {
		return math.Inf(1)
	}
	return r.MeanUs
}
