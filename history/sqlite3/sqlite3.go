// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 provides the sqlite3 driver for the history
// package. It must be imported (for side effects) to use sqlite3
// history databases.
package sqlite3

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/davidteather/rust-order-book/history"
)

func init() {
	history.RegisterOpenHook("sqlite3", func(db *sql.DB) error {
		// The Results table declares a foreign key on Runs;
		// sqlite needs this turned on per connection.
		_, err := db.Exec("PRAGMA foreign_keys = ON;")
		return err
	})
}
