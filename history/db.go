// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history stores benchmark report runs in a SQL database so
// results can be tracked across invocations. Only mysql and sqlite3
// are explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
package history

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/davidteather/rust-order-book/criterion"
)

// DB is a handle to a benchmark history database. It's safe for
// concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertRun    *sql.Stmt
	insertResult *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to enable foreign keys.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Timestamp BIGINT
);
CREATE TABLE IF NOT EXISTS Results (
	RunID BIGINT UNSIGNED,
	GroupID VARCHAR(255),
	Impl VARCHAR(255),
	Op VARCHAR(255),
	MeanNs DOUBLE,
	ThroughputPerSec DOUBLE,
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(Timestamp) VALUES (?)")
	if err != nil {
		return err
	}
	db.insertResult, err = db.sql.Prepare("INSERT INTO Results(RunID, GroupID, Impl, Op, MeanNs, ThroughputPerSec) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// RecordRun inserts one run at the given time with all of its records
// and returns the new run's ID.
func (db *DB) RecordRun(ctx context.Context, when time.Time, recs []*criterion.Record) (int64, error) {
	// TODO: wrap the inserts in a transaction so a failed run
	// doesn't leave partial results behind.
	res, err := db.insertRun.ExecContext(ctx, when.Unix())
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for _, r := range recs {
		if _, err := db.insertResult.ExecContext(ctx, runID, r.Group, r.Impl, r.Op, r.MeanNs, r.ThroughputPerSec); err != nil {
			return 0, err
		}
	}
	return runID, nil
}

// A Result is one stored benchmark measurement.
type Result struct {
	Group, Impl, Op  string
	MeanNs           float64
	ThroughputPerSec float64
}

// Results returns the measurements stored for one run, in insertion
// order.
func (db *DB) Results(ctx context.Context, runID int64) ([]*Result, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT GroupID, Impl, Op, MeanNs, ThroughputPerSec FROM Results WHERE RunID = ?", runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*Result
	for rows.Next() {
		r := new(Result)
		if err := rows.Scan(&r.Group, &r.Impl, &r.Op, &r.MeanNs, &r.ThroughputPerSec); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Runs returns the IDs of all stored runs, oldest first.
func (db *DB) Runs(ctx context.Context) ([]int64, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT RunID FROM Runs ORDER BY RunID")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.insertRun, db.insertResult} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return db.sql.Close()
}
