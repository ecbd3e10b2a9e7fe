// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchreport aggregates Criterion benchmark results into a markdown
// comparison table.
//
// Usage:
//
//	benchreport [-base dir] [-output file] [-delta] [-plot dir] [-db dsn] [-upload gs://bucket/object]
//
// Benchreport walks the Criterion output directory (by default
// ./target/criterion), loads every benchmark case it finds, and writes
// a markdown report with one section per benchmark group and one table
// per operation. Within each table the implementation with the lowest
// mean time is bolded.
//
// A case that fails to parse is logged and skipped; it never aborts
// the report. If no cases are found at all, benchreport prints a
// warning and still writes the (empty) report.
//
// With -delta, benchreport also loads Criterion's per-iteration
// samples and compares each benchmark's new run against its base run
// using a Mann-Whitney U-test, adding a "vs base" column. An
// insignificant difference (p above 0.05) renders as "~".
//
// With -plot, benchreport additionally writes one PNG bar chart per
// group into the given directory.
//
// With -db, benchreport appends the run to a history database, e.g.
//
//	benchreport -db bench-history.db
//	benchreport -db-driver mysql -db 'user:pw@/benchdb'
//
// With -upload, the finished report is also copied to a Google Cloud
// Storage object.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/davidteather/rust-order-book/benchplot"
	"github.com/davidteather/rust-order-book/benchtab"
	"github.com/davidteather/rust-order-book/criterion"
	"github.com/davidteather/rust-order-book/history"
	_ "github.com/davidteather/rust-order-book/history/sqlite3"
	"github.com/davidteather/rust-order-book/internal/gcs"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchreport [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagBase     = flag.String("base", "./target/criterion", "base `path` to Criterion benchmark results")
	flagOutput   = flag.String("output", "./benchmarks.md", "output markdown `file`")
	flagDelta    = flag.Bool("delta", false, "compare each new run against its base run and add a vs-base column")
	flagPlot     = flag.String("plot", "", "write per-group PNG charts to `dir`")
	flagDB       = flag.String("db", "", "append this run to the history database at `dsn`")
	flagDBDriver = flag.String("db-driver", "sqlite3", "history database `driver` (sqlite3 or mysql)")
	flagUpload   = flag.String("upload", "", "also upload the report to `gs://bucket/object`")
)

func main() {
	log.SetPrefix("benchreport: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}

	cfg := config{
		base:     *flagBase,
		output:   *flagOutput,
		delta:    *flagDelta,
		plot:     *flagPlot,
		db:       *flagDB,
		dbDriver: *flagDBDriver,
		upload:   *flagUpload,
	}
	if err := benchreport(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	base, output string
	delta        bool
	plot         string
	db, dbDriver string
	upload       string
}

// benchreport runs one report generation. Per-case load failures and
// failures of the optional extras (charts, history, upload) are
// logged; only a failure to write the report itself is returned.
func benchreport(cfg config, stdout io.Writer) error {
	tree := &criterion.Tree{Root: cfg.base, LoadSamples: cfg.delta}
	recs, errs := tree.Records()
	for _, err := range errs {
		log.Print(err)
	}
	if len(recs) == 0 {
		fmt.Fprintf(stdout, "warning: no benchmarks found in %s\n", cfg.base)
	}

	b := benchtab.NewBuilder()
	for _, r := range recs {
		b.Add(r)
	}

	f, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	if err := b.ToMarkdown(f, benchtab.MarkdownOpts{Delta: cfg.delta}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	ctx := context.Background()
	if cfg.plot != "" {
		if err := benchplot.Chart(b.Tables(), cfg.plot); err != nil {
			log.Print(err)
		}
	}
	if cfg.db != "" {
		recordHistory(ctx, cfg, recs)
	}
	if cfg.upload != "" {
		data, err := os.ReadFile(cfg.output)
		if err == nil {
			err = gcs.Upload(ctx, cfg.upload, data)
		}
		if err != nil {
			log.Printf("upload: %v", err)
		}
	}
	return nil
}

func recordHistory(ctx context.Context, cfg config, recs []*criterion.Record) {
	db, err := history.OpenSQL(cfg.dbDriver, cfg.db)
	if err != nil {
		log.Printf("history: %v", err)
		return
	}
	defer db.Close()
	if _, err := db.RecordRun(ctx, time.Now(), recs); err != nil {
		log.Printf("history: %v", err)
	}
}
