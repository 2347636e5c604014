// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colpick projects columns out of a CSV file. Input may be
// plain, gzip- or zstd-compressed, and UTF-8 or UTF-16 encoded; the
// container and encoding are detected from content.
//
// Usage:
//
//	colpick --cols name,city report.csv
//	colpick -c 0,2 --limit 10 report.csv.gz
//	colpick --config colpick.toml report.csv
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/argsmith/argsmith/pkg/argset"
	"github.com/argsmith/argsmith/pkg/csvextract"
	"github.com/argsmith/argsmith/pkg/errfmt"
	"github.com/argsmith/argsmith/pkg/lineio"
)

func newRegistry() *argset.Registry {
	reg := argset.NewRegistry(argset.Options{
		Summary: "colpick - project columns out of CSV input",
	})
	must := func(err error) {
		if err != nil {
			panic("colpick: bad definition: " + err.Error())
		}
	}
	must(reg.Add(argset.Definition{
		Name: "In", Kind: argset.String, Short: "i", Long: "in",
		Unswitched: true,
		Help:       "Input file. May also be given as a bare argument.\nReads stdin when omitted.",
	}))
	must(reg.AddString("Cols", "c", "cols", false,
		"Comma-separated columns to keep, by header name or zero-based index."))
	must(reg.Add(argset.Definition{
		Name: "Limit", Kind: argset.Int, Short: "l", Long: "limit",
		Default: argset.IntValue(0),
		Help:    "Stop after this many data rows. Zero means no limit.",
	}))
	must(reg.AddBool("Verbose", "v", "verbose", "Report detected compression and encoding on stderr."))
	must(reg.AddString("Config", "", "config", false, "TOML file supplying defaults for omitted switches."))
	return reg
}

func main() {
	render := errfmt.New(errfmt.ColorEnabled(os.Stderr))

	reg := newRegistry()
	if err := reg.Parse(os.Args[1:]); err != nil {
		render.Fprint(os.Stderr, err)
		os.Exit(1)
	}
	if reg.HelpRequested() {
		fmt.Print(reg.Help())
		return
	}

	if err := run(reg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		render.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func run(reg *argset.Registry, stdin io.Reader, stdout, stderr io.Writer) error {
	cols := reg.GetString("Cols")
	limit := reg.GetInt("Limit")
	verbose := reg.GetBool("Verbose")

	if path := reg.GetString("Config"); path != "" {
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		if !reg.Supplied("Cols") && cfg.Cols != "" {
			cols = cfg.Cols
		}
		if !reg.Supplied("Limit") && cfg.Limit > 0 {
			limit = cfg.Limit
		}
		if !reg.Supplied("Verbose") {
			verbose = cfg.Verbose
		}
	}

	if cols == "" {
		return errors.New("no columns selected; pass --cols or set cols in a config file")
	}
	sel, err := csvextract.ParseSelection(cols)
	if err != nil {
		return fmt.Errorf("bad column selection: %w", err)
	}

	in, detected, err := openInput(reg, stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	if verbose && detected != "" {
		fmt.Fprintf(stderr, "input: %s\n", detected)
	}

	if reg.GetBool(argset.WhatIfArg) {
		fmt.Fprintf(stderr, "would project columns %s\n", cols)
		return nil
	}

	return project(in, sel, limit, stdout)
}

// openInput opens the named input file, or wraps stdin when no path was
// given. The returned string describes what was detected, for -v.
func openInput(reg *argset.Registry, stdin io.Reader) (*lineio.Reader, string, error) {
	path := reg.GetString("In")
	var (
		r   *lineio.Reader
		err error
	)
	if path == "" {
		r, err = lineio.NewReader(stdin)
	} else {
		r, err = lineio.Open(path)
	}
	if err != nil {
		return nil, "", err
	}
	return r, fmt.Sprintf("compression=%s encoding=%s", r.Compression(), r.Encoding()), nil
}

var errLimitReached = errors.New("row limit reached")

// project runs the column projection over the decoded lines, writing
// CSV to out. limit caps data rows; the header row is not counted.
func project(in *lineio.Reader, sel csvextract.Selection, limit int, out io.Writer) error {
	var text strings.Builder
	for in.Scan() {
		text.WriteString(in.Text())
		text.WriteByte('\n')
	}
	if err := in.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	w := csv.NewWriter(out)
	rows := 0
	headerPending := sel.ByNames()
	err := csvextract.Project(strings.NewReader(text.String()), sel, func(record []string) error {
		if err := w.Write(record); err != nil {
			return err
		}
		if headerPending {
			headerPending = false
			return nil
		}
		rows++
		if limit > 0 && rows >= limit {
			return errLimitReached
		}
		return nil
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		return err
	}
	w.Flush()
	return w.Error()
}
