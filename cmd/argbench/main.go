// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argbench compares the argset parser against the standard
// library flag package over a YAML scenario suite.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/argsmith/argsmith/pkg/argset"
	"github.com/argsmith/argsmith/pkg/benchutil"
	"github.com/argsmith/argsmith/pkg/errfmt"
)

// defaultSuite exercises the shapes that matter for a switch parser:
// booleans, values, bare tokens and defaults.
const defaultSuite = `
scenarios:
  - name: bools-and-values
    args: ["-v", "--count", "3"]
  - name: bare-token
    args: ["report.txt"]
  - name: mixed
    args: ["-v", "--count", "3", "report.txt"]
  - name: defaults-only
    args: []
`

func newRegistry() *argset.Registry {
	reg := argset.NewRegistry(argset.Options{
		Summary: "argbench - compare argv parsers over a scenario suite",
	})
	must := func(err error) {
		if err != nil {
			panic("argbench: bad definition: " + err.Error())
		}
	}
	must(reg.Add(argset.Definition{
		Name: "Suite", Kind: argset.String, Short: "s", Long: "suite",
		Unswitched: true,
		Help:       "YAML suite file. Uses a built-in suite when omitted.",
	}))
	return reg
}

// benchRegistry is what the argset contender parses scenarios with.
func benchRegistry() *argset.Registry {
	reg := argset.NewRegistry(argset.Options{Summary: "bench"})
	must := func(err error) {
		if err != nil {
			panic("argbench: bad definition: " + err.Error())
		}
	}
	must(reg.Add(argset.Definition{Name: "Out", Kind: argset.String, Short: "o", Long: "out", Unswitched: true}))
	must(reg.AddBool("Verbose", "v", "verbose", ""))
	must(reg.AddInt("Count", "c", "count", false, ""))
	return reg
}

func contenders() []benchutil.Contender {
	argsetReg := benchRegistry()
	return []benchutil.Contender{
		{
			Name: "argset",
			Run:  argsetReg.Parse,
		},
		{
			Name: "stdlib-flag",
			Run: func(args []string) error {
				fs := flag.NewFlagSet("bench", flag.ContinueOnError)
				fs.SetOutput(io.Discard)
				fs.Bool("v", false, "")
				fs.Int("count", 0, "")
				return fs.Parse(args)
			},
		},
	}
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

	if err := run(reg, os.Stdout); err != nil {
		render.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDefault parses the built-in suite.
func loadDefault() (benchutil.Suite, error) {
	return benchutil.LoadSuite(strings.NewReader(defaultSuite))
}

func run(reg *argset.Registry, stdout io.Writer) error {
	loadSuite := loadDefault
	if path := reg.GetString("Suite"); path != "" {
		loadSuite = func() (benchutil.Suite, error) {
			f, err := os.Open(path)
			if err != nil {
				return benchutil.Suite{}, fmt.Errorf("failed to open suite: %w", err)
			}
			defer f.Close()
			return benchutil.LoadSuite(f)
		}
	}
	suite, err := loadSuite()
	if err != nil {
		return err
	}

	results := benchutil.RunSuite(suite, contenders())
	_, err = io.WriteString(stdout, benchutil.FormatReport(results))
	return err
}
