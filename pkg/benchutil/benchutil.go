// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchutil runs named contenders against named scenarios and
// reports wall-clock per-operation timings. It is a comparison harness
// for argv parsers, not a statistics engine: runs are sequential and
// deliberately simple so numbers stay comparable across contenders.
package benchutil

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario is one benchmarked input: an argv vector parsed Iterations
// times per contender.
type Scenario struct {
	Name       string   `yaml:"name"`
	Iterations int      `yaml:"iterations"`
	Args       []string `yaml:"args"`
}

// Suite is a set of scenarios, typically loaded from YAML.
type Suite struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

const defaultIterations = 10000

// LoadSuite decodes a YAML suite and applies defaults. A scenario with
// no iteration count gets defaultIterations.
func LoadSuite(r io.Reader) (Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return Suite{}, fmt.Errorf("failed to decode suite: %w", err)
	}
	if len(s.Scenarios) == 0 {
		return Suite{}, fmt.Errorf("suite defines no scenarios")
	}
	for i := range s.Scenarios {
		if s.Scenarios[i].Name == "" {
			return Suite{}, fmt.Errorf("scenario %d has no name", i)
		}
		if s.Scenarios[i].Iterations <= 0 {
			s.Scenarios[i].Iterations = defaultIterations
		}
	}
	return s, nil
}

// Contender is one parser implementation under comparison. Run parses
// the argv vector once.
type Contender struct {
	Name string
	Run  func(args []string) error
}

// Result is the timing of one contender over one scenario. Err is set
// when the contender failed; its timings are then meaningless.
type Result struct {
	Contender  string
	Scenario   string
	Iterations int
	Total      time.Duration
	PerOp      time.Duration
	Err        error
}

// RunSuite runs every contender over every scenario, sequentially, in
// the order given.
func RunSuite(suite Suite, contenders []Contender) []Result {
	var results []Result
	for _, sc := range suite.Scenarios {
		for _, c := range contenders {
			results = append(results, runOne(sc, c))
		}
	}
	return results
}

func runOne(sc Scenario, c Contender) Result {
	res := Result{
		Contender:  c.Name,
		Scenario:   sc.Name,
		Iterations: sc.Iterations,
	}
	// One warm-up pass catches broken contenders before timing starts.
	if err := c.Run(sc.Args); err != nil {
		res.Err = err
		return res
	}
	start := time.Now()
	for i := 0; i < sc.Iterations; i++ {
		if err := c.Run(sc.Args); err != nil {
			res.Err = err
			return res
		}
	}
	res.Total = time.Since(start)
	res.PerOp = res.Total / time.Duration(sc.Iterations)
	return res
}

// FormatReport renders results as an aligned text table.
func FormatReport(results []Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-24s %-16s %10s %14s %12s\n", "SCENARIO", "CONTENDER", "ITERS", "TOTAL", "PER-OP")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "%-24s %-16s %10d %14s %12s  (failed: %v)\n",
				r.Scenario, r.Contender, r.Iterations, "-", "-", r.Err)
			continue
		}
		fmt.Fprintf(&b, "%-24s %-16s %10d %14s %12s\n",
			r.Scenario, r.Contender, r.Iterations, r.Total, r.PerOp)
	}
	return b.String()
}
