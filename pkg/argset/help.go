// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const helpColumn = 28

// Help renders the registry as a multi-line help block: the summary
// line, a legend for the switch syntax and case mode, then one row per
// definition ordered by ascending HelpOrder with registration order
// breaking ties.
func (r *Registry) Help() string {
	var b strings.Builder

	summary := r.opts.Summary
	if summary == "" {
		summary = filepath.Base(os.Args[0])
	}
	b.WriteString(summary)
	b.WriteString("\n\n")

	b.WriteString("Switches: /name matches short or long form, --name long only, -name short only.\n")
	if r.opts.CaseSensitive {
		b.WriteString("Switch matching is case-sensitive.\n\n")
	} else {
		b.WriteString("Switch matching is case-insensitive.\n\n")
	}

	ordered := make([]*Definition, len(r.defs))
	copy(ordered, r.defs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].HelpOrder < ordered[j].HelpOrder
	})

	for _, d := range ordered {
		b.WriteString(helpRow(d))
	}
	return b.String()
}

func helpRow(d *Definition) string {
	var switches string
	switch {
	case d.Short != "" && d.Long != "":
		switches = fmt.Sprintf("-%s, --%s", d.Short, d.Long)
	case d.Long != "":
		switches = "--" + d.Long
	default:
		switches = "-" + d.Short
	}

	lines := strings.Split(d.Help, "\n")
	first := lines[0]
	if d.explicitDefault {
		first += fmt.Sprintf(" (default:%s)", d.Default.display())
	}
	if d.Mandatory {
		first += " (Mandatory)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "    %-*s %s\n", helpColumn, switches, first)
	for _, line := range lines[1:] {
		fmt.Fprintf(&b, "    %-*s %s\n", helpColumn, "", line)
	}
	return b.String()
}
