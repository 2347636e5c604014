// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argset

import "strings"

// Names of the two built-in definitions every registry carries.
const (
	HelpArg   = "Help"
	WhatIfArg = "WhatIf"
)

// Built-ins sort after user definitions, which default to order 0.
const (
	helpOrderHelp   = 1000
	helpOrderWhatIf = 1001
)

// Options configures a Registry.
type Options struct {
	// CaseSensitive controls switch matching only; argument names are
	// always case-sensitive.
	CaseSensitive bool
	// Summary is the first line of rendered help. Defaults to the
	// process name.
	Summary string
}

// Registry is an ordered collection of definitions plus the values from
// the most recent Parse. It is not safe for concurrent use; a registry
// is owned by the goroutine that created it.
type Registry struct {
	opts   Options
	defs   []*Definition
	values map[string]Value
	// set during Parse for the definitions that received a token value,
	// keyed by name; defaults do not count
	seen map[string]bool
}

// NewRegistry returns a registry pre-loaded with the Help and WhatIf
// built-ins. Registration of either cannot fail.
func NewRegistry(opts Options) *Registry {
	r := &Registry{opts: opts}
	mustAdd := func(d Definition) {
		if err := r.Add(d); err != nil {
			panic("argset: built-in definition rejected: " + err.Error())
		}
	}
	mustAdd(Definition{
		Name:      HelpArg,
		Kind:      Bool,
		Short:     "?",
		Long:      "help",
		Help:      "Show this help text.",
		HelpOrder: helpOrderHelp,
	})
	mustAdd(Definition{
		Name:      WhatIfArg,
		Kind:      Bool,
		Long:      "WhatIf",
		Help:      "Describe what would be done without doing it.",
		HelpOrder: helpOrderWhatIf,
	})
	return r
}

// Add validates the definition against everything registered so far and
// appends it. On error the registry is unchanged. Definitions are
// matched in registration order during Parse, first match wins.
func (r *Registry) Add(d Definition) error {
	if d.Name == "" {
		return &DefinitionError{Reason: "name must not be empty"}
	}
	if d.Short == "" && d.Long == "" {
		return &DefinitionError{Name: d.Name, Reason: "at least one of short and long switch must be set"}
	}
	for _, prev := range r.defs {
		if prev.Name == d.Name {
			return &DefinitionError{Name: d.Name, Reason: "duplicate argument name"}
		}
		for _, sw := range []string{d.Short, d.Long} {
			if sw == "" {
				continue
			}
			if r.switchEqual(sw, prev.Short) || r.switchEqual(sw, prev.Long) {
				return &DefinitionError{Name: d.Name, Reason: "switch " + sw + " collides with definition " + prev.Name}
			}
		}
		if d.Unswitched && prev.Unswitched {
			return &DefinitionError{Name: d.Name, Reason: "unswitched slot already taken by " + prev.Name}
		}
	}
	if d.Default.present && d.Default.kind != d.Kind {
		return &DefinitionError{Name: d.Name, Reason: "default value kind " + d.Default.kind.String() + " does not match " + d.Kind.String()}
	}

	// Normalize. Booleans can never be mandatory and always default to
	// false; an explicit default makes Mandatory moot; a missing int
	// default is inferred as zero. String defaults stay absent.
	switch {
	case d.Kind == Bool:
		d.Mandatory = false
		d.explicitDefault = false
		d.Default = BoolValue(false)
	case d.Default.present:
		d.Mandatory = false
		d.explicitDefault = true
	case d.Kind == Int:
		d.Default = IntValue(0)
	}
	if d.Help == "" {
		d.Help = "(no description)"
	}

	r.defs = append(r.defs, &d)
	return nil
}

// AddBool registers a boolean flag. Either switch may be empty.
func (r *Registry) AddBool(name, short, long, help string) error {
	return r.Add(Definition{Name: name, Kind: Bool, Short: short, Long: long, Help: help})
}

// AddString registers a string argument.
func (r *Registry) AddString(name, short, long string, mandatory bool, help string) error {
	return r.Add(Definition{Name: name, Kind: String, Short: short, Long: long, Mandatory: mandatory, Help: help})
}

// AddInt registers an int argument.
func (r *Registry) AddInt(name, short, long string, mandatory bool, help string) error {
	return r.Add(Definition{Name: name, Kind: Int, Short: short, Long: long, Mandatory: mandatory, Help: help})
}

func (r *Registry) switchEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if r.opts.CaseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

// match scans definitions in registration order and returns the first
// whose relevant switch equals the stripped token. Registration forbids
// switch collisions, so any later match would indicate a registry bug,
// not genuine ambiguity.
func (r *Registry) match(stripped string, mode matchMode) *Definition {
	for _, d := range r.defs {
		if d.matches(stripped, mode, r.opts.CaseSensitive) {
			return d
		}
	}
	return nil
}

func (r *Registry) unswitched() *Definition {
	for _, d := range r.defs {
		if d.Unswitched {
			return d
		}
	}
	return nil
}

// Lookup returns the parsed value for name. The second return is false
// for unknown names and for definitions that received neither a token
// value nor a default.
func (r *Registry) Lookup(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// GetString returns the parsed string for name, or "" when absent.
// Absence at read time is never an error.
func (r *Registry) GetString(name string) string {
	return r.values[name].String()
}

// GetInt returns the parsed int for name, or 0 when absent.
func (r *Registry) GetInt(name string) int {
	return r.values[name].Int()
}

// GetBool returns the parsed bool for name, or false when absent.
func (r *Registry) GetBool(name string) bool {
	return r.values[name].Bool()
}

// Supplied reports whether name received a token value during the most
// recent Parse. Defaults do not count.
func (r *Registry) Supplied(name string) bool {
	return r.seen[name]
}

// HelpRequested reports whether the Help built-in was set during the
// most recent Parse. Callers should render Help and exit zero.
func (r *Registry) HelpRequested() bool {
	return r.GetBool(HelpArg)
}
