// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argset

import "strings"

// Definition describes one recognized argument. Name is the lookup key
// used with the value accessors and is always matched case-sensitively;
// the switches follow the registry's case mode. At least one of Short
// and Long must be set; an empty string means the switch form is
// unassigned.
type Definition struct {
	Name      string
	Kind      Kind
	Short     string
	Long      string
	Mandatory bool
	// Default, when present, is applied to the value store before any
	// tokens are consumed and makes Mandatory moot. Its kind must match
	// Kind.
	Default   Value
	Help      string
	HelpOrder int
	// Unswitched marks the definition that absorbs a bare token. At most
	// one definition per registry may set this.
	Unswitched bool

	// set by Add when the caller supplied Default; inferred defaults are
	// not annotated in help output
	explicitDefault bool
}

// matchMode selects which switch forms a token may match, derived from
// the token's prefix.
type matchMode int

const (
	matchNone   matchMode = iota // bare token
	matchShort                   // "-" prefix
	matchLong                    // "--" prefix
	matchEither                  // "/" prefix
)

// matches reports whether the stripped token selects this definition
// under the given mode. Unassigned switch forms never match.
func (d *Definition) matches(stripped string, mode matchMode, caseSensitive bool) bool {
	eq := func(a, b string) bool {
		if a == "" || b == "" {
			return false
		}
		if caseSensitive {
			return a == b
		}
		return strings.EqualFold(a, b)
	}
	switch mode {
	case matchShort:
		return eq(d.Short, stripped)
	case matchLong:
		return eq(d.Long, stripped)
	case matchEither:
		return eq(d.Short, stripped) || eq(d.Long, stripped)
	}
	return false
}

// switchLabel returns the preferred user-facing spelling of the
// definition's switch for error messages.
func (d *Definition) switchLabel() string {
	if d.Long != "" {
		return "--" + d.Long
	}
	return "-" + d.Short
}
