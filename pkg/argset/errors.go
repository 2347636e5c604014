// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argset

import (
	"fmt"
	"strings"
)

// DefinitionError is returned by Add when a definition violates a
// registration invariant. The registry is left unchanged.
type DefinitionError struct {
	Name   string // definition being added; may be empty
	Reason string
}

func (e *DefinitionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid definition: %s", e.Reason)
	}
	return fmt.Sprintf("definition %q: %s", e.Name, e.Reason)
}

// ParseError is returned by Parse when the token stream is structurally
// invalid: an unrecognized switch with no unswitched fallback, a switch
// left awaiting its value at end of input, or a value that cannot be
// coerced to the definition's kind.
type ParseError struct {
	Token string // offending token or switch
	Msg   string
	Err   error // underlying coercion error, if any
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %q", e.Msg, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError is returned after a successful scan when one or more
// mandatory definitions received no value. It is expected user misuse
// rather than a defect; UserInput lets error formatters suppress
// cause-chain detail for it.
type ValidationError struct {
	Missing []string // switch labels, in registration order
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing mandatory argument(s): %s", strings.Join(e.Missing, ", "))
}

// UserInput marks the error as an expected user-input condition.
func (e *ValidationError) UserInput() bool { return true }
