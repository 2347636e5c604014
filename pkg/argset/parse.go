// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argset

import (
	"fmt"
	"strconv"
	"strings"
)

// classify derives the match mode from the token's prefix and strips
// the prefix. The "--" check must run before "-". Tokens with no
// recognized prefix are bare.
func classify(token string) (matchMode, string) {
	switch {
	case strings.HasPrefix(token, "--"):
		return matchLong, token[2:]
	case strings.HasPrefix(token, "-"):
		return matchShort, token[1:]
	case strings.HasPrefix(token, "/"):
		return matchEither, token[1:]
	}
	return matchNone, token
}

// coerce converts raw token text into the definition's kind.
func coerce(d *Definition, raw string) (Value, error) {
	switch d.Kind {
	case String:
		return StringValue(raw), nil
	case Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, &ParseError{
				Token: raw,
				Msg:   fmt.Sprintf("invalid bool value for %s", d.switchLabel()),
				Err:   err,
			}
		}
		return BoolValue(b), nil
	case Int:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, &ParseError{
				Token: raw,
				Msg:   fmt.Sprintf("invalid int value for %s", d.switchLabel()),
				Err:   err,
			}
		}
		return IntValue(i), nil
	}
	return Value{}, &ParseError{Token: raw, Msg: "unsupported kind " + d.Kind.String()}
}

// Parse consumes the argument vector left to right, rebuilding the
// value store from scratch: defaults first, then token values as
// matched. It returns *ParseError for structural problems and
// *ValidationError when mandatory arguments went unfilled (unless Help
// was set during this parse). Parse must not run concurrently with Add
// or another Parse on the same registry.
func (r *Registry) Parse(args []string) error {
	r.values = make(map[string]Value, len(r.defs))
	r.seen = make(map[string]bool, len(r.defs))
	for _, d := range r.defs {
		if d.Default.present {
			r.values[d.Name] = d.Default
		}
	}

	var awaiting *Definition // non-nil while a switch waits for its value
	unswitchedUsed := false

	for _, token := range args {
		if awaiting != nil {
			// The token is consumed verbatim, whatever its shape.
			v, err := coerce(awaiting, token)
			if err != nil {
				return err
			}
			r.values[awaiting.Name] = v
			r.seen[awaiting.Name] = true
			awaiting = nil
			continue
		}

		mode, stripped := classify(token)
		if mode != matchNone {
			if d := r.match(stripped, mode); d != nil {
				if d.Kind == Bool {
					r.values[d.Name] = BoolValue(true)
					r.seen[d.Name] = true
					continue
				}
				awaiting = d
				continue
			}
		}

		// Prefixed-but-unknown and bare tokens both fall through to the
		// unswitched slot, which absorbs the raw token text once per
		// parse.
		if d := r.unswitched(); d != nil && !unswitchedUsed {
			v, err := coerce(d, token)
			if err != nil {
				return err
			}
			r.values[d.Name] = v
			r.seen[d.Name] = true
			unswitchedUsed = true
			continue
		}
		return &ParseError{Token: token, Msg: "unrecognized switch or unpaired value"}
	}

	if awaiting != nil {
		return &ParseError{
			Token: awaiting.switchLabel(),
			Msg:   "missing value for parameter",
		}
	}

	if r.GetBool(HelpArg) {
		return nil
	}
	var missing []string
	for _, d := range r.defs {
		if d.Mandatory && !r.seen[d.Name] {
			missing = append(missing, d.switchLabel())
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
