// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argset provides a registry-based command-line argument parser
// with typed values and automatic help generation.
//
// Unlike struct-tag parsers, argset builds its view of the command line
// from explicit definitions registered one at a time. Each definition is
// validated against everything registered before it, so a malformed set
// of switches fails at startup rather than at parse time.
//
// # Basic Usage
//
//	reg := argset.NewRegistry(argset.Options{Summary: "colpick - project CSV columns"})
//	reg.AddString("Cols", "c", "cols", true, "Comma-separated column names to keep.")
//	reg.AddInt("Limit", "l", "limit", false, "Stop after this many rows.")
//	reg.AddBool("Verbose", "v", "verbose", "Enable verbose output.")
//
//	if err := reg.Parse(os.Args[1:]); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(1)
//	}
//	if reg.HelpRequested() {
//	    fmt.Print(reg.Help())
//	    return
//	}
//	cols := reg.GetString("Cols")
//
// # Switch Syntax
//
// Three prefixes select how a token is matched against definitions:
//   - /name  matches either the short or the long switch
//   - --name matches the long switch only
//   - -name  matches the short switch only
//
// A token with no recognized prefix is a bare token and is routed to the
// single definition registered with Unswitched set, if any. Boolean
// switches never consume a following token; all other switches consume
// the next token verbatim as their value, even when it looks like a
// switch itself.
//
// Two definitions are always present: Help (/?, --help) and WhatIf
// (--WhatIf). When Help is set during a parse the mandatory-argument
// check is skipped and HelpRequested reports true; WhatIf is a plain
// boolean flag left to the caller to interpret.
//
// # Errors
//
// Registration problems surface as *DefinitionError. Parse problems
// surface as *ParseError (unknown switch, dangling switch, bad value) or
// *ValidationError (missing mandatory arguments). ValidationError marks
// itself as expected user input so error formatters can omit cause-chain
// detail for it.
package argset
