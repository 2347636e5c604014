// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errfmt renders an error and its cause chain for display.
//
// Errors that implement UserInput() bool and report true are treated as
// expected user misuse: only the top-line message is shown, with no
// cause-chain detail. Everything else gets the full chain, one line per
// cause.
package errfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// userInputError is the marker carried by errors that represent
// expected user misuse rather than a defect.
type userInputError interface {
	UserInput() bool
}

// IsUserInput reports whether any error in the chain marks itself as an
// expected user-input condition.
func IsUserInput(err error) bool {
	var ui userInputError
	if errors.As(err, &ui) {
		return ui.UserInput()
	}
	return false
}

// Renderer formats errors for a terminal or a plain stream.
type Renderer struct {
	colorize bool
	header   *color.Color
	detail   *color.Color
}

// New returns a Renderer. Color is applied only when colorize is true.
func New(colorize bool) *Renderer {
	return &Renderer{
		colorize: colorize,
		header:   color.New(color.FgRed),
		detail:   color.New(color.Faint),
	}
}

// ColorEnabled reports whether colored output is appropriate for f:
// f is a terminal, NO_COLOR is unset and TERM is usable.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Render formats err as a display string. User-input errors produce a
// single line; anything else is followed by one "caused by" line per
// wrapped cause.
func (r *Renderer) Render(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(r.paint(r.header, fmt.Sprintf("Error: %v", err)))
	b.WriteString("\n")
	if IsUserInput(err) {
		return b.String()
	}
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		b.WriteString(r.paint(r.detail, fmt.Sprintf("  caused by: %v", cause)))
		b.WriteString("\n")
	}
	return b.String()
}

// Fprint writes the rendered error to w.
func (r *Renderer) Fprint(w io.Writer, err error) {
	io.WriteString(w, r.Render(err))
}

func (r *Renderer) paint(c *color.Color, s string) string {
	if !r.colorize {
		return s
	}
	return c.Sprint(s)
}
