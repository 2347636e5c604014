// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csvextract projects a subset of columns out of CSV input.
// Columns are selected by header name, by zero-based index, or a mix of
// both. Name selection consumes the first record as a header and
// re-emits its projection; pure index selection treats every record as
// data.
package csvextract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ColumnError is returned when a selected column cannot be resolved
// against the input.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q not found in input", e.Column)
}

type column struct {
	name  string
	index int
	byIdx bool
}

// Selection is a parsed, ordered list of requested columns.
type Selection struct {
	cols []column
}

// ParseSelection parses a comma-separated column spec. A field made of
// digits selects by zero-based index, anything else by header name.
func ParseSelection(spec string) (Selection, error) {
	var s Selection
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			return Selection{}, fmt.Errorf("empty column in spec %q", spec)
		}
		if idx, err := strconv.Atoi(field); err == nil {
			if idx < 0 {
				return Selection{}, fmt.Errorf("negative column index %d", idx)
			}
			s.cols = append(s.cols, column{index: idx, byIdx: true})
			continue
		}
		s.cols = append(s.cols, column{name: field})
	}
	return s, nil
}

// ByNames reports whether the selection references any header name.
func (s Selection) ByNames() bool {
	for _, c := range s.cols {
		if !c.byIdx {
			return true
		}
	}
	return false
}

// resolve maps the selection to record indexes. header may be nil for
// pure index selections.
func (s Selection) resolve(header []string) ([]int, error) {
	idx := make([]int, 0, len(s.cols))
	for _, c := range s.cols {
		if c.byIdx {
			idx = append(idx, c.index)
			continue
		}
		found := -1
		for i, h := range header {
			if h == c.name {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, &ColumnError{Column: c.name}
		}
		idx = append(idx, found)
	}
	return idx, nil
}

// Project streams the projected records to fn, header first when the
// selection uses names. A record too short for an index selection is a
// ColumnError.
func Project(r io.Reader, sel Selection, fn func(record []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var idx []int
	if sel.ByNames() {
		header, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return &ColumnError{Column: firstName(sel)}
		}
		if err != nil {
			return fmt.Errorf("failed to read header: %w", err)
		}
		idx, err = sel.resolve(header)
		if err != nil {
			return err
		}
		if err := fn(pick(header, idx)); err != nil {
			return err
		}
	} else {
		var err error
		idx, err = sel.resolve(nil)
		if err != nil {
			return err
		}
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}
		for _, i := range idx {
			if i >= len(record) {
				return &ColumnError{Column: strconv.Itoa(i)}
			}
		}
		if err := fn(pick(record, idx)); err != nil {
			return err
		}
	}
}

// ProjectAll slurps the full projection.
func ProjectAll(r io.Reader, sel Selection) ([][]string, error) {
	var out [][]string
	err := Project(r, sel, func(record []string) error {
		out = append(out, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func pick(record []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = record[j]
	}
	return out
}

func firstName(sel Selection) string {
	for _, c := range sel.cols {
		if !c.byIdx {
			return c.name
		}
	}
	return ""
}
