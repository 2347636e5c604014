// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argset

import "strconv"

// Kind identifies the type a definition parses its value into.
type Kind int

const (
	String Kind = iota
	Bool
	Int
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Int:
		return "int"
	}
	return "unknown"
}

// Value is a tagged union over the supported kinds. The zero Value is
// the absent value: Present reports false and every accessor returns
// its kind's zero.
type Value struct {
	kind    Kind
	str     string
	num     int
	flag    bool
	present bool
}

// StringValue returns a present string Value.
func StringValue(s string) Value {
	return Value{kind: String, str: s, present: true}
}

// IntValue returns a present int Value.
func IntValue(i int) Value {
	return Value{kind: Int, num: i, present: true}
}

// BoolValue returns a present bool Value.
func BoolValue(b bool) Value {
	return Value{kind: Bool, flag: b, present: true}
}

// Kind returns the kind the value was constructed with. The zero Value
// reports String.
func (v Value) Kind() Kind { return v.kind }

// Present reports whether the value holds anything at all.
func (v Value) Present() bool { return v.present }

// String returns the held string, or "" when absent or not a string.
func (v Value) String() string {
	if !v.present || v.kind != String {
		return ""
	}
	return v.str
}

// Int returns the held int, or 0 when absent or not an int.
func (v Value) Int() int {
	if !v.present || v.kind != Int {
		return 0
	}
	return v.num
}

// Bool returns the held bool, or false when absent or not a bool.
func (v Value) Bool() bool {
	if !v.present || v.kind != Bool {
		return false
	}
	return v.flag
}

// display renders the value for help annotations.
func (v Value) display() string {
	switch v.kind {
	case Bool:
		return strconv.FormatBool(v.flag)
	case Int:
		return strconv.Itoa(v.num)
	}
	return v.str
}
