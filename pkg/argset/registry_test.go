// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argset

import (
	"errors"
	"strings"
	"testing"
)

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name       string
		sensitive  bool
		setup      []Definition
		add        Definition
		wantReason string // substring of the DefinitionError, "" for success
	}{
		{
			name:       "empty name",
			add:        Definition{Kind: String, Long: "out"},
			wantReason: "name must not be empty",
		},
		{
			name:       "no switches",
			add:        Definition{Name: "Out", Kind: String},
			wantReason: "at least one of short and long",
		},
		{
			name:       "duplicate name",
			setup:      []Definition{{Name: "Out", Kind: String, Long: "out"}},
			add:        Definition{Name: "Out", Kind: String, Long: "output"},
			wantReason: "duplicate argument name",
		},
		{
			name:       "switch collision long",
			setup:      []Definition{{Name: "Out", Kind: String, Long: "out"}},
			add:        Definition{Name: "Other", Kind: String, Long: "out"},
			wantReason: "collides",
		},
		{
			name:       "switch collision across forms",
			setup:      []Definition{{Name: "Out", Kind: String, Short: "o"}},
			add:        Definition{Name: "Other", Kind: String, Long: "o"},
			wantReason: "collides",
		},
		{
			name:       "switch collision case-insensitive",
			setup:      []Definition{{Name: "Out", Kind: String, Long: "out"}},
			add:        Definition{Name: "Other", Kind: String, Long: "OUT"},
			wantReason: "collides",
		},
		{
			name:      "same text ok when case-sensitive",
			sensitive: true,
			setup:     []Definition{{Name: "Out", Kind: String, Long: "out"}},
			add:       Definition{Name: "Other", Kind: String, Long: "OUT"},
		},
		{
			name:       "collision with built-in help switch",
			add:        Definition{Name: "H", Kind: Bool, Long: "help"},
			wantReason: "collides",
		},
		{
			name:       "second unswitched",
			setup:      []Definition{{Name: "In", Kind: String, Long: "in", Unswitched: true}},
			add:        Definition{Name: "Out", Kind: String, Long: "out", Unswitched: true},
			wantReason: "unswitched slot already taken",
		},
		{
			name:       "default kind mismatch",
			add:        Definition{Name: "N", Kind: Int, Long: "n", Default: StringValue("7")},
			wantReason: "does not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry(Options{CaseSensitive: tt.sensitive})
			for _, d := range tt.setup {
				if err := reg.Add(d); err != nil {
					t.Fatalf("setup Add(%q) error = %v", d.Name, err)
				}
			}
			err := reg.Add(tt.add)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("Add() error = %v, want nil", err)
				}
				return
			}
			var defErr *DefinitionError
			if !errors.As(err, &defErr) {
				t.Fatalf("Add() error = %v, want *DefinitionError", err)
			}
			if !strings.Contains(defErr.Reason, tt.wantReason) {
				t.Errorf("Reason = %q, want substring %q", defErr.Reason, tt.wantReason)
			}
		})
	}
}

func TestAddFailureLeavesRegistryUnchanged(t *testing.T) {
	reg := NewRegistry(Options{})
	if err := reg.AddString("Out", "o", "out", false, ""); err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(Definition{Name: "Bad", Kind: String, Long: "out"}); err == nil {
		t.Fatal("Add() with colliding switch succeeded, want error")
	}
	// The rejected definition must not be matchable.
	if err := reg.Parse([]string{"--out", "a"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, ok := reg.Lookup("Bad"); ok {
		t.Error("Lookup(Bad) found a value for a rejected definition")
	}
}

func TestBoolNormalization(t *testing.T) {
	reg := NewRegistry(Options{})
	err := reg.Add(Definition{Name: "Force", Kind: Bool, Long: "force", Mandatory: true})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	// A mandatory bool must be demoted: presence is the value.
	if err := reg.Parse(nil); err != nil {
		t.Fatalf("Parse() error = %v, want nil despite mandatory bool", err)
	}
	if got := reg.GetBool("Force"); got {
		t.Errorf("GetBool(Force) = true, want false default")
	}
}

func TestExplicitDefaultMakesMandatoryMoot(t *testing.T) {
	reg := NewRegistry(Options{})
	err := reg.Add(Definition{
		Name: "Limit", Kind: Int, Long: "limit",
		Mandatory: true, Default: IntValue(10),
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := reg.Parse(nil); err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if got := reg.GetInt("Limit"); got != 10 {
		t.Errorf("GetInt(Limit) = %d, want 10", got)
	}
}

func TestInferredDefaults(t *testing.T) {
	reg := NewRegistry(Options{})
	if err := reg.AddInt("Count", "c", "count", false, ""); err != nil {
		t.Fatal(err)
	}
	if err := reg.AddString("Out", "o", "out", false, ""); err != nil {
		t.Fatal(err)
	}
	if err := reg.Parse(nil); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v, ok := reg.Lookup("Count"); !ok || v.Int() != 0 {
		t.Errorf("Lookup(Count) = (%v, %v), want present zero int", v, ok)
	}
	// Strings have no inferred default and stay absent.
	if _, ok := reg.Lookup("Out"); ok {
		t.Error("Lookup(Out) present, want absent for string without default")
	}
	if got := reg.GetString("Out"); got != "" {
		t.Errorf("GetString(Out) = %q, want empty", got)
	}
}
