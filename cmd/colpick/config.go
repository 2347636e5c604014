// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config supplies defaults for switches the user did not give on the
// command line. Explicit switches always win.
type Config struct {
	Cols    string `toml:"cols,omitempty"`
	Limit   int    `toml:"limit,omitempty"`
	Verbose bool   `toml:"verbose,omitempty"`
}

func loadConfig(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(bs, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}
