// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/orrery/base/iox/tomlx"
	"cogentcore.org/orrery/base/iox/yamlx"
)

// Formats are the config file formats.
type Formats int32

const (
	// TOML is the default format.
	TOML Formats = iota

	// YAML is selected by the .yaml and .yml extensions.
	YAML
)

// FormatFromFilename returns the format for the extension of filename.
func FormatFromFilename(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("orbit: unsupported config file extension %q", filepath.Ext(filename))
}

// OpenConfig reads a [Config] from the named TOML or YAML file.
// Unknown fields are errors.
func OpenConfig(filename string) (*Config, error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	switch f {
	case YAML:
		err = yamlx.Open(cfg, filename)
	default:
		err = tomlx.Open(cfg, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("orbit: reading %s: %w", filename, err)
	}
	return cfg, nil
}

// ReadConfig reads a [Config] in the given format from r.
func ReadConfig(r io.Reader, format Formats) (*Config, error) {
	cfg := &Config{}
	var err error
	switch format {
	case YAML:
		err = yamlx.Read(cfg, r)
	default:
		err = tomlx.Read(cfg, r)
	}
	if err != nil {
		return nil, fmt.Errorf("orbit: reading config: %w", err)
	}
	return cfg, nil
}

// Open reads the named config file and builds its [Hierarchy].
func Open(filename string) (*Hierarchy, error) {
	cfg, err := OpenConfig(filename)
	if err != nil {
		return nil, err
	}
	h, err := Build(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return h, nil
}
