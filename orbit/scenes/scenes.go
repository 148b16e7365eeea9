// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenes provides the built-in orbit scenes.
package scenes

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"cogentcore.org/orrery/base/errors"
	"cogentcore.org/orrery/base/iox/tomlx"
	"cogentcore.org/orrery/orbit"
	"github.com/jinzhu/copier"
)

//go:embed *.toml
var content embed.FS

var (
	loadOnce sync.Once
	configs  map[string]*orbit.Config
)

// load parses every embedded scene once.
// The embedded files are fixed at build time, so a parse error is a bug.
func load() {
	loadOnce.Do(func() {
		configs = map[string]*orbit.Config{}
		ents := errors.Must1(content.ReadDir("."))
		for _, e := range ents {
			b := errors.Must1(content.ReadFile(e.Name()))
			cfg := &orbit.Config{}
			errors.Must(tomlx.ReadBytes(cfg, b))
			configs[strings.TrimSuffix(e.Name(), path.Ext(e.Name()))] = cfg
		}
	})
}

// Names returns the names of the built-in scenes in lexical order.
func Names() []string {
	load()
	nms := make([]string, 0, len(configs))
	for nm := range configs {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}

// Open returns a copy of the named built-in scene config,
// which the caller is free to modify.
func Open(name string) (*orbit.Config, error) {
	load()
	cfg, ok := configs[name]
	if !ok {
		return nil, fmt.Errorf("scenes: unknown scene %q (have %s)", name, strings.Join(Names(), ", "))
	}
	cp := &orbit.Config{}
	if err := copier.CopyWithOption(cp, cfg, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return cp, nil
}

// Build builds the named built-in scene.
func Build(name string) (*orbit.Hierarchy, error) {
	cfg, err := Open(name)
	if err != nil {
		return nil, err
	}
	return orbit.Build(cfg)
}
