// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"errors"
	"fmt"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Reasons a [Config] is rejected. A [ConfigError] wraps exactly one of
// them, so they can be tested with [errors.Is].
var (
	ErrNoName        = errors.New("body has no name")
	ErrDuplicate     = errors.New("duplicate body name")
	ErrSelfParent    = errors.New("body is its own parent")
	ErrUnknownParent = errors.New("unknown parent")
	ErrCycle         = errors.New("parent cycle")
	ErrInvalid       = errors.New("invalid value")
)

// ConfigError reports a malformed scene configuration. It is returned
// by [Build] and is fatal: the configuration must be fixed.
type ConfigError struct {

	// Body is the name of the offending body, or "" when the error is
	// about the scene as a whole.
	Body string

	// Err is one of the Err* reasons above.
	Err error

	// Detail adds context, such as the parent name or a suggestion.
	Detail string
}

func (e *ConfigError) Error() string {
	s := "orbit: "
	if e.Body != "" {
		s += fmt.Sprintf("body %q: ", e.Body)
	}
	s += e.Err.Error()
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// suggestMinSimilarity is the lowest similarity for which a known name
// is offered as a replacement for an unknown one.
const suggestMinSimilarity = 0.5

// suggest returns the name in known closest to name, or "" if none is
// close enough.
func suggest(name string, known []string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", suggestMinSimilarity
	for _, k := range known {
		if sim := strutil.Similarity(name, k, lev); sim > bestSim || (best == "" && sim == bestSim) {
			best, bestSim = k, sim
		}
	}
	return best
}
