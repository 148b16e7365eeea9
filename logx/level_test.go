// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("DEBUG")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
	l, err = ParseLevel(" warning ")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
