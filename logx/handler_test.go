// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	l.Debug("hidden")
	l.Info("built", "bodies", 3)
	l.With("scene", "solar").WithGroup("frame").Warn("slow", "dt", 2.5)

	// a bytes.Buffer is not a terminal, so no color sequences are written
	assert.Equal(t, "INFO built bodies=3\nWARN slow scene=solar frame.dt=2.5\n", buf.String())
}

func TestDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	var buf bytes.Buffer
	UserLevel = slog.LevelDebug
	defer func() { UserLevel = slog.LevelWarn }()
	SetLogger(&buf)

	slog.Debug("this is debug")
	slog.Info("this is info", slog.Group("g", "k", "v"))
	assert.Equal(t, "DEBUG this is debug\nINFO this is info g.k=v\n", buf.String())
}
