// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default logger to be a [Handler] writing
// to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	SetLogger(os.Stderr)
}

// SetLogger sets the default logger to be a [Handler] writing to w
// at [UserLevel].
func SetLogger(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w, &slog.HandlerOptions{Level: UserLevel})))
}

// Handler is a [slog.Handler] that writes one line per record:
// the level label, colored when the output supports it, the message,
// and then the attributes as key=value pairs.
type Handler struct {
	opts   slog.HandlerOptions
	out    *termenv.Output
	mu     *sync.Mutex
	prefix string // preformatted attributes from WithAttrs
	group  string // dotted group prefix from WithGroup
}

// NewHandler returns a new [Handler] writing to w.
// If opts is nil, the level is [slog.LevelInfo].
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{out: termenv.NewOutput(w), mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return level >= min
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelLabel(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	var sb strings.Builder
	sb.WriteString(h.prefix)
	for _, a := range attrs {
		appendAttr(&sb, h.group, a)
	}
	nh.prefix = sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = h.group + name + "."
	return &nh
}

func (h *Handler) levelLabel(level slog.Level) string {
	s := h.out.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(h.out.Color("1")).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(h.out.Color("3"))
	case level >= slog.LevelInfo:
		s = s.Foreground(h.out.Color("6"))
	default:
		s = s.Faint()
	}
	return s.String()
}

func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := group
		if a.Key != "" {
			sub += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, sub, ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s%s=%v", group, a.Key, a.Value.Any())
}
