// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/orrery/base/errors"
	"cogentcore.org/orrery/logx"
	"cogentcore.org/orrery/loop"
	"cogentcore.org/orrery/orbit"
	"cogentcore.org/orrery/termview"
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

type runOptions struct {
	source
	fps     float64
	clock   string
	watch   bool
	logFile string
}

func newRunCmd() *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate a scene in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context())
		},
	}
	o.addFlags(cmd)
	f := cmd.Flags()
	f.Float64Var(&o.fps, "fps", envFloat("ORRERY_FPS", 60), "maximum frames per second")
	f.StringVar(&o.clock, "clock", envString("ORRERY_CLOCK", "fixed"), "frame delta: fixed or wall")
	f.BoolVar(&o.watch, "watch", false, "reload --config when the file changes")
	f.StringVar(&o.logFile, "log-file", "", "file for logs while the screen is active (default none)")
	return cmd
}

func (o *runOptions) run(ctx context.Context) error {
	mode, err := loop.ParseMode(o.clock)
	if err != nil {
		return err
	}
	if o.watch && o.config == "" {
		return errors.New("run: --watch needs --config")
	}
	h, err := o.build()
	if err != nil {
		return err
	}
	slog.Info("scene built", "scene", h.Name, "bodies", h.NumBodies())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var reloads <-chan *orbit.Hierarchy
	if o.watch {
		reloads, err = watchConfig(ctx, o.config)
		if err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	restore, err := o.screenLogs()
	if err != nil {
		return err
	}
	defer restore()

	lp := &loop.Loop{FPS: o.fps, Clock: loop.NewClock(mode, h.FrameStep)}
	return play(ctx, screen, h, lp, reloads)
}

// screenLogs sends logs to the log file (or nowhere) while the screen
// is active. The returned function restores logging to stderr.
func (o *runOptions) screenLogs() (func(), error) {
	if o.logFile == "" {
		logx.SetLogger(io.Discard)
		return logx.SetDefaultLogger, nil
	}
	f, err := os.Create(o.logFile)
	if err != nil {
		return nil, fmt.Errorf("run: opening log file: %w", err)
	}
	logx.SetLogger(f)
	return func() {
		logx.SetDefaultLogger()
		errors.Log(f.Close())
	}, nil
}

// play runs the frame loop of h on screen until the user quits, ctx
// is done or lp runs out of frames. Hierarchies received on reloads
// replace h between frames.
func play(ctx context.Context, screen tcell.Screen, h *orbit.Hierarchy, lp *loop.Loop, reloads <-chan *orbit.Hierarchy) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	view := termview.New(screen)
	paused := false
	frames := 0
	var ticks float32

	// input drains pending events and reloads, and reports whether
	// the user asked to quit.
	input := func() bool {
		for {
			select {
			case ev := <-events:
				switch view.HandleEvent(ev) {
				case termview.Quit:
					return true
				case termview.TogglePause:
					paused = !paused
					slog.Debug("pause toggled", "paused", paused)
				}
			case nh := <-reloads:
				h = nh
				ticks = 0
				slog.Info("scene reloaded", "scene", h.Name, "bodies", h.NumBodies())
			default:
				return false
			}
		}
	}

	return lp.Run(ctx, func(dt float32) error {
		if input() {
			cancel()
			return nil
		}
		if paused {
			dt = 0
		}
		h.Step(dt)
		frames++
		ticks += dt
		view.Status = statusLine(h.Name, frames, ticks, paused)
		return view.Draw(h.Drawables())
	})
}

func statusLine(scene string, frames int, ticks float32, paused bool) string {
	s := fmt.Sprintf(" %s  frame %d  t=%.1f ", scene, frames, ticks)
	if paused {
		s += "[paused] "
	}
	return s
}

// watchConfig sends a freshly built hierarchy on the returned channel
// each time filename is written, until ctx is done. Invalid configs
// are logged and skipped. Only the latest pending hierarchy is kept.
func watchConfig(ctx context.Context, filename string) (<-chan *orbit.Hierarchy, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors often replace the file, so watch its directory
	if err := w.Add(filepath.Dir(filename)); err != nil {
		errors.Log(w.Close())
		return nil, fmt.Errorf("run: watching %s: %w", filename, err)
	}
	target := filepath.Clean(filename)
	out := make(chan *orbit.Hierarchy, 1)
	go func() {
		defer func() { errors.Log(w.Close()) }()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				h, err := orbit.Open(filename)
				if err != nil {
					slog.Error("reload failed, keeping the current scene", "err", err)
					continue
				}
				select {
				case <-out:
				default:
				}
				out <- h
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("config watcher", "err", err)
			}
		}
	}()
	return out, nil
}
