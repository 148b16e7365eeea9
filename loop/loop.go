// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loop drives a frame function at a steady rate: it paces the
// frames, computes each frame's tick delta from a [Clock], and stops
// when its context is canceled. Everything a frame does happens on
// the goroutine that called [Loop.Run].
package loop

import (
	"context"
	"log/slog"

	"cogentcore.org/orrery/orbit"
	"golang.org/x/time/rate"
)

// FrameFunc is called once per frame with the tick delta.
// Returning an error stops the loop with that error.
type FrameFunc func(dt float32) error

// Loop paces calls to a [FrameFunc].
type Loop struct {

	// FPS is the maximum number of frames per second.
	// Zero or less runs frames back to back.
	FPS float64

	// Frames stops the loop after this many frames, when > 0.
	Frames int

	// Clock computes the frame deltas. Default: a Fixed clock of step 1.
	Clock *Clock
}

// Run calls frame until ctx is done, frame returns an error or
// [Loop.Frames] frames have run. Cancellation is not an error.
func (l *Loop) Run(ctx context.Context, frame FrameFunc) error {
	clock := l.Clock
	if clock == nil {
		clock = NewClock(Fixed, 1)
	}
	var lim *rate.Limiter
	if l.FPS > 0 {
		lim = rate.NewLimiter(rate.Limit(l.FPS), 1)
	}
	slog.Debug("loop starting", "fps", l.FPS, "frames", l.Frames, "clock", clock.Mode)
	clock.Reset()
	for n := 0; l.Frames <= 0 || n < l.Frames; n++ {
		if lim != nil {
			if err := lim.Wait(ctx); err != nil {
				// either canceled, or the deadline falls before the next frame
				<-ctx.Done()
				slog.Debug("loop stopped", "frames", n)
				return nil
			}
		} else if ctx.Err() != nil {
			slog.Debug("loop stopped", "frames", n)
			return nil
		}
		if err := frame(clock.Delta()); err != nil {
			return err
		}
	}
	return nil
}

// Stepper returns a [FrameFunc] that steps h by the frame delta and
// then hands its drawables to draw. A nil draw only steps.
func Stepper(h *orbit.Hierarchy, draw func([]orbit.Drawable) error) FrameFunc {
	return func(dt float32) error {
		h.Step(dt)
		if draw == nil {
			return nil
		}
		return draw(h.Drawables())
	}
}

// Simulate synchronously runs n frames of h with clock, calling each
// (if non-nil) after every frame with the frame number, starting at 1.
func Simulate(h *orbit.Hierarchy, clock *Clock, n int, each func(frame int)) {
	clock.Reset()
	for f := 1; f <= n; f++ {
		h.Step(clock.Delta())
		if each != nil {
			each(f)
		}
	}
}
