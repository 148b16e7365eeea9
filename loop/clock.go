// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import (
	"fmt"
	"strings"
	"time"
)

// Modes are the ways a [Clock] turns frames into tick deltas.
type Modes int32

const (
	// Fixed advances by [Clock.Step] every frame, whatever the elapsed
	// time. Motion speed then depends on the frame rate.
	Fixed Modes = iota

	// Wall advances by the elapsed wall-clock time, scaled by
	// [Clock.RefRate] so that rates keep their per-frame meaning
	// at the reference frame rate.
	Wall
)

func (m Modes) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("Modes(%d)", int32(m))
}

// ParseMode returns the mode named by s ("fixed" or "wall").
func ParseMode(s string) (Modes, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "":
		return Fixed, nil
	case "wall":
		return Wall, nil
	}
	return Fixed, fmt.Errorf("loop: unknown clock mode %q", s)
}

// Default clock settings.
const (
	DefaultRefRate  = 60
	DefaultMaxDelta = 10
)

// Clock returns the tick delta for each frame.
type Clock struct {

	// Mode selects fixed-step or wall-clock deltas.
	Mode Modes

	// Step is the delta of every frame in Fixed mode. Default 1.
	Step float32

	// RefRate is the number of tick units per second in Wall mode.
	// Default [DefaultRefRate].
	RefRate float32

	// MaxDelta bounds the delta in Wall mode, so a stalled process
	// does not jump ahead. Default [DefaultMaxDelta].
	MaxDelta float32

	// Now returns the current time. Default [time.Now].
	Now func() time.Time

	last time.Time
}

// NewClock returns a new [Clock] in the given mode with default settings.
func NewClock(mode Modes, step float32) *Clock {
	return &Clock{Mode: mode, Step: step}
}

func (c *Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Reset starts measuring elapsed time from now.
func (c *Clock) Reset() {
	c.last = c.now()
}

// Delta returns the tick delta for the next frame.
// In Wall mode the first call after [Clock.Reset] measures from the reset.
func (c *Clock) Delta() float32 {
	if c.Mode == Fixed {
		if c.Step == 0 {
			return 1
		}
		return c.Step
	}
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	elapsed := now.Sub(c.last)
	c.last = now
	ref := c.RefRate
	if ref == 0 {
		ref = DefaultRefRate
	}
	mx := c.MaxDelta
	if mx == 0 {
		mx = DefaultMaxDelta
	}
	dt := float32(elapsed.Seconds()) * ref
	switch {
	case dt < 0:
		dt = 0
	case dt > mx:
		dt = mx
	}
	return dt
}
