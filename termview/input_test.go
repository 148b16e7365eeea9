// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"testing"

	"cogentcore.org/orrery/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestHandleKey(t *testing.T) {
	v := newTestView(t)
	assert.Equal(t, Quit, v.HandleKey(tcell.KeyEscape, 0))
	assert.Equal(t, Quit, v.HandleKey(tcell.KeyCtrlC, 0))
	assert.Equal(t, Quit, v.HandleKey(tcell.KeyRune, 'q'))
	assert.Equal(t, TogglePause, v.HandleKey(tcell.KeyRune, ' '))
	assert.Equal(t, None, v.HandleKey(tcell.KeyRune, 'x'))
	assert.Equal(t, None, v.HandleKey(tcell.KeyF1, 0))
}

func TestHandleKeyCamera(t *testing.T) {
	v := newTestView(t)
	v.Camera.Zoom = 1
	assert.Equal(t, Redraw, v.HandleKey(tcell.KeyRune, '+'))
	assert.Equal(t, float32(ZoomStep), v.Camera.Zoom)
	v.HandleKey(tcell.KeyRune, '-')
	assert.InDelta(t, 1, v.Camera.Zoom, 1e-6)

	pitch := v.Camera.Pitch
	v.HandleKey(tcell.KeyUp, 0)
	assert.InDelta(t, pitch+AngleStep, v.Camera.Pitch, 1e-6)
	v.HandleKey(tcell.KeyRight, 0)
	assert.InDelta(t, AngleStep, v.Camera.Yaw, 1e-6)
	v.HandleKey(tcell.KeyLeft, 0)
	v.HandleKey(tcell.KeyLeft, 0)
	assert.InDelta(t, math32.TwoPi-AngleStep, v.Camera.Yaw, 1e-5)

	assert.Equal(t, Redraw, v.HandleKey(tcell.KeyRune, 'r'))
	assert.Equal(t, DefaultCamera(), v.Camera)
}

func TestPitchClamp(t *testing.T) {
	c := DefaultCamera()
	for range 100 {
		c.Orbit(0, AngleStep)
	}
	assert.InDelta(t, MaxPitch, c.Pitch, 1e-6)
	c.Zoom = MinZoom
	c.ZoomBy(0.5)
	assert.Equal(t, float32(MinZoom), c.Zoom)
}

func TestHandleEvent(t *testing.T) {
	v := newTestView(t)
	assert.Equal(t, Quit, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.Equal(t, TogglePause, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.Equal(t, Quit, v.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestHandleResize(t *testing.T) {
	v := newTestView(t)
	assert.Equal(t, Redraw, v.HandleEvent(tcell.NewEventResize(100, 30)))
}
