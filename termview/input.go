// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import "github.com/gdamore/tcell/v2"

// Actions are what the frame loop should do after an event.
type Actions int32

const (
	// None means the event was ignored.
	None Actions = iota

	// Redraw means the view changed.
	Redraw

	// TogglePause asks the loop to stop or resume ticking.
	TogglePause

	// Quit asks the loop to stop.
	Quit
)

// HandleEvent applies ev to the camera and returns the action for the loop.
func (v *View) HandleEvent(ev tcell.Event) Actions {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.Screen.Sync()
		return Redraw
	}
	return None
}

// HandleKey applies one key press to the camera and returns the action
// for the loop.
func (v *View) HandleKey(key tcell.Key, r rune) Actions {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyLeft:
		v.Camera.Orbit(-AngleStep, 0)
		return Redraw
	case tcell.KeyRight:
		v.Camera.Orbit(AngleStep, 0)
		return Redraw
	case tcell.KeyUp:
		v.Camera.Orbit(0, AngleStep)
		return Redraw
	case tcell.KeyDown:
		v.Camera.Orbit(0, -AngleStep)
		return Redraw
	case tcell.KeyRune:
	default:
		return None
	}
	switch r {
	case 'q', 'Q':
		return Quit
	case ' ':
		return TogglePause
	case '+', '=':
		v.Camera.ZoomBy(ZoomStep)
		return Redraw
	case '-', '_':
		v.Camera.ZoomBy(1 / ZoomStep)
		return Redraw
	case 'r', 'R':
		v.Camera = DefaultCamera()
		return Redraw
	}
	return None
}
