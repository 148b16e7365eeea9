// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termview draws orbit scenes on a terminal screen and turns
// key presses into camera moves and loop actions.
package termview

import (
	"log/slog"
	"sort"
	"unicode/utf8"

	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/orbit"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2

// DefaultGlyph is drawn for bodies without a material glyph.
const DefaultGlyph = 'O'

// HelpLine is shown on the last row of the screen.
const HelpLine = "arrows: orbit  +/-: zoom  space: pause  r: reset  q: quit"

// View renders drawables on a [tcell.Screen].
type View struct {

	// Screen is the target screen. View does not own it.
	Screen tcell.Screen

	// Camera is the current camera.
	Camera Camera

	// Status is shown on the first row of the screen.
	Status string

	// styles caches the style of each material color.
	styles map[string]tcell.Style
}

// New returns a new [View] on s with the [DefaultCamera].
func New(s tcell.Screen) *View {
	return &View{Screen: s, Camera: DefaultCamera(), styles: map[string]tcell.Style{}}
}

// Project returns the screen cell of world point p and its depth
// (larger is closer to the viewer).
func (v *View) Project(p math32.Vector3) (col, row int, depth float32) {
	w, h := v.Screen.Size()
	cp := v.Camera.View(p)
	col = w/2 + round(cp.X*v.Camera.Zoom*CellAspect)
	row = h/2 - round(cp.Y*v.Camera.Zoom)
	return col, row, cp.Z
}

// Fit sets the zoom so that every drawable fits on the screen.
func (v *View) Fit(ds []orbit.Drawable) {
	w, h := v.Screen.Size()
	var extent float32 = 1
	for _, d := range ds {
		extent = math32.Max(extent, d.Pos.Length()+d.Scale)
	}
	rows := math32.Min(float32(w)/(2*CellAspect), float32(h-2)/2)
	v.Camera.Zoom = math32.Max(MinZoom, rows/extent)
	slog.Debug("view fitted", "extent", extent, "zoom", v.Camera.Zoom)
}

// Draw clears the screen, draws ds back to front, the status and help
// lines, and shows the result.
func (v *View) Draw(ds []orbit.Drawable) error {
	if v.Camera.Zoom == 0 {
		v.Fit(ds)
	}
	s := v.Screen
	s.Clear()

	type item struct {
		d        *orbit.Drawable
		col, row int
		depth    float32
		rx, ry   int
	}
	items := make([]item, len(ds))
	for i := range ds {
		d := &ds[i]
		col, row, depth := v.Project(d.Pos)
		ry := round(d.Scale * v.Camera.Zoom)
		items[i] = item{d: d, col: col, row: row, depth: depth, rx: ry * CellAspect, ry: ry}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].depth < items[j].depth })
	for _, it := range items {
		v.drawDisc(it.col, it.row, it.rx, it.ry, glyph(it.d.Material), v.style(it.d.Material))
	}

	_, h := s.Size()
	v.drawText(0, 0, v.Status, tcell.StyleDefault.Reverse(true))
	v.drawText(0, h-1, HelpLine, tcell.StyleDefault.Dim(true))
	s.Show()
	return nil
}

// drawDisc fills the ellipse with radii rx, ry (cells) around col, row.
// A zero radius draws a single cell.
func (v *View) drawDisc(col, row, rx, ry int, r rune, st tcell.Style) {
	if rx <= 0 || ry <= 0 {
		v.Screen.SetContent(col, row, r, nil, st)
		return
	}
	// only visit the part of the disc that is on the screen
	w, h := v.Screen.Size()
	y0, y1 := max(-ry, -row), min(ry, h-1-row)
	x0, x1 := max(-rx, -col), min(rx, w-1-col)
	for dy := y0; dy <= y1; dy++ {
		for dx := x0; dx <= x1; dx++ {
			fx := float32(dx) / float32(rx)
			fy := float32(dy) / float32(ry)
			if fx*fx+fy*fy <= 1 {
				v.Screen.SetContent(col+dx, row+dy, r, nil, st)
			}
		}
	}
}

func (v *View) drawText(col, row int, text string, st tcell.Style) {
	for _, r := range text {
		v.Screen.SetContent(col, row, r, nil, st)
		col++
	}
}

// style returns the screen style for m: its color, or its emissive
// color, or the default foreground. Unlit materials are drawn bold.
func (v *View) style(m orbit.Material) tcell.Style {
	key := m.Color + "|" + m.Emissive
	st, ok := v.styles[key]
	if !ok {
		st = tcell.StyleDefault
		for _, hex := range []string{m.Color, m.Emissive} {
			if hex == "" {
				continue
			}
			c, err := colorful.Hex(hex)
			if err != nil {
				slog.Warn("invalid material color", "color", hex, "err", err)
				continue
			}
			r, g, b := c.RGB255()
			st = st.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			break
		}
		if v.styles == nil {
			v.styles = map[string]tcell.Style{}
		}
		v.styles[key] = st
	}
	return st.Bold(m.Basic)
}

func glyph(m orbit.Material) rune {
	if m.Glyph == "" {
		return DefaultGlyph
	}
	r, _ := utf8.DecodeRuneInString(m.Glyph)
	return r
}

func round(f float32) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
