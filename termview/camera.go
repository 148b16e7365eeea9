// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import "cogentcore.org/orrery/math32"

// Camera is an orthographic camera orbiting the origin. It only reads
// world positions and never changes the hierarchy.
type Camera struct {

	// Yaw is the rotation of the camera about the vertical axis, in radians.
	Yaw float32

	// Pitch is the elevation of the camera above the orbital plane,
	// in radians, within ±[MaxPitch].
	Pitch float32

	// Zoom is the number of screen rows per world unit.
	// Zero means the view fits the scene on the next draw.
	Zoom float32
}

// Camera limits and steps.
const (
	MaxPitch  = 89 * math32.DegToRadFactor
	AngleStep = 5 * math32.DegToRadFactor
	ZoomStep  = 1.25
	MinZoom   = 0.01
	MaxZoom   = 100
)

// DefaultCamera looks at the origin from above the orbital plane at
// the elevation of a camera placed at (0, 20, 50).
func DefaultCamera() Camera {
	return Camera{Pitch: 0.3805064}
}

// rotation returns the world to camera rotation: yaw first, then pitch.
func (c *Camera) rotation() math32.Quat {
	yaw := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), -c.Yaw)
	pitch := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), c.Pitch)
	return pitch.Mul(yaw)
}

// View returns p in camera space: X to the right, Y up and Z toward
// the viewer.
func (c *Camera) View(p math32.Vector3) math32.Vector3 {
	return p.MulQuat(c.rotation())
}

// Orbit turns the camera by the given yaw and pitch deltas (radians).
func (c *Camera) Orbit(dyaw, dpitch float32) {
	c.Yaw = math32.WrapAngle(c.Yaw + dyaw)
	c.Pitch = math32.Max(-MaxPitch, math32.Min(MaxPitch, c.Pitch+dpitch))
}

// ZoomBy multiplies the zoom by f, within [MinZoom, MaxZoom].
func (c *Camera) ZoomBy(f float32) {
	c.Zoom = math32.Max(MinZoom, math32.Min(MaxZoom, c.Zoom*f))
}
