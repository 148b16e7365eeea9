// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "cogentcore.org/orrery/math32"

// Pose holds the position, orientation and scale of a node,
// always relevant to the parent node.
type Pose struct {

	// position of the node relative to its parent
	Pos math32.Vector3

	// rotation as Euler angles in radians (XYZ order), relative to the
	// parent. Each angle is kept in [0, 2π).
	Euler math32.Vector3

	// scale relative to the parent
	Scale math32.Vector3

	// rotation as a quaternion, derived from Euler
	Quat math32.Quat

	// local matrix: scale, then rotate, then translate
	Matrix math32.Matrix4

	// world matrix: all ancestors' local matrices composed with Matrix
	WorldMatrix math32.Matrix4
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// UpdateMatrix updates the local transform matrix based on its position,
// Euler angles, and scale.
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Quat.SetFromEuler(ps.Euler)
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix based on Matrix and
// the parent's world matrix. A nil parent means the node is the root.
// Does NOT call UpdateMatrix.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld == nil {
		ps.WorldMatrix = ps.Matrix
		return
	}
	ps.WorldMatrix.MulMatrices(parWorld, &ps.Matrix)
}

// RotateEulerRad adds the given Euler angles (radians) to the current
// rotation, wraps each angle into [0, 2π) and updates the local matrix.
func (ps *Pose) RotateEulerRad(delta math32.Vector3) {
	ps.Euler.X = math32.WrapAngle(ps.Euler.X + delta.X)
	ps.Euler.Y = math32.WrapAngle(ps.Euler.Y + delta.Y)
	ps.Euler.Z = math32.WrapAngle(ps.Euler.Z + delta.Z)
	ps.UpdateMatrix()
}

// WorldPos returns the current world position.
// It is only valid after the world matrix has been updated.
func (ps *Pose) WorldPos() math32.Vector3 {
	return ps.WorldMatrix.Pos()
}
