// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity quaternion.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	nq := Quat{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

// NewQuatEuler returns a new quaternion from given Euler angles (radians, XYZ order).
func NewQuatEuler(euler Vector3) Quat {
	nq := Quat{}
	nq.SetFromEuler(euler)
	return nq
}

// SetIdentity sets this quanternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	*q = Quat{W: 1}
}

// IsNil returns true if all values are 0 (uninitialized).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// SetFromEuler sets this quaternion from the specified vector with
// Euler angles for each axis. It is assumed that the Euler angles
// are in XYZ order.
func (q *Quat) SetFromEuler(euler Vector3) {
	c1 := Cos(euler.X / 2)
	c2 := Cos(euler.Y / 2)
	c3 := Cos(euler.Z / 2)
	s1 := Sin(euler.X / 2)
	s2 := Sin(euler.Y / 2)
	s3 := Sin(euler.Z / 2)

	q.X = s1*c2*c3 + c1*s2*s3
	q.Y = c1*s2*c3 - s1*c2*s3
	q.Z = c1*c2*s3 + s1*s2*c3
	q.W = c1*c2*c3 - s1*s2*s3
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle (radians).
// The axis is normalized first.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	axis = axis.Normal()
	halfAngle := angle / 2
	s := Sin(halfAngle)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = Cos(halfAngle)
}

// Mul returns the product of this quaternion with the other one:
// the rotation other followed by q.
func (q Quat) Mul(other Quat) Quat {
	qax, qay, qaz, qaw := q.X, q.Y, q.Z, q.W
	qbx, qby, qbz, qbw := other.X, other.Y, other.Z, other.W
	return Quat{
		qax*qbw + qaw*qbx + qay*qbz - qaz*qby,
		qay*qbw + qaw*qby + qaz*qbx - qax*qbz,
		qaz*qbw + qaw*qbz + qax*qby - qay*qbx,
		qaw*qbw - qax*qbx - qay*qby - qaz*qbz,
	}
}

// Length returns the length of this quaternion
func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize normalizes this quaternion.
func (q *Quat) Normalize() {
	l := q.Length()
	if l == 0 {
		q.SetIdentity()
		return
	}
	l = 1 / l
	q.X *= l
	q.Y *= l
	q.Z *= l
	q.W *= l
}
