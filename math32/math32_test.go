// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/orrery/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-5)

func tolAssertEqualVector(t *testing.T, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, standardTol)
	tolassert.EqualTol(t, vt.Y, va.Y, standardTol)
	tolassert.EqualTol(t, vt.Z, va.Z, standardTol)
}

func TestWrapAngle(t *testing.T) {
	assert.Equal(t, float32(0), WrapAngle(0))
	assert.Equal(t, float32(1), WrapAngle(1))
	tolassert.EqualTol(t, 1, WrapAngle(1+TwoPi), standardTol)
	tolassert.EqualTol(t, TwoPi-1, WrapAngle(-1), standardTol)
	assert.Equal(t, float32(0), WrapAngle(TwoPi))
	a := WrapAngle(-1e-9)
	assert.True(t, a >= 0 && a < TwoPi)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(3))
	assert.False(t, IsFinite(Inf(1)))
	assert.False(t, IsFinite(NaN()))
	assert.False(t, Vec3(1, NaN(), 0).IsFinite())
}

func TestQuat(t *testing.T) {
	vx := Vec3(1, 0, 0)
	vy := Vec3(0, 1, 0)

	q := NewQuatAxisAngle(vy, DegToRad(90))
	tolAssertEqualVector(t, Vec3(0, 0, -1), vx.MulQuat(q))
	tolAssertEqualVector(t, vy, vy.MulQuat(q))

	qe := NewQuatEuler(Vec3(0, DegToRad(90), 0))
	tolAssertEqualVector(t, vx.MulQuat(q), vx.MulQuat(qe))

	// q applied after q gives a half turn
	tolAssertEqualVector(t, Vec3(-1, 0, 0), vx.MulQuat(q.Mul(q)))

	// the right-hand quaternion is applied first
	qz := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	tolAssertEqualVector(t, vx.MulQuat(qz).MulQuat(q), vx.MulQuat(q.Mul(qz)))

	id := QuatIdentity()
	assert.Equal(t, vx, vx.MulQuat(id))

	var zq Quat
	assert.True(t, zq.IsNil())
	zq.Normalize()
	assert.Equal(t, id, zq)
}

func TestMatrix4(t *testing.T) {
	id := Identity4()
	assert.True(t, id.IsIdentity())

	var m Matrix4
	m.SetTransform(Vec3(10, 0, 0), NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90)), Vec3(2, 2, 2))
	// scale, then rotate, then translate
	tolAssertEqualVector(t, Vec3(10, 0, -2), Vec3(1, 0, 0).MulMatrix4AsPoint(&m))
	assert.Equal(t, Vec3(10, 0, 0), m.Pos())
	tolAssertEqualVector(t, Vec3(2, 2, 2), m.ColumnScale())

	assert.Equal(t, m, id.Mul(m))
	assert.Equal(t, m, m.Mul(id))

	var tr Matrix4
	tr.SetTransform(Vec3(0, 0, 5), QuatIdentity(), Vec3(1, 1, 1))
	// tr * m applies m first
	p := tr.Mul(m)
	tolAssertEqualVector(t, Vec3(10, 0, 3), Vec3(1, 0, 0).MulMatrix4AsPoint(&p))
}

func TestVector3(t *testing.T) {
	v := Vec3(3, 4, 0)
	assert.Equal(t, float32(5), v.Length())
	tolAssertEqualVector(t, Vec3(0.6, 0.8, 0), v.Normal())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, float32(5), Vector3{}.DistanceTo(v))
	assert.Equal(t, Vec3(6, 8, 0), v.Add(v))
	assert.Equal(t, Vector3{}, v.Sub(v))
	assert.Equal(t, "(3, 4, 0)", v.String())
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, float32(1), Min(1, 2))
	assert.Equal(t, float32(2), Max(1, 2))
	assert.Equal(t, float32(3), Abs(-3))
}
