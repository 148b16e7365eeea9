// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Identity4()
}

// IsIdentity returns true if this matrix is the identity matrix.
func (m *Matrix4) IsIdentity() bool {
	return *m == Identity4()
}

// SetTransform sets this matrix to a transformation matrix for the
// specified position, rotation specified by the quaternion and scale.
// Applied to a point this scales, then rotates, then translates.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	x2 := quat.X + quat.X
	y2 := quat.Y + quat.Y
	z2 := quat.Z + quat.Z
	xx := quat.X * x2
	xy := quat.X * y2
	xz := quat.X * z2
	yy := quat.Y * y2
	yz := quat.Y * z2
	zz := quat.Z * z2
	wx := quat.W * x2
	wy := quat.W * y2
	wz := quat.W * z2

	m[0] = (1 - (yy + zz)) * scale.X
	m[1] = (xy + wz) * scale.X
	m[2] = (xz - wy) * scale.X
	m[3] = 0

	m[4] = (xy - wz) * scale.Y
	m[5] = (1 - (xx + zz)) * scale.Y
	m[6] = (yz + wx) * scale.Y
	m[7] = 0

	m[8] = (xz + wy) * scale.Z
	m[9] = (yz - wx) * scale.Z
	m[10] = (1 - (xx + yy)) * scale.Z
	m[11] = 0

	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
	m[15] = 1
}

// MulMatrices sets this matrix to the product a * b, so that b is
// applied to a point first. m may alias a or b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = s
		}
	}
	*m = r
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	nm := Matrix4{}
	nm.MulMatrices(&m, &other)
	return nm
}

// Pos returns the translation component of the matrix.
func (m *Matrix4) Pos() Vector3 {
	v := Vector3{}
	v.SetFromMatrixPos(m)
	return v
}

// ColumnScale returns the length of each of the first three columns,
// which is the scale of an affine transform without shear.
func (m *Matrix4) ColumnScale() Vector3 {
	return Vector3{
		Vec3(m[0], m[1], m[2]).Length(),
		Vec3(m[4], m[5], m[6]).Length(),
		Vec3(m[8], m[9], m[10]).Length(),
	}
}
