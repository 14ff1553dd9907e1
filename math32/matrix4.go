// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 matrix stored in column-major order, for 3D
// transforms and projections. Multiplying a matrix by a point applies
// the rightmost factor of a product first: M = A * B applies B, then A.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4].
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// NewTranslation returns a new [Matrix4] translating by the given vector.
func NewTranslation(v Vector3) Matrix4 {
	m := Identity4()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// NewScale returns a new [Matrix4] scaling by the given per-axis factors.
func NewScale(v Vector3) Matrix4 {
	m := Matrix4{}
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	m[15] = 1
	return m
}

// NewRotation returns a new [Matrix4] rotating by the given
// (normalized) quaternion.
func NewRotation(q Quat) Matrix4 {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	m := Matrix4{}
	m[0] = 1 - (yy + zz)
	m[4] = xy - wz
	m[8] = xz + wy
	m[1] = xy + wz
	m[5] = 1 - (xx + zz)
	m[9] = yz - wx
	m[2] = xz - wy
	m[6] = yz + wx
	m[10] = 1 - (xx + yy)
	m[15] = 1
	return m
}

// SetIdentity sets this matrix to the identity.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{}
	m[0] = 1
	m[5] = 1
	m[10] = 1
	m[15] = 1
}

// IsIdentity returns whether this matrix is exactly the identity.
func (m *Matrix4) IsIdentity() bool {
	return *m == Identity4()
}

// Mul returns this matrix multiplied by the other given matrix
// (other is applied first).
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	out := Matrix4{}
	out.MulMatrices(&m, &other)
	return out
}

// MulMatrices sets this matrix to a * b (b is applied first).
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var out Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	*m = out
}

// Pos returns the translation component of this matrix.
func (m *Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// SetTransform sets this matrix to the standard node transform composing
// scale, then rotation, then translation: T * R * S.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	r := NewRotation(quat)
	s := NewScale(scale)
	t := NewTranslation(pos)
	m.MulMatrices(&r, &s)
	m.MulMatrices(&t, m)
}

// Decompose extracts the translation, rotation, and scale components of
// this matrix, assuming it was composed as T * R * S with positive scale
// and no shear.
func (m *Matrix4) Decompose() (pos Vector3, quat Quat, scale Vector3) {
	pos = m.Pos()
	scale = Vec3(
		Vec3(m[0], m[1], m[2]).Length(),
		Vec3(m[4], m[5], m[6]).Length(),
		Vec3(m[8], m[9], m[10]).Length())
	rm := *m
	if scale.X != 0 {
		rm[0], rm[1], rm[2] = m[0]/scale.X, m[1]/scale.X, m[2]/scale.X
	}
	if scale.Y != 0 {
		rm[4], rm[5], rm[6] = m[4]/scale.Y, m[5]/scale.Y, m[6]/scale.Y
	}
	if scale.Z != 0 {
		rm[8], rm[9], rm[10] = m[8]/scale.Z, m[9]/scale.Z, m[10]/scale.Z
	}
	quat.SetFromRotationMatrix(&rm)
	return pos, quat, scale
}

// SetPerspective sets this matrix to a perspective projection with the
// given vertical field of view in degrees, aspect ratio (width/height),
// and near and far clipping planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	f := 1 / Tan(DegToRad(fov)/2)
	rangeInv := 1 / (near - far)
	*m = Matrix4{}
	m[0] = f / aspect
	m[5] = f
	m[10] = (near + far) * rangeInv
	m[11] = -1
	m[14] = 2 * near * far * rangeInv
}

// SetOrthographic sets this matrix to an orthographic projection with
// the given view volume width and height and near and far clipping planes.
func (m *Matrix4) SetOrthographic(width, height, near, far float32) {
	*m = Matrix4{}
	m[0] = 2 / width
	m[5] = 2 / height
	m[10] = -2 / (far - near)
	m[14] = -(far + near) / (far - near)
	m[15] = 1
}

// NewLookAt returns a rotation matrix orienting an object at the eye
// position to face the target position, with the given up direction.
// Only the rotation component is set; the translation is zero.
func NewLookAt(eye, target, up Vector3) Matrix4 {
	z := eye.Sub(target).Normal()
	if z.IsNil() {
		z = Vec3(0, 0, 1)
	}
	x := up.Cross(z).Normal()
	if x.IsNil() {
		// up and z are parallel: nudge z and recompute
		z.X += 0.0001
		z = z.Normal()
		x = up.Cross(z).Normal()
	}
	y := z.Cross(x)

	m := Identity4()
	m[0], m[1], m[2] = x.X, x.Y, x.Z
	m[4], m[5], m[6] = y.X, y.Y, y.Z
	m[8], m[9], m[10] = z.X, z.Y, z.Z
	return m
}
