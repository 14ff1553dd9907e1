// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Quat is a quaternion representing a rotation, with X, Y, Z imaginary
// components and W real component.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuatAxisAngle returns a new quaternion representing a rotation of
// angle radians about the given (normalized) axis.
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	q := Quat{}
	q.SetFromAxisAngle(axis, angle)
	return q
}

// NewQuatEuler returns a new quaternion from the given Euler angles in
// radians, applied about the X axis, then Y, then Z.
func NewQuatEuler(euler Vector3) Quat {
	q := Quat{}
	q.SetFromEuler(euler)
	return q
}

func (q Quat) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// IsNil returns whether all components are zero
// (not a valid rotation; see [Quat.SetIdentity]).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// IsIdentity returns whether this quaternion is the identity (no rotation).
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// SetIdentity sets this quaternion to the identity (no rotation).
func (q *Quat) SetIdentity() {
	q.X = 0
	q.Y = 0
	q.Z = 0
	q.W = 1
}

// SetFromAxisAngle sets this quaternion from a rotation of angle radians
// about the given (normalized) axis.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	halfAngle := angle / 2
	s := Sin(halfAngle)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = Cos(halfAngle)
}

// SetFromEuler sets this quaternion from the given Euler angles in
// radians, applied about the X axis, then Y, then Z.
func (q *Quat) SetFromEuler(euler Vector3) {
	cx := Cos(euler.X / 2)
	cy := Cos(euler.Y / 2)
	cz := Cos(euler.Z / 2)
	sx := Sin(euler.X / 2)
	sy := Sin(euler.Y / 2)
	sz := Sin(euler.Z / 2)

	q.W = cx*cy*cz + sx*sy*sz
	q.X = sx*cy*cz - cx*sy*sz
	q.Y = cx*sy*cz + sx*cy*sz
	q.Z = cx*cy*sz - sx*sy*cz
}

// ToEuler returns the Euler angles in radians corresponding to this
// quaternion, about the X, Y, and Z axes.
func (q Quat) ToEuler() Vector3 {
	x := Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))
	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	var y float32
	if Abs(sinp) >= 1 {
		y = Sign(sinp) * Pi / 2 // gimbal lock
	} else {
		y = Asin(sinp)
	}
	z := Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))
	return Vec3(x, y, z)
}

// Length returns the length (magnitude) of this quaternion.
func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize normalizes this quaternion to unit length in place,
// setting it to the identity if its length is zero.
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

// Mul returns this quaternion multiplied by the other given quaternion,
// which composes the rotations with other applied first.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.X*other.W + q.W*other.X + q.Y*other.Z - q.Z*other.Y,
		Y: q.Y*other.W + q.W*other.Y + q.Z*other.X - q.X*other.Z,
		Z: q.Z*other.W + q.W*other.Z + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// SetMul sets this quaternion to itself multiplied by the other
// given quaternion.
func (q *Quat) SetMul(other Quat) {
	*q = q.Mul(other)
}

// Inverse returns the inverse rotation (the conjugate, assuming a
// normalized quaternion).
func (q Quat) Inverse() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// SetFromRotationMatrix sets this quaternion from the rotation component
// of the given matrix, which must consist of a pure (unscaled) rotation.
func (q *Quat) SetFromRotationMatrix(m *Matrix4) {
	m11, m12, m13 := m[0], m[4], m[8]
	m21, m22, m23 := m[1], m[5], m[9]
	m31, m32, m33 := m[2], m[6], m[10]
	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := 0.5 / Sqrt(trace+1)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	case m11 > m22 && m11 > m33:
		s := 2 * Sqrt(1+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	case m22 > m33:
		s := 2 * Sqrt(1+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	default:
		s := 2 * Sqrt(1+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
}
