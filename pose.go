// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import "cogentcore.org/sceneview/math32"

// Pose contains the full specification of a scene node's position and
// orientation, relative to its parent node.
type Pose struct {
	// Pos is the position of the center of the node, relative to the parent.
	Pos math32.Vector3

	// Scale is the scale, relative to the parent.
	Scale math32.Vector3

	// Quat is the rotation, relative to the parent.
	Quat math32.Quat
}

// Defaults sets unit scale and identity rotation if the current values
// are nil (i.e., zero-valued).
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// Matrix returns the local transform matrix for this pose, using the
// standard node composition: scale, then rotation, then translation.
func (ps *Pose) Matrix() math32.Matrix4 {
	ps.Defaults()
	m := math32.Matrix4{}
	m.SetTransform(ps.Pos, ps.Quat, ps.Scale)
	return m
}

// SetEulerRotation sets the rotation from Euler angles in degrees.
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor))
}

// SetAxisRotation sets the rotation from an axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// LookAt points this pose at the given target location with the given
// up direction.
func (ps *Pose) LookAt(target, up math32.Vector3) {
	m := math32.NewLookAt(ps.Pos, target, up)
	ps.Quat.SetFromRotationMatrix(&m)
}

// TransformState is the user-settable transform applied to the viewer
// content as a whole, composed from three independently settable
// components. The composition order is fixed: scale and translation
// are applied first, then rotation. Changing this order changes the
// visual result, so [TransformState.Matrix] must be the only place the
// composition happens.
type TransformState struct {
	// Scale is the per-axis scale factor.
	Scale math32.Vector3

	// Translation is the offset applied after scaling.
	Translation math32.Vector3

	// Rotation is applied last, after scale and translation.
	Rotation math32.Quat
}

// Defaults sets unit scale and identity rotation if the current values
// are nil (i.e., zero-valued).
func (ts *TransformState) Defaults() {
	if ts.Scale.IsNil() {
		ts.Scale.Set(1, 1, 1)
	}
	if ts.Rotation.IsNil() {
		ts.Rotation.SetIdentity()
	}
}

// Matrix returns the composed transform: R * T * S, applying scale,
// then translation, then rotation.
func (ts *TransformState) Matrix() math32.Matrix4 {
	ts.Defaults()
	s := math32.NewScale(ts.Scale)
	t := math32.NewTranslation(ts.Translation)
	r := math32.NewRotation(ts.Rotation)
	return r.Mul(t.Mul(s))
}
