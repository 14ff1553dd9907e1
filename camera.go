// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import "cogentcore.org/sceneview/math32"

// Camera computes a projection matrix from the current viewport size.
// The projection is a pure function of the camera parameters and the
// size, with no other state.
type Camera interface {
	// ProjectionMatrix returns the projection matrix for the given
	// viewport size in pixels.
	ProjectionMatrix(size math32.Vector2) math32.Matrix4
}

// PerspectiveCamera is a perspective projection [Camera]. The aspect
// ratio is derived from the viewport size.
type PerspectiveCamera struct {
	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32
}

// NewPerspectiveCamera returns a new [PerspectiveCamera] with default
// parameters (60 degree field of view, near 0.01, far 1000).
func NewPerspectiveCamera() *PerspectiveCamera {
	return &PerspectiveCamera{FOV: 60, Near: 0.01, Far: 1000}
}

func (pc *PerspectiveCamera) ProjectionMatrix(size math32.Vector2) math32.Matrix4 {
	aspect := float32(1)
	if size.X > 0 && size.Y > 0 {
		aspect = size.X / size.Y
	}
	m := math32.Matrix4{}
	m.SetPerspective(pc.FOV, aspect, pc.Near, pc.Far)
	return m
}

// OrthographicCamera is an orthographic projection [Camera]. The view
// volume width is derived from the viewport aspect ratio.
type OrthographicCamera struct {
	// HalfHeight is half the height of the view volume.
	HalfHeight float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32
}

// NewOrthographicCamera returns a new [OrthographicCamera] with default
// parameters (half-height 1, near 0.01, far 1000).
func NewOrthographicCamera() *OrthographicCamera {
	return &OrthographicCamera{HalfHeight: 1, Near: 0.01, Far: 1000}
}

func (oc *OrthographicCamera) ProjectionMatrix(size math32.Vector2) math32.Matrix4 {
	aspect := float32(1)
	if size.X > 0 && size.Y > 0 {
		aspect = size.X / size.Y
	}
	height := 2 * oc.HalfHeight
	m := math32.Matrix4{}
	m.SetOrthographic(aspect*height, height, oc.Near, oc.Far)
	return m
}

// CustomCamera is a [Camera] with a caller-supplied projection function,
// for projections beyond the standard perspective and orthographic ones.
type CustomCamera struct {
	// Projection returns the projection matrix for a viewport size.
	Projection func(size math32.Vector2) math32.Matrix4
}

func (cc *CustomCamera) ProjectionMatrix(size math32.Vector2) math32.Matrix4 {
	if cc.Projection == nil {
		return math32.Identity4()
	}
	return cc.Projection(size)
}

// CameraState is the full camera specification: where the camera is,
// how it is oriented, and its projection policy.
type CameraState struct {
	// Position is the camera position in world coordinates.
	Position math32.Vector3

	// Rotation is the camera orientation.
	Rotation math32.Quat

	// Projection is the projection policy; nil defaults to a
	// standard perspective camera.
	Projection Camera
}

// Defaults sets a default perspective projection, identity rotation,
// and a position backed off from the origin on +Z.
func (cs *CameraState) Defaults() {
	if cs.Projection == nil {
		cs.Projection = NewPerspectiveCamera()
	}
	if cs.Rotation.IsNil() {
		cs.Rotation.SetIdentity()
	}
	if cs.Position.IsNil() {
		cs.Position.Set(0, 0, 3)
	}
}

// LookAt orients the camera from its current position toward the given
// target with the given up direction.
func (cs *CameraState) LookAt(target, up math32.Vector3) {
	m := math32.NewLookAt(cs.Position, target, up)
	cs.Rotation.SetFromRotationMatrix(&m)
}

// ViewTransform returns the camera node transform: the rotation, then a
// translation placing the camera at its position offset by the given
// content center. The external renderer inverts this to obtain its view
// matrix.
func (cs *CameraState) ViewTransform(contentCenter math32.Vector3) math32.Matrix4 {
	t := math32.NewTranslation(cs.Position.Add(contentCenter))
	r := math32.NewRotation(cs.Rotation)
	return t.Mul(r)
}

// ProjectionMatrix returns the projection matrix for the given viewport
// size, from the camera's projection policy.
func (cs *CameraState) ProjectionMatrix(size math32.Vector2) math32.Matrix4 {
	if cs.Projection == nil {
		cs.Projection = NewPerspectiveCamera()
	}
	return cs.Projection.ProjectionMatrix(size)
}
