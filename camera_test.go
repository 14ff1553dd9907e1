// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"testing"

	"cogentcore.org/sceneview/math32"
	"github.com/stretchr/testify/assert"
)

func TestCameraStateDefaults(t *testing.T) {
	var cs CameraState
	cs.Defaults()
	assert.Equal(t, math32.Vec3(0, 0, 3), cs.Position)
	assert.True(t, cs.Rotation.IsIdentity())
	assert.IsType(t, &PerspectiveCamera{}, cs.Projection)

	pc := cs.Projection.(*PerspectiveCamera)
	assert.Equal(t, float32(60), pc.FOV)
}

func TestViewTransform(t *testing.T) {
	var cs CameraState
	cs.Defaults()

	// identity rotation: the transform is a pure translation by
	// position + content center
	m := cs.ViewTransform(math32.Vec3(1, 0, 0))
	assert.Equal(t, math32.Vec3(1, 0, 3), m.Pos())

	// the camera node sits at position + center regardless of rotation
	cs.Position = math32.Vec3(0, 0, 2)
	cs.Rotation.SetFromAxisAngle(math32.Vec3(0, 1, 0), math32.Pi/2)
	m = cs.ViewTransform(math32.Vec3(1, 0, 0))
	p := m.Pos()
	assert.InDelta(t, 1, p.X, 1e-6)
	assert.InDelta(t, 0, p.Y, 1e-6)
	assert.InDelta(t, 2, p.Z, 1e-6)
}

func TestViewTransformFacesCenter(t *testing.T) {
	var cs CameraState
	cs.Defaults()
	cs.Position = math32.Vec3(3, 0, 0)
	cs.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))

	m := cs.ViewTransform(math32.Vector3{})
	// the full matrix maps the local origin to the eye position
	assert.InDelta(t, 3, m.Pos().X, 1e-5)
	assert.InDelta(t, 0, m.Pos().Y, 1e-5)
	assert.InDelta(t, 0, m.Pos().Z, 1e-5)
	// the forward axis (-Z column) points from the eye to the center
	forward := math32.Vec3(-m[8], -m[9], -m[10]).Normal()
	toCenter := math32.Vector3{}.Sub(m.Pos()).Normal()
	assert.InDelta(t, 1, forward.Dot(toCenter), 1e-5)
}

func TestProjectionPureFunctionOfSize(t *testing.T) {
	var cs CameraState
	cs.Defaults()

	a := cs.ProjectionMatrix(math32.Vec2(800, 600))
	b := cs.ProjectionMatrix(math32.Vec2(800, 600))
	assert.Equal(t, a, b)

	c := cs.ProjectionMatrix(math32.Vec2(600, 800))
	assert.NotEqual(t, a, c)
}

func TestOrthographicCamera(t *testing.T) {
	oc := NewOrthographicCamera()
	m := oc.ProjectionMatrix(math32.Vec2(400, 200))
	// half-height 1 with 2:1 aspect: x maps by 1/2, y by 1
	assert.InDelta(t, 0.5, m[0], 1e-6)
	assert.InDelta(t, 1, m[5], 1e-6)

	// degenerate size falls back to square aspect
	m = oc.ProjectionMatrix(math32.Vector2{})
	assert.InDelta(t, 1, m[0], 1e-6)
}

func TestCustomCamera(t *testing.T) {
	cc := &CustomCamera{}
	assert.Equal(t, math32.Identity4(), cc.ProjectionMatrix(math32.Vec2(100, 100)))

	cc.Projection = func(size math32.Vector2) math32.Matrix4 {
		return math32.NewScale(math32.Vec3(size.X, size.Y, 1))
	}
	m := cc.ProjectionMatrix(math32.Vec2(2, 4))
	assert.Equal(t, float32(2), m[0])
	assert.Equal(t, float32(4), m[5])
}

func TestLookAt(t *testing.T) {
	var cs CameraState
	cs.Defaults()
	cs.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	// looking down -Z from +Z is the identity orientation
	assert.True(t, cs.Rotation.IsIdentity())
}
