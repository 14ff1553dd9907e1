// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"testing"

	"cogentcore.org/sceneview/math32"
	"github.com/stretchr/testify/assert"
)

func orbitSettings() Settings {
	st := DefaultSettings()
	st.MinZoom = 1
	st.MaxZoom = 10
	return st
}

func TestOrbitDistanceClamp(t *testing.T) {
	oc := NewOrbitControls(orbitSettings())
	var cam CameraState
	cam.Defaults()

	// out-of-range distance is clamped on the first tick
	oc.Distance = 50
	oc.Tick(&cam)
	assert.Equal(t, float32(10), oc.Distance)

	oc.Distance = 0.25
	oc.Tick(&cam)
	assert.Equal(t, float32(1), oc.Distance)
}

func TestOrbitVelocityDecay(t *testing.T) {
	st := orbitSettings()
	st.Friction = 0.1
	oc := NewOrbitControls(st)
	var cam CameraState
	cam.Defaults()

	oc.State = OrbitAnimating
	oc.VelocityPan = math32.Vec2(10, 0)
	oc.Tick(&cam)
	assert.InDelta(t, 9, oc.VelocityPan.X, 1e-5)
	oc.Tick(&cam)
	assert.InDelta(t, 8.1, oc.VelocityPan.X, 1e-5)
}

func TestOrbitDecayTerminates(t *testing.T) {
	st := orbitSettings()
	st.Friction = 0.9
	oc := NewOrbitControls(st)
	var cam CameraState
	cam.Defaults()

	oc.State = OrbitAnimating
	oc.VelocityPan = math32.Vec2(2e-4, 0)
	assert.True(t, oc.Tick(&cam))
	assert.Equal(t, OrbitAnimating, oc.State)

	// 2e-5 is below epsilon: animation self-terminates
	assert.False(t, oc.Tick(&cam))
	assert.Equal(t, OrbitIdle, oc.State)
	assert.False(t, oc.ShouldTick())
}

func TestOrbitDragGesture(t *testing.T) {
	st := orbitSettings()
	st.Sensitivity = 0.01
	oc := NewOrbitControls(st)

	oc.DragStart(math32.Vec2(100, 100))
	assert.Equal(t, OrbitDragging, oc.State)
	oc.DragChange(math32.Vec2(90, 100))
	assert.InDelta(t, 0.1, oc.VelocityPan.X, 1e-6)
	oc.DragEnd(math32.Vec2(90, 100))
	assert.Equal(t, OrbitAnimating, oc.State)
	assert.True(t, oc.ShouldTick())
}

func TestOrbitPinchDisabled(t *testing.T) {
	st := orbitSettings()
	st.ZoomEnabled = false
	oc := NewOrbitControls(st)

	oc.PinchStart(1)
	oc.PinchChange(0.5)
	oc.PinchEnd(0.5)
	assert.Equal(t, OrbitIdle, oc.State)
	assert.Equal(t, float32(0), oc.VelocityZoom)
}

func TestOrbitCameraPlacement(t *testing.T) {
	oc := NewOrbitControls(orbitSettings())
	var cam CameraState
	cam.Defaults()

	// yaw 0, pitch 0: camera sits on +Z at the orbit distance
	oc.Tick(&cam)
	assert.InDelta(t, 0, cam.Position.X, 1e-5)
	assert.InDelta(t, 0, cam.Position.Y, 1e-5)
	assert.InDelta(t, 3, cam.Position.Z, 1e-5)

	// yaw pi/2: camera moves to +X, still looking at the center
	oc.Yaw = math32.Pi / 2
	oc.MinYaw, oc.MaxYaw = -math32.Pi, math32.Pi
	oc.Tick(&cam)
	assert.InDelta(t, 3, cam.Position.X, 1e-5)
	assert.InDelta(t, 0, cam.Position.Z, 1e-5)
}

func TestOrbitPitchClamp(t *testing.T) {
	oc := NewOrbitControls(orbitSettings())
	var cam CameraState
	cam.Defaults()

	oc.VelocityPan = math32.Vec2(0, 10)
	oc.State = OrbitDragging
	oc.Tick(&cam)
	assert.Equal(t, math32.Pi/2, oc.Pitch)
}

type fakeRotation struct {
	val math32.Vector2
	set []math32.Vector2
}

func (fr *fakeRotation) Rotation() math32.Vector2 { return fr.val }

func (fr *fakeRotation) SetRotation(yp math32.Vector2) { fr.set = append(fr.set, yp) }

type fakeZoom struct {
	val float32
	set []float32
}

func (fz *fakeZoom) Zoom() float32 { return fz.val }

func (fz *fakeZoom) SetZoom(d float32) { fz.set = append(fz.set, d) }

func TestOrbitExternalBindings(t *testing.T) {
	oc := NewOrbitControls(orbitSettings())
	var cam CameraState
	cam.Defaults()

	rot := &fakeRotation{val: math32.Vec2(0.5, 0.25)}
	zoom := &fakeZoom{val: 42}
	oc.ExternalRotation = rot
	oc.ExternalZoom = zoom

	// external bindings force ticking even when idle
	assert.True(t, oc.ShouldTick())

	oc.Tick(&cam)
	assert.Equal(t, float32(0.5), oc.Yaw)
	assert.Equal(t, float32(0.25), oc.Pitch)
	// external zoom bypasses integration but is still clamped
	assert.Equal(t, float32(10), oc.Distance)

	// the resolved values are pushed back out
	assert.Equal(t, []math32.Vector2{math32.Vec2(0.5, 0.25)}, rot.set)
	assert.Equal(t, []float32{10}, zoom.set)
}
