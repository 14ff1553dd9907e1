// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"image"
	"testing"

	"cogentcore.org/sceneview/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRenderer records the sizes it is asked to render at and returns
// blank frames.
type stubRenderer struct {
	sizes []image.Point
}

func (sr *stubRenderer) Render(sc *Scene, size image.Point) (*image.RGBA, error) {
	sr.sizes = append(sr.sizes, size)
	return image.NewRGBA(image.Rectangle{Max: size}), nil
}

func TestRenderSync(t *testing.T) {
	v := NewViewer(NewConfig())
	v.RenderSync(math32.Vec2(800, 600))

	// identity transform and unit normalization: identity content matrix
	assert.True(t, v.Scene.ContentMatrix.IsIdentity())
	assert.Equal(t, v.Scene.Camera.ProjectionMatrix(math32.Vec2(800, 600)), v.Scene.ProjectionMatrix)
	// default camera at (0, 0, 3) with zero content center
	assert.Equal(t, math32.Vec3(0, 0, 3), v.Scene.CameraMatrix.Pos())
}

func TestRenderSyncContentMatrix(t *testing.T) {
	v, results := newTestViewer(t)
	gp := NewGroup("mem")
	gp.AddChild(NewSolid("box", boxMesh("box", 4)))
	v.SetSource(SourceRef(gp))
	awaitLoad(t, results)

	ts := v.Transform()
	ts.Translation = math32.Vec3(1, 0, 0)
	v.SetTransform(ts)

	v.RenderSync(math32.Vec2(800, 600))
	m := v.Scene.ContentMatrix
	// normalization scale on the diagonal, user translation on top
	assert.InDelta(t, 2.0/8.8, m[0], 1e-6)
	assert.InDelta(t, 2.0/8.8, m[5], 1e-6)
	assert.Equal(t, math32.Vec3(1, 0, 0), m.Pos())
}

func TestTickCameraFacesContentCenter(t *testing.T) {
	v, results := newTestViewer(t)
	gp := NewGroup("mem")
	sld := NewSolid("box", boxMesh("box", 1))
	sld.Pose.Pos = math32.Vec3(2, 0, 0) // off-center content
	gp.AddChild(sld)
	v.SetSource(SourceRef(gp))
	awaitLoad(t, results)

	center := v.Normalization().Center
	require.NotEqual(t, math32.Vector3{}, center)

	v.Orbit.Yaw = 0.8
	v.Orbit.Pitch = 0.3
	v.Orbit.State = OrbitDragging
	v.Tick(math32.Vec2(800, 600))

	// the camera node sits at its position offset by the content
	// center, with its forward axis (-Z) pointing back at that center
	m := v.Scene.CameraMatrix
	camPos := m.Pos()
	wantPos := v.CameraState().Position.Add(center)
	assert.InDelta(t, wantPos.X, camPos.X, 1e-5)
	assert.InDelta(t, wantPos.Y, camPos.Y, 1e-5)
	assert.InDelta(t, wantPos.Z, camPos.Z, 1e-5)

	forward := math32.Vec3(-m[8], -m[9], -m[10]).Normal()
	toCenter := center.Sub(camPos).Normal()
	assert.InDelta(t, 1, forward.Dot(toCenter), 1e-4)
}

func TestTickRunsOrbit(t *testing.T) {
	v := NewViewer(NewConfig())
	v.Orbit.Distance = 50
	v.Orbit.State = OrbitAnimating
	v.Orbit.VelocityZoom = 1

	v.Tick(math32.Vec2(640, 480))
	// orbit clamps distance to the zoom bounds and places the camera
	assert.Equal(t, v.Orbit.MaxZoom, v.Orbit.Distance)
	assert.InDelta(t, v.Orbit.MaxZoom, v.CameraState().Position.Z, 1e-4)
}

func TestSnapshot(t *testing.T) {
	v := NewViewer(NewConfig())
	_, err := v.Snapshot()
	require.Error(t, err)

	sr := &stubRenderer{}
	v = NewViewer(NewConfig().WithRenderer(sr))
	_, err = v.Snapshot()
	require.Error(t, err) // no live view size yet

	v.Tick(math32.Vec2(640, 480))
	img, err := v.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, image.Pt(640, 480), img.Bounds().Size())
}

func TestRenderOffscreen(t *testing.T) {
	v := NewViewer(NewConfig())
	_, err := v.RenderOffscreen(image.Pt(100, 80), AANone, nil)
	require.Error(t, err)

	sr := &stubRenderer{}
	v = NewViewer(NewConfig().WithOffscreen(func() Renderer { return sr }))

	img, err := v.RenderOffscreen(image.Pt(100, 80), AANone, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(100, 80), img.Bounds().Size())
	assert.Equal(t, image.Pt(100, 80), sr.sizes[0])

	// antialiasing supersamples and downsamples back
	img, err = v.RenderOffscreen(image.Pt(100, 80), AAMedium, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(100, 80), img.Bounds().Size())
	assert.Equal(t, image.Pt(300, 240), sr.sizes[1])
}

func TestRenderOffscreenCameraOverride(t *testing.T) {
	var got math32.Vector3
	rec := renderFunc(func(sc *Scene, size image.Point) (*image.RGBA, error) {
		got = sc.Camera.Position
		return image.NewRGBA(image.Rectangle{Max: size}), nil
	})
	v := NewViewer(NewConfig().WithOffscreen(func() Renderer { return rec }))

	cam := CameraState{Position: math32.Vec3(0, 5, 5)}
	_, err := v.RenderOffscreen(image.Pt(10, 10), AANone, &cam)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(0, 5, 5), got)
	// the live camera is untouched
	assert.Equal(t, math32.Vec3(0, 0, 3), v.CameraState().Position)
}

// renderFunc adapts a function to the [Renderer] interface.
type renderFunc func(sc *Scene, size image.Point) (*image.RGBA, error)

func (rf renderFunc) Render(sc *Scene, size image.Point) (*image.RGBA, error) {
	return rf(sc, size)
}
