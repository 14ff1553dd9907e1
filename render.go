// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"fmt"
	"image"

	"cogentcore.org/sceneview/math32"
	"github.com/anthonynsimon/bild/transform"
)

// Renderer is the external 3D engine that rasterizes a [Scene]. The
// viewer core populates the scene's content graph and per-tick matrices
// and hands it over; drawing and shading are entirely the renderer's.
type Renderer interface {
	// Render draws the scene at the given pixel size and returns the
	// resulting image.
	Render(sc *Scene, size image.Point) (*image.RGBA, error)
}

// AntialiasQuality selects the supersampling factor used by
// [Viewer.RenderOffscreen].
type AntialiasQuality int32

const (
	AANone AntialiasQuality = iota
	AALow
	AAMedium
	AAHigh
)

// factor returns the supersampling factor for this quality level.
func (aq AntialiasQuality) factor() int {
	switch aq {
	case AALow:
		return 2
	case AAMedium:
		return 3
	case AAHigh:
		return 4
	}
	return 1
}

// RenderSync recomputes the scene's content and camera matrices from
// the current state for the given viewport size. It is invoked once per
// render tick, before the renderer draws, and is purely a function of
// current state with no hidden accumulation:
//
//  1. content transform = normalization scale composed with the user
//     transform (scale applied first)
//  2. camera projection = projection matrix for the viewport size
//  3. camera transform = translation(position + content center), then
//     rotation
//
// It is safe to call from a renderer-owned goroutine: all state is read
// and written under the viewer's state mutex.
func (v *Viewer) RenderSync(viewport math32.Vector2) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.viewSize = viewport
	userMat := v.transform.Matrix()
	normScale := math32.NewScale(math32.Vector3Scalar(v.norm.Scale))
	v.Scene.ContentMatrix = userMat.Mul(normScale)
	v.Scene.ProjectionMatrix = v.Scene.Camera.ProjectionMatrix(viewport)
	v.Scene.CameraMatrix = v.Scene.Camera.ViewTransform(v.norm.Center)
}

// Tick advances the viewer by one render frame: it runs the orbit
// controls if they have work to do and then recomputes the scene
// matrices via [Viewer.RenderSync]. Call it from the external
// renderer's per-frame callback.
func (v *Viewer) Tick(viewport math32.Vector2) {
	if v.Orbit != nil && v.Orbit.ShouldTick() {
		v.mu.Lock()
		v.Orbit.Tick(&v.Scene.Camera)
		v.mu.Unlock()
	}
	v.RenderSync(viewport)
}

// Snapshot captures the current framebuffer contents at the live view
// size, using the configured live renderer.
func (v *Viewer) Snapshot() (*image.RGBA, error) {
	if v.Config.Renderer == nil {
		return nil, fmt.Errorf("sceneview.Viewer.Snapshot: no renderer configured")
	}
	v.mu.Lock()
	size := image.Pt(int(v.viewSize.X), int(v.viewSize.Y))
	v.mu.Unlock()
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("sceneview.Viewer.Snapshot: no live view size; call Tick or RenderSync first")
	}
	return v.Config.Renderer.Render(v.Scene, size)
}

// RenderOffscreen renders the scene at the given size with the given
// antialiasing quality, using a renderer instance from the configured
// offscreen factory, independent of the live view. A non-nil cam
// overrides the scene camera for this render only. Antialiasing
// supersamples by the quality factor and downsamples with a Gaussian
// filter.
func (v *Viewer) RenderOffscreen(size image.Point, quality AntialiasQuality, cam *CameraState) (*image.RGBA, error) {
	if v.Config.Offscreen == nil {
		return nil, fmt.Errorf("sceneview.Viewer.RenderOffscreen: no offscreen renderer factory configured")
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("sceneview.Viewer.RenderOffscreen: invalid size %v", size)
	}
	r := v.Config.Offscreen()

	v.mu.Lock()
	sc := *v.Scene
	norm, ts := v.norm, v.transform
	v.mu.Unlock()
	if cam != nil {
		sc.Camera = *cam
		sc.Camera.Defaults()
	}

	factor := quality.factor()
	ssz := image.Pt(size.X*factor, size.Y*factor)
	userMat := ts.Matrix()
	normScale := math32.NewScale(math32.Vector3Scalar(norm.Scale))
	sc.ContentMatrix = userMat.Mul(normScale)
	sc.ProjectionMatrix = sc.Camera.ProjectionMatrix(math32.Vec2(float32(ssz.X), float32(ssz.Y)))
	sc.CameraMatrix = sc.Camera.ViewTransform(norm.Center)

	img, err := r.Render(&sc, ssz)
	if err != nil {
		return nil, err
	}
	if factor > 1 {
		img = transform.Resize(img, size.X, size.Y, transform.Gaussian)
	}
	return img, nil
}
