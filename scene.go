// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"fmt"
	"image/color"

	"cogentcore.org/sceneview/math32"
)

// Scene is the render graph handed to the external [Renderer] for
// drawing: the persistent content node under which loaded models are
// installed, the camera, and the environment. The per-tick matrices
// are recomputed by [Viewer.RenderSync] before every draw.
//
// The content node and camera are exclusively owned and mutated by the
// viewer's load pipeline and render sync; external mutation concurrent
// with a tick is not permitted.
type Scene struct {
	// Content is the persistent node under which the currently
	// loaded, normalized scene graph is installed.
	Content *Group

	// Camera is the current camera state.
	Camera CameraState

	// Environment holds the image-based lighting and background.
	Environment Environment

	// Background is the clear color used when no background image is set.
	Background color.RGBA

	// Library holds reusable groups by name, for [SourceRef] content
	// that is instantiated multiple times.
	Library map[string]*Group

	// SavedCams are named camera bookmarks; see [Scene.SaveCamera].
	SavedCams map[string]CameraState

	// ContentMatrix is the content node transform computed by the
	// last render sync: normalization scale composed with the user
	// transform.
	ContentMatrix math32.Matrix4

	// CameraMatrix is the camera node transform computed by the last
	// render sync. The renderer inverts it for its view matrix.
	CameraMatrix math32.Matrix4

	// ProjectionMatrix is the camera projection computed by the last
	// render sync for the current viewport size.
	ProjectionMatrix math32.Matrix4
}

// NewScene returns a new [Scene] with an empty content node and
// default camera.
func NewScene() *Scene {
	sc := &Scene{}
	sc.Content = NewGroup("content")
	sc.Camera.Defaults()
	sc.Background = color.RGBA{0, 0, 0, 255}
	sc.ContentMatrix.SetIdentity()
	sc.CameraMatrix.SetIdentity()
	sc.ProjectionMatrix.SetIdentity()
	return sc
}

// AddToLibrary adds the given group to the library, using the group's
// name as its unique key.
func (sc *Scene) AddToLibrary(gp *Group) {
	if sc.Library == nil {
		sc.Library = make(map[string]*Group)
	}
	sc.Library[gp.Name] = gp
}

// NewInLibrary makes a new group in the library under the given name.
func (sc *Scene) NewInLibrary(name string) *Group {
	gp := NewGroup(name)
	sc.AddToLibrary(gp)
	return gp
}

// AddFromLibrary adds a clone of the named library item under the given
// parent in the scene graph. Returns an error if the item is not found.
func (sc *Scene) AddFromLibrary(name string, parent Node) (*Group, error) {
	gp, ok := sc.Library[name]
	if !ok {
		return nil, fmt.Errorf("sceneview.Scene.AddFromLibrary: item %q not found", name)
	}
	ngp := gp.Clone().(*Group)
	parent.AsNodeBase().AddChild(ngp)
	return ngp, nil
}

// SaveCamera saves the current camera under the given name, to be
// restored later with [Scene.SetCamera].
func (sc *Scene) SaveCamera(name string) {
	if sc.SavedCams == nil {
		sc.SavedCams = make(map[string]CameraState)
	}
	sc.SavedCams[name] = sc.Camera
}

// SetCamera sets the current camera to the saved camera of the given
// name, returning an error if it is not found.
func (sc *Scene) SetCamera(name string) error {
	cam, ok := sc.SavedCams[name]
	if !ok {
		return fmt.Errorf("sceneview.Scene.SetCamera: saved camera %q not found", name)
	}
	sc.Camera = cam
	return nil
}
