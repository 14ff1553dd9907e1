// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"context"
	"fmt"
	"image"
	"slices"
	"sync"

	"cogentcore.org/sceneview/math32"
	"cogentcore.org/sceneview/rescache"
)

// LoadResult is the signal delivered to load callbacks registered with
// [Viewer.OnLoad].
type LoadResult int32

const (
	// LoadSuccess means the scene was loaded and installed.
	LoadSuccess LoadResult = iota

	// LoadFailure means the scene could not be loaded; the previously
	// displayed content, if any, is retained unchanged.
	LoadFailure
)

func (lr LoadResult) String() string {
	if lr == LoadSuccess {
		return "Success"
	}
	return "Failure"
}

// LoadStates are the states of the viewer's load pipeline for the
// current [SceneSource].
type LoadStates int32

const (
	// LoadIdle means no source has been assigned.
	LoadIdle LoadStates = iota

	// LoadLoading means the current source is being produced.
	LoadLoading

	// LoadReady means the current source is loaded and installed.
	LoadReady

	// LoadFailed means the current source failed to load.
	LoadFailed
)

func (ls LoadStates) String() string {
	switch ls {
	case LoadIdle:
		return "Idle"
	case LoadLoading:
		return "Loading"
	case LoadReady:
		return "Ready"
	}
	return "Failed"
}

// Normalization is derived once per successfully loaded scene from its
// bounding box, and fits the content into a roughly unit-sized view.
type Normalization struct {
	// Scale is the uniform scale factor: 2 / (maxDimension * 1.1),
	// with the max dimension floored to 1 for degenerate geometry.
	Scale float32

	// Center is the bounding box center in scaled coordinates.
	Center math32.Vector3
}

// NormalizationFromBBox derives the content normalization from the
// given bounding box. Degenerate (zero-size or empty) boxes are handled
// by flooring the max dimension to 1, never by failing.
func NormalizationFromBBox(b math32.Box3) Normalization {
	var size math32.Vector3
	if !b.IsEmpty() {
		size = b.Size()
	}
	maxDim := math32.Max(size.X, math32.Max(size.Y, size.Z))
	if maxDim == 0 {
		maxDim = 1
	}
	scale := 2 / (maxDim * 1.1)
	n := Normalization{Scale: scale}
	if !b.IsEmpty() {
		n.Center = b.Min.Lerp(b.Max, 0.5).MulScalar(scale)
	}
	return n
}

// Viewer is the 3D model viewer core. It owns the [Scene] render graph,
// resolves assigned [SceneSource] values through the shared caches,
// normalizes and installs loaded content, and recomputes the content
// and camera transforms once per render tick.
//
// State mutation (SetSource, SetTransform, camera changes) happens on
// the application's main context; [Viewer.RenderSync] may be called
// from a renderer-owned goroutine and takes consistent snapshots.
type Viewer struct {
	// Scene is the render graph handed to the external renderer.
	Scene *Scene

	// Orbit is the interactive orbit controller for the scene camera.
	Orbit *OrbitControls

	// Config is the finalized configuration snapshot this viewer was
	// created with.
	Config Config

	// Scenes is the async cache of parsed scene graphs, keyed by URL.
	// Shared across viewers when supplied through [Config.Scenes].
	Scenes *rescache.AsyncCache[string, *Group]

	// Images is the cache of decoded images, keyed by URL. Shared
	// across viewers when supplied through [Config.Images].
	Images *rescache.Cache[string, image.Image]

	mu        sync.Mutex
	source    SceneSource
	state     LoadStates
	loadSeq   uint64
	norm      Normalization
	transform TransformState
	callbacks []func(LoadResult)
	viewSize  math32.Vector2
}

// NewViewer returns a new [Viewer] with the given configuration.
func NewViewer(cfg Config) *Viewer {
	v := &Viewer{Config: cfg}
	v.Scene = NewScene()
	if cfg.Background.A != 0 {
		v.Scene.Background = cfg.Background
	}
	v.Scenes = cfg.Scenes
	if v.Scenes == nil {
		v.Scenes = &rescache.AsyncCache[string, *Group]{}
	}
	v.Images = cfg.Images
	if v.Images == nil {
		v.Images = &rescache.Cache[string, image.Image]{}
	}
	v.Orbit = NewOrbitControls(cfg.Settings)
	v.transform.Defaults()
	v.norm = Normalization{Scale: 1}
	return v
}

// run marshals the given function onto the configured main context.
func (v *Viewer) run(f func()) {
	if v.Config.RunOnMain != nil {
		v.Config.RunOnMain(f)
		return
	}
	f()
}

// OnLoad registers a callback invoked with the result of every load,
// on the configured main context.
func (v *Viewer) OnLoad(fn func(LoadResult)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.callbacks = append(v.callbacks, fn)
}

// State returns the current load pipeline state.
func (v *Viewer) State() LoadStates {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// LoadError returns [ErrUnableToLoad] if the current source failed to
// load, and nil otherwise. Raw loader errors are not propagated; their
// detail is diagnostic-logged only.
func (v *Viewer) LoadError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == LoadFailed {
		return ErrUnableToLoad
	}
	return nil
}

// Source returns the currently assigned scene source.
func (v *Viewer) Source() SceneSource {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.source
}

// Normalization returns the content normalization derived from the
// currently installed scene.
func (v *Viewer) Normalization() Normalization {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.norm
}

// SetTransform sets the user content transform.
func (v *Viewer) SetTransform(ts TransformState) {
	ts.Defaults()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.transform = ts
}

// Transform returns the current user content transform.
func (v *Viewer) Transform() TransformState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.transform
}

// SetCameraState sets the scene camera.
func (v *Viewer) SetCameraState(cs CameraState) {
	cs.Defaults()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Scene.Camera = cs
}

// CameraState returns the current scene camera.
func (v *Viewer) CameraState() CameraState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Scene.Camera
}

// SetSource assigns the scene source to display. Assigning a source
// equal to the current one (per [SceneSource.Equal]) is a no-op.
// Otherwise the load pipeline transitions to Loading: URL sources are
// resolved through the async scene cache on a worker goroutine, with at
// most one production per URL process-wide; reference sources install
// immediately. On completion, load callbacks are invoked on the main
// context with [LoadSuccess] or [LoadFailure]. On failure the
// previously installed content is retained unchanged. Assigning the
// zero source returns to Idle without touching the content.
func (v *Viewer) SetSource(src SceneSource) {
	v.mu.Lock()
	if src.Equal(v.source) {
		v.mu.Unlock()
		return
	}
	v.source = src
	v.loadSeq++
	seq := v.loadSeq
	if src.IsZero() {
		// clearing the source cancels any in-flight install and
		// returns to idle, keeping the current content visible
		v.state = LoadIdle
		v.mu.Unlock()
		return
	}
	v.state = LoadLoading
	v.mu.Unlock()

	if ref, ok := src.Ref(); ok {
		v.install(seq, ref)
		return
	}
	url, _ := src.URL()
	if url == "" {
		v.fail(seq, fmt.Errorf("sceneview.Viewer.SetSource: empty URL"))
		return
	}
	entry := v.Scenes.Start(url, func(_ context.Context, u string) (*Group, error) {
		return DecodeFile(u)
	})
	go func() {
		gp, err := entry.Await(context.Background())
		v.run(func() {
			if err != nil {
				v.fail(seq, err)
				return
			}
			v.install(seq, gp)
		})
	}()
}

// Reload invalidates the cached entry for the current source, if it is
// a URL, and loads it again. Used by [Watcher] when the underlying file
// changes; a no-op when no source is assigned.
func (v *Viewer) Reload() {
	v.mu.Lock()
	src := v.source
	v.source = SceneSource{}
	v.mu.Unlock()
	if src.IsZero() {
		return
	}
	if url, ok := src.URL(); ok {
		v.Scenes.Remove(url)
	}
	v.SetSource(src)
}

// install clones the given source graph, deep-copying shared material
// and mesh payloads, derives the content normalization from the clone's
// bounding box, and replaces the content node's children with the
// clone. Runs on the main context.
func (v *Viewer) install(seq uint64, src *Group) {
	v.mu.Lock()
	if seq != v.loadSeq { // superseded by a newer assignment
		v.mu.Unlock()
		return
	}
	clone := src.Clone().(*Group)
	v.norm = NormalizationFromBBox(BBox(clone))
	v.Scene.Content.ClearChildren()
	v.Scene.Content.AddChild(clone)
	v.state = LoadReady
	cbs := slices.Clone(v.callbacks)
	v.mu.Unlock()

	for _, cb := range cbs {
		cb(LoadSuccess)
	}
}

// fail records a load failure and delivers it to the callbacks. The
// content node is deliberately left unchanged so the last good frame
// stays visible.
func (v *Viewer) fail(seq uint64, err error) {
	logDebug("sceneview: load failed", "err", err)
	v.mu.Lock()
	if seq != v.loadSeq {
		v.mu.Unlock()
		return
	}
	v.state = LoadFailed
	cbs := slices.Clone(v.callbacks)
	v.mu.Unlock()

	for _, cb := range cbs {
		cb(LoadFailure)
	}
}
