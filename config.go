// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"image"
	"image/color"

	"cogentcore.org/sceneview/rescache"
)

// Config is the immutable configuration a [Viewer] is created with.
// The With* methods return modified copies, so a base config can be
// shared and specialized per viewer.
type Config struct {
	// Renderer is the live renderer used by [Viewer.Snapshot]; nil when
	// the embedding application drives rendering itself.
	Renderer Renderer

	// Offscreen makes a new independent renderer instance for
	// [Viewer.RenderOffscreen]; nil disables offscreen rendering.
	Offscreen func() Renderer

	// RunOnMain marshals a function onto the application's main
	// context, where load callbacks and content installs are delivered.
	// When nil, delivery is inline on the completing goroutine.
	RunOnMain func(f func())

	// Settings are the orbit and render quality settings.
	Settings Settings

	// Scenes is the async scene cache to use; nil means the viewer
	// creates its own. Supply a shared instance to deduplicate loads
	// across viewers.
	Scenes *rescache.AsyncCache[string, *Group]

	// Images is the image cache to use; nil means the viewer creates
	// its own.
	Images *rescache.Cache[string, image.Image]

	// Background overrides the default scene clear color when its
	// alpha is nonzero.
	Background color.RGBA
}

// NewConfig returns a [Config] with default settings.
func NewConfig() Config {
	return Config{Settings: DefaultSettings()}
}

// WithRenderer returns a copy with the live renderer set.
func (c Config) WithRenderer(r Renderer) Config {
	c.Renderer = r
	return c
}

// WithOffscreen returns a copy with the offscreen renderer factory set.
func (c Config) WithOffscreen(f func() Renderer) Config {
	c.Offscreen = f
	return c
}

// WithRunOnMain returns a copy with the main context runner set.
func (c Config) WithRunOnMain(run func(f func())) Config {
	c.RunOnMain = run
	return c
}

// WithSettings returns a copy with the given settings.
func (c Config) WithSettings(st Settings) Config {
	c.Settings = st
	return c
}

// WithScenes returns a copy sharing the given scene cache.
func (c Config) WithScenes(sc *rescache.AsyncCache[string, *Group]) Config {
	c.Scenes = sc
	return c
}

// WithImages returns a copy sharing the given image cache.
func (c Config) WithImages(ic *rescache.Cache[string, image.Image]) Config {
	c.Images = ic
	return c
}

// WithBackground returns a copy with the given scene clear color.
func (c Config) WithBackground(bg color.RGBA) Config {
	c.Background = bg
	return c
}
