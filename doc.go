// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneview renders 3D models and scenes inside a GUI
// application. It provides the scene graph and camera abstractions, an
// interactive orbit controller, asynchronous single-flight loading and
// caching of scene files and images, and the per-frame synchronization
// of content and camera transforms. Rasterization itself is delegated
// to an external engine through the [Renderer] interface, and file
// format parsing is delegated to external loaders registered through
// the [Decoder] interface.
//
// The central type is [Viewer]: assign it a [SceneSource], register
// load callbacks with [Viewer.OnLoad], and call [Viewer.Tick] once per
// render frame from the renderer's frame callback.
package sceneview
