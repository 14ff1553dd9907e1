// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

type sourceKinds int32

const (
	sourceNone sourceKinds = iota
	sourceURL
	sourceRef
)

// SceneSource identifies where viewer content comes from: either a URL
// (typically a file path) to be loaded and cached, or a reference to an
// in-memory scene graph. The zero value is "no source".
//
// SceneSource equality drives change detection in [Viewer.SetSource]:
// the pipeline only reloads when the assigned source differs from the
// current one.
type SceneSource struct {
	url  string
	ref  *Group
	kind sourceKinds
}

// SourceURL returns a [SceneSource] for the given URL. An empty URL is
// a valid source that always fails to load.
func SourceURL(url string) SceneSource {
	return SceneSource{url: url, kind: sourceURL}
}

// SourceRef returns a [SceneSource] for the given in-memory scene graph.
func SourceRef(ref *Group) SceneSource {
	return SceneSource{ref: ref, kind: sourceRef}
}

// IsZero returns whether this is the zero "no source" value.
func (ss SceneSource) IsZero() bool {
	return ss.kind == sourceNone
}

// URL returns the URL and whether this is a URL source.
func (ss SceneSource) URL() (string, bool) {
	return ss.url, ss.kind == sourceURL
}

// Ref returns the scene reference and whether this is a reference source.
func (ss SceneSource) Ref() (*Group, bool) {
	return ss.ref, ss.kind == sourceRef
}

// Equal returns whether the two sources are the same: URL sources are
// equal iff their URLs are equal (including both empty); reference
// sources are equal iff they reference the identical group; sources of
// different kinds are never equal.
func (ss SceneSource) Equal(other SceneSource) bool {
	if ss.kind != other.kind {
		return false
	}
	switch ss.kind {
	case sourceURL:
		return ss.url == other.url
	case sourceRef:
		return ss.ref == other.ref
	}
	return true // both none
}
