// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	// formats for image.Decode, beyond the stdlib ones
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/h2non/filetype"
)

// IBL is the image-based lighting settings: an environment image used
// as the light source, with an intensity multiplier.
type IBL struct {
	// URL is the location of the environment image; empty disables IBL.
	URL string

	// Intensity is the lighting intensity multiplier; 1 is neutral.
	Intensity float32
}

// Environment holds the image-based lighting and background of a scene,
// as resolved textures ready for the external renderer.
type Environment struct {
	// IBL is the image-based lighting settings.
	IBL IBL

	// Lighting is the resolved IBL environment texture; nil when
	// IBL is disabled.
	Lighting *Texture

	// BackgroundURL is the location of the background / skybox image;
	// empty means the scene background color is used.
	BackgroundURL string

	// Background is the resolved background texture; nil when unset.
	Background *Texture
}

// openImage is the image cache producer: it reads and decodes the image
// file at the given path. Unrecognized data is sniffed with filetype to
// make the diagnostic log actionable.
func openImage(fname string) (image.Image, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		kind, _ := filetype.Match(data)
		logDebug("sceneview: image decode failed", "file", fname, "detected", kind.MIME.Value, "err", err)
		return nil, fmt.Errorf("sceneview.openImage: decoding %q: %w", fname, err)
	}
	return img, nil
}

// SetEnvironment sets the image-based lighting settings, loading the
// environment image through the image cache. A load failure is
// diagnostic-logged and leaves the previous lighting unchanged.
// The image is resolved before the state lock is taken, so a slow read
// or decode never stalls a concurrent render tick.
func (v *Viewer) SetEnvironment(ibl IBL) {
	tex, err := v.loadTexture(ibl.URL)
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Scene.Environment.IBL = ibl
	if ibl.URL == "" {
		v.Scene.Environment.Lighting = nil
		return
	}
	if logError(err) != nil {
		return
	}
	v.Scene.Environment.Lighting = tex
}

// SetBackground sets the background / skybox image URL, loading it
// through the image cache. An empty URL clears the background image.
// A load failure is diagnostic-logged and leaves the previous
// background unchanged. As with [Viewer.SetEnvironment], the image is
// resolved outside the state lock.
func (v *Viewer) SetBackground(url string) {
	tex, err := v.loadTexture(url)
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Scene.Environment.BackgroundURL = url
	if url == "" {
		v.Scene.Environment.Background = nil
		return
	}
	if logError(err) != nil {
		return
	}
	v.Scene.Environment.Background = tex
}

// loadTexture resolves a texture through the image cache. An empty URL
// returns nil with no error.
func (v *Viewer) loadTexture(url string) (*Texture, error) {
	if url == "" {
		return nil, nil
	}
	img, err := v.Images.Get(url, openImage)
	if err != nil {
		return nil, err
	}
	return &Texture{
		Name:  filepath.Base(url),
		URL:   url,
		Image: img,
	}, nil
}
