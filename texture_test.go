// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG writes a small PNG image and returns its path.
func writePNG(t *testing.T, name string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	f, err := os.Create(fname)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return fname
}

func TestSetBackground(t *testing.T) {
	v := NewViewer(NewConfig())
	fname := writePNG(t, "sky.png")

	v.SetBackground(fname)
	env := v.Scene.Environment
	require.NotNil(t, env.Background)
	assert.Equal(t, fname, env.Background.URL)
	assert.NotNil(t, env.Background.Image)
	assert.Equal(t, 1, v.Images.Len())

	// a failed load keeps the previous background
	v.SetBackground(filepath.Join(t.TempDir(), "missing.png"))
	assert.NotNil(t, v.Scene.Environment.Background)
	assert.Equal(t, fname, v.Scene.Environment.Background.URL)

	v.SetBackground("")
	assert.Nil(t, v.Scene.Environment.Background)
	assert.Equal(t, "", v.Scene.Environment.BackgroundURL)
}

func TestSetEnvironment(t *testing.T) {
	v := NewViewer(NewConfig())
	fname := writePNG(t, "studio.png")

	v.SetEnvironment(IBL{URL: fname, Intensity: 1.5})
	env := v.Scene.Environment
	require.NotNil(t, env.Lighting)
	assert.Equal(t, fname, env.Lighting.URL)
	assert.Equal(t, float32(1.5), env.IBL.Intensity)

	v.SetEnvironment(IBL{})
	assert.Nil(t, v.Scene.Environment.Lighting)
}

func TestSetEnvironmentFailure(t *testing.T) {
	v := NewViewer(NewConfig())
	fname := writePNG(t, "studio.png")
	v.SetEnvironment(IBL{URL: fname, Intensity: 1})

	// the settings update but the resolved texture is retained
	bad := filepath.Join(t.TempDir(), "missing.png")
	v.SetEnvironment(IBL{URL: bad, Intensity: 2})
	assert.Equal(t, bad, v.Scene.Environment.IBL.URL)
	require.NotNil(t, v.Scene.Environment.Lighting)
	assert.Equal(t, fname, v.Scene.Environment.Lighting.URL)
	// failures are not cached
	assert.Equal(t, 1, v.Images.Len())
}
