// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/sceneview"
	"cogentcore.org/sceneview/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTriangle writes a minimal single-triangle glTF file with an
// embedded buffer and returns its path.
func writeTriangle(t *testing.T) string {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, binary.Write(buf, binary.LittleEndian, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}))
	require.NoError(t, binary.Write(buf, binary.LittleEndian, []uint16{0, 1, 2}))
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	doc := fmt.Sprintf(`{
		"asset": {"version": "2.0"},
		"scene": 0,
		"scenes": [{"nodes": [0]}],
		"nodes": [{"name": "tri", "mesh": 0, "translation": [1, 2, 3]}],
		"meshes": [{"name": "triangle", "primitives": [{"attributes": {"POSITION": 0}, "indices": 1}]}],
		"accessors": [
			{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]},
			{"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
		],
		"bufferViews": [
			{"buffer": 0, "byteOffset": 0, "byteLength": 36},
			{"buffer": 0, "byteOffset": 36, "byteLength": 6}
		],
		"buffers": [{"byteLength": 42, "uri": %q}]
	}`, uri)
	fname := filepath.Join(t.TempDir(), "tri.gltf")
	require.NoError(t, os.WriteFile(fname, []byte(doc), 0666))
	return fname
}

func TestRegistered(t *testing.T) {
	for _, fname := range []string{"model.gltf", "model.GLB", "dir/Model.Gltf"} {
		dec, err := sceneview.DecoderForFile(fname)
		require.NoError(t, err)
		assert.IsType(t, &Decoder{}, dec, fname)
	}
}

func TestDecodeTriangle(t *testing.T) {
	gp, err := sceneview.DecodeFile(writeTriangle(t))
	require.NoError(t, err)
	require.Equal(t, 1, gp.NumChildren())

	node := gp.Children[0].AsNodeBase()
	assert.Equal(t, "tri", node.Name)
	assert.Equal(t, math32.Vec3(1, 2, 3), node.Pose.Pos)
	require.Equal(t, 1, node.NumChildren())

	sld, ok := node.Children[0].(*sceneview.Solid)
	require.True(t, ok)
	require.NotNil(t, sld.Mesh)
	assert.Len(t, sld.Mesh.Points, 3)
	assert.Equal(t, []uint32{0, 1, 2}, sld.Mesh.Index)

	bb := sceneview.BBox(gp)
	assert.Equal(t, math32.Vec3(1, 1, 0), bb.Size())
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := sceneview.DecodeFile(filepath.Join(t.TempDir(), "nope.glb"))
	require.Error(t, err)
}

// writeDoc writes the given glTF JSON to a temp file and returns its path.
func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "bad.gltf")
	require.NoError(t, os.WriteFile(fname, []byte(doc), 0666))
	return fname
}

func TestDecodeOutOfRangeIndices(t *testing.T) {
	docs := map[string]string{
		"mesh": `{"asset": {"version": "2.0"}, "scene": 0,
			"scenes": [{"nodes": [0]}], "nodes": [{"mesh": 5}]}`,
		"node": `{"asset": {"version": "2.0"}, "scene": 0,
			"scenes": [{"nodes": [7]}], "nodes": [{}]}`,
		"child": `{"asset": {"version": "2.0"}, "scene": 0,
			"scenes": [{"nodes": [0]}], "nodes": [{"children": [9]}]}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = sceneview.DecodeFile(writeDoc(t, doc))
			})
			require.Error(t, err)
		})
	}
}

func TestDecodeCyclicHierarchy(t *testing.T) {
	doc := `{"asset": {"version": "2.0"}, "scene": 0,
		"scenes": [{"nodes": [0]}],
		"nodes": [{"children": [1]}, {"children": [0]}]}`
	var err error
	require.NotPanics(t, func() {
		_, err = sceneview.DecodeFile(writeDoc(t, doc))
	})
	require.Error(t, err)
}
