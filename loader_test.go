// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDecoder decodes nothing and returns a one-solid group, so the
// load pipeline can be exercised without a real format library.
type fakeDecoder struct {
	fname string
	half  float32
	err   error
}

func (fd *fakeDecoder) New() Decoder {
	return &fakeDecoder{half: fd.half, err: fd.err}
}

func (fd *fakeDecoder) Desc() string { return "test format" }

func (fd *fakeDecoder) SetFile(fname string) { fd.fname = fname }

func (fd *fakeDecoder) Decode(r io.Reader) error {
	_, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return fd.err
}

func (fd *fakeDecoder) Group() (*Group, error) {
	gp := NewGroup(filepath.Base(fd.fname))
	gp.AddChild(NewSolid("box", boxMesh("box", fd.half)))
	return gp, nil
}

// registerFake registers a fake decoder for the given extension for the
// duration of the test.
func registerFake(t *testing.T, ext string, dec Decoder) {
	t.Helper()
	RegisterDecoder(dec, ext)
	t.Cleanup(func() { delete(Decoders, ext) })
}

// writeModel writes an empty placeholder model file and returns its path.
func writeModel(t *testing.T, name string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte("model"), 0666))
	return fname
}

func TestDecoderForFile(t *testing.T) {
	registerFake(t, ".fake", &fakeDecoder{half: 1})

	dec, err := DecoderForFile("model.fake")
	require.NoError(t, err)
	assert.Equal(t, "test format", dec.Desc())

	// extension matching is case-insensitive
	dec, err = DecoderForFile("DIR/Model.FAKE")
	require.NoError(t, err)
	assert.Equal(t, "test format", dec.Desc())

	// unknown extensions fall back to the generic decoder
	_, err = DecoderForFile("model.obj")
	require.Error(t, err)
	GenericDecoder = &fakeDecoder{half: 2}
	t.Cleanup(func() { GenericDecoder = nil })
	dec, err = DecoderForFile("model.obj")
	require.NoError(t, err)
	assert.Equal(t, "test format", dec.Desc())
}

func TestDecodeFile(t *testing.T) {
	registerFake(t, ".fake", &fakeDecoder{half: 4})

	gp, err := DecodeFile(writeModel(t, "cube.fake"))
	require.NoError(t, err)
	assert.Equal(t, "cube.fake", gp.Name)
	assert.Equal(t, 1, gp.NumChildren())

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.fake"))
	require.Error(t, err)

	decErr := errors.New("corrupt data")
	registerFake(t, ".bad", &fakeDecoder{err: decErr})
	_, err = DecodeFile(writeModel(t, "cube.bad"))
	require.ErrorIs(t, err, decErr)
}

// panicDecoder blows up while building the graph, standing in for a
// format library crashing on malformed input.
type panicDecoder struct{ fakeDecoder }

func (pd *panicDecoder) New() Decoder { return &panicDecoder{} }

func (pd *panicDecoder) Group() (*Group, error) { panic("index out of range") }

func TestDecodeFileAbsorbsPanic(t *testing.T) {
	registerFake(t, ".crash", &panicDecoder{})

	var gp *Group
	var err error
	require.NotPanics(t, func() {
		gp, err = DecodeFile(writeModel(t, "cube.crash"))
	})
	require.Error(t, err)
	assert.Nil(t, gp)
	assert.ErrorContains(t, err, "index out of range")
}
