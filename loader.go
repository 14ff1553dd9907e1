// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnableToLoad is the single error kind surfaced for scene load
// failures. Format-specific errors from the external loaders are
// collapsed into it; their detail is diagnostic-logged only.
var ErrUnableToLoad = errors.New("sceneview: unable to load scene")

// Decoder parses a 3D object / scene file into a scene graph [Group].
// This interface is implemented by the external format-specific loaders;
// this package does not implement any file format parsing itself.
type Decoder interface {
	// New returns a new instance of this decoder, used for one decode.
	New() Decoder

	// Desc returns a description of the format this decoder handles.
	Desc() string

	// SetFile sets the file name being decoded, needed in case other
	// files such as textures must be loaded from the same directory.
	SetFile(fname string)

	// Decode reads and parses the given data.
	Decode(r io.Reader) error

	// Group returns the decoded scene graph.
	Group() (*Group, error)
}

// Decoders is the registry of format-specific decoders, keyed by
// lowercase file extension including the leading dot (e.g., ".gltf").
// The glTF interchange loader registers itself here for ".gltf" and
// ".glb". See [RegisterDecoder].
var Decoders = map[string]Decoder{}

// GenericDecoder is the fallback decoder used for every file extension
// not present in [Decoders]. It is typically the external engine's own
// scene loader, which recognizes its native formats.
var GenericDecoder Decoder

// RegisterDecoder registers the given decoder for the given extensions
// (with leading dot, case-insensitive).
func RegisterDecoder(dec Decoder, exts ...string) {
	for _, ext := range exts {
		Decoders[strings.ToLower(ext)] = dec
	}
}

// DecoderForFile returns the decoder for the given file name, by
// extension: recognized extensions route to their registered decoder,
// everything else to [GenericDecoder]. Returns an error if no decoder
// is available.
func DecoderForFile(fname string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(fname))
	if dec, ok := Decoders[ext]; ok {
		return dec, nil
	}
	if GenericDecoder != nil {
		return GenericDecoder, nil
	}
	return nil, fmt.Errorf("sceneview.DecoderForFile: no decoder for extension %q of file %q", ext, fname)
}

// DecodeFile opens and decodes the given scene file using the decoder
// selected by its extension, returning the decoded scene graph.
// A decoder panic on malformed input is converted to an error, so a
// corrupt file can never take down the loading goroutine.
func DecodeFile(fname string) (gp *Group, err error) {
	dt, err := DecoderForFile(fname)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defer func() {
		if r := recover(); r != nil {
			gp = nil
			err = fmt.Errorf("sceneview.DecodeFile: decoding %q: %v", fname, r)
		}
	}()

	dec := dt.New()
	dec.SetFile(fname)
	if err := dec.Decode(f); err != nil {
		return nil, err
	}
	return dec.Group()
}
