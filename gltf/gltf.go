// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltf decodes glTF 2.0 scene files (.gltf, .glb) into
// sceneview scene graphs. Importing this package registers the decoder:
//
//	import _ "cogentcore.org/sceneview/gltf"
package gltf

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/sceneview"
	"cogentcore.org/sceneview/math32"
	qgltf "github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func init() {
	sceneview.RegisterDecoder(&Decoder{}, ".gltf", ".glb")
}

// Decoder decodes glTF 2.0 files, in both the JSON (.gltf) and binary
// (.glb) containers, into a [sceneview.Group] scene graph. It supports
// triangle geometry, node hierarchies with TRS or matrix transforms,
// and PBR base color materials with file-backed textures.
type Decoder struct {
	fname string
	doc   *qgltf.Document

	// meshes is one decoded solid prototype per primitive, indexed by
	// glTF mesh.
	meshes [][]*sceneview.Solid
}

func (dec *Decoder) New() sceneview.Decoder { return &Decoder{} }

func (dec *Decoder) Desc() string { return "glTF 2.0 (.gltf, .glb)" }

func (dec *Decoder) SetFile(fname string) { dec.fname = fname }

// Decode parses the document. External buffer and image resources are
// resolved relative to the file set with SetFile.
func (dec *Decoder) Decode(r io.Reader) error {
	doc := new(qgltf.Document)
	gd := qgltf.NewDecoderFS(r, os.DirFS(filepath.Dir(dec.fname)))
	if err := gd.Decode(doc); err != nil {
		return fmt.Errorf("gltf: decoding %q: %w", dec.fname, err)
	}
	dec.doc = doc
	return nil
}

// Group builds the scene graph from the decoded document: the default
// scene's nodes, depth first, with one group per glTF node and one
// solid per mesh primitive.
func (dec *Decoder) Group() (*sceneview.Group, error) {
	doc := dec.doc
	if doc == nil {
		return nil, fmt.Errorf("gltf: Group called before Decode")
	}
	if err := dec.buildMeshes(); err != nil {
		return nil, err
	}
	root := sceneview.NewGroup(filepath.Base(dec.fname))
	seen := make(map[int]bool)
	for _, ni := range dec.sceneNodes() {
		gp, err := dec.node(ni, seen)
		if err != nil {
			return nil, err
		}
		root.AddChild(gp)
	}
	return root, nil
}

// sceneNodes returns the root node indices of the default scene, or of
// the first scene when no default is set.
func (dec *Decoder) sceneNodes() []int {
	doc := dec.doc
	if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
		return toInts(doc.Scenes[*doc.Scene].Nodes)
	}
	if len(doc.Scenes) > 0 {
		return toInts(doc.Scenes[0].Nodes)
	}
	return nil
}

func toInts[T ~int | ~uint32](idxs []T) []int {
	out := make([]int, len(idxs))
	for i, x := range idxs {
		out[i] = int(x)
	}
	return out
}

// node converts one glTF node and its subtree into a group carrying the
// node transform, with a solid child per mesh primitive. Indices come
// from the file and are validated; the node graph must be a tree, so a
// node reached twice is a malformed (cyclic or shared) hierarchy.
func (dec *Decoder) node(ni int, seen map[int]bool) (*sceneview.Group, error) {
	doc := dec.doc
	if ni < 0 || ni >= len(doc.Nodes) {
		return nil, fmt.Errorf("gltf: node index %d out of range (%d nodes)", ni, len(doc.Nodes))
	}
	if seen[ni] {
		return nil, fmt.Errorf("gltf: node %d reached more than once in the hierarchy", ni)
	}
	seen[ni] = true
	n := doc.Nodes[ni]
	name := n.Name
	if name == "" {
		name = fmt.Sprintf("node%d", ni)
	}
	gp := sceneview.NewGroup(name)
	gp.Pose = nodePose(n)
	if n.Mesh != nil {
		mi := int(*n.Mesh)
		if mi < 0 || mi >= len(dec.meshes) {
			return nil, fmt.Errorf("gltf: node %d references mesh %d out of range (%d meshes)", ni, mi, len(dec.meshes))
		}
		for _, proto := range dec.meshes[mi] {
			gp.AddChild(proto.Clone())
		}
	}
	for _, ci := range n.Children {
		cgp, err := dec.node(int(ci), seen)
		if err != nil {
			return nil, err
		}
		gp.AddChild(cgp)
	}
	return gp, nil
}

// nodePose converts the glTF node transform. A non-identity matrix is
// decomposed into translation, rotation, and scale; otherwise the TRS
// fields are used directly (the decoder fills in spec defaults).
func nodePose(n *qgltf.Node) sceneview.Pose {
	var ps sceneview.Pose
	ps.Defaults()
	if m := matrix4(n.Matrix); !m.IsIdentity() {
		ps.Pos, ps.Quat, ps.Scale = m.Decompose()
		return ps
	}
	ps.Pos = math32.Vec3(float32(n.Translation[0]), float32(n.Translation[1]), float32(n.Translation[2]))
	ps.Quat = math32.Quat{
		X: float32(n.Rotation[0]),
		Y: float32(n.Rotation[1]),
		Z: float32(n.Rotation[2]),
		W: float32(n.Rotation[3]),
	}
	ps.Scale = math32.Vec3(float32(n.Scale[0]), float32(n.Scale[1]), float32(n.Scale[2]))
	return ps
}

// matrix4 converts a glTF column-major matrix array.
func matrix4[T ~float32 | ~float64](m [16]T) math32.Matrix4 {
	var out math32.Matrix4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// buildMeshes decodes every glTF mesh into solid prototypes, one per
// triangle primitive. Non-triangle primitives are skipped.
func (dec *Decoder) buildMeshes() error {
	doc := dec.doc
	dec.meshes = make([][]*sceneview.Solid, len(doc.Meshes))
	for mi, gm := range doc.Meshes {
		name := gm.Name
		if name == "" {
			name = fmt.Sprintf("mesh%d", mi)
		}
		for pi, prim := range gm.Primitives {
			if prim.Mode != qgltf.PrimitiveTriangles {
				continue
			}
			ms, err := dec.primitiveMesh(fmt.Sprintf("%s.%d", name, pi), prim)
			if err != nil {
				return fmt.Errorf("gltf: mesh %q primitive %d: %w", name, pi, err)
			}
			if ms == nil {
				continue
			}
			sld := sceneview.NewSolid(ms.Name, ms)
			if prim.Material != nil {
				mat, err := dec.material(int(*prim.Material))
				if err != nil {
					return fmt.Errorf("gltf: mesh %q primitive %d: %w", name, pi, err)
				}
				sld.Material = mat
			}
			dec.meshes[mi] = append(dec.meshes[mi], sld)
		}
	}
	return nil
}

// accessor validates a file-supplied accessor index.
func (dec *Decoder) accessor(i int) (*qgltf.Accessor, error) {
	if i < 0 || i >= len(dec.doc.Accessors) {
		return nil, fmt.Errorf("accessor index %d out of range (%d accessors)", i, len(dec.doc.Accessors))
	}
	return dec.doc.Accessors[i], nil
}

// primitiveMesh reads the vertex data of one triangle primitive.
// Returns nil when the primitive has no position attribute.
func (dec *Decoder) primitiveMesh(name string, prim *qgltf.Primitive) (*sceneview.Mesh, error) {
	doc := dec.doc
	posIdx, ok := prim.Attributes[qgltf.POSITION]
	if !ok {
		return nil, nil
	}
	posAcc, err := dec.accessor(int(posIdx))
	if err != nil {
		return nil, err
	}
	pos, err := modeler.ReadPosition(doc, posAcc, nil)
	if err != nil {
		return nil, err
	}
	ms := &sceneview.Mesh{Name: name}
	ms.Points = make([]math32.Vector3, len(pos))
	for i, p := range pos {
		ms.Points[i] = math32.Vec3(p[0], p[1], p[2])
	}
	if normIdx, ok := prim.Attributes[qgltf.NORMAL]; ok {
		normAcc, err := dec.accessor(int(normIdx))
		if err != nil {
			return nil, err
		}
		norms, err := modeler.ReadNormal(doc, normAcc, nil)
		if err != nil {
			return nil, err
		}
		ms.Normals = make([]math32.Vector3, len(norms))
		for i, n := range norms {
			ms.Normals[i] = math32.Vec3(n[0], n[1], n[2])
		}
	}
	if prim.Indices != nil {
		idxAcc, err := dec.accessor(int(*prim.Indices))
		if err != nil {
			return nil, err
		}
		idx, err := modeler.ReadIndices(doc, idxAcc, nil)
		if err != nil {
			return nil, err
		}
		ms.Index = idx
	} else {
		ms.Index = make([]uint32, len(ms.Points))
		for i := range ms.Index {
			ms.Index[i] = uint32(i)
		}
	}
	return ms, nil
}

// material converts a glTF material's PBR base color and roughness into
// the interchange material. File-backed base color textures carry their
// resolved path; embedded images are not extracted.
func (dec *Decoder) material(mi int) (sceneview.Material, error) {
	var mat sceneview.Material
	mat.Defaults()
	if mi < 0 || mi >= len(dec.doc.Materials) {
		return mat, fmt.Errorf("material index %d out of range (%d materials)", mi, len(dec.doc.Materials))
	}
	gm := dec.doc.Materials[mi]
	pbr := gm.PBRMetallicRoughness
	if pbr == nil {
		return mat, nil
	}
	if bcf := pbr.BaseColorFactor; bcf != nil {
		mat.Color = color.RGBA{
			R: uint8(float32(bcf[0])*255 + 0.5),
			G: uint8(float32(bcf[1])*255 + 0.5),
			B: uint8(float32(bcf[2])*255 + 0.5),
			A: uint8(float32(bcf[3])*255 + 0.5),
		}
	}
	if rf := pbr.RoughnessFactor; rf != nil {
		mat.Shiny = (1 - float32(*rf)) * 100
	}
	if pbr.BaseColorTexture != nil {
		mat.Texture = dec.texture(int(pbr.BaseColorTexture.Index))
	}
	return mat, nil
}

// texture resolves a glTF texture to a file-backed texture record, or
// nil when the reference is out of range, embedded, or missing.
func (dec *Decoder) texture(ti int) *sceneview.Texture {
	doc := dec.doc
	if ti < 0 || ti >= len(doc.Textures) || doc.Textures[ti].Source == nil {
		return nil
	}
	si := int(*doc.Textures[ti].Source)
	if si < 0 || si >= len(doc.Images) {
		return nil
	}
	img := doc.Images[si]
	if img.URI == "" || strings.HasPrefix(img.URI, "data:") {
		return nil
	}
	return &sceneview.Texture{
		Name: filepath.Base(img.URI),
		URL:  filepath.Join(filepath.Dir(dec.fname), filepath.FromSlash(img.URI)),
	}
}
