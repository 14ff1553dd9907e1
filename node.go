// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"image"
	"image/color"

	"cogentcore.org/sceneview/math32"
	"github.com/jinzhu/copier"
)

// Node is the interface for all nodes in the scene graph tree.
// Parents exclusively own their children: a node has exactly one
// parent, and removing a node from its parent releases the whole
// subtree under it.
type Node interface {
	// AsNodeBase returns the embedded [NodeBase].
	AsNodeBase() *NodeBase

	// Clone returns a deep copy of this node and everything under it.
	// Material and mesh payloads that are shared by reference in the
	// original are copied, so mutation of the clone never affects the
	// original or sibling clones.
	Clone() Node

	// IsSolid returns whether this node is a [Solid] with geometry.
	IsSolid() bool
}

// NodeBase is the base type for all scene graph nodes, providing the
// name, pose, and child list.
type NodeBase struct {
	// Name is the name of this node, unique among its siblings by
	// convention but not enforced.
	Name string

	// Pose is the position, scale, and rotation of this node
	// relative to its parent.
	Pose Pose

	// Children are the nodes under this one, exclusively owned by it.
	Children []Node `copier:"-"`
}

func (nb *NodeBase) AsNodeBase() *NodeBase { return nb }

func (nb *NodeBase) IsSolid() bool { return false }

// AddChild adds the given node as a child of this node.
func (nb *NodeBase) AddChild(n Node) {
	nb.Children = append(nb.Children, n)
}

// ClearChildren removes all children from this node.
func (nb *NodeBase) ClearChildren() {
	nb.Children = nil
}

// NumChildren returns the number of children of this node.
func (nb *NodeBase) NumChildren() int {
	return len(nb.Children)
}

// cloneChildrenTo appends clones of all children to the given base.
func (nb *NodeBase) cloneChildrenTo(dst *NodeBase) {
	for _, c := range nb.Children {
		dst.AddChild(c.Clone())
	}
}

// WalkDown calls the given function on the given node and then on all
// of its children, depth first, terminating a branch if the function
// returns false.
func WalkDown(n Node, fn func(n Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.AsNodeBase().Children {
		WalkDown(c, fn)
	}
}

// Group collects other nodes but has no geometry of its own. Its pose
// applies to everything under it.
type Group struct {
	NodeBase
}

// NewGroup returns a new [Group] with the given name.
func NewGroup(name string) *Group {
	gp := &Group{}
	gp.Name = name
	gp.Pose.Defaults()
	return gp
}

func (gp *Group) Clone() Node {
	ngp := &Group{}
	ngp.Name = gp.Name
	ngp.Pose = gp.Pose
	gp.cloneChildrenTo(&ngp.NodeBase)
	return ngp
}

// Solid is an individual 3D element with geometry: it points to a mesh
// defining its shape and has the material properties of its surface.
type Solid struct {
	NodeBase

	// Mesh is the shape of this solid. Meshes are shared by reference
	// across solids until [Solid.Clone] copies them.
	Mesh *Mesh

	// Material contains the surface properties (color, texture).
	Material Material
}

// NewSolid returns a new [Solid] with the given name and mesh.
func NewSolid(name string, mesh *Mesh) *Solid {
	sld := &Solid{}
	sld.Name = name
	sld.Mesh = mesh
	sld.Pose.Defaults()
	sld.Material.Defaults()
	return sld
}

func (sld *Solid) IsSolid() bool { return true }

// Clone returns a deep copy of this solid. The mesh vertex data and the
// material, including its texture record, are copied rather than shared,
// so the cached original scene is never aliased by installed content.
// Decoded texture images themselves are immutable and stay shared.
func (sld *Solid) Clone() Node {
	nsld := &Solid{}
	nsld.Name = sld.Name
	nsld.Pose = sld.Pose
	if sld.Mesh != nil {
		nsld.Mesh = &Mesh{}
		logError(copier.CopyWithOption(nsld.Mesh, sld.Mesh, copier.Option{DeepCopy: true}))
	}
	logError(copier.CopyWithOption(&nsld.Material, &sld.Material, copier.Option{DeepCopy: true}))
	if nsld.Material.Texture != nil && sld.Material.Texture != nil {
		// decoded pixels are immutable; share them across clones
		nsld.Material.Texture.Image = sld.Material.Texture.Image
	}
	sld.cloneChildrenTo(&nsld.NodeBase)
	return nsld
}

// Mesh holds the geometry data for one shape, shared by reference
// across the solids that use it.
type Mesh struct {
	// Name is the unique name of this mesh.
	Name string

	// Points are the vertex positions.
	Points []math32.Vector3

	// Normals are the per-vertex normals; may be empty.
	Normals []math32.Vector3

	// Index is the triangle index list into Points.
	Index []uint32
}

// BBox returns the axis-aligned bounding box of the mesh points.
func (ms *Mesh) BBox() math32.Box3 {
	b := math32.B3Empty()
	b.ExpandByPoints(ms.Points)
	return b
}

// Material describes the surface appearance of a [Solid].
type Material struct {
	// Color is the base color of the surface, used for both ambient
	// and diffuse in a standard Phong model.
	Color color.RGBA

	// Shiny is the specular shininess factor.
	Shiny float32

	// Texture is the optional surface texture; shared by reference
	// until a clone copies the record.
	Texture *Texture
}

// Defaults sets default material parameters (opaque gray, moderate shine).
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{128, 128, 128, 255}
	mt.Shiny = 30
}

// Texture is a named image used as a surface texture or as the
// environment for image-based lighting.
type Texture struct {
	// Name is the unique name of this texture.
	Name string

	// URL is where the image was loaded from, also its cache key.
	URL string

	// Image is the decoded image. Treated as immutable once decoded.
	Image image.Image `copier:"-"`
}

// BBox returns the bounding box of the given node's subtree in the
// node's own coordinates: its mesh bounds (for solids) unioned with
// each child subtree's bounds transformed by that child's pose. The
// node's own pose is not applied.
func BBox(n Node) math32.Box3 {
	b := math32.B3Empty()
	if sld, ok := n.(*Solid); ok && sld.Mesh != nil {
		b.ExpandByBox(sld.Mesh.BBox())
	}
	for _, c := range n.AsNodeBase().Children {
		cb := BBox(c)
		cm := c.AsNodeBase().Pose.Matrix()
		b.ExpandByBox(cb.MulMatrix4(&cm))
	}
	return b
}
