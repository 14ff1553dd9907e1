// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is a 3D axis-aligned bounding box defined by its minimum and
// maximum corner points.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum
// x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new empty [Box3] (min at +Infinity, max at -Infinity),
// ready to be expanded by points.
func B3Empty() Box3 {
	b := Box3{}
	b.SetEmpty()
	return b
}

// SetEmpty sets this bounding box to empty (min at +Infinity,
// max at -Infinity).
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether this bounding box is empty
// (max < min on any coordinate).
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoint expands this bounding box as needed to include
// the given point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByPoints expands this bounding box as needed to include
// all of the given points.
func (b *Box3) ExpandByPoints(points []Vector3) {
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ExpandByBox expands this bounding box as needed to include the
// given box. An empty box is a no-op.
func (b *Box3) ExpandByBox(box Box3) {
	if box.IsEmpty() {
		return
	}
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// Size returns the size of this bounding box: the vector from its
// minimum point to its maximum point.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center of this bounding box.
func (b Box3) Center() Vector3 {
	return b.Min.Lerp(b.Max, 0.5)
}

// MulMatrix4 returns this bounding box transformed by the given matrix:
// the axis-aligned box containing all 8 transformed corners.
// An empty box stays empty.
func (b Box3) MulMatrix4(m *Matrix4) Box3 {
	if b.IsEmpty() {
		return b
	}
	out := B3Empty()
	for i := 0; i < 8; i++ {
		p := Vec3(b.Min.X, b.Min.Y, b.Min.Z)
		if i&1 != 0 {
			p.X = b.Max.X
		}
		if i&2 != 0 {
			p.Y = b.Max.Y
		}
		if i&4 != 0 {
			p.Z = b.Max.Z
		}
		out.ExpandByPoint(p.MulMatrix4AsPoint(m))
	}
	return out
}
