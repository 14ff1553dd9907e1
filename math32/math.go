// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 vector, quaternion, matrix, and
// bounding box types used by the sceneview 3D viewer, along with scalar
// helpers. Scalar functions are wrappers around github.com/chewxy/math32,
// which has fast float32 implementations.
package math32

import "github.com/chewxy/math32"

// Mathematical constants.
const (
	Pi       = math32.Pi
	Infinity = float32(math32.MaxFloat32)

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 { return math32.Sin(x) }

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 { return math32.Cos(x) }

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 { return math32.Tan(x) }

// Asin returns the arcsine, in radians, of x.
func Asin(x float32) float32 { return math32.Asin(x) }

// Atan2 returns the arc tangent of y/x, using the signs
// of the two to determine the quadrant of the return value.
func Atan2(y, x float32) float32 { return math32.Atan2(y, x) }

// Max returns the larger of x or y.
func Max(x, y float32) float32 { return math32.Max(x, y) }

// Min returns the smaller of x or y.
func Min(x, y float32) float32 { return math32.Min(x, y) }

// Sign returns -1 if x < 0, 1 if x > 0, and 0 otherwise.
func Sign(x float32) float32 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Lerp returns the linear interpolation between a and b:
// a + (b-a) * t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// DegToRad converts a number of degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number of radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}
