// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import "cogentcore.org/sceneview/math32"

// OrbitStates are the interaction states of [OrbitControls].
type OrbitStates int32

const (
	// OrbitIdle means no gesture is active and all velocities have
	// decayed below epsilon.
	OrbitIdle OrbitStates = iota

	// OrbitDragging means a drag or pinch gesture is in progress.
	OrbitDragging

	// OrbitAnimating means a gesture has ended and the controls are
	// coasting with friction-based decay.
	OrbitAnimating
)

// orbitEpsilon is the velocity magnitude below which the decay
// animation self-terminates.
const orbitEpsilon = 1e-4

// RotationBinding is an external source of truth for the orbit yaw and
// pitch. When supplied, the controls become a pass-through
// synchronizer: the external value is read at tick start and written
// back at tick end, every tick.
type RotationBinding interface {
	Rotation() math32.Vector2
	SetRotation(yawPitch math32.Vector2)
}

// ZoomBinding is an external source of truth for the orbit distance.
// When supplied, the distance is taken directly from the binding each
// tick, bypassing velocity integration, and the clamped result is
// written back.
type ZoomBinding interface {
	Zoom() float32
	SetZoom(distance float32)
}

// OrbitControls integrates drag and pinch gesture velocity into camera
// yaw, pitch, and distance around a fixed focal center, with
// friction-based decay. All angles are in radians. Yaw and pitch are
// clamped to their configured bounds and distance to the zoom bounds
// after every update.
type OrbitControls struct {
	// Yaw is the rotation around the vertical axis.
	Yaw float32

	// Pitch is the rotation around the horizontal axis.
	Pitch float32

	// Distance is the camera distance from the focal center.
	Distance float32

	// VelocityPan is the current yaw/pitch velocity from dragging.
	VelocityPan math32.Vector2

	// VelocityZoom is the current distance velocity from pinching.
	VelocityZoom float32

	// Center is the fixed focal center the camera orbits and looks at.
	Center math32.Vector3

	// Sensitivity converts drag point deltas to radians.
	Sensitivity float32

	// Friction is the per-tick velocity decay factor:
	// v *= 1 - Friction each tick.
	Friction float32

	// MinYaw and MaxYaw bound the yaw angle.
	MinYaw, MaxYaw float32

	// MinPitch and MaxPitch bound the pitch angle.
	MinPitch, MaxPitch float32

	// MinZoom and MaxZoom bound the distance.
	MinZoom, MaxZoom float32

	// ZoomEnabled gates pinch gesture processing.
	ZoomEnabled bool

	// ExternalRotation, when non-nil, makes yaw/pitch pass-through
	// synchronized with an external binding.
	ExternalRotation RotationBinding

	// ExternalZoom, when non-nil, supplies the distance directly,
	// bypassing velocity integration.
	ExternalZoom ZoomBinding

	// State is the current interaction state.
	State OrbitStates

	lastPoint math32.Vector2
	lastZoom  float32
}

// NewOrbitControls returns a new [OrbitControls] configured from the
// given settings.
func NewOrbitControls(st Settings) *OrbitControls {
	oc := &OrbitControls{
		Sensitivity: st.Sensitivity,
		Friction:    st.Friction,
		MinYaw:      st.MinYaw,
		MaxYaw:      st.MaxYaw,
		MinPitch:    st.MinPitch,
		MaxPitch:    st.MaxPitch,
		MinZoom:     st.MinZoom,
		MaxZoom:     st.MaxZoom,
		ZoomEnabled: st.ZoomEnabled,
	}
	oc.Distance = math32.Clamp(3, st.MinZoom, st.MaxZoom)
	return oc
}

// DragStart begins a drag gesture at the given point.
func (oc *OrbitControls) DragStart(p math32.Vector2) {
	oc.State = OrbitDragging
	oc.lastPoint = p
}

// DragChange updates the pan velocity from the drag moving to the
// given point: (previous - current) * sensitivity.
func (oc *OrbitControls) DragChange(p math32.Vector2) {
	oc.VelocityPan = oc.lastPoint.Sub(p).MulScalar(oc.Sensitivity)
	oc.lastPoint = p
	oc.State = OrbitDragging
}

// DragEnd ends the drag gesture; remaining velocity coasts with decay.
func (oc *OrbitControls) DragEnd(p math32.Vector2) {
	oc.DragChange(p)
	oc.State = OrbitAnimating
}

// PinchStart begins a pinch gesture at the given zoom factor.
// A no-op when zooming is disabled.
func (oc *OrbitControls) PinchStart(factor float32) {
	if !oc.ZoomEnabled {
		return
	}
	oc.State = OrbitDragging
	oc.lastZoom = factor
}

// PinchChange updates the zoom velocity from the pinch moving to the
// given factor: previous - current.
func (oc *OrbitControls) PinchChange(factor float32) {
	if !oc.ZoomEnabled {
		return
	}
	oc.VelocityZoom = oc.lastZoom - factor
	oc.lastZoom = factor
	oc.State = OrbitDragging
}

// PinchEnd ends the pinch gesture; remaining velocity coasts with decay.
func (oc *OrbitControls) PinchEnd(factor float32) {
	if !oc.ZoomEnabled {
		return
	}
	oc.PinchChange(factor)
	oc.State = OrbitAnimating
}

// Active returns whether either velocity magnitude is above epsilon,
// i.e., whether the per-tick integration still has work to do.
func (oc *OrbitControls) Active() bool {
	return oc.VelocityPan.Length() > orbitEpsilon ||
		math32.Abs(oc.VelocityZoom) > orbitEpsilon
}

// ShouldTick returns whether [OrbitControls.Tick] should run this
// frame: while a gesture or decay animation is in progress, or always
// when external bindings are supplied.
func (oc *OrbitControls) ShouldTick() bool {
	return oc.State != OrbitIdle || oc.Active() ||
		oc.ExternalRotation != nil || oc.ExternalZoom != nil
}

// Tick advances the orbit state by one frame and positions the given
// camera: it pulls external bindings, integrates and clamps yaw, pitch,
// and distance, converts the spherical coordinates to a Cartesian
// position around the focal center, orients the camera to look at the
// center, decays the velocities, and pushes external bindings. It
// returns whether the velocities were above epsilon entering the tick;
// a tick that still integrated motion reports active, and the state
// returns to idle on the following tick.
func (oc *OrbitControls) Tick(cam *CameraState) bool {
	active := oc.Active()
	if oc.ExternalRotation != nil {
		r := oc.ExternalRotation.Rotation()
		oc.Yaw, oc.Pitch = r.X, r.Y
	}
	oc.Yaw = math32.Clamp(oc.Yaw+oc.VelocityPan.X, oc.MinYaw, oc.MaxYaw)
	oc.Pitch = math32.Clamp(oc.Pitch+oc.VelocityPan.Y, oc.MinPitch, oc.MaxPitch)
	if oc.ExternalZoom != nil {
		oc.Distance = math32.Clamp(oc.ExternalZoom.Zoom(), oc.MinZoom, oc.MaxZoom)
	} else {
		oc.Distance = math32.Clamp(oc.Distance+oc.VelocityZoom, oc.MinZoom, oc.MaxZoom)
	}

	cam.Position = oc.Center.Add(sphericalToCartesian(oc.Yaw, oc.Pitch, oc.Distance))
	cam.LookAt(oc.Center, math32.Vec3(0, 1, 0))

	oc.VelocityPan = oc.VelocityPan.MulScalar(1 - oc.Friction)
	oc.VelocityZoom *= 1 - oc.Friction

	if oc.ExternalRotation != nil {
		oc.ExternalRotation.SetRotation(math32.Vec2(oc.Yaw, oc.Pitch))
	}
	if oc.ExternalZoom != nil {
		oc.ExternalZoom.SetZoom(oc.Distance)
	}

	if !active && oc.State == OrbitAnimating {
		oc.State = OrbitIdle
	}
	return active
}

// sphericalToCartesian converts orbit yaw, pitch, and distance to a
// Cartesian offset from the focal center, with yaw 0 and pitch 0 on
// the +Z axis.
func sphericalToCartesian(yaw, pitch, distance float32) math32.Vector3 {
	cp := math32.Cos(pitch)
	return math32.Vec3(
		distance*math32.Sin(yaw)*cp,
		distance*math32.Sin(pitch),
		distance*math32.Cos(yaw)*cp)
}
