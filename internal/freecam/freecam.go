// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package freecam implements free-mode camera navigation for backends
// without native camera support.
//
// The math follows raylib's CAMERA_FREE behavior: mouse movement yaws and
// pitches the view direction, WASD translates in the camera frame, E/Q
// move along the up axis, and the wheel dollies toward the target. All
// functions are pure over (camera, input, dt) and never touch real input
// devices; the hosting backend collects input and calls Update once per
// frame.
package freecam

import (
	"math"

	"github.com/gogpu/view3d"
)

// Tuning constants, matching raylib's rcamera defaults (speeds are per
// second; raylib's per-frame values assume 60 FPS).
const (
	MoveSpeed        = 5.4   // world units per second
	MouseSensitivity = 0.003 // radians per pixel of mouse travel
	WheelSpeed       = 2.0   // world units per wheel notch
)

// Input is one frame's worth of navigation input.
type Input struct {
	// Movement keys held this frame.
	Forward, Back, Left, Right, Up, Down bool
	// Mouse travel in pixels since the previous frame.
	MouseDX, MouseDY float64
	// Wheel notches since the previous frame; positive dollies in.
	Wheel float64
}

// Update advances the camera by one frame of free navigation. dt is the
// frame duration in seconds. The camera is mutated in place; a camera
// that does not satisfy Camera.Valid is left unchanged.
func Update(c *view3d.Camera, in Input, dt float64) {
	if !c.Valid() {
		return
	}

	// Look: yaw around the up axis, pitch around the right axis.
	if in.MouseDX != 0 {
		yaw(c, -in.MouseDX*MouseSensitivity)
	}
	if in.MouseDY != 0 {
		pitch(c, -in.MouseDY*MouseSensitivity)
	}

	// Translate position and target together in the camera frame, so
	// looking is unaffected by movement.
	step := MoveSpeed * dt
	fwd := c.Forward()
	right := c.Right()
	up := c.Up.Normalize()

	var delta view3d.Vector3
	if in.Forward {
		delta = delta.Add(fwd.Scale(step))
	}
	if in.Back {
		delta = delta.Sub(fwd.Scale(step))
	}
	if in.Right {
		delta = delta.Add(right.Scale(step))
	}
	if in.Left {
		delta = delta.Sub(right.Scale(step))
	}
	if in.Up {
		delta = delta.Add(up.Scale(step))
	}
	if in.Down {
		delta = delta.Sub(up.Scale(step))
	}
	c.Position = c.Position.Add(delta)
	c.Target = c.Target.Add(delta)

	// Wheel dollies the eye toward the target without crossing it.
	if in.Wheel != 0 {
		dist := c.Target.Sub(c.Position).Length()
		move := in.Wheel * WheelSpeed
		if move >= dist {
			move = dist - 0.01
		}
		if move != 0 {
			c.Position = c.Position.Add(fwd.Scale(move))
		}
	}
}

// yaw rotates the view direction around the camera's up axis.
func yaw(c *view3d.Camera, angle float64) {
	up := c.Up.Normalize()
	view := c.Target.Sub(c.Position)
	c.Target = c.Position.Add(rotate(view, up, angle))
}

// pitch rotates the view direction around the camera's right axis,
// clamped so the view never crosses the up axis (which would flip the
// camera frame).
func pitch(c *view3d.Camera, angle float64) {
	up := c.Up.Normalize()
	view := c.Target.Sub(c.Position)

	// Angle head-room toward straight up and straight down.
	const margin = 0.001
	maxUp := angleBetween(up, view) - margin
	maxDown := -(math.Pi - angleBetween(up, view)) + margin
	if angle > maxUp {
		angle = maxUp
	}
	if angle < maxDown {
		angle = maxDown
	}

	right := view.Cross(up).Normalize() // camera right = forward x up
	c.Target = c.Position.Add(rotate(view, right, angle))
}

// rotate rotates v around the unit axis by angle radians (Rodrigues).
func rotate(v, axis view3d.Vector3, angle float64) view3d.Vector3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return v.Scale(cos).
		Add(axis.Cross(v).Scale(sin)).
		Add(axis.Scale(axis.Dot(v) * (1 - cos)))
}

// angleBetween returns the angle between two vectors in radians.
func angleBetween(a, b view3d.Vector3) float64 {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}
