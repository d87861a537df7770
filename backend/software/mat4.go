// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"math"

	"github.com/gogpu/view3d"
)

// Mat4 is a 4x4 transformation matrix in row-major order: element (r,c)
// is at index r*4+c.
type Mat4 [16]float64

// Vec4 is a homogeneous coordinate used during projection.
type Vec4 struct {
	X, Y, Z, W float64
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product a*b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[r*4+k] * b[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// MulVec transforms a world-space point, returning homogeneous clip
// coordinates.
func (a Mat4) MulVec(v view3d.Vector3) Vec4 {
	return Vec4{
		X: a[0]*v.X + a[1]*v.Y + a[2]*v.Z + a[3],
		Y: a[4]*v.X + a[5]*v.Y + a[6]*v.Z + a[7],
		Z: a[8]*v.X + a[9]*v.Y + a[10]*v.Z + a[11],
		W: a[12]*v.X + a[13]*v.Y + a[14]*v.Z + a[15],
	}
}

// LookAt returns a right-handed view matrix for a camera at eye looking
// at target with the given up direction.
func LookAt(eye, target, up view3d.Vector3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Perspective returns a right-handed perspective projection with a
// vertical field of view in degrees. Maps view-space z in [-near,-far] to
// NDC z in [-1,1].
func Perspective(fovyDeg, aspect, near, far float64) Mat4 {
	t := math.Tan(fovyDeg * math.Pi / 360)
	return Mat4{
		1 / (aspect * t), 0, 0, 0,
		0, 1 / t, 0, 0,
		0, 0, -(far + near) / (far - near), -2 * far * near / (far - near),
		0, 0, -1, 0,
	}
}

// Ortho returns a right-handed orthographic projection over the given
// view volume.
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, -(right + left) / (right - left),
		0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom),
		0, 0, -2 / (far - near), -(far + near) / (far - near),
		0, 0, 0, 1,
	}
}

// cameraMatrix builds the combined projection*view matrix for a camera
// and viewport aspect ratio, following raylib's conventions: FovY is the
// vertical field of view in degrees for perspective cameras and the
// vertical extent of the view volume in world units for orthographic
// ones.
func cameraMatrix(cam view3d.Camera, aspect float64) Mat4 {
	view := LookAt(cam.Position, cam.Target, cam.Up)
	var proj Mat4
	if cam.Projection == view3d.Orthographic {
		top := cam.FovY / 2
		right := top * aspect
		proj = Ortho(-right, right, -top, top, nearPlane, farPlane)
	} else {
		proj = Perspective(cam.FovY, aspect, nearPlane, farPlane)
	}
	return proj.Mul(view)
}

// Clip planes shared by both projections, matching raylib's defaults.
const (
	nearPlane = 0.01
	farPlane  = 1000.0
)
