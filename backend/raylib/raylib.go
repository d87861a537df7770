// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raylib provides the native raylib windowing backend for view3d.
//
// It is a thin adapter over github.com/gen2brain/raylib-go: each viewer
// call maps to the corresponding raylib call, and raylib owns window
// creation, input polling, free-camera navigation math, frame pacing,
// and all failure handling (raylib aborts the process on unrecoverable
// errors rather than returning them).
//
// The package requires cgo and a working raylib build; import it with a
// blank identifier to register the "raylib" backend:
//
//	import _ "github.com/gogpu/view3d/backend/raylib"
package raylib

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gogpu/view3d"
)

func init() {
	view3d.Register("raylib", func() view3d.Backend {
		return New()
	})
}

// Backend drives a native raylib window.
type Backend struct {
	cfg    view3d.Config
	frames int
}

// New creates a raylib backend. The window opens at Init.
func New() *Backend {
	return &Backend{}
}

// Init implements view3d.Backend, opening the window and applying the
// frame-rate target. Raylib reports window-creation failure by aborting,
// so Init has no failure path of its own.
func (b *Backend) Init(cfg view3d.Config) error {
	b.cfg = cfg
	if cfg.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(int32(cfg.TargetFPS))
	}
	view3d.Logger().Info("raylib: window opened",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return nil
}

// ShouldClose implements view3d.Backend, combining raylib's window close
// signal with the optional frame budget.
func (b *Backend) ShouldClose() bool {
	if b.cfg.MaxFrames > 0 && b.frames >= b.cfg.MaxFrames {
		return true
	}
	return rl.WindowShouldClose()
}

// UpdateCamera implements view3d.Backend, delegating the navigation math
// to raylib's UpdateCamera.
func (b *Backend) UpdateCamera(c *view3d.Camera, mode view3d.CameraMode) {
	if mode == view3d.CameraNone {
		return
	}
	cam := toRaylibCamera(*c)
	rl.UpdateCamera(&cam, rl.CameraFree)
	*c = fromRaylibCamera(cam, c.Projection)
}

// BeginFrame implements view3d.Backend.
func (b *Backend) BeginFrame() { rl.BeginDrawing() }

// Clear implements view3d.Backend.
func (b *Backend) Clear(c color.RGBA) { rl.ClearBackground(c) }

// Begin3D implements view3d.Backend.
func (b *Backend) Begin3D(cam view3d.Camera) { rl.BeginMode3D(toRaylibCamera(cam)) }

// DrawCube implements view3d.Backend.
func (b *Backend) DrawCube(center, size view3d.Vector3, c color.RGBA) {
	rl.DrawCube(toRaylibVec(center), float32(size.X), float32(size.Y), float32(size.Z), c)
}

// DrawGrid implements view3d.Backend.
func (b *Backend) DrawGrid(slices int, spacing float64) {
	rl.DrawGrid(int32(slices), float32(spacing))
}

// End3D implements view3d.Backend.
func (b *Backend) End3D() { rl.EndMode3D() }

// DrawText implements view3d.Backend.
func (b *Backend) DrawText(s string, x, y, size int, c color.RGBA) {
	rl.DrawText(s, int32(x), int32(y), int32(size), c)
}

// EndFrame implements view3d.Backend. Raylib presents the frame and
// applies the target-FPS wait inside EndDrawing.
func (b *Backend) EndFrame() {
	rl.EndDrawing()
	b.frames++
}

// Close implements view3d.Backend.
func (b *Backend) Close() error {
	rl.CloseWindow()
	view3d.Logger().Info("raylib: window closed", "frames", b.frames)
	return nil
}

// toRaylibVec converts a view3d vector to raylib's float32 vector.
func toRaylibVec(v view3d.Vector3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// fromRaylibVec converts a raylib vector back to view3d's float64 vector.
func fromRaylibVec(v rl.Vector3) view3d.Vector3 {
	return view3d.V3(float64(v.X), float64(v.Y), float64(v.Z))
}

// toRaylibCamera converts a view3d camera to raylib's Camera3D.
func toRaylibCamera(c view3d.Camera) rl.Camera3D {
	proj := rl.CameraPerspective
	if c.Projection == view3d.Orthographic {
		proj = rl.CameraOrthographic
	}
	return rl.Camera3D{
		Position:   toRaylibVec(c.Position),
		Target:     toRaylibVec(c.Target),
		Up:         toRaylibVec(c.Up),
		Fovy:       float32(c.FovY),
		Projection: proj,
	}
}

// fromRaylibCamera converts raylib's camera back, preserving the caller's
// projection enum (the raylib round trip does not change it).
func fromRaylibCamera(c rl.Camera3D, proj view3d.Projection) view3d.Camera {
	return view3d.Camera{
		Position:   fromRaylibVec(c.Position),
		Target:     fromRaylibVec(c.Target),
		Up:         fromRaylibVec(c.Up),
		FovY:       float64(c.Fovy),
		Projection: proj,
	}
}
