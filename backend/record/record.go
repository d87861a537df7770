// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package record provides a backend that captures every viewer call as a
// typed command instead of drawing anything.
//
// The recorded command log makes the viewer's frame ordering contract
// observable: tests assert on the sequence of commands, and debugging
// tools can print a frame's draw calls. Design follows the typed command
// structs of gg's recording system for inspectability.
//
// # Usage
//
//	b := record.New(record.CloseAfter(3))
//	v := view3d.New(b, view3d.WithCameraMode(view3d.CameraNone))
//	_ = v.Run() // performs exactly 3 frame iterations
//
//	for _, cmd := range b.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
// The backend is not safe for concurrent use; like every backend it is
// driven by the single goroutine that owns the viewer loop.
package record

import (
	"image/color"

	"github.com/gogpu/view3d"
)

func init() {
	view3d.Register("record", func() view3d.Backend {
		return New()
	})
}

// Option configures a Backend during creation.
type Option func(*Backend)

// CloseAfter makes the backend report a close request on poll n+1, so the
// viewer performs exactly n full frame iterations. Without it the backend
// honors Config.MaxFrames, and failing that closes immediately.
func CloseAfter(n int) Option {
	return func(b *Backend) {
		b.closeAfter = n
		b.scripted = true
	}
}

// OnUpdateCamera installs a hook invoked by UpdateCamera, standing in for
// the input-driven navigation math of a real backend. The hook may mutate
// the camera in place.
func OnUpdateCamera(fn func(c *view3d.Camera, mode view3d.CameraMode)) Option {
	return func(b *Backend) {
		b.updateHook = fn
	}
}

// Backend records every call made by the viewer loop as a Command.
// The zero value is not usable; construct with New.
type Backend struct {
	commands []Command

	closeAfter int
	scripted   bool
	polls      int

	updateHook func(c *view3d.Camera, mode view3d.CameraMode)

	cfg    view3d.Config
	inited bool
	closed bool
}

// New creates a recording backend. With no options it closes on the first
// poll unless Config.MaxFrames is set, so a default Run records the
// open/close bracket and nothing else.
func New(opts ...Option) *Backend {
	b := &Backend{commands: make([]Command, 0, 64)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Commands returns the recorded command log in call order.
func (b *Backend) Commands() []Command { return b.commands }

// Types returns just the command types in call order, which is usually
// what an ordering assertion wants to compare.
func (b *Backend) Types() []CommandType {
	types := make([]CommandType, len(b.commands))
	for i, cmd := range b.commands {
		types[i] = cmd.Type()
	}
	return types
}

// Polls returns how many times ShouldClose was consulted.
func (b *Backend) Polls() int { return b.polls }

// Inited reports whether Init has been called.
func (b *Backend) Inited() bool { return b.inited }

// Closed reports whether Close has been called.
func (b *Backend) Closed() bool { return b.closed }

// Init implements view3d.Backend.
func (b *Backend) Init(cfg view3d.Config) error {
	b.cfg = cfg
	b.inited = true
	b.commands = append(b.commands, InitCommand{Config: cfg})
	return nil
}

// ShouldClose implements view3d.Backend. Scripted backends close after
// the configured number of polls; otherwise Config.MaxFrames frames are
// allowed before closing.
func (b *Backend) ShouldClose() bool {
	b.polls++
	if b.scripted {
		return b.polls > b.closeAfter
	}
	return b.polls > b.cfg.MaxFrames
}

// UpdateCamera implements view3d.Backend, invoking the update hook if one
// is installed and recording the resulting camera value.
func (b *Backend) UpdateCamera(c *view3d.Camera, mode view3d.CameraMode) {
	if b.updateHook != nil {
		b.updateHook(c, mode)
	}
	b.commands = append(b.commands, UpdateCameraCommand{Mode: mode, Camera: *c})
}

// BeginFrame implements view3d.Backend.
func (b *Backend) BeginFrame() {
	b.commands = append(b.commands, BeginFrameCommand{})
}

// Clear implements view3d.Backend.
func (b *Backend) Clear(c color.RGBA) {
	b.commands = append(b.commands, ClearCommand{Color: c})
}

// Begin3D implements view3d.Backend.
func (b *Backend) Begin3D(cam view3d.Camera) {
	b.commands = append(b.commands, Begin3DCommand{Camera: cam})
}

// DrawCube implements view3d.Backend.
func (b *Backend) DrawCube(center, size view3d.Vector3, c color.RGBA) {
	b.commands = append(b.commands, DrawCubeCommand{Center: center, Size: size, Color: c})
}

// DrawGrid implements view3d.Backend.
func (b *Backend) DrawGrid(slices int, spacing float64) {
	b.commands = append(b.commands, DrawGridCommand{Slices: slices, Spacing: spacing})
}

// End3D implements view3d.Backend.
func (b *Backend) End3D() {
	b.commands = append(b.commands, End3DCommand{})
}

// DrawText implements view3d.Backend.
func (b *Backend) DrawText(s string, x, y, size int, c color.RGBA) {
	b.commands = append(b.commands, DrawTextCommand{Text: s, X: x, Y: y, Size: size, Color: c})
}

// EndFrame implements view3d.Backend.
func (b *Backend) EndFrame() {
	b.commands = append(b.commands, EndFrameCommand{})
}

// Close implements view3d.Backend.
func (b *Backend) Close() error {
	b.closed = true
	b.commands = append(b.commands, CloseCommand{})
	return nil
}
