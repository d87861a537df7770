// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package record

import (
	"image/color"

	"github.com/gogpu/view3d"
)

// CommandType identifies the type of a recorded backend call.
type CommandType uint8

const (
	// Lifecycle commands
	CmdInit  CommandType = iota // Window/context initialization
	CmdClose                    // Window/context teardown

	// Per-frame commands
	CmdUpdateCamera // Navigation camera update
	CmdBeginFrame   // Open the drawing scope
	CmdClear        // Background clear
	CmdBegin3D      // Open the 3D scope
	CmdDrawCube     // Cube draw inside the 3D scope
	CmdDrawGrid     // Grid draw inside the 3D scope
	CmdEnd3D        // Close the 3D scope
	CmdDrawText     // Screen-space text draw
	CmdEndFrame     // Close the drawing scope, present
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdInit:         "Init",
	CmdClose:        "Close",
	CmdUpdateCamera: "UpdateCamera",
	CmdBeginFrame:   "BeginFrame",
	CmdClear:        "Clear",
	CmdBegin3D:      "Begin3D",
	CmdDrawCube:     "DrawCube",
	CmdDrawGrid:     "DrawGrid",
	CmdEnd3D:        "End3D",
	CmdDrawText:     "DrawText",
	CmdEndFrame:     "EndFrame",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// InitCommand records backend initialization with the effective window
// configuration.
type InitCommand struct {
	Config view3d.Config
}

func (InitCommand) Type() CommandType { return CmdInit }

// CloseCommand records backend teardown.
type CloseCommand struct{}

func (CloseCommand) Type() CommandType { return CmdClose }

// UpdateCameraCommand records one navigation step. Camera holds the value
// the step produced, after any mutation by the update hook.
type UpdateCameraCommand struct {
	Mode   view3d.CameraMode
	Camera view3d.Camera
}

func (UpdateCameraCommand) Type() CommandType { return CmdUpdateCamera }

// BeginFrameCommand records the opening of a drawing scope.
type BeginFrameCommand struct{}

func (BeginFrameCommand) Type() CommandType { return CmdBeginFrame }

// ClearCommand records a background clear.
type ClearCommand struct {
	Color color.RGBA
}

func (ClearCommand) Type() CommandType { return CmdClear }

// Begin3DCommand records the opening of a 3D scope with the camera value
// supplied to it.
type Begin3DCommand struct {
	Camera view3d.Camera
}

func (Begin3DCommand) Type() CommandType { return CmdBegin3D }

// DrawCubeCommand records a cube draw.
type DrawCubeCommand struct {
	Center view3d.Vector3
	Size   view3d.Vector3
	Color  color.RGBA
}

func (DrawCubeCommand) Type() CommandType { return CmdDrawCube }

// DrawGridCommand records a grid draw.
type DrawGridCommand struct {
	Slices  int
	Spacing float64
}

func (DrawGridCommand) Type() CommandType { return CmdDrawGrid }

// End3DCommand records the closing of a 3D scope.
type End3DCommand struct{}

func (End3DCommand) Type() CommandType { return CmdEnd3D }

// DrawTextCommand records a screen-space text draw.
type DrawTextCommand struct {
	Text  string
	X, Y  int
	Size  int
	Color color.RGBA
}

func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// EndFrameCommand records the closing of a drawing scope (frame present).
type EndFrameCommand struct{}

func (EndFrameCommand) Type() CommandType { return CmdEndFrame }
