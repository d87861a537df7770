// Package view3d provides a minimal interactive 3D viewer loop for Go.
//
// # Overview
//
// view3d drives one window's render cadence: each frame it updates a free
// camera from input, clears the framebuffer, renders a fixed 3D scene (one
// cube, one ground grid), draws a 2D overlay label, and presents the frame.
// The loop runs until the windowing backend reports a close request.
//
// All windowing and drawing is delegated to a pluggable [Backend]. The core
// owns only the [Camera] value, the [Scene] description, and the per-frame
// ordering contract.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/view3d"
//	    _ "github.com/gogpu/view3d/backend/raylib" // registers "raylib"
//	)
//
//	b := view3d.MustBackend("raylib")
//	v := view3d.New(b, view3d.WithConfig(view3d.Config{
//	    Title:     "Raylib Test",
//	    Width:     800,
//	    Height:    450,
//	    Resizable: true,
//	}))
//	if err := v.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Backends
//
// Backends register by name using the database/sql driver pattern. Import a
// backend package with a blank identifier to make it available:
//
//	_ "github.com/gogpu/view3d/backend/raylib"    // native raylib window
//	_ "github.com/gogpu/view3d/backend/ebitenwin" // ebiten-hosted window
//	_ "github.com/gogpu/view3d/backend/software"  // headless CPU renderer
//	_ "github.com/gogpu/view3d/backend/record"    // command recorder
//
// # Frame Ordering Contract
//
// Within one iteration the backend is always invoked in this order:
//
//	UpdateCamera -> BeginFrame -> Clear -> Begin3D -> DrawCube ->
//	DrawGrid -> End3D -> DrawText -> EndFrame
//
// The overlay text is drawn after End3D so it renders in screen space and is
// never depth-occluded. The close signal is consulted only at the top of an
// iteration; a frame that has begun always completes.
//
// # Coordinate System
//
// World space is right-handed with +Y up, matching raylib. Screen space for
// the overlay has the origin at the top-left with Y increasing down.
package view3d
