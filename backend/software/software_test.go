// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/view3d"
)

func newTestBackend(t *testing.T, w, h int) *Backend {
	t.Helper()
	b := New()
	if err := b.Init(view3d.Config{Width: w, Height: h}); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	return b
}

// drawDefaultFrame renders the stock demo frame into the backend.
func drawDefaultFrame(t *testing.T, b *Backend) {
	t.Helper()
	s := view3d.DefaultScene()
	cam := view3d.DefaultCamera()

	b.BeginFrame()
	b.Clear(s.Background)
	b.Begin3D(cam)
	b.DrawCube(s.Cube.Center, s.Cube.Size, s.Cube.Color)
	b.DrawGrid(s.Grid.Slices, s.Grid.Spacing)
	b.End3D()
	b.DrawText(s.Label.Text, s.Label.X, s.Label.Y, s.Label.Size, s.Label.Color)
	b.EndFrame()
}

func countColor(b *Backend, c color.RGBA) int {
	n := 0
	bounds := b.Image().Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			if b.Image().RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestInit_InvalidSize(t *testing.T) {
	if err := New().Init(view3d.Config{Width: 0, Height: 100}); err == nil {
		t.Error("Init with zero width should fail")
	}
	if err := New().Init(view3d.Config{Width: 100, Height: -1}); err == nil {
		t.Error("Init with negative height should fail")
	}
}

func TestClear(t *testing.T) {
	b := newTestBackend(t, 64, 32)
	b.Clear(view3d.Gray)

	for _, p := range [][2]int{{0, 0}, {63, 0}, {0, 31}, {63, 31}, {32, 16}} {
		if got := b.Image().RGBAAt(p[0], p[1]); got != view3d.Gray {
			t.Errorf("pixel (%d,%d) = %v, want gray", p[0], p[1], got)
		}
	}
}

// The default camera looks straight at the cube, so the center pixel of
// the frame must be cube-colored.
func TestDrawCube_CoversCenter(t *testing.T) {
	b := newTestBackend(t, 800, 450)
	drawDefaultFrame(t, b)

	if got := b.Image().RGBAAt(400, 225); got != view3d.Red {
		t.Errorf("center pixel = %v, want red cube", got)
	}
	if n := countColor(b, view3d.Red); n < 1000 {
		t.Errorf("red pixel count = %d, want a solid cube silhouette", n)
	}
}

// The grid must be visible around the cube, with darker center lines,
// but must not cut through the cube: the cube is drawn first and the
// depth test keeps nearer pixels.
func TestDrawGrid_DepthTested(t *testing.T) {
	b := newTestBackend(t, 800, 450)
	drawDefaultFrame(t, b)

	if n := countColor(b, view3d.LightGray); n == 0 {
		t.Error("no grid lines rendered")
	}
	if n := countColor(b, view3d.DarkGray); n == 0 {
		t.Error("no center grid lines rendered")
	}
	// Center of the cube face: the grid's center lines pass behind it.
	if got := b.Image().RGBAAt(400, 225); got != view3d.Red {
		t.Errorf("grid drew over the cube: center = %v", got)
	}
}

func TestDrawGrid_OutsideScopeIgnored(t *testing.T) {
	b := newTestBackend(t, 64, 64)
	b.Clear(view3d.Black)
	b.DrawGrid(10, 1) // no Begin3D
	b.DrawCube(view3d.V3(0, 0, 0), view3d.V3(2, 2, 2), view3d.Red)

	if n := countColor(b, view3d.Red) + countColor(b, view3d.LightGray); n != 0 {
		t.Errorf("draws outside the 3D scope rendered %d pixels", n)
	}
}

func TestDrawText(t *testing.T) {
	b := newTestBackend(t, 200, 100)
	b.Clear(view3d.Black)
	b.DrawText("Test", 10, 10, 16, view3d.White)

	found := false
	for y := 10; y < 30 && !found; y++ {
		for x := 10; x < 60 && !found; x++ {
			if b.Image().RGBAAt(x, y) == view3d.White {
				found = true
			}
		}
	}
	if !found {
		t.Error("no label pixels near (10,10)")
	}
}

func TestDrawText_Scaled(t *testing.T) {
	b := newTestBackend(t, 400, 200)
	b.Clear(view3d.Black)
	b.DrawText("A", 0, 0, 26, view3d.White) // 2x the 13px basicfont

	small := newTestBackend(t, 400, 200)
	small.Clear(view3d.Black)
	small.DrawText("A", 0, 0, 13, view3d.White)

	if countColor(b, view3d.White) <= countColor(small, view3d.White) {
		t.Error("scaled text should cover more pixels than native text")
	}
}

func TestShouldClose_Budget(t *testing.T) {
	b := New()
	if err := b.Init(view3d.Config{Width: 8, Height: 8, MaxFrames: 2}); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if b.ShouldClose() {
		t.Error("should not close before any frame")
	}
	b.BeginFrame()
	b.EndFrame()
	if b.ShouldClose() {
		t.Error("should not close after 1 of 2 frames")
	}
	b.BeginFrame()
	b.EndFrame()
	if !b.ShouldClose() {
		t.Error("should close after the frame budget is spent")
	}

	// Without a budget the backend never closes on its own.
	nb := newTestBackend(t, 8, 8)
	if nb.ShouldClose() {
		t.Error("no-budget backend should never close")
	}
}

func TestUpdateCamera_NoOp(t *testing.T) {
	b := newTestBackend(t, 8, 8)
	cam := view3d.DefaultCamera()
	before := cam
	b.UpdateCamera(&cam, view3d.CameraFree)
	if cam != before {
		t.Errorf("camera mutated by headless backend: %+v", cam)
	}
}

func TestSnapshot_Copies(t *testing.T) {
	b := newTestBackend(t, 16, 16)
	b.Clear(view3d.Red)
	snap := b.Snapshot()
	b.Clear(view3d.Black)

	if got := snap.RGBAAt(8, 8); got != view3d.Red {
		t.Errorf("snapshot mutated by later draw: %v", got)
	}
}

func TestSavePNG(t *testing.T) {
	b := newTestBackend(t, 32, 16)
	b.Clear(view3d.Gray)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := b.SavePNG(path); err != nil {
		t.Fatalf("SavePNG error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Errorf("decoded size = %v, want 32x16", img.Bounds())
	}
}

func TestBackend_Registered(t *testing.T) {
	if !view3d.IsRegistered("software") {
		t.Fatal("software backend not registered")
	}
}

// Full pipeline: the viewer drives the software backend for a budgeted
// number of frames and terminates cleanly.
func TestViewerIntegration(t *testing.T) {
	b := New()
	v := view3d.New(b,
		view3d.WithConfig(view3d.Config{Width: 160, Height: 90, MaxFrames: 2}),
		view3d.WithCameraMode(view3d.CameraNone),
	)
	if err := v.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if v.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", v.Frames())
	}
	if b.Frames() != 2 {
		t.Errorf("backend frames = %d, want 2", b.Frames())
	}
	if got := b.Image().RGBAAt(80, 45); got != view3d.Red {
		t.Errorf("center pixel = %v, want red cube", got)
	}
}
