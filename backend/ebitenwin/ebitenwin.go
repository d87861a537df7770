// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ebitenwin provides an ebiten-hosted window backend for view3d.
//
// Ebiten owns the window and the 60 Hz cadence, but drives its game loop
// itself, while a view3d viewer expects to drive its backend. The package
// bridges the two: the viewer loop runs on a worker goroutine and draws
// through an embedded software renderer, while the ebiten game on the
// calling goroutine hands out one frame tick per Update, collects
// keyboard/mouse input for the free camera, and presents the finished
// framebuffer each Draw.
//
// Because ebiten requires its game loop to run on the program's main
// goroutine, the viewer must be started through [Run] rather than calling
// Viewer.Run directly:
//
//	b := ebitenwin.New()
//	v := view3d.New(b)
//	if err := ebitenwin.Run(v); err != nil {
//	    log.Fatal(err)
//	}
//
// Free-camera controls: WASD moves, E/Q move up/down along the up axis,
// mouse-look while the right button is held, wheel dollies toward the
// target.
package ebitenwin

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/view3d"
	"github.com/gogpu/view3d/backend/software"
	"github.com/gogpu/view3d/internal/freecam"
)

func init() {
	view3d.Register("ebiten", func() view3d.Backend {
		return New()
	})
}

// Backend drives an ebiten window. Drawing is delegated to an embedded
// software renderer; the handshake with the ebiten game loop lives here.
type Backend struct {
	soft *software.Backend
	cfg  view3d.Config

	// Handshake channels. tick grants the viewer one frame per ebiten
	// Update; done reports the frame finished; quit is closed when the
	// viewer closes the backend; ended is closed when the ebiten game
	// loop has returned (window closed); inited is closed when Init has
	// published cfg and present, which Layout and Draw read on the game
	// goroutine.
	tick   chan struct{}
	done   chan struct{}
	quit   chan struct{}
	ended  chan struct{}
	inited chan struct{}

	quitOnce sync.Once
	endOnce  sync.Once

	mu      sync.Mutex
	input   freecam.Input
	present *image.RGBA

	lastCursorX int
	lastCursorY int
	haveCursor  bool

	frames int
}

// New creates an ebiten window backend.
func New() *Backend {
	return &Backend{
		soft:   software.New(),
		tick:   make(chan struct{}),
		done:   make(chan struct{}),
		quit:   make(chan struct{}),
		ended:  make(chan struct{}),
		inited: make(chan struct{}),
	}
}

// Init implements view3d.Backend, configuring the window and allocating
// the offscreen frame target. The window itself appears when [Run] starts
// the ebiten game loop.
func (b *Backend) Init(cfg view3d.Config) error {
	b.cfg = cfg

	// The software renderer does no pacing and no frame budgeting of its
	// own; ebiten's TPS is the cadence and ShouldClose owns the budget.
	softCfg := cfg
	softCfg.TargetFPS = 0
	softCfg.MaxFrames = 0
	if err := b.soft.Init(softCfg); err != nil {
		return err
	}
	b.present = image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TargetFPS > 0 {
		ebiten.SetTPS(cfg.TargetFPS)
	}
	view3d.Logger().Info("ebitenwin: window configured",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	close(b.inited)
	return nil
}

// ShouldClose implements view3d.Backend: true once the window has closed
// or the frame budget is spent.
func (b *Backend) ShouldClose() bool {
	select {
	case <-b.ended:
		return true
	default:
	}
	return b.cfg.MaxFrames > 0 && b.frames >= b.cfg.MaxFrames
}

// UpdateCamera implements view3d.Backend, applying one frame of free
// navigation from the input collected by the last ebiten Update.
func (b *Backend) UpdateCamera(c *view3d.Camera, mode view3d.CameraMode) {
	if mode != view3d.CameraFree {
		return
	}
	b.mu.Lock()
	in := b.input
	b.input.MouseDX = 0
	b.input.MouseDY = 0
	b.input.Wheel = 0
	b.mu.Unlock()

	fps := b.cfg.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	freecam.Update(c, in, 1/float64(fps))
}

// BeginFrame implements view3d.Backend, blocking until the ebiten game
// grants a frame tick. When the window has already closed the frame
// proceeds immediately; the draws land offscreen and the loop observes
// the close signal on its next poll.
func (b *Backend) BeginFrame() {
	select {
	case <-b.tick:
	case <-b.ended:
	}
	b.soft.BeginFrame()
}

// Clear implements view3d.Backend.
func (b *Backend) Clear(c color.RGBA) { b.soft.Clear(c) }

// Begin3D implements view3d.Backend.
func (b *Backend) Begin3D(cam view3d.Camera) { b.soft.Begin3D(cam) }

// DrawCube implements view3d.Backend.
func (b *Backend) DrawCube(center, size view3d.Vector3, c color.RGBA) {
	b.soft.DrawCube(center, size, c)
}

// DrawGrid implements view3d.Backend.
func (b *Backend) DrawGrid(slices int, spacing float64) {
	b.soft.DrawGrid(slices, spacing)
}

// End3D implements view3d.Backend.
func (b *Backend) End3D() { b.soft.End3D() }

// DrawText implements view3d.Backend.
func (b *Backend) DrawText(s string, x, y, size int, c color.RGBA) {
	b.soft.DrawText(s, x, y, size, c)
}

// EndFrame implements view3d.Backend, publishing the finished frame for
// presentation and releasing the waiting ebiten Update.
func (b *Backend) EndFrame() {
	b.soft.EndFrame()
	b.mu.Lock()
	copy(b.present.Pix, b.soft.Image().Pix)
	b.mu.Unlock()
	b.frames++

	select {
	case b.done <- struct{}{}:
	case <-b.ended:
	}
}

// Close implements view3d.Backend, asking the ebiten game loop to
// terminate.
func (b *Backend) Close() error {
	b.quitOnce.Do(func() { close(b.quit) })
	view3d.Logger().Info("ebitenwin: closed", "frames", b.frames)
	return b.soft.Close()
}

// markEnded records that the ebiten game loop has returned.
func (b *Backend) markEnded() {
	b.endOnce.Do(func() { close(b.ended) })
}

// captureInput samples ebiten's input state into the shared snapshot.
// Called from the game's Update on the ebiten goroutine.
func (b *Backend) captureInput() {
	x, y := ebiten.CursorPosition()
	var dx, dy float64
	if b.haveCursor && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		dx = float64(x - b.lastCursorX)
		dy = float64(y - b.lastCursorY)
	}
	b.lastCursorX, b.lastCursorY = x, y
	b.haveCursor = true
	_, wheelY := ebiten.Wheel()

	b.mu.Lock()
	b.input.Forward = ebiten.IsKeyPressed(ebiten.KeyW)
	b.input.Back = ebiten.IsKeyPressed(ebiten.KeyS)
	b.input.Left = ebiten.IsKeyPressed(ebiten.KeyA)
	b.input.Right = ebiten.IsKeyPressed(ebiten.KeyD)
	b.input.Up = ebiten.IsKeyPressed(ebiten.KeyE)
	b.input.Down = ebiten.IsKeyPressed(ebiten.KeyQ)
	b.input.MouseDX += dx
	b.input.MouseDY += dy
	b.input.Wheel += wheelY
	b.mu.Unlock()
}

// game adapts the backend handshake to ebiten's Game interface.
type game struct {
	b *Backend
}

// Update grants the viewer exactly one frame and waits for it to finish,
// keeping the viewer loop in lockstep with ebiten's tick rate.
func (g *game) Update() error {
	select {
	case <-g.b.quit:
		return ebiten.Termination
	default:
	}
	g.b.captureInput()

	select {
	case g.b.tick <- struct{}{}:
	case <-g.b.quit:
		return ebiten.Termination
	}
	select {
	case <-g.b.done:
	case <-g.b.quit:
		return ebiten.Termination
	}
	return nil
}

// Draw presents the most recently completed frame.
func (g *game) Draw(screen *ebiten.Image) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	if g.b.present != nil {
		screen.WritePixels(g.b.present.Pix)
	}
}

// Layout fixes the logical resolution to the configured size; the window
// may still be resized, scaling the framebuffer.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.b.cfg.Width, g.b.cfg.Height
}

// Run drives the viewer under an ebiten window. It starts the viewer loop
// on a worker goroutine and runs the ebiten game loop on the calling
// goroutine, which must be the program's main goroutine. Run returns when
// both loops have finished: after the window closes or the viewer's frame
// budget is spent.
func Run(v *view3d.Viewer) error {
	b, ok := v.Backend().(*Backend)
	if !ok {
		return errors.New("ebitenwin: viewer is not using an ebitenwin backend")
	}

	errc := make(chan error, 1)
	go func() {
		err := v.Run()
		// Close normally signals quit; repeat here so the game loop
		// still terminates if the viewer failed before opening.
		b.quitOnce.Do(func() { close(b.quit) })
		errc <- err
	}()

	// The game loop must not start until Init has published the window
	// configuration and the frame target it reads. A viewer that fails
	// before reaching Init never signals, so its error ends Run here.
	select {
	case <-b.inited:
	case err := <-errc:
		b.markEnded()
		return err
	}

	gerr := ebiten.RunGame(&game{b: b})
	b.markEnded()
	verr := <-errc

	if gerr != nil && !errors.Is(gerr, ebiten.Termination) {
		return gerr
	}
	return verr
}
