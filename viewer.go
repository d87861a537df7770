package view3d

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// ErrTerminated is returned by Run when the viewer has already run to
// completion. A Viewer drives exactly one window lifetime.
var ErrTerminated = errors.New("view3d: viewer already terminated")

// Viewer loop states. The machine is Running -> Terminated with
// Terminated absorbing; there are no error states because backend
// failures abort rather than report at this layer.
const (
	stateIdle int32 = iota
	stateRunning
	stateTerminated
)

// Viewer owns a camera and a fixed frame cadence. Each iteration it
// updates the camera from input, clears the framebuffer, renders the
// scene's cube and grid inside a 3D scope, draws the overlay label, and
// presents the frame. It terminates when the backend reports a close
// request.
//
// A Viewer is single-threaded: the goroutine calling Run owns the camera,
// the scene, and all backend calls.
type Viewer struct {
	backend Backend
	cfg     Config
	scene   Scene
	camera  Camera
	mode    CameraMode

	state  atomic.Int32
	frames atomic.Uint64
}

// New creates a Viewer driving the given backend. With no options it uses
// the stock demo configuration: an 800x450 resizable window titled
// "Raylib Test", the default scene and camera, and free navigation.
func New(b Backend, opts ...Option) *Viewer {
	o := defaultViewerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Viewer{
		backend: b,
		cfg:     o.cfg.withDefaults(),
		scene:   o.scene,
		camera:  o.camera,
		mode:    o.mode,
	}
}

// Backend returns the backend the viewer drives.
func (v *Viewer) Backend() Backend { return v.backend }

// Config returns the window configuration, with defaults applied.
func (v *Viewer) Config() Config { return v.cfg }

// Scene returns the scene drawn each frame.
func (v *Viewer) Scene() Scene { return v.scene }

// Camera returns a snapshot of the camera state. Call it from the
// goroutine running the loop, or after Run has returned.
func (v *Viewer) Camera() Camera { return v.camera }

// Frames returns the number of full frame iterations presented so far.
// It is safe to call from any goroutine.
func (v *Viewer) Frames() uint64 { return v.frames.Load() }

// Run opens the window, enters the frame loop, and blocks until the
// backend reports a close request. The backend is released on every exit
// path. Run returns nil on a normal close; the close signal is the only
// terminator. Calling Run a second time returns ErrTerminated.
func (v *Viewer) Run() (err error) {
	if !v.state.CompareAndSwap(stateIdle, stateRunning) {
		return ErrTerminated
	}
	defer v.state.Store(stateTerminated)

	if err := v.backend.Init(v.cfg); err != nil {
		return fmt.Errorf("view3d: backend init: %w", err)
	}
	defer func() {
		if cerr := v.backend.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("view3d: backend close: %w", cerr)
		}
	}()

	log := Logger()
	log.Info("view3d: loop started",
		slog.String("title", v.cfg.Title),
		slog.Int("width", v.cfg.Width),
		slog.Int("height", v.cfg.Height))
	if !v.camera.Valid() {
		log.Warn("view3d: degenerate camera orientation",
			slog.Any("position", v.camera.Position),
			slog.Any("up", v.camera.Up))
	}

	// The close signal is consulted only here, at the top of an
	// iteration. A frame that has begun always completes.
	for !v.backend.ShouldClose() {
		v.Step()
	}

	log.Info("view3d: loop terminated", slog.Uint64("frames", v.frames.Load()))
	return nil
}

// Step performs exactly one frame iteration: camera update, then the full
// draw sequence. It does not poll the close signal; Run does that between
// steps. Step exists so push-style hosts that own their own cadence can
// drive the viewer one frame at a time. Most callers should use Run.
func (v *Viewer) Step() {
	v.backend.UpdateCamera(&v.camera, v.mode)
	v.frame()
	v.frames.Add(1)
}

// frame brackets one frame's drawing scope. EndFrame is deferred so the
// scope is closed even if a draw call panics; in practice graphics
// libraries abort the process on such errors and no recovery happens at
// this layer.
func (v *Viewer) frame() {
	v.backend.BeginFrame()
	defer v.backend.EndFrame()

	v.backend.Clear(v.scene.Background)
	v.draw3D()

	// Overlay is drawn strictly after the 3D scope closes, so it renders
	// in screen coordinates and is never depth-occluded.
	l := v.scene.Label
	v.backend.DrawText(l.Text, l.X, l.Y, l.Size, l.Color)
}

// draw3D brackets the 3D scope for one frame. The camera is passed by
// value: exactly the state this iteration's navigation step produced.
func (v *Viewer) draw3D() {
	v.backend.Begin3D(v.camera)
	defer v.backend.End3D()

	c := v.scene.Cube
	v.backend.DrawCube(c.Center, c.Size, c.Color)
	g := v.scene.Grid
	v.backend.DrawGrid(g.Slices, g.Spacing)
}
