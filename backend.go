package view3d

import "image/color"

// Config carries the window and cadence configuration handed to a backend
// at Init time.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels.
	// Zero values fall back to 800x450.
	Width, Height int
	// Resizable requests a user-resizable window.
	Resizable bool
	// TargetFPS is the advisory frame-rate target. Zero falls back to 60.
	// Pacing is best effort, not a real-time guarantee.
	TargetFPS int
	// MaxFrames, when positive, makes the backend report a close request
	// after that many presented frames. Used for headless and budgeted
	// runs; zero means the window's close signal is the only terminator.
	MaxFrames int
}

// withDefaults returns cfg with zero-valued fields replaced by defaults.
func (cfg Config) withDefaults() Config {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 450
	}
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = 60
	}
	return cfg
}

// Backend is the windowing/graphics collaborator driven by the viewer loop.
// Implementations translate the calls to a concrete library (raylib, an
// ebiten-hosted window, a headless CPU renderer) or record them for
// inspection.
//
// The viewer guarantees the per-iteration call order documented in the
// package comment; backends may rely on it. Calls are made from a single
// goroutine. A backend is used for at most one Init/Close cycle.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register in their init functions.
type Backend interface {
	// Init opens the window (or allocates the offscreen target) and
	// applies the frame-rate target. It is called exactly once, before
	// any other method.
	Init(cfg Config) error

	// ShouldClose polls for a close request. It must not block.
	ShouldClose() bool

	// UpdateCamera advances the camera's navigation for one frame,
	// consuming whatever raw input the backend has collected. The camera
	// is mutated in place. Backends without an input source treat this
	// as a no-op.
	UpdateCamera(c *Camera, mode CameraMode)

	// BeginFrame opens the drawing scope for one frame.
	BeginFrame()

	// Clear fills the frame with the given background color.
	Clear(c color.RGBA)

	// Begin3D opens the 3D scope using the given camera. The camera is
	// passed by value: the backend sees exactly the state produced by
	// this iteration's UpdateCamera.
	Begin3D(cam Camera)

	// DrawCube draws a solid cube. Valid only inside the 3D scope.
	DrawCube(center, size Vector3, c color.RGBA)

	// DrawGrid draws a ground grid centered at the origin on the XZ
	// plane. Valid only inside the 3D scope.
	DrawGrid(slices int, spacing float64)

	// End3D closes the 3D scope.
	End3D()

	// DrawText draws screen-space text. Valid only outside the 3D scope,
	// inside the frame scope. Position is in pixels from the top-left.
	DrawText(s string, x, y, size int, c color.RGBA)

	// EndFrame closes the drawing scope and presents the frame.
	EndFrame()

	// Close releases the window and all backend resources. It is called
	// exactly once, after the loop exits, on every exit path.
	Close() error
}
