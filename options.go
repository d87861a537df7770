package view3d

// Option configures a Viewer during creation.
// Use functional options to customize Viewer behavior.
//
// Example:
//
//	// Stock demo scene and camera
//	v := view3d.New(b)
//
//	// Custom starting position (the other demo variant)
//	v := view3d.New(b, view3d.WithCameraPosition(view3d.V3(5, 5, 5)))
type Option func(*viewerOptions)

// viewerOptions holds optional configuration for Viewer creation.
type viewerOptions struct {
	cfg    Config
	scene  Scene
	camera Camera
	mode   CameraMode
}

// defaultViewerOptions returns the default viewer options: the stock demo
// scene and camera, free navigation, and an 800x450 resizable window
// titled "Raylib Test" targeting 60 FPS.
func defaultViewerOptions() viewerOptions {
	return viewerOptions{
		cfg: Config{
			Title:     "Raylib Test",
			Width:     800,
			Height:    450,
			Resizable: true,
			TargetFPS: 60,
		},
		scene:  DefaultScene(),
		camera: DefaultCamera(),
		mode:   CameraFree,
	}
}

// WithConfig sets the window configuration handed to the backend at Init.
// Zero-valued size and FPS fields fall back to 800x450 and 60.
func WithConfig(cfg Config) Option {
	return func(o *viewerOptions) {
		o.cfg = cfg
	}
}

// WithScene replaces the scene drawn each frame.
func WithScene(s Scene) Option {
	return func(o *viewerOptions) {
		o.scene = s
	}
}

// WithCamera sets the camera's starting state.
func WithCamera(c Camera) Option {
	return func(o *viewerOptions) {
		o.camera = c
	}
}

// WithCameraPosition sets only the camera's starting position, keeping the
// stock target, up vector, and projection. The demo ships with (10,10,10);
// (5,5,5) is the other commonly used variant. The two are arbitrary demo
// values with no behavioral difference.
func WithCameraPosition(p Vector3) Option {
	return func(o *viewerOptions) {
		o.camera.Position = p
	}
}

// WithCameraMode sets the navigation mode passed to the backend's camera
// update. Use CameraNone for deterministic headless runs.
func WithCameraMode(m CameraMode) Option {
	return func(o *viewerOptions) {
		o.mode = m
	}
}
