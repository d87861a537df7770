package view3d

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultViewerOptions()

	if o.cfg.Title != "Raylib Test" {
		t.Errorf("Title = %q, want %q", o.cfg.Title, "Raylib Test")
	}
	if o.cfg.Width != 800 || o.cfg.Height != 450 {
		t.Errorf("size = %dx%d, want 800x450", o.cfg.Width, o.cfg.Height)
	}
	if !o.cfg.Resizable {
		t.Error("default window should be resizable")
	}
	if o.cfg.TargetFPS != 60 {
		t.Errorf("TargetFPS = %d, want 60", o.cfg.TargetFPS)
	}
	if o.mode != CameraFree {
		t.Errorf("mode = %v, want CameraFree", o.mode)
	}
	if o.scene != DefaultScene() {
		t.Error("default scene mismatch")
	}
}

func TestWithConfig(t *testing.T) {
	cfg := Config{Title: "custom", Width: 320, Height: 200, TargetFPS: 30}
	v := New(nopBackend{}, WithConfig(cfg))
	if got := v.Config(); got != cfg {
		t.Errorf("Config() = %+v, want %+v", got, cfg)
	}
}

func TestConfigDefaults(t *testing.T) {
	// Zero-valued size and FPS fall back to the stock window.
	v := New(nopBackend{}, WithConfig(Config{Title: "t"}))
	cfg := v.Config()
	if cfg.Width != 800 || cfg.Height != 450 {
		t.Errorf("size = %dx%d, want 800x450", cfg.Width, cfg.Height)
	}
	if cfg.TargetFPS != 60 {
		t.Errorf("TargetFPS = %d, want 60", cfg.TargetFPS)
	}
}

func TestWithCameraPosition(t *testing.T) {
	// The other demo variant starts at (5,5,5); everything else keeps the
	// stock camera.
	v := New(nopBackend{}, WithCameraPosition(V3(5, 5, 5)))
	c := v.Camera()
	if !c.Position.Approx(V3(5, 5, 5), 0) {
		t.Errorf("Position = %v, want (5, 5, 5)", c.Position)
	}
	want := DefaultCamera()
	if c.Target != want.Target || c.Up != want.Up || c.FovY != want.FovY {
		t.Errorf("non-position camera fields changed: %+v", c)
	}
}

func TestWithCamera(t *testing.T) {
	cam := Camera{
		Position:   V3(1, 2, 3),
		Target:     V3(0, 1, 0),
		Up:         V3(0, 1, 0),
		FovY:       45,
		Projection: Orthographic,
	}
	v := New(nopBackend{}, WithCamera(cam))
	if v.Camera() != cam {
		t.Errorf("Camera() = %+v, want %+v", v.Camera(), cam)
	}
}

func TestWithScene(t *testing.T) {
	s := DefaultScene()
	s.Label.Text = "other"
	s.Cube.Size = V3(1, 1, 1)
	v := New(nopBackend{}, WithScene(s))
	if v.Scene() != s {
		t.Errorf("Scene() = %+v, want %+v", v.Scene(), s)
	}
}

func TestWithCameraMode(t *testing.T) {
	v := New(nopBackend{}, WithCameraMode(CameraNone))
	if v.mode != CameraNone {
		t.Errorf("mode = %v, want CameraNone", v.mode)
	}
}
