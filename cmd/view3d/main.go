// Command view3d runs the demo viewer: a red cube and a ground grid under
// a free camera, with a text overlay.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/view3d"
	"github.com/gogpu/view3d/backend/ebitenwin"
	"github.com/gogpu/view3d/backend/record"
	"github.com/gogpu/view3d/backend/software"

	_ "github.com/gogpu/view3d/backend/raylib"
)

func main() {
	var (
		backendName = flag.String("backend", "raylib", "backend to use: "+strings.Join(view3d.Backends(), ", "))
		title       = flag.String("title", "Raylib Test", "window title")
		width       = flag.Int("width", 800, "window width")
		height      = flag.Int("height", 450, "window height")
		cameraPos   = flag.String("camera", "10,10,10", "camera starting position as x,y,z")
		ortho       = flag.Bool("ortho", false, "use an orthographic projection")
		frames      = flag.Int("frames", 0, "close after this many frames (0 = run until the window closes)")
		snapshot    = flag.String("snapshot", "", "write the final frame to this PNG file (software backend only)")
		verbose     = flag.Bool("v", false, "enable logging to stderr")
	)
	flag.Parse()

	if *verbose {
		view3d.SetLogger(slog.Default())
	}

	pos, err := parseVec3(*cameraPos)
	if err != nil {
		log.Fatalf("Invalid -camera value: %v", err)
	}

	b, err := view3d.NewBackend(*backendName)
	if err != nil {
		log.Fatal(err)
	}

	camera := view3d.DefaultCamera()
	camera.Position = pos
	if *ortho {
		camera.Projection = view3d.Orthographic
		camera.FovY = 20 // vertical extent in world units
	}

	mode := view3d.CameraFree
	if _, headless := b.(*software.Backend); headless {
		mode = view3d.CameraNone
		if *frames <= 0 {
			*frames = 1 // a software run with no budget would never end
		}
	}

	v := view3d.New(b,
		view3d.WithConfig(view3d.Config{
			Title:     *title,
			Width:     *width,
			Height:    *height,
			Resizable: true,
			TargetFPS: 60,
			MaxFrames: *frames,
		}),
		view3d.WithCamera(camera),
		view3d.WithCameraMode(mode),
	)

	// The ebiten backend needs the game loop on the main goroutine.
	if _, hosted := b.(*ebitenwin.Backend); hosted {
		err = ebitenwin.Run(v)
	} else {
		err = v.Run()
	}
	if err != nil {
		log.Fatal(err)
	}

	switch b := b.(type) {
	case *software.Backend:
		if *snapshot != "" {
			if err := b.SavePNG(*snapshot); err != nil {
				log.Fatal(err)
			}
			log.Printf("Snapshot saved to %s (%dx%d)\n", *snapshot, *width, *height)
		}
	case *record.Backend:
		for _, cmd := range b.Commands() {
			fmt.Println(cmd.Type())
		}
	}
}

// parseVec3 parses "x,y,z" into a vector.
func parseVec3(s string) (view3d.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return view3d.Vector3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var out [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return view3d.Vector3{}, fmt.Errorf("component %d of %q: %v", i, s, err)
		}
		out[i] = v
	}
	return view3d.V3(out[0], out[1], out[2]), nil
}
