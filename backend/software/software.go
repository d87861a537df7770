// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package software provides a headless CPU backend for view3d.
//
// It renders each frame into an *image.RGBA using a small z-buffered
// rasterizer: flat-shaded triangles for the cube, depth-tested lines for
// the grid, and bitmap-font text for the overlay. There is no window and
// no input source, so UpdateCamera is a no-op; pair it with
// view3d.CameraNone or a host that moves the camera itself.
//
// The renderer targets snapshot output and tests, not visual fidelity:
// geometry with vertices behind the near plane is clipped per line and
// dropped per triangle, and overlay text uses the fixed 7x13 basicfont
// regardless of the requested size (scaled by integer factors only).
//
// # Usage
//
//	b := software.New()
//	v := view3d.New(b,
//	    view3d.WithConfig(view3d.Config{Width: 800, Height: 450, MaxFrames: 1}),
//	    view3d.WithCameraMode(view3d.CameraNone))
//	if err := v.Run(); err != nil {
//	    log.Fatal(err)
//	}
//	err := b.SavePNG("frame.png")
package software

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/view3d"
)

func init() {
	view3d.Register("software", func() view3d.Backend {
		return New()
	})
}

// Backend renders frames into an offscreen RGBA image.
// The zero value is not usable; construct with New.
type Backend struct {
	cfg  view3d.Config
	img  *image.RGBA
	zbuf []float64

	viewProj Mat4
	in3D     bool

	frames    int
	frameTime time.Duration
	lastFrame time.Time
}

// New creates a software backend. The render target is allocated at Init
// from the configured window size.
func New() *Backend {
	return &Backend{}
}

// Init implements view3d.Backend.
func (b *Backend) Init(cfg view3d.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("software: invalid target size %dx%d", cfg.Width, cfg.Height)
	}
	b.cfg = cfg
	b.img = image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	b.zbuf = make([]float64, cfg.Width*cfg.Height)
	if cfg.TargetFPS > 0 {
		b.frameTime = time.Second / time.Duration(cfg.TargetFPS)
	}
	view3d.Logger().Info("software: render target allocated",
		"width", cfg.Width, "height", cfg.Height)
	return nil
}

// ShouldClose implements view3d.Backend. With no window there is no user
// close signal; the backend closes only when the configured MaxFrames
// budget is spent. A zero budget never closes, so headless runs should
// always set one.
func (b *Backend) ShouldClose() bool {
	return b.cfg.MaxFrames > 0 && b.frames >= b.cfg.MaxFrames
}

// UpdateCamera implements view3d.Backend. The software backend has no
// input source, so the camera is left untouched for every mode.
func (b *Backend) UpdateCamera(c *view3d.Camera, mode view3d.CameraMode) {}

// BeginFrame implements view3d.Backend.
func (b *Backend) BeginFrame() {
	if b.lastFrame.IsZero() {
		b.lastFrame = time.Now()
	}
}

// Clear implements view3d.Backend.
func (b *Backend) Clear(c color.RGBA) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Begin3D implements view3d.Backend. It derives the frame's
// projection*view matrix from the camera and resets the depth buffer.
func (b *Backend) Begin3D(cam view3d.Camera) {
	aspect := float64(b.cfg.Width) / float64(b.cfg.Height)
	b.viewProj = cameraMatrix(cam, aspect)
	for i := range b.zbuf {
		b.zbuf[i] = math.Inf(1)
	}
	b.in3D = true
}

// End3D implements view3d.Backend.
func (b *Backend) End3D() {
	b.in3D = false
}

// DrawCube implements view3d.Backend, rasterizing the box as twelve
// flat-shaded triangles in the cube's single color, like raylib's unlit
// DrawCube.
func (b *Backend) DrawCube(center, size view3d.Vector3, c color.RGBA) {
	if !b.in3D {
		return
	}
	h := size.Scale(0.5)
	// The eight corners, indexed by the sign bits of (x,y,z).
	var corners [8]Vec4
	behind := false
	for i := range corners {
		p := view3d.Vector3{
			X: center.X + h.X*signBit(i, 0),
			Y: center.Y + h.Y*signBit(i, 1),
			Z: center.Z + h.Z*signBit(i, 2),
		}
		corners[i] = b.viewProj.MulVec(p)
		if corners[i].W <= 0 {
			behind = true
		}
	}
	if behind {
		// No per-triangle near clipping; a cube straddling the near
		// plane is dropped whole.
		return
	}
	var frags [8]fragment
	for i, v := range corners {
		frags[i] = b.toScreen(v)
	}
	for _, f := range cubeFaces {
		b.fillTriangle(frags[f[0]], frags[f[1]], frags[f[2]], c)
		b.fillTriangle(frags[f[0]], frags[f[2]], frags[f[3]], c)
	}
}

// cubeFaces lists each face as four corner indices in perimeter order.
// The corner index encodes the sign of x, y, z in bits 0, 1, 2.
var cubeFaces = [6][4]int{
	{0, 1, 3, 2}, // -z
	{4, 5, 7, 6}, // +z
	{0, 1, 5, 4}, // -y
	{2, 3, 7, 6}, // +y
	{0, 2, 6, 4}, // -x
	{1, 3, 7, 5}, // +x
}

// signBit returns -1 or +1 depending on bit `bit` of i.
func signBit(i, bit int) float64 {
	if i&(1<<bit) != 0 {
		return 1
	}
	return -1
}

// DrawGrid implements view3d.Backend, drawing slices+1 lines along each
// of X and Z on the ground plane, center lines darker, matching raylib's
// DrawGrid look.
func (b *Backend) DrawGrid(slices int, spacing float64) {
	if !b.in3D || slices <= 0 {
		return
	}
	half := float64(slices) / 2 * spacing
	for i := 0; i <= slices; i++ {
		offset := -half + float64(i)*spacing
		c := view3d.LightGray
		if i*2 == slices {
			c = view3d.DarkGray
		}
		b.line3D(view3d.V3(offset, 0, -half), view3d.V3(offset, 0, half), c)
		b.line3D(view3d.V3(-half, 0, offset), view3d.V3(half, 0, offset), c)
	}
}

// line3D projects and draws one world-space segment with near-plane
// clipping and depth testing.
func (b *Backend) line3D(p0, p1 view3d.Vector3, c color.RGBA) {
	a, bb, ok := clipNear(b.viewProj.MulVec(p0), b.viewProj.MulVec(p1))
	if !ok {
		return
	}
	b.drawLine(b.toScreen(a), b.toScreen(bb), c)
}

// DrawText implements view3d.Backend, drawing screen-space text with the
// fixed 7x13 basicfont. The requested size selects an integer scale
// factor (13px per unit), so small sizes render at the font's native
// height.
func (b *Backend) DrawText(s string, x, y, size int, c color.RGBA) {
	face := basicfont.Face7x13
	scale := size / face.Height
	if scale <= 1 {
		d := font.Drawer{
			Dst:  b.img,
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  fixed.P(x, y+face.Ascent),
		}
		d.DrawString(s)
		return
	}
	// Render at native size, then integer-upscale into place.
	_, adv := font.BoundString(face, s)
	w := adv.Ceil()
	if w <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, face.Height))
	d := font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)
	for ty := 0; ty < face.Height*scale; ty++ {
		for tx := 0; tx < w*scale; tx++ {
			px := tmp.RGBAAt(tx/scale, ty/scale)
			if px.A == 0 {
				continue
			}
			b.img.SetRGBA(x+tx, y+ty, px)
		}
	}
}

// EndFrame implements view3d.Backend. Presenting is a no-op for an
// offscreen target; the call only advances the frame counter and applies
// advisory pacing toward the target frame rate.
func (b *Backend) EndFrame() {
	b.frames++
	if b.frameTime > 0 {
		next := b.lastFrame.Add(b.frameTime)
		if d := time.Until(next); d > 0 {
			time.Sleep(d)
		}
		b.lastFrame = time.Now()
	}
}

// Close implements view3d.Backend.
func (b *Backend) Close() error {
	view3d.Logger().Info("software: closed", "frames", b.frames)
	return nil
}

// Frames returns the number of presented frames.
func (b *Backend) Frames() int { return b.frames }

// Image returns the live render target. The returned image is reused
// across frames; copy it (or use Snapshot) to keep a frame.
func (b *Backend) Image() *image.RGBA { return b.img }

// Snapshot returns a copy of the current frame.
func (b *Backend) Snapshot() *image.RGBA {
	out := image.NewRGBA(b.img.Bounds())
	copy(out.Pix, b.img.Pix)
	return out
}

// SavePNG writes the current frame to a PNG file.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("software: save png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, b.img); err != nil {
		return fmt.Errorf("software: encode png: %w", err)
	}
	return nil
}
