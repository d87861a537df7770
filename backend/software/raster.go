// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"image/color"
	"math"
)

// fragment is a projected vertex ready for rasterization: screen pixel
// coordinates plus a depth value in NDC [-1,1].
type fragment struct {
	x, y  float64
	depth float64
}

// toScreen converts clip coordinates to a fragment. Callers must ensure
// w is positive (in front of the near plane) before calling.
func (b *Backend) toScreen(v Vec4) fragment {
	inv := 1 / v.W
	ndcX := v.X * inv
	ndcY := v.Y * inv
	ndcZ := v.Z * inv
	w := float64(b.img.Bounds().Dx())
	h := float64(b.img.Bounds().Dy())
	return fragment{
		x:     (ndcX + 1) / 2 * w,
		y:     (1 - ndcY) / 2 * h,
		depth: ndcZ,
	}
}

// clipNear clips the segment a-b against the near plane (w > wEpsilon).
// Returns the clipped endpoints and false if the segment is entirely
// behind the plane.
func clipNear(a, b Vec4) (Vec4, Vec4, bool) {
	const wEpsilon = 1e-5
	ina, inb := a.W > wEpsilon, b.W > wEpsilon
	switch {
	case ina && inb:
		return a, b, true
	case !ina && !inb:
		return a, b, false
	}
	// Interpolate to the point where w == wEpsilon.
	t := (wEpsilon - a.W) / (b.W - a.W)
	mid := Vec4{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: wEpsilon,
	}
	if ina {
		return a, mid, true
	}
	return mid, b, true
}

// setPixel writes a pixel if it passes the depth test.
func (b *Backend) setPixel(x, y int, depth float64, c color.RGBA) {
	bounds := b.img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return
	}
	idx := y*bounds.Dx() + x
	if depth > b.zbuf[idx] {
		return
	}
	b.zbuf[idx] = depth
	b.img.SetRGBA(x, y, c)
}

// drawLine rasterizes a screen-space segment with linear depth
// interpolation, using a DDA walk along the major axis.
func (b *Backend) drawLine(p0, p1 fragment, c color.RGBA) {
	dx := p1.x - p0.x
	dy := p1.y - p0.y
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		b.setPixel(int(p0.x), int(p0.y), p0.depth, c)
		return
	}
	n := int(steps)
	for i := 0; i <= n; i++ {
		t := float64(i) / steps
		x := p0.x + dx*t
		y := p0.y + dy*t
		depth := p0.depth + (p1.depth-p0.depth)*t
		b.setPixel(int(x), int(y), depth, c)
	}
}

// fillTriangle rasterizes a screen-space triangle with barycentric depth
// interpolation. Triangles with any vertex behind the near plane are
// dropped by the caller; this keeps the rasterizer simple at the cost of
// popping when the camera enters geometry, which the headless renderer
// does not care about.
func (b *Backend) fillTriangle(v0, v1, v2 fragment, c color.RGBA) {
	minX := int(math.Floor(min3(v0.x, v1.x, v2.x)))
	maxX := int(math.Ceil(max3(v0.x, v1.x, v2.x)))
	minY := int(math.Floor(min3(v0.y, v1.y, v2.y)))
	maxY := int(math.Ceil(max3(v0.y, v1.y, v2.y)))

	bounds := b.img.Bounds()
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, bounds.Dx()-1)
	maxY = min(maxY, bounds.Dy()-1)

	area := edge(v0, v1, v2)
	if area == 0 {
		return
	}
	inv := 1 / area

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := fragment{x: float64(x) + 0.5, y: float64(y) + 0.5}
			w0 := edge(v1, v2, p) * inv
			w1 := edge(v2, v0, p) * inv
			w2 := edge(v0, v1, p) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			depth := w0*v0.depth + w1*v1.depth + w2*v2.depth
			b.setPixel(x, y, depth, c)
		}
	}
}

// edge is the signed parallelogram area of the triangle a-b-c, used both
// for the inside test and for barycentric weights.
func edge(a, b, c fragment) float64 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
