package raster

import (
	"math"

	"github.com/bigfoot71/pixelforge/internal/framebuffer"
	"github.com/bigfoot71/pixelforge/internal/geometry"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
)

// Point rasterizes a single point primitive (§4.8 "Points"). A point of
// size <= 1 writes one pixel; larger points fill the discrete disk
// x²+y² <= (size/2)², clipped to the viewport. Every interior pixel uses
// the vertex's homogeneous.z as depth, undergoing the same depth/blend
// test as any other fragment.
//
// The disk is filled row by row, each row contributing one contiguous
// horizontal run — the run-length span idiom the teacher's
// core/alpha_runs.go AlphaRuns type uses for path coverage, simplified
// here to full-coverage spans since PixelForge has no anti-aliasing: a
// point's disk is binary inside/outside, so a "run" is just [xStart,
// xEnd] at alpha 255, and there is exactly one run per row.
func Point(fb *framebuffer.Framebuffer, v geometry.Vertex, size float32, vp geometry.Viewport, state State) {
	cx, cy := v.Screen.X, v.Screen.Y
	z := v.Homogeneous.Z

	if size <= 1 {
		x, y := int(cx), int(cy)
		if !insideViewport(x, y, vp) {
			return
		}
		commitFragment(fb, x, y, z, v.Color, state)
		return
	}

	r := size / 2
	r2 := r * r
	top := int(cy - r)
	bottom := int(cy + r)

	for y := top; y <= bottom; y++ {
		dy := float32(y) + 0.5 - cy
		dy2 := dy * dy
		if dy2 > r2 {
			continue
		}
		dx := float32(math.Sqrt(float64(r2 - dy2)))
		xStart := int(cx - dx)
		xEnd := int(cx + dx)
		for x := xStart; x <= xEnd; x++ {
			if !insideViewport(x, y, vp) {
				continue
			}
			commitFragment(fb, x, y, z, v.Color, state)
		}
	}
}

func insideViewport(x, y int, vp geometry.Viewport) bool {
	return float32(x) >= vp.X && float32(x) < vp.X+vp.W && float32(y) >= vp.Y && float32(y) < vp.Y+vp.H
}

func commitFragment(fb *framebuffer.Framebuffer, x, y int, z float32, color pixelcodec.Color, state State) {
	if state.DepthTestEnabled {
		if !state.DepthCompare(z, fb.GetDepth(x, y)) {
			return
		}
	}
	out := color
	if state.BlendEnabled {
		out = state.Blend(out, fb.GetPixel(x, y))
	}
	fb.SetPixelDepth(x, y, out, z)
}
