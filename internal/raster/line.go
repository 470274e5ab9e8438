package raster

import (
	"math"

	"github.com/bigfoot71/pixelforge/internal/framebuffer"
	"github.com/bigfoot71/pixelforge/internal/geometry"
)

// Line rasterizes a single clipped, viewport-mapped line segment (§4.8
// "Lines"). width <= 1.5 draws the thin DDA line only; width >
// 1.5 additionally draws ceil((width-1)/2) parallel offset lines on
// either side, perpendicular to the major axis.
func Line(fb *framebuffer.Framebuffer, a, b geometry.Vertex, width float32, vp geometry.Viewport, state State) {
	thinLine(fb, a, b, vp, state)
	if width <= 1.5 {
		return
	}

	dx := b.Screen.X - a.Screen.X
	dy := b.Screen.Y - a.Screen.Y
	count := int(math.Ceil(float64((width - 1) / 2)))

	var offX, offY float32
	if absf(dx) >= absf(dy) {
		// Major axis is X: offset perpendicular to it, along Y.
		offX, offY = 0, 1
	} else {
		offX, offY = 1, 0
	}

	for i := 1; i <= count; i++ {
		o := float32(i)
		a1 := a
		b1 := b
		a1.Screen.X += offX * o
		a1.Screen.Y += offY * o
		b1.Screen.X += offX * o
		b1.Screen.Y += offY * o
		thinLine(fb, a1, b1, vp, state)

		a2 := a
		b2 := b
		a2.Screen.X -= offX * o
		a2.Screen.Y -= offY * o
		b2.Screen.X -= offX * o
		b2.Screen.Y -= offY * o
		thinLine(fb, a2, b2, vp, state)
	}
}

// thinLine draws a 1-pixel-wide line with a DDA: it takes max(|dx|, |dy|)
// steps, evaluates each point at the float parameter t = i/steps and
// truncates it to integer pixel coordinates; no fixed-point accumulator
// is used. z and color are interpolated linearly in the same t.
func thinLine(fb *framebuffer.Framebuffer, a, b geometry.Vertex, vp geometry.Viewport, state State) {
	x0, y0 := a.Screen.X, a.Screen.Y
	x1, y1 := b.Screen.X, b.Screen.Y

	dx := x1 - x0
	dy := y1 - y0

	steps := int(math.Max(math.Abs(float64(dx)), math.Abs(float64(dy))))
	if steps == 0 {
		x, y := int(x0), int(y0)
		if insideViewport(x, y, vp) {
			commitFragment(fb, x, y, a.Homogeneous.Z, a.Color, state)
		}
		return
	}

	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		x := int(x0 + dx*t)
		y := int(y0 + dy*t)
		if !insideViewport(x, y, vp) {
			continue
		}
		v := a.Lerp(b, t)
		commitFragment(fb, x, y, v.Homogeneous.Z, v.Color, state)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
