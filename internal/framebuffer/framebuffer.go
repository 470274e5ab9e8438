// Package framebuffer implements the framebuffer abstraction of §3/§4: a
// color texture bound to a parallel depth array, both owned by the
// context that created them. Grounded on the teacher's pixmap.go
// (FillSpan/FillSpanBlend batch-fill idiom, reused here for clear and
// clear_framebuffer) generalized from a single color plane to a
// color+depth pair.
package framebuffer

import (
	"math"

	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/texture"
)

// Framebuffer pairs a color texture with a same-sized depth plane (§3
// "Framebuffer"). Only one depth format (f32) is supported.
type Framebuffer struct {
	Color *texture.Texture
	Depth []float32
	W, H  int
}

// New builds a framebuffer over color, allocating a depth plane
// initialized to +Inf (§3 "depth array ... initialized to +∞").
func New(color *texture.Texture) *Framebuffer {
	depth := make([]float32, color.W*color.H)
	for i := range depth {
		depth[i] = float32(math.Inf(1))
	}
	return &Framebuffer{Color: color, Depth: depth, W: color.W, H: color.H}
}

// GetPixel reads the canonical color at (x, y).
func (f *Framebuffer) GetPixel(x, y int) pixelcodec.Color {
	return f.Color.GetPixel(x, y)
}

// SetPixel writes the canonical color at (x, y), the set_framebuffer_pixel
// verb (no depth test).
func (f *Framebuffer) SetPixel(x, y int, c pixelcodec.Color) {
	f.Color.SetPixel(x, y, c)
}

// GetDepth reads the depth value at (x, y); out-of-bounds reads return
// +Inf, matching "never fails" fragment-stage semantics.
func (f *Framebuffer) GetDepth(x, y int) float32 {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return float32(math.Inf(1))
	}
	return f.Depth[y*f.W+x]
}

// SetDepth writes the depth value at (x, y); out-of-bounds writes are a
// no-op (§8 invariant 2: outside the viewport nothing is altered; the
// rasterizer additionally never calls this out of its own bounds).
func (f *Framebuffer) SetDepth(x, y int, z float32) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	f.Depth[y*f.W+x] = z
}

// SetPixelDepth writes color and depth together, the rasterizer's
// fragment-commit fast path.
func (f *Framebuffer) SetPixelDepth(x, y int, c pixelcodec.Color, z float32) {
	f.Color.SetPixel(x, y, c)
	f.SetDepth(x, y, z)
}

// Clear fills the entire color plane with c and the depth plane with
// depth, the clear/clear_framebuffer verbs. Grounded on pixmap.go's
// FillSpan idiom: a single tight loop over every pixel rather than a
// per-pixel dispatch through the public setter.
func (f *Framebuffer) Clear(c pixelcodec.Color, depth float32) {
	codec := f.Color.Codec
	for i := 0; i < f.W*f.H; i++ {
		codec.Set(f.Color.Pixels, i, c)
	}
	for i := range f.Depth {
		f.Depth[i] = depth
	}
}

// ClearColor fills only the color plane, leaving depth untouched.
func (f *Framebuffer) ClearColor(c pixelcodec.Color) {
	codec := f.Color.Codec
	for i := 0; i < f.W*f.H; i++ {
		codec.Set(f.Color.Pixels, i, c)
	}
}

// ClearDepth fills only the depth plane, leaving color untouched.
func (f *Framebuffer) ClearDepth(depth float32) {
	for i := range f.Depth {
		f.Depth[i] = depth
	}
}
