package pixelforge

import (
	"github.com/bigfoot71/pixelforge/internal/blend"
	"github.com/bigfoot71/pixelforge/internal/framebuffer"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/texture"
)

// GenTexture creates a texture borrowing pixels (the caller retains
// ownership and must keep it alive and unmodified while any draw
// referencing the texture is in flight, §5 "Shared resources"). Returns
// 0 and sets InvalidEnum/InvalidValue on failure.
func (c *Context) GenTexture(pixels []byte, w, h int, layout pixelcodec.Layout, dataType pixelcodec.DataType) Handle {
	return c.genTexture(pixels, w, h, layout, dataType, false)
}

// GenTextureBuffer creates a texture owning a freshly allocated pixel
// buffer (§3 "gen_texture_buffer"). Returns 0 and sets OutOfMemory if the
// requested size cannot be satisfied (practically unreachable in Go
// except for a non-positive size, which instead sets InvalidValue).
func (c *Context) GenTextureBuffer(w, h int, layout pixelcodec.Layout, dataType pixelcodec.DataType) Handle {
	codec, err := pixelcodec.Select(layout, dataType)
	if err != nil {
		c.setError(InvalidEnum)
		return 0
	}
	if w <= 0 || h <= 0 {
		c.setError(InvalidValue)
		return 0
	}
	pixels := make([]byte, w*h*codec.Stride)
	return c.genTexture(pixels, w, h, layout, dataType, true)
}

func (c *Context) genTexture(pixels []byte, w, h int, layout pixelcodec.Layout, dataType pixelcodec.DataType, owned bool) Handle {
	codec, err := pixelcodec.Select(layout, dataType)
	if err != nil {
		c.setError(InvalidEnum)
		return 0
	}
	tex := texture.New(pixels, w, h, codec, owned)
	if tex == nil {
		c.setError(InvalidValue)
		return 0
	}
	c.nextTexHandle++
	h2 := c.nextTexHandle
	c.textures[h2] = tex
	return h2
}

// DeleteTexture removes handle from the texture table. freeOwned has no
// observable effect beyond documenting intent in Go (the owning slice is
// simply dropped and left to the garbage collector); it exists to match
// §3's "deleted via delete_texture, with a flag selecting whether the
// owning allocation is freed".
func (c *Context) DeleteTexture(handle Handle, freeOwned bool) {
	delete(c.textures, handle)
	if c.boundTexHandle == handle {
		c.boundTexHandle = 0
	}
}

// IsValidTexture reports whether handle names a live texture.
func (c *Context) IsValidTexture(handle Handle) bool {
	_, ok := c.textures[handle]
	return ok
}

// SetTextureParameters binds the wrap and filter mode a texture samples
// with (§4.4 "set_texture_parameter").
func (c *Context) SetTextureParameters(handle Handle, wrap texture.Wrap, filter texture.Filter) {
	tex, ok := c.textures[handle]
	if !ok {
		c.setError(InvalidValue)
		return
	}
	tex.SetParameters(wrap, filter)
}

// GetTexturePixels returns the raw backing buffer of handle's texture.
func (c *Context) GetTexturePixels(handle Handle) []byte {
	tex, ok := c.textures[handle]
	if !ok {
		c.setError(InvalidValue)
		return nil
	}
	return tex.Pixels
}

// GetTexturePixel reads one texel as canonical RGBA8.
func (c *Context) GetTexturePixel(handle Handle, x, y int) pixelcodec.Color {
	tex, ok := c.textures[handle]
	if !ok {
		c.setError(InvalidValue)
		return pixelcodec.Color{}
	}
	return tex.GetPixel(x, y)
}

// SetTexturePixel writes one texel from a canonical RGBA8 color.
func (c *Context) SetTexturePixel(handle Handle, x, y int, col pixelcodec.Color) {
	tex, ok := c.textures[handle]
	if !ok {
		c.setError(InvalidValue)
		return
	}
	tex.SetPixel(x, y, col)
}

// SampleNearestWrap samples handle's texture at (u, v) using Nearest
// filtering and Repeat wrapping regardless of the texture's bound
// parameters (§6 "sample_nearest_wrap"), the cheap read path callers use
// when they don't need the bound sampler's filter/wrap choice.
func (c *Context) SampleNearestWrap(handle Handle, u, v float32) pixelcodec.Color {
	tex, ok := c.textures[handle]
	if !ok {
		c.setError(InvalidValue)
		return pixelcodec.Color{}
	}
	saved := *tex
	tex.SetParameters(texture.Repeat, texture.Nearest)
	col := tex.Sample(u, v)
	*tex = saved
	return col
}

// GenFramebuffer creates a framebuffer over a borrowed color texture
// (§3 "Framebuffer"). Returns 0 and sets InvalidValue if handle does not
// name a live texture.
func (c *Context) GenFramebuffer(colorTexture Handle) Handle {
	tex, ok := c.textures[colorTexture]
	if !ok {
		c.setError(InvalidValue)
		return 0
	}
	fb := framebuffer.New(tex)
	c.nextFBHandle++
	h := c.nextFBHandle
	c.framebuffers[h] = fb
	return h
}

// DeleteFramebuffer removes handle from the framebuffer table, rebinding
// to the main buffer if it was currently bound.
func (c *Context) DeleteFramebuffer(handle Handle) {
	fb, ok := c.framebuffers[handle]
	if !ok {
		return
	}
	delete(c.framebuffers, handle)
	if c.boundFB == fb {
		c.boundFB = c.mainBuffer
	}
}

// IsValidFramebuffer reports whether handle names a live framebuffer.
func (c *Context) IsValidFramebuffer(handle Handle) bool {
	_, ok := c.framebuffers[handle]
	return ok
}

// ClearFramebuffer clears handle's color and depth planes directly,
// independent of which framebuffer is currently bound.
func (c *Context) ClearFramebuffer(handle Handle, col pixelcodec.Color, depth float32) {
	fb, ok := c.framebuffers[handle]
	if !ok {
		c.setError(InvalidValue)
		return
	}
	fb.Clear(col, depth)
}

// GetFramebufferPixel reads the color at (x, y) on handle's framebuffer.
func (c *Context) GetFramebufferPixel(handle Handle, x, y int) pixelcodec.Color {
	fb, ok := c.framebuffers[handle]
	if !ok {
		c.setError(InvalidValue)
		return pixelcodec.Color{}
	}
	return fb.GetPixel(x, y)
}

// SetFramebufferPixel writes a color at (x, y), bypassing depth testing
// and blending entirely.
func (c *Context) SetFramebufferPixel(handle Handle, x, y int, col pixelcodec.Color) {
	fb, ok := c.framebuffers[handle]
	if !ok {
		c.setError(InvalidValue)
		return
	}
	fb.SetPixel(x, y, col)
}

// SetFramebufferPixelDepth writes color and depth unconditionally.
func (c *Context) SetFramebufferPixelDepth(handle Handle, x, y int, col pixelcodec.Color, z float32) {
	fb, ok := c.framebuffers[handle]
	if !ok {
		c.setError(InvalidValue)
		return
	}
	fb.SetPixelDepth(x, y, col, z)
}

// SetFramebufferPixelDepthTest writes color and depth only if z passes
// the given depth compare against the current stored depth (the
// "_test" variant named in §6), returning whether the write happened.
func (c *Context) SetFramebufferPixelDepthTest(handle Handle, x, y int, col pixelcodec.Color, z float32, fn blend.DepthFunc) bool {
	fb, ok := c.framebuffers[handle]
	if !ok {
		c.setError(InvalidValue)
		return false
	}
	dst := fb.GetDepth(x, y)
	if !blend.GetDepth(fn)(z, dst) {
		return false
	}
	fb.SetPixelDepth(x, y, col, z)
	return true
}
