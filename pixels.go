package pixelforge

import (
	"golang.org/x/image/math/fixed"

	"github.com/bigfoot71/pixelforge/internal/geometry"
	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/texture"
)

// RasterPos3f sets the current raster position by transforming (x, y, z)
// through matrix_mvp exactly like a vertex (§6 "raster_pos*"). A position
// that fails the view-volume test is marked invalid, and draw_pixels
// becomes a no-op until raster_pos* is called again successfully.
func (c *Context) RasterPos3f(x, y, z float32) {
	v := geometry.Vertex{Position: mathkernel.Vec4{X: x, Y: y, Z: z, W: 1}}
	verts := []geometry.Vertex{v}
	geometry.Transform(verts, c.mvp(), mathkernel.Identity(), false)
	if !geometry.ClipPoint(verts[0].Homogeneous) {
		c.rasterPosValid = false
		return
	}
	geometry.PerspectiveDivide(&verts[0], c.viewport)
	c.rasterPos = verts[0]
	c.rasterPosValid = true
}

// RasterPos2f is the 2D form of RasterPos3f (z = 0).
func (c *Context) RasterPos2f(x, y float32) { c.RasterPos3f(x, y, 0) }

// rasterOrigin returns the current raster position's screen coordinates
// as fixed.Int26_6, the fixed-point accumulator draw_pixels steps from
// one destination pixel to the next (§3 "half-float codec ... fixed-point
// raster-position bookkeeping").
func (c *Context) rasterOrigin() (fixed.Int26_6, fixed.Int26_6) {
	return fixed.Int26_6(c.rasterPos.Screen.X * 64), fixed.Int26_6(c.rasterPos.Screen.Y * 64)
}

// PixelZoom sets the destination-to-source pixel ratio draw_pixels
// replicates (or decimates) source pixels by (§6 "pixel_zoom"). Zero
// factors are rejected with InvalidValue; negative factors are valid and
// flip the corresponding axis.
func (c *Context) PixelZoom(x, y float32) {
	if x == 0 || y == 0 {
		c.setError(InvalidValue)
		return
	}
	c.pixelZoomX = x
	c.pixelZoomY = y
}

// DrawPixels blits a client-supplied image onto the bound framebuffer,
// anchored at the current raster position and scaled by pixel_zoom
// (§6 "draw_pixels"). A no-op when the raster position is invalid or no
// framebuffer is bound.
func (c *Context) DrawPixels(pixels []byte, w, h int, layout pixelcodec.Layout, dataType pixelcodec.DataType) {
	fb := c.boundFB
	if fb == nil || !c.rasterPosValid {
		return
	}
	codec, err := pixelcodec.Select(layout, dataType)
	if err != nil {
		c.setError(InvalidEnum)
		return
	}
	src := texture.New(pixels, w, h, codec, false)
	if src == nil {
		c.setError(InvalidValue)
		return
	}

	destW := int(float32(w) * absf32(c.pixelZoomX))
	destH := int(float32(h) * absf32(c.pixelZoomY))
	if destW <= 0 || destH <= 0 {
		return
	}

	originX, originY := c.rasterOrigin()
	ox, oy := originX.Round(), originY.Round()

	for dy := 0; dy < destH; dy++ {
		sy := int(float32(dy) / absf32(c.pixelZoomY))
		if c.pixelZoomY < 0 {
			sy = h - 1 - sy
		}
		if sy < 0 || sy >= h {
			continue
		}
		for dx := 0; dx < destW; dx++ {
			sx := int(float32(dx) / absf32(c.pixelZoomX))
			if c.pixelZoomX < 0 {
				sx = w - 1 - sx
			}
			if sx < 0 || sx >= w {
				continue
			}
			fb.SetPixel(ox+dx, oy+dy, src.GetPixel(sx, sy))
		}
	}
}

// ReadPixels copies a w x h rectangle of the bound framebuffer's color
// plane starting at (x, y) into a freshly allocated buffer encoded as
// (layout, dataType) (§6 "read_pixels").
func (c *Context) ReadPixels(x, y, w, h int, layout pixelcodec.Layout, dataType pixelcodec.DataType) []byte {
	fb := c.boundFB
	if fb == nil {
		c.setError(InvalidOperation)
		return nil
	}
	codec, err := pixelcodec.Select(layout, dataType)
	if err != nil {
		c.setError(InvalidEnum)
		return nil
	}
	if w <= 0 || h <= 0 {
		c.setError(InvalidValue)
		return nil
	}
	out := make([]byte, w*h*codec.Stride)
	dst := texture.New(out, w, h, codec, false)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			dst.SetPixel(col, row, fb.GetPixel(x+col, y+row))
		}
	}
	return out
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
