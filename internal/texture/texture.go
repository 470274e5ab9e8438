// Package texture implements the texture sampler (§4.4): a pixel buffer
// plus a sampling function chosen at bind time by (wrap, filter), grounded
// on the teacher's internal/image interpolation and pattern-spread code,
// generalized from a 2D-canvas image pattern to a GL-style texture unit.
package texture

import (
	"math"

	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
)

// Wrap selects how out-of-[0,1] texture coordinates are folded back into
// range (§3, §4.4).
type Wrap uint8

const (
	Repeat Wrap = iota
	MirroredRepeat
	ClampToEdge
)

// Filter selects the sampling kernel (§4.4).
type Filter uint8

const (
	Nearest Filter = iota
	Bilinear
)

// Texture is an owned or borrowed pixel buffer plus the precomputed
// dimensions and bound sampler described in §3.
type Texture struct {
	Pixels   []byte
	W, H     int
	InvW     float32
	InvH     float32
	Codec    *pixelcodec.Codec
	Wrap     Wrap
	Filter   Filter
	Owned    bool // true if Pixels was allocated by gen_texture_buffer
}

// New builds a Texture over a buffer (borrowed or owned depending on the
// caller), validating the invariant that pixels is non-nil and sized
// w*h*bytesPerPixel (§3 Texture invariant).
func New(pixels []byte, w, h int, codec *pixelcodec.Codec, owned bool) *Texture {
	if w <= 0 || h <= 0 || pixels == nil || len(pixels) < w*h*codec.Stride {
		return nil
	}
	return &Texture{
		Pixels: pixels,
		W:      w,
		H:      h,
		InvW:   1 / float32(w),
		InvH:   1 / float32(h),
		Codec:  codec,
		Owned:  owned,
	}
}

// SetParameters binds the wrap and filter mode used by Sample, matching
// set_texture_parameter (§4.4).
func (t *Texture) SetParameters(wrap Wrap, filter Filter) {
	t.Wrap = wrap
	t.Filter = filter
}

// texel returns the canonical color at integer pixel coordinates, clamping
// defensively (callers are expected to have already wrapped u,v).
func (t *Texture) texel(x, y int) pixelcodec.Color {
	if x < 0 {
		x = 0
	} else if x >= t.W {
		x = t.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.H {
		y = t.H - 1
	}
	return t.Codec.Get(t.Pixels, y*t.W+x)
}

// setTexel narrows and writes a canonical color at integer pixel
// coordinates. Used by set_texture_pixel; out-of-bounds is a no-op.
func (t *Texture) setTexel(x, y int, c pixelcodec.Color) {
	if x < 0 || x >= t.W || y < 0 || y >= t.H {
		return
	}
	t.Codec.Set(t.Pixels, y*t.W+x, c)
}

// GetPixel reads the texel at (x, y) as a canonical color, the public
// get_texture_pixel verb.
func (t *Texture) GetPixel(x, y int) pixelcodec.Color { return t.texel(x, y) }

// SetPixel writes a canonical color at (x, y), the public
// set_texture_pixel verb.
func (t *Texture) SetPixel(x, y int, c pixelcodec.Color) { t.setTexel(x, y, c) }

// wrapCoord folds a single texture coordinate into [0,1] per §4.4 (Repeat
// yields [0,1); MirroredRepeat and ClampToEdge can return 1).
func wrapCoord(u float32, mode Wrap) float32 {
	switch mode {
	case Repeat:
		f := u - float32(math.Floor(float64(u)))
		if f < 0 {
			f = -f
		}
		return f
	case MirroredRepeat:
		// Fold into a period-2 range, then reflect the upper half back down.
		p := float32(math.Mod(float64(u), 2))
		if p < 0 {
			p += 2
		}
		if p > 1 {
			p = 2 - p
		}
		return p
	case ClampToEdge:
		switch {
		case u < 0:
			return 0
		case u > 1:
			return 1
		default:
			return u
		}
	default:
		return u
	}
}

// Sample maps (u, v) to a canonical color using the bound wrap mode and
// filter (§4.4). Sampling always returns RGBA8; the codec performs the
// narrow/widen transition.
func (t *Texture) Sample(u, v float32) pixelcodec.Color {
	wu := wrapCoord(u, t.Wrap)
	wv := wrapCoord(v, t.Wrap)

	if t.Filter == Nearest {
		x := int(math.Round(float64(wu) * float64(t.W-1)))
		y := int(math.Round(float64(wv) * float64(t.H-1)))
		if x < 0 {
			x = -x
		}
		if y < 0 {
			y = -y
		}
		return t.texel(x, y)
	}

	// Bilinear: sample 4 neighbours at (u,v) and (u+1/w, v+1/h).
	fx := wu*float32(t.W) - 0.5
	fy := wv*float32(t.H) - 0.5
	x0 := int(math.Floor(float64(fx)))
	y0 := int(math.Floor(float64(fy)))
	tx := fx - float32(x0)
	ty := fy - float32(y0)
	if tx < 0 {
		tx = 0
	} else if tx > 1 {
		tx = 1
	}
	if ty < 0 {
		ty = 0
	} else if ty > 1 {
		ty = 1
	}

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	return bilerp(c00, c10, c01, c11, tx, ty)
}

func bilerp(c00, c10, c01, c11 pixelcodec.Color, tx, ty float32) pixelcodec.Color {
	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}
