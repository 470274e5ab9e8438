// Package pixelcodec translates between the canonical in-core RGBA8 color
// (§3 "Color") and the wide variety of on-disk pixel layouts a caller's
// target buffer may use (§4.3). It is the lowest-level package in the
// module — every other internal package and the public API import the
// Color type from here to avoid a dependency cycle with the root package.
package pixelcodec

// Color is the canonical 8-bit-per-channel RGBA color. All lighting,
// blending and attribute interpolation happens in this space (§3).
type Color struct {
	R, G, B, A uint8
}

// Lerp linearly interpolates each channel between c and o at parameter t
// (0..1), rounding to the nearest integer. Used for barycentric and
// edge-split color interpolation (§4.7, §4.8).
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: lerp8(c.R, o.R, t),
		G: lerp8(c.G, o.G, t),
		B: lerp8(c.B, o.B, t),
		A: lerp8(c.A, o.A, t),
	}
}

func lerp8(a, b uint8, t float32) uint8 {
	v := float32(a) + (float32(b)-float32(a))*t
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// Scale multiplies each channel (including alpha) by s (0..1), rounding to
// the nearest integer. Used for material * fragment color products in
// lighting (§4.6).
func (c Color) Scale(s float32) Color {
	return Color{
		R: scale8(c.R, s),
		G: scale8(c.G, s),
		B: scale8(c.B, s),
		A: scale8(c.A, s),
	}
}

func scale8(v uint8, s float32) uint8 {
	f := float32(v) * s
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f + 0.5)
	}
}

// Mul multiplies two colors channel-wise in 8-bit fixed point,
// (a*b+127)/255 (rounded), as used for texture-modulate-by-vertex-color
// (§4.8 step 5).
func (c Color) Mul(o Color) Color {
	return Color{
		R: mulDiv255(c.R, o.R),
		G: mulDiv255(c.G, o.G),
		B: mulDiv255(c.B, o.B),
		A: mulDiv255(c.A, o.A),
	}
}

func mulDiv255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

// Add adds two colors channel-wise, saturating at 255.
func (c Color) Add(o Color) Color {
	return Color{
		R: addSat8(c.R, o.R),
		G: addSat8(c.G, o.G),
		B: addSat8(c.B, o.B),
		A: addSat8(c.A, o.A),
	}
}

func addSat8(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
