// Package wide provides small fixed-width arrays that the compiler can
// autovectorize, used as the "SIMD twin" of the scalar pixel codec, blend
// and depth-compare routines (§9 "the source maintains parallel scalar and
// 4-/8-wide code paths"). Go has no portable intrinsic SIMD, so — following
// the teacher's internal/wide package — these are plain fixed-size arrays
// operated on elementwise; the Go compiler autovectorizes the loops on
// amd64/arm64 when the element count is a compile-time constant.
package wide

// F32x8 holds 8 float32 lanes, used for the batched depth compare.
type F32x8 [8]float32

// SplatF32x8 returns an F32x8 with every lane set to n.
func SplatF32x8(n float32) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = n
	}
	return r
}

func (v F32x8) Add(o F32x8) F32x8 {
	var r F32x8
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

func (v F32x8) Sub(o F32x8) F32x8 {
	var r F32x8
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

func (v F32x8) Mul(o F32x8) F32x8 {
	var r F32x8
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Lanes8 is a boolean fragment mask, one entry per lane. Vector codec and
// blend routines use it to skip lanes outside the triangle/line/point
// coverage without branching per pixel inside the inner loop.
type Lanes8 [8]bool

// U8x16 holds 16 uint8 lanes: two RGBA8 pixels' worth of a single channel,
// or a full RGBA8 pixel plus its neighbor. No blend or depth routine
// uses it.
type U8x16 [16]uint8

// U16x16 holds 16 uint16 lanes, wide enough to hold an 8-bit x 8-bit
// product without overflow. The blend routines do not use it.
type U16x16 [16]uint16

// SplatU16x16 returns a U16x16 with every lane set to n.
func SplatU16x16(n uint16) U16x16 {
	var r U16x16
	for i := range r {
		r[i] = n
	}
	return r
}

func (v U16x16) Add(o U16x16) U16x16 {
	var r U16x16
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

func (v U16x16) Sub(o U16x16) U16x16 {
	var r U16x16
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

func (v U16x16) Mul(o U16x16) U16x16 {
	var r U16x16
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Inv computes 255 - v per lane.
func (v U16x16) Inv() U16x16 {
	var r U16x16
	for i := range v {
		r[i] = 255 - v[i]
	}
	return r
}

// MulDiv255 computes (v*o)>>8 per lane, the fixed-point "divide by 255"
// approximation used throughout §4.5's blend formulas.
func (v U16x16) MulDiv255(o U16x16) U16x16 {
	var r U16x16
	for i := range v {
		r[i] = uint16((uint32(v[i]) * uint32(o[i])) >> 8) //nolint:gosec // bounded by 255*255>>8
	}
	return r
}

// Min returns the per-lane minimum.
func (v U16x16) Min(o U16x16) U16x16 {
	var r U16x16
	for i := range v {
		if v[i] < o[i] {
			r[i] = v[i]
		} else {
			r[i] = o[i]
		}
	}
	return r
}

// Max returns the per-lane maximum.
func (v U16x16) Max(o U16x16) U16x16 {
	var r U16x16
	for i := range v {
		if v[i] > o[i] {
			r[i] = v[i]
		} else {
			r[i] = o[i]
		}
	}
	return r
}

// Clamp255 clamps every lane to [0, 255].
func (v U16x16) Clamp255() U16x16 {
	var r U16x16
	for i := range v {
		switch {
		case v[i] > 255:
			r[i] = 255
		default:
			r[i] = v[i]
		}
	}
	return r
}
