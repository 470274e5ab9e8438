package pixelcodec

import (
	"math"

	"github.com/bigfoot71/pixelforge/internal/mathkernel"
)

// Codec is the pair of scalar accessors selected for one (Layout, DataType)
// combination (§4.3): a widening getter and a narrowing setter, each
// operating on one packed pixel at a given element index.
type Codec struct {
	Layout   Layout
	Type     DataType
	Stride   int // bytes per packed pixel
	Get      func(pixels []byte, index int) Color
	Set      func(pixels []byte, index int, c Color)
}

// Select returns the Codec for (l, t), or ErrInvalidEnum if the pair is not
// one of the valid combinations (§4.3, §6 "Unsupported layout/type pairs
// fail ... with InvalidEnum").
func Select(l Layout, t DataType) (*Codec, error) {
	if !Valid(l, t) {
		return nil, ErrInvalidEnum
	}
	stride := BytesPerPixel(l, t)
	c := &Codec{Layout: l, Type: t, Stride: stride}
	switch t {
	case UnsignedByte:
		c.Get, c.Set = byteGetSet(l, stride)
	case UnsignedShort_5_6_5:
		c.Get, c.Set = get565, set565
	case UnsignedShort_5_5_5_1:
		c.Get, c.Set = get5551(l), set5551(l)
	case UnsignedShort_4_4_4_4:
		c.Get, c.Set = get4444(l), set4444(l)
	case HalfFloat:
		c.Get, c.Set = halfGetSet(l, stride)
	case Float:
		c.Get, c.Set = floatGetSet(l, stride)
	}
	return c, nil
}

// rec601 luminance weights (§4.3).
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

func luminance(c Color) uint8 {
	v := lumR*float32(c.R) + lumG*float32(c.G) + lumB*float32(c.B)
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// widen builds a canonical Color from up to 4 raw channel samples (as
// float32 in [0,255]) according to the layout's channel semantics.
func widen(l Layout, ch [4]float32) Color {
	clamp := func(v float32) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 255:
			return 255
		default:
			return uint8(v + 0.5)
		}
	}
	switch l {
	case Red:
		return Color{R: clamp(ch[0]), A: 255}
	case Green:
		return Color{G: clamp(ch[0]), A: 255}
	case Blue:
		return Color{B: clamp(ch[0]), A: 255}
	case Alpha:
		return Color{A: clamp(ch[0])}
	case Luminance:
		v := clamp(ch[0])
		return Color{R: v, G: v, B: v, A: 255}
	case LuminanceAlpha:
		v := clamp(ch[0])
		return Color{R: v, G: v, B: v, A: clamp(ch[1])}
	case RGB:
		return Color{R: clamp(ch[0]), G: clamp(ch[1]), B: clamp(ch[2]), A: 255}
	case RGBA:
		return Color{R: clamp(ch[0]), G: clamp(ch[1]), B: clamp(ch[2]), A: clamp(ch[3])}
	case BGR:
		return Color{R: clamp(ch[2]), G: clamp(ch[1]), B: clamp(ch[0]), A: 255}
	case BGRA:
		return Color{R: clamp(ch[2]), G: clamp(ch[1]), B: clamp(ch[0]), A: clamp(ch[3])}
	default:
		return Color{}
	}
}

// narrow decomposes a canonical Color into up to 4 raw channel samples (in
// [0,255]) in the order the layout stores them.
func narrow(l Layout, c Color) [4]float32 {
	switch l {
	case Red:
		return [4]float32{float32(c.R)}
	case Green:
		return [4]float32{float32(c.G)}
	case Blue:
		return [4]float32{float32(c.B)}
	case Alpha:
		return [4]float32{float32(c.A)}
	case Luminance:
		return [4]float32{float32(luminance(c))}
	case LuminanceAlpha:
		return [4]float32{float32(luminance(c)), float32(c.A)}
	case RGB:
		return [4]float32{float32(c.R), float32(c.G), float32(c.B)}
	case RGBA:
		return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
	case BGR:
		return [4]float32{float32(c.B), float32(c.G), float32(c.R)}
	case BGRA:
		return [4]float32{float32(c.B), float32(c.G), float32(c.R), float32(c.A)}
	default:
		return [4]float32{}
	}
}

func byteGetSet(l Layout, stride int) (func([]byte, int) Color, func([]byte, int, Color)) {
	get := func(pixels []byte, index int) Color {
		off := index * stride
		var ch [4]float32
		for i := 0; i < stride; i++ {
			ch[i] = float32(pixels[off+i])
		}
		return widen(l, ch)
	}
	set := func(pixels []byte, index int, c Color) {
		off := index * stride
		ch := narrow(l, c)
		for i := 0; i < stride; i++ {
			v := ch[i]
			switch {
			case v <= 0:
				pixels[off+i] = 0
			case v >= 255:
				pixels[off+i] = 255
			default:
				pixels[off+i] = uint8(v + 0.5)
			}
		}
	}
	return get, set
}

// Packed 16-bit formats are stored little-endian, matching the "packing a
// RGBA8 quad into a little-endian 32-bit pixel" convention §4.3 calls out
// as the common fast path.

func readU16LE(pixels []byte, index int) uint16 {
	off := index * 2
	return uint16(pixels[off]) | uint16(pixels[off+1])<<8
}

func writeU16LE(pixels []byte, index int, v uint16) {
	off := index * 2
	pixels[off] = byte(v)
	pixels[off+1] = byte(v >> 8)
}

func expandBits(v, bits int) uint8 {
	maxV := (1 << bits) - 1
	return uint8((v*255 + maxV/2) / maxV)
}

func get565(pixels []byte, index int) Color {
	v := readU16LE(pixels, index)
	r := expandBits(int(v>>11)&0x1f, 5)
	g := expandBits(int(v>>5)&0x3f, 6)
	b := expandBits(int(v)&0x1f, 5)
	return Color{R: r, G: g, B: b, A: 255}
}

func set565(pixels []byte, index int, c Color) {
	r := uint16(c.R) * 31 / 255
	g := uint16(c.G) * 63 / 255
	b := uint16(c.B) * 31 / 255
	writeU16LE(pixels, index, r<<11|g<<5|b)
}

// alphaThreshold is the fixed mid-range cutoff for 5_5_5_1 alpha packing
// (§4.3).
const alphaThreshold = 128

func get5551(l Layout) func([]byte, int) Color {
	return func(pixels []byte, index int) Color {
		v := readU16LE(pixels, index)
		c0 := expandBits(int(v>>11)&0x1f, 5)
		c1 := expandBits(int(v>>6)&0x1f, 5)
		c2 := expandBits(int(v>>1)&0x1f, 5)
		var a uint8
		if v&1 != 0 {
			a = 255
		}
		if l == BGRA {
			return Color{R: c2, G: c1, B: c0, A: a}
		}
		return Color{R: c0, G: c1, B: c2, A: a}
	}
}

func set5551(l Layout) func([]byte, int, Color) {
	return func(pixels []byte, index int, c Color) {
		r, g, b := c.R, c.G, c.B
		if l == BGRA {
			r, b = b, r
		}
		c0 := uint16(r) * 31 / 255
		c1 := uint16(g) * 31 / 255
		c2 := uint16(b) * 31 / 255
		var a uint16
		if c.A >= alphaThreshold {
			a = 1
		}
		writeU16LE(pixels, index, c0<<11|c1<<6|c2<<1|a)
	}
}

func get4444(l Layout) func([]byte, int) Color {
	return func(pixels []byte, index int) Color {
		v := readU16LE(pixels, index)
		c0 := expandBits(int(v>>12)&0xf, 4)
		c1 := expandBits(int(v>>8)&0xf, 4)
		c2 := expandBits(int(v>>4)&0xf, 4)
		a := expandBits(int(v)&0xf, 4)
		if l == BGRA {
			return Color{R: c2, G: c1, B: c0, A: a}
		}
		return Color{R: c0, G: c1, B: c2, A: a}
	}
}

func set4444(l Layout) func([]byte, int, Color) {
	return func(pixels []byte, index int, c Color) {
		r, g, b := c.R, c.G, c.B
		if l == BGRA {
			r, b = b, r
		}
		c0 := uint16(r) * 15 / 255
		c1 := uint16(g) * 15 / 255
		c2 := uint16(b) * 15 / 255
		a := uint16(c.A) * 15 / 255
		writeU16LE(pixels, index, c0<<12|c1<<8|c2<<4|a)
	}
}

func halfGetSet(l Layout, stride int) (func([]byte, int) Color, func([]byte, int, Color)) {
	channels := stride / 2
	get := func(pixels []byte, index int) Color {
		off := index * stride
		var ch [4]float32
		for i := 0; i < channels; i++ {
			bits := uint16(pixels[off+i*2]) | uint16(pixels[off+i*2+1])<<8
			ch[i] = mathkernel.HalfToF32(mathkernel.HalfFloat(bits)) * 255
		}
		return widen(l, ch)
	}
	set := func(pixels []byte, index int, c Color) {
		off := index * stride
		ch := narrow(l, c)
		for i := 0; i < channels; i++ {
			h := mathkernel.F32ToHalf(ch[i] / 255)
			pixels[off+i*2] = byte(h)
			pixels[off+i*2+1] = byte(h >> 8)
		}
	}
	return get, set
}

func floatGetSet(l Layout, stride int) (func([]byte, int) Color, func([]byte, int, Color)) {
	channels := stride / 4
	get := func(pixels []byte, index int) Color {
		off := index * stride
		var ch [4]float32
		for i := 0; i < channels; i++ {
			bits := uint32(pixels[off+i*4]) | uint32(pixels[off+i*4+1])<<8 |
				uint32(pixels[off+i*4+2])<<16 | uint32(pixels[off+i*4+3])<<24
			ch[i] = math.Float32frombits(bits) * 255
		}
		return widen(l, ch)
	}
	set := func(pixels []byte, index int, c Color) {
		off := index * stride
		ch := narrow(l, c)
		for i := 0; i < channels; i++ {
			bits := math.Float32bits(ch[i] / 255)
			pixels[off+i*4] = byte(bits)
			pixels[off+i*4+1] = byte(bits >> 8)
			pixels[off+i*4+2] = byte(bits >> 16)
			pixels[off+i*4+3] = byte(bits >> 24)
		}
	}
	return get, set
}
