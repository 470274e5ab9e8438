package pixelcodec

import "github.com/bigfoot71/pixelforge/internal/wide"

// Color8 holds 8 canonical colors, the vector twin of Color used by the
// batched fragment paths (§4.3 "Vector get/set operating on eight ...
// adjacent indices with a boolean mask").
type Color8 [8]Color

// GetVector reads 8 adjacent packed pixels starting at index. Lanes whose
// mask entry is false are left as the zero Color and are not read, so
// out-of-range trailing lanes at the end of a buffer are safe to pass with
// mask cleared.
func (c *Codec) GetVector(pixels []byte, index int, mask wide.Lanes8) Color8 {
	var out Color8
	for i := 0; i < 8; i++ {
		if !mask[i] {
			continue
		}
		out[i] = c.Get(pixels, index+i)
	}
	return out
}

// SetVector writes 8 adjacent packed pixels starting at index, skipping any
// lane whose mask entry is false.
func (c *Codec) SetVector(pixels []byte, index int, colors Color8, mask wide.Lanes8) {
	for i := 0; i < 8; i++ {
		if !mask[i] {
			continue
		}
		c.Set(pixels, index+i, colors[i])
	}
}

// FullMask8 returns a mask with every lane enabled.
func FullMask8() wide.Lanes8 {
	return wide.Lanes8{true, true, true, true, true, true, true, true}
}
