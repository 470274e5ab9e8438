package blend

import (
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/wide"
)

// BatchFunc is the 8-wide twin of Func, blending 8 adjacent source/dest
// colors at once under a fragment mask. Masked-out lanes pass dst through
// unchanged, matching the vector codec's "leave untouched" convention.
type BatchFunc func(src, dst pixelcodec.Color8, mask wide.Lanes8) pixelcodec.Color8

// GetBatch returns the 8-wide twin of Get(mode). It is built generically
// from the scalar function rather than re-deriving each formula in lane
// form, since all eight modes are already branch-free per-channel math that
// the compiler autovectorizes across the fixed-size loop.
func GetBatch(mode Mode) BatchFunc {
	fn := Get(mode)
	return func(src, dst pixelcodec.Color8, mask wide.Lanes8) pixelcodec.Color8 {
		var out pixelcodec.Color8
		for i := 0; i < 8; i++ {
			if !mask[i] {
				out[i] = dst[i]
				continue
			}
			out[i] = fn(src[i], dst[i])
		}
		return out
	}
}
