package blend

import "github.com/bigfoot71/pixelforge/internal/wide"

// DepthFunc selects one of the six depth compare modes (§4.5).
type DepthFunc uint8

const (
	DepthEqual DepthFunc = iota
	DepthNotEqual
	DepthLess
	DepthLessEqual
	DepthGreater
	DepthGreaterEqual
)

// DepthCompare reports whether src passes the depth test against dst under
// mode: true means the fragment is kept and dst is replaced. Equal compares
// bit-exactly, matching the "no epsilon" note in §4.5.
type DepthCompare func(src, dst float32) bool

// GetDepth returns the scalar depth compare function for mode.
func GetDepth(mode DepthFunc) DepthCompare {
	switch mode {
	case DepthEqual:
		return func(src, dst float32) bool { return src == dst }
	case DepthNotEqual:
		return func(src, dst float32) bool { return src != dst }
	case DepthLess:
		return func(src, dst float32) bool { return src < dst }
	case DepthLessEqual:
		return func(src, dst float32) bool { return src <= dst }
	case DepthGreater:
		return func(src, dst float32) bool { return src > dst }
	case DepthGreaterEqual:
		return func(src, dst float32) bool { return src >= dst }
	default:
		return func(src, dst float32) bool { return src < dst }
	}
}

// DepthCompareBatch is the 8-wide twin of DepthCompare, used when testing a
// full fragment-mask worth of depths at once (§4.8 batched fragment path).
type DepthCompareBatch func(src, dst wide.F32x8) wide.Lanes8

// GetDepthBatch returns the vector depth compare function for mode.
func GetDepthBatch(mode DepthFunc) DepthCompareBatch {
	scalar := GetDepth(mode)
	return func(src, dst wide.F32x8) wide.Lanes8 {
		var out wide.Lanes8
		for i := range out {
			out[i] = scalar(src[i], dst[i])
		}
		return out
	}
}
