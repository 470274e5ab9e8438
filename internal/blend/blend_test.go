package blend

import (
	"testing"

	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/wide"
)

func TestAverage(t *testing.T) {
	src := pixelcodec.Color{R: 100, G: 200, B: 0, A: 255}
	dst := pixelcodec.Color{R: 0, G: 0, B: 100, A: 1}
	got := average(src, dst)
	want := pixelcodec.Color{R: 50, G: 100, B: 50, A: 128}
	if got != want {
		t.Fatalf("average(%+v, %+v) = %+v, want %+v", src, dst, got, want)
	}
}

func TestAlphaBlendOpaqueSrc(t *testing.T) {
	src := pixelcodec.Color{R: 255, G: 0, B: 0, A: 255}
	dst := pixelcodec.Color{R: 0, G: 255, B: 0, A: 0}
	got := alphaBlend(src, dst)
	want := pixelcodec.Color{R: 255, G: 0, B: 0, A: 255}
	if got != want {
		t.Fatalf("alphaBlend with opaque src = %+v, want %+v", got, want)
	}
}

func TestAlphaBlendTransparentSrc(t *testing.T) {
	src := pixelcodec.Color{R: 255, G: 0, B: 0, A: 0}
	dst := pixelcodec.Color{R: 0, G: 255, B: 0, A: 200}
	got := alphaBlend(src, dst)
	// α = 0+1: G = (1·0 + 255·255) >> 8 = 254; A = (1·255 + 255·200) >> 8 = 200.
	want := pixelcodec.Color{R: 0, G: 254, B: 0, A: 200}
	if got != want {
		t.Fatalf("alphaBlend with transparent src = %+v, want %+v", got, want)
	}
}

func TestAdditiveSaturates(t *testing.T) {
	src := pixelcodec.Color{R: 200, G: 10, B: 0, A: 0}
	dst := pixelcodec.Color{R: 200, G: 10, B: 0, A: 0}
	got := additive(src, dst)
	want := pixelcodec.Color{R: 255, G: 20, B: 0, A: 0}
	if got != want {
		t.Fatalf("additive = %+v, want %+v", got, want)
	}
}

func TestSubtractiveFloorsAtZero(t *testing.T) {
	src := pixelcodec.Color{R: 200, G: 0, B: 0, A: 0}
	dst := pixelcodec.Color{R: 50, G: 0, B: 0, A: 0}
	got := subtractive(src, dst)
	want := pixelcodec.Color{R: 0, G: 0, B: 0, A: 0}
	if got != want {
		t.Fatalf("subtractive = %+v, want %+v", got, want)
	}
}

func TestMultiplicativeIdentityWithWhite(t *testing.T) {
	src := pixelcodec.Color{R: 255, G: 255, B: 255, A: 255}
	dst := pixelcodec.Color{R: 37, G: 200, B: 10, A: 128}
	got := multiplicative(src, dst)
	if got != dst {
		t.Fatalf("multiplicative by white = %+v, want identity %+v", got, dst)
	}
}

func TestScreenWithBlackSrcScalesDstBy255Over256(t *testing.T) {
	src := pixelcodec.Color{R: 0, G: 0, B: 0, A: 0}
	dst := pixelcodec.Color{R: 37, G: 200, B: 10, A: 128}
	got := screen(src, dst)
	// s = 0: each channel is (d·255) >> 8, one step below d for d > 0.
	want := pixelcodec.Color{R: 36, G: 199, B: 9, A: 127}
	if got != want {
		t.Fatalf("screen with black src = %+v, want %+v", got, want)
	}
}

func TestLightenDarken(t *testing.T) {
	src := pixelcodec.Color{R: 10, G: 200, B: 10, A: 10}
	dst := pixelcodec.Color{R: 20, G: 20, B: 20, A: 20}
	if got, want := lighten(src, dst), (pixelcodec.Color{R: 20, G: 200, B: 20, A: 20}); got != want {
		t.Fatalf("lighten = %+v, want %+v", got, want)
	}
	if got, want := darken(src, dst), (pixelcodec.Color{R: 10, G: 20, B: 10, A: 10}); got != want {
		t.Fatalf("darken = %+v, want %+v", got, want)
	}
}

func TestGetBatchMatchesScalar(t *testing.T) {
	var src, dst pixelcodec.Color8
	for i := 0; i < 8; i++ {
		src[i] = pixelcodec.Color{R: uint8(i * 10), G: uint8(255 - i*10), B: 50, A: uint8(i * 30)}
		dst[i] = pixelcodec.Color{R: 100, G: 100, B: 100, A: 100}
	}
	mask := pixelcodec.FullMask8()
	mask[3] = false

	for mode := Average; mode <= Darken; mode++ {
		scalarFn := Get(mode)
		batchFn := GetBatch(mode)
		got := batchFn(src, dst, mask)
		for i := 0; i < 8; i++ {
			want := dst[i]
			if mask[i] {
				want = scalarFn(src[i], dst[i])
			}
			if got[i] != want {
				t.Fatalf("mode %d lane %d: got %+v, want %+v", mode, i, got[i], want)
			}
		}
	}
}

func TestDepthCompareModes(t *testing.T) {
	cases := []struct {
		mode     DepthFunc
		src, dst float32
		want     bool
	}{
		{DepthEqual, 1, 1, true},
		{DepthEqual, 1, 2, false},
		{DepthNotEqual, 1, 2, true},
		{DepthLess, 1, 2, true},
		{DepthLess, 2, 1, false},
		{DepthLessEqual, 1, 1, true},
		{DepthGreater, 2, 1, true},
		{DepthGreaterEqual, 1, 1, true},
	}
	for _, c := range cases {
		if got := GetDepth(c.mode)(c.src, c.dst); got != c.want {
			t.Errorf("mode %d: compare(%v, %v) = %v, want %v", c.mode, c.src, c.dst, got, c.want)
		}
	}
}

func TestDepthCompareBatchMatchesScalar(t *testing.T) {
	src := wide.F32x8{0, 1, 2, 3, 4, 5, 6, 7}
	dst := wide.SplatF32x8(3.5)
	for mode := DepthEqual; mode <= DepthGreaterEqual; mode++ {
		scalarFn := GetDepth(mode)
		batchFn := GetDepthBatch(mode)
		got := batchFn(src, dst)
		for i := 0; i < 8; i++ {
			if want := scalarFn(src[i], dst[i]); got[i] != want {
				t.Fatalf("mode %d lane %d: got %v, want %v", mode, i, got[i], want)
			}
		}
	}
}
