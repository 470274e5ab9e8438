package framebuffer

import (
	"math"
	"testing"

	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/texture"
)

func newTestFramebuffer(t *testing.T, w, h int) *Framebuffer {
	t.Helper()
	codec, err := pixelcodec.Select(pixelcodec.RGBA, pixelcodec.UnsignedByte)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	tex := texture.New(make([]byte, w*h*codec.Stride), w, h, codec, true)
	if tex == nil {
		t.Fatal("texture.New returned nil")
	}
	return New(tex)
}

func TestNewInitializesDepthToPositiveInfinity(t *testing.T) {
	fb := newTestFramebuffer(t, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.GetDepth(x, y); !math.IsInf(float64(got), 1) {
				t.Fatalf("GetDepth(%d,%d) = %v, want +Inf", x, y, got)
			}
		}
	}
}

func TestSetPixelDepthRoundTrips(t *testing.T) {
	fb := newTestFramebuffer(t, 4, 4)
	c := pixelcodec.Color{R: 10, G: 20, B: 30, A: 255}
	fb.SetPixelDepth(1, 2, c, 0.5)
	if got := fb.GetPixel(1, 2); got != c {
		t.Fatalf("GetPixel = %+v, want %+v", got, c)
	}
	if got := fb.GetDepth(1, 2); got != 0.5 {
		t.Fatalf("GetDepth = %v, want 0.5", got)
	}
}

func TestClearFillsColorAndDepth(t *testing.T) {
	fb := newTestFramebuffer(t, 2, 2)
	c := pixelcodec.Color{R: 1, G: 2, B: 3, A: 4}
	fb.Clear(c, 7)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := fb.GetPixel(x, y); got != c {
				t.Fatalf("GetPixel(%d,%d) = %+v, want %+v", x, y, got, c)
			}
			if got := fb.GetDepth(x, y); got != 7 {
				t.Fatalf("GetDepth(%d,%d) = %v, want 7", x, y, got)
			}
		}
	}
}

func TestSetDepthOutOfBoundsIsNoop(t *testing.T) {
	fb := newTestFramebuffer(t, 2, 2)
	fb.SetDepth(-1, 0, 1)
	fb.SetDepth(0, 5, 1)
	if got := fb.GetDepth(-1, 0); !math.IsInf(float64(got), 1) {
		t.Fatalf("out-of-bounds GetDepth should read +Inf, got %v", got)
	}
}
