package parallel

import (
	"testing"

	"github.com/bigfoot71/pixelforge/internal/framebuffer"
	"github.com/bigfoot71/pixelforge/internal/geometry"
	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/raster"
	"github.com/bigfoot71/pixelforge/internal/texture"
)

func newFramebuffer(t *testing.T, w, h int) *framebuffer.Framebuffer {
	t.Helper()
	codec, err := pixelcodec.Select(pixelcodec.RGBA, pixelcodec.UnsignedByte)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	tex := texture.New(make([]byte, w*h*codec.Stride), w, h, codec, true)
	if tex == nil {
		t.Fatal("texture.New returned nil")
	}
	return framebuffer.New(tex)
}

func bigTriangle(w, h float32, c pixelcodec.Color) (geometry.Vertex, geometry.Vertex, geometry.Vertex) {
	v := func(x, y float32) geometry.Vertex {
		return geometry.Vertex{
			Screen:      mathkernel.Vec2{X: x, Y: y},
			Homogeneous: mathkernel.Vec4{Z: 0.5, W: 1},
			Color:       c,
		}
	}
	return v(2, 2), v(w-2, 2), v(2, h-2)
}

func TestFillTriangleMatchesDirectFillBelowThreshold(t *testing.T) {
	c := pixelcodec.Color{R: 255, A: 255}
	vp := geometry.Viewport{X: 0, Y: 0, W: 16, H: 16}
	v1, v2, v3 := bigTriangle(16, 16, c)
	face := geometry.SelectFace(geometry.SignedArea(v1, v2, v3))

	direct := newFramebuffer(t, 16, 16)
	raster.Fill(direct, v1, v2, v3, face, true, vp, raster.State{Shade: raster.Smooth})

	pooled := newFramebuffer(t, 16, 16)
	pool := NewWorkerPool(4)
	defer pool.Close()
	FillTriangle(pool, pooled, v1, v2, v3, face, true, vp, raster.State{Shade: raster.Smooth})

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if direct.GetPixel(x, y) != pooled.GetPixel(x, y) {
				t.Fatalf("pixel (%d,%d) mismatch: direct=%+v pooled=%+v", x, y, direct.GetPixel(x, y), pooled.GetPixel(x, y))
			}
		}
	}
}

func TestFillTriangleFansOutAboveThreshold(t *testing.T) {
	c := pixelcodec.Color{G: 255, A: 255}
	size := float32(128) // bbox area >> AreaThreshold
	vp := geometry.Viewport{X: 0, Y: 0, W: size, H: size}
	v1, v2, v3 := bigTriangle(size, size, c)
	face := geometry.SelectFace(geometry.SignedArea(v1, v2, v3))

	direct := newFramebuffer(t, int(size), int(size))
	raster.Fill(direct, v1, v2, v3, face, true, vp, raster.State{Shade: raster.Smooth})

	pooled := newFramebuffer(t, int(size), int(size))
	pool := NewWorkerPool(4)
	defer pool.Close()
	FillTriangle(pool, pooled, v1, v2, v3, face, true, vp, raster.State{Shade: raster.Smooth})

	mismatches := 0
	for y := 0; y < int(size); y++ {
		for x := 0; x < int(size); x++ {
			if direct.GetPixel(x, y) != pooled.GetPixel(x, y) {
				mismatches++
			}
		}
	}
	if mismatches != 0 {
		t.Fatalf("%d pixels differ between direct and pooled fill", mismatches)
	}
}

func TestFillTriangleNilPoolFallsBackToDirectFill(t *testing.T) {
	c := pixelcodec.Color{B: 255, A: 255}
	vp := geometry.Viewport{X: 0, Y: 0, W: 8, H: 8}
	v1, v2, v3 := bigTriangle(8, 8, c)
	face := geometry.SelectFace(geometry.SignedArea(v1, v2, v3))

	fb := newFramebuffer(t, 8, 8)
	FillTriangle(nil, fb, v1, v2, v3, face, true, vp, raster.State{Shade: raster.Smooth})

	if got := fb.GetPixel(3, 3); got.B == 0 {
		t.Fatalf("expected nil-pool fallback to still fill, got %+v", got)
	}
}
