package raster

import (
	"testing"

	"github.com/bigfoot71/pixelforge/internal/framebuffer"
	"github.com/bigfoot71/pixelforge/internal/geometry"
	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/texture"
)

func newTestFramebuffer(t *testing.T, w, h int) *framebuffer.Framebuffer {
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

func vertexAt(x, y, z float32, c pixelcodec.Color) geometry.Vertex {
	return geometry.Vertex{
		Screen:      mathkernel.Vec2{X: x, Y: y},
		Homogeneous: mathkernel.Vec4{Z: z, W: 1},
		Color:       c,
	}
}

func baseState() State {
	return State{Shade: Smooth}
}

func TestFillRasterizesFrontFacingTriangleInterior(t *testing.T) {
	fb := newTestFramebuffer(t, 8, 8)
	red := pixelcodec.Color{R: 255, A: 255}

	v1 := vertexAt(1, 1, 0.5, red)
	v2 := vertexAt(1, 6, 0.5, red)
	v3 := vertexAt(6, 1, 0.5, red)

	area := geometry.SignedArea(v1, v2, v3)
	face := geometry.SelectFace(area)

	vp := geometry.Viewport{X: 0, Y: 0, W: 8, H: 8}
	Fill(fb, v1, v2, v3, face, true, vp, baseState())

	if got := fb.GetPixel(2, 2); got.R == 0 {
		t.Fatalf("expected interior pixel (2,2) to be filled, got %+v", got)
	}
	if got := fb.GetPixel(7, 7); got.R != 0 {
		t.Fatalf("expected exterior pixel (7,7) to be untouched, got %+v", got)
	}
}

func TestFillRespectsDepthTest(t *testing.T) {
	fb := newTestFramebuffer(t, 8, 8)
	near := pixelcodec.Color{R: 255, A: 255}
	far := pixelcodec.Color{G: 255, A: 255}

	// Homogeneous.Z carries 1/z (see Fill): 10 is depth 0.1, 0.1 is depth 10.
	v1 := vertexAt(1, 1, 10, near)
	v2 := vertexAt(6, 1, 10, near)
	v3 := vertexAt(1, 6, 10, near)
	face := geometry.SelectFace(geometry.SignedArea(v1, v2, v3))
	vp := geometry.Viewport{X: 0, Y: 0, W: 8, H: 8}

	state := baseState()
	state.DepthTestEnabled = true
	state.DepthCompare = func(src, dst float32) bool { return src < dst }

	Fill(fb, v1, v2, v3, face, true, vp, state)
	before := fb.GetPixel(2, 2)
	if before.R == 0 {
		t.Fatalf("expected near triangle to draw first, got %+v", before)
	}

	v1b := vertexAt(1, 1, 0.1, far)
	v2b := vertexAt(6, 1, 0.1, far)
	v3b := vertexAt(1, 6, 0.1, far)
	faceB := geometry.SelectFace(geometry.SignedArea(v1b, v2b, v3b))
	Fill(fb, v1b, v2b, v3b, faceB, true, vp, state)

	after := fb.GetPixel(2, 2)
	if after != before {
		t.Fatalf("expected farther triangle to fail depth test and leave pixel unchanged, got %+v want %+v", after, before)
	}
}

func TestPointSinglePixel(t *testing.T) {
	fb := newTestFramebuffer(t, 4, 4)
	c := pixelcodec.Color{B: 255, A: 255}
	v := vertexAt(2, 2, 0, c)
	vp := geometry.Viewport{X: 0, Y: 0, W: 4, H: 4}

	Point(fb, v, 1, vp, baseState())

	if got := fb.GetPixel(2, 2); got != c {
		t.Fatalf("GetPixel(2,2) = %+v, want %+v", got, c)
	}
	if got := fb.GetPixel(2, 3); got.B != 0 {
		t.Fatalf("expected neighbor pixel untouched, got %+v", got)
	}
}

func TestPointDiskFillCoversCenterNotCorner(t *testing.T) {
	fb := newTestFramebuffer(t, 10, 10)
	c := pixelcodec.Color{R: 200, A: 255}
	v := vertexAt(5, 5, 0, c)
	vp := geometry.Viewport{X: 0, Y: 0, W: 10, H: 10}

	Point(fb, v, 5, vp, baseState())

	if got := fb.GetPixel(5, 5); got.R == 0 {
		t.Fatalf("expected center pixel filled, got %+v", got)
	}
	if got := fb.GetPixel(0, 0); got.R != 0 {
		t.Fatalf("expected far corner untouched, got %+v", got)
	}
}

func TestThinLineDrawsEndpoints(t *testing.T) {
	fb := newTestFramebuffer(t, 10, 10)
	c := pixelcodec.Color{G: 255, A: 255}
	a := vertexAt(1, 1, 0, c)
	b := vertexAt(8, 1, 0, c)
	vp := geometry.Viewport{X: 0, Y: 0, W: 10, H: 10}

	Line(fb, a, b, 1, vp, baseState())

	if got := fb.GetPixel(1, 1); got.G == 0 {
		t.Fatalf("expected start endpoint filled, got %+v", got)
	}
	if got := fb.GetPixel(8, 1); got.G == 0 {
		t.Fatalf("expected end endpoint filled, got %+v", got)
	}
	if got := fb.GetPixel(5, 1); got.G == 0 {
		t.Fatalf("expected interior point on horizontal line filled, got %+v", got)
	}
}

func TestThickLineDrawsOffsetRows(t *testing.T) {
	fb := newTestFramebuffer(t, 10, 10)
	c := pixelcodec.Color{R: 100, A: 255}
	a := vertexAt(1, 5, 0, c)
	b := vertexAt(8, 5, 0, c)
	vp := geometry.Viewport{X: 0, Y: 0, W: 10, H: 10}

	Line(fb, a, b, 3, vp, baseState())

	if got := fb.GetPixel(4, 5); got.R == 0 {
		t.Fatalf("expected center row filled, got %+v", got)
	}
	if got := fb.GetPixel(4, 4); got.R == 0 {
		t.Fatalf("expected offset row above filled for thick line, got %+v", got)
	}
	if got := fb.GetPixel(4, 6); got.R == 0 {
		t.Fatalf("expected offset row below filled for thick line, got %+v", got)
	}
}

func TestTriangleDispatchPolygonModePoint(t *testing.T) {
	fb := newTestFramebuffer(t, 10, 10)
	c := pixelcodec.Color{R: 255, A: 255}
	v1 := vertexAt(1, 1, 0, c)
	v2 := vertexAt(6, 1, 0, c)
	v3 := vertexAt(1, 6, 0, c)
	vp := geometry.Viewport{X: 0, Y: 0, W: 10, H: 10}
	face := geometry.SelectFace(geometry.SignedArea(v1, v2, v3))

	Triangle(fb, PolygonPoint, v1, v2, v3, face, true, vp, 1, 1, baseState())

	if got := fb.GetPixel(1, 1); got.R == 0 {
		t.Fatalf("expected vertex 1 drawn as point, got %+v", got)
	}
	if got := fb.GetPixel(3, 3); got.R != 0 {
		t.Fatalf("expected interior untouched under point polygon mode, got %+v", got)
	}
}

func TestTriangleDispatchPolygonModeLine(t *testing.T) {
	fb := newTestFramebuffer(t, 10, 10)
	c := pixelcodec.Color{R: 255, A: 255}
	v1 := vertexAt(1, 1, 0, c)
	v2 := vertexAt(6, 1, 0, c)
	v3 := vertexAt(1, 6, 0, c)
	vp := geometry.Viewport{X: 0, Y: 0, W: 10, H: 10}
	face := geometry.SelectFace(geometry.SignedArea(v1, v2, v3))

	Triangle(fb, PolygonLine, v1, v2, v3, face, true, vp, 1, 1, baseState())

	if got := fb.GetPixel(3, 1); got.R == 0 {
		t.Fatalf("expected top edge drawn, got %+v", got)
	}
	if got := fb.GetPixel(3, 3); got.R != 0 {
		t.Fatalf("expected interior untouched under line polygon mode, got %+v", got)
	}
}

func TestBlendAppliesOnTopOfExistingPixel(t *testing.T) {
	fb := newTestFramebuffer(t, 4, 4)
	fb.SetPixelDepth(2, 2, pixelcodec.Color{R: 100, A: 255}, 0)

	c := pixelcodec.Color{R: 200, A: 128}
	v := vertexAt(2, 2, 0, c)
	vp := geometry.Viewport{X: 0, Y: 0, W: 4, H: 4}

	state := baseState()
	state.BlendEnabled = true
	state.Blend = func(src, dst pixelcodec.Color) pixelcodec.Color {
		return pixelcodec.Color{R: 77, A: 255}
	}

	Point(fb, v, 1, vp, state)

	if got := fb.GetPixel(2, 2); got.R != 77 {
		t.Fatalf("expected blend function result committed, got %+v", got)
	}
}
