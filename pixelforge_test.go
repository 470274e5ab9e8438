package pixelforge

import (
	"testing"

	"github.com/bigfoot71/pixelforge/internal/blend"
	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
)

func newTestContext(w, h int) (*Context, []byte) {
	pixels := make([]byte, w*h*4)
	c := NewContext()
	c.SetMainBuffer(pixels, w, h, pixelcodec.RGBA, pixelcodec.UnsignedByte)
	c.Viewport(0, 0, float32(w), float32(h))
	return c, pixels
}

// S1 — Clear color: all pixels equal the cleared color.
func TestClearColorFillsAllPixels(t *testing.T) {
	c, _ := newTestContext(2, 2)
	want := pixelcodec.Color{R: 10, G: 20, B: 30, A: 40}
	c.ClearColor(want)
	c.Clear(ColorBufferBit)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := c.boundFB.GetPixel(x, y); got != want {
				t.Errorf("pixel(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

// S2 — Axis-aligned triangle, smooth-shaded, checked at its three
// corners plus the untouched fourth corner.
func TestTriangleDraw(t *testing.T) {
	c, _ := newTestContext(4, 4)
	c.Begin(Triangles)
	c.Color3ub(255, 0, 0)
	c.Vertex2f(-1, -1)
	c.Color3ub(0, 255, 0)
	c.Vertex2f(1, -1)
	c.Color3ub(0, 0, 255)
	c.Vertex2f(-1, 1)
	c.End()

	red := c.boundFB.GetPixel(0, 3)
	green := c.boundFB.GetPixel(3, 3)
	blue := c.boundFB.GetPixel(0, 0)
	bg := c.boundFB.GetPixel(3, 0)

	if red.R < 200 || red.G > 40 || red.B > 40 {
		t.Errorf("pixel(0,3) = %+v, want approximately red", red)
	}
	if green.G < 200 || green.R > 40 || green.B > 40 {
		t.Errorf("pixel(3,3) = %+v, want approximately green", green)
	}
	if blue.B < 200 || blue.R > 40 || blue.G > 40 {
		t.Errorf("pixel(0,0) = %+v, want approximately blue", blue)
	}
	if bg != (pixelcodec.Color{}) {
		t.Errorf("pixel(3,0) = %+v, want background (zero)", bg)
	}
}

// S5 — Texture wrap: sampling past the right edge with Repeat wraps
// back to the same texel as the symmetric point inside [0,1).
func TestSampleNearestWrapRepeats(t *testing.T) {
	c := NewContext()
	pixels := []byte{
		0, 0, 0, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 0, 0, 0, 255,
	}
	tex := c.GenTextureBuffer(2, 2, pixelcodec.RGBA, pixelcodec.UnsignedByte)
	for i := 0; i < len(pixels); i++ {
		c.GetTexturePixels(tex)[i] = pixels[i]
	}

	got := c.SampleNearestWrap(tex, 1.5, 0.5)
	want := pixelcodec.Color{R: 0, G: 0, B: 0, A: 255}
	if got != want {
		t.Errorf("SampleNearestWrap(1.5, 0.5) = %+v, want %+v", got, want)
	}
}

// S6 — Back-face culling discards a clockwise-wound triangle when
// culling Back, and renders it once cull_face targets Front instead.
func TestCullFaceDiscardsBackFacingTriangle(t *testing.T) {
	c, _ := newTestContext(4, 4)
	c.Enable(CullFace)
	c.CullFace(BackFace)

	draw := func() {
		c.Begin(Triangles)
		c.Color3ub(255, 255, 255)
		c.Vertex2f(-1, -1)
		c.Vertex2f(-1, 1)
		c.Vertex2f(1, -1)
		c.End()
	}

	draw()
	if got := c.boundFB.GetPixel(1, 2); got != (pixelcodec.Color{}) {
		t.Errorf("back-facing triangle was rasterized: pixel = %+v", got)
	}

	c.CullFace(FrontFace)
	draw()
	if got := c.boundFB.GetPixel(1, 2); got == (pixelcodec.Color{}) {
		t.Error("triangle was not rasterized after cull_face(Front)")
	}
}

// Invariant 4 — push; mutate; pop restores the prior top bit-identical.
func TestMatrixStackPushPopParity(t *testing.T) {
	c := NewContext()
	c.MatrixMode(ModelView)
	before := c.modelViewStack.top()

	c.PushMatrix()
	c.Translate(1, 2, 3)
	c.Rotate(1.2, mathkernel.Vec3{X: 0, Y: 1, Z: 0})
	c.PopMatrix()

	after := c.modelViewStack.top()
	if !before.Equal(after) {
		t.Errorf("top after push/mutate/pop = %+v, want %+v", after, before)
	}
}

// Invariant 5 — enable/disable symmetry and enable idempotence.
func TestEnableDisableSymmetry(t *testing.T) {
	c := NewContext()

	c.Enable(Blend)
	c.Disable(Blend)
	if c.IsEnabled(Blend) {
		t.Error("enable; disable left IsEnabled true")
	}

	c.Disable(Blend)
	c.Enable(Blend)
	if !c.IsEnabled(Blend) {
		t.Error("disable; enable left IsEnabled false")
	}

	c.Enable(Blend)
	c.Enable(Blend)
	if !c.IsEnabled(Blend) {
		t.Error("repeated enable should stay enabled")
	}
}

// Invariant 2 — nothing outside the viewport is touched.
func TestDrawRespectsViewportClamp(t *testing.T) {
	c, _ := newTestContext(4, 4)
	c.Viewport(0, 0, 2, 2)

	c.Begin(Triangles)
	c.Color3ub(255, 255, 255)
	c.Vertex2f(-4, -4)
	c.Vertex2f(4, -4)
	c.Vertex2f(-4, 4)
	c.End()

	for y := 2; y < 4; y++ {
		for x := 2; x < 4; x++ {
			if got := c.boundFB.GetPixel(x, y); got != (pixelcodec.Color{}) {
				t.Errorf("pixel(%d,%d) outside viewport was written: %+v", x, y, got)
			}
		}
	}
}

// Render list fidelity (invariant 6): call_list against a fresh context
// produces the same framebuffer as drawing the same verbs inline.
func TestRenderListFidelity(t *testing.T) {
	record := func(c *Context) {
		c.Begin(Triangles)
		c.Color3ub(200, 100, 50)
		c.Vertex2f(-1, -1)
		c.Vertex2f(1, -1)
		c.Vertex2f(-1, 1)
		c.End()
	}

	inline, _ := newTestContext(4, 4)
	record(inline)

	listed, _ := newTestContext(4, 4)
	listed.NewList(1)
	record(listed)
	listed.EndList()

	replay, _ := newTestContext(4, 4)
	replay.lists = listed.lists
	replay.CallList(1)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			a := inline.boundFB.GetPixel(x, y)
			b := replay.boundFB.GetPixel(x, y)
			if a != b {
				t.Fatalf("pixel(%d,%d): inline=%+v replay=%+v", x, y, a, b)
			}
		}
	}
}

// Blend idempotence (invariant 8): with Blend disabled and opaque input,
// writing the same color twice equals writing it once.
func TestBlendDisabledIdempotent(t *testing.T) {
	c, _ := newTestContext(1, 1)
	col := pixelcodec.Color{R: 80, G: 90, B: 100, A: 255}

	c.boundFB.SetPixel(0, 0, col)
	once := c.boundFB.GetPixel(0, 0)
	c.boundFB.SetPixel(0, 0, col)
	twice := c.boundFB.GetPixel(0, 0)

	if once != twice {
		t.Errorf("idempotence broken: once=%+v twice=%+v", once, twice)
	}
}

// S4 — Alpha blend: blending a half-transparent red quad over black
// yields the documented (α·s + (256−α)·d) >> 8 result.
func TestAlphaBlend(t *testing.T) {
	c, _ := newTestContext(1, 1)
	c.ClearColor(pixelcodec.Color{A: 255})
	c.Clear(ColorBufferBit)
	c.Enable(Blend)
	c.BlendMode(blend.Alpha)

	c.Begin(Quads)
	c.Color4ub(255, 0, 0, 128)
	c.Vertex2f(-1, -1)
	c.Vertex2f(1, -1)
	c.Vertex2f(1, 1)
	c.Vertex2f(-1, 1)
	c.End()

	got := c.boundFB.GetPixel(0, 0)
	if got.R < 100 || got.R > 160 {
		t.Errorf("blended R = %d, want approximately 128", got.R)
	}
	if got.G != 0 || got.B != 0 {
		t.Errorf("blended G/B = %d/%d, want 0/0", got.G, got.B)
	}
	if got.A != 255 {
		t.Errorf("blended A = %d, want 255", got.A)
	}
}

func TestGetErrorStickyAndClearing(t *testing.T) {
	c := NewContext()
	c.Enable(StateBit(0)) // invalid: no bits set
	if got := c.GetError(); got != InvalidEnum {
		t.Fatalf("GetError() = %v, want InvalidEnum", got)
	}
	if got := c.GetError(); got != NoError {
		t.Fatalf("second GetError() = %v, want NoError (cleared)", got)
	}
}

func TestGetViewportAndMatrixMode(t *testing.T) {
	c, _ := newTestContext(8, 6)
	v := c.Get(StateViewport)
	if v.Floats != [4]float32{0, 0, 8, 6} {
		t.Errorf("StateViewport = %+v, want {0,0,8,6}", v.Floats)
	}

	c.MatrixMode(Projection)
	if got := c.GetInteger(StateMatrixMode); got != int32(Projection) {
		t.Errorf("StateMatrixMode = %d, want %d", got, Projection)
	}
}
