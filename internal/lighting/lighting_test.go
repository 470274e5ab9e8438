package lighting

import (
	"testing"

	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
)

func TestTableEnableDisableOrder(t *testing.T) {
	tb := NewTable()
	tb.Enable(3)
	tb.Enable(1)
	tb.Enable(5)

	var order []int
	for i := tb.HeadActive; i >= 0; i = tb.Lights[i].Next {
		order = append(order, i)
	}
	want := []int{3, 1, 5}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	tb.Disable(1)
	order = nil
	for i := tb.HeadActive; i >= 0; i = tb.Lights[i].Next {
		order = append(order, i)
	}
	want = []int{3, 5}
	if len(order) != len(want) || order[0] != 3 || order[1] != 5 {
		t.Fatalf("after disable(1), order = %v, want %v", order, want)
	}
}

func TestShadeNoActiveLightsIsEmission(t *testing.T) {
	tb := NewTable()
	mat := DefaultMaterial()
	mat.Emission = pixelcodec.Color{R: 10, G: 20, B: 30, A: 255}
	frag := Fragment{
		Color:    pixelcodec.Color{R: 200, G: 200, B: 200, A: 128},
		Position: mathkernel.Vec3{X: 0, Y: 0, Z: 0},
		Normal:   mathkernel.Vec3{X: 0, Y: 0, Z: 1},
	}
	out := Shade(tb, mat, BlinnPhong, frag, mathkernel.Vec3{X: 0, Y: 0, Z: 5})
	want := pixelcodec.Color{R: 10, G: 20, B: 30, A: 128}
	if out != want {
		t.Fatalf("Shade with no active lights = %+v, want %+v", out, want)
	}
}

func TestShadeDirectLightIncreasesBrightness(t *testing.T) {
	tb := NewTable()
	tb.Lights[0] = DefaultLight()
	tb.Lights[0].Position = [3]float32{0, 0, 5}
	tb.Enable(0)

	mat := DefaultMaterial()
	frag := Fragment{
		Color:    pixelcodec.Color{R: 200, G: 200, B: 200, A: 255},
		Position: mathkernel.Vec3{X: 0, Y: 0, Z: 0},
		Normal:   mathkernel.Vec3{X: 0, Y: 0, Z: 1},
	}
	out := Shade(tb, mat, BlinnPhong, frag, mathkernel.Vec3{X: 0, Y: 0, Z: 5})
	if out.A != 255 {
		t.Fatalf("alpha should pass through unchanged, got %d", out.A)
	}
	if out.R == 0 {
		t.Fatalf("expected nonzero lit output, got %+v", out)
	}
}

func TestShadeSpotlightCutoffZeroesOffAxisFragments(t *testing.T) {
	tb := NewTable()
	tb.Lights[0] = DefaultLight()
	tb.Lights[0].Position = [3]float32{0, 0, 5}
	tb.Lights[0].Direction = [3]float32{0, 0, -1}
	// Shade compares the cutoffs directly against θ = L·(−direction), so a
	// narrow cone has both cutoffs close to 1 with inner above outer.
	tb.Lights[0].InnerCutoff = 0.995
	tb.Lights[0].OuterCutoff = 0.98
	tb.Enable(0)

	mat := DefaultMaterial()
	mat.Ambient = pixelcodec.Color{}
	// Fragment far off to the side: the light-to-fragment vector points
	// mostly sideways, well outside the narrow spot cone.
	frag := Fragment{
		Color:    pixelcodec.Color{R: 200, G: 200, B: 200, A: 255},
		Position: mathkernel.Vec3{X: 50, Y: 0, Z: 0},
		Normal:   mathkernel.Vec3{X: 0, Y: 0, Z: 1},
	}
	out := Shade(tb, mat, BlinnPhong, frag, mathkernel.Vec3{X: 0, Y: 0, Z: 5})
	if out.R != 0 || out.G != 0 || out.B != 0 {
		t.Fatalf("expected fragment outside spot cone to receive no light, got %+v", out)
	}
}
