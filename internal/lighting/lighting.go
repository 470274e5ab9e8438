// Package lighting implements the per-fragment Blinn-Phong/Phong lighting
// pass (§4.6): materials, a bounded light table, and the accumulation loop
// invoked once per shaded fragment. The teacher (gogpu-gg) is a 2D vector
// graphics library with no lighting stage, so this package is grounded
// instead on the shape of cogentcore's phong packages
// (other_examples/dea207b3_cogentcore-core__vphong-vphong.go.go and
// 01febca4_cogentcore-core__gpu-phong-system.go.go): a bounded per-kind
// light table (ambient/directional/point/spot) and a Material of
// ambient/diffuse/specular/emissive colors plus a shininess scalar,
// re-expressed here as the CPU per-fragment accumulation §4.6 prescribes
// instead of a GPU uniform-buffer layout.
package lighting

import "github.com/bigfoot71/pixelforge/internal/pixelcodec"

// MaxLights is the lower bound on the light table size required by §3
// ("Bounded table (limit ≥ 8)").
const MaxLights = 8

// Model selects the specular term computed in step 5 of §4.6. It applies
// to all lights at once; the root context sets it at run time and each
// recorded draw call carries the model in effect when it was built.
type Model uint8

const (
	BlinnPhong Model = iota
	Phong
)

// Material is a per-face record of the four lighting colors and the
// shininess exponent (§3 "Material").
type Material struct {
	Ambient   pixelcodec.Color
	Diffuse   pixelcodec.Color
	Specular  pixelcodec.Color
	Emission  pixelcodec.Color
	Shininess float32
}

// DefaultMaterial matches the conventional fixed-function default: a dim
// grey ambient/diffuse response, no specular, no emission.
func DefaultMaterial() Material {
	return Material{
		Ambient:   pixelcodec.Color{R: 51, G: 51, B: 51, A: 255},
		Diffuse:   pixelcodec.Color{R: 204, G: 204, B: 204, A: 255},
		Specular:  pixelcodec.Color{},
		Emission:  pixelcodec.Color{},
		Shininess: 0,
	}
}

// Light is one slot of the bounded table (§3 "Light"). InnerCutoff >= Pi
// means "not a spot" per §4.6 step 2.
type Light struct {
	Position  [3]float32
	Direction [3]float32

	InnerCutoff float32
	OuterCutoff float32

	Constant  float32
	Linear    float32
	Quadratic float32

	Ambient  pixelcodec.Color
	Diffuse  pixelcodec.Color
	Specular pixelcodec.Color

	Active bool
	// Next threads the intrusive active-light list in enable order (§3:
	// "active lights form an intrusive linked list threaded through the
	// table in the order they were enabled"). -1 terminates the list.
	Next int
}

// DefaultLight matches a plain white positional light with no
// attenuation and no spot cone.
func DefaultLight() Light {
	return Light{
		InnerCutoff: pi,
		OuterCutoff: pi,
		Constant:    1,
		Linear:      0,
		Quadratic:   0,
		Ambient:     pixelcodec.Color{A: 255},
		Diffuse:     pixelcodec.Color{R: 255, G: 255, B: 255, A: 255},
		Specular:    pixelcodec.Color{R: 255, G: 255, B: 255, A: 255},
		Next:        -1,
	}
}

const pi = 3.14159265358979323846
