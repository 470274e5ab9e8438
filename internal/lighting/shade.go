package lighting

import (
	"math"

	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
)

// Table is the bounded light table plus the head of the intrusive active
// list (§3 "Light": "threaded through the table in the order they were
// enabled"). HeadActive is -1 when no light is enabled.
type Table struct {
	Lights     [MaxLights]Light
	HeadActive int
}

// NewTable returns an empty table with every slot initialized to
// DefaultLight and marked inactive.
func NewTable() *Table {
	t := &Table{HeadActive: -1}
	for i := range t.Lights {
		t.Lights[i] = DefaultLight()
		t.Lights[i].Active = false
	}
	return t
}

// Enable activates light index, appending it to the tail of the active
// list so iteration order matches enable order.
func (t *Table) Enable(index int) {
	if t.Lights[index].Active {
		return
	}
	t.Lights[index].Active = true
	t.Lights[index].Next = -1
	if t.HeadActive < 0 {
		t.HeadActive = index
		return
	}
	cur := t.HeadActive
	for t.Lights[cur].Next >= 0 {
		cur = t.Lights[cur].Next
	}
	t.Lights[cur].Next = index
}

// Disable deactivates light index and unlinks it from the active list.
func (t *Table) Disable(index int) {
	if !t.Lights[index].Active {
		return
	}
	t.Lights[index].Active = false
	if t.HeadActive == index {
		t.HeadActive = t.Lights[index].Next
		t.Lights[index].Next = -1
		return
	}
	cur := t.HeadActive
	for cur >= 0 && t.Lights[cur].Next != index {
		cur = t.Lights[cur].Next
	}
	if cur >= 0 {
		t.Lights[cur].Next = t.Lights[index].Next
	}
	t.Lights[index].Next = -1
}

// Fragment holds the per-fragment inputs to Shade: the already
// material-diffuse-multiplied fragment color and its world-space position
// and normal (§4.6 "Inputs per fragment"). The eye position is passed to
// Shade separately.
type Fragment struct {
	Color    pixelcodec.Color
	Position mathkernel.Vec3
	Normal   mathkernel.Vec3
}

// Shade runs the per-light accumulation loop of §4.6 over every active
// light in t, returning the lit fragment color with alpha carried through
// unchanged from frag.Color.
func Shade(t *Table, mat Material, model Model, frag Fragment, eye mathkernel.Vec3) pixelcodec.Color {
	n := frag.Normal.Normalize()

	var accR, accG, accB float32
	for i := t.HeadActive; i >= 0; i = t.Lights[i].Next {
		l := &t.Lights[i]

		toLight := mathkernel.Vec3{
			X: l.Position[0] - frag.Position.X,
			Y: l.Position[1] - frag.Position.Y,
			Z: l.Position[2] - frag.Position.Z,
		}
		d2 := toLight.Dot(toLight)
		d := float32(math.Sqrt(float64(d2)))
		var lvec mathkernel.Vec3
		if d > 0 {
			lvec = mathkernel.Vec3{X: toLight.X / d, Y: toLight.Y / d, Z: toLight.Z / d}
		}

		intensity := float32(1)
		if l.InnerCutoff < pi {
			dir := mathkernel.Vec3{X: -l.Direction[0], Y: -l.Direction[1], Z: -l.Direction[2]}.Normalize()
			theta := lvec.Dot(dir)
			denom := l.InnerCutoff - l.OuterCutoff
			if denom == 0 {
				if theta >= l.InnerCutoff {
					intensity = 1
				} else {
					intensity = 0
				}
			} else {
				v := (theta - l.OuterCutoff) / denom
				intensity = clamp01(v)
			}
		}

		attenuation := float32(1)
		if l.Linear != 0 || l.Quadratic != 0 {
			denom := l.Constant + l.Linear*d + l.Quadratic*d2
			if denom > 0 {
				attenuation = 1 / denom
			} else {
				attenuation = 0
			}
		}

		diffTerm := n.Dot(lvec)
		if diffTerm < 0 {
			diffTerm = 0
		}

		view := mathkernel.Vec3{X: eye.X - frag.Position.X, Y: eye.Y - frag.Position.Y, Z: eye.Z - frag.Position.Z}.Normalize()
		var specTerm float32
		if diffTerm > 0 && mat.Shininess > 0 {
			switch model {
			case Phong:
				r := mathkernel.Vec3{X: -lvec.X, Y: -lvec.Y, Z: -lvec.Z}.Reflect(n)
				s := r.Dot(view)
				if s < 0 {
					s = 0
				}
				specTerm = float32(math.Pow(float64(s), float64(mat.Shininess)))
			default: // BlinnPhong
				h := mathkernel.Vec3{X: lvec.X + view.X, Y: lvec.Y + view.Y, Z: lvec.Z + view.Z}.Normalize()
				s := n.Dot(h)
				if s < 0 {
					s = 0
				}
				specTerm = float32(math.Pow(float64(s), float64(mat.Shininess)))
			}
		}

		scale := intensity * attenuation

		// Diffuse: max(0, N·L) * fragment_color * light.diffuse (§4.6 step 4).
		diffuse := frag.Color.Mul(l.Diffuse).Scale(diffTerm * scale)
		// Specular: material.specular * light.specular * spec (§4.6 step 5).
		specular := mat.Specular.Mul(l.Specular).Scale(specTerm * scale)
		// Ambient: material.ambient * fragment_color * light.ambient (§4.6 step 6);
		// unlike diffuse/specular this is not scaled by intensity/attenuation.
		ambient := mat.Ambient.Mul(frag.Color).Mul(l.Ambient)

		accR += float32(diffuse.R) + float32(specular.R) + float32(ambient.R)
		accG += float32(diffuse.G) + float32(specular.G) + float32(ambient.G)
		accB += float32(diffuse.B) + float32(specular.B) + float32(ambient.B)
	}

	emission := mat.Emission
	out := pixelcodec.Color{
		R: clampAdd(accR, emission.R),
		G: clampAdd(accG, emission.G),
		B: clampAdd(accB, emission.B),
		A: frag.Color.A,
	}
	return out
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func clampAdd(acc float32, emission uint8) uint8 {
	v := acc + float32(emission)
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
