// Package raster implements the point, line, and triangle rasterizers of
// §4.8: scanline fill with barycentric interpolation for triangles, a DDA
// walk for thin/thick lines, and run-length disk fill for points. The
// teacher (gogpu-gg) rasterizes 2D vector paths via an active-edge-table
// scanline walk (internal/raster/edge.go); that table-per-scanline idiom
// is reused here for the triangle and thin-line scan loops, generalized
// from path-fill winding counts to barycentric edge functions and
// perspective-correct attribute interpolation.
package raster

import (
	"github.com/bigfoot71/pixelforge/internal/blend"
	"github.com/bigfoot71/pixelforge/internal/framebuffer"
	"github.com/bigfoot71/pixelforge/internal/geometry"
	"github.com/bigfoot71/pixelforge/internal/lighting"
	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/texture"
)

// ShadeModel selects how a triangle's fragment color is derived from its
// three vertex colors (§3 Context "shade model").
type ShadeModel uint8

const (
	Smooth ShadeModel = iota
	Flat
)

// State bundles the fixed-function state a single draw call reads, kept
// together so Fill, Line and Point share one parameter.
type State struct {
	Shade ShadeModel

	TextureEnabled bool
	Texture        *texture.Texture

	LightingEnabled bool
	Lights          *lighting.Table
	Material        lighting.Material
	LightModel      lighting.Model
	Eye             mathkernel.Vec3

	BlendEnabled bool
	Blend        blend.Func

	DepthTestEnabled bool
	DepthCompare     blend.DepthCompare
}

// Fill rasterizes one post-clip, post-viewport triangle into fb under
// state (§4.8 "Triangles (barycentric fill)"). Coordinates in v1..v3 are
// expected to already carry screen-space Screen.X/Y and the reciprocal-z
// convention left by geometry.PerspectiveDivide (Homogeneous.Z = 1/z).
func Fill(fb *framebuffer.Framebuffer, v1, v2, v3 geometry.Vertex, face geometry.Face, clampToViewport bool, vp geometry.Viewport, state State) {
	loX, hiX, loY, hiY, ok := TriangleBounds(v1, v2, v3, clampToViewport, vp)
	if !ok {
		return
	}
	FillRows(fb, v1, v2, v3, face, loX, hiX, loY, hiY, state)
}

// TriangleBounds computes the integer pixel bounding box of a screen-space
// triangle, optionally clamped to vp (§4.8 step 1, "bounding box"). ok is
// false when the box is empty, in which case the other return values are
// meaningless.
func TriangleBounds(v1, v2, v3 geometry.Vertex, clampToViewport bool, vp geometry.Viewport) (loX, hiX, loY, hiY int, ok bool) {
	x1, y1 := v1.Screen.X, v1.Screen.Y
	x2, y2 := v2.Screen.X, v2.Screen.Y
	x3, y3 := v3.Screen.X, v3.Screen.Y

	minX := minOf3(x1, x2, x3)
	maxX := maxOf3(x1, x2, x3)
	minY := minOf3(y1, y2, y3)
	maxY := maxOf3(y1, y2, y3)

	loX, hiX = int(minX), int(maxX)+1
	loY, hiY = int(minY), int(maxY)+1
	if clampToViewport {
		loX = maxInt(loX, int(vp.X))
		hiX = minInt(hiX, int(vp.X+vp.W))
		loY = maxInt(loY, int(vp.Y))
		hiY = minInt(hiY, int(vp.Y+vp.H))
	}
	return loX, hiX, loY, hiY, loX < hiX && loY < hiY
}

// FillRows rasterizes only the scanlines [loY, hiY) of the triangle within
// the pixel-column range [loX, hiX), leaving every other pixel untouched.
// Fill calls this once with the triangle's whole bounding box; the data
// parallelism described in §4.8 ("an implementation may parallelize
// scanlines when the bounding-box area exceeds a threshold") fans out by
// calling FillRows with disjoint row bands from separate goroutines —
// every call writes disjoint pixels, so no synchronization is needed
// between bands (internal/parallel.FillTriangle does exactly this).
func FillRows(fb *framebuffer.Framebuffer, v1, v2, v3 geometry.Vertex, face geometry.Face, loX, hiX, loY, hiY int, state State) {
	x1, y1 := v1.Screen.X, v1.Screen.Y
	x2, y2 := v2.Screen.X, v2.Screen.Y
	x3, y3 := v3.Screen.X, v3.Screen.Y

	// Edge functions: w_i(p) = (x - xa)(yb - ya) - (y - ya)(xb - xa), the
	// standard Pineda form. Sign convention follows §4.7's SignedArea:
	// for a back face the raw edge values are negative inside, so we
	// negate them for back faces to make "inside" correspond to all
	// three values >= 0 uniformly, matching §4.8 step 2's "negated at
	// setup" note for back faces.
	edge := func(ax, ay, bx, by, px, py float32) float32 {
		return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
	}

	sign := float32(1)
	if face == geometry.Back {
		sign = -1
	}

	for y := loY; y < hiY; y++ {
		py := float32(y) + 0.5
		for x := loX; x < hiX; x++ {
			px := float32(x) + 0.5

			w1 := sign * edge(x2, y2, x3, y3, px, py)
			w2 := sign * edge(x3, y3, x1, y1, px, py)
			w3 := sign * edge(x1, y1, x2, y2, px, py)

			if w1 < 0 || w2 < 0 || w3 < 0 {
				continue
			}
			sum := w1 + w2 + w3
			if sum == 0 {
				continue
			}
			invSum := 1 / sum
			a1 := w1 * invSum
			a2 := w2 * invSum
			a3 := w3 * invSum

			invZ1, invZ2, invZ3 := v1.Homogeneous.Z, v2.Homogeneous.Z, v3.Homogeneous.Z
			denom := a1*invZ1 + a2*invZ2 + a3*invZ3
			var z float32
			if denom != 0 {
				z = 1 / denom
			}

			if state.DepthTestEnabled {
				if !state.DepthCompare(z, fb.GetDepth(x, y)) {
					continue
				}
			}

			color := fragmentColor(state, v1, v2, v3, a1, a2, a3, z, x, y)

			if state.BlendEnabled {
				color = state.Blend(color, fb.GetPixel(x, y))
			}

			fb.SetPixelDepth(x, y, color, z)
		}
	}
}

func fragmentColor(state State, v1, v2, v3 geometry.Vertex, a1, a2, a3, z float32, x, y int) pixelcodec.Color {
	var c pixelcodec.Color
	if state.Shade == Flat {
		c = maxWeightColor(v1, v2, v3, a1, a2, a3)
	} else {
		c = interpColor(v1.Color, v2.Color, v3.Color, a1, a2, a3)
	}

	if state.TextureEnabled && state.Texture != nil {
		u := a1*v1.TexCoord.X + a2*v2.TexCoord.X + a3*v3.TexCoord.X
		vv := a1*v1.TexCoord.Y + a2*v2.TexCoord.Y + a3*v3.TexCoord.Y
		// Restore perspective correctness: texcoords were pre-multiplied
		// by 1/z during PerspectiveDivide, so multiply back by z (§4.7,
		// §4.8 step 5).
		u *= z
		vv *= z
		texColor := state.Texture.Sample(u, vv)
		c = c.Mul(texColor)
	}

	if state.LightingEnabled && state.Lights != nil {
		nx := a1*v1.Normal.X + a2*v2.Normal.X + a3*v3.Normal.X
		ny := a1*v1.Normal.Y + a2*v2.Normal.Y + a3*v3.Normal.Y
		nz := a1*v1.Normal.Z + a2*v2.Normal.Z + a3*v3.Normal.Z
		px := a1*v1.Position.X + a2*v2.Position.X + a3*v3.Position.X
		py := a1*v1.Position.Y + a2*v2.Position.Y + a3*v3.Position.Y
		pz := a1*v1.Position.Z + a2*v2.Position.Z + a3*v3.Position.Z

		frag := lighting.Fragment{
			Color:    c,
			Position: mathkernel.Vec3{X: px, Y: py, Z: pz},
			Normal:   mathkernel.Vec3{X: nx, Y: ny, Z: nz},
		}
		c = lighting.Shade(state.Lights, state.Material, state.LightModel, frag, state.Eye)
	}

	return c
}

func interpColor(c1, c2, c3 pixelcodec.Color, a1, a2, a3 float32) pixelcodec.Color {
	mix := func(v1, v2, v3 uint8) uint8 {
		f := float32(v1)*a1 + float32(v2)*a2 + float32(v3)*a3
		switch {
		case f <= 0:
			return 0
		case f >= 255:
			return 255
		default:
			return uint8(f + 0.5)
		}
	}
	return pixelcodec.Color{
		R: mix(c1.R, c2.R, c3.R),
		G: mix(c1.G, c2.G, c3.G),
		B: mix(c1.B, c2.B, c3.B),
		A: mix(c1.A, c2.A, c3.A),
	}
}

func maxWeightColor(v1, v2, v3 geometry.Vertex, a1, a2, a3 float32) pixelcodec.Color {
	if a1 >= a2 && a1 >= a3 {
		return v1.Color
	}
	if a2 >= a3 {
		return v2.Color
	}
	return v3.Color
}

func minOf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
