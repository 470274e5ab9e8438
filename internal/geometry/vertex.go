// Package geometry implements the geometry pipeline (§4.7): transform,
// homogeneous clipping (points, lines, polygons), perspective divide and
// viewport mapping, face selection, and primitive decomposition. The
// teacher (gogpu-gg) has no 3D homogeneous-clip stage — its clipping is a
// 2D Cohen-Sutherland line clipper and Bezier-chopping edge clipper
// (internal/clip/edge_clipper.go) — so the Sutherland-Hodgman polygon loop
// and the de Casteljau-style parametric edge split here generalize that
// file's clip-and-chop structure from 2D screen-space curves to 4D
// homogeneous half-spaces.
package geometry

import (
	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
)

// Vertex is the pipeline's working unit (§3 "Vertex"): the six attributes
// plus the two scratch fields the pipeline itself writes.
type Vertex struct {
	Position    mathkernel.Vec4 // pre-transform, caller-supplied
	Homogeneous mathkernel.Vec4 // post-MVP, scratch; Z holds 1/z after divide
	Screen      mathkernel.Vec2 // post-viewport, scratch
	Normal      mathkernel.Vec3
	TexCoord    mathkernel.Vec2
	Color       pixelcodec.Color
}

// Lerp linearly interpolates every attribute of v and o at parameter t,
// including color channel-wise in 8-bit (§4.7 "A vertex attribute produced
// by splitting an edge ... is obtained by linear interpolation of all
// attributes including color"). Position is interpolated too, although
// callers split post-transform vertices, where Homogeneous is
// authoritative.
func (v Vertex) Lerp(o Vertex, t float32) Vertex {
	return Vertex{
		Position:    v.Position.Lerp(o.Position, t),
		Homogeneous: v.Homogeneous.Lerp(o.Homogeneous, t),
		Screen:      v.Screen.Lerp(o.Screen, t),
		Normal:      v.Normal.Lerp(o.Normal, t),
		TexCoord:    v.TexCoord.Lerp(o.TexCoord, t),
		Color:       v.Color.Lerp(o.Color, t),
	}
}
