package geometry

import "github.com/bigfoot71/pixelforge/internal/mathkernel"

// Transform computes homogeneous = mvp * position for each vertex, and,
// when lighting is active, transforms and normalizes the normal by the
// normal matrix (§4.7 "Transform").
func Transform(verts []Vertex, mvp mathkernel.Mat4, normalMatrix mathkernel.Mat4, lighting bool) {
	for i := range verts {
		verts[i].Homogeneous = mvp.MulVec4(verts[i].Position)
		if lighting {
			n := normalMatrix.MulVec3(verts[i].Normal)
			verts[i].Normal = n.Normalize()
		}
	}
}
