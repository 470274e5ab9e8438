package geometry

// Viewport is the screen-space rectangle vertices are mapped into (§3).
type Viewport struct {
	X, Y, W, H float32
}

// PerspectiveDivide performs the perspective divide and viewport mapping
// of §4.7 on a single vertex already past clipping. For w == 1 vertices
// (pre-projected 2D paths) it skips the divide, matching the "for each
// surviving vertex with w ≠ 1" qualifier.
func PerspectiveDivide(v *Vertex, vp Viewport) {
	h := v.Homogeneous
	if h.W != 1 {
		invW := 1 / h.W
		h.X *= invW
		h.Y *= invW
		// Store 1/z in place of z: used as the reciprocal during raster
		// interpolation (§4.7).
		var invZ float32
		if h.Z != 0 {
			invZ = 1 / h.Z
		}
		h.Z = invZ
		v.TexCoord.X *= invZ
		v.TexCoord.Y *= invZ
		v.Homogeneous = h
	}

	v.Screen.X = vp.X + (h.X+1)*0.5*vp.W + 0.5
	v.Screen.Y = vp.Y + (1-h.Y)*0.5*vp.H + 0.5
}
