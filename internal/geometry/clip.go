package geometry

import "github.com/bigfoot71/pixelforge/internal/mathkernel"

// nearEpsilon is the near-mirror plane tolerance from §4.7 ("w ≥ ε").
const nearEpsilon = 1e-5

// clipPlane is a signed-distance function over a homogeneous vertex; a
// vertex is inside the half-space when distance(v) >= 0.
type clipPlane func(h mathkernel.Vec4) float32

// clipPlanes are the six frustum planes (±w − {x,y,z} = 0) plus the near
// w-mirror plane, in the order §4.7 lists them.
var clipPlanes = [7]clipPlane{
	func(h mathkernel.Vec4) float32 { return h.W - h.X },
	func(h mathkernel.Vec4) float32 { return h.W + h.X },
	func(h mathkernel.Vec4) float32 { return h.W - h.Y },
	func(h mathkernel.Vec4) float32 { return h.W + h.Y },
	func(h mathkernel.Vec4) float32 { return h.W - h.Z },
	func(h mathkernel.Vec4) float32 { return h.W + h.Z },
	func(h mathkernel.Vec4) float32 { return h.W - nearEpsilon },
}

// ClipPolygon clips a convex polygon (already transformed into
// Homogeneous) against the six frustum planes and the near-mirror plane
// using Sutherland-Hodgman, writing the result into out and returning the
// number of vertices written. out must have capacity >= 2*(len(poly)+6)
// per §4.7's scratch-buffer sizing rule; callers own that allocation. Each
// call also allocates two working buffers of cap(out) vertices.
func ClipPolygon(poly []Vertex, out []Vertex) int {
	// Ping-pong between two scratch buffers sized like out so the inner
	// loop never allocates; the final result is copied into out once.
	bufA := make([]Vertex, 0, cap(out))
	bufB := make([]Vertex, 0, cap(out))
	src := poly

	for i, plane := range clipPlanes {
		dst := bufA[:0]
		if i%2 != 0 {
			dst = bufB[:0]
		}
		dst = clipAgainstPlane(src, plane, dst)
		if i%2 == 0 {
			bufA = dst
		} else {
			bufB = dst
		}
		src = dst
		if len(src) == 0 {
			break
		}
	}

	return copy(out[:cap(out)], src)
}

func clipAgainstPlane(poly []Vertex, plane clipPlane, dst []Vertex) []Vertex {
	n := len(poly)
	if n == 0 {
		return dst
	}
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i-1+n)%n]
		curD := plane(cur.Homogeneous)
		prevD := plane(prev.Homogeneous)
		curIn := curD >= 0
		prevIn := prevD >= 0

		if curIn != prevIn {
			t := prevD / (prevD - curD)
			dst = append(dst, prev.Lerp(cur, t))
		}
		if curIn {
			dst = append(dst, cur)
		}
	}
	return dst
}

// ClipPoint reports whether a transformed point survives clipping: it is
// discarded iff any homogeneous coordinate's magnitude exceeds w (§4.7
// "Point clipping").
func ClipPoint(h mathkernel.Vec4) bool {
	w := h.W
	if w < 0 {
		w = -w
	}
	return abs32(h.X) <= w && abs32(h.Y) <= w && abs32(h.Z) <= w
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// ClipLineScreen clips a pre-projected 2D line segment (both endpoints
// w == 1) against the viewport rectangle using Cohen-Sutherland, the
// first stage of §4.7 "Line clipping". Returns the clipped endpoints and
// whether any part of the segment survives.
func ClipLineScreen(p0, p1 Vertex, vx, vy, vw, vh float32) (Vertex, Vertex, bool) {
	const (
		left   = 1
		right  = 2
		bottom = 4
		top    = 8
	)
	outcode := func(x, y float32) int {
		c := 0
		if x < vx {
			c |= left
		} else if x > vx+vw {
			c |= right
		}
		if y < vy {
			c |= top
		} else if y > vy+vh {
			c |= bottom
		}
		return c
	}

	a, b := p0, p1
	ax, ay := a.Screen.X, a.Screen.Y
	bx, by := b.Screen.X, b.Screen.Y
	codeA := outcode(ax, ay)
	codeB := outcode(bx, by)

	for {
		if codeA == 0 && codeB == 0 {
			a.Screen = mathkernel.Vec2{X: ax, Y: ay}
			b.Screen = mathkernel.Vec2{X: bx, Y: by}
			return a, b, true
		}
		if codeA&codeB != 0 {
			return a, b, false
		}

		codeOut := codeA
		outIsA := true
		if codeOut == 0 {
			codeOut = codeB
			outIsA = false
		}

		var nx, ny, t float32
		switch {
		case codeOut&top != 0:
			t = (vy - ay) / (by - ay)
			nx = ax + t*(bx-ax)
			ny = vy
		case codeOut&bottom != 0:
			t = (vy + vh - ay) / (by - ay)
			nx = ax + t*(bx-ax)
			ny = vy + vh
		case codeOut&right != 0:
			t = (vx + vw - ax) / (bx - ax)
			ny = ay + t*(by-ay)
			nx = vx + vw
		case codeOut&left != 0:
			t = (vx - ax) / (bx - ax)
			ny = ay + t*(by-ay)
			nx = vx
		}

		if outIsA {
			a = a.Lerp(b, t)
			ax, ay = nx, ny
			a.Screen = mathkernel.Vec2{X: ax, Y: ay}
			codeA = outcode(ax, ay)
		} else {
			b = a.Lerp(b, t)
			bx, by = nx, ny
			b.Screen = mathkernel.Vec2{X: bx, Y: by}
			codeB = outcode(bx, by)
		}
	}
}

// ClipLineHomogeneous clips a not-yet-projected 3D line against the six
// frustum planes and the near-mirror plane (the Liang-Barsky-style second
// stage of §4.7 "Line clipping").
func ClipLineHomogeneous(p0, p1 Vertex) (Vertex, Vertex, bool) {
	a, b := p0, p1
	for _, plane := range clipPlanes {
		da := plane(a.Homogeneous)
		db := plane(b.Homogeneous)
		switch {
		case da >= 0 && db >= 0:
			continue
		case da < 0 && db < 0:
			return a, b, false
		case da < 0:
			t := da / (da - db)
			a = a.Lerp(b, t)
		default:
			t := db / (db - da)
			b = b.Lerp(a, t)
		}
	}
	return a, b, true
}
