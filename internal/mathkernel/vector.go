// Package mathkernel provides the vector, matrix and half-float primitives
// shared by every stage of the rendering pipeline.
package mathkernel

import "math"

// Vec2 is a two-component float32 vector, used for texture coordinates and
// screen-space positions.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Lerp linearly interpolates between v and o at parameter t.
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Vec3 is a three-component float32 vector, used for normals and world
// positions.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns the vector scaled by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns a unit vector in the same direction. The zero vector is
// returned unchanged rather than producing NaNs.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Reflect reflects v around the normal n, assuming n is already normalized.
// Used by the Phong specular term (§4.6 step 5).
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Lerp linearly interpolates between v and o at parameter t.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// Vec4 is a four-component float32 vector, the homogeneous coordinate used
// for clip-space positions.
type Vec4 struct {
	X, Y, Z, W float32
}

// Add returns the sum of two vectors.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the difference of two vectors.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale returns the vector scaled by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Lerp linearly interpolates between v and o at parameter t. Used when
// splitting a clipped edge (§4.7).
func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	return Vec4{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
		v.W + (o.W-v.W)*t,
	}
}

// Vec3From4 drops the w component.
func Vec3From4(v Vec4) Vec3 { return Vec3{v.X, v.Y, v.Z} }
