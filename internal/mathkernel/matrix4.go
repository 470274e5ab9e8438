package mathkernel

import "math"

// Mat4 is a 4x4 matrix stored column-major, matching the wire layout a
// graphics API expects: m[col*4+row]. This generalizes the teacher's 2x3
// affine Matrix (A,B,C / D,E,F) to the full homogeneous transform the
// geometry pipeline needs (§4.2).
type Mat4 [16]float32

// Identity returns the identity transformation matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// at returns element (row, col).
func (m Mat4) at(row, col int) float32 { return m[col*4+row] }

// Translation returns a translation matrix.
func Translation(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// ScaleMat returns a scaling matrix.
func ScaleMat(x, y, z float32) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// Rotation returns a rotation matrix of angle radians around the given axis.
// The axis need not be normalized.
func Rotation(angle float32, axis Vec3) Mat4 {
	a := axis.Normalize()
	s := float32(math.Sin(float64(angle)))
	c := float32(math.Cos(float64(angle)))
	t := 1 - c

	m := Identity()
	m[0] = t*a.X*a.X + c
	m[1] = t*a.X*a.Y + s*a.Z
	m[2] = t*a.X*a.Z - s*a.Y

	m[4] = t*a.X*a.Y - s*a.Z
	m[5] = t*a.Y*a.Y + c
	m[6] = t*a.Y*a.Z + s*a.X

	m[8] = t*a.X*a.Z + s*a.Y
	m[9] = t*a.Y*a.Z - s*a.X
	m[10] = t*a.Z*a.Z + c
	return m
}

// Multiply returns m * other (m applied after other, column-vector
// convention). translate/rotate/scale verbs post-multiply the stack top by
// the result of this, matching §4.2's "translate post-multiplies a
// translation on the right" rule.
func (m Mat4) Multiply(other Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.at(row, k) * other.at(k, col)
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// MulVec4 transforms a homogeneous vector by the matrix.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m.at(0, 0)*v.X + m.at(0, 1)*v.Y + m.at(0, 2)*v.Z + m.at(0, 3)*v.W,
		Y: m.at(1, 0)*v.X + m.at(1, 1)*v.Y + m.at(1, 2)*v.Z + m.at(1, 3)*v.W,
		Z: m.at(2, 0)*v.X + m.at(2, 1)*v.Y + m.at(2, 2)*v.Z + m.at(2, 3)*v.W,
		W: m.at(3, 0)*v.X + m.at(3, 1)*v.Y + m.at(3, 2)*v.Z + m.at(3, 3)*v.W,
	}
}

// MulVec3 transforms a direction vector (normals) by the upper-left 3x3
// block, ignoring translation.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: m.at(0, 0)*v.X + m.at(0, 1)*v.Y + m.at(0, 2)*v.Z,
		Y: m.at(1, 0)*v.X + m.at(1, 1)*v.Y + m.at(1, 2)*v.Z,
		Z: m.at(2, 0)*v.X + m.at(2, 1)*v.Y + m.at(2, 2)*v.Z,
	}
}

// Frustum builds a perspective projection matrix from the six clip-plane
// distances and post-multiplies it onto m, matching the source's
// frustum()/ortho() verbs (§4.2).
func (m Mat4) Frustum(left, right, bottom, top, near, far float32) Mat4 {
	f := Mat4{}
	f[0] = (2 * near) / (right - left)
	f[5] = (2 * near) / (top - bottom)
	f[8] = (right + left) / (right - left)
	f[9] = (top + bottom) / (top - bottom)
	f[10] = -(far + near) / (far - near)
	f[11] = -1
	f[14] = -(2 * far * near) / (far - near)
	return m.Multiply(f)
}

// Ortho builds an orthographic projection matrix and post-multiplies it.
func (m Mat4) Ortho(left, right, bottom, top, near, far float32) Mat4 {
	o := Identity()
	o[0] = 2 / (right - left)
	o[5] = 2 / (top - bottom)
	o[10] = -2 / (far - near)
	o[12] = -(right + left) / (right - left)
	o[13] = -(top + bottom) / (top - bottom)
	o[14] = -(far + near) / (far - near)
	return m.Multiply(o)
}

// Perspective derives a frustum from (fovy, aspect, near, far), as §4.2
// specifies ("perspective is derived from frustum").
func Perspective(fovyRadians, aspect, near, far float32) Mat4 {
	top := near * float32(math.Tan(float64(fovyRadians)/2))
	right := top * aspect
	return Identity().Frustum(-right, right, -top, top, near, far)
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			r[row*4+col] = m[col*4+row]
		}
	}
	return r
}

// Inverse computes the full 4x4 inverse via cofactor expansion, as §4.2
// mandates for deriving matrix_normal. Returns the identity matrix if m is
// singular (determinant below a small epsilon).
func (m Mat4) Inverse() Mat4 {
	a := [16]float32(m)

	var inv [16]float32
	inv[0] = a[5]*a[10]*a[15] - a[5]*a[11]*a[14] - a[9]*a[6]*a[15] + a[9]*a[7]*a[14] + a[13]*a[6]*a[11] - a[13]*a[7]*a[10]
	inv[4] = -a[4]*a[10]*a[15] + a[4]*a[11]*a[14] + a[8]*a[6]*a[15] - a[8]*a[7]*a[14] - a[12]*a[6]*a[11] + a[12]*a[7]*a[10]
	inv[8] = a[4]*a[9]*a[15] - a[4]*a[11]*a[13] - a[8]*a[5]*a[15] + a[8]*a[7]*a[13] + a[12]*a[5]*a[11] - a[12]*a[7]*a[9]
	inv[12] = -a[4]*a[9]*a[14] + a[4]*a[10]*a[13] + a[8]*a[5]*a[14] - a[8]*a[6]*a[13] - a[12]*a[5]*a[10] + a[12]*a[6]*a[9]

	inv[1] = -a[1]*a[10]*a[15] + a[1]*a[11]*a[14] + a[9]*a[2]*a[15] - a[9]*a[3]*a[14] - a[13]*a[2]*a[11] + a[13]*a[3]*a[10]
	inv[5] = a[0]*a[10]*a[15] - a[0]*a[11]*a[14] - a[8]*a[2]*a[15] + a[8]*a[3]*a[14] + a[12]*a[2]*a[11] - a[12]*a[3]*a[10]
	inv[9] = -a[0]*a[9]*a[15] + a[0]*a[11]*a[13] + a[8]*a[1]*a[15] - a[8]*a[3]*a[13] - a[12]*a[1]*a[11] + a[12]*a[3]*a[9]
	inv[13] = a[0]*a[9]*a[14] - a[0]*a[10]*a[13] - a[8]*a[1]*a[14] + a[8]*a[2]*a[13] + a[12]*a[1]*a[10] - a[12]*a[2]*a[9]

	inv[2] = a[1]*a[6]*a[15] - a[1]*a[7]*a[14] - a[5]*a[2]*a[15] + a[5]*a[3]*a[14] + a[13]*a[2]*a[7] - a[13]*a[3]*a[6]
	inv[6] = -a[0]*a[6]*a[15] + a[0]*a[7]*a[14] + a[4]*a[2]*a[15] - a[4]*a[3]*a[14] - a[12]*a[2]*a[7] + a[12]*a[3]*a[6]
	inv[10] = a[0]*a[5]*a[15] - a[0]*a[7]*a[13] - a[4]*a[1]*a[15] + a[4]*a[3]*a[13] + a[12]*a[1]*a[7] - a[12]*a[3]*a[5]
	inv[14] = -a[0]*a[5]*a[14] + a[0]*a[6]*a[13] + a[4]*a[1]*a[14] - a[4]*a[2]*a[13] - a[12]*a[1]*a[6] + a[12]*a[2]*a[5]

	inv[3] = -a[1]*a[6]*a[11] + a[1]*a[7]*a[10] + a[5]*a[2]*a[11] - a[5]*a[3]*a[10] - a[9]*a[2]*a[7] + a[9]*a[3]*a[6]
	inv[7] = a[0]*a[6]*a[11] - a[0]*a[7]*a[10] - a[4]*a[2]*a[11] + a[4]*a[3]*a[10] + a[8]*a[2]*a[7] - a[8]*a[3]*a[6]
	inv[11] = -a[0]*a[5]*a[11] + a[0]*a[7]*a[9] + a[4]*a[1]*a[11] - a[4]*a[3]*a[9] - a[8]*a[1]*a[7] + a[8]*a[3]*a[5]
	inv[15] = a[0]*a[5]*a[10] - a[0]*a[6]*a[9] - a[4]*a[1]*a[10] + a[4]*a[2]*a[9] + a[8]*a[1]*a[6] - a[8]*a[2]*a[5]

	det := a[0]*inv[0] + a[1]*inv[4] + a[2]*inv[8] + a[3]*inv[12]
	if det > -1e-10 && det < 1e-10 {
		return Identity()
	}
	invDet := 1 / det
	for i := range inv {
		inv[i] *= invDet
	}
	return Mat4(inv)
}

// NormalMatrix returns the inverse-transpose of the upper 3x3 block of m,
// used to transform normals so that non-uniform scale does not skew them
// (§4.7 "Normals ... are transformed by matrix_normal").
func (m Mat4) NormalMatrix() Mat4 {
	return m.Inverse().Transpose()
}

// Equal reports whether m and o are bit-exactly identical. Used by the
// matrix-stack-parity invariant (§8 property 4): push; mutate; pop must
// restore the prior top bit-identically.
func (m Mat4) Equal(o Mat4) bool {
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}
