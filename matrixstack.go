package pixelforge

import (
	"math"

	"github.com/bigfoot71/pixelforge/internal/mathkernel"
)

// MatrixMode selects one of the three stacks matrix_mode targets (§4.2).
type MatrixMode uint8

const (
	ModelView MatrixMode = iota
	Projection
	TextureMatrix
)

// Stack depth limits (§3 "bounded depth (limits ≥ 32, ≥ 32, ≥ 8
// respectively)"): projection, model-view, texture.
const (
	projectionStackLimit = 32
	modelViewStackLimit  = 32
	textureStackLimit    = 8
)

// matrixStack is a fixed-capacity array with a top-of-stack index (§9
// "Matrix stacks as arrays with a top-of-stack index... Overflow is an
// error, not a grow event").
type matrixStack struct {
	frames []mathkernel.Mat4
	limit  int
}

func newMatrixStack(limit int) matrixStack {
	s := matrixStack{frames: make([]mathkernel.Mat4, 1, limit), limit: limit}
	s.frames[0] = mathkernel.Identity()
	return s
}

func (s *matrixStack) top() mathkernel.Mat4 {
	return s.frames[len(s.frames)-1]
}

func (s *matrixStack) setTop(m mathkernel.Mat4) {
	s.frames[len(s.frames)-1] = m
}

// push duplicates the top frame (§4.2 "push_matrix duplicates the top").
func (s *matrixStack) push() bool {
	if len(s.frames) >= s.limit {
		return false
	}
	s.frames = append(s.frames, s.top())
	return true
}

// pop discards the top frame (§4.2 "pop_matrix discards it").
func (s *matrixStack) pop() bool {
	if len(s.frames) <= 1 {
		return false
	}
	s.frames = s.frames[:len(s.frames)-1]
	return true
}

func (c *Context) stackFor(mode MatrixMode) *matrixStack {
	switch mode {
	case Projection:
		return &c.projectionStack
	case TextureMatrix:
		return &c.textureStack
	default:
		return &c.modelViewStack
	}
}

// MatrixMode selects which of the three stacks subsequent matrix verbs
// target (§4.2 "matrix_mode(M) chooses one of three stacks").
func (c *Context) MatrixMode(mode MatrixMode) {
	if mode != ModelView && mode != Projection && mode != TextureMatrix {
		c.setError(InvalidEnum)
		return
	}
	c.matrixMode = mode
}

// PushMatrix duplicates the current stack's top, failing with
// StackOverflow at the declared limit.
func (c *Context) PushMatrix() {
	if !c.stackFor(c.matrixMode).push() {
		c.setError(StackOverflow)
	}
}

// PopMatrix discards the current stack's top, failing with
// StackUnderflow when only the base frame remains.
func (c *Context) PopMatrix() {
	if !c.stackFor(c.matrixMode).pop() {
		c.setError(StackUnderflow)
		return
	}
	c.invalidateMVP()
}

// LoadIdentity resets the current stack's top to the identity matrix.
func (c *Context) LoadIdentity() {
	c.stackFor(c.matrixMode).setTop(mathkernel.Identity())
	c.invalidateMVP()
}

// LoadMatrix replaces the current stack's top with m outright.
func (c *Context) LoadMatrix(m mathkernel.Mat4) {
	c.stackFor(c.matrixMode).setTop(m)
	c.invalidateMVP()
}

// MultMatrix post-multiplies the current stack's top by m (§4.2 "compose
// on the top in standard column-major semantics").
func (c *Context) MultMatrix(m mathkernel.Mat4) {
	s := c.stackFor(c.matrixMode)
	s.setTop(s.top().Multiply(m))
	c.invalidateMVP()
}

// Translate post-multiplies a translation onto the current top, so the
// translation is applied in local space (§4.2 "translate post-multiplies
// a translation on the right").
func (c *Context) Translate(x, y, z float32) {
	c.MultMatrix(mathkernel.Translation(x, y, z))
}

// Scale post-multiplies a non-uniform scale onto the current top.
func (c *Context) Scale(x, y, z float32) {
	c.MultMatrix(mathkernel.ScaleMat(x, y, z))
}

// Rotate post-multiplies a rotation of angleRadians about axis onto the
// current top.
func (c *Context) Rotate(angleRadians float32, axis mathkernel.Vec3) {
	c.MultMatrix(mathkernel.Rotation(angleRadians, axis))
}

// Frustum builds a perspective projection and post-multiplies it onto the
// current top (§4.2).
func (c *Context) Frustum(left, right, bottom, top, near, far float32) {
	s := c.stackFor(c.matrixMode)
	s.setTop(s.top().Frustum(left, right, bottom, top, near, far))
	c.invalidateMVP()
}

// Ortho builds an orthographic projection and post-multiplies it onto the
// current top.
func (c *Context) Ortho(left, right, bottom, top, near, far float32) {
	s := c.stackFor(c.matrixMode)
	s.setTop(s.top().Ortho(left, right, bottom, top, near, far))
	c.invalidateMVP()
}

// Perspective derives a frustum from (fovy, aspect, near, far) and
// post-multiplies it onto the current top (§4.2 "perspective is derived
// from frustum using (fovy, aspect, near, far)").
func (c *Context) Perspective(fovyRadians, aspect, near, far float32) {
	top := float32(math.Tan(float64(fovyRadians)/2)) * near
	right := top * aspect
	c.Frustum(-right, right, -top, top, near, far)
}

// invalidateMVP marks the cached matrix_mvp dirty (§4.2 "after any
// mutation to the projection or model-view top, the cached matrix_mvp is
// marked dirty"). Mutating the texture stack does not touch it.
func (c *Context) invalidateMVP() {
	if c.matrixMode == Projection || c.matrixMode == ModelView {
		c.mvpDirty = true
	}
}

// mvp lazily recomputes matrix_mvp as projection · model_view at the next
// draw (§4.2).
func (c *Context) mvp() mathkernel.Mat4 {
	if c.mvpDirty {
		c.mvpCache = c.projectionStack.top().Multiply(c.modelViewStack.top())
		c.mvpDirty = false
	}
	return c.mvpCache
}

// normalMatrix returns the inverse-transpose of the model-view top,
// recomputed on demand only when lighting is active (§3 "matrix_normal
// ... is recomputed on demand when lighting is active").
func (c *Context) normalMatrix() mathkernel.Mat4 {
	return c.modelViewStack.top().NormalMatrix()
}
