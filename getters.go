package pixelforge

import "github.com/bigfoot71/pixelforge/internal/pixelcodec"

// StateName selects one piece of context state for Get/GetInteger/
// GetFloat/GetBoolean (SPEC_FULL "get_booleanv/get_integerv/get_floatv/
// get_doublev/get_pointerv dispatch on a StateName enum ... implemented
// as a single Context.Get(name StateName) Value plus typed convenience
// wrappers, matching get_<type>v fanning out from one internal table in
// getter.c").
type StateName uint8

const (
	StateMatrixMode StateName = iota
	StateViewport
	StatePointSize
	StateLineWidth
	StateClearColor
	StateClearDepth
	StateCurrentColor
	StateCurrentNormal
	StateCurrentTexCoord
	StateBoundTexture
	StateBoundFramebuffer
	StateModelViewStackDepth
	StateProjectionStackDepth
	StateTextureStackDepth
)

// Value is the tagged union Get returns: exactly one of its fields is
// meaningful, selected by the StateName queried.
type Value struct {
	Ints    [4]int32
	Floats  [4]float32
	Bool    bool
	Handle  Handle
}

// Get is the one dispatch table every get_<type>v verb fans out from
// (getter.c's idiom, generalized to a single Go entry point). Unknown
// names set InvalidEnum and return a zero Value.
func (c *Context) Get(name StateName) Value {
	switch name {
	case StateMatrixMode:
		return Value{Ints: [4]int32{int32(c.matrixMode)}}
	case StateViewport:
		return Value{Floats: [4]float32{c.viewport.X, c.viewport.Y, c.viewport.W, c.viewport.H}}
	case StatePointSize:
		return Value{Floats: [4]float32{c.pointSize}}
	case StateLineWidth:
		return Value{Floats: [4]float32{c.lineWidth}}
	case StateClearColor:
		col := c.clearColor
		return Value{Floats: [4]float32{
			float32(col.R) / 255, float32(col.G) / 255, float32(col.B) / 255, float32(col.A) / 255,
		}}
	case StateClearDepth:
		return Value{Floats: [4]float32{c.clearDepth}}
	case StateCurrentColor:
		col := c.currentColor
		return Value{Floats: [4]float32{
			float32(col.R) / 255, float32(col.G) / 255, float32(col.B) / 255, float32(col.A) / 255,
		}}
	case StateCurrentNormal:
		n := c.currentNormal
		return Value{Floats: [4]float32{n.X, n.Y, n.Z}}
	case StateCurrentTexCoord:
		t := c.currentTexCoord
		return Value{Floats: [4]float32{t.X, t.Y}}
	case StateBoundTexture:
		return Value{Handle: c.boundTexHandle}
	case StateBoundFramebuffer:
		for h, fb := range c.framebuffers {
			if fb == c.boundFB {
				return Value{Handle: h}
			}
		}
		return Value{Handle: 0}
	case StateModelViewStackDepth:
		return Value{Ints: [4]int32{int32(len(c.modelViewStack.frames))}}
	case StateProjectionStackDepth:
		return Value{Ints: [4]int32{int32(len(c.projectionStack.frames))}}
	case StateTextureStackDepth:
		return Value{Ints: [4]int32{int32(len(c.textureStack.frames))}}
	default:
		c.setError(InvalidEnum)
		return Value{}
	}
}

// GetInteger is the get_integerv convenience wrapper over Get.
func (c *Context) GetInteger(name StateName) int32 { return c.Get(name).Ints[0] }

// GetFloat is the get_floatv convenience wrapper over Get.
func (c *Context) GetFloat(name StateName) float32 { return c.Get(name).Floats[0] }

// GetDouble is the get_doublev convenience wrapper over Get, PixelForge
// having no distinct double-precision state to report.
func (c *Context) GetDouble(name StateName) float64 { return float64(c.Get(name).Floats[0]) }

// GetBoolean is the get_booleanv convenience wrapper, reporting whichever
// enable bit name aliases when name denotes one, or false otherwise.
func (c *Context) GetBoolean(bit StateBit) bool { return c.IsEnabled(bit) }

// GetHandle is the get_pointerv convenience wrapper for handle-valued
// state (bound texture/framebuffer), PixelForge having no raw pointers
// exposed through the public API.
func (c *Context) GetHandle(name StateName) Handle { return c.Get(name).Handle }

// GetColor reads a color-valued state entry directly as a pixelcodec.Color
// instead of Get's normalized-float Value form.
func (c *Context) GetColor(name StateName) pixelcodec.Color {
	switch name {
	case StateClearColor:
		return c.clearColor
	case StateCurrentColor:
		return c.currentColor
	default:
		c.setError(InvalidEnum)
		return pixelcodec.Color{}
	}
}
