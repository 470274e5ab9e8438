package pixelforge

import (
	"math"
	"sync"

	"github.com/bigfoot71/pixelforge/internal/blend"
	"github.com/bigfoot71/pixelforge/internal/framebuffer"
	"github.com/bigfoot71/pixelforge/internal/geometry"
	"github.com/bigfoot71/pixelforge/internal/lighting"
	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/parallel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/raster"
	"github.com/bigfoot71/pixelforge/internal/renderlist"
	"github.com/bigfoot71/pixelforge/internal/texture"
)

// Handle identifies a generated texture, framebuffer, or render list the
// way gen_texture/gen_framebuffer/gen_list hand callers a name to bind
// and later delete by (§6).
type Handle uint32

// ClearBufferBit selects which planes clear affects (§6 "clear").
type ClearBufferBit uint8

const (
	ColorBufferBit ClearBufferBit = 1 << iota
	DepthBufferBit
)

// Face names a triangle side for cull_face and polygon_mode targets
// (§4.7 "Cull decisions and per-face polygon-mode selection", "FrontAndBack
// renders both in sequence").
type Face uint8

const (
	FrontFace Face = iota
	BackFace
	FrontAndBack
)

// Context is the per-context state machine of §4.1/§3: the sole route by
// which the pipeline is configured. Every verb below is a method on the
// active context, matching the teacher's method-per-verb organization
// (context.go) generalized from a Cairo-style save/restore canvas to the
// fixed-function enable-bit/matrix-stack/error-slot model this spec
// describes.
type Context struct {
	mainBuffer *framebuffer.Framebuffer
	auxBuffer  *framebuffer.Framebuffer
	boundFB    *framebuffer.Framebuffer

	framebuffers   map[Handle]*framebuffer.Framebuffer
	nextFBHandle   Handle
	textures       map[Handle]*texture.Texture
	nextTexHandle  Handle
	boundTexHandle Handle

	matrixMode      MatrixMode
	projectionStack matrixStack
	modelViewStack  matrixStack
	textureStack    matrixStack
	mvpCache        mathkernel.Mat4
	mvpDirty        bool

	enabled StateBit

	frontPolygonMode raster.PolygonMode
	backPolygonMode  raster.PolygonMode
	shadeModel       raster.ShadeModel
	cullFace         Face

	blendMode blend.Mode
	depthFunc blend.DepthFunc

	clearColor pixelcodec.Color
	clearDepth float32

	pointSize float32
	lineWidth float32

	currentColor    pixelcodec.Color
	currentNormal   mathkernel.Vec3
	currentTexCoord mathkernel.Vec2

	vertexArray   []mathkernel.Vec4
	normalArray   []mathkernel.Vec3
	colorArray    []pixelcodec.Color
	texCoordArray []mathkernel.Vec2

	inBeginEnd    bool
	primitiveMode geometry.DrawMode
	primitives    []geometry.Vertex

	viewport geometry.Viewport

	materials  [2]lighting.Material
	lightTable *lighting.Table
	lightModel lighting.Model

	colorMaterial       bool
	colorMaterialFace   Face
	colorMaterialTarget colorMaterialChannel

	fog Fog

	rasterPos      geometry.Vertex
	rasterPosValid bool
	pixelZoomX     float32
	pixelZoomY     float32
	postProcess    PostProcessFunc

	lists          renderlist.Table
	nextListHandle Handle

	pool *parallel.WorkerPool

	errorCode ErrorCode
}

// colorMaterialChannel selects which material color channel
// color_material binds to the current vertex color (§3 "track the
// current vertex color for a chosen channel").
type colorMaterialChannel uint8

const (
	MaterialAmbientAndDiffuse colorMaterialChannel = iota
	MaterialAmbient
	MaterialDiffuse
	MaterialSpecular
	MaterialEmission
)

// PostProcessFunc is invoked by SwapBuffers with the main buffer's color
// texture (§6 "post_process(fn)"), letting callers tonemap or
// gamma-correct the finished frame.
type PostProcessFunc func(color *texture.Texture)

// currentMu guards the thread-local current-context pointer (§4.1
// "make_current switches the thread-local active context"; §9 "native
// thread-local storage" — Go has no per-goroutine TLS, so this module
// keeps one process-wide pointer guarded by a sync.RWMutex instead, which
// gives a "set once, read from any goroutine" contract without binding a
// context to one specific OS thread).
var (
	currentMu sync.RWMutex
	current   *Context
)

// ContextOption configures optional Context construction knobs, matching
// the teacher's functional-options pattern (context.go's ContextOption/
// defaultOptions).
type ContextOption func(*contextOptions)

type contextOptions struct {
	workers int
}

func defaultContextOptions() contextOptions {
	return contextOptions{workers: 0}
}

// WithWorkerPool enables internal scanline parallelism (§4.8 "Data
// parallelism") across n worker goroutines. Omitted or n <= 0 leaves
// every draw single-threaded; this is purely an implementation detail
// never observable through the API (§5 "must not expose them in the
// API").
func WithWorkerPool(n int) ContextOption {
	return func(o *contextOptions) { o.workers = n }
}

// NewContext creates a context with default state: identity matrices,
// smooth shading, PF_FILL both faces, Alpha blend, DepthLess, white
// current color, a zeroed error slot, and no texture/framebuffer bound.
func NewContext(opts ...ContextOption) *Context {
	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		framebuffers:     make(map[Handle]*framebuffer.Framebuffer),
		textures:         make(map[Handle]*texture.Texture),
		projectionStack:  newMatrixStack(projectionStackLimit),
		modelViewStack:   newMatrixStack(modelViewStackLimit),
		textureStack:     newMatrixStack(textureStackLimit),
		mvpDirty:         true,
		frontPolygonMode: raster.PolygonFill,
		backPolygonMode:  raster.PolygonFill,
		shadeModel:       raster.Smooth,
		cullFace:         BackFace,
		blendMode:        blend.Alpha,
		depthFunc:        blend.DepthLess,
		clearDepth:       float32(math.Inf(1)),
		pointSize:        1,
		lineWidth:        1,
		currentColor:     pixelcodec.Color{R: 255, G: 255, B: 255, A: 255},
		lightTable:       lighting.NewTable(),
		pixelZoomX:       1,
		pixelZoomY:       1,
		lists:            *renderlist.NewTable(),
	}
	if o.workers > 0 {
		c.pool = parallel.NewWorkerPool(o.workers)
	}
	return c
}

// Close releases the context's worker pool, if any. After Close the
// context should not be used.
func (c *Context) Close() {
	if c.pool != nil {
		c.pool.Close()
		c.pool = nil
	}
}

// MakeCurrent switches the thread-local active context (§4.1). Passing
// nil clears the active context.
func MakeCurrent(c *Context) {
	currentMu.Lock()
	current = c
	currentMu.Unlock()
}

// CurrentContext returns the active context, or nil if none is current
// (get_current_context, §6).
func CurrentContext() *Context {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetMainBuffer binds pixels as the main color target (§6 "Target buffer
// contract"). Unsupported (layout, type) pairs set InvalidEnum and leave
// the previous main buffer, if any, untouched.
func (c *Context) SetMainBuffer(pixels []byte, w, h int, layout pixelcodec.Layout, dataType pixelcodec.DataType) {
	codec, err := pixelcodec.Select(layout, dataType)
	if err != nil {
		c.setError(InvalidEnum)
		return
	}
	tex := texture.New(pixels, w, h, codec, false)
	if tex == nil {
		c.setError(InvalidValue)
		return
	}
	fb := framebuffer.New(tex)
	prevMain := c.mainBuffer
	c.mainBuffer = fb
	if c.boundFB == nil || c.boundFB == prevMain {
		c.boundFB = fb
	}
}

// SetAuxBuffer binds an optional secondary target the same way
// SetMainBuffer binds the primary one (§3 "Context... optional auxiliary
// buffer").
func (c *Context) SetAuxBuffer(pixels []byte, w, h int, layout pixelcodec.Layout, dataType pixelcodec.DataType) {
	codec, err := pixelcodec.Select(layout, dataType)
	if err != nil {
		c.setError(InvalidEnum)
		return
	}
	tex := texture.New(pixels, w, h, codec, false)
	if tex == nil {
		c.setError(InvalidValue)
		return
	}
	c.auxBuffer = framebuffer.New(tex)
}

// SwapBuffers invokes the post-process callback, if any, over the main
// buffer's color texture (§6 "post_process(fn)"). PixelForge writes
// directly into the caller-supplied buffer, so there is no presentation
// step beyond this hook.
func (c *Context) SwapBuffers() {
	if c.postProcess != nil && c.mainBuffer != nil {
		c.postProcess(c.mainBuffer.Color)
	}
}

// Viewport sets the screen-space rectangle vertices are mapped into and
// the clip rectangle pixels are tested against (§3, §4.7).
func (c *Context) Viewport(x, y, w, h float32) {
	if w < 0 || h < 0 {
		c.setError(InvalidValue)
		return
	}
	c.viewport = geometry.Viewport{X: x, Y: y, W: w, H: h}
}

// ClearColor sets the color used by Clear(ColorBufferBit).
func (c *Context) ClearColor(col pixelcodec.Color) {
	c.clearColor = col
}

// ClearDepth sets the depth value used by Clear(DepthBufferBit), default
// +Inf (§3 "Framebuffer... Clearing sets ... depth to a user-selectable
// value (default +∞)").
func (c *Context) ClearDepth(depth float32) {
	c.clearDepth = depth
}

// Clear clears the planes named by bits on the currently bound
// framebuffer.
func (c *Context) Clear(bits ClearBufferBit) {
	fb := c.boundFB
	if fb == nil {
		return
	}
	switch {
	case bits&ColorBufferBit != 0 && bits&DepthBufferBit != 0:
		fb.Clear(c.clearColor, c.clearDepth)
	case bits&ColorBufferBit != 0:
		fb.ClearColor(c.clearColor)
	case bits&DepthBufferBit != 0:
		fb.ClearDepth(c.clearDepth)
	}
}

// PolygonMode sets the fill mode used for face (§6 "polygon_mode").
func (c *Context) PolygonMode(face Face, mode raster.PolygonMode) {
	switch face {
	case FrontFace:
		c.frontPolygonMode = mode
	case BackFace:
		c.backPolygonMode = mode
	case FrontAndBack:
		c.frontPolygonMode = mode
		c.backPolygonMode = mode
	default:
		c.setError(InvalidEnum)
	}
}

// ShadeModel selects flat or smooth per-fragment coloring (§3, §6).
func (c *Context) ShadeModel(model raster.ShadeModel) {
	c.shadeModel = model
}

// LineWidth sets the width used by thin/thick line rasterization (§4.8).
func (c *Context) LineWidth(width float32) {
	if width <= 0 {
		c.setError(InvalidValue)
		return
	}
	c.lineWidth = width
}

// PointSize sets the point disk diameter (§4.8).
func (c *Context) PointSize(size float32) {
	if size <= 0 {
		c.setError(InvalidValue)
		return
	}
	c.pointSize = size
}

// CullFace selects which face is discarded when CullFace is enabled
// (§6 "cull_face"). FrontAndBack culls every triangle.
func (c *Context) CullFace(face Face) {
	c.cullFace = face
}

// BlendMode selects one of the eight fixed blend functions (§4.5, §6).
func (c *Context) BlendMode(mode blend.Mode) {
	c.blendMode = mode
}

// DepthFunc selects one of the six depth compare modes (§4.5, §6).
func (c *Context) DepthFunc(fn blend.DepthFunc) {
	c.depthFunc = fn
}

// BindFramebuffer makes handle the render target for subsequent draws,
// or the main buffer when handle is 0 (§3 "currently bound framebuffer
// (= main unless one is bound)").
func (c *Context) BindFramebuffer(handle Handle) {
	if handle == 0 {
		c.boundFB = c.mainBuffer
		return
	}
	fb, ok := c.framebuffers[handle]
	if !ok {
		c.setError(InvalidValue)
		return
	}
	c.boundFB = fb
}

// BindTexture makes handle the active texture unit's binding, or unbinds
// when handle is 0.
func (c *Context) BindTexture(handle Handle) {
	if handle != 0 {
		if _, ok := c.textures[handle]; !ok {
			c.setError(InvalidValue)
			return
		}
	}
	c.boundTexHandle = handle
}

func (c *Context) boundTexture() *texture.Texture {
	if c.boundTexHandle == 0 {
		return nil
	}
	return c.textures[c.boundTexHandle]
}
