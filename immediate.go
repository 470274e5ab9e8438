package pixelforge

import (
	"github.com/bigfoot71/pixelforge/internal/blend"
	"github.com/bigfoot71/pixelforge/internal/framebuffer"
	"github.com/bigfoot71/pixelforge/internal/geometry"
	"github.com/bigfoot71/pixelforge/internal/lighting"
	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/parallel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/raster"
	"github.com/bigfoot71/pixelforge/internal/renderlist"
)

// DrawMode is the primitive assembly rule begin/draw_arrays/draw_elements
// take (§4.7 "Primitive decomposition").
type DrawMode = geometry.DrawMode

const (
	Points        = geometry.Points
	Lines         = geometry.Lines
	LineStrip     = geometry.LineStrip
	LineLoop      = geometry.LineLoop
	Triangles     = geometry.Triangles
	TriangleFan   = geometry.TriangleFan
	TriangleStrip = geometry.TriangleStrip
	Quads         = geometry.Quads
	QuadFan       = geometry.QuadFan
	QuadStrip     = geometry.QuadStrip
)

// Begin opens a vertex sequence under mode (§6 "begin/end"). A second
// Begin before the matching End sets InvalidOperation and leaves the
// original sequence open.
func (c *Context) Begin(mode DrawMode) {
	if c.inBeginEnd {
		c.setError(InvalidOperation)
		return
	}
	c.inBeginEnd = true
	c.primitiveMode = mode
	c.primitives = c.primitives[:0]
}

// End closes the vertex sequence opened by Begin. While a render list is
// being recorded the sequence is captured as a renderlist.DrawCall
// instead of driving the rasterizer directly (§4.9 "Subsequent
// immediate-mode verbs append to the list instead of driving the
// pipeline").
func (c *Context) End() {
	if !c.inBeginEnd {
		c.setError(InvalidOperation)
		return
	}
	c.inBeginEnd = false

	call := c.buildDrawCall()
	if _, open := c.lists.Recording(); open {
		if err := c.lists.Append(call); err != nil {
			c.setError(InvalidOperation)
		}
		return
	}
	c.executeDrawCall(call)
}

// buildDrawCall packs the latched vertex buffer plus the material/
// texture/light-model state current at End() time into a DrawCall, the
// single representation immediate mode, vertex arrays, and render list
// replay all funnel through.
func (c *Context) buildDrawCall() renderlist.DrawCall {
	n := len(c.primitives)
	positions := make([]mathkernel.Vec4, n)
	texCoords := make([]mathkernel.Vec2, n)
	normals := make([]mathkernel.Vec3, n)
	colors := make([]pixelcodec.Color, n)
	for i, v := range c.primitives {
		positions[i] = v.Position
		texCoords[i] = v.TexCoord
		normals[i] = v.Normal
		colors[i] = v.Color
	}
	return renderlist.DrawCall{
		Mode:          c.primitiveMode,
		Texture:       c.boundTexture(),
		FrontMaterial: c.materials[0],
		BackMaterial:  c.materials[1],
		LightModel:    c.lightModel,
		Positions:     positions,
		TexCoords:     texCoords,
		Normals:       normals,
		Colors:        colors,
	}
}

func (c *Context) appendVertex(pos mathkernel.Vec4) {
	if !c.inBeginEnd {
		c.setError(InvalidOperation)
		return
	}
	c.primitives = append(c.primitives, geometry.Vertex{
		Position: pos,
		Normal:   c.currentNormal,
		TexCoord: c.currentTexCoord,
		Color:    c.currentColor,
	})
}

// Vertex2f latches a 2D vertex (z = 0, w = 1) into the open sequence.
func (c *Context) Vertex2f(x, y float32) { c.Vertex4f(x, y, 0, 1) }

// Vertex2i is the integer-argument form of Vertex2f.
func (c *Context) Vertex2i(x, y int) { c.Vertex2f(float32(x), float32(y)) }

// Vertex2fv is the array-argument form of Vertex2f.
func (c *Context) Vertex2fv(v [2]float32) { c.Vertex2f(v[0], v[1]) }

// Vertex3f latches a 3D vertex (w = 1).
func (c *Context) Vertex3f(x, y, z float32) { c.Vertex4f(x, y, z, 1) }

// Vertex3i is the integer-argument form of Vertex3f.
func (c *Context) Vertex3i(x, y, z int) { c.Vertex3f(float32(x), float32(y), float32(z)) }

// Vertex3fv is the array-argument form of Vertex3f.
func (c *Context) Vertex3fv(v [3]float32) { c.Vertex3f(v[0], v[1], v[2]) }

// Vertex4f latches a full homogeneous vertex.
func (c *Context) Vertex4f(x, y, z, w float32) {
	c.appendVertex(mathkernel.Vec4{X: x, Y: y, Z: z, W: w})
}

// Vertex4i is the integer-argument form of Vertex4f.
func (c *Context) Vertex4i(x, y, z, w int) {
	c.Vertex4f(float32(x), float32(y), float32(z), float32(w))
}

// Vertex4fv is the array-argument form of Vertex4f.
func (c *Context) Vertex4fv(v [4]float32) { c.Vertex4f(v[0], v[1], v[2], v[3]) }

// Color3f latches the current color with full alpha (§3 "per-vertex
// attribute latches").
func (c *Context) Color3f(r, g, b float32) { c.Color4f(r, g, b, 1) }

// Color3ub is the byte-argument form of Color3f.
func (c *Context) Color3ub(r, g, b uint8) { c.currentColor = pixelcodec.Color{R: r, G: g, B: b, A: 255} }

// Color4f latches the current color.
func (c *Context) Color4f(r, g, b, a float32) {
	c.currentColor = pixelcodec.Color{
		R: quantize8(r),
		G: quantize8(g),
		B: quantize8(b),
		A: quantize8(a),
	}
}

// Color4ub is the byte-argument form of Color4f.
func (c *Context) Color4ub(r, g, b, a uint8) {
	c.currentColor = pixelcodec.Color{R: r, G: g, B: b, A: a}
}

// Color4fv is the array-argument form of Color4f.
func (c *Context) Color4fv(v [4]float32) { c.Color4f(v[0], v[1], v[2], v[3]) }

func quantize8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// Normal3f latches the current normal (§3 "per-vertex attribute
// latches").
func (c *Context) Normal3f(x, y, z float32) {
	c.currentNormal = mathkernel.Vec3{X: x, Y: y, Z: z}
}

// Normal3fv is the array-argument form of Normal3f.
func (c *Context) Normal3fv(v [3]float32) { c.Normal3f(v[0], v[1], v[2]) }

// TexCoord2f latches the current texture coordinate.
func (c *Context) TexCoord2f(u, v float32) {
	c.currentTexCoord = mathkernel.Vec2{X: u, Y: v}
}

// TexCoord2fv is the array-argument form of TexCoord2f.
func (c *Context) TexCoord2fv(v [2]float32) { c.TexCoord2f(v[0], v[1]) }

// clipScratchLen is the per-triangle scratch capacity ClipPolygon
// requires: 2*(len(poly)+6) for a 3-vertex input (§4.7 scratch-buffer
// sizing rule).
const clipScratchLen = 2 * (3 + 6)

// executeDrawCall drives one DrawCall through the geometry pipeline
// (transform, clip, perspective divide, face select/cull, primitive
// decomposition) and into the rasterizer (§4.7, §4.8). Both immediate
// mode's End() and call_list's replay funnel through this single path.
func (c *Context) executeDrawCall(call renderlist.DrawCall) {
	fb := c.boundFB
	if fb == nil {
		return
	}
	if err := call.Validate(); err != nil {
		c.setError(InvalidValue)
		return
	}

	n := len(call.Positions)
	verts := make([]geometry.Vertex, n)
	for i := range verts {
		verts[i] = geometry.Vertex{
			Position: call.Positions[i],
			Normal:   call.Normals[i],
			TexCoord: call.TexCoords[i],
			Color:    call.Colors[i],
		}
	}

	lit := c.IsEnabled(Lighting)
	geometry.Transform(verts, c.mvp(), c.normalMatrix(), lit)

	switch call.Mode {
	case geometry.Points:
		for i := range verts {
			c.drawPoint(fb, verts[i])
		}
	case geometry.Lines, geometry.LineStrip, geometry.LineLoop:
		var segs []geometry.LineSegment
		segs = geometry.DecomposeLines(call.Mode, n, segs)
		for _, seg := range segs {
			c.drawLine(fb, verts[seg[0]], verts[seg[1]])
		}
	default:
		var tris []geometry.Triangle
		tris = geometry.DecomposeTriangles(call.Mode, n, tris)
		for _, tri := range tris {
			c.drawPolygon(fb, verts[tri[0]], verts[tri[1]], verts[tri[2]], call)
		}
	}
}

// drawPoint clips, divides, and rasterizes a single point primitive.
func (c *Context) drawPoint(fb *framebuffer.Framebuffer, v geometry.Vertex) {
	if !geometry.ClipPoint(v.Homogeneous) {
		return
	}
	geometry.PerspectiveDivide(&v, c.viewport)
	mat := c.materialFor(FrontFace, c.materials[0], v.Color)
	raster.Point(fb, v, c.pointSize, c.viewport, c.rasterState(mat, c.lightModel))
}

// drawLine clips (homogeneous, then screen-space), divides, and
// rasterizes a single line segment primitive (§4.7 "Line clipping").
// Lines have no front/back distinction, so they always resolve against
// the front material, matching polygon_mode's Front/Back split having no
// analogue for non-filled primitives.
func (c *Context) drawLine(fb *framebuffer.Framebuffer, a, b geometry.Vertex) {
	a, b, ok := geometry.ClipLineHomogeneous(a, b)
	if !ok {
		return
	}
	geometry.PerspectiveDivide(&a, c.viewport)
	geometry.PerspectiveDivide(&b, c.viewport)
	a, b, ok = geometry.ClipLineScreen(a, b, c.viewport.X, c.viewport.Y, c.viewport.W, c.viewport.H)
	if !ok {
		return
	}
	mat := c.materialFor(FrontFace, c.materials[0], a.Color)
	raster.Line(fb, a, b, c.lineWidth, c.viewport, c.rasterState(mat, c.lightModel))
}

// drawPolygon clips a triangle against the frustum (possibly producing a
// larger convex polygon), fan-triangulates the surviving polygon, and
// rasterizes each piece after face selection and culling.
func (c *Context) drawPolygon(fb *framebuffer.Framebuffer, v1, v2, v3 geometry.Vertex, call renderlist.DrawCall) {
	poly := [3]geometry.Vertex{v1, v2, v3}
	clipped := make([]geometry.Vertex, clipScratchLen)
	n := geometry.ClipPolygon(poly[:], clipped)
	if n < 3 {
		return
	}
	clipped = clipped[:n]
	for i := range clipped {
		geometry.PerspectiveDivide(&clipped[i], c.viewport)
	}
	for i := 1; i+1 < len(clipped); i++ {
		c.rasterizeTriangle(fb, clipped[0], clipped[i], clipped[i+1], call)
	}
}

func (c *Context) rasterizeTriangle(fb *framebuffer.Framebuffer, a, b, d geometry.Vertex, call renderlist.DrawCall) {
	gface := geometry.SelectFace(geometry.SignedArea(a, b, d))
	face := FrontFace
	base := call.FrontMaterial
	polyMode := c.frontPolygonMode
	if gface == geometry.Back {
		face = BackFace
		base = call.BackMaterial
		polyMode = c.backPolygonMode
	}
	if c.IsEnabled(CullFace) && (c.cullFace == face || c.cullFace == FrontAndBack) {
		return
	}

	mat := c.materialFor(face, base, a.Color)
	state := c.rasterState(mat, call.LightModel)
	if polyMode == raster.PolygonFill {
		parallel.FillTriangle(c.pool, fb, a, b, d, gface, true, c.viewport, state)
		return
	}
	raster.Triangle(fb, polyMode, a, b, d, gface, true, c.viewport, c.lineWidth, c.pointSize, state)
}

// rasterState assembles the fixed-function parameter bundle raster.Fill/
// Point/Line/Triangle read from the context's current enable bits and
// bound resources (§4.8), for the resolved material and light model of
// one primitive.
func (c *Context) rasterState(mat lighting.Material, model lighting.Model) raster.State {
	return raster.State{
		Shade:            c.shadeModel,
		TextureEnabled:   c.IsEnabled(Texture2D),
		Texture:          c.boundTexture(),
		LightingEnabled:  c.IsEnabled(Lighting),
		Lights:           c.lightTable,
		Material:         mat,
		LightModel:       model,
		BlendEnabled:     c.IsEnabled(Blend),
		Blend:            blend.Get(c.blendMode),
		DepthTestEnabled: c.IsEnabled(DepthTest),
		DepthCompare:     blend.GetDepth(c.depthFunc),
	}
}
