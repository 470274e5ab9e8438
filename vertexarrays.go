package pixelforge

import (
	"github.com/bigfoot71/pixelforge/internal/mathkernel"
	"github.com/bigfoot71/pixelforge/internal/pixelcodec"
	"github.com/bigfoot71/pixelforge/internal/renderlist"
)

// VertexPointer binds the position array draw_arrays/draw_elements read
// from when VertexArray is enabled (§6 "Vertex arrays").
func (c *Context) VertexPointer(positions []mathkernel.Vec4) {
	c.vertexArray = positions
}

// NormalPointer binds the normal array.
func (c *Context) NormalPointer(normals []mathkernel.Vec3) {
	c.normalArray = normals
}

// ColorPointer binds the color array.
func (c *Context) ColorPointer(colors []pixelcodec.Color) {
	c.colorArray = colors
}

// TexCoordPointer binds the texture coordinate array.
func (c *Context) TexCoordPointer(texCoords []mathkernel.Vec2) {
	c.texCoordArray = texCoords
}

// arrayAttrVec3 (and its Vec2/Color twins below) reads array[i] when
// enabled is set and array is long enough,
// falling back to def otherwise (§6 "arrays not enabled, or shorter than
// the draw range, fall back to the latched current value").
func arrayAttrVec3(enabled bool, array []mathkernel.Vec3, i int, def mathkernel.Vec3) mathkernel.Vec3 {
	if enabled && i < len(array) {
		return array[i]
	}
	return def
}

func arrayAttrVec2(enabled bool, array []mathkernel.Vec2, i int, def mathkernel.Vec2) mathkernel.Vec2 {
	if enabled && i < len(array) {
		return array[i]
	}
	return def
}

func arrayAttrColor(enabled bool, array []pixelcodec.Color, i int, def pixelcodec.Color) pixelcodec.Color {
	if enabled && i < len(array) {
		return array[i]
	}
	return def
}

// buildArrayDrawCall assembles a DrawCall for the given index sequence,
// reading each attribute from its bound array when enabled and falling
// back to the corresponding latch otherwise, the same fallback rule
// immediate mode's latches express for attributes never set this vertex.
func (c *Context) buildArrayDrawCall(mode DrawMode, indices []int) renderlist.DrawCall {
	n := len(indices)
	positions := make([]mathkernel.Vec4, n)
	texCoords := make([]mathkernel.Vec2, n)
	normals := make([]mathkernel.Vec3, n)
	colors := make([]pixelcodec.Color, n)

	normalEnabled := c.IsEnabled(NormalArray)
	colorEnabled := c.IsEnabled(ColorArray)
	texCoordEnabled := c.IsEnabled(TexCoordArray)

	for i, idx := range indices {
		if idx < len(c.vertexArray) {
			positions[i] = c.vertexArray[idx]
		}
		normals[i] = arrayAttrVec3(normalEnabled, c.normalArray, idx, c.currentNormal)
		texCoords[i] = arrayAttrVec2(texCoordEnabled, c.texCoordArray, idx, c.currentTexCoord)
		colors[i] = arrayAttrColor(colorEnabled, c.colorArray, idx, c.currentColor)
	}

	return renderlist.DrawCall{
		Mode:          mode,
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

// DrawArrays assembles count vertices starting at first from the bound
// arrays and draws them under mode (§6 "draw_arrays"). Requires
// VertexArray to be enabled; otherwise sets InvalidOperation.
func (c *Context) DrawArrays(mode DrawMode, first, count int) {
	if !c.IsEnabled(VertexArray) {
		c.setError(InvalidOperation)
		return
	}
	if first < 0 || count < 0 {
		c.setError(InvalidValue)
		return
	}
	indices := make([]int, count)
	for i := range indices {
		indices[i] = first + i
	}
	c.dispatchArrayDraw(mode, indices)
}

// DrawElements assembles vertices by indexing into the bound arrays with
// indices and draws them under mode (§6 "draw_elements").
func (c *Context) DrawElements(mode DrawMode, indices []int) {
	if !c.IsEnabled(VertexArray) {
		c.setError(InvalidOperation)
		return
	}
	c.dispatchArrayDraw(mode, indices)
}

func (c *Context) dispatchArrayDraw(mode DrawMode, indices []int) {
	call := c.buildArrayDrawCall(mode, indices)
	if _, open := c.lists.Recording(); open {
		if err := c.lists.Append(call); err != nil {
			c.setError(InvalidOperation)
		}
		return
	}
	c.executeDrawCall(call)
}
