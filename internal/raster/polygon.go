package raster

import (
	"github.com/bigfoot71/pixelforge/internal/framebuffer"
	"github.com/bigfoot71/pixelforge/internal/geometry"
)

// PolygonMode selects how a triangle's interior is rasterized once it has
// survived clipping and face culling (§4.1 "polygon mode": Fill/Line/
// Point). The root context keeps separate modes for front and back faces
// and passes the one matching each triangle's face to Triangle.
type PolygonMode uint8

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
)

// Triangle dispatches a single post-clip, post-viewport triangle to the
// rasterizer appropriate for mode: a full barycentric
// fill, its three edges drawn as lines, or its three vertices drawn as
// points.
func Triangle(fb *framebuffer.Framebuffer, mode PolygonMode, v1, v2, v3 geometry.Vertex, face geometry.Face, clampToViewport bool, vp geometry.Viewport, lineWidth, pointSize float32, state State) {
	switch mode {
	case PolygonLine:
		Line(fb, v1, v2, lineWidth, vp, state)
		Line(fb, v2, v3, lineWidth, vp, state)
		Line(fb, v3, v1, lineWidth, vp, state)
	case PolygonPoint:
		Point(fb, v1, pointSize, vp, state)
		Point(fb, v2, pointSize, vp, state)
		Point(fb, v3, pointSize, vp, state)
	default:
		Fill(fb, v1, v2, v3, face, clampToViewport, vp, state)
	}
}
