package parallel

import (
	"github.com/bigfoot71/pixelforge/internal/framebuffer"
	"github.com/bigfoot71/pixelforge/internal/geometry"
	"github.com/bigfoot71/pixelforge/internal/raster"
)

// AreaThreshold is the bounding-box pixel count above which FillTriangle
// fans a triangle's scanlines out across a WorkerPool instead of calling
// raster.Fill directly (§4.8 "an implementation may parallelize scanlines
// when the bounding-box area exceeds a threshold (e.g. 4096 pixels)").
const AreaThreshold = 4096

// FillTriangle rasterizes one triangle, splitting its bounding box into
// row bands and running them on pool when the box is large enough to be
// worth the dispatch overhead. Every band writes disjoint rows of fb, so
// no synchronization beyond waiting for all bands to finish is needed
// (§4.8's "y iterations are independent"; §5's "draw returns only after
// all fragments have been committed").
func FillTriangle(pool *WorkerPool, fb *framebuffer.Framebuffer, v1, v2, v3 geometry.Vertex, face geometry.Face, clampToViewport bool, vp geometry.Viewport, state raster.State) {
	loX, hiX, loY, hiY, ok := raster.TriangleBounds(v1, v2, v3, clampToViewport, vp)
	if !ok {
		return
	}

	area := (hiX - loX) * (hiY - loY)
	if pool == nil || area <= AreaThreshold {
		raster.FillRows(fb, v1, v2, v3, face, loX, hiX, loY, hiY, state)
		return
	}

	bands := pool.Workers()
	rows := hiY - loY
	if bands > rows {
		bands = rows
	}
	if bands <= 1 {
		raster.FillRows(fb, v1, v2, v3, face, loX, hiX, loY, hiY, state)
		return
	}

	rowsPerBand := (rows + bands - 1) / bands
	work := make([]func(), 0, bands)
	for y := loY; y < hiY; y += rowsPerBand {
		bandLo := y
		bandHi := bandLo + rowsPerBand
		if bandHi > hiY {
			bandHi = hiY
		}
		work = append(work, func() {
			raster.FillRows(fb, v1, v2, v3, face, loX, hiX, bandLo, bandHi, state)
		})
	}

	pool.ExecuteAll(work)
}
