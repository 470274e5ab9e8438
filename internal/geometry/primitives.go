package geometry

// DrawMode selects the primitive assembly rule for a vertex sequence
// (§4.7 "Primitive decomposition").
type DrawMode uint8

const (
	Points DrawMode = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleFan
	TriangleStrip
	Quads
	QuadFan
	QuadStrip
)

// Triangle is three vertex indices into the source slice, in winding
// order as assembled.
type Triangle [3]int

// DecomposeTriangles expands verts under mode into triangles, appending
// index triples to out and returning it. Only the draw modes that yield
// triangles are handled; Points/Lines/LineStrip/LineLoop are assembled
// directly by the rasterizer's point/line paths instead.
func DecomposeTriangles(mode DrawMode, n int, out []Triangle) []Triangle {
	switch mode {
	case Triangles:
		for i := 0; i+2 < n; i += 3 {
			out = append(out, Triangle{i, i + 1, i + 2})
		}
	case TriangleFan:
		for i := 0; i+2 < n; i++ {
			out = append(out, Triangle{0, i + 1, i + 2})
		}
	case TriangleStrip:
		for i := 0; i+2 < n; i++ {
			if i%2 == 0 {
				out = append(out, Triangle{i, i + 1, i + 2})
			} else {
				out = append(out, Triangle{i + 2, i + 1, i})
			}
		}
	case Quads:
		for i := 0; i+3 < n; i += 4 {
			out = append(out, Triangle{i, i + 1, i + 2})
			out = append(out, Triangle{i, i + 2, i + 3})
		}
	case QuadFan:
		for i := 0; i+3 < n; i += 2 {
			if i == 0 {
				out = append(out, Triangle{0, 1, 2})
				out = append(out, Triangle{0, 2, 3})
				continue
			}
			out = append(out, Triangle{0, i + 1, i + 2})
			out = append(out, Triangle{0, i + 2, i + 3})
		}
	case QuadStrip:
		for i := 0; i+3 < n; i += 2 {
			out = append(out, Triangle{i, i + 1, i + 2})
			out = append(out, Triangle{i + 1, i + 3, i + 2})
		}
	}
	return out
}

// LineSegment is two vertex indices for the line-assembly draw modes.
type LineSegment [2]int

// DecomposeLines expands verts under mode into line segments.
func DecomposeLines(mode DrawMode, n int, out []LineSegment) []LineSegment {
	switch mode {
	case Lines:
		for i := 0; i+1 < n; i += 2 {
			out = append(out, LineSegment{i, i + 1})
		}
	case LineStrip:
		for i := 0; i+1 < n; i++ {
			out = append(out, LineSegment{i, i + 1})
		}
	case LineLoop:
		for i := 0; i+1 < n; i++ {
			out = append(out, LineSegment{i, i + 1})
		}
		if n > 1 {
			out = append(out, LineSegment{n - 1, 0})
		}
	}
	return out
}
