package geometry

// Face identifies which side of a triangle is facing the viewer.
type Face uint8

const (
	Front Face = iota
	Back
)

// SignedArea computes the 2D signed area of a screen-space triangle
// (§4.7 "Face selection"): negative selects Front, positive selects Back.
func SignedArea(v1, v2, v3 Vertex) float32 {
	x1, y1 := v1.Screen.X, v1.Screen.Y
	x2, y2 := v2.Screen.X, v2.Screen.Y
	x3, y3 := v3.Screen.X, v3.Screen.Y
	return (x2-x1)*(y3-y1) - (x3-x1)*(y2-y1)
}

// SelectFace returns the face a triangle belongs to from its signed area.
func SelectFace(area float32) Face {
	if area < 0 {
		return Front
	}
	return Back
}
