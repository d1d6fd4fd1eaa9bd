package geom

// ToLocal converts r from canvas space into the local space of a container
// whose canvas rectangle is frame and whose visible region is bounds.
func ToLocal(r, frame, bounds Rect) Rect {
	return r.Offset(bounds.X-frame.X, bounds.Y-frame.Y)
}

// ToCanvas is the inverse of ToLocal.
func ToCanvas(r, frame, bounds Rect) Rect {
	return r.Offset(frame.X-bounds.X, frame.Y-bounds.Y)
}

// PointToLocal converts a canvas point into local space.
func PointToLocal(p Point, frame, bounds Rect) Point {
	return Point{X: p.X - frame.X + bounds.X, Y: p.Y - frame.Y + bounds.Y}
}

// PointToCanvas converts a local point into canvas space.
func PointToCanvas(p Point, frame, bounds Rect) Point {
	return Point{X: p.X - bounds.X + frame.X, Y: p.Y - bounds.Y + frame.Y}
}
