// Package geom provides the small amount of plane geometry the drag engine
// needs: points, rectangles, overlap area, centre distance and conversion
// between a container's local space and the shared canvas.
//
// # Coordinate Spaces
//
// Every container occupies a [Rect] on the canvas (its frame) and shows a
// window onto its own content (its bounds). The bounds origin is the scroll
// offset, so a rectangle in local space is a rectangle in content
// coordinates:
//
//	local := geom.ToLocal(onCanvas, frame, bounds)
//	back := geom.ToCanvas(local, frame, bounds) // == onCanvas
//
// All units are float64. The terminal board uses one unit per character
// cell; nothing in this package assumes a particular unit.
package geom
