package engine3

import (
	"errors"
)

// MaxVertices is the maximum number of vertices a ConvexPolygon can hold. Clipping a convex
// polygon against another can only produce up to the sum of both vertex counts, so screen
// regions inherited through portals stay comfortably under this cap.
const MaxVertices = 16

// ErrPolygonCapacity is returned when an operation would push a ConvexPolygon past MaxVertices.
// Seeing it means a geometry invariant was broken upstream (e.g. a non-convex input polygon),
// so it is never silently truncated away.
var ErrPolygonCapacity = errors.New("convex polygon vertex capacity exceeded")

// ConvexPolygon is an ordered, fixed-capacity sequence of 2D vertices describing a convex
// screen-space region in consistent winding order. A ConvexPolygon may be empty (zero
// vertices), which represents "nothing visible". The zero value is an empty polygon, ready to use.
type ConvexPolygon struct {
	vertices [MaxVertices]Vector2
	count    int
}

// NewConvexPolygon returns a ConvexPolygon holding the points provided, in order.
// It returns ErrPolygonCapacity if more than MaxVertices points are passed.
func NewConvexPolygon(points ...Vector2) (ConvexPolygon, error) {
	poly := ConvexPolygon{}
	if err := poly.SetVertices(points); err != nil {
		return ConvexPolygon{}, err
	}
	return poly, nil
}

// Count returns the number of vertices currently in the ConvexPolygon.
func (polygon *ConvexPolygon) Count() int {
	return polygon.count
}

// Vertices returns the ConvexPolygon's vertices as a slice. The slice aliases the polygon's
// internal storage and is only valid until the polygon is next modified.
func (polygon *ConvexPolygon) Vertices() []Vector2 {
	return polygon.vertices[:polygon.count]
}

// AddVertex appends a vertex to the ConvexPolygon, returning ErrPolygonCapacity if the
// polygon is already full.
func (polygon *ConvexPolygon) AddVertex(point Vector2) error {
	if polygon.count >= MaxVertices {
		return ErrPolygonCapacity
	}
	polygon.vertices[polygon.count] = point
	polygon.count++
	return nil
}

// SetVertices replaces the ConvexPolygon's contents with the points provided, returning
// ErrPolygonCapacity if there are more than MaxVertices of them.
func (polygon *ConvexPolygon) SetVertices(points []Vector2) error {
	if len(points) > MaxVertices {
		return ErrPolygonCapacity
	}
	copy(polygon.vertices[:], points)
	polygon.count = len(points)
	return nil
}

// Clear empties the ConvexPolygon.
func (polygon *ConvexPolygon) Clear() {
	polygon.count = 0
}

// signedArea is the shoelace sum; positive for counter-clockwise winding in a Y-up
// coordinate system (and clockwise in screen space, where Y grows downward).
func (polygon *ConvexPolygon) signedArea() float32 {
	if polygon.count < 3 {
		return 0
	}
	area := float32(0)
	for i := 0; i < polygon.count; i++ {
		j := (i + 1) % polygon.count
		area += polygon.vertices[i].X * polygon.vertices[j].Y
		area -= polygon.vertices[j].X * polygon.vertices[i].Y
	}
	return area / 2
}

// Area returns the area of the ConvexPolygon via the shoelace formula. Degenerate polygons
// (fewer than 3 vertices) have an area of 0.
func (polygon *ConvexPolygon) Area() float32 {
	area := polygon.signedArea()
	if area < 0 {
		return -area
	}
	return area
}

// Clockwise returns if the ConvexPolygon's vertices wind clockwise in screen space
// (where Y grows downward). Degenerate polygons return false.
func (polygon *ConvexPolygon) Clockwise() bool {
	return polygon.signedArea() > 0
}

// Contains returns if the point provided lies on or inside the ConvexPolygon, within the
// same tolerance the clipper uses for its half-plane tests.
func (polygon *ConvexPolygon) Contains(point Vector2) bool {
	if polygon.count < 3 {
		return false
	}
	flipped := polygon.signedArea() < 0
	for i := 0; i < polygon.count; i++ {
		j := (i + 1) % polygon.count
		start, end := polygon.vertices[i], polygon.vertices[j]
		if flipped {
			start, end = end, start
		}
		if !insideEdge(point, start, end) {
			return false
		}
	}
	return true
}
