package engine3

import (
	"github.com/guylsmith1972/Engine3/math32"
)

const (
	// insideEpsilon loosens the half-plane inside test so vertices sitting exactly on a clip
	// edge are kept rather than flickering in and out across frames.
	insideEpsilon = 1e-5

	// parallelEpsilon is the determinant magnitude below which two lines are treated as
	// parallel. The ambiguous intersection vertex is simply not emitted; at exact edge
	// alignment this can drop a vertex, which is an accepted approximation.
	parallelEpsilon = 1e-10
)

// insideEdge reports whether the point lies on the inner side of the directed half-plane
// running from edgeStart to edgeEnd.
func insideEdge(point, edgeStart, edgeEnd Vector2) bool {
	return edgeEnd.Sub(edgeStart).Cross(point.Sub(edgeStart)) >= -insideEpsilon
}

// lineIntersection returns the intersection of the infinite lines through p1-p2 and
// clipStart-clipEnd. The second return value is false if the lines are near-parallel.
func lineIntersection(p1, p2, clipStart, clipEnd Vector2) (Vector2, bool) {

	dxLine := p2.X - p1.X
	dyLine := p2.Y - p1.Y
	dxClip := clipEnd.X - clipStart.X
	dyClip := clipEnd.Y - clipStart.Y

	denominator := dyClip*dxLine - dxClip*dyLine
	if math32.Abs(denominator) < parallelEpsilon {
		return Vector2{}, false
	}

	t := (dxClip*(p1.Y-clipStart.Y) - dyClip*(p1.X-clipStart.X)) / denominator

	return Vector2{X: p1.X + t*dxLine, Y: p1.Y + t*dyLine}, true

}

// clipByEdge runs one Sutherland-Hodgman pass, clipping the subject vertices against the
// directed edge provided and writing the surviving vertices into out. It returns the number
// of vertices written, or ErrPolygonCapacity if the result would not fit.
func clipByEdge(subject []Vector2, edgeStart, edgeEnd Vector2, out *[MaxVertices]Vector2) (int, error) {

	if len(subject) == 0 {
		return 0, nil
	}

	emit := func(count int, point Vector2) (int, bool) {
		if count >= MaxVertices {
			return count, false
		}
		out[count] = point
		return count + 1, true
	}

	outputCount := 0
	prev := subject[len(subject)-1]
	prevInside := insideEdge(prev, edgeStart, edgeEnd)

	for _, current := range subject {

		currentInside := insideEdge(current, edgeStart, edgeEnd)
		ok := true

		switch {
		case prevInside && currentInside:
			outputCount, ok = emit(outputCount, current)
		case prevInside && !currentInside:
			if crossing, hit := lineIntersection(prev, current, edgeStart, edgeEnd); hit {
				outputCount, ok = emit(outputCount, crossing)
			}
		case !prevInside && currentInside:
			if crossing, hit := lineIntersection(prev, current, edgeStart, edgeEnd); hit {
				outputCount, ok = emit(outputCount, crossing)
			}
			if ok {
				outputCount, ok = emit(outputCount, current)
			}
		}

		if !ok {
			return outputCount, ErrPolygonCapacity
		}

		prev = current
		prevInside = currentInside

	}

	return outputCount, nil

}

// ClipEdge clips the subject ConvexPolygon against the single directed half-plane running
// from edgeStart to edgeEnd, returning the (possibly empty) clipped polygon.
func ClipEdge(subject ConvexPolygon, edgeStart, edgeEnd Vector2) (ConvexPolygon, error) {
	var buffer [MaxVertices]Vector2
	count, err := clipByEdge(subject.Vertices(), edgeStart, edgeEnd, &buffer)
	if err != nil {
		return ConvexPolygon{}, err
	}
	result := ConvexPolygon{}
	result.vertices = buffer
	result.count = count
	return result, nil
}

// Intersect returns the intersection of two convex polygons by successively clipping the
// subject against every directed edge of the clip polygon (classic Sutherland-Hodgman).
// The result is convex and possibly empty; work is proportional to the total edge count of
// both inputs. If the clip polygon is degenerate (fewer than 3 vertices, so it defines no
// clip region), the subject is returned unchanged, matching how an unset screen region
// behaves during traversal.
func Intersect(subject, clip ConvexPolygon) (ConvexPolygon, error) {

	if subject.Count() == 0 {
		return ConvexPolygon{}, nil
	}
	if clip.Count() < 3 {
		return subject, nil
	}

	var bufferA, bufferB [MaxVertices]Vector2
	copy(bufferA[:], subject.Vertices())
	subjectCount := subject.Count()
	inputIsA := true

	clipVerts := clip.Vertices()

	for i := 0; i < len(clipVerts); i++ {

		if subjectCount == 0 {
			break
		}

		edgeStart := clipVerts[i]
		edgeEnd := clipVerts[(i+1)%len(clipVerts)]

		var current []Vector2
		var out *[MaxVertices]Vector2
		if inputIsA {
			current = bufferA[:subjectCount]
			out = &bufferB
		} else {
			current = bufferB[:subjectCount]
			out = &bufferA
		}

		// Skip the copy entirely when no vertex is cut off by this edge
		allInside := true
		for _, v := range current {
			if !insideEdge(v, edgeStart, edgeEnd) {
				allInside = false
				break
			}
		}
		if allInside {
			continue
		}

		var err error
		subjectCount, err = clipByEdge(current, edgeStart, edgeEnd, out)
		if err != nil {
			return ConvexPolygon{}, err
		}
		inputIsA = !inputIsA

	}

	result := ConvexPolygon{}
	if inputIsA {
		result.vertices = bufferA
	} else {
		result.vertices = bufferB
	}
	result.count = subjectCount
	return result, nil

}
