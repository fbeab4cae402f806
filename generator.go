package engine3

import (
	"math/rand"

	"github.com/guylsmith1972/Engine3/math32"
)

// GenerateConvexPolygon builds a random convex polygon around the given center by sweeping
// numVertices angles around a circle, perturbing each angle slightly, and jittering the
// radius between 0.8x and 1.2x of avgRadius. Radius jitter can pull a vertex inside the
// chord of its neighbours, so a final pass drops reflex vertices, leaving the convex hull
// of the sampled points. The result may therefore have fewer than numVertices vertices,
// but is always convex and consistently wound.
//
// The caller provides the random source, which keeps generation reproducible for tests and
// benchmarks and keeps this free of hidden global state.
func GenerateConvexPolygon(rng *rand.Rand, centerX, centerY, avgRadius float32, numVertices int) ConvexPolygon {

	if numVertices > MaxVertices {
		numVertices = MaxVertices
	}
	if numVertices < 3 {
		numVertices = 3
	}

	angles := make([]float32, numVertices)
	for i := range angles {
		angles[i] = float32(i) * 2 * math32.Pi / float32(numVertices)
	}

	maxPerturbation := math32.Pi / float32(numVertices) * 0.3
	for i := range angles {
		angles[i] += (rng.Float32()*2 - 1) * maxPerturbation
	}

	// Keep the sweep monotonic so no edge folds back
	for i := 1; i < numVertices; i++ {
		if angles[i] <= angles[i-1] {
			angles[i] = angles[i-1] + 0.01
		}
	}

	minRadius := avgRadius * 0.8
	maxRadius := avgRadius * 1.2

	points := make([]Vector2, 0, numVertices)
	for _, angle := range angles {
		radius := minRadius + rng.Float32()*(maxRadius-minRadius)
		points = append(points, Vector2{
			X: centerX + radius*math32.Cos(angle),
			Y: centerY + radius*math32.Sin(angle),
		})
	}

	// The points are already sorted by angle about the center, so removing reflex
	// vertices until every turn is a left turn yields their convex hull.
	for len(points) > 3 {
		removed := false
		for i := 0; i < len(points); i++ {
			prev := points[(i+len(points)-1)%len(points)]
			next := points[(i+1)%len(points)]
			if points[i].Sub(prev).Cross(next.Sub(points[i])) <= 0 {
				points = append(points[:i], points[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}

	polygon := ConvexPolygon{}
	polygon.SetVertices(points)

	return polygon

}
