package engine3

import (
	"testing"
)

func TestDrawInstructionAppendVertices(t *testing.T) {

	polygon, _ := NewConvexPolygon(
		Vector2{0, 0}, Vector2{100, 0}, Vector2{100, 100}, Vector2{50, 150}, Vector2{0, 100},
	)
	instruction := DrawInstruction{
		Polygon: polygon,
		Color:   NewColor(0.5, 0.25, 1, 1),
	}

	vertices, indices := instruction.AppendVertices(nil, nil)

	// A 5-gon fans into 3 triangles
	if len(vertices) != 5 {
		t.Fatalf("appended %d vertices, want 5", len(vertices))
	}
	if len(indices) != 9 {
		t.Fatalf("appended %d indices, want 9", len(indices))
	}

	for i, index := range indices {
		if int(index) >= len(vertices) {
			t.Fatalf("index %d out of range at position %d", index, i)
		}
	}
	// Every triangle starts at the fan root
	for i := 0; i < len(indices); i += 3 {
		if indices[i] != 0 {
			t.Fatalf("triangle %d does not root at vertex 0", i/3)
		}
	}

	for i, v := range vertices {
		if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 1 || v.ColorA != 1 {
			t.Fatalf("vertex %d carries wrong color", i)
		}
	}

	// Degenerate polygons append nothing
	degenerate := DrawInstruction{}
	if v, ix := degenerate.AppendVertices(vertices, indices); len(v) != len(vertices) || len(ix) != len(indices) {
		t.Fatal("degenerate polygon appended geometry")
	}

}

func TestDrawListVertices(t *testing.T) {

	quad, _ := NewConvexPolygon(Vector2{0, 0}, Vector2{10, 0}, Vector2{10, 10}, Vector2{0, 10})
	triangle, _ := NewConvexPolygon(Vector2{20, 0}, Vector2{30, 0}, Vector2{25, 10})

	drawList := DrawList{
		{Polygon: quad, Color: NewColor(1, 0, 0, 1)},
		{Polygon: triangle, Color: NewColor(0, 1, 0, 1)},
	}

	vertices, indices := drawList.Vertices()
	if len(vertices) != 7 {
		t.Fatalf("batched %d vertices, want 7", len(vertices))
	}
	if len(indices) != 9 {
		t.Fatalf("batched %d indices, want 9", len(indices))
	}

	// The second instruction's indices are offset past the first's vertices
	if indices[6] != 4 {
		t.Fatalf("second polygon's fan roots at %d, want 4", indices[6])
	}

}
