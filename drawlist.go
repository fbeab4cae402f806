package engine3

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// AppendVertices fan-triangulates the instruction's screen polygon and appends the result
// to the vertex and index slices provided, ready for a single ebiten.Image.DrawTriangles
// call against a 1x1 white texture. Degenerate polygons append nothing. A convex polygon of
// n vertices produces n-2 triangles.
func (instruction *DrawInstruction) AppendVertices(vertices []ebiten.Vertex, indices []uint16) ([]ebiten.Vertex, []uint16) {

	count := instruction.Polygon.Count()
	if count < 3 {
		return vertices, indices
	}

	start := uint16(len(vertices))
	color := instruction.Color

	for _, point := range instruction.Polygon.Vertices() {
		vertices = append(vertices, ebiten.Vertex{
			DstX:   point.X,
			DstY:   point.Y,
			SrcX:   0,
			SrcY:   0,
			ColorR: color.R,
			ColorG: color.G,
			ColorB: color.B,
			ColorA: color.A,
		})
	}

	for i := uint16(1); i < uint16(count)-1; i++ {
		indices = append(indices, start, start+i, start+i+1)
	}

	return vertices, indices

}

// Vertices fan-triangulates the whole draw list in order, returning vertex and index slices
// for a single DrawTriangles call. Every instruction's polygon is already clipped to its
// portal chain's visible region, so regions from different hulls never overlap and painting
// in list order needs no depth buffer.
func (drawList DrawList) Vertices() ([]ebiten.Vertex, []uint16) {

	vertices := make([]ebiten.Vertex, 0, len(drawList)*MaxVertices)
	indices := make([]uint16, 0, len(drawList)*(MaxVertices-2)*3)

	for i := range drawList {
		vertices, indices = drawList[i].AppendVertices(vertices, indices)
	}

	return vertices, indices

}
