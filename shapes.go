package engine3

// Canonical portal ids for box-shaped hulls, one per face. NewBoxBlueprint declares its
// sides in this order, so they double as side indices for boxes.
const (
	PortalFront  PortalID = iota // +Z face
	PortalBack                   // -Z face
	PortalLeft                   // -X face
	PortalRight                  // +X face
	PortalTop                    // +Y face
	PortalBottom                 // -Y face
)

// NewBoxBlueprint returns a cube-shaped hull blueprint centered on the origin, extending
// halfSize along each axis, with all six faces declared as walls in the colors provided
// (ordered Front, Back, Left, Right, Top, Bottom). Every face carries its canonical portal
// id, so any of them can be turned into a portal with a per-instance PortalConfig override
// plus a Scene.Connect call. Face normals point inward, as sides require.
func NewBoxBlueprint(halfSize float32, sideColors [6]Color) (*HullBlueprint, error) {

	h := halfSize

	vertices := []Vector3{
		{-h, -h, -h}, // 0
		{h, -h, -h},  // 1
		{h, h, -h},   // 2
		{-h, h, -h},  // 3
		{-h, -h, h},  // 4
		{h, -h, h},   // 5
		{h, h, h},    // 6
		{-h, h, h},   // 7
	}

	sides := []BlueprintSide{
		{ // Front (+Z)
			VertexIndices: []int{4, 5, 6, 7},
			LocalNormal:   Vector3{0, 0, -1},
			Config:        WallConfig{Color: sideColors[0]},
			LocalPortalID: PortalFront,
		},
		{ // Back (-Z)
			VertexIndices: []int{1, 0, 3, 2},
			LocalNormal:   Vector3{0, 0, 1},
			Config:        WallConfig{Color: sideColors[1]},
			LocalPortalID: PortalBack,
		},
		{ // Left (-X)
			VertexIndices: []int{0, 4, 7, 3},
			LocalNormal:   Vector3{1, 0, 0},
			Config:        WallConfig{Color: sideColors[2]},
			LocalPortalID: PortalLeft,
		},
		{ // Right (+X)
			VertexIndices: []int{5, 1, 2, 6},
			LocalNormal:   Vector3{-1, 0, 0},
			Config:        WallConfig{Color: sideColors[3]},
			LocalPortalID: PortalRight,
		},
		{ // Top (+Y)
			VertexIndices: []int{3, 7, 6, 2},
			LocalNormal:   Vector3{0, -1, 0},
			Config:        WallConfig{Color: sideColors[4]},
			LocalPortalID: PortalTop,
		},
		{ // Bottom (-Y)
			VertexIndices: []int{4, 0, 1, 5},
			LocalNormal:   Vector3{0, 1, 0},
			Config:        WallConfig{Color: sideColors[5]},
			LocalPortalID: PortalBottom,
		},
	}

	return NewHullBlueprint(vertices, sides...)

}
