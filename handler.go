package engine3

// SideConfig is the behavior bound to a hull side. It is a closed tagged set: the traversal
// dispatches over the concrete types below with an exhaustive type switch, so adding a new
// behavior (a mirror, a camera display, a non-Euclidean portal) means adding a new config
// type here and a new case there, without reopening the dispatch contract. Side behavior
// holds no state across frames.
type SideConfig interface {
	isSideConfig()
}

// WallConfig marks a side as an opaque wall. Walls are terminal: they contribute a draw
// instruction for their clipped screen polygon, and traversal never continues through them.
type WallConfig struct {
	Color Color
}

func (WallConfig) isSideConfig() {}

// PortalConfig marks a side as traversable. A visible portal enqueues traversal of the
// connected instance; if DrawFrame is set it also contributes a draw instruction for the
// portal's own clipped polygon in FrameColor (useful for debugging portal coverage).
type PortalConfig struct {
	DrawFrame  bool
	FrameColor Color
}

func (PortalConfig) isSideConfig() {}

// portalAlignment returns the transform mapping the target hull's blueprint space into the
// current hull's blueprint space, so that the target's portal face lands exactly on the
// current side's face. For opposed, identically-oriented faces this is a pure translation:
// the difference of the two face centroids. Rotating or scaling alignments would slot in
// here; they are an extension point, not supported yet.
func portalAlignment(currentBlueprint *HullBlueprint, currentSide SideIndex, targetBlueprint *HullBlueprint, targetSide SideIndex) Matrix4 {
	delta := currentBlueprint.sideFaceCentroid(currentSide).Sub(targetBlueprint.sideFaceCentroid(targetSide))
	return NewMatrix4TranslateVec(delta)
}
