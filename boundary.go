package engine3

import (
	"fmt"
)

// CollisionEpsilon is how far (in blueprint units) the camera may sink past a side's plane
// before the move counts as crossing it. Sides' normals point inward, so "past the plane"
// means a negative signed distance.
const CollisionEpsilon = 1e-4

// BoundaryResult classifies where a proposed camera position ends up relative to its host hull.
type BoundaryResult int

const (
	BoundaryInside   BoundaryResult = iota // The position is still inside the hull
	BoundaryCollide                        // The position crossed a wall; the move should be blocked
	BoundaryTraverse                       // The position crossed a connected portal; the camera transfers hulls
)

// BoundaryCheck is the outcome of testing a camera position against its host hull's sides.
// Side is set for BoundaryCollide and BoundaryTraverse; Target only for BoundaryTraverse.
type BoundaryCheck struct {
	Result BoundaryResult
	Side   SideIndex
	Target PortalTarget
}

// CheckHullBoundary tests a position (in the instance's blueprint space) against every side
// plane of the hull. Crossing a connected portal side yields BoundaryTraverse; crossing
// anything else - a wall, or a portal with no connection - yields BoundaryCollide.
func CheckHullBoundary(position Vector3, blueprint *HullBlueprint, instance *HullInstance) BoundaryCheck {

	for s := range blueprint.Sides {

		side := &blueprint.Sides[s]
		pointOnPlane := blueprint.LocalVertices[side.VertexIndices[0]]
		signedDistance := side.LocalNormal.Dot(position.Sub(pointOnPlane))

		if signedDistance >= -CollisionEpsilon {
			continue
		}

		// The position is behind this side's plane (outside the hull)
		sideIndex := SideIndex(s)
		config := instance.EffectiveSideConfig(blueprint, sideIndex)
		if _, isPortal := config.(PortalConfig); isPortal && side.LocalPortalID != PortalIDNone {
			if target, ok := instance.Connection(side.LocalPortalID); ok {
				return BoundaryCheck{Result: BoundaryTraverse, Side: sideIndex, Target: target}
			}
		}
		return BoundaryCheck{Result: BoundaryCollide, Side: sideIndex}

	}

	return BoundaryCheck{Result: BoundaryInside}

}

// MoveCamera applies a proposed camera move - a position in the host hull's blueprint space
// plus a rotation - respecting hull boundaries: moves inside the hull apply directly, moves
// into a wall keep the old position (rotation still applies), and moves through a connected
// portal transfer the camera to the target instance with its pose re-expressed in the
// target's blueprint space. Call strictly between frames, never during a traversal.
func (scene *Scene) MoveCamera(position Vector3, rotation Matrix4) error {

	instance := scene.Instance(scene.cameraInstance)
	if instance == nil {
		return fmt.Errorf("move camera: no active camera instance")
	}
	blueprint := scene.Blueprint(instance.BlueprintID())

	check := CheckHullBoundary(position, blueprint, instance)

	switch check.Result {

	case BoundaryInside:
		scene.cameraPose = rotation.Mult(NewMatrix4TranslateVec(position))

	case BoundaryCollide:
		scene.cameraPose = rotation.Mult(NewMatrix4TranslateVec(scene.cameraPose.Translation()))

	case BoundaryTraverse:
		targetInstance := scene.Instance(check.Target.Instance)
		if targetInstance == nil {
			return &ConfigError{scene.cameraInstance, check.Side, fmt.Sprintf("connection names nonexistent instance %d", check.Target.Instance)}
		}
		targetBlueprint := scene.Blueprint(targetInstance.BlueprintID())
		targetSide, ok := targetBlueprint.PortalSide(check.Target.Portal)
		if !ok {
			return &ConfigError{scene.cameraInstance, check.Side, fmt.Sprintf("connection names nonexistent portal %d on instance %d", check.Target.Portal, check.Target.Instance)}
		}

		align := portalAlignment(blueprint, check.Side, targetBlueprint, targetSide)
		crossedPose := rotation.Mult(NewMatrix4TranslateVec(position))

		scene.cameraInstance = check.Target.Instance
		scene.cameraPose = crossedPose.Mult(align.Inverted())

	}

	return nil

}
