package engine3

import (
	"errors"
	"fmt"
)

// MaxPortalRecursionDepth is the soft cap on how many portals deep a single frame's
// traversal will walk. It is not cycle detection: portal graphs with loops ("hall of
// mirrors" scenes) are expected, and a looping branch simply stops extending once it
// reaches this depth.
const MaxPortalRecursionDepth = 10

// CullEpsilon is the screen-space culling threshold: a side is skipped when its inward
// normal's camera-space Z component is at or below this value, meaning the side doesn't
// face the camera.
const CullEpsilon = 1e-3

// DrawInstruction is one entry of the draw list a traversal emits: the transform taking the
// source hull's blueprint space into camera space, the visible screen-space polygon for the
// side, which instance and side produced it, and the surface color to draw it with. Turning
// these into GPU draw calls is the rendering backend's job.
type DrawInstruction struct {
	Transform Matrix4
	Polygon   ConvexPolygon
	Instance  InstanceID
	Side      SideIndex
	Color     Color
}

// DrawList is the ordered sequence of draw instructions for one frame. Once a traversal
// returns it, it is a fully-constructed value; nothing mutates it afterward.
type DrawList []DrawInstruction

// TraversalState is the per-step record of a frame's portal walk: the hull instance being
// visited, the accumulated transform mapping that hull's blueprint space into the camera
// host hull's blueprint space, the screen-space visible region inherited from the parent
// portal, and the portal depth. States live only within one frame's traversal.
//
// The accumulated transform composes one float32 multiply per portal crossed; with the
// depth cap at MaxPortalRecursionDepth the drift stays orders of magnitude below
// CullEpsilon, so no re-orthonormalization is done.
type TraversalState struct {
	Instance  InstanceID
	Transform Matrix4
	Clip      ConvexPolygon
	Depth     int
}

// ConfigError reports a malformed portal connection discovered during a traversal: a
// connection naming a nonexistent instance or portal, or a portal side with no connection
// at all. The offending side is skipped and the frame keeps rendering, so a bad scene
// degrades to missing sides rather than a crash.
type ConfigError struct {
	Instance InstanceID
	Side     SideIndex
	Reason   string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("instance %d side %d: %s", err.Instance, err.Side, err.Reason)
}

// Traverse walks the scene's portal graph from the active camera's host hull and returns
// the frame's draw list. It processes an explicit FIFO work queue rather than recursing, so
// deeply chained or cyclic portal graphs can't grow the call stack; each queued state
// carries its own depth, bounded by MaxPortalRecursionDepth.
//
// For every side of every visited hull, in declared order: the side's vertices are brought
// into camera space through the accumulated transform and the camera's view matrix, the
// side is culled if its inward normal doesn't face the camera, the polygon is near-plane
// clipped, projected, and intersected with the visible region inherited through the portal
// chain. Walls then emit a draw instruction; visible portals emit a new traversal state
// whose clip region is the portal's own visible polygon.
//
// The returned error joins any ConfigErrors for sides that were skipped; unless it wraps
// ErrPolygonCapacity (an internal invariant break, which aborts the frame), the draw list
// is still valid and complete for every well-formed side.
func Traverse(scene *Scene, camera *Camera) (DrawList, error) {

	// The camera pose is read exactly once; pose changes only apply to later frames.
	view := camera.ViewMatrix(scene.ActiveCameraPose())

	queue := []TraversalState{{
		Instance:  scene.ActiveCameraInstance(),
		Transform: NewMatrix4(),
		Clip:      camera.ScreenPolygon(),
		Depth:     0,
	}}

	draws := DrawList{}
	var sideErrs []error

	for len(queue) > 0 {

		state := queue[0]
		queue = queue[1:]

		instance := scene.Instance(state.Instance)
		if instance == nil {
			continue
		}
		blueprint := scene.Blueprint(instance.BlueprintID())
		if blueprint == nil {
			continue
		}

		// Blueprint space -> camera space for everything in this hull
		toCamera := state.Transform.Mult(view)

		camVerts := make([]Vector3, 0, MaxVertices)

		for s := range blueprint.Sides {

			side := &blueprint.Sides[s]
			sideIndex := SideIndex(s)

			camVerts = camVerts[:0]
			for _, vi := range side.VertexIndices {
				camVerts = append(camVerts, toCamera.MultVec(blueprint.LocalVertices[vi]))
			}

			nView := toCamera.TransformNormal(side.LocalNormal)
			if nView.Z <= CullEpsilon {
				// The inward normal doesn't point back toward the camera; the side faces away
				continue
			}

			projected, err := camera.ProjectPolygon(camVerts)
			if err != nil {
				return draws, fmt.Errorf("projecting instance %d side %d: %w", state.Instance, sideIndex, err)
			}
			if projected.Count() < 3 {
				continue
			}

			visible, err := Intersect(projected, state.Clip)
			if err != nil {
				return draws, fmt.Errorf("clipping instance %d side %d: %w", state.Instance, sideIndex, err)
			}
			if visible.Count() < 3 {
				continue
			}

			switch config := instance.EffectiveSideConfig(blueprint, sideIndex).(type) {

			case WallConfig:
				draws = append(draws, DrawInstruction{
					Transform: toCamera,
					Polygon:   visible,
					Instance:  state.Instance,
					Side:      sideIndex,
					Color:     config.Color,
				})

			case PortalConfig:
				if config.DrawFrame {
					draws = append(draws, DrawInstruction{
						Transform: toCamera,
						Polygon:   visible,
						Instance:  state.Instance,
						Side:      sideIndex,
						Color:     config.FrameColor,
					})
				}

				if state.Depth+1 > MaxPortalRecursionDepth {
					// Soft depth cap; the branch just stops extending
					continue
				}

				if side.LocalPortalID == PortalIDNone {
					sideErrs = append(sideErrs, &ConfigError{state.Instance, sideIndex, "portal config on a side with no local portal id"})
					continue
				}
				target, ok := instance.Connection(side.LocalPortalID)
				if !ok {
					sideErrs = append(sideErrs, &ConfigError{state.Instance, sideIndex, fmt.Sprintf("portal %d is not connected", side.LocalPortalID)})
					continue
				}
				targetInstance := scene.Instance(target.Instance)
				if targetInstance == nil {
					sideErrs = append(sideErrs, &ConfigError{state.Instance, sideIndex, fmt.Sprintf("connection names nonexistent instance %d", target.Instance)})
					continue
				}
				targetBlueprint := scene.Blueprint(targetInstance.BlueprintID())
				targetSide, ok := targetBlueprint.PortalSide(target.Portal)
				if !ok {
					sideErrs = append(sideErrs, &ConfigError{state.Instance, sideIndex, fmt.Sprintf("connection names nonexistent portal %d on instance %d", target.Portal, target.Instance)})
					continue
				}

				align := portalAlignment(blueprint, sideIndex, targetBlueprint, targetSide)

				queue = append(queue, TraversalState{
					Instance:  target.Instance,
					Transform: align.Mult(state.Transform),
					Clip:      visible,
					Depth:     state.Depth + 1,
				})

			}

		}

	}

	return draws, errors.Join(sideErrs...)

}
