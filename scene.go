package engine3

import (
	"fmt"
)

type (
	// BlueprintID identifies a registered HullBlueprint within a Scene.
	BlueprintID int
	// InstanceID identifies a placed HullInstance within a Scene.
	InstanceID int
	// PortalID identifies a portal-capable side within a single blueprint's local space.
	PortalID int
	// SideIndex is the declared position of a side within its blueprint.
	SideIndex int
)

// PortalIDNone marks a side that can never act as a portal.
const PortalIDNone PortalID = -1

// BlueprintSide describes one face of a hull blueprint: which of the blueprint's local
// vertices form the face polygon, the face's inward-pointing normal, the default side
// behavior, and - if the side can act as a portal - its local portal id.
type BlueprintSide struct {
	VertexIndices []int
	LocalNormal   Vector3 // must point toward the interior of the hull
	Config        SideConfig
	LocalPortalID PortalID
}

// HullBlueprint is the reusable geometric definition of a hull in its own local coordinate
// space. Blueprints are immutable once registered with a Scene and may be shared by any
// number of instances.
type HullBlueprint struct {
	id            BlueprintID
	LocalVertices []Vector3
	Sides         []BlueprintSide
}

// NewHullBlueprint creates a HullBlueprint from local-space vertices and sides. It validates
// that every side references existing vertices and carries an inward normal of nonzero length.
func NewHullBlueprint(vertices []Vector3, sides ...BlueprintSide) (*HullBlueprint, error) {

	for sideIndex, side := range sides {
		if len(side.VertexIndices) < 3 {
			return nil, fmt.Errorf("blueprint side %d: needs at least 3 vertices, has %d", sideIndex, len(side.VertexIndices))
		}
		for _, vi := range side.VertexIndices {
			if vi < 0 || vi >= len(vertices) {
				return nil, fmt.Errorf("blueprint side %d: vertex index %d out of range (%d vertices)", sideIndex, vi, len(vertices))
			}
		}
		if side.LocalNormal.IsZero() {
			return nil, fmt.Errorf("blueprint side %d: zero-length normal", sideIndex)
		}
		if side.Config == nil {
			return nil, fmt.Errorf("blueprint side %d: no side config", sideIndex)
		}
	}

	return &HullBlueprint{
		id:            -1,
		LocalVertices: append([]Vector3{}, vertices...),
		Sides:         append([]BlueprintSide{}, sides...),
	}, nil

}

// ID returns the id the blueprint was assigned when registered with a Scene (-1 before that).
func (blueprint *HullBlueprint) ID() BlueprintID {
	return blueprint.id
}

// SideVertices resolves a side's vertex indices against the blueprint's local vertices.
func (blueprint *HullBlueprint) SideVertices(side SideIndex) []Vector3 {
	indices := blueprint.Sides[side].VertexIndices
	verts := make([]Vector3, len(indices))
	for i, vi := range indices {
		verts[i] = blueprint.LocalVertices[vi]
	}
	return verts
}

// sideFaceCentroid returns the average of a side's face vertices in blueprint-local space.
func (blueprint *HullBlueprint) sideFaceCentroid(side SideIndex) Vector3 {
	centroid := Vector3{}
	indices := blueprint.Sides[side].VertexIndices
	for _, vi := range indices {
		centroid = centroid.Add(blueprint.LocalVertices[vi])
	}
	return centroid.Scale(1 / float32(len(indices)))
}

// PortalSide returns the index of the side carrying the given local portal id.
func (blueprint *HullBlueprint) PortalSide(portal PortalID) (SideIndex, bool) {
	if portal == PortalIDNone {
		return 0, false
	}
	for i, side := range blueprint.Sides {
		if side.LocalPortalID == portal {
			return SideIndex(i), true
		}
	}
	return 0, false
}

// PortalTarget names the far end of a portal connection.
type PortalTarget struct {
	Instance InstanceID
	Portal   PortalID
}

// HullInstance is a placed occurrence of a blueprint, with its own portal connections and
// optional per-side handler configuration overrides.
type HullInstance struct {
	id          InstanceID
	blueprintID BlueprintID
	connections map[PortalID]PortalTarget
	sideConfigs map[SideIndex]SideConfig
}

// ID returns the instance's id within its Scene.
func (instance *HullInstance) ID() InstanceID {
	return instance.id
}

// BlueprintID returns the id of the blueprint this instance was placed from.
func (instance *HullInstance) BlueprintID() BlueprintID {
	return instance.blueprintID
}

// Connection returns the portal target connected to the given local portal id, if any.
func (instance *HullInstance) Connection(portal PortalID) (PortalTarget, bool) {
	target, ok := instance.connections[portal]
	return target, ok
}

// SetSideConfig overrides the blueprint's default side behavior for one side of this
// instance only.
func (instance *HullInstance) SetSideConfig(side SideIndex, config SideConfig) {
	instance.sideConfigs[side] = config
}

// EffectiveSideConfig returns the configuration a side renders with: the instance override
// if one was set, the blueprint default otherwise.
func (instance *HullInstance) EffectiveSideConfig(blueprint *HullBlueprint, side SideIndex) SideConfig {
	if config, ok := instance.sideConfigs[side]; ok {
		return config
	}
	return blueprint.Sides[side].Config
}

// Scene holds the blueprints and placed hull instances of one navigable interior, plus the
// active camera's host instance and local pose. Scene data is read-only during a traversal;
// only the camera fields mutate, and only between frames.
type Scene struct {
	blueprints map[BlueprintID]*HullBlueprint
	instances  map[InstanceID]*HullInstance

	nextBlueprintID BlueprintID
	nextInstanceID  InstanceID

	cameraInstance InstanceID
	cameraPose     Matrix4 // camera-local space -> host hull's blueprint space
}

// NewScene returns an empty Scene with an identity camera pose.
func NewScene() *Scene {
	return &Scene{
		blueprints: map[BlueprintID]*HullBlueprint{},
		instances:  map[InstanceID]*HullInstance{},
		cameraPose: NewMatrix4(),
	}
}

// AddBlueprint registers a blueprint with the Scene and assigns it an id.
func (scene *Scene) AddBlueprint(blueprint *HullBlueprint) BlueprintID {
	id := scene.nextBlueprintID
	scene.nextBlueprintID++
	blueprint.id = id
	scene.blueprints[id] = blueprint
	return id
}

// Blueprint returns the blueprint registered under the given id, or nil.
func (scene *Scene) Blueprint(id BlueprintID) *HullBlueprint {
	return scene.blueprints[id]
}

// AddInstance places a new instance of the given blueprint into the Scene.
func (scene *Scene) AddInstance(blueprintID BlueprintID) (*HullInstance, error) {

	if _, ok := scene.blueprints[blueprintID]; !ok {
		return nil, fmt.Errorf("add instance: unknown blueprint %d", blueprintID)
	}

	id := scene.nextInstanceID
	scene.nextInstanceID++

	instance := &HullInstance{
		id:          id,
		blueprintID: blueprintID,
		connections: map[PortalID]PortalTarget{},
		sideConfigs: map[SideIndex]SideConfig{},
	}
	scene.instances[id] = instance
	return instance, nil

}

// Instance returns the instance placed under the given id, or nil.
func (scene *Scene) Instance(id InstanceID) *HullInstance {
	return scene.instances[id]
}

// ForEachInstance calls the function provided for every placed instance.
func (scene *Scene) ForEachInstance(f func(instance *HullInstance)) {
	for _, instance := range scene.instances {
		f(instance)
	}
}

// Connect joins (instanceA, portalA) to (instanceB, portalB) in both directions. Both
// instances' blueprints must actually declare the named portals.
func (scene *Scene) Connect(instanceA InstanceID, portalA PortalID, instanceB InstanceID, portalB PortalID) error {

	a := scene.instances[instanceA]
	if a == nil {
		return fmt.Errorf("connect: unknown instance %d", instanceA)
	}
	b := scene.instances[instanceB]
	if b == nil {
		return fmt.Errorf("connect: unknown instance %d", instanceB)
	}

	if _, ok := scene.blueprints[a.blueprintID].PortalSide(portalA); !ok {
		return fmt.Errorf("connect: instance %d's blueprint has no portal %d", instanceA, portalA)
	}
	if _, ok := scene.blueprints[b.blueprintID].PortalSide(portalB); !ok {
		return fmt.Errorf("connect: instance %d's blueprint has no portal %d", instanceB, portalB)
	}

	a.connections[portalA] = PortalTarget{Instance: instanceB, Portal: portalB}
	b.connections[portalB] = PortalTarget{Instance: instanceA, Portal: portalA}
	return nil

}

// SetActiveCamera sets which instance hosts the camera and the camera's pose within that
// instance's blueprint space. Call between frames only; a running traversal reads the
// camera exactly once, at its start.
func (scene *Scene) SetActiveCamera(instance InstanceID, pose Matrix4) error {
	if _, ok := scene.instances[instance]; !ok {
		return fmt.Errorf("set active camera: unknown instance %d", instance)
	}
	scene.cameraInstance = instance
	scene.cameraPose = pose
	return nil
}

// ActiveCameraInstance returns the id of the instance currently hosting the camera.
func (scene *Scene) ActiveCameraInstance() InstanceID {
	return scene.cameraInstance
}

// ActiveCameraPose returns the camera's pose, a transform from camera-local space into the
// host hull's blueprint space.
func (scene *Scene) ActiveCameraPose() Matrix4 {
	return scene.cameraPose
}
