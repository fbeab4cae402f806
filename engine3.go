// Package engine3 renders navigable interiors built from interconnected convex cells
// ("hulls") using portal-based visibility. Instead of one global coordinate frame, each
// frame's view is produced by walking the portal graph outward from the camera's current
// hull, composing coordinate transforms along the way and clipping the visible screen
// region at every portal with convex Sutherland-Hodgman intersection. The result of a
// frame is an ordered DrawList; turning that into pixels is the rendering backend's
// business (the bundled examples use Ebitengine).
//
// A Scene is assembled programmatically: register HullBlueprints (reusable local-space
// geometry), place HullInstances of them, and Connect instances portal-to-portal. Scenes
// are treated as immutable snapshots while Traverse runs; camera updates (including
// portal-crossing moves via Scene.MoveCamera) happen strictly between frames.
package engine3
