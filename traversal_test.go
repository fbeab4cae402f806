package engine3

import (
	"errors"
	"reflect"
	"testing"

	"github.com/guylsmith1972/Engine3/math32"
)

// twoRoomScene builds two box hulls joined front-to-back, with the camera at the center of
// the first room facing its front portal. Returns the scene and the two instance ids.
func twoRoomScene(t *testing.T, drawFrame bool) (*Scene, InstanceID, InstanceID) {

	t.Helper()

	scene := NewScene()

	colors := [6]Color{
		NewColor(1, 0, 0, 1), NewColor(0, 1, 0, 1), NewColor(0, 0, 1, 1),
		NewColor(1, 1, 0, 1), NewColor(0, 1, 1, 1), NewColor(1, 0, 1, 1),
	}
	blueprint, err := NewBoxBlueprint(1.5, colors)
	if err != nil {
		t.Fatal(err)
	}
	blueprintID := scene.AddBlueprint(blueprint)

	roomA, _ := scene.AddInstance(blueprintID)
	roomB, _ := scene.AddInstance(blueprintID)

	portal := PortalConfig{DrawFrame: drawFrame, FrameColor: NewColor(1, 1, 1, 1)}
	roomA.SetSideConfig(SideIndex(PortalFront), portal)
	roomB.SetSideConfig(SideIndex(PortalBack), portal)
	if err := scene.Connect(roomA.ID(), PortalFront, roomB.ID(), PortalBack); err != nil {
		t.Fatal(err)
	}

	// Face the +Z portal; the camera looks down its local -Z
	pose := NewMatrix4Rotate(0, 1, 0, math32.Pi)
	if err := scene.SetActiveCamera(roomA.ID(), pose); err != nil {
		t.Fatal(err)
	}

	return scene, roomA.ID(), roomB.ID()

}

func TestTraverseThroughPortal(t *testing.T) {

	scene, roomA, roomB := twoRoomScene(t, false)
	camera := NewCamera(800, 600)

	draws, err := Traverse(scene, camera)
	if err != nil {
		t.Fatal(err)
	}

	// From the center of room A, only its front portal faces the camera; the walk crosses
	// into room B, whose far wall is the single visible surface. Room B's entry portal
	// faces away from the camera, so the walk does not come back through it.
	if len(draws) != 1 {
		t.Fatalf("draw list has %d instructions, want 1: %+v", len(draws), draws)
	}

	draw := draws[0]
	if draw.Instance != roomB {
		t.Fatalf("draw from instance %d, want room B (%d)", draw.Instance, roomB)
	}
	if draw.Side != SideIndex(PortalFront) {
		t.Fatalf("draw of side %d, want the far wall (%d)", draw.Side, SideIndex(PortalFront))
	}
	if draw.Polygon.Count() < 3 || draw.Polygon.Area() <= 0 {
		t.Fatalf("draw polygon degenerate: %d vertices", draw.Polygon.Count())
	}
	for _, v := range draw.Polygon.Vertices() {
		if v.X < 0 || v.X > 800 || v.Y < 0 || v.Y > 600 {
			t.Fatalf("draw polygon vertex %v outside the screen", v)
		}
	}

	if _, found := scene.Instance(roomA).Connection(PortalFront); !found {
		t.Fatal("portal connection lost during traversal")
	}

}

func TestTraversePortalFrame(t *testing.T) {

	scene, roomA, roomB := twoRoomScene(t, true)
	camera := NewCamera(800, 600)

	draws, err := Traverse(scene, camera)
	if err != nil {
		t.Fatal(err)
	}

	// With frames on, room A's portal now draws too, before anything in room B
	if len(draws) != 2 {
		t.Fatalf("draw list has %d instructions, want 2", len(draws))
	}
	if draws[0].Instance != roomA || draws[0].Side != SideIndex(PortalFront) {
		t.Fatalf("first draw is %+v, want room A's portal frame", draws[0])
	}
	if draws[1].Instance != roomB {
		t.Fatalf("second draw is %+v, want room B's far wall", draws[1])
	}

	// Whatever shows of room B fits inside the portal that revealed it
	frame := draws[0].Polygon
	for _, v := range draws[1].Polygon.Vertices() {
		if !containsWithin(&frame, v, 0.01) {
			t.Fatalf("room B vertex %v outside the portal frame", v)
		}
	}

}

func TestTraverseSideOrder(t *testing.T) {

	scene := NewScene()
	blueprint, err := NewBoxBlueprint(1.5, [6]Color{})
	if err != nil {
		t.Fatal(err)
	}
	blueprintID := scene.AddBlueprint(blueprint)
	room, _ := scene.AddInstance(blueprintID)

	// Yawed a little off the -Z axis, the camera sees the back wall and the left wall
	if err := scene.SetActiveCamera(room.ID(), NewMatrix4Rotate(0, 1, 0, 0.3)); err != nil {
		t.Fatal(err)
	}

	camera := NewCamera(800, 600)
	draws, err := Traverse(scene, camera)
	if err != nil {
		t.Fatal(err)
	}

	if len(draws) != 2 {
		t.Fatalf("draw list has %d instructions, want 2", len(draws))
	}

	// Sides emit in declared order
	if draws[0].Side != SideIndex(PortalBack) || draws[1].Side != SideIndex(PortalLeft) {
		t.Fatalf("draw order %d, %d; want back then left", draws[0].Side, draws[1].Side)
	}

}

func TestTraverseDeterministic(t *testing.T) {

	scene, _, _ := twoRoomScene(t, true)
	camera := NewCamera(800, 600)

	first, err := Traverse(scene, camera)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Traverse(scene, camera)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical scene and camera produced different draw lists")
	}

}

func TestTraverseDepthCap(t *testing.T) {

	// A looping corridor: room A's front portal leads into room B, and room B's front
	// portal leads back into room A, so the view repeats forever.
	scene := NewScene()
	blueprint, err := NewBoxBlueprint(1.5, [6]Color{})
	if err != nil {
		t.Fatal(err)
	}
	blueprintID := scene.AddBlueprint(blueprint)

	roomA, _ := scene.AddInstance(blueprintID)
	roomB, _ := scene.AddInstance(blueprintID)

	portal := PortalConfig{DrawFrame: true, FrameColor: NewColor(1, 1, 1, 1)}
	for _, room := range []*HullInstance{roomA, roomB} {
		room.SetSideConfig(SideIndex(PortalFront), portal)
		room.SetSideConfig(SideIndex(PortalBack), portal)
	}
	if err := scene.Connect(roomA.ID(), PortalFront, roomB.ID(), PortalBack); err != nil {
		t.Fatal(err)
	}
	if err := scene.Connect(roomB.ID(), PortalFront, roomA.ID(), PortalBack); err != nil {
		t.Fatal(err)
	}

	if err := scene.SetActiveCamera(roomA.ID(), NewMatrix4Rotate(0, 1, 0, math32.Pi)); err != nil {
		t.Fatal(err)
	}

	camera := NewCamera(800, 600)
	draws, err := Traverse(scene, camera)
	if err != nil {
		t.Fatal(err)
	}

	// Each step of the loop draws exactly one portal frame, so the cap bounds the walk to
	// MaxPortalRecursionDepth crossings and one frame per hull visited.
	if len(draws) != MaxPortalRecursionDepth+1 {
		t.Fatalf("draw list has %d instructions, want %d", len(draws), MaxPortalRecursionDepth+1)
	}

	for i, draw := range draws {
		want := roomA.ID()
		if i%2 == 1 {
			want = roomB.ID()
		}
		if draw.Instance != want {
			t.Fatalf("draw %d from instance %d, want %d", i, draw.Instance, want)
		}
		if draw.Side != SideIndex(PortalFront) {
			t.Fatalf("draw %d of side %d, want the front portal", i, draw.Side)
		}
		// Each deeper portal shows through the previous one, so the frames shrink
		if i > 0 && draw.Polygon.Area() >= draws[i-1].Polygon.Area() {
			t.Fatalf("draw %d area %f not smaller than parent %f", i, draw.Polygon.Area(), draws[i-1].Polygon.Area())
		}
	}

}

func TestTraverseUnconnectedPortal(t *testing.T) {

	scene := NewScene()
	blueprint, err := NewBoxBlueprint(1.5, [6]Color{})
	if err != nil {
		t.Fatal(err)
	}
	blueprintID := scene.AddBlueprint(blueprint)
	room, _ := scene.AddInstance(blueprintID)

	// A portal side with no connection behind it
	room.SetSideConfig(SideIndex(PortalFront), PortalConfig{DrawFrame: true, FrameColor: NewColor(1, 0, 0, 1)})

	if err := scene.SetActiveCamera(room.ID(), NewMatrix4Rotate(0, 1, 0, math32.Pi)); err != nil {
		t.Fatal(err)
	}

	camera := NewCamera(800, 600)
	draws, err := Traverse(scene, camera)

	// The bad side is reported but the frame still renders what it can
	var configErr *ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected a ConfigError, got %v", err)
	}
	if configErr.Instance != room.ID() || configErr.Side != SideIndex(PortalFront) {
		t.Fatalf("ConfigError names %d/%d, want %d/%d", configErr.Instance, configErr.Side, room.ID(), SideIndex(PortalFront))
	}
	if len(draws) != 1 {
		t.Fatalf("draw list has %d instructions, want the portal frame alone", len(draws))
	}

}

func TestTraverseFacingAwayFromPortal(t *testing.T) {

	scene, _, _ := twoRoomScene(t, false)

	// Looking away from the portal, nothing of room B can show
	if err := scene.SetActiveCamera(scene.ActiveCameraInstance(), NewMatrix4()); err != nil {
		t.Fatal(err)
	}

	camera := NewCamera(800, 600)
	draws, err := Traverse(scene, camera)
	if err != nil {
		t.Fatal(err)
	}

	// Facing -Z, only room A's back wall is in view
	if len(draws) != 1 {
		t.Fatalf("draw list has %d instructions, want 1", len(draws))
	}
	if draws[0].Side != SideIndex(PortalBack) {
		t.Fatalf("draw of side %d, want the back wall", draws[0].Side)
	}

}
