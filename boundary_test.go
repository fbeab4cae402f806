package engine3

import (
	"testing"
)

func TestCheckHullBoundary(t *testing.T) {

	scene := NewScene()
	blueprint := mustBox(t, 1.5)
	blueprintID := scene.AddBlueprint(blueprint)

	roomA, _ := scene.AddInstance(blueprintID)
	roomB, _ := scene.AddInstance(blueprintID)

	roomA.SetSideConfig(SideIndex(PortalFront), PortalConfig{})
	roomB.SetSideConfig(SideIndex(PortalBack), PortalConfig{})
	if err := scene.Connect(roomA.ID(), PortalFront, roomB.ID(), PortalBack); err != nil {
		t.Fatal(err)
	}

	// Comfortably inside
	check := CheckHullBoundary(Vector3{0, 0, 1}, blueprint, roomA)
	if check.Result != BoundaryInside {
		t.Fatalf("center position classified %d, want inside", check.Result)
	}

	// Past the connected front portal
	check = CheckHullBoundary(Vector3{0, 0, 2}, blueprint, roomA)
	if check.Result != BoundaryTraverse {
		t.Fatalf("portal crossing classified %d, want traverse", check.Result)
	}
	if check.Side != SideIndex(PortalFront) {
		t.Fatalf("crossed side %d, want the front portal", check.Side)
	}
	if check.Target.Instance != roomB.ID() || check.Target.Portal != PortalBack {
		t.Fatalf("traverse target %+v", check.Target)
	}

	// Past a plain wall
	check = CheckHullBoundary(Vector3{0, 2, 0}, blueprint, roomA)
	if check.Result != BoundaryCollide {
		t.Fatalf("wall crossing classified %d, want collide", check.Result)
	}
	if check.Side != SideIndex(PortalTop) {
		t.Fatalf("collided side %d, want the top wall", check.Side)
	}

	// A portal side with nothing connected behaves like a wall
	roomA.SetSideConfig(SideIndex(PortalBack), PortalConfig{})
	check = CheckHullBoundary(Vector3{0, 0, -2}, blueprint, roomA)
	if check.Result != BoundaryCollide {
		t.Fatalf("unconnected portal crossing classified %d, want collide", check.Result)
	}

	// Exactly on a side plane still counts as inside
	check = CheckHullBoundary(Vector3{0, 1.5, 0}, blueprint, roomA)
	if check.Result != BoundaryInside {
		t.Fatalf("on-plane position classified %d, want inside", check.Result)
	}

}

func TestMoveCameraInside(t *testing.T) {

	scene := NewScene()
	blueprintID := scene.AddBlueprint(mustBox(t, 1.5))
	room, _ := scene.AddInstance(blueprintID)
	if err := scene.SetActiveCamera(room.ID(), NewMatrix4()); err != nil {
		t.Fatal(err)
	}

	rotation := NewMatrix4Rotate(0, 1, 0, 0.4)
	if err := scene.MoveCamera(Vector3{0.5, 0, -1}, rotation); err != nil {
		t.Fatal(err)
	}

	if scene.ActiveCameraInstance() != room.ID() {
		t.Fatal("camera changed instance on an interior move")
	}
	pose := scene.ActiveCameraPose()
	if !pose.Translation().Equals(Vector3{0.5, 0, -1}) {
		t.Fatalf("pose translation = %v", pose.Translation())
	}
	if !pose.Equals(rotation.Mult(NewMatrix4Translate(0.5, 0, -1))) {
		t.Fatal("pose rotation not applied")
	}

}

func TestMoveCameraCollide(t *testing.T) {

	scene := NewScene()
	blueprintID := scene.AddBlueprint(mustBox(t, 1.5))
	room, _ := scene.AddInstance(blueprintID)
	if err := scene.SetActiveCamera(room.ID(), NewMatrix4Translate(0, 0, 0.5)); err != nil {
		t.Fatal(err)
	}

	// Walking into the top wall: blocked, but the camera still turns
	rotation := NewMatrix4Rotate(0, 1, 0, 1.1)
	if err := scene.MoveCamera(Vector3{0, 2, 0.5}, rotation); err != nil {
		t.Fatal(err)
	}

	pose := scene.ActiveCameraPose()
	if !pose.Translation().Equals(Vector3{0, 0, 0.5}) {
		t.Fatalf("blocked move shifted the camera to %v", pose.Translation())
	}
	if !pose.Equals(rotation.Mult(NewMatrix4Translate(0, 0, 0.5))) {
		t.Fatal("rotation lost on a blocked move")
	}

}

func TestMoveCameraThroughPortal(t *testing.T) {

	scene := NewScene()
	blueprintID := scene.AddBlueprint(mustBox(t, 1.5))

	roomA, _ := scene.AddInstance(blueprintID)
	roomB, _ := scene.AddInstance(blueprintID)
	roomA.SetSideConfig(SideIndex(PortalFront), PortalConfig{})
	roomB.SetSideConfig(SideIndex(PortalBack), PortalConfig{})
	if err := scene.Connect(roomA.ID(), PortalFront, roomB.ID(), PortalBack); err != nil {
		t.Fatal(err)
	}

	if err := scene.SetActiveCamera(roomA.ID(), NewMatrix4()); err != nil {
		t.Fatal(err)
	}

	// Stepping past room A's front face (z = 1.5) crosses into room B. Room B's back face
	// sits where room A's front face was, so in room B's space the camera is 3 units back.
	if err := scene.MoveCamera(Vector3{0.25, 0, 2}, NewMatrix4()); err != nil {
		t.Fatal(err)
	}

	if scene.ActiveCameraInstance() != roomB.ID() {
		t.Fatalf("camera in instance %d, want room B (%d)", scene.ActiveCameraInstance(), roomB.ID())
	}
	if got := scene.ActiveCameraPose().Translation(); !got.Equals(Vector3{0.25, 0, -1}) {
		t.Fatalf("re-expressed camera position = %v, want {0.25 0 -1}", got)
	}

	// The camera is inside its new hull, so the next move behaves normally
	if err := scene.MoveCamera(Vector3{0, 0, 0}, NewMatrix4()); err != nil {
		t.Fatal(err)
	}
	if scene.ActiveCameraInstance() != roomB.ID() {
		t.Fatal("camera left room B on an interior move")
	}

}

func TestMoveCameraNoActiveInstance(t *testing.T) {
	scene := NewScene()
	if err := scene.MoveCamera(Vector3{}, NewMatrix4()); err == nil {
		t.Fatal("move with no camera instance accepted")
	}
}
