package engine3

import (
	"github.com/guylsmith1972/Engine3/math32"
)

// Camera models the view into a Scene: a vertical field of view, near and far clipping
// planes, and the pixel size of the target surface. The camera itself sits at the origin of
// its local space looking down -Z; where it is in the world comes from the Scene's active
// camera pose.
type Camera struct {
	fieldOfView float32 // Vertical field of view in degrees
	near, far   float32
	width       float32
	height      float32

	cachedProjectionMatrix Matrix4
	updateProjectionMatrix bool
}

// NewCamera creates a new Camera rendering to a surface of the given pixel size, with a
// vertical field of view of 60 degrees and near and far planes of 0.1 and 100.
func NewCamera(width, height int) *Camera {
	return &Camera{
		fieldOfView:            60,
		near:                   0.1,
		far:                    100,
		width:                  float32(width),
		height:                 float32(height),
		updateProjectionMatrix: true,
	}
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float32 {
	return camera.fieldOfView
}

// SetFieldOfView sets the vertical field of view in degrees.
func (camera *Camera) SetFieldOfView(fovY float32) {
	if camera.fieldOfView == fovY {
		return
	}
	camera.fieldOfView = fovY
	camera.updateProjectionMatrix = true
}

// Near returns the near plane distance of the camera.
func (camera *Camera) Near() float32 {
	return camera.near
}

// SetNear sets the near plane distance of the camera.
func (camera *Camera) SetNear(near float32) {
	if camera.near == near {
		return
	}
	camera.near = near
	camera.updateProjectionMatrix = true
}

// Far returns the far plane distance of the camera.
func (camera *Camera) Far() float32 {
	return camera.far
}

// SetFar sets the far plane distance of the camera.
func (camera *Camera) SetFar(far float32) {
	if camera.far == far {
		return
	}
	camera.far = far
	camera.updateProjectionMatrix = true
}

// Size returns the pixel width and height of the camera's target surface.
func (camera *Camera) Size() (width, height float32) {
	return camera.width, camera.height
}

// Resize changes the pixel size of the camera's target surface.
func (camera *Camera) Resize(width, height int) {
	if camera.width == float32(width) && camera.height == float32(height) {
		return
	}
	camera.width = float32(width)
	camera.height = float32(height)
	camera.updateProjectionMatrix = true
}

// Projection returns the camera's projection matrix, rebuilding the cached copy if a
// parameter changed since the last call.
func (camera *Camera) Projection() Matrix4 {
	if camera.updateProjectionMatrix {
		camera.cachedProjectionMatrix = NewProjectionPerspective(camera.fieldOfView, camera.near, camera.far, camera.width, camera.height)
		camera.updateProjectionMatrix = false
	}
	return camera.cachedProjectionMatrix
}

// ViewMatrix returns the matrix mapping the host hull's blueprint space into camera space,
// given the camera's pose (the transform from camera-local space to host blueprint space).
// It is simply the pose's inverse.
func (camera *Camera) ViewMatrix(pose Matrix4) Matrix4 {
	return pose.Inverted()
}

// ScreenPolygon returns the full-screen clip rectangle, the visible region a traversal
// starts from.
func (camera *Camera) ScreenPolygon() ConvexPolygon {
	screen, _ := NewConvexPolygon(
		Vector2{0, 0},
		Vector2{camera.width, 0},
		Vector2{camera.width, camera.height},
		Vector2{0, camera.height},
	)
	return screen
}

// ClipNearPlane clips a camera-space polygon against the near plane (z = -near, with visible
// space at more negative z), the 3D analog of the 2D half-plane clip the Intersection Engine
// runs in screen space. Vertices behind the plane are discarded and crossing edges are cut at
// the plane. The result may be degenerate (fewer than 3 vertices), meaning nothing visible.
// The slice passed in is not modified.
func (camera *Camera) ClipNearPlane(points []Vector3) []Vector3 {

	if len(points) == 0 {
		return nil
	}

	inside := func(p Vector3) bool {
		return p.Z <= -camera.near
	}

	out := make([]Vector3, 0, len(points)+1)
	prev := points[len(points)-1]
	prevInside := inside(prev)

	for _, current := range points {

		currentInside := inside(current)

		if currentInside != prevInside {
			// The edge crosses the plane; cut it at z = -near
			t := (-camera.near - prev.Z) / (current.Z - prev.Z)
			out = append(out, prev.Add(current.Sub(prev).Scale(t)))
		}
		if currentInside {
			out = append(out, current)
		}

		prev = current
		prevInside = currentInside

	}

	return out

}

// ProjectPoint projects a camera-space point to screen-space pixels through the camera's
// projection matrix. The second return value is false if the point cannot be projected
// (behind the near plane, past the far plane, or too close to the eye to divide safely).
func (camera *Camera) ProjectPoint(pCam Vector3) (Vector2, bool) {

	if pCam.Z > -camera.near+1e-6 || pCam.Z < -camera.far {
		return Vector2{}, false
	}

	clip := camera.Projection().MultVecW(pCam)
	if clip.W < 1e-6 {
		return Vector2{}, false
	}

	ndcX := clip.X / clip.W
	ndcY := clip.Y / clip.W

	return Vector2{
		X: (ndcX + 1) * 0.5 * camera.width,
		Y: (1 - ndcY) * 0.5 * camera.height, // Screen-space Y grows downward
	}, true

}

// ProjectPolygon clips a camera-space polygon against the near plane and projects the
// surviving vertices to a screen-space ConvexPolygon. A result with fewer than 3 vertices
// means the polygon isn't visible (not an error); ErrPolygonCapacity is returned if the
// clipped polygon can't fit in a ConvexPolygon.
func (camera *Camera) ProjectPolygon(points []Vector3) (ConvexPolygon, error) {

	clipped := camera.ClipNearPlane(points)
	if len(clipped) < 3 {
		return ConvexPolygon{}, nil
	}

	projected := ConvexPolygon{}
	for _, p := range clipped {
		screen, ok := camera.ProjectPoint(p)
		if !ok {
			return ConvexPolygon{}, nil
		}
		if err := projected.AddVertex(screen); err != nil {
			return ConvexPolygon{}, err
		}
	}
	return projected, nil

}

// FocalLengths returns the X and Y focal lengths implied by the camera's field of view and
// aspect ratio; mostly useful for tests and debug overlays.
func (camera *Camera) FocalLengths() (fx, fy float32) {
	fy = 1 / math32.Tan(math32.ToRadians(camera.fieldOfView)/2)
	fx = fy / (camera.width / camera.height)
	return fx, fy
}
