package engine3

import (
	"github.com/guylsmith1972/Engine3/math32"
)

// Vector2 represents a 2D vector or point (screen-space positions, polygon vertices).
// Vector functions that modify the calling Vector return copies of the modified Vector, so method-chaining works naturally.
type Vector2 struct {
	X float32
	Y float32
}

// NewVector2 creates a new Vector2 with the specified x and y components.
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns a copy of the calling Vector2, added together with the other Vector2 provided.
func (vec Vector2) Add(other Vector2) Vector2 {
	vec.X += other.X
	vec.Y += other.Y
	return vec
}

// Sub returns a copy of the calling Vector2, with the other Vector2 subtracted from it.
func (vec Vector2) Sub(other Vector2) Vector2 {
	vec.X -= other.X
	vec.Y -= other.Y
	return vec
}

// Scale returns a copy of the calling Vector2, scaled by the scalar provided.
func (vec Vector2) Scale(scalar float32) Vector2 {
	vec.X *= scalar
	vec.Y *= scalar
	return vec
}

// Dot returns the dot product of the calling Vector2 and the other Vector2 provided.
func (vec Vector2) Dot(other Vector2) float32 {
	return vec.X*other.X + vec.Y*other.Y
}

// Cross returns the 2D cross product (the Z component of the equivalent 3D cross product) of the calling Vector2 and the other Vector2 provided.
func (vec Vector2) Cross(other Vector2) float32 {
	return vec.X*other.Y - vec.Y*other.X
}

// Rotate returns a copy of the calling Vector2, rotated about the origin by the angle given (in radians, counter-clockwise in a Y-up coordinate system).
func (vec Vector2) Rotate(angle float32) Vector2 {
	s := math32.Sin(angle)
	c := math32.Cos(angle)
	return Vector2{
		X: vec.X*c - vec.Y*s,
		Y: vec.X*s + vec.Y*c,
	}
}

// Magnitude returns the length of the Vector2.
func (vec Vector2) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y)
}

// Vector3 represents a 3D vector or point (blueprint vertices, normals, camera-space positions).
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling Vector3, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the calling Vector3, scaled by the scalar provided.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Invert returns a copy of the calling Vector3 with all components inverted.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Dot returns the dot product of the calling Vector3 and the other Vector3 provided.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {

	ogY := vec.Y
	ogZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogZ*other.X - other.Z*vec.X
	vec.X = ogY*other.Z - other.Y*ogZ

	return vec

}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude() as it avoids the square root.
func (vec Vector3) MagnitudeSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A zero-length Vector3 is returned unchanged.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 || l == 1 {
		// A zero vector can't be normalized; a unit vector already is
		return vec
	}
	return Vector3{vec.X / l, vec.Y / l, vec.Z / l}
}

// IsZero returns if all of the components of the Vector3 are 0.
func (vec Vector3) IsZero() bool {
	return vec.X == 0 && vec.Y == 0 && vec.Z == 0
}

// Equals returns if the calling Vector3 is approximately equal to the other Vector3 provided.
func (vec Vector3) Equals(other Vector3) bool {
	eps := float32(1e-4)
	return math32.Abs(vec.X-other.X) < eps && math32.Abs(vec.Y-other.Y) < eps && math32.Abs(vec.Z-other.Z) < eps
}

// Vector4 represents a 4D vector, used for homogeneous coordinates when passing points through a projection Matrix4.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewVector4 creates a new Vector4 with the specified x, y, z, and w components.
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector3 returns the Vector3 portion of the Vector4, dropping the W component.
func (vec Vector4) Vector3() Vector3 {
	return Vector3{X: vec.X, Y: vec.Y, Z: vec.Z}
}
