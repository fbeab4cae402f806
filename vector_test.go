package engine3

import (
	"testing"

	"github.com/guylsmith1972/Engine3/math32"
)

func TestVector2Rotate(t *testing.T) {

	quarter := Vector2{1, 0}.Rotate(math32.Pi / 2)
	if !approxEqual32(quarter.X, 0, 1e-6) || !approxEqual32(quarter.Y, 1, 1e-6) {
		t.Fatalf("quarter turn of +X = %v, want {0 1}", quarter)
	}

	full := Vector2{3, -2}.Rotate(2 * math32.Pi)
	if !approxEqual32(full.X, 3, 1e-5) || !approxEqual32(full.Y, -2, 1e-5) {
		t.Fatalf("full turn changed the point: %v", full)
	}

	// Rotation preserves length
	v := Vector2{2.5, -1.25}
	if !approxEqual32(v.Rotate(0.7).Magnitude(), v.Magnitude(), 1e-5) {
		t.Fatal("rotation changed the vector's length")
	}

}

func TestVector3Operations(t *testing.T) {

	a := Vector3{1, 2, 3}
	b := Vector3{-2, 0.5, 4}

	if got := a.Add(b); !got.Equals(Vector3{-1, 2.5, 7}) {
		t.Fatalf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equals(Vector3{3, 1.5, -1}) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Dot(b); !approxEqual32(got, 11, 1e-5) {
		t.Fatalf("Dot = %f", got)
	}

	// Cross products of the basis vectors follow the right-hand rule
	if got := (Vector3{1, 0, 0}).Cross(Vector3{0, 1, 0}); !got.Equals(Vector3{0, 0, 1}) {
		t.Fatalf("X cross Y = %v, want +Z", got)
	}

	if got := (Vector3{0, 3, 4}).Unit(); !got.Equals(Vector3{0, 0.6, 0.8}) {
		t.Fatalf("Unit = %v", got)
	}
	if got := (Vector3{}).Unit(); !got.IsZero() {
		t.Fatalf("Unit of zero vector = %v", got)
	}

}
