package qem

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestQuadricFromPlaneZeroOnPlane(t *testing.T) {
	plane, ok := computePlane(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	if !ok {
		t.Fatal("expected a well-defined plane")
	}
	q := quadricFromPlane(plane)

	for _, p := range [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {5, -3, 0}} {
		if err := q.Error(p[0], p[1], p[2]); math.Abs(err) > 1e-9 {
			t.Errorf("Error(%v) = %v, want ~0 for a point on the plane", p, err)
		}
	}
	if err := q.Error(0, 0, 1); err <= 1e-6 {
		t.Errorf("Error((0,0,1)) = %v, want strictly positive for a point off the plane", err)
	}
}

func TestQuadricAddIsCommutativeSum(t *testing.T) {
	p1, _ := computePlane(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	p2, _ := computePlane(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1})

	q1, q2 := quadricFromPlane(p1), quadricFromPlane(p2)
	sum := q1.Add(q2)

	want := q1.Error(2, 3, 4) + q2.Error(2, 3, 4)
	if got := sum.Error(2, 3, 4); math.Abs(got-want) > 1e-9 {
		t.Errorf("sum.Error = %v, want %v", got, want)
	}
}

func TestComputeAllQuadricsIsIdempotent(t *testing.T) {
	mesh, _ := BuildMesh(unitSquareCorners())
	ComputeAllQuadrics(mesh)
	first := mesh.Vertices[0].Quadric

	ComputeAllQuadrics(mesh)
	second := mesh.Vertices[0].Quadric

	if first != second {
		t.Errorf("ComputeAllQuadrics is not idempotent: %+v != %+v", first, second)
	}
}

func TestComputeAllQuadricsPlanarVertexErrorIsZeroOnPlane(t *testing.T) {
	mesh, _ := BuildMesh(unitSquareCorners())
	ComputeAllQuadrics(mesh)

	for i, v := range mesh.Vertices {
		err := v.Quadric.Error(v.Position[0], v.Position[1], v.Position[2])
		if math.Abs(err) > 1e-9 {
			t.Errorf("vertex %d at %v: quadric error = %v, want ~0 on a planar mesh", i, v.Position, err)
		}
	}
}

func TestComputeAllQuadricsSkipsDeletedFaces(t *testing.T) {
	mesh, _ := BuildMesh(unitSquareCorners())
	ComputeAllQuadrics(mesh)
	withBoth := mesh.Vertices[0].Quadric

	mesh.Faces[1].Deleted = true
	ComputeAllQuadrics(mesh)
	withOne := mesh.Vertices[0].Quadric

	if withBoth == withOne {
		t.Error("expected the quadric to change once a face is tombstoned out of the sum")
	}
}
