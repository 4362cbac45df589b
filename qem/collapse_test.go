package qem

import (
	"math"
	"testing"
)

// findEdge returns the index of the live edge between a and b, or -1.
func findEdge(mesh *Mesh, a, b int) int {
	lo, hi := orderedPair(a, b)
	for i, e := range mesh.Edges {
		if e.Deleted {
			continue
		}
		if x, y := orderedPair(e.V1, e.V2); x == lo && y == hi {
			return i
		}
	}
	return -1
}

func TestCollapsePlanarEdgeStaysOnPlane(t *testing.T) {
	mesh, _ := buildAndQuadrics(unitSquareCorners())

	sched := NewScheduler(mesh)
	sched.ensureInitialized()
	// Collapse the diagonal shared by both faces: vertices 0 and 2.
	idx := findEdge(mesh, 0, 2)
	if idx < 0 {
		t.Fatal("expected a live edge between the welded corners (0,0,0) and (1,1,0)")
	}

	recomputeAllFreshEdges(mesh)
	affected := collapse(mesh, idx)
	if len(affected) == 0 {
		t.Fatal("expected at least one surviving edge incident to the merged vertex")
	}

	survivor := mesh.Edges[idx].V1
	v := mesh.Vertices[survivor]
	if err := v.Quadric.Error(v.Position[0], v.Position[1], v.Position[2]); math.Abs(err) > 1e-6 {
		t.Errorf("post-collapse vertex error = %v, want ~0 on a planar mesh", err)
	}
	if math.Abs(v.Position[2]) > 1e-9 {
		t.Errorf("post-collapse position = %v, want z == 0", v.Position)
	}

	if violations := Validate(mesh); len(violations) > 0 {
		t.Errorf("mesh invalid after collapse: %v", violations)
	}
}

func TestCollapseTombstonesV2AndCollapsedEdge(t *testing.T) {
	mesh, _ := buildAndQuadrics(unitSquareCorners())
	idx := findEdge(mesh, 0, 2)
	recomputeAllFreshEdges(mesh)

	v2 := mesh.Edges[idx].V2
	collapse(mesh, idx)

	if !mesh.Edges[idx].Deleted {
		t.Error("collapsed edge was not tombstoned")
	}
	if !mesh.Vertices[v2].Deleted {
		t.Error("the non-surviving endpoint was not tombstoned")
	}
}

func TestCollapseCascadesThroughTetrahedron(t *testing.T) {
	mesh, stats := buildAndQuadrics(tetrahedronCorners())
	if stats.UniqueVertexCount != 4 || stats.FaceCount != 4 {
		t.Fatalf("unexpected tetrahedron build: %+v", stats)
	}

	sched := NewScheduler(mesh)
	for i := 0; i < 10; i++ {
		if sched.SimplifyStep(1) == 0 {
			break
		}
	}

	s := mesh.Stats()
	if s.LiveFaces >= stats.FaceCount {
		t.Errorf("expected fewer live faces after repeated collapse, got %d (started at %d)", s.LiveFaces, stats.FaceCount)
	}
	if violations := Validate(mesh); len(violations) > 0 {
		t.Errorf("mesh invalid after cascading collapse: %v", violations)
	}
}

// recomputeAllFreshEdges seeds cost/optimal position for every live
// edge directly, for tests that call collapse without going through a
// Scheduler's heap.
func recomputeAllFreshEdges(mesh *Mesh) {
	for i := range mesh.Edges {
		e := &mesh.Edges[i]
		if e.Deleted {
			continue
		}
		q := mesh.Vertices[e.V1].Quadric.Add(mesh.Vertices[e.V2].Quadric)
		pos, cost := solveContraction(q, mesh.Vertices[e.V1].Position, mesh.Vertices[e.V2].Position)
		e.OptimalPosition = pos
		e.Cost = cost
		e.Dirty = false
	}
}
