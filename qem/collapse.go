package qem

import "github.com/go-gl/mathgl/mgl64"

// collapse performs the edge contraction at mesh.Edges[edgeIdx]: V1
// survives at the edge's OptimalPosition, V2 is tombstoned, every live
// edge and face referencing V2 is rewritten to V1, and V1's quadric is
// rebuilt from the updated live face set. It returns the indices of
// every live edge now incident to V1, for the caller to requeue.
func collapse(mesh *Mesh, edgeIdx int) []int {
	e := &mesh.Edges[edgeIdx]
	v1, v2 := e.V1, e.V2

	pre1 := mesh.Vertices[v1].Position
	pre2 := mesh.Vertices[v2].Position
	t := contractionParameter(pre1, pre2, e.OptimalPosition)

	mesh.Vertices[v1].Position = e.OptimalPosition
	mesh.Vertices[v1].UV = lerpVec2(mesh.Vertices[v1].UV, mesh.Vertices[v2].UV, t)
	mesh.Vertices[v1].Color = lerpVec4(mesh.Vertices[v1].Color, mesh.Vertices[v2].Color, t)
	mesh.Vertices[v2].Deleted = true
	e.Deleted = true

	affected := retargetEdges(mesh, edgeIdx, v1, v2)
	retargetFaces(mesh, v1, v2)
	rebuildQuadric(mesh, v1)
	refreshEdgeCosts(mesh, affected)

	return affected
}

// retargetEdges rewrites every live edge's v2 endpoint to v1, tombstones
// any edge that becomes a self-loop or a duplicate of an earlier live
// edge to the same neighbor as a result, and returns the indices of
// every surviving edge now touching v1 — whether it was retargeted just
// now or already had v1 as an endpoint.
func retargetEdges(mesh *Mesh, collapsedIdx, v1, v2 int) []int {
	var affected []int
	neighbors := make(map[int]bool)
	for i := range mesh.Edges {
		if i == collapsedIdx || mesh.Edges[i].Deleted {
			continue
		}
		ei := &mesh.Edges[i]
		if ei.V1 == v2 {
			ei.V1 = v1
		}
		if ei.V2 == v2 {
			ei.V2 = v1
		}
		if ei.V1 == ei.V2 {
			ei.Deleted = true
			continue
		}
		if ei.V1 == v1 || ei.V2 == v1 {
			other := ei.V1 + ei.V2 - v1
			if neighbors[other] {
				ei.Deleted = true
				continue
			}
			neighbors[other] = true
			affected = append(affected, i)
		}
	}
	return affected
}

// retargetFaces rewrites every live face's v2 reference to v1 and
// tombstones any face that becomes degenerate (a repeated vertex) as a
// result — this is how faces actually disappear on collapse.
func retargetFaces(mesh *Mesh, v1, v2 int) {
	for i := range mesh.Faces {
		f := &mesh.Faces[i]
		if f.Deleted {
			continue
		}
		if f.A == v2 {
			f.A = v1
		}
		if f.B == v2 {
			f.B = v1
		}
		if f.C == v2 {
			f.C = v1
		}
		if f.A == f.B || f.B == f.C || f.A == f.C {
			f.Deleted = true
		}
	}
}

// rebuildQuadric recomputes v's quadric from scratch over the mesh's
// current live faces. This is an O(F) scan per collapse, matching the
// source; a per-vertex incident-face adjacency list would make it
// O(degree) but is not required by the core's contract.
func rebuildQuadric(mesh *Mesh, v int) {
	mesh.Vertices[v].Quadric = Quadric{}
	for _, f := range mesh.Faces {
		if f.Deleted {
			continue
		}
		if f.A == v || f.B == v || f.C == v {
			mesh.Vertices[v].Quadric = mesh.Vertices[v].Quadric.Add(quadricFromPlane(f.Plane))
		}
	}
}

// refreshEdgeCosts recomputes cost and optimal position for each
// affected edge via the cost solver and clears its dirty flag — the
// edge record is authoritative again immediately after this call.
func refreshEdgeCosts(mesh *Mesh, affected []int) {
	for _, i := range affected {
		e := &mesh.Edges[i]
		q := mesh.Vertices[e.V1].Quadric.Add(mesh.Vertices[e.V2].Quadric)
		pos, cost := solveContraction(q, mesh.Vertices[e.V1].Position, mesh.Vertices[e.V2].Position)
		e.OptimalPosition = pos
		e.Cost = cost
		e.Dirty = false
	}
}

// contractionParameter computes where optimal lies between pre1 and
// pre2 (clamped to [0,1]), using the PRE-collapse position of v1. The
// source instead measures this ratio after v1's position has already
// been overwritten, which silently corrupts the UV/color
// interpolation; computing it beforehand, as done here, is the one
// deliberate behavioral fix this port makes over the original.
func contractionParameter(pre1, pre2, optimal mgl64.Vec3) float64 {
	span := pre2.Sub(pre1).Len()
	if span < 1e-10 {
		return 0.5
	}
	t := optimal.Sub(pre1).Len() / span
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

func lerpVec2(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

func lerpVec4(a, b mgl64.Vec4, t float64) mgl64.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}
