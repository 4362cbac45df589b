package qem

import "github.com/go-gl/mathgl/mgl64"

// Vertex is a welded mesh corner. Position is mutable and is
// overwritten by every collapse that survives to it; Normal is fixed
// at build time and only ever read afterwards.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	UV       mgl64.Vec2
	Color    mgl64.Vec4
	Quadric  Quadric
	Deleted  bool
}

// Face is a triangle given as three vertex indices, plus the plane
// equation computed at build time from its original geometry. The
// plane is never recomputed after a collapse: vertex quadrics
// accumulated the original surface, so cost keeps measuring deviation
// from it rather than from the current, drifted approximation.
type Face struct {
	A, B, C int
	Plane   mgl64.Vec4
	Deleted bool
}

// Edge is an undirected link between two vertex indices. V1 < V2 only
// at construction time; collapses may retarget either endpoint without
// re-sorting, since order carries no meaning once the mesh mutates.
type Edge struct {
	V1, V2          int
	Cost            float64
	OptimalPosition mgl64.Vec3
	Dirty           bool
	Deleted         bool
}

// Mesh is the arena owning every vertex/edge/face record produced by
// BuildMesh. Nothing is ever physically removed: tombstones keep
// indices stable for the life of the mesh, so cross-references never
// need renumbering.
type Mesh struct {
	Vertices []Vertex
	Edges    []Edge
	Faces    []Face
}

func newMesh() *Mesh {
	return &Mesh{}
}

// BuildStats reports the outcome of BuildMesh.
type BuildStats struct {
	UniqueVertexCount int
	FaceCount         int
	EdgeCount         int
}

// Stats reports the liveness counters of a mesh, independent of
// whatever scheduler (if any) is currently driving it.
type Stats struct {
	TotalVertices   int
	DeletedVertices int
	LiveFaces       int
	LiveEdges       int
}

// Stats computes the current liveness counters in a single pass over
// each slice.
func (m *Mesh) Stats() Stats {
	s := Stats{TotalVertices: len(m.Vertices)}
	for _, v := range m.Vertices {
		if v.Deleted {
			s.DeletedVertices++
		}
	}
	for _, f := range m.Faces {
		if !f.Deleted {
			s.LiveFaces++
		}
	}
	for _, e := range m.Edges {
		if !e.Deleted {
			s.LiveEdges++
		}
	}
	return s
}

// Snapshot is a GPU-upload-ready view of the mesh's current live
// faces: contiguous attribute arrays plus per-face index triples. It
// is only guaranteed consistent between Scheduler.SimplifyStep calls —
// the host must finish consuming one snapshot (or copy it) before the
// next step runs.
type Snapshot struct {
	Positions []mgl64.Vec3
	UVs       []mgl64.Vec2
	Colors    []mgl64.Vec4
	Triangles [][3]int
}

// Snapshot builds a Snapshot of the mesh's current state. Vertex
// attribute arrays are indexed exactly like Mesh.Vertices (including
// tombstoned, now-unreferenced entries) so Triangles' indices need no
// remapping.
func (m *Mesh) Snapshot() Snapshot {
	snap := Snapshot{
		Positions: make([]mgl64.Vec3, len(m.Vertices)),
		UVs:       make([]mgl64.Vec2, len(m.Vertices)),
		Colors:    make([]mgl64.Vec4, len(m.Vertices)),
	}
	for i, v := range m.Vertices {
		snap.Positions[i] = v.Position
		snap.UVs[i] = v.UV
		snap.Colors[i] = v.Color
	}
	for _, f := range m.Faces {
		if f.Deleted {
			continue
		}
		snap.Triangles = append(snap.Triangles, [3]int{f.A, f.B, f.C})
	}
	return snap
}

// orderedPair returns (a, b) sorted so the first return value is the
// smaller, used wherever an undirected vertex pair needs a canonical
// key (edge dedup during build, duplicate-edge detection in Validate).
func orderedPair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
