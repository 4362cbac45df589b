package qem

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ryudongho/qemgo/internal/spatialhash"
)

// Corner is one input vertex attribute triple. A triangle stream is
// 3*T corners long: three consecutive corners form one triangle.
// Meshes lacking UV or normal attributes should supply the defaults
// (0,0) and (0,0,1) rather than the zero vector for Normal.
type Corner struct {
	Position mgl64.Vec3
	UV       mgl64.Vec2
	Normal   mgl64.Vec3
}

// BuildMesh welds an unindexed triangle stream into a topological
// mesh: duplicate positions collapse onto one vertex via spatial
// hashing, degenerate triangles are skipped, and the undirected edge
// set is extracted from the surviving faces. It never fails — an
// input with no valid triangles yields a Mesh with no faces or edges
// (its welded vertices are still kept and counted), and an empty input
// yields a zeroed BuildStats.
func BuildMesh(corners []Corner) (*Mesh, BuildStats) {
	mesh := newMesh()
	grid := spatialhash.New(Grid)

	weldedIndex := make([]int, len(corners))
	for i, corner := range corners {
		weldedIndex[i] = weld(mesh, grid, corner)
	}

	edgeSeen := make(map[[2]int]struct{})

	for i := 0; i+2 < len(corners); i += 3 {
		a, b, c := weldedIndex[i], weldedIndex[i+1], weldedIndex[i+2]
		if a == b || b == c || a == c {
			continue // degenerate: two corners welded to the same vertex
		}

		plane, ok := computePlane(mesh.Vertices[a].Position, mesh.Vertices[b].Position, mesh.Vertices[c].Position)
		if !ok {
			continue // zero-area triangle
		}

		mesh.Faces = append(mesh.Faces, Face{A: a, B: b, C: c, Plane: plane})
		addEdge(mesh, edgeSeen, a, b)
		addEdge(mesh, edgeSeen, b, c)
		addEdge(mesh, edgeSeen, c, a)
	}

	return mesh, BuildStats{
		UniqueVertexCount: len(mesh.Vertices),
		FaceCount:         len(mesh.Faces),
		EdgeCount:         len(mesh.Edges),
	}
}

// weld returns the unique vertex index for a corner: an existing
// vertex within EpsWeld in the same grid cell if one exists, otherwise
// a freshly appended vertex taking this corner's normal, UV, and a
// default opaque-white color. Only the first-seen corner's attributes
// are kept per welded vertex; later corners landing on the same
// position do not overwrite them.
func weld(mesh *Mesh, grid *spatialhash.Grid, corner Corner) int {
	key := grid.KeyFor(corner.Position)
	for _, candidate := range grid.Candidates(key) {
		if mesh.Vertices[candidate].Position.Sub(corner.Position).Len() < EpsWeld {
			return candidate
		}
	}

	index := len(mesh.Vertices)
	mesh.Vertices = append(mesh.Vertices, Vertex{
		Position: corner.Position,
		Normal:   corner.Normal,
		UV:       corner.UV,
		Color:    mgl64.Vec4{1, 1, 1, 1},
	})
	grid.Insert(key, index)
	return index
}

// addEdge registers the undirected edge (u, v) the first time it is
// seen, leaving Cost and OptimalPosition to be filled in by the
// scheduler's lazy initialization.
func addEdge(mesh *Mesh, seen map[[2]int]struct{}, u, v int) {
	lo, hi := orderedPair(u, v)
	key := [2]int{lo, hi}
	if _, exists := seen[key]; exists {
		return
	}
	seen[key] = struct{}{}
	mesh.Edges = append(mesh.Edges, Edge{V1: lo, V2: hi})
}
