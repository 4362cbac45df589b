package qem

import "github.com/go-gl/mathgl/mgl64"

// unitSquareCorners is scenario S1: two triangles sharing a diagonal,
// wound so both faces point along +Z. Welding should yield 4 unique
// vertices, 2 faces, and 5 undirected edges (the diagonal counted once).
func unitSquareCorners() []Corner {
	pos := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0},
		{0, 0, 0}, {1, 1, 0}, {0, 1, 0},
	}
	corners := make([]Corner, len(pos))
	for i, p := range pos {
		corners[i] = Corner{
			Position: mgl64.Vec3{p[0], p[1], p[2]},
			UV:       mgl64.Vec2{p[0], p[1]},
			Normal:   mgl64.Vec3{0, 0, 1},
		}
	}
	return corners
}

// tetrahedronCorners is scenario S5: a regular tetrahedron's four
// triangular faces as a flat corner stream.
func tetrahedronCorners() []Corner {
	p := [4]mgl64.Vec3{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	}
	faces := [4][3]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}

	corners := make([]Corner, 0, len(faces)*3)
	for _, f := range faces {
		for _, idx := range f {
			corners = append(corners, Corner{
				Position: p[idx],
				UV:       mgl64.Vec2{0, 0},
				Normal:   mgl64.Vec3{0, 0, 1},
			})
		}
	}
	return corners
}

func buildAndQuadrics(corners []Corner) (*Mesh, BuildStats) {
	mesh, stats := BuildMesh(corners)
	ComputeAllQuadrics(mesh)
	return mesh, stats
}
