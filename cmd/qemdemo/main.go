// Command qemdemo builds a small synthetic mesh, simplifies it down to
// a target ratio, and prints before/after stats — a minimal,
// rendering-free front end over the qem core, in the spirit of
// sksmith-conway/examples/basic and akmonengine-feather's
// example/simpleScene, neither of which this demo attempts to
// reproduce: it does not parse a mesh file or touch a GPU, so it stays
// on the right side of the core's own Non-goals.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ryudongho/qemgo/qem"
)

func main() {
	ratio := flag.Float64("ratio", 0.5, "target fraction of the original live face count")
	flag.Parse()

	if *ratio <= 0 || *ratio > 1 {
		log.Fatalf("qemdemo: -ratio must be in (0, 1], got %v", *ratio)
	}

	corners := tetrahedronCorners()
	mesh, buildStats := qem.BuildMesh(corners)
	fmt.Printf("built: %d vertices, %d faces, %d edges\n",
		buildStats.UniqueVertexCount, buildStats.FaceCount, buildStats.EdgeCount)

	qem.ComputeAllQuadrics(mesh)

	before := mesh.Stats()
	fmt.Printf("before: %+v\n", before)

	collapses, after := qem.SimplifyToRatio(mesh, *ratio)
	fmt.Printf("after %d collapses: %+v\n", collapses, after)

	if violations := qem.Validate(mesh); len(violations) > 0 {
		log.Printf("mesh failed validation after simplification:")
		for _, v := range violations {
			log.Printf("  %v", v)
		}
	}
}

// tetrahedronCorners synthesizes a regular tetrahedron as a flat
// triangle-soup stream — no file, no GPU — matching scenario S5 from
// the core's own test suite.
func tetrahedronCorners() []qem.Corner {
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

	corners := make([]qem.Corner, 0, len(faces)*3)
	for _, f := range faces {
		for _, idx := range f {
			corners = append(corners, qem.Corner{
				Position: p[idx],
				UV:       mgl64.Vec2{0, 0},
				Normal:   mgl64.Vec3{0, 0, 1},
			})
		}
	}
	return corners
}
