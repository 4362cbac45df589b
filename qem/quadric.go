package qem

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// Quadric is a symmetric 4x4 error matrix, stored as its ten
// independent entries rather than all sixteen — the same packing the
// teacher's own NewQuadric used for a single-plane quadric, generalized
// here to the running per-vertex sum of many planes.
//
//	a11 a12 a13 a14
//	a12 a22 a23 a24
//	a13 a23 a33 a34
//	a14 a24 a34 a44
type Quadric struct {
	m [10]float64
}

// quadricFromPlane builds the fundamental quadric K = p * pT of a
// plane equation p = (a, b, c, d). For any homogeneous point
// x = (x, y, z, 1), xT K x is the squared signed distance of x from
// the plane.
func quadricFromPlane(p mgl64.Vec4) Quadric {
	a, b, c, d := p[0], p[1], p[2], p[3]
	return Quadric{m: [10]float64{
		a * a, a * b, a * c, a * d,
		b * b, b * c, b * d,
		c * c, c * d,
		d * d,
	}}
}

// Add returns the sum of two quadrics.
func (q Quadric) Add(other Quadric) Quadric {
	var r Quadric
	for i := range q.m {
		r.m[i] = q.m[i] + other.m[i]
	}
	return r
}

// Error evaluates xT Q x at the point (x, y, z, 1).
func (q Quadric) Error(x, y, z float64) float64 {
	m := q.m
	return m[0]*x*x + 2*m[1]*x*y + 2*m[2]*x*z + 2*m[3]*x +
		m[4]*y*y + 2*m[5]*y*z + 2*m[6]*y +
		m[7]*z*z + 2*m[8]*z +
		m[9]
}

// dense expands the packed symmetric quadric into a full 4x4 gonum
// matrix, used by the cost solver to form Qbar and run a real solve.
func (q Quadric) dense() *mat.Dense {
	m := q.m
	return mat.NewDense(4, 4, []float64{
		m[0], m[1], m[2], m[3],
		m[1], m[4], m[5], m[6],
		m[2], m[5], m[7], m[8],
		m[3], m[6], m[8], m[9],
	})
}

// ComputeAllQuadrics runs a single O(F) pass over the mesh's live
// faces, resetting every vertex's quadric to zero and then adding each
// face's fundamental quadric to all three of its vertices. Calling it
// twice in a row is idempotent: the reset means the second pass
// recomputes the same sums rather than doubling them.
func ComputeAllQuadrics(mesh *Mesh) {
	for i := range mesh.Vertices {
		mesh.Vertices[i].Quadric = Quadric{}
	}
	for _, f := range mesh.Faces {
		if f.Deleted {
			continue
		}
		q := quadricFromPlane(f.Plane)
		mesh.Vertices[f.A].Quadric = mesh.Vertices[f.A].Quadric.Add(q)
		mesh.Vertices[f.B].Quadric = mesh.Vertices[f.B].Quadric.Add(q)
		mesh.Vertices[f.C].Quadric = mesh.Vertices[f.C].Quadric.Add(q)
	}
}

// computePlane derives the unit-normal plane equation of a triangle
// given in counter-clockwise order. ok is false for a degenerate
// (zero-area) triangle, whose plane is not well defined.
func computePlane(a, b, c mgl64.Vec3) (mgl64.Vec4, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	n := e1.Cross(e2)
	length := n.Len()
	if length < 1e-12 {
		return mgl64.Vec4{}, false
	}
	n = n.Mul(1 / length)
	d := -n.Dot(a)
	return mgl64.Vec4{n[0], n[1], n[2], d}, true
}
