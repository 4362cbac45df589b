package qem

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// solveContraction computes the position that minimizes the combined
// quadric q, and the resulting QEM cost, for an edge whose endpoints
// currently sit at p1 and p2.
//
// Qbar is Q with its bottom row replaced by (0,0,0,1), which pins the
// homogeneous solution to w = 1. When Qbar is non-singular the optimum
// is Qbar^-1 * (0,0,0,1)T, and the cost is evaluated against the
// original Q (not Qbar), since Qbar discards error along one
// coordinate direction by construction. When Qbar is singular —
// typically a planar or co-linear vertex neighborhood — the solver
// falls back to whichever of p1, p2, or their midpoint has least error.
func solveContraction(q Quadric, p1, p2 mgl64.Vec3) (mgl64.Vec3, float64) {
	qbar := q.dense()
	qbar.SetRow(3, []float64{0, 0, 0, 1})

	if det := mat.Det(qbar); math.Abs(det) > EpsDet {
		var inv mat.Dense
		if err := inv.Inverse(qbar); err == nil {
			e4 := mat.NewVecDense(4, []float64{0, 0, 0, 1})
			var v mat.VecDense
			v.MulVec(&inv, e4)
			pos := mgl64.Vec3{v.AtVec(0), v.AtVec(1), v.AtVec(2)}
			return pos, q.Error(pos[0], pos[1], pos[2])
		}
	}

	return fallbackContraction(q, p1, p2)
}

// fallbackContraction evaluates the three midpoint-or-endpoint
// candidates the spec mandates when Qbar is singular, returning the
// one with minimum quadric error. The midpoint is the baseline and
// only displaced by a strictly better endpoint, so a tie — most
// notably the zero quadric, where all three candidates cost 0 —
// resolves to the midpoint.
func fallbackContraction(q Quadric, p1, p2 mgl64.Vec3) (mgl64.Vec3, float64) {
	mid := p1.Add(p2).Mul(0.5)

	best := mid
	bestCost := q.Error(best[0], best[1], best[2])
	for _, c := range [2]mgl64.Vec3{p1, p2} {
		cost := q.Error(c[0], c[1], c[2])
		if cost < bestCost {
			bestCost = cost
			best = c
		}
	}
	return best, bestCost
}
