package qem

// Magic constants fixed by the specification.
const (
	// Grid is the spatial-hash cell size used to bucket corners for
	// welding: floor(p / Grid) per axis.
	Grid = 1e-3

	// EpsWeld is the maximum Euclidean distance between two corners for
	// them to weld into the same unique vertex.
	EpsWeld = 1e-4

	// EpsDet is the minimum |det(Qbar)| for the direct 4x4 solve to be
	// trusted; below it the cost solver falls back to the best of the
	// two endpoints and their midpoint.
	EpsDet = 1e-10

	// defaultBudgetDivisor mirrors the source's default per-call
	// collapse budget of original_vertex_count / 100.
	defaultBudgetDivisor = 100
)
