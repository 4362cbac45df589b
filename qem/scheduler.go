package qem

import (
	"container/heap"

	"github.com/go-gl/mathgl/mgl64"
)

// edgeSnapshot is one heap entry: a cost estimate plus the endpoint
// pair and contraction target it was computed from. The heap never
// holds pointers into Mesh.Edges, only value copies, so an edge
// retargeted or re-costed after its snapshot was pushed no longer
// matches it on pop (by endpoints or by cost) and the stale snapshot is
// discarded — there is no decrease-key.
type edgeSnapshot struct {
	cost    float64
	v1, v2  int
	optimal mgl64.Vec3
}

// edgeHeap implements heap.Interface over edgeSnapshot, the same shape
// as the teacher's own EdgeHeap in mesh_simplification.go.
type edgeHeap []edgeSnapshot

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(edgeSnapshot)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Scheduler drives the priority-ordered collapse loop over a Mesh. It
// owns the edge heap; the Mesh owns the authoritative vertex, edge and
// face arrays. A Scheduler is not safe for concurrent use: the core is
// strictly single-threaded, and a step mutates the mesh it was built
// from exclusively.
type Scheduler struct {
	mesh        *Mesh
	heap        edgeHeap
	initialized bool
}

// NewScheduler wraps a mesh whose quadrics have already been computed
// via ComputeAllQuadrics.
func NewScheduler(mesh *Mesh) *Scheduler {
	return &Scheduler{mesh: mesh}
}

// HeapSize reports the scheduler's current heap length, including any
// stale entries not yet discarded.
func (s *Scheduler) HeapSize() int {
	return len(s.heap)
}

// DefaultBudget mirrors the source's default per-call collapse budget
// of one collapse per defaultBudgetDivisor original vertices, floored
// at 1 so a non-empty mesh always makes progress.
func DefaultBudget(mesh *Mesh) int {
	budget := len(mesh.Vertices) / defaultBudgetDivisor
	if budget < 1 {
		budget = 1
	}
	return budget
}

// ensureInitialized lazily seeds the heap with every live edge's cost
// on first use, so the host never needs a separate heap "init" call.
// It reads the vertex quadrics as they stand; it does not compute them.
func (s *Scheduler) ensureInitialized() {
	if s.initialized {
		return
	}
	for i := range s.mesh.Edges {
		e := &s.mesh.Edges[i]
		if e.Deleted {
			continue
		}
		s.recompute(e)
		heap.Push(&s.heap, edgeSnapshot{cost: e.Cost, v1: e.V1, v2: e.V2, optimal: e.OptimalPosition})
	}
	s.initialized = true
}

// recompute refreshes an edge's cost and optimal position via the
// cost solver and clears its dirty flag.
func (s *Scheduler) recompute(e *Edge) {
	q := s.mesh.Vertices[e.V1].Quadric.Add(s.mesh.Vertices[e.V2].Quadric)
	pos, cost := solveContraction(q, s.mesh.Vertices[e.V1].Position, s.mesh.Vertices[e.V2].Position)
	e.OptimalPosition = pos
	e.Cost = cost
	e.Dirty = false
}

// findLiveEdge scans the mesh's edge array for a live edge matching
// the pair (v1, v2) in either order. A linear scan is the core's
// contract (§9 notes a (min,max)->index hash index as an optional,
// non-mandated speedup for very large meshes); it doubles as the
// staleness check, since an edge whose endpoints were retargeted by a
// different collapse will simply no longer match.
func (s *Scheduler) findLiveEdge(v1, v2 int) int {
	for i := range s.mesh.Edges {
		e := &s.mesh.Edges[i]
		if e.Deleted {
			continue
		}
		if (e.V1 == v1 && e.V2 == v2) || (e.V1 == v2 && e.V2 == v1) {
			return i
		}
	}
	return -1
}

// SimplifyStep performs up to budget edge collapses in increasing-cost
// order and returns the number actually performed. A return of 0 with
// an empty heap (HeapSize() == 0) is the scheduler's terminal signal —
// there is nothing left worth collapsing.
func (s *Scheduler) SimplifyStep(budget int) int {
	s.ensureInitialized()

	performed := 0
	for performed < budget && len(s.heap) > 0 {
		snap := heap.Pop(&s.heap).(edgeSnapshot)

		idx := s.findLiveEdge(snap.v1, snap.v2)
		if idx < 0 {
			continue // stale: no live edge matches this snapshot anymore
		}

		e := &s.mesh.Edges[idx]
		if snap.cost != e.Cost {
			continue // stale: the edge has been re-costed since this snapshot was pushed
		}
		if e.Dirty {
			s.recompute(e)
			heap.Push(&s.heap, edgeSnapshot{cost: e.Cost, v1: e.V1, v2: e.V2, optimal: e.OptimalPosition})
			continue
		}

		affected := collapse(s.mesh, idx)
		performed++

		for _, ai := range affected {
			ae := &s.mesh.Edges[ai]
			ae.Dirty = true
			heap.Push(&s.heap, edgeSnapshot{cost: ae.Cost, v1: ae.V1, v2: ae.V2, optimal: ae.OptimalPosition})
		}
	}

	return performed
}
