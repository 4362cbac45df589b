// Package qem implements incremental mesh simplification via the
// Quadric Error Metric of Garland & Heckbert (SIGGRAPH 1997): triangle
// soup goes in through BuildMesh, ComputeAllQuadrics seeds the
// per-vertex error matrices, and a Scheduler collapses edges in
// increasing-cost order until a caller-chosen budget or ratio is met.
//
// The package is a pure, single-threaded core. It never touches a
// file, a GPU, or a window: a host supplies Corner streams (position,
// UV, normal per triangle corner) and consumes Mesh.Snapshot between
// simplification steps.
package qem
