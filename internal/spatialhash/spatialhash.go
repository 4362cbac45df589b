// Package spatialhash implements a uniform grid keyed by integer cell
// coordinates. It is the mesh builder's welding index: instead of
// comparing every incoming corner against every vertex seen so far, a
// corner only has to be compared against whatever already landed in
// its own grid cell.
//
// The cell-keyed bucket layout follows the broad-phase collision grid
// in akmonengine-feather (CellKey{X,Y,Z} over a flat cell store),
// adapted from "candidates that might collide" to "candidates that
// might weld".
package spatialhash

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CellKey identifies one cell of the uniform grid.
type CellKey struct {
	X, Y, Z int
}

// Grid maps cells to the indices a caller has inserted into them.
type Grid struct {
	cellSize float64
	cells    map[CellKey][]int
}

// New creates an empty grid with the given cell size.
func New(cellSize float64) *Grid {
	return &Grid{cellSize: cellSize, cells: make(map[CellKey][]int)}
}

// KeyFor returns the cell containing p.
func (g *Grid) KeyFor(p mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(p[0] / g.cellSize)),
		Y: int(math.Floor(p[1] / g.cellSize)),
		Z: int(math.Floor(p[2] / g.cellSize)),
	}
}

// Candidates returns every index previously inserted under key.
func (g *Grid) Candidates(key CellKey) []int {
	return g.cells[key]
}

// Insert registers index under key's cell.
func (g *Grid) Insert(key CellKey, index int) {
	g.cells[key] = append(g.cells[key], index)
}
