package led

import (
	"math/rand"
	"time"
)

// Cell is one LED on the lattice. X and Y are the pixel centre and never move.
type Cell struct {
	X, Y       float64
	Intensity  float64
	Target     float64
	Hue        float64
	LastUpdate time.Time
}

// raise lifts the cell's target without ever lowering it, so effects applied
// in the same frame cannot cancel each other.
func (c *Cell) raise(v float64) {
	if v > c.Target {
		c.Target = v
	}
}

// Grid stores cells row-major; index = row*Cols + col.
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

// Dimensions returns the lattice size that fits a width x height surface.
func Dimensions(width, height int) (cols, rows int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return width / Pitch, height / Pitch
}

// NewGrid allocates a freshly seeded grid for the given surface size.
func NewGrid(width, height int, rng *rand.Rand, now time.Time) *Grid {
	cols, rows := Dimensions(width, height)
	g := &Grid{
		Cols:  cols,
		Rows:  rows,
		Cells: make([]Cell, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.Cells[row*cols+col] = Cell{
				X:          float64(col*Pitch) + Pitch/2.0,
				Y:          float64(row*Pitch) + Pitch/2.0,
				Intensity:  rng.Float64() * seedIntensity,
				Hue:        rng.Float64() * 360,
				LastUpdate: now,
			}
		}
	}
	return g
}

// Len reports the number of cells.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Cells)
}

// At returns the cell at (col, row), or nil outside the lattice.
func (g *Grid) At(col, row int) *Cell {
	if g == nil || col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return nil
	}
	return &g.Cells[row*g.Cols+col]
}

// position maps a slice index back to lattice coordinates.
func (g *Grid) position(idx int) (col, row int) {
	return idx % g.Cols, idx / g.Cols
}
