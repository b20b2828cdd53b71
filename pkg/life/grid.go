// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid.
package life

import (
	"errors"
	"fmt"
)

// Cell is the state of a single grid position. Alive is 1 and Dead is 0 so
// neighbor counts can be summed directly.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

var (
	// ErrEmptyGrid is returned when a grid is requested with a zero dimension.
	ErrEmptyGrid = errors.New("life: grid dimensions must be positive")
	// ErrPeriod is returned when a seed period is not positive.
	ErrPeriod = errors.New("life: seed periods must be positive")
	// ErrTooLarge is returned when a grid would hold more than MaxCells cells.
	ErrTooLarge = errors.New("life: grid exceeds the cell limit")
)

// MaxCells bounds Width*Height of any grid.
const MaxCells = 1 << 24

// Grid holds a row-major cell matrix that wraps at every edge.
type Grid struct {
	w, h int
	cur  []Cell
	nxt  []Cell
}

// New returns a w*h grid seeded with the modular pattern described by p.
func New(w, h int, p Periods) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new %dx%d grid: %w", w, h, ErrEmptyGrid)
	}
	if !Fits(w, h) {
		return nil, fmt.Errorf("new %dx%d grid: %w", w, h, ErrTooLarge)
	}
	if !p.valid() {
		return nil, fmt.Errorf("new grid with periods %v: %w", p, ErrPeriod)
	}
	cells := make([]Cell, w*h)
	p.fill(cells)
	return &Grid{w: w, h: h, cur: cells, nxt: make([]Cell, len(cells))}, nil
}

// Fits reports whether a w*h grid stays within MaxCells.
func Fits(w, h int) bool {
	return w > 0 && h > 0 && w <= MaxCells/h
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns the number of cells, always Width()*Height().
func (g *Grid) Len() int { return len(g.cur) }

// Index returns the linear slice index for (row, column).
func (g *Grid) Index(row, col int) int { return row*g.w + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.h + g.h) % g.h
	col = (col%g.w + g.w) % g.w
	return row, col
}

// Cell returns the state at (row, column), wrapping out-of-range coordinates.
func (g *Grid) Cell(row, col int) Cell {
	row, col = g.Wrap(row, col)
	return g.cur[g.Index(row, col)]
}

// Set overwrites the state at (row, column), wrapping out-of-range coordinates.
func (g *Grid) Set(row, col int, c Cell) {
	row, col = g.Wrap(row, col)
	g.cur[g.Index(row, col)] = c
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// NeighborCount sums the eight neighbors of (row, column). Rows wrap modulo
// the height and columns modulo the width.
func (g *Grid) NeighborCount(row, col int) int {
	w, h := g.w, g.h
	row, col = g.Wrap(row, col)
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr + h) % h
			nc := (col + dc + w) % w
			count += int(g.cur[nr*w+nc])
		}
	}
	return count
}

// Rule returns the next state of a cell with the given live neighbor count.
func Rule(c Cell, neighbors int) Cell {
	switch {
	case c == Alive && neighbors < 2:
		return Dead
	case c == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case c == Alive && neighbors > 3:
		return Dead
	case c == Dead && neighbors == 3:
		return Alive
	}
	return c
}

// Advance computes the next generation. Every cell is evaluated against the
// current buffer and written to the spare one before the two are swapped.
func (g *Grid) Advance() {
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			idx := row*g.w + col
			g.nxt[idx] = Rule(g.cur[idx], g.NeighborCount(row, col))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		w:   g.w,
		h:   g.h,
		cur: append([]Cell(nil), g.cur...),
		nxt: make([]Cell, len(g.cur)),
	}
}
