// Package core holds the contracts shared by the front ends: board sizes, the
// read-only view they render from, frame timing and HUD parameter types.
package core

import "fmt"

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// View is the query surface a presentation layer reads after each event.
type View interface {
	Size() Size
	Generation() uint32
	Running() bool
	Population() int
	PendingSize() Size
	// Rows renders the board top to bottom with the given glyphs.
	Rows(alive, dead rune) []string
	// Cells appends the board to dst in row-major order as 0/1 bytes.
	Cells(dst []uint8) []uint8
}
