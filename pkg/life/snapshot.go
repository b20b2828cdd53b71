package life

import "strings"

// Glyphs used by String.
const (
	AliveGlyph = '▓'
	DeadGlyph  = '░'
)

// Rows renders the grid top to bottom, one string of Width() glyphs per row.
func (g *Grid) Rows(alive, dead rune) []string {
	rows := make([]string, 0, g.h)
	var b strings.Builder
	for row := 0; row < g.h; row++ {
		b.Reset()
		for _, c := range g.cur[row*g.w : (row+1)*g.w] {
			if c == Alive {
				b.WriteRune(alive)
				continue
			}
			b.WriteRune(dead)
		}
		rows = append(rows, b.String())
	}
	return rows
}

// String renders the grid with the default glyphs, each row ending in a newline.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.Rows(AliveGlyph, DeadGlyph) {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// AppendBytes appends the cells in row-major order as 0/1 bytes.
func (g *Grid) AppendBytes(dst []uint8) []uint8 {
	for _, c := range g.cur {
		dst = append(dst, uint8(c))
	}
	return dst
}
