package life

import (
	"math"
	"testing"

	"torus-life/pkg/core"

	"gonum.org/v1/gonum/dsp/fourier"
)

// fft2 transforms a row-major w*h field in place along both axes.
func fft2(field []complex128, w, h int, inverse bool) {
	rowFFT := fourier.NewCmplxFFT(w)
	colFFT := fourier.NewCmplxFFT(h)
	for y := 0; y < h; y++ {
		row := field[y*w : (y+1)*w]
		if inverse {
			rowFFT.Sequence(row, row)
		} else {
			rowFFT.Coefficients(row, row)
		}
	}
	col := make([]complex128, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = field[y*w+x]
		}
		if inverse {
			colFFT.Sequence(col, col)
		} else {
			colFFT.Coefficients(col, col)
		}
		for y := 0; y < h; y++ {
			field[y*w+x] = col[y]
		}
	}
}

// convolutionCounts computes toroidal neighbor counts as a circular
// convolution of the cells with the Moore kernel.
func convolutionCounts(g *Grid) []int {
	w, h := g.Width(), g.Height()
	cells := make([]complex128, w*h)
	for i, c := range g.cur {
		cells[i] = complex(float64(c), 0)
	}
	kernel := make([]complex128, w*h)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			y := (dy + h) % h
			x := (dx + w) % w
			kernel[y*w+x] += 1
		}
	}

	fft2(cells, w, h, false)
	fft2(kernel, w, h, false)
	for i := range cells {
		cells[i] *= kernel[i]
	}
	fft2(cells, w, h, true)

	norm := float64(w * h)
	counts := make([]int, w*h)
	for i, v := range cells {
		counts[i] = int(math.Round(real(v) / norm))
	}
	return counts
}

func TestNeighborCountMatchesConvolution(t *testing.T) {
	rng := core.NewRNG(2024)
	for _, dims := range [][2]int{{3, 3}, {8, 5}, {17, 12}, {48, 48}} {
		g, p, err := Seed(dims[0], dims[1], Random, DefaultPeriods, rng)
		if err != nil {
			t.Fatal(err)
		}
		for step := 0; step < 4; step++ {
			want := convolutionCounts(g)
			for row := 0; row < g.Height(); row++ {
				for col := 0; col < g.Width(); col++ {
					got := g.NeighborCount(row, col)
					if got != want[g.Index(row, col)] {
						t.Fatalf("%dx%d periods %v step %d: NeighborCount(%d, %d) = %d, convolution says %d",
							dims[0], dims[1], p, step, row, col, got, want[g.Index(row, col)])
					}
				}
			}
			g.Advance()
		}
	}
}
