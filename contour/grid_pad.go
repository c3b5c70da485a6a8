package contour

import (
	"fmt"
	"math"

	"github.com/isofield/isofield/field"
)

// paddedGrid is the fill-pass view of a source grid: one extra row and
// column of samples on every side, where every border sample and every
// NaN sample reports a sentinel value far below the data range. Over
// this view no path can terminate at the grid edge or inside missing
// data, so every traced line closes, which the fill assembler requires.
//
// The view is built fresh for each fill pass and never escapes it; the
// source grid is read-only throughout.
type paddedGrid struct {
	src            field.Grid
	sentinel       float64
	x0, x1, y0, y1 float64
}

// newPaddedGrid wraps src for one fill pass. The domain grows by one
// source cell-width per side so the synthetic border keeps the lattice
// spacing. Complexity: O(1).
func newPaddedGrid(src field.Grid) *paddedGrid {
	span := src.MaxZ() - src.MinZ()
	dx := (src.X1() - src.X0()) / float64(src.Cols()-1)
	dy := (src.Y1() - src.Y0()) / float64(src.Rows()-1)

	return &paddedGrid{
		src:      src,
		sentinel: src.MinZ() - sentinelScale*span,
		x0:       src.X0() - dx,
		x1:       src.X1() + dx,
		y0:       src.Y0() - dy,
		y1:       src.Y1() + dy,
	}
}

// Rows returns the padded row count N+2. Complexity: O(1).
func (p *paddedGrid) Rows() int { return p.src.Rows() + 2 }

// Cols returns the padded column count M+2. Complexity: O(1).
func (p *paddedGrid) Cols() int { return p.src.Cols() + 2 }

// X0 returns the padded domain start, one cell-width outside the source.
func (p *paddedGrid) X0() float64 { return p.x0 }

// X1 returns the padded domain end, one cell-width outside the source.
func (p *paddedGrid) X1() float64 { return p.x1 }

// Y0 returns the padded domain start, one cell-width outside the source.
func (p *paddedGrid) Y0() float64 { return p.y0 }

// Y1 returns the padded domain end, one cell-width outside the source.
func (p *paddedGrid) Y1() float64 { return p.y1 }

// MinZ delegates to the source: the sentinel is synthetic, not data.
func (p *paddedGrid) MinZ() float64 { return p.src.MinZ() }

// MaxZ delegates to the source.
func (p *paddedGrid) MaxZ() float64 { return p.src.MaxZ() }

// Z returns the padded sample: the sentinel on the border and for NaN
// source samples, the source value otherwise. Complexity: O(1).
func (p *paddedGrid) Z(row, col int) float64 {
	rows, cols := p.Rows(), p.Cols()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		panic(fmt.Sprintf("contour: padded Z(%d,%d) out of range for %d×%d grid", row, col, rows, cols))
	}
	if row == 0 || row == rows-1 || col == 0 || col == cols-1 {
		return p.sentinel
	}
	v := p.src.Z(row-1, col-1)
	if math.IsNaN(v) {
		return p.sentinel
	}

	return v
}

// srcNaN reports whether padded cell corner (row, col) maps to an NaN
// sample of the source grid; border corners do not. Used to tell a
// genuine missing-data hole from a region that merely sits below the
// lowest level. Complexity: O(1).
func (p *paddedGrid) srcNaN(row, col int) bool {
	if row < 1 || row > p.src.Rows() || col < 1 || col > p.src.Cols() {
		return false
	}

	return math.IsNaN(p.src.Z(row-1, col-1))
}
