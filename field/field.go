package field

import (
	"fmt"
	"math"
)

// Dense is a Grid backed by an in-memory sample matrix. It is immutable
// once built: NewDense deep-copies the input and the Z range is computed
// up front.
type Dense struct {
	rows, cols     int
	x0, x1, y0, y1 float64
	minZ, maxZ     float64
	values         [][]float64
}

// NewDense constructs a Dense from a non-empty, rectangular 2D slice and
// its domain extents. The input is deep-copied to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrRagged if any row length differs.
// Complexity: O(N×M) time and memory.
func NewDense(values [][]float64, x0, x1, y0, y1 float64) (*Dense, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrRagged
		}
	}

	// Deep copy to prevent external mutation; scan the Z range in the
	// same pass. NaN samples are legal and excluded from the range.
	cells := make([][]float64, rows)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	defined := false
	for r := 0; r < rows; r++ {
		cells[r] = make([]float64, cols)
		copy(cells[r], values[r])
		for c := 0; c < cols; c++ {
			v := cells[r][c]
			if math.IsNaN(v) {
				continue
			}
			defined = true
			if v < minZ {
				minZ = v
			}
			if v > maxZ {
				maxZ = v
			}
		}
	}
	if !defined {
		minZ, maxZ = math.NaN(), math.NaN()
	}

	return &Dense{
		rows: rows, cols: cols,
		x0: x0, x1: x1, y0: y0, y1: y1,
		minZ: minZ, maxZ: maxZ,
		values: cells,
	}, nil
}

// Sample constructs a Dense by evaluating f at every lattice node of a
// rows×cols grid over [x0,x1]×[y0,y1]. f may return NaN for undefined
// regions. Validation matches NewDense.
// Complexity: O(rows×cols) calls to f.
func Sample(f func(x, y float64) float64, rows, cols int, x0, x1, y0, y1 float64) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	values := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		values[r] = make([]float64, cols)
		y := lattice(y0, y1, rows, r)
		for c := 0; c < cols; c++ {
			values[r][c] = f(lattice(x0, x1, cols, c), y)
		}
	}

	return NewDense(values, x0, x1, y0, y1)
}

// lattice maps index i of n evenly spaced nodes onto [a,b].
// A single-node axis collapses to a.
func lattice(a, b float64, n, i int) float64 {
	if n < 2 {
		return a
	}

	return a + float64(i)*(b-a)/float64(n-1)
}

// Rows returns the number of sample rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of sample columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.cols }

// X0 returns the X coordinate of column 0. Complexity: O(1).
func (d *Dense) X0() float64 { return d.x0 }

// X1 returns the X coordinate of the last column. Complexity: O(1).
func (d *Dense) X1() float64 { return d.x1 }

// Y0 returns the Y coordinate of row 0. Complexity: O(1).
func (d *Dense) Y0() float64 { return d.y0 }

// Y1 returns the Y coordinate of the last row. Complexity: O(1).
func (d *Dense) Y1() float64 { return d.y1 }

// MinZ returns the smallest well-defined sample, or NaN if none exist.
// Complexity: O(1).
func (d *Dense) MinZ() float64 { return d.minZ }

// MaxZ returns the largest well-defined sample, or NaN if none exist.
// Complexity: O(1).
func (d *Dense) MaxZ() float64 { return d.maxZ }

// Z returns the sample at (row, col). It panics on an out-of-range
// index: boundary checks belong to the caller's loop, not to the data.
// Complexity: O(1).
func (d *Dense) Z(row, col int) float64 {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		panic(fmt.Sprintf("field: Z(%d,%d) out of range for %d×%d grid", row, col, d.rows, d.cols))
	}

	return d.values[row][col]
}

// X returns the X coordinate of column col. Columns outside [0,M-1]
// extrapolate linearly. Complexity: O(1).
func (d *Dense) X(col int) float64 {
	return lattice(d.x0, d.x1, d.cols, col)
}

// Y returns the Y coordinate of row row. Rows outside [0,N-1]
// extrapolate linearly. Complexity: O(1).
func (d *Dense) Y(row int) float64 {
	return lattice(d.y0, d.y1, d.rows, row)
}
