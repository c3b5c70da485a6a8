// Package field defines the grid capability interface and sentinel errors
// for the field subpackage of github.com/isofield/isofield.
package field

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("field: grid must have at least one row and one column")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("field: all rows must have the same length")
)

// Grid is a borrowed, read-only view of a rectangular scalar field.
// Implementations report N×M samples over a linearly mapped
// [X0,X1]×[Y0,Y1] domain; samples may be NaN (undefined).
//
// Z must panic on an out-of-range (row, col) pair: index errors are
// programming-contract violations, never recoverable data conditions.
type Grid interface {
	// Rows returns N, the number of sample rows (Y direction).
	Rows() int
	// Cols returns M, the number of sample columns (X direction).
	Cols() int

	// X0 and X1 bound the X domain. X0 may exceed X1.
	X0() float64
	X1() float64
	// Y0 and Y1 bound the Y domain. Y0 may exceed Y1.
	Y0() float64
	Y1() float64

	// MinZ returns the smallest well-defined sample, or NaN if none exist.
	MinZ() float64
	// MaxZ returns the largest well-defined sample, or NaN if none exist.
	MaxZ() float64

	// Z returns the sample at (row, col); NaN marks undefined data.
	Z(row, col int) float64
}
