// Package contour defines output types, options, and sentinel errors
// for the contour subpackage of github.com/isofield/isofield.
package contour

import (
	"errors"
)

// Sentinel errors for contour generation.
var (
	// ErrNilGrid indicates Generate was called without a grid.
	ErrNilGrid = errors.New("contour: grid must not be nil")
	// ErrTooManyLevels indicates more than MaxLevels contour levels.
	ErrTooManyLevels = errors.New("contour: too many contour levels")
	// ErrLevelOrder indicates levels that are not strictly ascending.
	ErrLevelOrder = errors.New("contour: levels must be strictly ascending and unique")
	// ErrLevelRange indicates a level outside the grid's [MinZ, MaxZ].
	ErrLevelRange = errors.New("contour: level outside grid data range")
	// ErrTraceInvariant indicates the cell traversal reached a state the
	// marching-squares topology forbids. The entire pass is discarded.
	ErrTraceInvariant = errors.New("contour: trace invariant violated")
)

const (
	// MaxLevels caps the number of contour levels in one generation pass.
	MaxLevels = 20

	// sentinelScale scales the data span when synthesizing the far-below
	// value that replaces border and NaN cells during the fill pass.
	// The factor is load-bearing: at 1e6 the crossing points land so
	// close to the data corners that containment checks misorder
	// nested fills.
	sentinelScale = 1000

	// nanInset positions crossing points on edges with one undefined
	// corner at this fraction of the edge length from the defined corner.
	nanInset = 0.01
)

// Point is a 2D point in grid (world) coordinates.
type Point struct {
	X, Y float64
}

// Contour is one output path: an ordered point sequence plus the level
// it traces. A Contour is immutable once returned by Generate.
//
// Level is NaN for paths delimiting undefined-data regions. Holes holds
// excised sub-paths (wound opposite to Points) when undefined regions
// are transparent; consumers fill Points plus Holes with the even-odd
// rule. Closed paths connect the last point back to the first.
type Contour struct {
	Points []Point
	Holes  [][]Point
	Level  float64
	Fill   bool
	Closed bool
}

// Options configures one Generate pass.
type Options struct {
	// Levels lists the contour levels to trace: strictly ascending,
	// unique, at most MaxLevels entries, each within [MinZ, MaxZ].
	// Leave nil to auto-select via SelectLevels.
	Levels []float64

	// FillRegions emits filled contour bands (in containment order)
	// ahead of the stroked iso-lines.
	FillRegions bool

	// TransparentNaN excises undefined-data holes from every fill that
	// covers them instead of emitting paintable NaN regions.
	TransparentNaN bool
}

// DefaultOptions returns the default configuration: auto-selected
// levels, stroked iso-lines only, NaN regions paintable.
func DefaultOptions() Options {
	return Options{
		Levels:         nil,
		FillRegions:    false,
		TransparentNaN: false,
	}
}
