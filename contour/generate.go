package contour

import (
	"math"

	"github.com/isofield/isofield/field"
)

// Generate computes the contours of g for one set of options and
// returns them in paint order: filled bands first (no fill precedes
// one that contains it), stroked iso-lines last so they draw on top.
//
// All working state is local to the call, so concurrent Generate calls
// over the same grid are safe. The grid is borrowed read-only for the
// duration of the call.
//
// Degenerate grids (fewer than 2 rows or columns, an undefined or zero
// data range) return an empty result and a nil error. An invalid
// caller level list returns a sentinel error. ErrTraceInvariant means
// the traversal topology broke mid-pass; nothing is returned in that
// case, partial output is never emitted.
// Complexity: O(N×M×L) plus O(F²×P) fill ordering.
func Generate(g field.Grid, opts Options) ([]Contour, error) {
	// 1) Contract and degenerate-input guards.
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Rows() < 2 || g.Cols() < 2 {
		return nil, nil
	}
	minZ, maxZ := g.MinZ(), g.MaxZ()
	span := maxZ - minZ
	if !(span > 0) || math.IsInf(span, 0) {
		return nil, nil
	}

	// 2) Resolve the level list: validate the caller's, else select.
	levels := opts.Levels
	if len(levels) == 0 {
		levels = SelectLevels(g)
		if len(levels) == 0 {
			return nil, nil
		}
	} else {
		if err := validateLevels(levels, minZ, maxZ); err != nil {
			return nil, err
		}
		levels = append([]float64(nil), levels...)
	}

	// 3) Plain pass: trace the stroked iso-lines and the NaN boundary
	//    paths over the unmodified grid.
	lines, err := newTracer(g, levels).run()
	if err != nil {
		return nil, err
	}

	strokes := make([]Contour, 0, len(lines))
	edgeNaN := false
	for _, line := range lines {
		nan := line.levelIdx == len(levels)
		if nan && !line.closed {
			edgeNaN = true
		}
		if nan && opts.TransparentNaN {
			continue
		}
		level := math.NaN()
		if !nan {
			level = levels[line.levelIdx]
		}
		strokes = append(strokes, Contour{
			Points: buildPath(g, levels, line),
			Level:  level,
			Fill:   false,
			Closed: line.closed,
		})
	}

	if !opts.FillRegions {
		return strokes, nil
	}

	// 4) Fill pass over the padded view, then fills ahead of strokes.
	fills, err := assembleFills(g, levels, opts.TransparentNaN, edgeNaN)
	if err != nil {
		return nil, err
	}

	out := make([]Contour, 0, len(fills)+len(strokes))
	out = append(out, fills...)
	out = append(out, strokes...)

	return out, nil
}
