package contour

import (
	"fmt"
	"math"

	"github.com/isofield/isofield/field"
)

// assembleFills runs the fill pass: re-trace every level over the
// sentinel-padded view of src (so every path closes), convert each
// closed ring into a filled contour, and order the fills so that no
// region is emitted before one that contains it.
//
// The level list gains the data minimum at the front (unless already
// present) so the outermost band always exists; both the augmented
// list and the padded view are fresh per call, never shared state.
//
// edgeNaN reports whether the plain pass saw an undefined-data region
// touching the grid edge; such holes have no closed ring of their own,
// so when holes stay visible a full-domain NaN rectangle is prepended
// to cover them. With transparentNaN set, NaN fills are instead
// stripped and excised as holes from every fill containing them.
// Complexity: O(N×M×L) tracing plus O(F²×P) ordering for F fills.
func assembleFills(src field.Grid, levels []float64, transparentNaN, edgeNaN bool) ([]Contour, error) {
	// 1) Augmented level list: the base band starts at the data minimum.
	fillLevels := levels
	if levels[0] > src.MinZ() {
		fillLevels = make([]float64, 0, len(levels)+1)
		fillLevels = append(fillLevels, src.MinZ())
		fillLevels = append(fillLevels, levels...)
	}

	// 2) Closed-topology trace over the padded view.
	pg := newPaddedGrid(src)
	lines, err := newTracer(pg, fillLevels).run()
	if err != nil {
		return nil, err
	}

	// 3) Convert rings to filled contours.
	fills := make([]Contour, 0, len(lines))
	for _, line := range lines {
		f, err := asFilledContour(pg, fillLevels, line)
		if err != nil {
			return nil, err
		}
		fills = append(fills, f)
	}

	// 4) Pairwise containment: A contains B iff every vertex of B's
	//    ring lies inside A's.
	n := len(fills)
	contains := make([][]bool, n)
	containers := make([]int, n)
	for i := 0; i < n; i++ {
		contains[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if ringContainsRing(fills[i].Points, fills[j].Points) {
				contains[i][j] = true
				containers[j]++
			}
		}
	}

	// 5) Topological emission: each round releases every fill with no
	//    remaining container, in index order, then drops them as a
	//    dependency. A stalled round means the containment relation
	//    cycled, which valid ring topology cannot produce.
	order := make([]int, 0, n)
	done := make([]bool, n)
	for len(order) < n {
		round := make([]int, 0, n)
		for j := 0; j < n; j++ {
			if !done[j] && containers[j] == 0 {
				round = append(round, j)
			}
		}
		if len(round) == 0 {
			return nil, fmt.Errorf("containment ordering stalled with %d fills pending: %w",
				n-len(order), ErrTraceInvariant)
		}
		for _, i := range round {
			done[i] = true
			order = append(order, i)
			for j := 0; j < n; j++ {
				if contains[i][j] {
					contains[i][j] = false
					containers[j]--
				}
			}
		}
	}

	// 6) Reconcile NaN holes with the requested mode.
	out := make([]Contour, 0, n+1)
	if transparentNaN {
		for _, i := range order {
			if math.IsNaN(fills[i].Level) {
				continue
			}
			f := fills[i]
			for j := range fills {
				if math.IsNaN(fills[j].Level) && ringContainsRing(f.Points, fills[j].Points) {
					f.Holes = append(f.Holes, reverseRing(fills[j].Points))
				}
			}
			out = append(out, f)
		}

		return out, nil
	}
	if edgeNaN {
		// Holes reaching the grid edge never close into their own NaN
		// ring; a full-domain NaN rectangle underneath keeps them
		// covered.
		out = append(out, Contour{
			Points: []Point{
				{src.X0(), src.Y0()},
				{src.X1(), src.Y0()},
				{src.X1(), src.Y1()},
				{src.X0(), src.Y1()},
			},
			Level:  math.NaN(),
			Fill:   true,
			Closed: true,
		})
	}
	for _, i := range order {
		out = append(out, fills[i])
	}

	return out, nil
}

// asFilledContour converts one closed fill-pass line into a filled
// contour. The ring's winding decides which side is enclosed: tracing
// keeps the high side on the left, so a counterclockwise ring encloses
// values above its level and takes that level; a clockwise ring
// encloses the low side and takes the next band below. A clockwise
// ring at the base level encloses either missing data (an NaN hole) or
// the rare sample sitting exactly at the minimum; only genuine NaN
// gets the NaN level. Complexity: O(ring length).
func asFilledContour(pg *paddedGrid, fillLevels []float64, line isoLine) (Contour, error) {
	if !line.closed {
		return Contour{}, fmt.Errorf("fill pass produced an open path at level index %d: %w",
			line.levelIdx, ErrTraceInvariant)
	}
	if line.levelIdx >= len(fillLevels) {
		return Contour{}, fmt.Errorf("fill pass produced an NaN boundary path: %w", ErrTraceInvariant)
	}

	ring := buildPath(pg, fillLevels, line)
	level := fillLevels[line.levelIdx]
	if !ringEnclosesHigh(pg, ring) {
		switch {
		case line.levelIdx > 0:
			level = fillLevels[line.levelIdx-1]
		case encirclesSrcNaN(pg, fillLevels[0], line.steps[0]):
			level = math.NaN()
		default:
			level = fillLevels[0]
		}
	}

	return Contour{
		Points: ring,
		Level:  level,
		Fill:   true,
		Closed: true,
	}, nil
}

// ringEnclosesHigh reports whether a closed ring encloses the
// above-level side. Tracing keeps high values on the left, so in index
// space a high-enclosing ring winds counterclockwise; a reversed
// domain axis mirrors the world frame, which the axis-direction
// product corrects. Complexity: O(ring length).
func ringEnclosesHigh(g field.Grid, ring []Point) bool {
	a := signedArea(ring)
	if (g.X1()-g.X0())*(g.Y1()-g.Y0()) < 0 {
		a = -a
	}

	return a > 0
}

// encirclesSrcNaN reports whether the low side of the given base-level
// trace step borders missing source data, distinguishing an NaN hole
// from a region that merely touches the data minimum. Complexity: O(1).
func encirclesSrcNaN(pg *paddedGrid, level float64, first traceStep) bool {
	r, c := first.row, first.col
	corners := [4][2]int{
		{r + 1, c},     // TL
		{r + 1, c + 1}, // TR
		{r, c + 1},     // BR
		{r, c},         // BL
	}
	for _, cn := range corners {
		if pg.Z(cn[0], cn[1]) > level {
			continue
		}
		if pg.srcNaN(cn[0], cn[1]) {
			return true
		}
	}

	return false
}
