package contour

import (
	"math"

	"github.com/isofield/isofield/field"
)

// SelectLevels picks default contour levels from the grid's data range.
//
// The range is trimmed by 10% on each side so levels avoid the extremes.
// If the trimmed range holds at least two integers, integer levels are
// chosen (with an integer stride keeping the count within MaxLevels);
// otherwise four evenly spaced fractional levels span the trimmed range.
//
// The result is strictly ascending, unique, at most MaxLevels long, and
// strictly inside (MinZ, MaxZ). A degenerate range yields nil.
// Complexity: O(MaxLevels).
func SelectLevels(g field.Grid) []float64 {
	if g == nil {
		return nil
	}
	minZ, maxZ := g.MinZ(), g.MaxZ()
	span := maxZ - minZ
	if !(span > 0) || math.IsInf(span, 0) {
		return nil
	}

	// 1) Trim 10% off each end so levels stay away from the extremes.
	lo := minZ + 0.1*span
	hi := maxZ - 0.1*span

	// 2) Prefer integer levels when the trimmed range supports ≥ 2.
	first := math.Ceil(lo)
	last := math.Floor(hi)
	if last >= first+1 {
		n := int(last-first) + 1
		stride := float64(1 + (n-1)/MaxLevels)
		levels := make([]float64, 0, MaxLevels)
		for v := first; v <= last; v += stride {
			levels = append(levels, v)
		}

		return levels
	}

	// 3) Fall back to four evenly spaced fractional levels.
	step := (hi - lo) / 3
	return []float64{lo, lo + step, lo + 2*step, hi}
}

// validateLevels checks a caller-supplied level list against the grid:
// strictly ascending, unique, at most MaxLevels entries, every level
// within [MinZ, MaxZ]. Complexity: O(L).
func validateLevels(levels []float64, minZ, maxZ float64) error {
	if len(levels) > MaxLevels {
		return ErrTooManyLevels
	}
	for i, v := range levels {
		if math.IsNaN(v) || v < minZ || v > maxZ {
			return ErrLevelRange
		}
		if i > 0 && v <= levels[i-1] {
			return ErrLevelOrder
		}
	}

	return nil
}
