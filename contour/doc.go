// Package contour computes iso-lines and filled contour bands over a 2D
// scalar grid by marching squares, with disambiguated saddle cells,
// undefined-data (NaN) boundary handling, and containment-ordered fills.
//
// What:
//
//   - Generate classifies every grid cell against each contour level,
//     traces the resulting crossings into ordered point paths, and
//     (optionally) assembles closed filled regions ordered so that no
//     region paints over one it is contained in.
//   - Saddle cells (diagonally opposite corners on the same side of the
//     level) are disambiguated by the cell-center average, so tracing
//     never forks.
//   - NaN samples form "holes": real-level lines stop at their boundary
//     and a synthetic boundary path delimits each hole, either painted
//     as its own region or excised from every fill that covers it.
//   - SelectLevels picks sensible default levels from the data range
//     when the caller supplies none.
//
// Why:
//
//   - Heat maps and elevation plots: filled bands plus labeled lines.
//   - Sensor fields with gaps: undefined readings must neither break
//     tracing nor leak into neighbouring regions.
//   - Any renderer that can connect points dot-to-dot can consume the
//     output; the engine knows nothing about drawing.
//
// Complexity:
//
//   - Classification: O(N×M×L) for an N×M grid and L levels,
//     Memory: O(K×L) where K counts non-trivial cells only.
//   - Tracing: O(K×L) amortized; every cell/level pair is visited a
//     bounded number of times (twice for saddles, once otherwise).
//   - Fill ordering: O(F²×P) for F fills of ≤P points each.
//
// Options:
//
//   - Options.Levels: explicit ascending levels (≤ MaxLevels), or nil
//     to auto-select.
//   - Options.FillRegions: emit filled bands before the stroked lines.
//   - Options.TransparentNaN: excise holes from fills instead of
//     painting them.
//
// Errors:
//
//   - ErrNilGrid: no grid supplied.
//   - ErrTooManyLevels, ErrLevelOrder, ErrLevelRange: bad level list.
//   - ErrTraceInvariant: traversal topology broke an internal invariant;
//     the whole pass is discarded (fail-closed, no partial output).
//
// Degenerate inputs (fewer than 2 rows or columns, an undefined or zero
// data range) yield an empty list and a nil error: a defined result,
// not a failure.
package contour
