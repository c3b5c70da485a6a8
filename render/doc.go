// Package render rasterizes contour lists onto in-memory RGBA images.
//
// What:
//
//   - Draw paints a []contour.Contour over a world window onto a fresh
//     *image.RGBA: filled regions in list order, iso-line strokes on top,
//     optional level labels last.
//   - Filled regions honor hole rings through the even-odd rule, so
//     excised undefined areas stay transparent down to the background.
//   - Palette maps levels onto a linear two-anchor color ramp; undefined
//     regions take a dedicated color instead.
//
// Why:
//
//   - Heat-map style previews of scalar fields without a GUI stack.
//   - Golden-image pipelines: deterministic output for fixed input.
//   - Feeding image/png or further compositing stages.
//
// Complexity:
//
//   - Draw: O(P) path construction over P contour points, plus raster
//     cost proportional to covered pixels.
//
// Options:
//
//   - Options.Width/Height: canvas size in pixels (800×600 default).
//   - Options.Palette: level→color ramp for fills.
//   - Options.StrokeColor/StrokeWidth: iso-line appearance.
//   - Options.NaNColor: fill color for undefined regions.
//   - Options.Labels/LabelColor: numeric level annotations.
//
// Errors:
//
//   - none: a degenerate window or empty contour list yields a plain
//     background image; out-of-range sizes fall back to the defaults.
//
// The contour and field packages never import render; the dependency
// points one way only.
package render
