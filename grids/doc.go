// Package grids holds the coordinate-grid family of the lensing engine:
// the regular image grid, the oversampled sub-grid, the blurring-region
// grid, and the Collection that moves all three through the ray-tracing
// pipeline as one unit.
//
// What:
//
//   - ImageGrid — ordered arc-second pixel centres; index-stable for life.
//   - SubGrid — subSize² oversample points per pixel, stored as a flat
//     buffer plus explicit (pixels, subSize) metadata; bins sub-point
//     values back to per-pixel means (the oversampling contract).
//   - BlurringGrid — pixels outside the analysis mask that still leak
//     flux into it through the convolution kernel.
//   - Collection — {image, sub?, blurring?}; the optional grids are
//     either present or explicitly absent (nil), never zero-length stubs.
//   - Deflections — per-point vector sum over every entity's mass
//     profiles (linear superposition; zero entities ⇒ zero field).
//   - Traced — the single-plane ray-trace step, traced = position −
//     deflection, applied per tier with that tier's own deflection field.
//   - Intensities — the same aggregation for scalar light profiles, with
//     the per-pixel value of a sub-grid being the MEAN over its
//     individually evaluated sub-points.
//
// Why:
//
//   - Index alignment: image, sub and blurring grids built from one mask
//     share the canonical traversal, so position i always refers to the
//     same physical pixel in every derived grid.
//   - Oversampling: deflections and intensities are evaluated at each
//     individual sub-point, which is what makes sub-gridding meaningful
//     for non-linear mass and light profiles.
//
// Concurrency:
//
//	Every operation is a pure function over immutable inputs returning a
//	fresh grid; callers parallelize across model evaluations freely.
//
// Complexity:
//
//   - Deflections/Intensities: O(points × profiles).
//   - Traced: O(points).
//   - BinValues: O(points).
//
// Errors:
//
//   - ErrBadSubSize: sub-grid size below 1.
//   - ErrLengthMismatch: grids of differing point counts combined.
//   - ErrPresenceMismatch: optional-grid presence differs between two
//     collections expected to align.
package grids
