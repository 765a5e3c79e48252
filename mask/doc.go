// Package mask represents the boolean analysis mask of an observed image
// and derives every coordinate set the lensing engine consumes from it.
//
// What:
//
//   - Mask wraps a rectangular [][]bool (true = pixel excluded from the
//     fit) together with its arc-second pixel scale.
//   - Canonical traversal: row-major, top-to-bottom, left-to-right over
//     unmasked cells. Every derived grid inherits this order, so image,
//     sub and blurring grids for one mask stay index-aligned for life.
//   - ImagePoints — unmasked pixel centres in arc-seconds.
//   - SubPoints — a uniform subSize×subSize lattice inside each unmasked
//     pixel (oversampling); the lattice mean equals the pixel centre.
//   - BlurringPoints — masked pixels within the convolution kernel's
//     reach of an unmasked pixel; they leak flux into the fit via the PSF.
//   - BorderIndices — positions (in the canonical traversal) of unmasked
//     pixels touching a masked or out-of-bounds 8-neighbour.
//
// Coordinates:
//
//	The origin sits at the geometric centre of the array; y increases
//	upward (toward row 0), x increases rightward (toward higher columns).
//
// Complexity:
//
//   - New: O(rows×cols) time and memory (deep copy).
//   - ImagePoints / BorderIndices: O(rows×cols).
//   - SubPoints: O(unmasked × subSize²).
//   - BlurringPoints: O(rows×cols × kernel area).
//
// Errors:
//
//   - ErrEmptyMask: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadPixelScale: pixel scale not strictly positive.
//   - ErrBadSubSize: sub-grid size below 1.
//   - ErrEvenKernel: kernel dimensions not positive odd integers.
package mask
