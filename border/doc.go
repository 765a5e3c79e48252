// Package border fits a smooth angular boundary to a trusted subset of a
// coordinate grid and relocates any point outside that boundary radially
// back onto it.
//
// What:
//
//   - Border — the configuration: indices of the designated border pixels
//     within a grid's canonical order, a centre, and a polynomial degree.
//   - Boundary — the result of fitting: a least-squares polynomial
//     mapping angle (degrees) → radius over the border pixels only.
//   - MoveFactor — predictedRadius/pointRadius, clamped to at most 1.0;
//     points already inside the boundary are never moved outward, and a
//     point at the centre never needs relocation (factor 1.0).
//   - Relocate — centre + (point − centre) · moveFactor.
//   - RelocateGrid / RelocateSub — bulk relocation; a sub-grid is always
//     relocated by the MAIN grid's fitted boundary, never re-fit per
//     sub-point. Any point outside the boundary is relocated regardless
//     of whether it nominally belongs to the border set.
//
// Why:
//
//	Ray-tracing image-plane coordinates into the source plane can send
//	some points to implausibly large radii under numerical or model
//	pathologies, corrupting pixelized source reconstruction downstream.
//	Snapping such points onto a boundary fitted from the mask border
//	(itself traced into the source plane) keeps the inversion stable.
//
// Angle convention:
//
//	theta = degrees(atan2(y−cy, x−cx)) normalized to [0, 360); 0° along
//	+x, counter-clockwise; the point (1, 1) sits at 45°.
//
// Fitting:
//
//	The Vandermonde system over (theta, radius) pairs is solved by QR
//	least squares (gonum/mat). Coefficients are stored lowest power
//	first and evaluated by Horner's rule. Border points need not be
//	sorted by angle. Callers must supply border pixels spanning distinct
//	angular sectors; coincident angles can leave the system
//	ill-conditioned and are not validated here.
//
// Errors:
//
//   - ErrNoBorderPixels: the border index set is empty.
//   - ErrBadDegree: polynomial degree below 1.
//   - ErrTooFewBorderPixels: fewer border pixels than degree+1.
//   - ErrIndexOutOfRange: a border index does not address the grid.
//
// Complexity:
//
//   - Fit: O(n·d²) for n border pixels, degree d.
//   - MoveFactor/Relocate: O(d).
//   - RelocateGrid/RelocateSub: O(points × d).
package border
