// Package geom defines the (y, x) arc-second Point used across lenscore,
// plus the polar helpers every other package builds on.
//
// What:
//
//   - Point is an ordered (Y, X) pair in arc-seconds: y increases upward,
//     x increases rightward from the mask's computed origin.
//   - Vector arithmetic: Add, Sub, Scale.
//   - Polar helpers: RadiusFrom (Euclidean distance) and AngleFrom
//     (degrees counter-clockwise from +x, normalized to [0, 360)).
//
// Why:
//
//   - Grids store ordered sequences of Points; deflection fields reuse the
//     same type (a deflection is itself a (dy, dx) pair).
//   - Border fitting and relocation work in (angle, radius) space around a
//     configurable centre.
//
// Angle convention:
//
//	AngleFrom uses atan2(dy, dx), so the point (1, 1) sits at 45°. The
//	argument order is easy to get wrong; the package tests pin it down
//	at several compass points.
//
// Complexity: every operation is O(1).
package geom
