// Package profiles provides the mass and light profile evaluators fed to
// the grid engine, and the Galaxy entity that owns ordered lists of them.
//
// What:
//
//   - MassProfile — DeflectionAt(point) → (dy, dx), a pure function.
//   - LightProfile — IntensityAt(point) → scalar, a pure function.
//   - SphericalIsothermal — constant-magnitude radial deflection θ_E·r̂.
//   - PointMass — deflection θ_E²/r along r̂.
//   - ExternalShear — the linear tidal field of unmodelled neighbours.
//   - EllipticalSersic — the standard Sérsic surface-brightness law on an
//     elliptical radius.
//   - Galaxy — redshift plus ordered mass/light profile lists; satisfies
//     the grids.Deflector and grids.Emitter contracts by summing its
//     profiles' contributions. Zero profiles contribute a zero field.
//
// Why:
//
//	Grids evaluate fields without any profile-specific logic; profiles
//	carry no grid bookkeeping. Each profile is a declarative parameter
//	struct — named, typed fields, no reflection or runtime signature
//	inspection.
//
// Numerical notes:
//
//   - Radial profiles guard the centre: a point exactly at a profile's
//     centre receives zero deflection rather than NaN.
//   - The Sérsic k(n) normalisation uses the standard series expansion.
//
// Complexity: every evaluation is O(1).
package profiles
