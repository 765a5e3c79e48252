// Package lenscore is the coordinate-grid and ray-tracing engine for
// strong gravitational lensing: masks, image/sub/blurring coordinate
// grids, deflection-angle superposition, plane-to-plane tracing, and
// border relocation of divergent source-plane coordinates.
//
// 🚀 What is lenscore?
//
//	A deterministic, pure-computation library that brings together:
//		• mask/     — boolean analysis masks and their canonical pixel traversal
//		• geom/     — (y, x) arc-second points and polar helpers
//		• grids/    — image, oversampled sub, and blurring coordinate grids
//		• profiles/ — mass & light profile evaluators and Galaxy entities
//		• border/   — polynomial border fitting and radial relocation
//
// ✨ Why choose lenscore?
//
//   - Value semantics – grids are immutable once built; every transform
//     returns a new grid, so any intermediate plane can be reconstructed
//   - Stateless operations – aggregation, tracing and relocation are pure
//     functions of their inputs, trivially parallel across model evaluations
//   - Explicit errors – fail-fast validating constructors, sentinel errors,
//     no panics on library paths
//
// Data flow:
//
//	mask → {image, sub, blurring} grids → deflections (Σ over galaxies'
//	mass profiles) → traced grids (position − deflection) → border
//	relocation → downstream pixelized source reconstruction (external).
//
// File I/O, optimizers, pixelization solvers and plotting live outside
// this module and consume it through the narrow interfaces in grids/.
package lenscore
