// Package grids defines the evaluator contracts, options, and sentinel
// errors for the coordinate-grid family.
package grids

import (
	"errors"

	"github.com/skylens/lenscore/geom"
)

// Sentinel errors for grid construction and combination.
var (
	// ErrBadSubSize indicates a sub-grid size below 1.
	ErrBadSubSize = errors.New("grids: sub-grid size must be at least 1")
	// ErrLengthMismatch indicates two grids of differing point counts were combined.
	ErrLengthMismatch = errors.New("grids: grids have differing point counts")
	// ErrPresenceMismatch indicates optional-grid presence differs between two collections.
	ErrPresenceMismatch = errors.New("grids: sub/blurring presence differs between collections")
)

// Deflector is any entity contributing a deflection-angle field, such as
// a galaxy carrying mass profiles. DeflectionAt must be a pure function.
type Deflector interface {
	// DeflectionAt returns the (dy, dx) deflection contributed at p.
	DeflectionAt(p geom.Point) geom.Point
}

// Emitter is any entity contributing a scalar intensity field, such as a
// galaxy carrying light profiles. IntensityAt must be a pure function.
type Emitter interface {
	// IntensityAt returns the surface brightness contributed at p.
	IntensityAt(p geom.Point) float64
}

// Options selects which grids FromMask derives and how finely.
//
// Fields:
//   - SubSize    — oversampling factor per pixel axis; 0 omits the
//     sub-grid entirely (explicit absence, not an error).
//   - KernelRows — convolution kernel height; 0 omits the blurring grid.
//   - KernelCols — convolution kernel width; 0 omits the blurring grid.
type Options struct {
	SubSize    int
	KernelRows int
	KernelCols int
}

// DefaultOptions returns Options deriving all three grids: a 2×2
// sub-grid and a 3×3 blurring kernel.
func DefaultOptions() Options {
	return Options{SubSize: 2, KernelRows: 3, KernelCols: 3}
}
