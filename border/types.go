// Package border defines options and sentinel errors for border fitting
// and relocation.
package border

import (
	"errors"

	"github.com/skylens/lenscore/geom"
)

// Sentinel errors for border configuration and fitting.
var (
	// ErrNoBorderPixels indicates an empty border index set.
	ErrNoBorderPixels = errors.New("border: border pixel set must be non-empty")
	// ErrBadDegree indicates a polynomial degree below 1.
	ErrBadDegree = errors.New("border: polynomial degree must be at least 1")
	// ErrTooFewBorderPixels indicates fewer border pixels than degree+1.
	ErrTooFewBorderPixels = errors.New("border: fitting needs at least degree+1 border pixels")
	// ErrIndexOutOfRange indicates a border index outside the grid.
	ErrIndexOutOfRange = errors.New("border: border index outside grid")
)

// DefaultDegree is the polynomial degree used when none is configured.
const DefaultDegree = 3

// Options configures a Border.
//
// Fields:
//   - Degree — polynomial degree of the angle→radius fit (default 3).
//   - Centre — the point angles and radii are measured from
//     (default the origin).
type Options struct {
	Degree int
	Centre geom.Point
}

// DefaultOptions returns Options with Degree=3 and the centre at the
// origin.
func DefaultOptions() Options {
	return Options{Degree: DefaultDegree}
}
