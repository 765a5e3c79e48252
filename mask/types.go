// Package mask defines the Mask type and sentinel errors for
// github.com/skylens/lenscore.
package mask

import "errors"

// Sentinel errors for mask construction and derivation.
var (
	// ErrEmptyMask indicates the input array has no rows or no columns.
	ErrEmptyMask = errors.New("mask: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("mask: all rows must have the same length")
	// ErrBadPixelScale indicates a non-positive arc-second pixel scale.
	ErrBadPixelScale = errors.New("mask: pixel scale must be positive")
	// ErrBadSubSize indicates a sub-grid size below 1.
	ErrBadSubSize = errors.New("mask: sub-grid size must be at least 1")
	// ErrEvenKernel indicates kernel dimensions that are not positive odd integers.
	ErrEvenKernel = errors.New("mask: kernel dimensions must be positive and odd")
)

// Mask is an immutable boolean analysis mask plus its pixel scale.
// Cell value true means the pixel is excluded from the main fit.
// Rows and Cols give the array dimensions; PixelScale is in arc-seconds
// per pixel. neighborOffsets is the fixed 8-neighbourhood used for
// border detection.
type Mask struct {
	rows, cols int
	pixelScale float64
	cells      [][]bool
}

// neighborOffsets is the 8-connected neighbourhood (row, col deltas) used
// when classifying border pixels.
var neighborOffsets = [][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
