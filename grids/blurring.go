package grids

import (
	"github.com/skylens/lenscore/geom"
	"github.com/skylens/lenscore/mask"
)

// BlurringGrid is the ordered set of pixels outside the analysis mask
// that lie within the convolution kernel's reach of an unmasked pixel.
// They are excluded from the main fit but still contribute flux through
// instrumental blurring, so their light must be evaluated and traced
// like any other tier. A BlurringGrid has no index relationship to the
// image grid beyond co-existing in the same Collection.
type BlurringGrid struct {
	points []geom.Point
}

// NewBlurringGrid constructs a BlurringGrid from a literal ordered point
// sequence, copying the input.
func NewBlurringGrid(points []geom.Point) BlurringGrid {
	copied := make([]geom.Point, len(points))
	copy(copied, points)

	return BlurringGrid{points: copied}
}

// BlurringFromMask constructs the blurring-region grid of a mask for the
// given convolution kernel shape.
func BlurringFromMask(m *mask.Mask, kernelRows, kernelCols int) (BlurringGrid, error) {
	points, err := m.BlurringPoints(kernelRows, kernelCols)
	if err != nil {
		return BlurringGrid{}, err
	}

	return BlurringGrid{points: points}, nil
}

// Len returns the number of blurring pixels.
func (g BlurringGrid) Len() int { return len(g.points) }

// At returns the point at position i.
func (g BlurringGrid) At(i int) geom.Point { return g.points[i] }

// Deflections evaluates the aggregated deflection field at every
// blurring pixel.
func (g BlurringGrid) Deflections(deflectors []Deflector) BlurringGrid {
	return BlurringGrid{points: DeflectionsAt(g.points, deflectors)}
}

// Traced returns the blurring grid ray-traced to the next plane.
// Returns ErrLengthMismatch if the deflection grid's length differs.
func (g BlurringGrid) Traced(deflections BlurringGrid) (BlurringGrid, error) {
	traced, err := tracedPoints(g.points, deflections.points)
	if err != nil {
		return BlurringGrid{}, err
	}

	return BlurringGrid{points: traced}, nil
}

// Intensities evaluates the aggregated intensity field at every
// blurring pixel.
func (g BlurringGrid) Intensities(emitters []Emitter) []float64 {
	return IntensitiesAt(g.points, emitters)
}
