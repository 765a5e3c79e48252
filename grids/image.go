package grids

import (
	"github.com/skylens/lenscore/geom"
	"github.com/skylens/lenscore/mask"
)

// ImageGrid is an ordered, index-stable sequence of arc-second pixel
// centres. Position i refers to the same physical pixel for the grid's
// lifetime; the order is the mask's canonical traversal. An ImageGrid
// also carries deflection fields and traced positions, which share the
// same per-pixel (y, x) shape.
type ImageGrid struct {
	points []geom.Point
}

// NewImageGrid constructs an ImageGrid from a literal ordered point
// sequence, copying the input so the grid is immutable afterwards.
func NewImageGrid(points []geom.Point) ImageGrid {
	copied := make([]geom.Point, len(points))
	copy(copied, points)

	return ImageGrid{points: copied}
}

// ImageFromMask constructs the regular grid of a mask's unmasked pixel
// centres in canonical order.
func ImageFromMask(m *mask.Mask) ImageGrid {
	return ImageGrid{points: m.ImagePoints()}
}

// Len returns the number of pixels in the grid.
func (g ImageGrid) Len() int { return len(g.points) }

// At returns the point at position i.
func (g ImageGrid) At(i int) geom.Point { return g.points[i] }

// Points returns a copy of the grid's ordered points.
func (g ImageGrid) Points() []geom.Point {
	out := make([]geom.Point, len(g.points))
	copy(out, g.points)

	return out
}

// Deflections evaluates the aggregated deflection field of the given
// deflectors at every grid point, returned as a new grid of (dy, dx)
// vectors index-aligned with the receiver.
// Complexity: O(Len × len(deflectors)).
func (g ImageGrid) Deflections(deflectors []Deflector) ImageGrid {
	return ImageGrid{points: DeflectionsAt(g.points, deflectors)}
}

// Traced returns the grid ray-traced to the next plane:
// traced = position − deflection, pointwise.
// Returns ErrLengthMismatch if the deflection grid's length differs.
func (g ImageGrid) Traced(deflections ImageGrid) (ImageGrid, error) {
	traced, err := tracedPoints(g.points, deflections.points)
	if err != nil {
		return ImageGrid{}, err
	}

	return ImageGrid{points: traced}, nil
}

// Intensities evaluates the aggregated intensity field of the given
// emitters at every grid point.
// Complexity: O(Len × len(emitters)).
func (g ImageGrid) Intensities(emitters []Emitter) []float64 {
	return IntensitiesAt(g.points, emitters)
}
