package grids

import (
	"github.com/skylens/lenscore/geom"
	"github.com/skylens/lenscore/mask"
)

// SubGrid oversamples each retained pixel with a uniform subSize×subSize
// lattice. The lattice points are stored in one flat buffer of
// pixels×subSize² points — subSize² consecutive points per pixel, ordered
// row-major within the pixel — with the shape carried as explicit
// metadata rather than a nested array type.
type SubGrid struct {
	points  []geom.Point
	pixels  int
	subSize int
}

// NewSubGrid constructs a SubGrid from a flat point buffer holding
// subSize² consecutive sub-points per pixel. The input is copied.
// Returns ErrBadSubSize if subSize < 1, ErrLengthMismatch if the buffer
// is not a whole number of pixels.
func NewSubGrid(points []geom.Point, subSize int) (SubGrid, error) {
	if subSize < 1 {
		return SubGrid{}, ErrBadSubSize
	}
	subLen := subSize * subSize
	if len(points)%subLen != 0 {
		return SubGrid{}, ErrLengthMismatch
	}
	copied := make([]geom.Point, len(points))
	copy(copied, points)

	return SubGrid{points: copied, pixels: len(points) / subLen, subSize: subSize}, nil
}

// SubFromMask constructs the oversampled grid of a mask's unmasked pixels.
func SubFromMask(m *mask.Mask, subSize int) (SubGrid, error) {
	points, err := m.SubPoints(subSize)
	if err != nil {
		return SubGrid{}, ErrBadSubSize
	}

	return SubGrid{points: points, pixels: len(points) / (subSize * subSize), subSize: subSize}, nil
}

// Pixels returns the number of retained pixels.
func (g SubGrid) Pixels() int { return g.pixels }

// SubSize returns the oversampling factor per pixel axis.
func (g SubGrid) SubSize() int { return g.subSize }

// SubLen returns the number of sub-points per pixel (subSize²).
func (g SubGrid) SubLen() int { return g.subSize * g.subSize }

// Len returns the total number of sub-points in the grid.
func (g SubGrid) Len() int { return len(g.points) }

// At returns sub-point k of pixel i.
func (g SubGrid) At(i, k int) geom.Point { return g.points[i*g.SubLen()+k] }

// FlatAt returns the j-th sub-point of the flat buffer.
func (g SubGrid) FlatAt(j int) geom.Point { return g.points[j] }

// PixelMean returns the arithmetic mean of pixel i's sub-points. For a
// lattice built from a mask this is exactly the pixel centre.
func (g SubGrid) PixelMean(i int) geom.Point {
	subLen := g.SubLen()
	var sum geom.Point
	for k := 0; k < subLen; k++ {
		sum = sum.Add(g.points[i*subLen+k])
	}

	return sum.Scale(1.0 / float64(subLen))
}

// BinPoints reduces the sub-grid to one mean point per pixel, returned
// as an ImageGrid index-aligned with the parent pixels.
func (g SubGrid) BinPoints() ImageGrid {
	out := make([]geom.Point, g.pixels)
	for i := range out {
		out[i] = g.PixelMean(i)
	}

	return ImageGrid{points: out}
}

// BinValues pools one value per sub-point down to one value per pixel by
// arithmetic mean (the oversampling contract).
// Returns ErrLengthMismatch if values does not cover every sub-point.
func (g SubGrid) BinValues(values []float64) ([]float64, error) {
	if len(values) != len(g.points) {
		return nil, ErrLengthMismatch
	}

	return meanPool(values, g.SubLen()), nil
}

// Deflections evaluates the aggregated deflection field at every
// individual sub-point — not a single deflection broadcast from the
// parent pixel — returned as a new SubGrid of (dy, dx) vectors with the
// same shape metadata.
// Complexity: O(Len × len(deflectors)).
func (g SubGrid) Deflections(deflectors []Deflector) SubGrid {
	return SubGrid{points: DeflectionsAt(g.points, deflectors), pixels: g.pixels, subSize: g.subSize}
}

// Traced returns the sub-grid ray-traced to the next plane using its own
// per-sub-point deflection field.
// Returns ErrLengthMismatch if shapes differ.
func (g SubGrid) Traced(deflections SubGrid) (SubGrid, error) {
	if g.subSize != deflections.subSize {
		return SubGrid{}, ErrLengthMismatch
	}
	traced, err := tracedPoints(g.points, deflections.points)
	if err != nil {
		return SubGrid{}, err
	}

	return SubGrid{points: traced, pixels: g.pixels, subSize: g.subSize}, nil
}

// Intensities evaluates the aggregated intensity field at every
// sub-point and pools each pixel's subSize² evaluations to their mean,
// returning one value per pixel.
// Complexity: O(Len × len(emitters)).
func (g SubGrid) Intensities(emitters []Emitter) []float64 {
	return meanPool(IntensitiesAt(g.points, emitters), g.SubLen())
}
