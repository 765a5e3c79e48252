package grids_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/skylens/lenscore/geom"
	"github.com/skylens/lenscore/grids"
	"github.com/skylens/lenscore/mask"
	"github.com/skylens/lenscore/profiles"
)

const tol = 1e-3

// unitSIS returns a single-galaxy deflector list with a unit-Einstein-radius
// isothermal sphere at the origin.
func unitSIS() []grids.Deflector {
	g := profiles.Galaxy{Mass: []profiles.MassProfile{
		profiles.SphericalIsothermal{EinsteinRadius: 1.0},
	}}

	return []grids.Deflector{g}
}

// GridsSuite exercises the per-tier evaluation pipeline: deflection
// aggregation, ray-tracing, and intensity pooling.
type GridsSuite struct {
	suite.Suite
}

func TestGridsSuite(t *testing.T) {
	suite.Run(t, new(GridsSuite))
}

//----------------------------------------------------------------------------//
// ImageGrid
//----------------------------------------------------------------------------//

func (s *GridsSuite) TestImageGrid_CopiesInput() {
	pts := []geom.Point{{Y: 1, X: 1}}
	g := grids.NewImageGrid(pts)
	pts[0] = geom.Point{Y: 9, X: 9}

	s.Equal(geom.Point{Y: 1, X: 1}, g.At(0))
	s.Equal(1, g.Len())
}

func (s *GridsSuite) TestImageGrid_DeflectionsZeroDeflectors() {
	g := grids.NewImageGrid([]geom.Point{{Y: 1, X: 1}, {Y: -1, X: 0}})
	d := g.Deflections(nil)

	s.Equal(2, d.Len())
	s.Equal(geom.Point{}, d.At(0))
	s.Equal(geom.Point{}, d.At(1))
}

func (s *GridsSuite) TestImageGrid_DeflectionsSingleLens() {
	g := grids.NewImageGrid([]geom.Point{{Y: 1, X: 1}})
	d := g.Deflections(unitSIS())

	s.InDelta(0.707, d.At(0).Y, tol)
	s.InDelta(0.707, d.At(0).X, tol)
}

func (s *GridsSuite) TestImageGrid_DeflectionsThreeLensesTriple() {
	g := grids.NewImageGrid([]geom.Point{{Y: 1, X: 1}})
	lens := unitSIS()[0]
	d := g.Deflections([]grids.Deflector{lens, lens, lens})

	s.InDelta(3*0.707, d.At(0).Y, tol)
	s.InDelta(3*0.707, d.At(0).X, tol)
}

func (s *GridsSuite) TestImageGrid_Traced() {
	g := grids.NewImageGrid([]geom.Point{{Y: 1, X: 1}, {Y: -1, X: -1}})
	traced, err := g.Traced(g.Deflections(unitSIS()))
	s.Require().NoError(err)

	s.InDelta(1-0.707, traced.At(0).Y, tol)
	s.InDelta(1-0.707, traced.At(0).X, tol)
	s.InDelta(-1+0.707, traced.At(1).Y, tol)
	s.InDelta(-1+0.707, traced.At(1).X, tol)
}

func (s *GridsSuite) TestImageGrid_TracedLengthMismatch() {
	g := grids.NewImageGrid([]geom.Point{{Y: 1, X: 1}, {Y: -1, X: -1}})
	short := grids.NewImageGrid([]geom.Point{{Y: 0.1, X: 0.1}})

	_, err := g.Traced(short)
	s.Require().ErrorIs(err, grids.ErrLengthMismatch)
}

func (s *GridsSuite) TestImageGrid_Intensities() {
	sersic := profiles.EllipticalSersic{
		AxisRatio: 1.0, Intensity: 2.0, EffectiveRadius: 0.5, SersicIndex: 1.0,
	}
	galaxy := profiles.Galaxy{Light: []profiles.LightProfile{sersic}}
	g := grids.NewImageGrid([]geom.Point{{Y: 0, X: 0.5}, {Y: 0.5, X: 0}})

	vals := g.Intensities([]grids.Emitter{galaxy})
	s.Require().Len(vals, 2)
	s.InDelta(2.0, vals[0], 1e-9)
	s.InDelta(2.0, vals[1], 1e-9)
}

//----------------------------------------------------------------------------//
// SubGrid
//----------------------------------------------------------------------------//

func (s *GridsSuite) TestSubGrid_ConstructionErrors() {
	pts := []geom.Point{{Y: 1, X: 1}, {Y: 1, X: 0}, {Y: 0, X: 1}}

	_, err := grids.NewSubGrid(pts, 0)
	s.Require().ErrorIs(err, grids.ErrBadSubSize)

	// 3 points is not a whole number of 2×2 pixels.
	_, err = grids.NewSubGrid(pts, 2)
	s.Require().ErrorIs(err, grids.ErrLengthMismatch)
}

func (s *GridsSuite) TestSubGrid_ShapeAccessors() {
	pts := []geom.Point{
		{Y: 1, X: 1}, {Y: 1, X: 0}, {Y: 0, X: 1}, {Y: 0, X: 0},
		{Y: 2, X: 2}, {Y: 2, X: 0}, {Y: 0, X: 2}, {Y: 0, X: 0},
	}
	g, err := grids.NewSubGrid(pts, 2)
	s.Require().NoError(err)

	s.Equal(2, g.Pixels())
	s.Equal(2, g.SubSize())
	s.Equal(4, g.SubLen())
	s.Equal(8, g.Len())
	s.Equal(geom.Point{Y: 2, X: 2}, g.At(1, 0))
	s.Equal(geom.Point{Y: 0, X: 1}, g.FlatAt(2))
	s.Equal(geom.Point{Y: 0.5, X: 0.5}, g.PixelMean(0))
	s.Equal(geom.Point{Y: 1, X: 1}, g.PixelMean(1))
}

func (s *GridsSuite) TestSubGrid_DeflectionsPerSubPoint() {
	// Four distinct sub-points in one pixel: each must be evaluated at its
	// own position, not at a pixel representative.
	pts := []geom.Point{{Y: 1, X: 1}, {Y: 1, X: 0}, {Y: -1, X: 0}, {Y: 0, X: -1}}
	g, err := grids.NewSubGrid(pts, 2)
	s.Require().NoError(err)

	d := g.Deflections(unitSIS())
	s.InDelta(0.707, d.FlatAt(0).Y, tol)
	s.InDelta(0.707, d.FlatAt(0).X, tol)
	s.InDelta(1.0, d.FlatAt(1).Y, tol)
	s.InDelta(0.0, d.FlatAt(1).X, tol)
	s.InDelta(-1.0, d.FlatAt(2).Y, tol)
	s.InDelta(-1.0, d.FlatAt(3).X, tol)
}

func (s *GridsSuite) TestSubGrid_Traced() {
	pts := []geom.Point{{Y: 1, X: 1}, {Y: 1, X: 0}, {Y: -1, X: 0}, {Y: 0, X: -1}}
	g, err := grids.NewSubGrid(pts, 2)
	s.Require().NoError(err)

	traced, err := g.Traced(g.Deflections(unitSIS()))
	s.Require().NoError(err)
	s.InDelta(1-0.707, traced.FlatAt(0).Y, tol)
	s.InDelta(1-0.707, traced.FlatAt(0).X, tol)
	s.InDelta(0.0, traced.FlatAt(1).Y, tol)
	s.Equal(2, traced.SubSize())
	s.Equal(1, traced.Pixels())
}

func (s *GridsSuite) TestSubGrid_TracedShapeMismatch() {
	g, err := grids.NewSubGrid(make([]geom.Point, 4), 2)
	s.Require().NoError(err)
	other, err := grids.NewSubGrid(make([]geom.Point, 9), 3)
	s.Require().NoError(err)

	_, err = g.Traced(other)
	s.Require().ErrorIs(err, grids.ErrLengthMismatch)
}

func (s *GridsSuite) TestSubGrid_IntensitiesArePooledMeans() {
	// One pixel whose sub-points sit at radii 0.5 and 1.5 from the origin;
	// with a pure radial emitter the pixel value is the mean of the four
	// individual evaluations.
	pts := []geom.Point{{Y: 0, X: 0.5}, {Y: 0.5, X: 0}, {Y: 0, X: 1.5}, {Y: 1.5, X: 0}}
	g, err := grids.NewSubGrid(pts, 2)
	s.Require().NoError(err)

	sersic := profiles.EllipticalSersic{
		AxisRatio: 1.0, Intensity: 1.0, EffectiveRadius: 1.0, SersicIndex: 1.0,
	}
	galaxy := profiles.Galaxy{Light: []profiles.LightProfile{sersic}}

	var want float64
	for _, p := range pts {
		want += sersic.IntensityAt(p)
	}
	want /= 4.0

	vals := g.Intensities([]grids.Emitter{galaxy})
	s.Require().Len(vals, 1)
	s.InDelta(want, vals[0], 1e-12)
}

func (s *GridsSuite) TestSubGrid_BinValues() {
	g, err := grids.NewSubGrid(make([]geom.Point, 8), 2)
	s.Require().NoError(err)

	binned, err := g.BinValues([]float64{1, 2, 3, 4, 10, 10, 30, 30})
	s.Require().NoError(err)
	s.Equal([]float64{2.5, 20}, binned)

	_, err = g.BinValues([]float64{1, 2, 3})
	s.Require().ErrorIs(err, grids.ErrLengthMismatch)
}

func (s *GridsSuite) TestSubGrid_BinPointsMatchesPixelCentres() {
	m := crossMask(s.T())
	sub, err := grids.SubFromMask(m, 2)
	s.Require().NoError(err)

	image := grids.ImageFromMask(m)
	binned := sub.BinPoints()
	s.Require().Equal(image.Len(), binned.Len())
	for i := 0; i < image.Len(); i++ {
		s.InDelta(image.At(i).Y, binned.At(i).Y, 1e-12)
		s.InDelta(image.At(i).X, binned.At(i).X, 1e-12)
	}
}

//----------------------------------------------------------------------------//
// BlurringGrid
//----------------------------------------------------------------------------//

func (s *GridsSuite) TestBlurringGrid_EvaluatesLikeAnyTier() {
	g := grids.NewBlurringGrid([]geom.Point{{Y: 1, X: 0}, {Y: 0, X: -1}})

	d := g.Deflections(unitSIS())
	s.InDelta(1.0, d.At(0).Y, tol)
	s.InDelta(-1.0, d.At(1).X, tol)

	traced, err := g.Traced(d)
	s.Require().NoError(err)
	s.InDelta(0.0, traced.At(0).Y, tol)
	s.InDelta(0.0, traced.At(1).X, tol)

	_, err = g.Traced(grids.NewBlurringGrid(nil))
	s.Require().ErrorIs(err, grids.ErrLengthMismatch)
}

//----------------------------------------------------------------------------//
// Mask derivation
//----------------------------------------------------------------------------//

// crossMask builds the canonical 3×3 cross at pixel scale 1.0: corners
// masked, centre row and column retained.
func crossMask(t *testing.T) *mask.Mask {
	t.Helper()
	m, err := mask.New([][]bool{
		{true, false, true},
		{false, false, false},
		{true, false, true},
	}, 1.0)
	require.NoError(t, err)

	return m
}

func TestImageFromMask_CanonicalOrder(t *testing.T) {
	g := grids.ImageFromMask(crossMask(t))

	want := []geom.Point{
		{Y: 1, X: 0},
		{Y: 0, X: -1}, {Y: 0, X: 0}, {Y: 0, X: 1},
		{Y: -1, X: 0},
	}
	if diff := cmp.Diff(want, g.Points()); diff != "" {
		t.Fatalf("image grid mismatch (-want +got):\n%s", diff)
	}
}

func TestSubFromMask_LatticeCentredOnPixels(t *testing.T) {
	m, err := mask.New([][]bool{{false}}, 1.0)
	require.NoError(t, err)

	sub, err := grids.SubFromMask(m, 2)
	require.NoError(t, err)

	want := []geom.Point{
		{Y: 0.25, X: -0.25}, {Y: 0.25, X: 0.25},
		{Y: -0.25, X: -0.25}, {Y: -0.25, X: 0.25},
	}
	got := []geom.Point{sub.FlatAt(0), sub.FlatAt(1), sub.FlatAt(2), sub.FlatAt(3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sub lattice mismatch (-want +got):\n%s", diff)
	}
}
