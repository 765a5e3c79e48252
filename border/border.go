package border

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/skylens/lenscore/geom"
	"github.com/skylens/lenscore/grids"
)

// Border designates the trusted boundary subset of a coordinate grid:
// indices into the grid's canonical order, the centre angles and radii
// are measured from, and the degree of the angle→radius polynomial.
// A Border is configuration only; Fit produces the usable Boundary.
type Border struct {
	pixels []int
	degree int
	centre geom.Point
}

// New constructs a Border over the given grid indices. The index slice
// is copied. Returns ErrNoBorderPixels or ErrBadDegree.
func New(pixels []int, opts Options) (*Border, error) {
	if len(pixels) == 0 {
		return nil, ErrNoBorderPixels
	}
	if opts.Degree < 1 {
		return nil, ErrBadDegree
	}
	copied := make([]int, len(pixels))
	copy(copied, pixels)

	return &Border{pixels: copied, degree: opts.Degree, centre: opts.Centre}, nil
}

// Len returns the number of designated border pixels.
func (b *Border) Len() int { return len(b.pixels) }

// Centre returns the configured centre.
func (b *Border) Centre() geom.Point { return b.centre }

// Degree returns the configured polynomial degree.
func (b *Border) Degree() int { return b.degree }

// Fit least-squares fits the angle→radius polynomial over the border
// pixels of grid — and only those pixels. Border points need not be
// sorted by angle. Requires at least degree+1 border pixels
// (ErrTooFewBorderPixels); every index must address the grid
// (ErrIndexOutOfRange).
// Complexity: O(n·degree²).
func (b *Border) Fit(grid grids.ImageGrid) (*Boundary, error) {
	n := len(b.pixels)
	if n < b.degree+1 {
		return nil, ErrTooFewBorderPixels
	}

	// Vandermonde system in ascending powers of theta.
	cols := b.degree + 1
	a := mat.NewDense(n, cols, nil)
	radii := mat.NewVecDense(n, nil)
	for row, idx := range b.pixels {
		if idx < 0 || idx >= grid.Len() {
			return nil, fmt.Errorf("%w: index %d, grid length %d", ErrIndexOutOfRange, idx, grid.Len())
		}
		p := grid.At(idx)
		theta := p.AngleFrom(b.centre)
		pow := 1.0
		for c := 0; c < cols; c++ {
			a.Set(row, c, pow)
			pow *= theta
		}
		radii.SetVec(row, p.RadiusFrom(b.centre))
	}

	var qr mat.QR
	qr.Factorize(a)
	var coeffs mat.VecDense
	if err := qr.SolveVecTo(&coeffs, false, radii); err != nil {
		return nil, fmt.Errorf("border: polynomial fit: %w", err)
	}

	out := make([]float64, cols)
	copy(out, coeffs.RawVector().Data)

	return &Boundary{centre: b.centre, coeffs: out}, nil
}

// RelocateCollection fits the boundary from the collection's image grid
// and relocates the image grid and, when present, the sub-grid using
// that single fit. The blurring tier does not participate in
// source-plane reconstruction and is absent from the result.
func (b *Border) RelocateCollection(c grids.Collection) (grids.Collection, error) {
	boundary, err := b.Fit(c.Image)
	if err != nil {
		return grids.Collection{}, err
	}

	out := grids.Collection{Image: boundary.RelocateGrid(c.Image)}
	if c.Sub != nil {
		sub, err := boundary.RelocateSub(*c.Sub)
		if err != nil {
			return grids.Collection{}, err
		}
		out.Sub = &sub
	}

	return out, nil
}

// Boundary is a fitted angle→radius polynomial about a centre. It is
// immutable; relocation methods are pure functions.
type Boundary struct {
	centre geom.Point
	coeffs []float64 // ascending powers
}

// RadiusAt evaluates the fitted polynomial at thetaDeg by Horner's rule.
func (f *Boundary) RadiusAt(thetaDeg float64) float64 {
	r := 0.0
	for i := len(f.coeffs) - 1; i >= 0; i-- {
		r = r*thetaDeg + f.coeffs[i]
	}

	return r
}

// MoveFactor returns predictedRadius/pointRadius for p, clamped so a
// factor above 1.0 becomes exactly 1.0 — points already inside the
// boundary are never moved outward. A point at the centre has radius 0
// and never needs relocation, so its factor is 1.0 rather than an
// infinity.
func (f *Boundary) MoveFactor(p geom.Point) float64 {
	radius := p.RadiusFrom(f.centre)
	if radius == 0 {
		return 1.0
	}
	factor := f.RadiusAt(p.AngleFrom(f.centre)) / radius
	if factor > 1.0 {
		return 1.0
	}

	return factor
}

// Relocate scales p's offset from the centre by its move factor:
// centre + (p − centre)·moveFactor. A factor of 1.0 is a no-op.
func (f *Boundary) Relocate(p geom.Point) geom.Point {
	return f.centre.Add(p.Sub(f.centre).Scale(f.MoveFactor(p)))
}

// RelocateGrid relocates every point of a coordinate grid, returning a
// new grid. Points inside the boundary are unchanged.
// Complexity: O(Len × degree).
func (f *Boundary) RelocateGrid(grid grids.ImageGrid) grids.ImageGrid {
	out := make([]geom.Point, grid.Len())
	for i := range out {
		out[i] = f.Relocate(grid.At(i))
	}

	return grids.NewImageGrid(out)
}

// RelocateSub relocates every sub-point of a sub-grid using this
// boundary — the one fitted from the MAIN grid — never a per-sub-point
// refit. Any sub-point outside the boundary is relocated, including
// sub-points of pixels that are themselves border pixels.
// Complexity: O(Len × degree).
func (f *Boundary) RelocateSub(sub grids.SubGrid) (grids.SubGrid, error) {
	out := make([]geom.Point, sub.Len())
	for j := range out {
		out[j] = f.Relocate(sub.FlatAt(j))
	}

	return grids.NewSubGrid(out, sub.SubSize())
}
