package mask

import (
	"github.com/skylens/lenscore/geom"
)

// New constructs a Mask from a non-empty, rectangular 2D slice and a
// positive arc-second pixel scale. The input is deep-copied so the Mask
// is immutable afterwards.
// Returns ErrEmptyMask, ErrNonRectangular or ErrBadPixelScale.
// Complexity: O(rows×cols) time and memory.
func New(cells [][]bool, pixelScale float64) (*Mask, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyMask
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if pixelScale <= 0 {
		return nil, ErrBadPixelScale
	}
	// Deep copy to prevent external mutation
	copied := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		copied[r] = make([]bool, cols)
		copy(copied[r], cells[r])
	}

	return &Mask{rows: rows, cols: cols, pixelScale: pixelScale, cells: copied}, nil
}

// Unmasked constructs a fully-unmasked Mask of the given shape, as used
// when simulating images with no analysis mask applied.
func Unmasked(rows, cols int, pixelScale float64) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyMask
	}
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}

	return New(cells, pixelScale)
}

// Rows returns the number of pixel rows.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the number of pixel columns.
func (m *Mask) Cols() int { return m.cols }

// PixelScale returns the arc-second size of one pixel.
func (m *Mask) PixelScale() float64 { return m.pixelScale }

// Masked reports whether pixel (row, col) is excluded from the fit.
// Out-of-bounds positions count as masked.
func (m *Mask) Masked(row, col int) bool {
	if !m.InBounds(row, col) {
		return true
	}

	return m.cells[row][col]
}

// InBounds reports whether (row, col) lies within the array.
// Complexity: O(1).
func (m *Mask) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// UnmaskedCount returns the number of pixels included in the fit.
func (m *Mask) UnmaskedCount() int {
	n := 0
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if !m.cells[r][c] {
				n++
			}
		}
	}

	return n
}

// Centre returns the fractional (row, col) pixel indices of the array's
// geometric centre. The arc-second origin sits here; for even dimensions
// it falls between pixels.
func (m *Mask) Centre() (row, col float64) {
	return float64(m.rows-1) / 2.0, float64(m.cols-1) / 2.0
}

// PointOf converts pixel indices to the arc-second centre of that pixel.
// The origin is the geometric centre of the array; y increases toward
// row 0, x increases toward higher columns.
// Complexity: O(1).
func (m *Mask) PointOf(row, col int) geom.Point {
	centreRow, centreCol := m.Centre()

	return geom.Point{
		Y: (centreRow - float64(row)) * m.pixelScale,
		X: (float64(col) - centreCol) * m.pixelScale,
	}
}

// ImagePoints returns the arc-second centres of all unmasked pixels in
// the canonical traversal order (row-major, top-to-bottom, left-to-right).
// Complexity: O(rows×cols).
func (m *Mask) ImagePoints() []geom.Point {
	points := make([]geom.Point, 0, m.UnmaskedCount())
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if !m.cells[r][c] {
				points = append(points, m.PointOf(r, c))
			}
		}
	}

	return points
}

// SubPoints returns, for every unmasked pixel in canonical order, the
// subSize×subSize uniform lattice of sub-pixel centres, row-major within
// the pixel from its top-left. The flat slice holds subSize² consecutive
// points per pixel; the mean of each pixel's lattice is exactly its
// centre, and subSize=1 yields the centre itself.
// Returns ErrBadSubSize if subSize < 1.
// Complexity: O(unmasked × subSize²).
func (m *Mask) SubPoints(subSize int) ([]geom.Point, error) {
	if subSize < 1 {
		return nil, ErrBadSubSize
	}
	step := m.pixelScale / float64(subSize)
	half := m.pixelScale / 2.0

	points := make([]geom.Point, 0, m.UnmaskedCount()*subSize*subSize)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.cells[r][c] {
				continue
			}
			centre := m.PointOf(r, c)
			for sr := 0; sr < subSize; sr++ {
				y := centre.Y + half - (float64(sr)+0.5)*step
				for sc := 0; sc < subSize; sc++ {
					x := centre.X - half + (float64(sc)+0.5)*step
					points = append(points, geom.Point{Y: y, X: x})
				}
			}
		}
	}

	return points, nil
}

// BlurringPoints returns the arc-second centres of pixels that are masked
// in the main fit but lie within ((kernelRows−1)/2, (kernelCols−1)/2) of
// an unmasked pixel, in canonical order. These pixels contribute flux to
// the fit through instrumental convolution only. Kernel reach beyond the
// array edge is truncated silently.
// Returns ErrEvenKernel unless both dimensions are positive odd integers.
// Complexity: O(rows×cols × kernel area).
func (m *Mask) BlurringPoints(kernelRows, kernelCols int) ([]geom.Point, error) {
	blurring, err := m.blurringCells(kernelRows, kernelCols)
	if err != nil {
		return nil, err
	}
	points := make([]geom.Point, 0)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if blurring[r][c] {
				points = append(points, m.PointOf(r, c))
			}
		}
	}

	return points, nil
}

// blurringCells marks every masked pixel reachable from an unmasked pixel
// within the kernel's half-extent.
func (m *Mask) blurringCells(kernelRows, kernelCols int) ([][]bool, error) {
	if kernelRows < 1 || kernelCols < 1 || kernelRows%2 == 0 || kernelCols%2 == 0 {
		return nil, ErrEvenKernel
	}
	reachR, reachC := (kernelRows-1)/2, (kernelCols-1)/2

	blurring := make([][]bool, m.rows)
	for r := range blurring {
		blurring[r] = make([]bool, m.cols)
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.cells[r][c] {
				continue
			}
			for dr := -reachR; dr <= reachR; dr++ {
				for dc := -reachC; dc <= reachC; dc++ {
					nr, nc := r+dr, c+dc
					if m.InBounds(nr, nc) && m.cells[nr][nc] {
						blurring[nr][nc] = true
					}
				}
			}
		}
	}

	return blurring, nil
}

// BorderIndices returns the positions, in the canonical traversal, of
// unmasked pixels that touch a masked or out-of-bounds 8-neighbour.
// These pixels designate the trusted boundary used for border fitting.
// Complexity: O(rows×cols).
func (m *Mask) BorderIndices() []int {
	indices := make([]int, 0)
	i := 0
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.cells[r][c] {
				continue
			}
			if m.onBorder(r, c) {
				indices = append(indices, i)
			}
			i++
		}
	}

	return indices
}

// onBorder reports whether unmasked pixel (row, col) has a masked or
// out-of-bounds 8-neighbour.
func (m *Mask) onBorder(row, col int) bool {
	for _, d := range neighborOffsets {
		if m.Masked(row+d[0], col+d[1]) {
			return true
		}
	}

	return false
}
