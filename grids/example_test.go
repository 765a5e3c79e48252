package grids_test

import (
	"fmt"

	"github.com/skylens/lenscore/grids"
	"github.com/skylens/lenscore/mask"
	"github.com/skylens/lenscore/profiles"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCollection_Traced
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 3×3 cross-shaped mask at 1.0″/pixel, lensed by a single isothermal
//	sphere of Einstein radius 0.5 at the origin. Every retained pixel
//	centre is deflected radially inward by 0.5″ and the central pixel,
//	sitting on the lens itself, does not move.
//
// Options:
//   - SubSize = 2            (2×2 oversampling lattice per pixel)
//   - KernelRows/Cols = 3×3  (blurring region one pixel deep)
//
// Use case:
//
//	The image-plane → source-plane step of a strong-lens model
//	evaluation.
//
// Complexity: O(pixels × profiles) time
func ExampleCollection_Traced() {
	m, err := mask.New([][]bool{
		{true, false, true},
		{false, false, false},
		{true, false, true},
	}, 1.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	col, err := grids.FromMask(m, grids.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	lens := profiles.Galaxy{Mass: []profiles.MassProfile{
		profiles.SphericalIsothermal{EinsteinRadius: 0.5},
	}}

	traced, err := col.Traced(col.Deflections([]grids.Deflector{lens}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for i := 0; i < traced.Image.Len(); i++ {
		p := traced.Image.At(i)
		fmt.Printf("(%.1f, %.1f)\n", p.Y, p.X)
	}
	// Output:
	// (0.5, 0.0)
	// (0.0, -0.5)
	// (0.0, 0.0)
	// (0.0, 0.5)
	// (-0.5, 0.0)
}
