package grids

import (
	"github.com/skylens/lenscore/mask"
)

// Collection aggregates the image grid (always present) with the
// optional sub and blurring grids, and propagates pipeline operations
// over all present tiers uniformly. Absent tiers are nil — a valid,
// distinct state that every operation preserves end-to-end: nothing
// fabricates a grid that was absent, nothing drops one that was present.
type Collection struct {
	Image    ImageGrid
	Sub      *SubGrid
	Blurring *BlurringGrid
}

// NewCollection wraps an image grid with optional sub and blurring
// grids; pass nil for an absent tier.
func NewCollection(image ImageGrid, sub *SubGrid, blurring *BlurringGrid) Collection {
	return Collection{Image: image, Sub: sub, Blurring: blurring}
}

// FromMask derives a Collection from a mask. opts.SubSize = 0 omits the
// sub-grid; opts.KernelRows/KernelCols = 0 omits the blurring grid.
// Returns mask.ErrEvenKernel or ErrBadSubSize on invalid options.
func FromMask(m *mask.Mask, opts Options) (Collection, error) {
	if opts.SubSize < 0 {
		return Collection{}, ErrBadSubSize
	}
	col := Collection{Image: ImageFromMask(m)}
	if opts.SubSize > 0 {
		sub, err := SubFromMask(m, opts.SubSize)
		if err != nil {
			return Collection{}, err
		}
		col.Sub = &sub
	}
	if opts.KernelRows > 0 || opts.KernelCols > 0 {
		blurring, err := BlurringFromMask(m, opts.KernelRows, opts.KernelCols)
		if err != nil {
			return Collection{}, err
		}
		col.Blurring = &blurring
	}

	return col, nil
}

// HasSub reports whether the sub-grid tier is present.
func (c Collection) HasSub() bool { return c.Sub != nil }

// HasBlurring reports whether the blurring tier is present.
func (c Collection) HasBlurring() bool { return c.Blurring != nil }

// Deflections evaluates the aggregated deflection field of the given
// deflectors on every present tier, returning a new Collection with the
// same optional-presence shape: present grids are replaced by their
// per-point deflection vectors, absent grids remain absent.
func (c Collection) Deflections(deflectors []Deflector) Collection {
	out := Collection{Image: c.Image.Deflections(deflectors)}
	if c.Sub != nil {
		sub := c.Sub.Deflections(deflectors)
		out.Sub = &sub
	}
	if c.Blurring != nil {
		blurring := c.Blurring.Deflections(deflectors)
		out.Blurring = &blurring
	}

	return out
}

// Traced ray-traces every present tier to the next plane using the
// matching tier of the deflection collection. The two collections must
// have identical optional-presence shape; a sub-grid deflection supplied
// for a collection with no sub-grid (or vice versa) is a configuration
// error.
// Returns ErrPresenceMismatch on shape disagreement, ErrLengthMismatch
// on per-tier length disagreement.
func (c Collection) Traced(deflections Collection) (Collection, error) {
	if c.HasSub() != deflections.HasSub() || c.HasBlurring() != deflections.HasBlurring() {
		return Collection{}, ErrPresenceMismatch
	}

	image, err := c.Image.Traced(deflections.Image)
	if err != nil {
		return Collection{}, err
	}
	out := Collection{Image: image}

	if c.Sub != nil {
		sub, err := c.Sub.Traced(*deflections.Sub)
		if err != nil {
			return Collection{}, err
		}
		out.Sub = &sub
	}
	if c.Blurring != nil {
		blurring, err := c.Blurring.Traced(*deflections.Blurring)
		if err != nil {
			return Collection{}, err
		}
		out.Blurring = &blurring
	}

	return out, nil
}
