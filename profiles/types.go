// Package profiles defines the evaluator contracts and the Galaxy entity.
package profiles

import "github.com/skylens/lenscore/geom"

// MassProfile contributes a deflection-angle field. Implementations must
// be pure functions of the point.
type MassProfile interface {
	// DeflectionAt returns the (dy, dx) deflection at p in arc-seconds.
	DeflectionAt(p geom.Point) geom.Point
}

// LightProfile contributes a surface-brightness field. Implementations
// must be pure functions of the point.
type LightProfile interface {
	// IntensityAt returns the surface brightness at p.
	IntensityAt(p geom.Point) float64
}

// Galaxy is a field-bearing entity: a redshift plus ordered mass and
// light profile lists. It satisfies both grid evaluator contracts by
// linear superposition over its profiles; a galaxy with no profiles
// contributes a zero field, which is valid, not an error.
type Galaxy struct {
	Redshift float64
	Mass     []MassProfile
	Light    []LightProfile
}

// DeflectionAt returns the vector sum of the galaxy's mass profiles'
// deflections at p.
func (g Galaxy) DeflectionAt(p geom.Point) geom.Point {
	var sum geom.Point
	for _, m := range g.Mass {
		sum = sum.Add(m.DeflectionAt(p))
	}

	return sum
}

// IntensityAt returns the scalar sum of the galaxy's light profiles'
// intensities at p.
func (g Galaxy) IntensityAt(p geom.Point) float64 {
	var sum float64
	for _, l := range g.Light {
		sum += l.IntensityAt(p)
	}

	return sum
}
