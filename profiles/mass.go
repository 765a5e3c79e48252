package profiles

import (
	"math"

	"github.com/skylens/lenscore/geom"
)

// SphericalIsothermal is the singular isothermal sphere (SIS): the
// deflection has constant magnitude EinsteinRadius and points radially
// away from the profile centre, so every image of a background source
// forms at the Einstein radius. At (1, 1) with EinsteinRadius 1 the
// deflection is (√2/2, √2/2) ≈ (0.707, 0.707).
type SphericalIsothermal struct {
	Centre         geom.Point
	EinsteinRadius float64
}

// DeflectionAt returns EinsteinRadius · r̂ for the offset from Centre.
// A point exactly at the centre deflects by zero.
func (s SphericalIsothermal) DeflectionAt(p geom.Point) geom.Point {
	d := p.Sub(s.Centre)
	r := math.Hypot(d.Y, d.X)
	if r == 0 {
		return geom.Point{}
	}

	return d.Scale(s.EinsteinRadius / r)
}

// PointMass deflects with magnitude EinsteinRadius²/r along r̂ — the
// lens equation of a point-like deflector.
type PointMass struct {
	Centre         geom.Point
	EinsteinRadius float64
}

// DeflectionAt returns EinsteinRadius²/r · r̂ for the offset from Centre.
// A point exactly at the centre deflects by zero.
func (m PointMass) DeflectionAt(p geom.Point) geom.Point {
	d := p.Sub(m.Centre)
	r := math.Hypot(d.Y, d.X)
	if r == 0 {
		return geom.Point{}
	}

	return d.Scale(m.EinsteinRadius * m.EinsteinRadius / (r * r))
}

// ExternalShear is the linear tidal field of structure outside the
// modelled lens: deflection (dx, dy) = (γ₁x + γ₂y, γ₂x − γ₁y) about the
// origin of the plane.
type ExternalShear struct {
	Gamma1, Gamma2 float64
}

// DeflectionAt applies the shear matrix to p.
func (s ExternalShear) DeflectionAt(p geom.Point) geom.Point {
	return geom.Point{
		Y: s.Gamma2*p.X - s.Gamma1*p.Y,
		X: s.Gamma1*p.X + s.Gamma2*p.Y,
	}
}
