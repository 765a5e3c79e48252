package profiles

import (
	"math"

	"github.com/skylens/lenscore/geom"
)

// EllipticalSersic is the Sérsic surface-brightness law
// I(r) = Intensity · exp(−k·((r/EffectiveRadius)^(1/n) − 1)) evaluated on
// an elliptical radius: coordinates are shifted to Centre, rotated by
// PhiDeg (counter-clockwise from +x, the position angle of the major
// axis), and the minor axis compressed by AxisRatio.
type EllipticalSersic struct {
	Centre          geom.Point
	AxisRatio       float64
	PhiDeg          float64
	Intensity       float64
	EffectiveRadius float64
	SersicIndex     float64
}

// IntensityAt returns the Sérsic surface brightness at p.
func (s EllipticalSersic) IntensityAt(p geom.Point) float64 {
	r := s.ellipticalRadius(p)
	k := sersicConstant(s.SersicIndex)

	return s.Intensity * math.Exp(-k*(math.Pow(r/s.EffectiveRadius, 1.0/s.SersicIndex)-1.0))
}

// ellipticalRadius rotates the offset from Centre into the profile frame
// and returns sqrt(x'² + (y'/q)²).
func (s EllipticalSersic) ellipticalRadius(p geom.Point) float64 {
	d := p.Sub(s.Centre)
	phi := s.PhiDeg * (math.Pi / 180.0)
	cos, sin := math.Cos(phi), math.Sin(phi)
	xp := d.X*cos + d.Y*sin
	yp := -d.X*sin + d.Y*cos

	return math.Sqrt(xp*xp + (yp/s.AxisRatio)*(yp/s.AxisRatio))
}

// sersicConstant is the series expansion of k(n), chosen so that
// EffectiveRadius encloses half the profile's total light.
func sersicConstant(n float64) float64 {
	return 2.0*n - 1.0/3.0 + 4.0/(405.0*n) + 46.0/(25515.0*n*n) +
		131.0/(1148175.0*n*n*n) - 2194697.0/(30690717750.0*n*n*n*n)
}
