package geom

import "math"

// DegreesPerCircle is the full turn used when normalizing angles.
const DegreesPerCircle = 360.0

// Point is a (y, x) position in arc-seconds. The same type carries
// deflection vectors, which are (dy, dx) pairs in the same units.
type Point struct {
	Y, X float64
}

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point {
	return Point{Y: p.Y + q.Y, X: p.X + q.X}
}

// Sub returns p − q component-wise.
func (p Point) Sub(q Point) Point {
	return Point{Y: p.Y - q.Y, X: p.X - q.X}
}

// Scale returns p with both components multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{Y: p.Y * f, X: p.X * f}
}

// RadiusFrom returns the Euclidean distance from centre to p.
func (p Point) RadiusFrom(centre Point) float64 {
	return math.Hypot(p.Y-centre.Y, p.X-centre.X)
}

// AngleFrom returns the angle of p about centre in degrees, measured
// counter-clockwise from the +x axis and normalized into [0, 360).
// Point (1, 1) about the origin is 45°.
func (p Point) AngleFrom(centre Point) float64 {
	theta := math.Atan2(p.Y-centre.Y, p.X-centre.X) * (180.0 / math.Pi)
	if theta < 0 {
		theta += DegreesPerCircle
	}

	return theta
}
