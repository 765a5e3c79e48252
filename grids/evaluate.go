package grids

import (
	"gonum.org/v1/gonum/floats"

	"github.com/skylens/lenscore/geom"
)

// DeflectionsAt computes, for every point, the vector sum of each
// deflector's contribution. Superposition is linear and order-independent;
// zero deflectors yield an all-zero field of the same length, not an error.
// This is the aggregation primitive every grid tier evaluates through.
// Complexity: O(len(points) × len(deflectors)).
func DeflectionsAt(points []geom.Point, deflectors []Deflector) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		var sum geom.Point
		for _, d := range deflectors {
			sum = sum.Add(d.DeflectionAt(p))
		}
		out[i] = sum
	}

	return out
}

// IntensitiesAt computes, for every point, the scalar sum of each
// emitter's contribution. Zero emitters yield an all-zero field.
// Complexity: O(len(points) × len(emitters)).
func IntensitiesAt(points []geom.Point, emitters []Emitter) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		var sum float64
		for _, e := range emitters {
			sum += e.IntensityAt(p)
		}
		out[i] = sum
	}

	return out
}

// tracedPoints applies the single-plane ray-trace transform
// traced = position − deflection. It is the sole subtraction site for
// deflections in the module; every tier's Traced method routes here.
func tracedPoints(points, deflections []geom.Point) ([]geom.Point, error) {
	if len(points) != len(deflections) {
		return nil, ErrLengthMismatch
	}
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = p.Sub(deflections[i])
	}

	return out, nil
}

// meanPool reduces consecutive chunks of chunkLen values to their
// arithmetic mean, one output per chunk. This is the oversampling
// contract: a pixel's value is the mean over its sub-points' individual
// evaluations, never the value at a single representative point.
func meanPool(values []float64, chunkLen int) []float64 {
	out := make([]float64, len(values)/chunkLen)
	inv := 1.0 / float64(chunkLen)
	for i := range out {
		out[i] = floats.Sum(values[i*chunkLen:(i+1)*chunkLen]) * inv
	}

	return out
}
