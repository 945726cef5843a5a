// Package curve defines smooth 2D parametric curves over t ∈ [0, 1] and the second order
// derivative bundle they produce when evaluated.
package curve

import (
	"math"

	"github.com/golang/geo/r2"
)

// Curve is a planar curve parameterized over t ∈ [0, 1]. Evaluate must be a pure function of t
// and the curve must be at least twice differentiable over the whole domain.
type Curve interface {
	// Evaluate returns the position at t together with its first and second derivatives with
	// respect to t.
	Evaluate(t float64) Dual
}

// Lengther is implemented by curves whose arc length has a closed form.
type Lengther interface {
	Length() float64
}

// Dual bundles a position with its first and second derivatives with respect to the curve
// parameter.
type Dual struct {
	Value        r2.Point
	Velocity     r2.Point
	Acceleration r2.Point
}

// Curvature returns the unsigned curvature |x''y' - x'y''| / (x'² + y'²)^1.5.
// A zero velocity yields a non-finite result; it is up to the curve to provide a regular
// parameterization.
func (d Dual) Curvature() float64 {
	dx, dy := d.Velocity.X, d.Velocity.Y
	d2x, d2y := d.Acceleration.X, d.Acceleration.Y
	return math.Abs(d2x*dy-dx*d2y) / math.Pow(dx*dx+dy*dy, 1.5)
}

// Heading is the angle of the tangent in radians, in (-π, π].
func (d Dual) Heading() float64 {
	return math.Atan2(d.Velocity.Y, d.Velocity.X)
}

// Speed is |dp/dt|.
func (d Dual) Speed() float64 {
	return d.Velocity.Norm()
}
