package curve

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

// tangentScale multiplies the chord length to get the tangent magnitude used when a spline is
// built from poses.
const tangentScale = 1.2

// quinticHermiteBasis maps the boundary conditions [p0, v0, a0, a1, v1, p1] to polynomial
// coefficients, lowest power first. Column j holds the coefficients of basis function j.
var quinticHermiteBasis = mat.NewDense(6, 6, []float64{
	1, 0, 0, 0, 0, 0,
	0, 1, 0, 0, 0, 0,
	0, 0, 0.5, 0, 0, 0,
	-10, -6, -1.5, 0.5, -4, 10,
	15, 8, 1.5, -1, 7, -15,
	-6, -3, -0.5, 0.5, -3, 6,
})

// Waypoint is a boundary condition of a quintic Hermite spline: a position with its first and
// second derivatives with respect to the spline parameter.
type Waypoint struct {
	Position     r2.Point
	Velocity     r2.Point
	Acceleration r2.Point
}

// QuinticHermite is a quintic polynomial spline segment that interpolates the position and the
// first two derivatives at both of its ends.
type QuinticHermite struct {
	start, end Waypoint
	coeffs     [6]r2.Point
}

// NewQuinticHermite returns the spline from start to end.
func NewQuinticHermite(start, end Waypoint) *QuinticHermite {
	conditions := mat.NewDense(6, 2, []float64{
		start.Position.X, start.Position.Y,
		start.Velocity.X, start.Velocity.Y,
		start.Acceleration.X, start.Acceleration.Y,
		end.Acceleration.X, end.Acceleration.Y,
		end.Velocity.X, end.Velocity.Y,
		end.Position.X, end.Position.Y,
	})

	var coeffs mat.Dense
	coeffs.Mul(quinticHermiteBasis, conditions)

	spline := &QuinticHermite{start: start, end: end}
	for i := range spline.coeffs {
		spline.coeffs[i] = r2.Point{X: coeffs.At(i, 0), Y: coeffs.At(i, 1)}
	}
	return spline
}

// NewQuinticHermiteFromPoses returns a spline between two planar poses with zero curvature at
// both ends. Headings are in radians. The tangent magnitude at each end is 1.2 times the
// distance between the two positions.
func NewQuinticHermiteFromPoses(x0, y0, heading0, x1, y1, heading1 float64) *QuinticHermite {
	scale := tangentScale * math.Hypot(x1-x0, y1-y0)
	sin0, cos0 := math.Sincos(heading0)
	sin1, cos1 := math.Sincos(heading1)
	return NewQuinticHermite(
		Waypoint{
			Position: r2.Point{X: x0, Y: y0},
			Velocity: r2.Point{X: scale * cos0, Y: scale * sin0},
		},
		Waypoint{
			Position: r2.Point{X: x1, Y: y1},
			Velocity: r2.Point{X: scale * cos1, Y: scale * sin1},
		},
	)
}

// Start returns the boundary condition at t = 0.
func (q *QuinticHermite) Start() Waypoint {
	return q.start
}

// End returns the boundary condition at t = 1.
func (q *QuinticHermite) End() Waypoint {
	return q.end
}

// Evaluate implements Curve.
func (q *QuinticHermite) Evaluate(t float64) Dual {
	var value, velocity, acceleration r2.Point
	// Horner's scheme, highest power first.
	for i := len(q.coeffs) - 1; i >= 0; i-- {
		value = value.Mul(t).Add(q.coeffs[i])
		if i >= 1 {
			velocity = velocity.Mul(t).Add(q.coeffs[i].Mul(float64(i)))
		}
		if i >= 2 {
			acceleration = acceleration.Mul(t).Add(q.coeffs[i].Mul(float64(i * (i - 1))))
		}
	}
	return Dual{Value: value, Velocity: velocity, Acceleration: acceleration}
}
