package curve

import "github.com/golang/geo/r2"

// CubicBezier is a cubic Bézier curve with control points P0 through P3.
type CubicBezier struct {
	P0, P1, P2, P3 r2.Point
}

// Evaluate implements Curve.
func (c CubicBezier) Evaluate(t float64) Dual {
	mt := 1 - t
	value := c.P0.Mul(mt * mt * mt).
		Add(c.P1.Mul(3 * mt * mt * t)).
		Add(c.P2.Mul(3 * mt * t * t)).
		Add(c.P3.Mul(t * t * t))

	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	velocity := d01.Mul(3 * mt * mt).Add(d12.Mul(6 * mt * t)).Add(d23.Mul(3 * t * t))
	acceleration := d12.Sub(d01).Mul(6 * mt).Add(d23.Sub(d12).Mul(6 * t))

	return Dual{Value: value, Velocity: velocity, Acceleration: acceleration}
}
