package curve

import (
	"math"

	"github.com/golang/geo/r2"
)

// Arc is a circular arc around Center. It starts at angle StartAngle and turns through Sweep
// radians, counter-clockwise for a positive Sweep.
type Arc struct {
	Center     r2.Point
	Radius     float64
	StartAngle float64
	Sweep      float64
}

var (
	_ Curve    = Arc{}
	_ Lengther = Arc{}
)

// Evaluate implements Curve.
func (a Arc) Evaluate(t float64) Dual {
	theta := a.StartAngle + a.Sweep*t
	sin, cos := math.Sincos(theta)
	return Dual{
		Value:        r2.Point{X: a.Center.X + a.Radius*cos, Y: a.Center.Y + a.Radius*sin},
		Velocity:     r2.Point{X: -a.Radius * a.Sweep * sin, Y: a.Radius * a.Sweep * cos},
		Acceleration: r2.Point{X: -a.Radius * a.Sweep * a.Sweep * cos, Y: -a.Radius * a.Sweep * a.Sweep * sin},
	}
}

// Length returns Radius·|Sweep|.
func (a Arc) Length() float64 {
	return a.Radius * math.Abs(a.Sweep)
}
