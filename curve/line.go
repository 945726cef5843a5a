package curve

import "github.com/golang/geo/r2"

// Line is the straight segment from Start to End.
type Line struct {
	Start r2.Point
	End   r2.Point
}

var (
	_ Curve    = Line{}
	_ Lengther = Line{}
)

// Evaluate implements Curve.
func (l Line) Evaluate(t float64) Dual {
	d := l.End.Sub(l.Start)
	return Dual{
		Value:    l.Start.Add(d.Mul(t)),
		Velocity: d,
	}
}

// Length returns |End - Start|.
func (l Line) Length() float64 {
	return l.End.Sub(l.Start).Norm()
}
