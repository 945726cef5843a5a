package arclength

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/pathparam/utils"
)

// collinearDeterminant is the threshold under which three points are treated as lying on a line.
const collinearDeterminant = 1e-6

// ThreePointArcLength estimates the length of the curve from p1 to p3 that passes through p2 by
// fitting the circle through all three points. Nearly collinear points fall back to the chord
// |p3 - p1|.
//
// The circumcenter is solved from the squared norms of the raw coordinates, so precision
// degrades for points far from the origin.
func ThreePointArcLength(p1, p2, p3 r2.Point) float64 {
	chord := p3.Sub(p1).Norm()

	v1 := p2.Sub(p1)
	v2 := p2.Sub(p3)
	det := 4 * v1.Cross(v2)
	if math.Abs(det) < collinearDeterminant {
		return chord
	}

	x1 := p1.Dot(p1)
	x2 := p2.Dot(p2)
	x3 := p3.Dot(p3)
	y1 := x2 - x1
	y2 := x2 - x3
	// Cramer's rule on the perpendicular bisectors 2c·v1 = y1 and 2c·v2 = y2.
	half := det / 2
	center := r2.Point{
		X: (y1*v2.Y - y2*v1.Y) / half,
		Y: (y2*v1.X - y1*v2.X) / half,
	}
	radius := p1.Sub(center).Norm()

	return 2 * radius * math.Asin(utils.Clamp(chord/(2*radius), -1, 1))
}
