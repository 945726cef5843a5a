package arclength

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/pathparam/curve"
)

// MaxResamplePoints bounds the number of points Resample will produce.
const MaxResamplePoints = 1 << 20

// PathPoint is the state of a curve at a given distance along it.
type PathPoint struct {
	Dist      float64  // distance travelled along the curve
	T         float64  // curve parameter at Dist
	Position  r2.Point // position at Dist
	Heading   float64  // tangent angle in radians
	Curvature float64
}

// Resample walks c in increments of step along its arc length, as given by m, and returns the
// state at every step. The last point is always at the full length of the curve. A step that
// would produce more than MaxResamplePoints points is an error.
func Resample(c curve.Curve, m Mapping, step float64) ([]PathPoint, error) {
	if c == nil || m == nil {
		return nil, errors.New("curve and mapping cannot be nil")
	}
	if math.IsNaN(step) || step <= 0 {
		return nil, errors.Errorf("step must be positive, got %v", step)
	}

	total := m.TotalLength()
	steps := math.Ceil(total / step)
	if math.IsNaN(steps) || steps+1 > MaxResamplePoints {
		return nil, errors.Errorf("step %v over length %v gives more than %d points", step, total, MaxResamplePoints)
	}
	count := int(steps)
	points := make([]PathPoint, 0, count+1)
	for i := 0; i < count; i++ {
		dist := float64(i) * step
		if dist >= total {
			break
		}
		points = append(points, pathPointAt(c, m, dist))
	}
	return append(points, pathPointAt(c, m, total)), nil
}

func pathPointAt(c curve.Curve, m Mapping, dist float64) PathPoint {
	t := m.Reparam(dist)
	d := c.Evaluate(t)
	return PathPoint{
		Dist:      dist,
		T:         t,
		Position:  d.Value,
		Heading:   d.Heading(),
		Curvature: d.Curvature(),
	}
}
