package arclength

import (
	"context"

	"go.viam.com/pathparam/utils"
)

// ReparamAll converts every length in lengths with m, spreading the work over
// utils.ParallelFactor goroutines. The mapping must be safe for concurrent use.
func ReparamAll(ctx context.Context, m Mapping, lengths []float64) ([]float64, error) {
	params := make([]float64, len(lengths))
	err := utils.GroupWorkParallel(ctx, len(lengths), func(_, _, _, _ int) utils.MemberWorkFunc {
		return func(_, workNum int) {
			params[workNum] = m.Reparam(lengths[workNum])
		}
	})
	if err != nil {
		return nil, err
	}
	return params, nil
}
