package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
)

// ZScore measures how far the newest bar's typical price sits from the mean
// typical price of all earlier bars.
//
// With n bars and history h = bars[0 : n-1]:
//
//	mean     = avg(tp(h))
//	dev[i]   = tp(h[i]) - mean
//	variance = sum(dev[0 : n-2]^2) / (n - 1)
//	z        = (tp(bars[n-1]) - mean) / sqrt(variance)
//
// The last deviation is left out of the sum while the divisor still counts
// every bar. Strategy thresholds depend on this exact form.
func ZScore(bars []types.PriceBar) (float64, error) {
	n := len(bars)
	if n < 2 {
		return 0, errors.Newf(errors.ErrCodeDivideByZero, "zscore: need a history of at least one bar, got %d bars", n)
	}

	history := bars[:n-1]

	mean := 0.0
	for _, b := range history {
		mean += TypicalPrice(b)
	}

	mean /= float64(len(history))

	sumSquares := 0.0
	for _, b := range history[:len(history)-1] {
		d := TypicalPrice(b) - mean
		sumSquares += d * d
	}

	std := math.Sqrt(sumSquares / float64(n-1))
	if std == 0 {
		return 0, errors.New(errors.ErrCodeDivideByZero, "zscore: standard deviation is zero")
	}

	return (TypicalPrice(bars[n-1]) - mean) / std, nil
}
