package indicator

import (
	"github.com/rxtech-lab/argo-signal/pkg/errors"
)

// EMA returns the exponential moving average of prices with
// alpha = 2 / (len(prices) + 1).
//
// The seed is the SMA of the same prices, and the smoothing pass then runs
// over every price again, including the ones already folded into the seed.
// Strategy thresholds are calibrated against this recurrence, so it is kept
// as is rather than the usual seed-then-continue form.
func EMA(prices []float64) (float64, error) {
	if len(prices) == 0 {
		return 0, errors.New(errors.ErrCodeDivideByZero, "ema: price list is empty")
	}

	return calculateExponentialMovingAverage(prices), nil
}

func calculateExponentialMovingAverage(prices []float64) float64 {
	alpha := 2.0 / float64(len(prices)+1)

	ema := calculateSimpleMovingAverage(prices)
	for _, p := range prices {
		ema = (p * alpha) + (ema * (1 - alpha))
	}

	return ema
}
