package indicator

import (
	"github.com/rxtech-lab/argo-signal/pkg/errors"
)

// SMA returns the arithmetic mean of prices.
// An empty slice is a DivideByZero failure; callers check window sufficiency first.
func SMA(prices []float64) (float64, error) {
	if len(prices) == 0 {
		return 0, errors.New(errors.ErrCodeDivideByZero, "sma: price list is empty")
	}

	return calculateSimpleMovingAverage(prices), nil
}

func calculateSimpleMovingAverage(prices []float64) float64 {
	sum := 0.0
	for _, p := range prices {
		sum += p
	}

	return sum / float64(len(prices))
}
