package indicator

import (
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
)

// TypicalPrice returns (high + low + close) / 3 for a bar.
func TypicalPrice(bar types.PriceBar) float64 {
	return bar.TypicalPrice()
}

// VWAP returns the volume-weighted average of the bars' typical prices.
// Zero total volume is a DivideByZero failure.
func VWAP(bars []types.PriceBar) (float64, error) {
	weighted := 0.0
	totalVolume := 0.0

	for _, b := range bars {
		weighted += TypicalPrice(b) * b.Volume
		totalVolume += b.Volume
	}

	if totalVolume == 0 {
		return 0, errors.Newf(errors.ErrCodeDivideByZero, "vwap: total volume is zero over %d bars", len(bars))
	}

	return weighted / totalVolume, nil
}
