// Package window slices a bar series into trailing windows.
//
// All windows are computed as half-open ranges from the series length and
// returned as capacity-limited views of the caller's slice, so a strategy can
// neither copy nor grow the series it was handed.
package window

import (
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
)

// Sufficient reports whether a series can be evaluated by a strategy whose
// minimum length is w. The comparison is strict: a series of exactly w bars
// is not enough.
func Sufficient(bars []types.PriceBar, w int) bool {
	return len(bars) > w
}

// Trailing returns the n most recent bars, oldest first.
func Trailing(bars []types.PriceBar, n int) ([]types.PriceBar, error) {
	return rangeOf(bars, n, 0)
}

// TrailingExcludingLast returns the bars in [len-n, len-1): the n most recent
// bars with the newest one left out, so the result holds n-1 bars.
func TrailingExcludingLast(bars []types.PriceBar, n int) ([]types.PriceBar, error) {
	return rangeOf(bars, n, 1)
}

// Last returns the most recent bar.
func Last(bars []types.PriceBar) (types.PriceBar, error) {
	if len(bars) == 0 {
		return types.PriceBar{}, errors.NewInsufficientDataError(1, 0, "series is empty")
	}

	return bars[len(bars)-1], nil
}

// Closes projects the close price of every bar.
func Closes(bars []types.PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	return closes
}

// TrailingCloses returns the close prices of the n most recent bars.
func TrailingCloses(bars []types.PriceBar, n int) ([]float64, error) {
	w, err := Trailing(bars, n)
	if err != nil {
		return nil, err
	}

	return Closes(w), nil
}

func rangeOf(bars []types.PriceBar, n int, dropNewest int) ([]types.PriceBar, error) {
	if n <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidWindow, "window size must be positive, got %d", n)
	}

	if n > len(bars) {
		return nil, errors.NewInsufficientDataErrorf(n, len(bars),
			"window of %d bars requested, series has %d", n, len(bars))
	}

	start := len(bars) - n
	end := len(bars) - dropNewest

	return bars[start:end:end], nil
}
