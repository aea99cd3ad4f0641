package strategy

import (
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/internal/window"
)

const (
	runLengthWindow    = 50
	runLengthThreshold = 4

	runLengthBuySignal  types.Signal = 0.0008
	runLengthSellSignal types.Signal = -0.0008
)

// RunLength is a momentum strategy counting consecutive close-to-close moves.
type RunLength struct{}

// NewRunLength creates a RunLength strategy.
func NewRunLength() *RunLength {
	return &RunLength{}
}

// Name returns the name of the strategy.
func (r *RunLength) Name() types.StrategyType {
	return types.StrategyTypeRunLength
}

// Description returns a short summary of the strategy.
func (r *RunLength) Description() string {
	return "Buys after 4 consecutive higher closes, sells after 2 consecutive lower closes within the last 50 bars"
}

// MinBars returns the history the series must exceed.
func (r *RunLength) MinBars() int {
	return runLengthWindow
}

// Evaluate scans the last 50 bars oldest-first. A rise resets the falling
// counter and a fall resets the rising one; equal closes leave both alone.
// The first counter to reach its threshold decides the signal.
func (r *RunLength) Evaluate(bars []types.PriceBar) (types.Signal, error) {
	if !window.Sufficient(bars, runLengthWindow) {
		return types.NoSignal, nil
	}

	recent, err := window.Trailing(bars, runLengthWindow)
	if err != nil {
		return types.NoSignal, evaluationError(r.Name(), err)
	}

	rising, falling := 0, 0

	for i := 1; i < len(recent); i++ {
		prev, curr := recent[i-1].Close, recent[i].Close

		switch {
		case curr > prev:
			rising++
			falling = 0

			if rising >= runLengthThreshold {
				return runLengthBuySignal, nil
			}
		case curr < prev:
			rising = 0
			falling++

			if falling >= runLengthThreshold/2 {
				return runLengthSellSignal, nil
			}
		}
	}

	return types.NoSignal, nil
}
