package strategy

import (
	"github.com/rxtech-lab/argo-signal/internal/indicator"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/internal/window"
)

const (
	vwapWindow = 25

	vwapBuySignal  types.Signal = 0.003
	vwapSellSignal types.Signal = -0.005
)

// VWAPDeviation compares the latest typical price with the VWAP of the 24
// bars before it.
type VWAPDeviation struct{}

// NewVWAPDeviation creates a VWAPDeviation strategy.
func NewVWAPDeviation() *VWAPDeviation {
	return &VWAPDeviation{}
}

// Name returns the name of the strategy.
func (v *VWAPDeviation) Name() types.StrategyType {
	return types.StrategyTypeVWAPDeviation
}

// Description returns a short summary of the strategy.
func (v *VWAPDeviation) Description() string {
	return "Buys when the latest typical price is above the VWAP of the previous 24 bars, sells when below"
}

// MinBars returns the history the series must exceed.
func (v *VWAPDeviation) MinBars() int {
	return vwapWindow
}

// Evaluate implements Strategy.
func (v *VWAPDeviation) Evaluate(bars []types.PriceBar) (types.Signal, error) {
	if !window.Sufficient(bars, vwapWindow) {
		return types.NoSignal, nil
	}

	history, err := window.TrailingExcludingLast(bars, vwapWindow)
	if err != nil {
		return types.NoSignal, evaluationError(v.Name(), err)
	}

	vwap, err := indicator.VWAP(history)
	if err != nil {
		return types.NoSignal, evaluationError(v.Name(), err)
	}

	last, err := window.Last(bars)
	if err != nil {
		return types.NoSignal, evaluationError(v.Name(), err)
	}

	price := indicator.TypicalPrice(last)

	switch {
	case price > vwap:
		return vwapBuySignal, nil
	case price < vwap:
		return vwapSellSignal, nil
	default:
		return types.NoSignal, nil
	}
}
