package strategy

import (
	"github.com/rxtech-lab/argo-signal/internal/indicator"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/internal/window"
)

const (
	emaCrossoverWindow = 100

	emaCrossoverBuySignal  types.Signal = 0.005
	emaCrossoverSellSignal types.Signal = -0.006
)

// EMACrossover compares the latest close with the EMA of the 99 closes before it.
type EMACrossover struct{}

// NewEMACrossover creates an EMACrossover strategy.
func NewEMACrossover() *EMACrossover {
	return &EMACrossover{}
}

// Name returns the name of the strategy.
func (e *EMACrossover) Name() types.StrategyType {
	return types.StrategyTypeEMACrossover
}

// Description returns a short summary of the strategy.
func (e *EMACrossover) Description() string {
	return "Buys when the latest close is above the EMA of the previous 99 closes, sells when below"
}

// MinBars returns the history the series must exceed.
func (e *EMACrossover) MinBars() int {
	return emaCrossoverWindow
}

// Evaluate implements Strategy.
func (e *EMACrossover) Evaluate(bars []types.PriceBar) (types.Signal, error) {
	if !window.Sufficient(bars, emaCrossoverWindow) {
		return types.NoSignal, nil
	}

	history, err := window.TrailingExcludingLast(bars, emaCrossoverWindow)
	if err != nil {
		return types.NoSignal, evaluationError(e.Name(), err)
	}

	ema, err := indicator.EMA(window.Closes(history))
	if err != nil {
		return types.NoSignal, evaluationError(e.Name(), err)
	}

	last, err := window.Last(bars)
	if err != nil {
		return types.NoSignal, evaluationError(e.Name(), err)
	}

	switch {
	case last.Close > ema:
		return emaCrossoverBuySignal, nil
	case last.Close < ema:
		return emaCrossoverSellSignal, nil
	default:
		return types.NoSignal, nil
	}
}
