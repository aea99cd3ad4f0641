package strategy

import (
	"github.com/rxtech-lab/argo-signal/internal/indicator"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/internal/window"
)

const (
	smaShortWindow = 20
	smaLongWindow  = 100

	smaCrossoverBuySignal  types.Signal = 0.005
	smaCrossoverSellSignal types.Signal = -0.0025
)

// SMACrossover compares a 20-bar SMA of closes with a 100-bar SMA.
type SMACrossover struct{}

// NewSMACrossover creates an SMACrossover strategy.
func NewSMACrossover() *SMACrossover {
	return &SMACrossover{}
}

// Name returns the name of the strategy.
func (s *SMACrossover) Name() types.StrategyType {
	return types.StrategyTypeSMACrossover
}

// Description returns a short summary of the strategy.
func (s *SMACrossover) Description() string {
	return "Buys when the 20-bar SMA is above the 100-bar SMA, sells when below"
}

// MinBars returns the history the series must exceed.
func (s *SMACrossover) MinBars() int {
	return smaLongWindow
}

// Evaluate implements Strategy.
func (s *SMACrossover) Evaluate(bars []types.PriceBar) (types.Signal, error) {
	if !window.Sufficient(bars, smaLongWindow) {
		return types.NoSignal, nil
	}

	shortCloses, err := window.TrailingCloses(bars, smaShortWindow)
	if err != nil {
		return types.NoSignal, evaluationError(s.Name(), err)
	}

	longCloses, err := window.TrailingCloses(bars, smaLongWindow)
	if err != nil {
		return types.NoSignal, evaluationError(s.Name(), err)
	}

	short, err := indicator.SMA(shortCloses)
	if err != nil {
		return types.NoSignal, evaluationError(s.Name(), err)
	}

	long, err := indicator.SMA(longCloses)
	if err != nil {
		return types.NoSignal, evaluationError(s.Name(), err)
	}

	switch {
	case short > long:
		return smaCrossoverBuySignal, nil
	case short < long:
		return smaCrossoverSellSignal, nil
	default:
		return types.NoSignal, nil
	}
}
