package strategy

import (
	"github.com/rxtech-lab/argo-signal/internal/indicator"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/internal/window"
)

const (
	meanReversionWindow    = 25
	meanReversionThreshold = 0.1

	meanReversionBuySignal  types.Signal = 0.0005
	meanReversionSellSignal types.Signal = -0.0008
)

// MeanReversionZ trades on the z-score of the latest typical price against
// the whole history supplied.
type MeanReversionZ struct{}

// NewMeanReversionZ creates a MeanReversionZ strategy.
func NewMeanReversionZ() *MeanReversionZ {
	return &MeanReversionZ{}
}

// Name returns the name of the strategy.
func (m *MeanReversionZ) Name() types.StrategyType {
	return types.StrategyTypeMeanReversionZ
}

// Description returns a short summary of the strategy.
func (m *MeanReversionZ) Description() string {
	return "Buys when the latest typical price z-score exceeds 0.1, sells below -0.1"
}

// MinBars returns the history the series must exceed.
func (m *MeanReversionZ) MinBars() int {
	return meanReversionWindow
}

// Evaluate implements Strategy. The z-score runs over the full series, not
// only the last 25 bars.
func (m *MeanReversionZ) Evaluate(bars []types.PriceBar) (types.Signal, error) {
	if !window.Sufficient(bars, meanReversionWindow) {
		return types.NoSignal, nil
	}

	z, err := indicator.ZScore(bars)
	if err != nil {
		return types.NoSignal, evaluationError(m.Name(), err)
	}

	switch {
	case z > meanReversionThreshold:
		return meanReversionBuySignal, nil
	case z < -meanReversionThreshold:
		return meanReversionSellSignal, nil
	default:
		return types.NoSignal, nil
	}
}
