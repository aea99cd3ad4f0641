package strategy

import (
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
)

// Strategy turns a bar series into a single Signal.
//
// Implementations are stateless: Evaluate is a pure function of the bars it
// is given, never mutates them, and is safe to call concurrently on the same
// series. A series of MinBars() bars or fewer yields types.NoSignal and a nil
// error; an error is returned only when the indicator arithmetic degenerates
// (zero volume, zero variance).
type Strategy interface {
	// Evaluate computes the signal for the most recent bar of bars (oldest first).
	Evaluate(bars []types.PriceBar) (types.Signal, error)
	// Name returns the identifier of the strategy
	Name() types.StrategyType
	// Description returns a short human readable summary
	Description() string
	// MinBars is the history length the series must strictly exceed.
	MinBars() int
}

// New returns the built-in strategy identified by name.
func New(name types.StrategyType) (Strategy, error) {
	switch name {
	case types.StrategyTypeRunLength:
		return NewRunLength(), nil
	case types.StrategyTypeEMACrossover:
		return NewEMACrossover(), nil
	case types.StrategyTypeMeanReversionZ:
		return NewMeanReversionZ(), nil
	case types.StrategyTypeSMACrossover:
		return NewSMACrossover(), nil
	case types.StrategyTypeVWAPDeviation:
		return NewVWAPDeviation(), nil
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedStrategy, "unsupported strategy %q", name)
	}
}

// MustNew is like New but panics if name is not a built-in strategy.
func MustNew(name types.StrategyType) Strategy {
	s, err := New(name)
	if err != nil {
		panic(err)
	}

	return s
}

// All returns one instance of every built-in strategy in types.AllStrategyTypes order.
// It panics if types.AllStrategyTypes names an unknown strategy.
func All() []Strategy {
	strategies := make([]Strategy, 0, len(types.AllStrategyTypes))
	for _, name := range types.AllStrategyTypes {
		strategies = append(strategies, MustNew(name))
	}

	return strategies
}

// evaluationError tags an indicator failure with the strategy that hit it.
func evaluationError(name types.StrategyType, cause error) error {
	return errors.Wrapf(errors.ErrCodeStrategyEvaluation, cause, "%s: evaluation failed", name)
}
