package types

// StrategyType identifies one of the signal strategies.
type StrategyType string

const (
	StrategyTypeRunLength      StrategyType = "run_length"
	StrategyTypeEMACrossover   StrategyType = "ema_crossover"
	StrategyTypeMeanReversionZ StrategyType = "mean_reversion_z"
	StrategyTypeSMACrossover   StrategyType = "sma_crossover"
	StrategyTypeVWAPDeviation  StrategyType = "vwap_deviation"
)

// AllStrategyTypes lists every built-in strategy in evaluation order.
var AllStrategyTypes = []StrategyType{
	StrategyTypeRunLength,
	StrategyTypeEMACrossover,
	StrategyTypeMeanReversionZ,
	StrategyTypeSMACrossover,
	StrategyTypeVWAPDeviation,
}

// IsValid reports whether s names a built-in strategy.
func (s StrategyType) IsValid() bool {
	for _, t := range AllStrategyTypes {
		if t == s {
			return true
		}
	}

	return false
}
