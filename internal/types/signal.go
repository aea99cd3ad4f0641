package types

import "github.com/shopspring/decimal"

// SignalAction is the trade direction a Signal recommends.
type SignalAction string

const (
	// SignalActionBuy is a signal that tells the caller to buy
	SignalActionBuy SignalAction = "buy"
	// SignalActionSell is a signal that tells the caller to sell
	SignalActionSell SignalAction = "sell"
	// SignalActionHold is a signal that tells the caller to take no action
	SignalActionHold SignalAction = "hold"
)

// Signal is a signed conviction weight: 0 means hold, a positive value means
// buy and a negative value means sell. The magnitude is the conviction.
type Signal float64

// NoSignal is returned whenever a strategy has nothing to recommend.
const NoSignal Signal = 0

// Action classifies the signal by its sign.
func (s Signal) Action() SignalAction {
	switch {
	case s > 0:
		return SignalActionBuy
	case s < 0:
		return SignalActionSell
	default:
		return SignalActionHold
	}
}

// Quantity returns the absolute magnitude of the signal as an exact decimal,
// which is what an order would be sized with.
func (s Signal) Quantity() decimal.Decimal {
	return decimal.NewFromFloat(float64(s)).Abs()
}

// Decimal returns the signed magnitude as a decimal.
func (s Signal) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(s))
}

// Float64 returns the raw value.
func (s Signal) Float64() float64 {
	return float64(s)
}
