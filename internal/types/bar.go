package types

import "time"

// PriceBar is one OHLCV observation. Bars are values; once created they are
// never mutated by the engine.
type PriceBar struct {
	Time   time.Time `csv:"time" json:"time" yaml:"time"`
	Symbol string    `csv:"symbol" json:"symbol" yaml:"symbol"`
	Open   float64   `csv:"open" json:"open" yaml:"open"`
	High   float64   `csv:"high" json:"high" yaml:"high"`
	Low    float64   `csv:"low" json:"low" yaml:"low"`
	Close  float64   `csv:"close" json:"close" yaml:"close"`
	Volume float64   `csv:"volume" json:"volume" yaml:"volume"`
}

// TypicalPrice returns (high + low + close) / 3.
func (b PriceBar) TypicalPrice() float64 {
	return (b.High + b.Low + b.Close) / 3
}
