package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type PriceBarTestSuite struct {
	suite.Suite
}

func TestPriceBarSuite(t *testing.T) {
	suite.Run(t, new(PriceBarTestSuite))
}

func (suite *PriceBarTestSuite) TestPriceBarStruct() {
	now := time.Date(2023, 6, 15, 9, 30, 0, 0, time.UTC)
	bar := PriceBar{
		Time:   now,
		Symbol: "BTCUSDT",
		Open:   150.0,
		High:   155.0,
		Low:    148.0,
		Close:  152.5,
		Volume: 1000000.0,
	}

	suite.Equal(now, bar.Time)
	suite.Equal("BTCUSDT", bar.Symbol)
	suite.Equal(150.0, bar.Open)
	suite.Equal(155.0, bar.High)
	suite.Equal(148.0, bar.Low)
	suite.Equal(152.5, bar.Close)
	suite.Equal(1000000.0, bar.Volume)
}

func (suite *PriceBarTestSuite) TestTypicalPrice() {
	bar := PriceBar{High: 12, Low: 6, Close: 9}
	suite.InDelta(9.0, bar.TypicalPrice(), 1e-12)

	suite.Equal(0.0, PriceBar{}.TypicalPrice())
}
