package indicator

import (
	"math"
	"testing"

	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type IndicatorTestSuite struct {
	suite.Suite
}

func TestIndicatorSuite(t *testing.T) {
	suite.Run(t, new(IndicatorTestSuite))
}

// bar builds a bar whose typical price equals price.
func bar(price, volume float64) types.PriceBar {
	return types.PriceBar{Open: price, High: price + 1, Low: price - 1, Close: price, Volume: volume}
}

func (suite *IndicatorTestSuite) TestSMA() {
	v, err := SMA([]float64{1, 2, 3, 4})
	suite.Require().NoError(err)
	suite.Equal(2.5, v)

	v, err = SMA([]float64{42})
	suite.Require().NoError(err)
	suite.Equal(42.0, v)
}

func (suite *IndicatorTestSuite) TestSMAEmpty() {
	_, err := SMA(nil)
	suite.Error(err)
	suite.True(errors.IsDivideByZero(err))
}

func (suite *IndicatorTestSuite) TestEMAOverlappingSeed() {
	// alpha = 0.5, seed = 2, then 1 -> 1.5, 2 -> 1.75, 3 -> 2.375
	v, err := EMA([]float64{1, 2, 3})
	suite.Require().NoError(err)
	suite.Equal(2.375, v)
}

func (suite *IndicatorTestSuite) TestEMASingleValue() {
	v, err := EMA([]float64{10})
	suite.Require().NoError(err)
	suite.Equal(10.0, v)
}

func (suite *IndicatorTestSuite) TestEMAConstant() {
	prices := make([]float64, 99)
	for i := range prices {
		prices[i] = 64
	}

	v, err := EMA(prices)
	suite.Require().NoError(err)
	suite.Equal(64.0, v)
}

func (suite *IndicatorTestSuite) TestEMAEmpty() {
	_, err := EMA([]float64{})
	suite.True(errors.IsDivideByZero(err))
}

func (suite *IndicatorTestSuite) TestTypicalPrice() {
	suite.Equal(9.0, TypicalPrice(types.PriceBar{High: 12, Low: 6, Close: 9}))
}

func (suite *IndicatorTestSuite) TestVWAP() {
	v, err := VWAP([]types.PriceBar{bar(10, 1), bar(20, 3)})
	suite.Require().NoError(err)
	suite.Equal(17.5, v)
}

func (suite *IndicatorTestSuite) TestVWAPZeroVolume() {
	_, err := VWAP([]types.PriceBar{bar(10, 0), bar(20, 0)})
	suite.Error(err)
	suite.True(errors.IsDivideByZero(err))

	_, err = VWAP(nil)
	suite.True(errors.IsDivideByZero(err))
}

func (suite *IndicatorTestSuite) TestZScoreAsymmetricVariance() {
	// history 2, 4, 6 -> mean 4, deviations -2, 0, 2
	// variance drops the last deviation: (4 + 0) / 3
	bars := []types.PriceBar{bar(2, 1), bar(4, 1), bar(6, 1), bar(8, 1)}

	z, err := ZScore(bars)
	suite.Require().NoError(err)
	suite.InDelta(4/math.Sqrt(4.0/3.0), z, 1e-12)
	suite.InDelta(2*math.Sqrt(3), z, 1e-12)
}

func (suite *IndicatorTestSuite) TestZScoreAtMean() {
	bars := make([]types.PriceBar, 0, 27)
	for i := 0; i < 26; i++ {
		if i%2 == 0 {
			bars = append(bars, bar(8, 1))
		} else {
			bars = append(bars, bar(10, 1))
		}
	}

	bars = append(bars, bar(9, 1))

	z, err := ZScore(bars)
	suite.Require().NoError(err)
	suite.Equal(0.0, z)
}

func (suite *IndicatorTestSuite) TestZScoreZeroDeviation() {
	bars := []types.PriceBar{bar(5, 1), bar(5, 1), bar(5, 1), bar(9, 1)}

	_, err := ZScore(bars)
	suite.Error(err)
	suite.True(errors.IsDivideByZero(err))
}

func (suite *IndicatorTestSuite) TestZScoreTooShort() {
	_, err := ZScore([]types.PriceBar{bar(5, 1)})
	suite.True(errors.IsDivideByZero(err))

	// two bars leave no deviation to sum
	_, err = ZScore([]types.PriceBar{bar(5, 1), bar(6, 1)})
	suite.True(errors.IsDivideByZero(err))
}
