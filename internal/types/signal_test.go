package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SignalTestSuite struct {
	suite.Suite
}

func TestSignalSuite(t *testing.T) {
	suite.Run(t, new(SignalTestSuite))
}

func (suite *SignalTestSuite) TestSignalActionConstants() {
	suite.Equal(SignalAction("buy"), SignalActionBuy)
	suite.Equal(SignalAction("sell"), SignalActionSell)
	suite.Equal(SignalAction("hold"), SignalActionHold)
}

func (suite *SignalTestSuite) TestAction() {
	testCases := []struct {
		name     string
		signal   Signal
		expected SignalAction
	}{
		{name: "buy", signal: 0.0008, expected: SignalActionBuy},
		{name: "sell", signal: -0.006, expected: SignalActionSell},
		{name: "hold", signal: NoSignal, expected: SignalActionHold},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, tc.signal.Action())
		})
	}
}

func (suite *SignalTestSuite) TestQuantity() {
	suite.Equal("0.0008", Signal(-0.0008).Quantity().String())
	suite.Equal("0.005", Signal(0.005).Quantity().String())
	suite.True(NoSignal.Quantity().IsZero())
}

func (suite *SignalTestSuite) TestDecimal() {
	suite.Equal("-0.0025", Signal(-0.0025).Decimal().String())
	suite.Equal(0.003, Signal(0.003).Float64())
}
