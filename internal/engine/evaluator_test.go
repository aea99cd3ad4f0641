package engine

import (
	"context"
	"sync"
	"testing"

	"github.com/rxtech-lab/argo-signal/internal/logger"
	"github.com/rxtech-lab/argo-signal/internal/strategy"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/mocks"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EvaluatorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	log  *logger.Logger
	bars []types.PriceBar
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorTestSuite))
}

func (suite *EvaluatorTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.log = logger.NewNopLogger()

	config := mocks.DefaultConfig()
	config.Count = 200
	suite.bars = mocks.NewDataGenerator(7).Generate(config)
}

func (suite *EvaluatorTestSuite) mockStrategy(name types.StrategyType, signal types.Signal, err error) *mocks.MockStrategy {
	s := mocks.NewMockStrategy(suite.ctrl)
	s.EXPECT().Name().Return(name).AnyTimes()
	s.EXPECT().Evaluate(gomock.Any()).Return(signal, err).Times(1)

	return s
}

func (suite *EvaluatorTestSuite) TestEvaluateKeepsOrder() {
	evaluator := NewEvaluator([]strategy.Strategy{
		suite.mockStrategy(types.StrategyTypeVWAPDeviation, 0.003, nil),
		suite.mockStrategy(types.StrategyTypeRunLength, -0.0008, nil),
		suite.mockStrategy(types.StrategyTypeSMACrossover, types.NoSignal, nil),
	}, suite.log)

	report, err := evaluator.Evaluate(context.Background(), suite.bars)
	suite.Require().NoError(err)
	suite.Require().Len(report.Results, 3)

	suite.Equal(types.StrategyTypeVWAPDeviation, report.Results[0].Strategy)
	suite.Equal(types.Signal(0.003), report.Results[0].Signal)
	suite.Equal(types.SignalActionBuy, report.Results[0].Action())

	suite.Equal(types.StrategyTypeRunLength, report.Results[1].Strategy)
	suite.Equal(types.SignalActionSell, report.Results[1].Action())

	suite.Equal(types.SignalActionHold, report.Results[2].Action())
	suite.Empty(report.Failed())
}

func (suite *EvaluatorTestSuite) TestReportMetadata() {
	s := mocks.NewMockStrategy(suite.ctrl)
	s.EXPECT().Name().Return(types.StrategyTypeRunLength).AnyTimes()
	s.EXPECT().Evaluate(gomock.Any()).Return(types.NoSignal, nil).Times(2)

	evaluator := NewEvaluator([]strategy.Strategy{s}, suite.log)

	report, err := evaluator.Evaluate(context.Background(), suite.bars)
	suite.Require().NoError(err)

	last := suite.bars[len(suite.bars)-1]
	suite.NotEmpty(report.RunID)
	suite.Equal(200, report.Bars)
	suite.Equal(last.Symbol, report.Symbol)
	suite.Equal(last.Time, report.BarTime)

	other, err := evaluator.Evaluate(context.Background(), suite.bars)
	suite.Require().NoError(err)
	suite.NotEqual(report.RunID, other.RunID)
}

func (suite *EvaluatorTestSuite) TestFailureIsIsolated() {
	failure := errors.Wrap(errors.ErrCodeStrategyEvaluation, "vwap_deviation: evaluation failed",
		errors.New(errors.ErrCodeDivideByZero, "vwap: total volume is zero"))

	evaluator := NewEvaluator([]strategy.Strategy{
		suite.mockStrategy(types.StrategyTypeVWAPDeviation, types.NoSignal, failure),
		suite.mockStrategy(types.StrategyTypeEMACrossover, 0.005, nil),
	}, suite.log)

	report, err := evaluator.Evaluate(context.Background(), suite.bars)
	suite.Require().NoError(err)

	failed := report.Failed()
	suite.Require().Len(failed, 1)
	suite.Equal(types.StrategyTypeVWAPDeviation, failed[0].Strategy)
	suite.True(errors.IsDivideByZero(failed[0].Err))

	ema, ok := resultOf(report, types.StrategyTypeEMACrossover)
	suite.True(ok)
	suite.NoError(ema.Err)
	suite.Equal(types.Signal(0.005), ema.Signal)
}

func (suite *EvaluatorTestSuite) TestPanicIsRecovered() {
	panicking := mocks.NewMockStrategy(suite.ctrl)
	panicking.EXPECT().Name().Return(types.StrategyTypeMeanReversionZ).AnyTimes()
	panicking.EXPECT().Evaluate(gomock.Any()).DoAndReturn(func([]types.PriceBar) (types.Signal, error) {
		panic("index out of range")
	})

	evaluator := NewEvaluator([]strategy.Strategy{
		panicking,
		suite.mockStrategy(types.StrategyTypeRunLength, 0.0008, nil),
	}, suite.log)

	report, err := evaluator.Evaluate(context.Background(), suite.bars)
	suite.Require().NoError(err)

	res, ok := resultOf(report, types.StrategyTypeMeanReversionZ)
	suite.True(ok)
	suite.Error(res.Err)
	suite.True(errors.HasCode(res.Err, errors.ErrCodeStrategyEvaluation))
	suite.Contains(res.Err.Error(), "index out of range")
	suite.Equal(types.NoSignal, res.Signal)

	res, ok = resultOf(report, types.StrategyTypeRunLength)
	suite.True(ok)
	suite.Equal(types.Signal(0.0008), res.Signal)
}

func (suite *EvaluatorTestSuite) TestCancelledContext() {
	s := mocks.NewMockStrategy(suite.ctrl)
	s.EXPECT().Name().Return(types.StrategyTypeRunLength).AnyTimes()
	s.EXPECT().Evaluate(gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEvaluator([]strategy.Strategy{s}, suite.log).Evaluate(ctx, suite.bars)
	suite.ErrorIs(err, context.Canceled)
}

func (suite *EvaluatorTestSuite) TestOnResultCallback() {
	var (
		mu   sync.Mutex
		seen []types.StrategyType
	)

	onResult := OnResultCallback(func(result Result) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, result.Strategy)
	})

	evaluator := NewEvaluator([]strategy.Strategy{
		suite.mockStrategy(types.StrategyTypeRunLength, types.NoSignal, nil),
		suite.mockStrategy(types.StrategyTypeSMACrossover, types.NoSignal, nil),
	}, suite.log, WithCallbacks(Callbacks{OnResult: &onResult}), WithConcurrency(1))

	_, err := evaluator.Evaluate(context.Background(), suite.bars)
	suite.Require().NoError(err)
	suite.ElementsMatch([]types.StrategyType{types.StrategyTypeRunLength, types.StrategyTypeSMACrossover}, seen)
}

func (suite *EvaluatorTestSuite) TestEmptySeries() {
	evaluator := NewEvaluator(strategy.All(), nil)

	report, err := evaluator.Evaluate(context.Background(), nil)
	suite.Require().NoError(err)
	suite.Len(report.Results, 5)
	suite.Empty(report.Symbol)

	for _, res := range report.Results {
		suite.NoError(res.Err)
		suite.Equal(types.NoSignal, res.Signal)
	}
}

func (suite *EvaluatorTestSuite) TestBuiltInStrategiesMatchDirectCalls() {
	evaluator := NewEvaluator(strategy.All(), suite.log)

	report, err := evaluator.Evaluate(context.Background(), suite.bars)
	suite.Require().NoError(err)

	for i, s := range strategy.All() {
		signal, err := s.Evaluate(suite.bars)
		suite.Equal(s.Name(), report.Results[i].Strategy)
		suite.Equal(err, report.Results[i].Err)
		suite.Equal(signal, report.Results[i].Signal)
	}
}

func (suite *EvaluatorTestSuite) TestNewEvaluatorFromRegistry() {
	registry := mocks.NewMockRegistry(suite.ctrl)
	sma := strategy.NewSMACrossover()
	registry.EXPECT().GetStrategy(types.StrategyTypeSMACrossover).Return(sma, nil)

	evaluator, err := NewEvaluatorFromRegistry(registry, []types.StrategyType{types.StrategyTypeSMACrossover}, suite.log)
	suite.Require().NoError(err)
	suite.Equal([]types.StrategyType{types.StrategyTypeSMACrossover}, evaluator.Strategies())
}

func (suite *EvaluatorTestSuite) TestNewEvaluatorFromRegistryAll() {
	evaluator, err := NewEvaluatorFromRegistry(strategy.NewDefaultRegistry(), nil, suite.log)
	suite.Require().NoError(err)
	suite.Equal(types.AllStrategyTypes, evaluator.Strategies())
}

func (suite *EvaluatorTestSuite) TestNewEvaluatorFromRegistryUnknown() {
	registry := mocks.NewMockRegistry(suite.ctrl)
	registry.EXPECT().GetStrategy(types.StrategyType("rsi")).
		Return(nil, errors.New(errors.ErrCodeStrategyNotFound, "GetStrategy: strategy rsi not found"))

	_, err := NewEvaluatorFromRegistry(registry, []types.StrategyType{"rsi"}, suite.log)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyNotFound))
}

func resultOf(report Report, name types.StrategyType) (Result, bool) {
	for _, res := range report.Results {
		if res.Strategy == name {
			return res, true
		}
	}

	return Result{}, false
}
