package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-signal/internal/logger"
	"github.com/rxtech-lab/argo-signal/internal/strategy"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Evaluator runs a fixed set of strategies against a bar series.
//
// Every strategy sees the same read-only series. A failing or panicking
// strategy is recorded in its own Result and never affects the others.
type Evaluator struct {
	strategies  []strategy.Strategy
	log         *logger.Logger
	concurrency int
	callbacks   Callbacks
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithConcurrency caps the number of strategies evaluated at once.
// Values below 1 mean no cap.
func WithConcurrency(n int) Option {
	return func(e *Evaluator) {
		e.concurrency = n
	}
}

// WithCallbacks installs lifecycle callbacks.
func WithCallbacks(callbacks Callbacks) Option {
	return func(e *Evaluator) {
		e.callbacks = callbacks
	}
}

// NewEvaluator creates an evaluator for strategies, evaluated and reported in the given order.
func NewEvaluator(strategies []strategy.Strategy, log *logger.Logger, opts ...Option) *Evaluator {
	if log == nil {
		log = logger.NewNopLogger()
	}

	e := &Evaluator{
		strategies:  strategies,
		log:         log,
		concurrency: runtime.GOMAXPROCS(0),
		callbacks:   Callbacks{OnResult: nil},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// NewEvaluatorFromRegistry looks up names in registry. An empty names list
// selects every registered strategy.
func NewEvaluatorFromRegistry(registry strategy.Registry, names []types.StrategyType, log *logger.Logger, opts ...Option) (*Evaluator, error) {
	if len(names) == 0 {
		names = registry.ListStrategies()
	}

	strategies := make([]strategy.Strategy, 0, len(names))
	for _, name := range names {
		s, err := registry.GetStrategy(name)
		if err != nil {
			return nil, err
		}

		strategies = append(strategies, s)
	}

	return NewEvaluator(strategies, log, opts...), nil
}

// Strategies returns the names of the configured strategies in order.
func (e *Evaluator) Strategies() []types.StrategyType {
	names := make([]types.StrategyType, len(e.strategies))
	for i, s := range e.strategies {
		names[i] = s.Name()
	}

	return names
}

// Evaluate runs every strategy on bars. The returned error is non-nil only
// when ctx is done; strategy failures live in Report.Results.
func (e *Evaluator) Evaluate(ctx context.Context, bars []types.PriceBar) (Report, error) {
	report := Report{
		RunID:   uuid.New().String(),
		Bars:    len(bars),
		Results: make([]Result, len(e.strategies)),
	}

	if len(bars) > 0 {
		report.Symbol = bars[len(bars)-1].Symbol
		report.BarTime = bars[len(bars)-1].Time
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	log := e.log.With(zap.String("run_id", report.RunID), zap.Int("bars", len(bars)))
	log.Debug("Evaluating strategies", zap.Int("strategies", len(e.strategies)))

	g := new(errgroup.Group)
	if e.concurrency > 0 {
		g.SetLimit(e.concurrency)
	}

	for i, s := range e.strategies {
		g.Go(func() error {
			// each goroutine owns exactly one slot
			report.Results[i] = e.evaluateOne(ctx, log, s, bars)

			if e.callbacks.OnResult != nil {
				(*e.callbacks.OnResult)(report.Results[i])
			}

			return nil
		})
	}

	_ = g.Wait()

	if failed := report.Failed(); len(failed) > 0 {
		log.Warn("Some strategies failed", zap.Int("failed", len(failed)))
	}

	return report, ctx.Err()
}

func (e *Evaluator) evaluateOne(ctx context.Context, log *logger.Logger, s strategy.Strategy, bars []types.PriceBar) (result Result) {
	name := s.Name()
	result.Strategy = name

	if err := ctx.Err(); err != nil {
		result.Err = err

		return result
	}

	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)

		if r := recover(); r != nil {
			result.Signal = types.NoSignal
			result.Err = errors.Wrapf(errors.ErrCodeStrategyEvaluation, fmt.Errorf("panic: %v", r), "%s: evaluation panicked", name)
		}

		if result.Err != nil {
			log.Warn("Strategy failed", zap.String("strategy", string(name)), zap.Error(result.Err))

			return
		}

		log.Debug("Strategy evaluated",
			zap.String("strategy", string(name)),
			zap.Float64("signal", result.Signal.Float64()),
			zap.String("action", string(result.Signal.Action())),
			zap.Duration("duration", result.Duration),
		)
	}()

	signal, err := s.Evaluate(bars)
	if err != nil {
		result.Signal = types.NoSignal
		result.Err = err

		return result
	}

	result.Signal = signal

	return result
}
