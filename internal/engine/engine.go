package engine

import (
	"time"

	"github.com/rxtech-lab/argo-signal/internal/types"
)

// Result is the outcome of one strategy for one series.
type Result struct {
	// Strategy is the strategy that produced the result
	Strategy types.StrategyType
	// Signal is the strategy output; NoSignal when Err is set
	Signal types.Signal
	// Err is set when the strategy failed on degenerate data
	Err error
	// Duration is the wall time spent in Evaluate
	Duration time.Duration
}

// Action classifies the result's signal.
func (r Result) Action() types.SignalAction {
	return r.Signal.Action()
}

// Report collects the results of one evaluation run.
type Report struct {
	// RunID uniquely identifies the evaluation run
	RunID string
	// Symbol of the latest bar, if any
	Symbol string
	// BarTime is the time of the latest bar
	BarTime time.Time
	// Bars is the length of the evaluated series
	Bars int
	// Results holds one entry per strategy, in evaluator order
	Results []Result
}

// Failed returns the results whose strategy failed.
func (r Report) Failed() []Result {
	var failed []Result

	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}

	return failed
}

// OnResultCallback is called once per strategy as soon as it finishes.
// It may be called from several goroutines at once.
type OnResultCallback func(result Result)

// Callbacks holds optional hooks. A nil field means no callback.
type Callbacks struct {
	OnResult *OnResultCallback
}
