package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rxtech-lab/argo-signal/internal/engine"
	"github.com/rxtech-lab/argo-signal/internal/strategy"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/shopspring/decimal"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for secondary text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for failed strategies.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	actionStyles = map[types.SignalAction]lipgloss.Style{
		types.SignalActionBuy:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		types.SignalActionSell: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		types.SignalActionHold: lipgloss.NewStyle().Faint(true),
	}
)

// FormatAction renders an action with a direction marker.
func FormatAction(action types.SignalAction) string {
	switch action {
	case types.SignalActionBuy:
		return actionStyles[action].Render("BUY ▲")
	case types.SignalActionSell:
		return actionStyles[action].Render("SELL ▼")
	default:
		return actionStyles[types.SignalActionHold].Render("HOLD")
	}
}

func renderReport(w io.Writer, report engine.Report) error {
	header := fmt.Sprintf("%s  %s  (%d bars, run %s)",
		report.Symbol, report.BarTime.Format(time.RFC3339), report.Bars, report.RunID)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STRATEGY", "ACTION", "SIGNAL", "QUANTITY", "DURATION")

	for _, res := range report.Results {
		if res.Err != nil {
			t.Row(string(res.Strategy), ErrorStyle.Render("ERROR"), "-", "-", ErrorStyle.Render(res.Err.Error()))

			continue
		}

		t.Row(
			string(res.Strategy),
			FormatAction(res.Action()),
			res.Signal.Decimal().String(),
			res.Signal.Quantity().String(),
			res.Duration.String(),
		)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", TitleStyle.Render(header), t.Render())

	return err
}

func renderStrategies(w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "MIN BARS", "DESCRIPTION")

	for _, s := range strategy.All() {
		t.Row(string(s.Name()), strconv.Itoa(s.MinBars()), s.Description())
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(), HelpStyle.Render("A series must hold more than MIN BARS bars to produce a signal."))

	return err
}

type resultJSON struct {
	Strategy   types.StrategyType `json:"strategy"`
	Action     types.SignalAction `json:"action"`
	Signal     decimal.Decimal    `json:"signal"`
	Quantity   decimal.Decimal    `json:"quantity"`
	Error      string             `json:"error,omitempty"`
	DurationNs int64              `json:"duration_ns"`
}

type reportJSON struct {
	RunID   string       `json:"run_id"`
	Symbol  string       `json:"symbol"`
	BarTime time.Time    `json:"bar_time"`
	Bars    int          `json:"bars"`
	Results []resultJSON `json:"results"`
}

func newReportJSON(report engine.Report) reportJSON {
	out := reportJSON{
		RunID:   report.RunID,
		Symbol:  report.Symbol,
		BarTime: report.BarTime,
		Bars:    report.Bars,
		Results: make([]resultJSON, len(report.Results)),
	}

	for i, res := range report.Results {
		out.Results[i] = resultJSON{
			Strategy:   res.Strategy,
			Action:     res.Action(),
			Signal:     res.Signal.Decimal(),
			Quantity:   res.Signal.Quantity(),
			DurationNs: res.Duration.Nanoseconds(),
		}

		if res.Err != nil {
			out.Results[i].Error = res.Err.Error()
		}
	}

	return out
}
