package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signal/internal/config"
	"github.com/rxtech-lab/argo-signal/internal/datasource"
	"github.com/rxtech-lab/argo-signal/internal/engine"
	"github.com/rxtech-lab/argo-signal/internal/logger"
	"github.com/rxtech-lab/argo-signal/internal/series"
	"github.com/rxtech-lab/argo-signal/internal/strategy"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// evaluateOptions are the resolved inputs of one evaluate run.
type evaluateOptions struct {
	DataPath    string
	Config      config.Config
	Concurrency int
	JSON        bool
}

func evaluateCommand() *cli.Command {
	return &cli.Command{
		Name:  "evaluate",
		Usage: "Evaluate strategies on the most recent bar of a parquet or CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "data",
				Aliases:  []string{"d"},
				Usage:    "Path to the bar `FILE` (.parquet or .csv)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config `FILE`",
			},
			&cli.StringFlag{
				Name:    "symbol",
				Aliases: []string{"s"},
				Usage:   "Symbol to evaluate, overrides the config",
			},
			&cli.StringSliceFlag{
				Name:  "strategy",
				Usage: "Strategy to run, may be repeated; overrides the config",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Maximum strategies evaluated at once (0 = GOMAXPROCS)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the report as JSON",
			},
		},
		Action: evaluateAction,
	}
}

func evaluateAction(ctx context.Context, cmd *cli.Command) error {
	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if symbol := cmd.String("symbol"); symbol != "" {
		cfg.Symbol = symbol
	}

	if names := cmd.StringSlice("strategy"); len(names) > 0 {
		cfg.Strategies = make([]types.StrategyType, len(names))
		for i, name := range names {
			cfg.Strategies[i] = types.StrategyType(name)
		}

		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := logger.NewStderrLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	ds, err := datasource.NewDataSource(":memory:", log)
	if err != nil {
		return err
	}
	defer ds.Close()

	opts := evaluateOptions{
		DataPath:    cmd.String("data"),
		Config:      cfg,
		Concurrency: int(cmd.Int("concurrency")),
		JSON:        cmd.Bool("json"),
	}

	return runEvaluate(ctx, opts, ds, log, cmd.Root().Writer)
}

// runEvaluate loads the configured bars from ds, evaluates the strategies and writes the report to w.
func runEvaluate(ctx context.Context, opts evaluateOptions, ds datasource.DataSource, log *logger.Logger, w io.Writer) error {
	if err := ds.Initialize(opts.DataPath); err != nil {
		return err
	}

	symbol, err := resolveSymbol(ds, opts.Config.Symbol)
	if err != nil {
		return err
	}

	bars, err := ds.ReadBars(datasource.Query{
		Symbol: optional.Some(symbol),
		Start:  opts.Config.StartTime,
		End:    opts.Config.EndTime,
		Limit:  opts.Config.MaxBars,
	})
	if err != nil {
		return err
	}

	if len(bars) == 0 {
		return errors.Newf(errors.ErrCodeDataNotFound, "no bars for symbol %s in %s", symbol, opts.DataPath)
	}

	buffer := series.NewBuffer(opts.Config.MaxBars)
	buffer.AppendAll(bars)

	log.Info("Loaded bars",
		zap.String("symbol", symbol),
		zap.Int("bars", buffer.Len(symbol)),
		zap.Int("capacity", buffer.Capacity()),
		zap.Time("last", bars[len(bars)-1].Time),
	)

	evaluator, err := engine.NewEvaluatorFromRegistry(
		strategy.NewDefaultRegistry(),
		opts.Config.SelectedStrategies(),
		log,
		engine.WithConcurrency(opts.Concurrency),
	)
	if err != nil {
		return err
	}

	log.Info("Evaluating strategies", zap.Any("strategies", evaluator.Strategies()))

	report, err := evaluator.Evaluate(ctx, buffer.Snapshot(symbol))
	if err != nil {
		return err
	}

	if opts.JSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(newReportJSON(report))
	}

	return renderReport(w, report)
}

// resolveSymbol returns symbol, or the only symbol in ds when symbol is empty.
func resolveSymbol(ds datasource.DataSource, symbol string) (string, error) {
	if symbol != "" {
		return symbol, nil
	}

	symbols, err := ds.Symbols()
	if err != nil {
		return "", err
	}

	switch len(symbols) {
	case 0:
		return "", errors.New(errors.ErrCodeDataNotFound, "data file holds no bars")
	case 1:
		return symbols[0], nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidParameter, "data holds %d symbols %v, choose one with --symbol", len(symbols), symbols)
	}
}
