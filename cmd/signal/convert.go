package main

import (
	"context"
	"fmt"

	"github.com/rxtech-lab/argo-signal/internal/datasource"
	"github.com/rxtech-lab/argo-signal/internal/logger"
	"github.com/urfave/cli/v3"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a bar file between parquet and CSV",
		ArgsUsage: "INPUT OUTPUT",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("convert expects INPUT and OUTPUT, got %d arguments", cmd.NArg())
			}

			log, err := logger.NewStderrLogger("warn")
			if err != nil {
				return err
			}
			defer log.Sync()

			ds, err := datasource.NewDataSource(":memory:", log)
			if err != nil {
				return err
			}
			defer ds.Close()

			n, err := convertBars(ds, cmd.Args().Get(0), cmd.Args().Get(1), log)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.Root().Writer, "wrote %d bars to %s\n", n, cmd.Args().Get(1))

			return err
		},
	}
}

// convertBars copies every bar of input into output; formats follow the file extensions.
func convertBars(ds datasource.DataSource, input, output string, log *logger.Logger) (int, error) {
	if err := ds.Initialize(input); err != nil {
		return 0, err
	}

	bars, err := ds.ReadBars(datasource.Query{})
	if err != nil {
		return 0, err
	}

	if err := datasource.WriteBars(output, bars, log); err != nil {
		return 0, err
	}

	return len(bars), nil
}
