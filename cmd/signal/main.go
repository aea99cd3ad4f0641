package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rxtech-lab/argo-signal/internal/config"
	"github.com/rxtech-lab/argo-signal/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "signal",
		Usage:   "Evaluate trading signal strategies against historical bars",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			evaluateCommand(),
			convertCommand(),
			{
				Name:  "strategies",
				Usage: "List the built-in strategies",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return renderStrategies(cmd.Root().Writer)
				},
			},
			{
				Name:  "schema",
				Usage: "Print the JSON schema of the config file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the schema to `FILE` instead of stdout",
					},
				},
				Action: schemaAction,
			},
			{
				Name:  "version",
				Usage: "Print the engine version",
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintln(cmd.Root().Writer, version.GetVersion())

					return err
				},
			},
		},
	}
}

func schemaAction(_ context.Context, cmd *cli.Command) error {
	cfg := config.Default()

	schemaJSON, err := cfg.GenerateSchemaJSON()
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		return os.WriteFile(path, []byte(schemaJSON+"\n"), 0644)
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, schemaJSON)

	return err
}
