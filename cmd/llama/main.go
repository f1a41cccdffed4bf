// Package main provides the llama command, a thin shell over the DefiLlama client
// that prints every response as indented JSON.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v3"

	"github.com/caentzminger/defillama"
	"github.com/caentzminger/defillama/apierrors"
	"github.com/caentzminger/defillama/internal/config"
	"github.com/caentzminger/defillama/internal/logging"
)

var jsonOut = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// app carries what every subcommand needs once Before has run.
type app struct {
	client  *defillama.Client
	logger  *logging.Logger
	logFile io.Closer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(&app{}).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "llama",
		Usage: "query the public DefiLlama APIs",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every request to stderr",
			},
		},
		Before: a.setup,
		After: func(context.Context, *cli.Command) error {
			a.shutdown()
			return nil
		},
		Commands: append(append(append(append(
			tvlCommands(a),
			coinCommands(a)...),
			stablecoinCommands(a)...),
			yieldCommands(a)...),
			volumeCommands(a)...),
	}
}

// setup loads configuration and builds the logger and client.
func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return ctx, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := logging.ParseLogLevel(cfg.Logging.Level)
	if cmd.Bool("verbose") {
		level = logging.LevelDebug
	}
	a.logger = logging.InitGlobalLogger(level, logging.ParseLogFormat(cfg.Logging.Format))
	if cfg.Logging.File != "" {
		a.logFile = a.logger.SetFileOutput(logging.FileOptions{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		})
	}

	clientCfg := cfg.ClientConfig()
	clientCfg.Logger = a.logger.FieldLogger()
	a.client, err = defillama.NewClient(clientCfg)
	if err != nil {
		return ctx, err
	}

	a.logger.WithFields(map[string]interface{}{
		"api_url":   cfg.API.URL,
		"coins_url": cfg.API.CoinsURL,
		"timeout":   cfg.API.Timeout.String(),
	}).Debug("client ready")

	return logging.WithLogger(ctx, a.logger), nil
}

func (a *app) shutdown() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// run adapts an operation into a cli action: the result is printed on success,
// failures are reported with their category.
func run[T any](fn func(ctx context.Context, cmd *cli.Command) (T, error)) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		logger := logging.FromContext(ctx).WithField("command", cmd.Name)
		logger.WithField("args", cmd.Args().Slice()).Debug("running command")

		result, err := fn(ctx, cmd)
		if err != nil {
			logger.WithError(err).Debug("command failed")
			return failure(err)
		}
		return printJSON(cmd.Root().Writer, result)
	}
}

func failure(err error) error {
	category := apierrors.Categorize(err)
	if category == "" {
		return cli.Exit(err.Error(), 1)
	}
	return cli.Exit(fmt.Sprintf("%s error: %v", category, err), 1)
}

func printJSON(w io.Writer, v any) error {
	if w == nil {
		w = os.Stdout
	}
	enc := jsonOut.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
