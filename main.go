package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"veridraft/config"
	"veridraft/gemini"
	"veridraft/report"
	"veridraft/review"
)

var (
	flagConfig  string
	flagModel   string
	flagTimeout time.Duration
	flagHTML    string
	flagDryRun  bool
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:           "veridraft [query]",
		Short:         "Draft, critique, rewrite and fact-check an answer with Gemini",
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&flagConfig, "config", "config.json", "path to JSON config (optional)")
	root.Flags().StringVar(&flagModel, "model", "", "model id (overrides config)")
	root.Flags().DurationVar(&flagTimeout, "timeout", 0, "per-exchange timeout (overrides config)")
	root.Flags().StringVar(&flagHTML, "html", "", "also write an HTML report to this path")
	root.Flags().BoolVar(&flagDryRun, "dry-run", false, "replay the canned demo exchanges instead of calling the API")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logs")

	if err := root.Execute(); err != nil {
		var stageErr *review.StageError
		if errors.As(err, &stageErr) {
			fmt.Fprintf(os.Stderr, "pipeline failed at stage %s: %v\n", stageErr.Stage, stageErr.Unwrap())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagVerbose)
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	query := review.DemoQuery
	if len(args) == 1 {
		query = args[0]
	}

	ctx := cmd.Context()

	var exec gemini.Executor
	if flagDryRun {
		log.Infow("dry run: replaying canned exchanges")
		exec = review.DemoScript()
	} else {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagModel != "" {
			cfg.Model = flagModel
		}
		if flagTimeout > 0 {
			cfg.Timeout = flagTimeout
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		client, err := gemini.NewClient(ctx, gemini.ClientConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}, log)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		log.Infow("client ready", "model", client.Model(), "timeout", cfg.Timeout)
		exec = client
	}

	res, err := review.NewPipeline(exec, log).Run(ctx, query)
	if err != nil {
		return err
	}

	if err := report.Write(os.Stdout, res); err != nil {
		return err
	}
	if flagHTML != "" {
		html, err := report.RenderHTML(res)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagHTML, html, 0o644); err != nil {
			return fmt.Errorf("write html report %s: %w", flagHTML, err)
		}
		log.Infow("html report written", "path", flagHTML)
	}
	return nil
}

// newLogger builds a console logger on stderr; the report itself goes to
// stdout.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
