package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/drafty/internal/app"
	"github.com/riskibarqy/drafty/internal/platform/logging"
)

var refresh bool

var rootCmd = &cobra.Command{
	Use:   "drafty",
	Short: "Fetch a draft league, load it into the store and rebuild the dashboard exports",
	Long: `Runs one pipeline pass:
1. Fetch league, entry and gameweek JSON into the staging directory
2. Load staged files into normalized tables
3. Rebuild derived tables and rewrite the CSV exports

With --refresh=false the fetch and load steps are skipped and the
transforms replay over the tables already in the store.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&refresh, "refresh", true, "Fetch and load fresh data before transforming")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Default().Error("drafty run failed", "error", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := app.Run(ctx, cfg, logger, refresh)
	if err != nil {
		logger.ErrorContext(ctx, "pipeline failed",
			"error", err,
			"stages_run", result.StagesRun,
			"stages_failed", result.StagesFailed,
		)
		return err
	}
	return nil
}
