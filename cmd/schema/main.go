package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/drafty/internal/app"
	"github.com/riskibarqy/drafty/internal/infrastructure/repository/sqldb"
	"github.com/riskibarqy/drafty/internal/platform/logging"
)

var rootCmd = &cobra.Command{
	Use:           "schema [command]",
	Short:         "Inspect and rebuild the drafty tables",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List every table with its row count",
	Args:  cobra.NoArgs,
	RunE: withSchema(func(ctx context.Context, schema *sqldb.Schema, _ []string) error {
		items, err := schema.Status(ctx)
		if err != nil {
			return err
		}
		for _, item := range items {
			kind := "normalized"
			if item.Derived {
				kind = "derived"
			}
			if !item.Exists {
				fmt.Printf("%-22s %-10s missing\n", item.Name, kind)
				continue
			}
			fmt.Printf("%-22s %-10s %d rows\n", item.Name, kind, item.Rows)
		}
		return nil
	}),
}

var ensureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Create missing tables",
	Args:  cobra.NoArgs,
	RunE: withSchema(func(ctx context.Context, schema *sqldb.Schema, _ []string) error {
		created, err := schema.Ensure(ctx)
		if err != nil {
			return err
		}
		if len(created) == 0 {
			fmt.Println("no tables created")
			return nil
		}
		fmt.Printf("created: %s\n", strings.Join(created, ", "))
		return nil
	}),
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild <table>",
	Short: "Drop and recreate one table",
	Args:  cobra.ExactArgs(1),
	RunE: withSchema(func(ctx context.Context, schema *sqldb.Schema, args []string) error {
		name := strings.TrimSpace(args[0])
		if err := schema.Rebuild(ctx, name); err != nil {
			return err
		}
		fmt.Printf("rebuilt %s\n", name)
		return nil
	}),
}

var rebuildDerivedCmd = &cobra.Command{
	Use:   "rebuild-derived",
	Short: "Drop and recreate every derived table",
	Args:  cobra.NoArgs,
	RunE: withSchema(func(ctx context.Context, schema *sqldb.Schema, _ []string) error {
		rebuilt, err := schema.RebuildDerived(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("rebuilt: %s\n", strings.Join(rebuilt, ", "))
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(statusCmd, ensureCmd, rebuildCmd, rebuildDerivedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(os.Args[0]), err)
		os.Exit(1)
	}
}

func withSchema(fn func(context.Context, *sqldb.Schema, []string) error) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger := logging.NewJSON(cfg.Log.Level)
		db, err := app.OpenStore(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore(db)

		return fn(ctx, sqldb.NewSchema(db), args)
	}
}

func closeStore(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close store: %v\n", err)
	}
}
