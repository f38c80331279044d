package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	catalogsync "catalog-sync/feature/catalog/sync"
	"catalog-sync/feature/catalog/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	sourcePath    string
	storePath     string
	purgeMissing  bool
	watchSource   bool
	watchInterval int
)

// syncCmd runs one reconciliation pass, or a watch loop of passes.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync a spreadsheet or CSV source into the catalog store",
	Long: `Sync ingests a tabular source-of-truth and converges the normalized
SQLite store to match it: products are upserted in place, dimension and tag
rows are created on demand, tag links are reconciled to the row's set, and
optionally products missing from the source are marked inactive.

Examples:
  # One-shot sync
  catalog-sync sync --source products.xlsx

  # Sync a CSV into a specific store, deactivating missing products
  catalog-sync sync --source products.csv --db data/catalog.db --purge-missing

  # Keep watching the source and re-sync on every change
  catalog-sync sync --source products.xlsx --watch --interval 5`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&sourcePath, "source", "", "Path to the input spreadsheet (.xlsx) or CSV file")
	syncCmd.Flags().StringVar(&storePath, "db", "", "Path to the SQLite store (default from DATABASE_PATH)")
	syncCmd.Flags().BoolVar(&purgeMissing, "purge-missing", false, "Mark products absent from the source as inactive")
	syncCmd.Flags().BoolVar(&watchSource, "watch", false, "Watch the source file and re-sync on changes")
	syncCmd.Flags().IntVar(&watchInterval, "interval", 0, "Polling interval in seconds for --watch (default from WATCH_INTERVAL_SECONDS)")
	_ = syncCmd.MarkFlagRequired("source")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override environment configuration.
	if storePath != "" {
		cfg.Database.Path = storePath
	}
	if watchInterval > 0 {
		cfg.Watch.IntervalSeconds = watchInterval
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	// One-shot mode treats a missing source as a configuration error up
	// front; watch mode tolerates absence and keeps polling.
	if !watchSource {
		if _, err := os.Stat(sourcePath); err != nil {
			return fmt.Errorf("source file not readable: %w", err)
		}
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	engine := catalogsync.NewEngine(db, logg)
	opts := catalogsync.Options{
		Source:       sourcePath,
		PurgeMissing: purgeMissing,
	}

	if watchSource {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := &watch.Watcher{
			Path:     sourcePath,
			Interval: cfg.Watch.Interval(),
			Logger:   logg,
			Sync: func(ctx context.Context) error {
				_, err := engine.Run(ctx, opts)
				return err
			},
		}

		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		logg.Info("Watch loop stopped")
		return nil
	}

	summary, err := engine.Run(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	logg.Info("Sync complete",
		zap.String("source", sourcePath),
		zap.String("store", cfg.Database.Path),
		zap.Int("rows", summary.Rows),
		zap.Int("products", summary.Products),
		zap.Int("tags_linked", summary.TagsLinked),
		zap.Int64("purged", summary.Purged),
		zap.Duration("duration", summary.Duration))

	return nil
}
