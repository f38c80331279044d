package cmd

import (
	"fmt"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	statsStorePath string
	statsColumns   bool
)

// statsCmd reports row counts for the catalog store.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show row counts for the catalog store",
	Long: `Stats inspects the SQLite store and reports the row count of every
catalog table plus the number of inactive products. Read-only.

Examples:
  catalog-sync stats
  catalog-sync stats --db data/catalog.db --columns`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsStorePath, "db", "", "Path to the SQLite store (default from DATABASE_PATH)")
	statsCmd.Flags().BoolVar(&statsColumns, "columns", false, "Also dump the column definitions of each table")

	RootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if statsStorePath != "" {
		cfg.Database.Path = statsStorePath
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	stats, err := database.CollectStats(db, models.TableNames())
	if err != nil {
		return fmt.Errorf("failed to collect stats: %w", err)
	}

	for _, stat := range stats {
		logg.Info("Table stats",
			zap.String("table", stat.Table),
			zap.Int64("rows", stat.Rows))

		if statsColumns {
			columns, err := database.GetTableColumns(db, stat.Table)
			if err != nil {
				return err
			}
			for _, col := range columns {
				logg.Info("Column",
					zap.String("table", stat.Table),
					zap.String("field", col.Field),
					zap.String("type", col.Type),
					zap.Bool("not_null", col.NotNull),
					zap.Bool("pk", col.PK))
			}
		}
	}

	if db.Migrator().HasTable("products") {
		var inactive int64
		if err := db.Model(&models.Product{}).Where("is_active = ?", false).Count(&inactive).Error; err != nil {
			return fmt.Errorf("failed to count inactive products: %w", err)
		}
		logg.Info("Inactive products", zap.Int64("count", inactive))
	}

	return nil
}
