package cmd

import (
	"fmt"

	"order-manager/core/config"
	"order-manager/core/database"
	"order-manager/core/logger"

	customerModels "order-manager/feature/customer/models"
	orderModels "order-manager/feature/order/models"
	profileModels "order-manager/feature/profile/models"
	stockModels "order-manager/feature/stock/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates every table the service uses.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Runs the schema migration for all tables: order lines, customers,
stock items, and the three profile tables. Safe to run repeatedly.`,
	RunE: runMigrate,
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	models := []any{
		&orderModels.OrderLine{},
		&customerModels.Customer{},
		&stockModels.StockItem{},
		&profileModels.AdminProfile{},
		&profileModels.DistributorProfile{},
		&profileModels.CorporateProfile{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	tables := []string{
		"order_lines", "customers", "stock_items",
		"admin_profiles", "distributor_profiles", "corporate_profiles",
	}
	for _, table := range tables {
		columns, err := database.GetTableColumns(db, table)
		if err != nil {
			l.Warn("Could not inspect table", zap.String("table", table), zap.Error(err))
			continue
		}
		l.Info("Migrated table", zap.String("table", table), zap.Int("columns", len(columns)))
	}
	return nil
}
