package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"order-manager/core/config"
	"order-manager/core/database"
	"order-manager/core/logger"
	"order-manager/feature/order/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileFile   string
	reconcileDryRun bool
)

// reconcileCmd applies a line file to one order from the command line.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <order-no>",
	Short: "Reconcile order lines from a JSON file",
	Long: `Reconcile an order against a JSON array of line objects, the same
format the HTTP endpoint accepts.

Examples:
  # Apply lines to an order
  order-manager reconcile SO-1001 --file lines.json

  # Show what would happen without touching the database
  order-manager reconcile SO-1001 --file lines.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileFile, "file", "", "Path to the JSON line file (required)")
	reconcileCmd.Flags().BoolVar(&reconcileDryRun, "dry-run", false, "Print the partition plan without writing")
	_ = reconcileCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	orderNo := args[0]

	raw, err := os.ReadFile(reconcileFile)
	if err != nil {
		return fmt.Errorf("failed to read line file: %w", err)
	}
	var maps []map[string]any
	if err := json.Unmarshal(raw, &maps); err != nil {
		return fmt.Errorf("line file must be a JSON array of objects: %w", err)
	}
	items := reconcile.ItemsFromMaps(maps)

	if reconcileDryRun {
		plan := reconcile.BuildPlan(orderNo, items)
		out, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

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

	res, err := reconcile.New(db, l).Reconcile(context.Background(), orderNo, items)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	l.Info("Reconciliation finished",
		zap.String("order_no", orderNo),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("deleted", res.Deleted),
		zap.Int("skipped", res.Skipped),
		zap.Int("lines", len(res.Rows)),
	)
	return nil
}
