package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"madeireira-orcamento/app"
)

var syncSalesCmd = &cobra.Command{
	Use:   "sync-sales",
	Short: "Copy the sales ledger into the Postgres sales mirror",
	Long: `Copy every sale of the record file that is not mirrored yet into the
vendas table of DATABASE_URL. Safe to run repeatedly.`,
	RunE: runSyncSales,
}

func init() {
	rootCmd.AddCommand(syncSalesCmd)
}

func runSyncSales(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := app.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.Sync == nil {
		return errors.New("sales mirror is not available: set DATABASE_URL or DB_HOST/DB_USER/DB_NAME")
	}

	inserted, skipped, total, err := a.Sync.SyncSales(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sales: %d total, %d inserted, %d already mirrored\n", total, inserted, skipped)
	return nil
}
