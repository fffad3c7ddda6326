package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"madeireira-orcamento/app"
	"madeireira-orcamento/utils"
)

var reportOutput string

var salesReportCmd = &cobra.Command{
	Use:   "sales-report",
	Short: "Print the sales summary and export it to xlsx",
	RunE:  runSalesReport,
}

func init() {
	salesReportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "xlsx file to write (summary only when empty)")
}

func runSalesReport(cmd *cobra.Command, args []string) error {
	a, err := app.Initialize(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	summary := a.Reports.Summary()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Vendas: %d  Total: %s  Lucro: %s\n",
		summary.Count, utils.FormatBRL(summary.Total), utils.FormatBRL(summary.Profit))
	for _, c := range summary.PerClient {
		fmt.Fprintf(out, "  %-30s %4d  %14s  %14s\n",
			c.ClientName, c.Count, utils.FormatBRL(c.Total), utils.FormatBRL(c.Profit))
	}

	if reportOutput == "" {
		return nil
	}

	f, err := os.Create(reportOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", reportOutput, err)
	}
	if err := a.Reports.ExportSales(f); err != nil {
		f.Close()
		os.Remove(reportOutput)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", reportOutput, err)
	}

	log.Printf("Sales report written to %s", reportOutput)
	return nil
}
