package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"madeireira-orcamento/app"
)

var csvFile string

var importProductsCmd = &cobra.Command{
	Use:   "import-products",
	Short: "Import products from a CSV file",
	Long: `Import products from a CSV file with the header
descricao,tipo_madeira,largura,espessura,custo_m3.
Every row must be valid or nothing is imported.`,
	RunE: runImportProducts,
}

func init() {
	importProductsCmd.Flags().StringVarP(&csvFile, "csv", "c", "", "CSV file to import (required)")
	importProductsCmd.MarkFlagRequired("csv")
}

func runImportProducts(cmd *cobra.Command, args []string) error {
	f, err := os.Open(csvFile)
	if err != nil {
		return fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	a, err := app.Initialize(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	imported, err := a.Catalog.ImportProducts(f)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", csvFile, err)
	}

	log.Printf("Imported %d products from %s", imported, csvFile)
	return nil
}
