package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"madeireira-orcamento/config"
)

var (
	dataFile string
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:   "madeireira",
	Short: "Quotes and sales tickets for a lumber yard",
	Long: `madeireira keeps the product catalog and the clients of a lumber yard,
assembles quotes with per-line pricing and profit, and prints the sales ticket.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if dataFile != "" {
			cfg.DataFile = dataFile
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&dataFile, "data", "d", "", "record file (default from DATA_FILE or dados.json)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importProductsCmd)
	rootCmd.AddCommand(salesReportCmd)
	rootCmd.AddCommand(ticketCmd)
}

func initConfig() {
	config.LoadEnvFile()
	cfg = config.Load()
}
