package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"madeireira-orcamento/app"
	"madeireira-orcamento/models"
	"madeireira-orcamento/utils"
)

var (
	ticketClient string
	ticketMeta   models.SellerMeta
	keepQuote    bool
)

var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Print the sales ticket of the saved quote",
	Long: `Bind the saved quote lines to a client, print the sales ticket and
record the sale. The quote is cleared afterwards unless --keep is given.`,
	RunE: runTicket,
}

func init() {
	ticketCmd.Flags().StringVar(&ticketClient, "client", "", "client name (required)")
	ticketCmd.Flags().StringVar(&ticketMeta.Seller, "seller", "", "seller name")
	ticketCmd.Flags().StringVar(&ticketMeta.PaymentMethod, "payment-method", "", "payment method")
	ticketCmd.Flags().StringVar(&ticketMeta.PaymentTerms, "payment-terms", "", "payment terms")
	ticketCmd.Flags().StringVar(&ticketMeta.CreditUsed, "credit-used", "", "credit limit used")
	ticketCmd.Flags().StringVar(&ticketMeta.CreditAvailable, "credit-available", "", "credit limit available")
	ticketCmd.Flags().BoolVar(&keepQuote, "keep", false, "keep the quote lines after printing")
	ticketCmd.MarkFlagRequired("client")
}

func runTicket(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := app.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.Quotes.SelectClient(ticketClient); err != nil {
		return err
	}

	resp, err := a.Tickets.Generate(ctx, ticketMeta)
	if err != nil {
		return fmt.Errorf("failed to generate ticket: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Ticket %s: %s, %d lines, %s\n",
		resp.File, resp.ClientName, resp.Lines, utils.FormatBRL(resp.Total))

	if keepQuote {
		return nil
	}
	return a.Quotes.Reset()
}
