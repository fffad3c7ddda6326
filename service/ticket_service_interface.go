package service

import (
	"context"

	"madeireira-orcamento/models"
)

// TicketServiceInterface defines the contract for rendering and generating tickets
type TicketServiceInterface interface {
	Generate(ctx context.Context, meta models.SellerMeta) (*models.TicketResponse, error)
}

// TicketPrinterInterface turns the ticket HTML into a PDF document
type TicketPrinterInterface interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

// TicketArchiveInterface stores a copy of every generated ticket
type TicketArchiveInterface interface {
	UploadTicket(ctx context.Context, name string, pdf []byte) (string, error)
}
