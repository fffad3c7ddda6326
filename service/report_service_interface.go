package service

import (
	"io"

	"madeireira-orcamento/models"
)

// ReportServiceInterface defines the contract for the sales report
type ReportServiceInterface interface {
	Summary() models.SalesSummary
	ExportSales(w io.Writer) error
}
