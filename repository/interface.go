package repository

import (
	"context"
	"time"

	"madeireira-orcamento/models"
)

// RecordStoreInterface defines the contract for the persisted record file
type RecordStoreInterface interface {
	Load() (*models.Dataset, error)
	Save(products []models.Product, clients []models.Client, lines []models.QuoteLine) error
	AppendSales(clientName string, lines []models.QuoteLine, meta models.SellerMeta, soldAt time.Time) ([]models.Sale, error)
}

// SaleMirrorInterface defines the contract for copying finalized sales to an
// external database
type SaleMirrorInterface interface {
	EnsureSchema(ctx context.Context) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	InsertSales(ctx context.Context, sales []models.Sale) error
}
