package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"madeireira-orcamento/models"
)

// SaleRepository mirrors finalized sales into the vendas table of a Postgres
// database. The JSON record file stays the source of truth.
type SaleRepository struct {
	conn *sql.DB
}

// NewSaleRepository creates a new SaleRepository on an open connection
func NewSaleRepository(conn *sql.DB) *SaleRepository {
	return &SaleRepository{conn: conn}
}

// Ensure SaleRepository implements SaleMirrorInterface
var _ SaleMirrorInterface = (*SaleRepository)(nil)

const createSalesTable = `
	CREATE TABLE IF NOT EXISTS vendas (
		id            UUID PRIMARY KEY,
		sold_at       TIMESTAMPTZ NOT NULL,
		client_name   TEXT NOT NULL,
		description   TEXT NOT NULL,
		length_m      NUMERIC(12,3) NOT NULL,
		quantity      INTEGER NOT NULL,
		price_per_m   NUMERIC(12,2) NOT NULL,
		unit_price    NUMERIC(12,2) NOT NULL,
		total         NUMERIC(12,2) NOT NULL,
		profit        NUMERIC(12,4) NOT NULL,
		seller        TEXT,
		payment_method TEXT
	)
`

// EnsureSchema creates the vendas table when it does not exist
func (r *SaleRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, createSalesTable); err != nil {
		return fmt.Errorf("failed to create vendas table: %w", err)
	}
	return nil
}

// ExistsByID checks if a sale is already mirrored
func (r *SaleRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM vendas WHERE id = $1)`
	if err := r.conn.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence of sale %s: %w", id, err)
	}
	return exists, nil
}

// InsertSales inserts all sales in a single transaction. Sales already
// mirrored (same id) are skipped.
func (r *SaleRepository) InsertSales(ctx context.Context, sales []models.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	log.Printf("📦 InsertSales: Mirroring %d sales", len(sales))

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO vendas (id, sold_at, client_name, description, length_m, quantity,
			price_per_m, unit_price, total, profit, seller, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING
	`
	for _, s := range sales {
		soldAt, err := time.Parse(time.RFC3339, s.SoldAt)
		if err != nil {
			return fmt.Errorf("invalid sale date %q: %w", s.SoldAt, err)
		}
		_, err = tx.ExecContext(ctx, query,
			s.ID, soldAt, s.ClientName, s.ProductDescription, s.LengthM, s.Quantity,
			s.SellPricePerMeter, s.UnitPrice, s.Total, s.Profit, s.Seller, s.PaymentMethod)
		if err != nil {
			return fmt.Errorf("failed to insert sale %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Printf("✅ InsertSales: Mirrored %d sales", len(sales))
	return nil
}
