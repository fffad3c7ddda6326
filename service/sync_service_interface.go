package service

import "context"

// SyncServiceInterface defines the contract for mirroring the sales ledger
type SyncServiceInterface interface {
	// SyncSales returns insertion stats: inserted = sales copied now,
	// skipped = already mirrored (by id), total = sales in the ledger.
	SyncSales(ctx context.Context) (inserted int, skipped int, total int, err error)
}
