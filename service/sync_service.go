package service

import (
	"context"
	"fmt"
	"log"

	"madeireira-orcamento/models"
	"madeireira-orcamento/repository"
)

// SyncService copies the sales ledger of the record file into the sales mirror.
// Sales already mirrored are skipped, so it can be run any number of times.
type SyncService struct {
	session *Session
	mirror  repository.SaleMirrorInterface
}

// NewSyncService creates a new SyncService
func NewSyncService(session *Session, mirror repository.SaleMirrorInterface) *SyncService {
	return &SyncService{
		session: session,
		mirror:  mirror,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncSales mirrors every sale of the ledger that is not mirrored yet.
// inserted = sales copied now, skipped = already mirrored, total = sales in the ledger.
// A sale that fails is logged and left for the next run.
func (s *SyncService) SyncSales(ctx context.Context) (inserted int, skipped int, total int, err error) {
	sales := s.session.snapshot().Sales
	total = len(sales)
	log.Printf("🔄 SyncSales: Processing %d sales from the ledger", total)

	if err := s.mirror.EnsureSchema(ctx); err != nil {
		return 0, 0, total, fmt.Errorf("failed to prepare sales mirror: %w", err)
	}

	for _, sale := range sales {
		if err := ctx.Err(); err != nil {
			return inserted, skipped, total, err
		}

		exists, err := s.mirror.ExistsByID(ctx, sale.ID)
		if err != nil {
			log.Printf("❌ SyncSales: Error checking sale %s: %v", sale.ID, err)
			continue
		}
		if exists {
			skipped++
			continue
		}

		if err := s.mirror.InsertSales(ctx, []models.Sale{sale}); err != nil {
			log.Printf("❌ SyncSales: Error inserting sale %s: %v", sale.ID, err)
			continue
		}
		inserted++
	}

	log.Printf("🎉 SyncSales: %d inserted, %d skipped, %d total", inserted, skipped, total)
	return inserted, skipped, total, nil
}
