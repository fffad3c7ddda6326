package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"madeireira-orcamento/models"
	"madeireira-orcamento/repository"
)

// Session is the application state of one running instance: the in-memory
// collections loaded from the record store plus the quote being assembled.
// Every mutation goes through commit, which persists the full state before
// the change becomes visible.
type Session struct {
	mu         sync.Mutex
	store      repository.RecordStoreInterface
	data       *models.Dataset
	clientName string
}

// NewSession loads the record store and returns a session over its content.
// In-memory collections are fully replaced by what the file holds.
func NewSession(store repository.RecordStoreInterface) (*Session, error) {
	data, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return &Session{store: store, data: data}, nil
}

// commit applies mutate to a copy of the state, saves it and only then
// swaps it in. A failing mutation or save leaves the state untouched.
func (s *Session) commit(mutate func(d *models.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	if err := mutate(next); err != nil {
		return err
	}
	if err := s.store.Save(next.Products, next.Clients, next.QuoteLines); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	s.data = next
	return nil
}

// snapshot returns a copy of the current state
func (s *Session) snapshot() *models.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Quote returns the quote being assembled
func (s *Session) Quote() models.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Quote{
		ClientName: s.clientName,
		Lines:      append([]models.QuoteLine(nil), s.data.QuoteLines...),
	}
}

func (s *Session) setClient(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientName = name
}

// recordSales appends the finalized lines to the sales ledger
func (s *Session) recordSales(clientName string, lines []models.QuoteLine, meta models.SellerMeta, soldAt time.Time) ([]models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales, err := s.store.AppendSales(clientName, lines, meta, soldAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record sales: %w", err)
	}
	s.data.Sales = append(s.data.Sales, sales...)
	log.Printf("✅ recordSales: %d sales recorded for client=%s", len(sales), clientName)
	return sales, nil
}
