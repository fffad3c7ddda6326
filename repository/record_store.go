package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"madeireira-orcamento/models"
)

// RecordStore persists products, clients, the in-progress quote and the sales
// ledger to a single JSON file. Every write replaces the whole file.
type RecordStore struct {
	path string
	mu   sync.Mutex
}

// NewRecordStore creates a RecordStore backed by the file at path
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// Ensure RecordStore implements RecordStoreInterface
var _ RecordStoreInterface = (*RecordStore)(nil)

// Path returns the file the store reads and writes
func (s *RecordStore) Path() string {
	return s.path
}

// Load reads the persisted file. A missing file yields an empty dataset;
// unparseable content fails with models.ErrDataCorruption.
func (s *RecordStore) Load() (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		log.Printf("❌ Load: %v", err)
		return nil, err
	}
	log.Printf("✅ Load: %d products, %d clients, %d quote lines, %d sales from %s",
		len(data.Products), len(data.Clients), len(data.QuoteLines), len(data.Sales), s.path)
	return data, nil
}

// Save overwrites the file with the given products, clients and quote lines.
// Sales already recorded in the file are kept as they are.
func (s *RecordStore) Save(products []models.Product, clients []models.Client, lines []models.QuoteLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	data.Products = products
	data.Clients = clients
	data.QuoteLines = lines

	if err := s.write(data); err != nil {
		log.Printf("❌ Save: %v", err)
		return err
	}
	return nil
}

// AppendSales records one sale per quote line for the given client.
// The whole file is read, the sales appended and the file rewritten.
func (s *RecordStore) AppendSales(clientName string, lines []models.QuoteLine, meta models.SellerMeta, soldAt time.Time) ([]models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}

	sales := make([]models.Sale, 0, len(lines))
	for _, l := range lines {
		sales = append(sales, models.Sale{
			ID:                 uuid.NewString(),
			SoldAt:             soldAt.Format(time.RFC3339),
			ClientName:         clientName,
			ProductDescription: l.ProductDescription,
			LengthM:            l.LengthM,
			Quantity:           l.Quantity,
			SellPricePerMeter:  l.UnitSellPricePerMeter,
			UnitPrice:          l.UnitPrice,
			Total:              l.LineTotal,
			Profit:             l.LineProfit,
			Seller:             meta.Seller,
			PaymentMethod:      meta.PaymentMethod,
		})
	}
	data.Sales = append(data.Sales, sales...)

	if err := s.write(data); err != nil {
		log.Printf("❌ AppendSales: %v", err)
		return nil, err
	}
	log.Printf("✅ AppendSales: Recorded %d sales for client=%s", len(sales), clientName)
	return sales, nil
}

// read loads the file without locking
func (s *RecordStore) read() (*models.Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return emptyDataset(), nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var data models.Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrDataCorruption, s.path, err)
	}
	normalize(&data)
	return &data, nil
}

// write replaces the file atomically through a temp file in the same directory
func (s *RecordStore) write(data *models.Dataset) error {
	normalize(data)
	payload, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".dados-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close data file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

func emptyDataset() *models.Dataset {
	d := &models.Dataset{}
	normalize(d)
	return d
}

// normalize turns nil collections into empty ones so the file always has "[]"
func normalize(d *models.Dataset) {
	if d.Products == nil {
		d.Products = []models.Product{}
	}
	if d.Clients == nil {
		d.Clients = []models.Client{}
	}
	if d.QuoteLines == nil {
		d.QuoteLines = []models.QuoteLine{}
	}
	if d.Sales == nil {
		d.Sales = []models.Sale{}
	}
}
