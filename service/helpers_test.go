package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"madeireira-orcamento/models"
	"madeireira-orcamento/repository"
)

func newTestSession(t *testing.T) (*Session, *repository.RecordStore) {
	t.Helper()
	store := repository.NewRecordStore(filepath.Join(t.TempDir(), "dados.json"))
	session, err := NewSession(store)
	require.NoError(t, err)
	return session, store
}

func pinusInput() models.ProductInput {
	return models.ProductInput{
		Description:       "TABUA PINUS",
		WoodType:          "PINUS",
		Width:             "2",
		Thickness:         "15",
		CostPerCubicMeter: "800",
	}
}

func mariaInput() models.ClientInput {
	return models.ClientInput{
		Name:           "MARIA SILVA",
		DocumentType:   "CPF",
		DocumentNumber: "12345678901",
		Address:        "RUA A, 10",
		City:           "XAMBRE",
		Phone:          "44999990000",
	}
}

func pinusLine(length, quantity, price string) models.AddLineRequest {
	return models.AddLineRequest{
		ProductKey:    models.ProductKey{Description: "TABUA PINUS", WoodType: "PINUS", WidthCM: 2, ThicknessCM: 15},
		Length:        length,
		Quantity:      quantity,
		SellPricePerM: price,
	}
}

// seededSession returns a session with TABUA PINUS and MARIA SILVA registered
func seededSession(t *testing.T) (*Session, *repository.RecordStore) {
	t.Helper()
	session, store := newTestSession(t)
	catalog := NewCatalogService(session)
	_, err := catalog.AddProduct(pinusInput())
	require.NoError(t, err)
	_, err = catalog.AddClient(mariaInput())
	require.NoError(t, err)
	return session, store
}

var errDiskFull = errors.New("disk full")

// failingStore fails every write once failWrites is set
type failingStore struct {
	repository.RecordStoreInterface
	failWrites bool
}

func (f *failingStore) Save(products []models.Product, clients []models.Client, lines []models.QuoteLine) error {
	if f.failWrites {
		return errDiskFull
	}
	return f.RecordStoreInterface.Save(products, clients, lines)
}

func (f *failingStore) AppendSales(clientName string, lines []models.QuoteLine, meta models.SellerMeta, soldAt time.Time) ([]models.Sale, error) {
	if f.failWrites {
		return nil, errDiskFull
	}
	return f.RecordStoreInterface.AppendSales(clientName, lines, meta, soldAt)
}

type fakePrinter struct {
	html string
	err  error
}

func (p *fakePrinter) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	p.html = html
	if p.err != nil {
		return nil, p.err
	}
	return []byte("%PDF-1.4 ticket"), nil
}

type fakeArchive struct {
	names []string
	err   error
}

func (a *fakeArchive) UploadTicket(ctx context.Context, name string, pdf []byte) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.names = append(a.names, name)
	return "file-id", nil
}

type fakeMirror struct {
	mu    sync.Mutex
	sales []models.Sale
	err   error
}

func (m *fakeMirror) EnsureSchema(ctx context.Context) error { return nil }

func (m *fakeMirror) ExistsByID(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sales {
		if s.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *fakeMirror) InsertSales(ctx context.Context, sales []models.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sales = append(m.sales, sales...)
	return nil
}
