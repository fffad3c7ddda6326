package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madeireira-orcamento/models"
	"madeireira-orcamento/repository"
)

var ticketTime = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

func testLetterhead() models.Letterhead {
	return models.Letterhead{
		CompanyName: "TIGELA MADEIRAS E ARTEFATOS LTDA",
		TradeName:   "TIGELA MADEIREIRA E ARTEFATOS",
		Phone:       "(44) 9754-8463",
		Address:     "AVENIDA BRASIL, No 1621",
		CNPJ:        "39.594.567/0001-79",
		IE:          "9086731905",
	}
}

func testMeta() models.SellerMeta {
	return models.SellerMeta{
		Seller:          "JOAO",
		PaymentMethod:   "DINHEIRO",
		PaymentTerms:    "A VISTA",
		CreditUsed:      "0,00",
		CreditAvailable: "1500,00",
	}
}

type ticketFixture struct {
	session *Session
	store   repository.RecordStoreInterface
	quotes  *QuoteService
	tickets *TicketService
	printer *fakePrinter
	archive *fakeArchive
	mirror  *fakeMirror
	opened  []string
	output  string
}

func newTicketFixture(t *testing.T) *ticketFixture {
	t.Helper()
	session, store := seededSession(t)
	f := &ticketFixture{
		session: session,
		store:   store,
		quotes:  NewQuoteService(session),
		printer: &fakePrinter{},
		archive: &fakeArchive{},
		mirror:  &fakeMirror{},
		output:  filepath.Join(t.TempDir(), "Ticket_Venda_Exemplo.pdf"),
	}

	tickets, err := NewTicketService(session, f.printer, f.archive, f.mirror, TicketOptions{
		OutputPath: f.output,
		Letterhead: testLetterhead(),
		AutoOpen:   true,
	})
	require.NoError(t, err)
	tickets.now = func() time.Time { return ticketTime }
	tickets.openFile = func(path string) error {
		f.opened = append(f.opened, path)
		return nil
	}
	f.tickets = tickets
	return f
}

func (f *ticketFixture) prepareQuote(t *testing.T) {
	t.Helper()
	_, err := f.quotes.SelectClient("MARIA SILVA")
	require.NoError(t, err)
	_, err = f.quotes.AddLine(pinusLine("3", "2", "60"))
	require.NoError(t, err)
}

func TestTicketService_Render(t *testing.T) {
	f := newTicketFixture(t)
	f.prepareQuote(t)

	client, err := findClient(f.session.snapshot().Clients, "MARIA SILVA")
	require.NoError(t, err)

	ticket, err := f.tickets.Render(f.session.Quote(), client, testMeta())
	require.NoError(t, err)

	assert.Equal(t, "TICKET DE VENDA", ticket.Title)
	assert.Equal(t, []string{
		"TIGELA MADEIRAS E ARTEFATOS LTDA",
		"TIGELA MADEIREIRA E ARTEFATOS",
		"Telefone: (44) 9754-8463",
		"Endereco: AVENIDA BRASIL, No 1621",
		"CNPJ: 39.594.567/0001-79    IE: 9086731905",
	}, ticket.Letterhead)
	assert.Equal(t, models.TicketClient{
		Name: "MARIA SILVA", Address: "RUA A, 10", City: "XAMBRE", Document: "12345678901", Phone: "44999990000",
	}, ticket.Client)
	assert.Len(t, ticket.Columns, 10)

	require.Len(t, ticket.Rows, 1)
	assert.Equal(t, models.TicketRow{
		Number:        "1",
		Product:       "TABUA PINUS - 3M",
		Unit:          "UNID",
		Freight:       "0,00",
		Other:         "0,00",
		Insurance:     "0,00",
		Quantity:      "2",
		PricePerMeter: "R$ 60.00",
		UnitPrice:     "R$ 180.00",
		Total:         "R$ 360.00",
	}, ticket.Rows[0])

	assert.Equal(t, "JOAO", ticket.Footer.Seller)
	assert.Equal(t, "R$ 0,00", ticket.Footer.CreditUsed)
	assert.Equal(t, "R$ 1500,00", ticket.Footer.CreditAvailable)
	assert.Equal(t, "R$ 0.00", ticket.Footer.Others)
	assert.Equal(t, "R$ 360.00", ticket.Footer.GrandTotal)
	assert.Equal(t, "R$ 360.00", ticket.Footer.NetTotal)
	assert.Equal(t, 360.0, ticket.GrandTotal)

	assert.Equal(t, []models.TicketInstallment{
		{Number: "1", Method: "Dinheiro", Amount: "R$ 360.00", DueDate: "05/03/2024"},
	}, ticket.Installments)
	assert.NotEmpty(t, ticket.Notes)
}

func TestTicketService_RenderFailures(t *testing.T) {
	f := newTicketFixture(t)
	client, err := findClient(f.session.snapshot().Clients, "MARIA SILVA")
	require.NoError(t, err)

	_, err = f.tickets.Render(models.Quote{ClientName: "MARIA SILVA"}, client, testMeta())
	assert.True(t, errors.Is(err, models.ErrRenderFailure))

	line := models.QuoteLine{ProductDescription: "TABUA PINUS", LengthM: 3, Quantity: 2}
	_, err = f.tickets.Render(models.Quote{ClientName: "OUTRO", Lines: []models.QuoteLine{line}}, client, testMeta())
	assert.True(t, errors.Is(err, models.ErrRenderFailure))
}

func TestTicketService_RenderHTML(t *testing.T) {
	f := newTicketFixture(t)
	f.prepareQuote(t)
	client, err := findClient(f.session.snapshot().Clients, "MARIA SILVA")
	require.NoError(t, err)

	ticket, err := f.tickets.Render(f.session.Quote(), client, testMeta())
	require.NoError(t, err)

	html, err := f.tickets.RenderHTML(ticket)
	require.NoError(t, err)
	assert.Contains(t, html, "TICKET DE VENDA")
	assert.Contains(t, html, "TABUA PINUS - 3M")
	assert.Contains(t, html, "MARIA SILVA")
	assert.Contains(t, html, "R$ 360.00")
	assert.Contains(t, html, "05/03/2024")
	assert.NotContains(t, html, "<img", "no logo configured")
}

func TestTicketService_RenderHTMLWithLogo(t *testing.T) {
	f := newTicketFixture(t)
	f.prepareQuote(t)
	client, err := findClient(f.session.snapshot().Clients, "MARIA SILVA")
	require.NoError(t, err)

	logo, err := LoadLogoDataURI(writeTestPNG(t, 50, 20))
	require.NoError(t, err)
	f.tickets.opts.LogoDataURI = logo

	ticket, err := f.tickets.Render(f.session.Quote(), client, testMeta())
	require.NoError(t, err)

	html, err := f.tickets.RenderHTML(ticket)
	require.NoError(t, err)
	assert.Contains(t, html, `<img src="data:image/jpeg;base64,`)
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestTicketService_Generate(t *testing.T) {
	f := newTicketFixture(t)
	f.prepareQuote(t)

	resp, err := f.tickets.Generate(context.Background(), testMeta())
	require.NoError(t, err)
	assert.Equal(t, &models.TicketResponse{
		File:       f.output,
		ClientName: "MARIA SILVA",
		Lines:      1,
		Total:      360,
		Archived:   true,
	}, resp)

	pdf, err := os.ReadFile(f.output)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 ticket", string(pdf))
	assert.Contains(t, f.printer.html, "TABUA PINUS - 3M")

	// one sale per quote line, in memory and on disk
	data, err := f.store.Load()
	require.NoError(t, err)
	require.Len(t, data.Sales, 1)
	sale := data.Sales[0]
	assert.NotEmpty(t, sale.ID)
	assert.Equal(t, "MARIA SILVA", sale.ClientName)
	assert.Equal(t, 360.0, sale.Total)
	assert.Equal(t, "JOAO", sale.Seller)
	assert.Len(t, f.session.snapshot().Sales, 1)

	assert.Len(t, f.mirror.sales, 1)
	assert.Equal(t, []string{"Ticket_Venda_MARIA_SILVA_20240305_143000.pdf"}, f.archive.names)
	assert.Equal(t, []string{f.output}, f.opened)

	// generating does not clear the quote
	assert.Len(t, f.quotes.Lines(), 1)
}

func TestTicketService_GenerateWithoutClient(t *testing.T) {
	f := newTicketFixture(t)
	_, err := f.quotes.AddLine(pinusLine("3", "2", "60"))
	require.NoError(t, err)

	_, err = f.tickets.Generate(context.Background(), testMeta())
	assert.True(t, errors.Is(err, models.ErrRenderFailure))
	assert.NoFileExists(t, f.output)
}

func TestTicketService_GenerateDeletedClient(t *testing.T) {
	f := newTicketFixture(t)
	f.prepareQuote(t)

	_, err := NewCatalogService(f.session).DeleteClient("MARIA SILVA")
	require.NoError(t, err)

	_, err = f.tickets.Generate(context.Background(), testMeta())
	assert.True(t, errors.Is(err, models.ErrRenderFailure))
	assert.True(t, errors.Is(err, models.ErrNotFound))
	assert.NoFileExists(t, f.output)
}

func TestTicketService_GenerateEmptyQuote(t *testing.T) {
	f := newTicketFixture(t)
	_, err := f.quotes.SelectClient("MARIA SILVA")
	require.NoError(t, err)

	_, err = f.tickets.Generate(context.Background(), testMeta())
	assert.True(t, errors.Is(err, models.ErrRenderFailure))
	assert.NoFileExists(t, f.output)
	assert.Empty(t, f.session.snapshot().Sales)
}

func TestTicketService_GeneratePrinterFailure(t *testing.T) {
	f := newTicketFixture(t)
	f.prepareQuote(t)
	f.printer.err = errors.New("chrome not found")

	_, err := f.tickets.Generate(context.Background(), testMeta())
	assert.True(t, errors.Is(err, models.ErrRenderFailure))
	assert.NoFileExists(t, f.output)
	assert.Empty(t, f.session.snapshot().Sales)
}

func TestTicketService_GenerateSalesFailureRemovesTicket(t *testing.T) {
	store := &failingStore{RecordStoreInterface: repository.NewRecordStore(filepath.Join(t.TempDir(), "dados.json"))}
	session, err := NewSession(store)
	require.NoError(t, err)
	catalog := NewCatalogService(session)
	_, err = catalog.AddProduct(pinusInput())
	require.NoError(t, err)
	_, err = catalog.AddClient(mariaInput())
	require.NoError(t, err)
	quotes := NewQuoteService(session)
	_, err = quotes.SelectClient("MARIA SILVA")
	require.NoError(t, err)
	_, err = quotes.AddLine(pinusLine("3", "2", "60"))
	require.NoError(t, err)

	output := filepath.Join(t.TempDir(), "ticket.pdf")
	tickets, err := NewTicketService(session, &fakePrinter{}, nil, nil, TicketOptions{OutputPath: output})
	require.NoError(t, err)

	store.failWrites = true
	_, err = tickets.Generate(context.Background(), testMeta())
	assert.True(t, errors.Is(err, errDiskFull))
	assert.NoFileExists(t, output)
	assert.Empty(t, session.snapshot().Sales)
}

func TestTicketService_GenerateOptionalFailuresAreWarnings(t *testing.T) {
	f := newTicketFixture(t)
	f.prepareQuote(t)
	f.archive.err = errors.New("quota exceeded")
	f.mirror.err = errors.New("connection refused")

	resp, err := f.tickets.Generate(context.Background(), testMeta())
	require.NoError(t, err)
	assert.False(t, resp.Archived)
	assert.FileExists(t, f.output)
	assert.Len(t, f.session.snapshot().Sales, 1)
}
