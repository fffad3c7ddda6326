package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"madeireira-orcamento/models"
	"madeireira-orcamento/pricing"
	"madeireira-orcamento/repository"
	"madeireira-orcamento/utils"
)

//go:embed templates/ticket.html
var ticketTemplates embed.FS

const (
	ticketTitle       = "TICKET DE VENDA"
	placeholderAmount = "0,00"
	zeroAmount        = "R$ 0.00"
	unitLabel         = "UNID"
	cashMethod        = "Dinheiro"
)

var ticketColumns = []string{
	"Nº", "Produto", "Un. Com.", "Vlr. Frete", "Vlr. Outros", "Vlr. Seguro",
	"Qtd", "Vlr. M.", "Vlr UN.", "Vlr Total",
}

var ticketNotes = []string{
	"- Voce pagou aproximadamente: R$ 00,00 de tributos estaduais.",
	"  R$ 00,00 de tributos federais. Fonte: IBPT.",
}

// TicketOptions configures where and how tickets are produced
type TicketOptions struct {
	OutputPath  string
	Letterhead  models.Letterhead
	LogoDataURI string
	AutoOpen    bool
}

// TicketService renders the finalized quote into the printable sales ticket
type TicketService struct {
	session  *Session
	printer  TicketPrinterInterface
	archive  TicketArchiveInterface
	mirror   repository.SaleMirrorInterface
	opts     TicketOptions
	tmpl     *template.Template
	now      func() time.Time
	openFile func(path string) error
}

// NewTicketService creates a new TicketService. archive and mirror are optional.
func NewTicketService(
	session *Session,
	printer TicketPrinterInterface,
	archive TicketArchiveInterface,
	mirror repository.SaleMirrorInterface,
	opts TicketOptions,
) (*TicketService, error) {
	tmpl, err := template.ParseFS(ticketTemplates, "templates/ticket.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket template: %w", err)
	}
	return &TicketService{
		session:  session,
		printer:  printer,
		archive:  archive,
		mirror:   mirror,
		opts:     opts,
		tmpl:     tmpl,
		now:      time.Now,
		openFile: OpenInViewer,
	}, nil
}

// Ensure TicketService implements TicketServiceInterface
var _ TicketServiceInterface = (*TicketService)(nil)

// letterheadLines returns the static business lines printed under the title
func letterheadLines(l models.Letterhead) []string {
	return []string{
		l.CompanyName,
		l.TradeName,
		"Telefone: " + l.Phone,
		"Endereco: " + l.Address,
		"CNPJ: " + l.CNPJ + "    IE: " + l.IE,
	}
}

// creditAmount prints a credit limit as typed by the seller
func creditAmount(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = placeholderAmount
	}
	return "R$ " + raw
}

// Render lays out the ticket for a quote. It fails with models.ErrRenderFailure
// when the quote has no lines or the client does not match the quote.
func (s *TicketService) Render(quote models.Quote, client models.Client, meta models.SellerMeta) (*models.Ticket, error) {
	if len(quote.Lines) == 0 {
		return nil, fmt.Errorf("%w: quote has no lines", models.ErrRenderFailure)
	}
	if client.Name == "" || client.Name != quote.ClientName {
		return nil, fmt.Errorf("%w: client %q does not match quote", models.ErrRenderFailure, client.Name)
	}

	now := s.now()
	total := pricing.Total(quote.Lines)

	rows := make([]models.TicketRow, len(quote.Lines))
	for i, l := range quote.Lines {
		rows[i] = models.TicketRow{
			Number:        strconv.Itoa(i + 1),
			Product:       fmt.Sprintf("%s - %sM", l.ProductDescription, utils.FormatLength(l.LengthM)),
			Unit:          unitLabel,
			Freight:       placeholderAmount,
			Other:         placeholderAmount,
			Insurance:     placeholderAmount,
			Quantity:      strconv.Itoa(l.Quantity),
			PricePerMeter: utils.FormatBRL(l.UnitSellPricePerMeter),
			UnitPrice:     utils.FormatBRL(l.UnitPrice),
			Total:         utils.FormatBRL(l.LineTotal),
		}
	}

	return &models.Ticket{
		Title:       ticketTitle,
		Letterhead:  letterheadLines(s.opts.Letterhead),
		LogoDataURI: template.URL(s.opts.LogoDataURI),
		Client: models.TicketClient{
			Name:     client.Name,
			Address:  client.Address,
			City:     client.City,
			Document: client.DocumentNumber,
			Phone:    client.Phone,
		},
		Columns: ticketColumns,
		Rows:    rows,
		Footer: models.TicketFooter{
			Seller:          meta.Seller,
			PaymentMethod:   meta.PaymentMethod,
			PaymentTerms:    meta.PaymentTerms,
			CreditUsed:      creditAmount(meta.CreditUsed),
			CreditAvailable: creditAmount(meta.CreditAvailable),
			Others:          zeroAmount,
			Insurance:       zeroAmount,
			Surcharge:       zeroAmount,
			NetTotal:        utils.FormatBRL(total),
			GrandTotal:      utils.FormatBRL(total),
		},
		Installments: []models.TicketInstallment{{
			Number:  "1",
			Method:  cashMethod,
			Amount:  utils.FormatBRL(total),
			DueDate: now.Format("02/01/2006"),
		}},
		Notes:       ticketNotes,
		GeneratedAt: now,
		GrandTotal:  total,
	}, nil
}

// RenderHTML renders the ticket HTML template
func (s *TicketService) RenderHTML(ticket *models.Ticket) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, ticket); err != nil {
		return "", fmt.Errorf("%w: failed to execute template: %v", models.ErrRenderFailure, err)
	}
	return buf.String(), nil
}

// Generate renders the current quote to the ticket file and records the sale.
// Either the ticket file is written and the sales are recorded, or neither
// happens. Archiving, mirroring and opening the viewer are best effort.
func (s *TicketService) Generate(ctx context.Context, meta models.SellerMeta) (*models.TicketResponse, error) {
	log.Printf("🧾 Generate: Generating ticket to %s", s.opts.OutputPath)

	quote := s.session.Quote()
	if strings.TrimSpace(quote.ClientName) == "" {
		return nil, fmt.Errorf("%w: no client selected", models.ErrRenderFailure)
	}
	client, err := findClient(s.session.snapshot().Clients, quote.ClientName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrRenderFailure, err)
	}

	ticket, err := s.Render(quote, client, meta)
	if err != nil {
		log.Printf("❌ Generate: %v", err)
		return nil, err
	}
	html, err := s.RenderHTML(ticket)
	if err != nil {
		log.Printf("❌ Generate: %v", err)
		return nil, err
	}

	pdf, err := s.printer.PrintPDF(ctx, html)
	if err != nil {
		log.Printf("❌ Generate: %v", err)
		return nil, fmt.Errorf("%w: %w", models.ErrRenderFailure, err)
	}

	if err := writeFileAtomic(s.opts.OutputPath, pdf); err != nil {
		log.Printf("❌ Generate: %v", err)
		return nil, fmt.Errorf("%w: %w", models.ErrRenderFailure, err)
	}

	sales, err := s.session.recordSales(client.Name, quote.Lines, meta, ticket.GeneratedAt)
	if err != nil {
		os.Remove(s.opts.OutputPath)
		log.Printf("❌ Generate: %v", err)
		return nil, err
	}

	if s.mirror != nil {
		if err := s.mirror.InsertSales(ctx, sales); err != nil {
			log.Printf("⚠️  Generate: Failed to mirror sales: %v", err)
		}
	}

	response := &models.TicketResponse{
		File:       s.opts.OutputPath,
		ClientName: client.Name,
		Lines:      len(quote.Lines),
		Total:      ticket.GrandTotal,
	}

	if s.archive != nil {
		name := archiveName(client.Name, ticket.GeneratedAt)
		if fileID, err := s.archive.UploadTicket(ctx, name, pdf); err != nil {
			log.Printf("⚠️  Generate: Failed to archive ticket: %v", err)
		} else {
			response.Archived = true
			log.Printf("✓ Generate: Ticket archived as %s (id=%s)", name, fileID)
		}
	}

	if s.opts.AutoOpen && s.openFile != nil {
		if err := s.openFile(s.opts.OutputPath); err != nil {
			log.Printf("⚠️  Generate: Failed to open ticket: %v", err)
		}
	}

	log.Printf("✅ Generate: Ticket generated for client=%s lines=%d total=%s",
		client.Name, response.Lines, utils.FormatBRL(response.Total))
	return response, nil
}

// archiveName builds a unique archive file name for a ticket
func archiveName(clientName string, at time.Time) string {
	client := strings.ReplaceAll(strings.TrimSpace(clientName), " ", "_")
	return fmt.Sprintf("Ticket_Venda_%s_%s.pdf", client, at.Format("20060102_150405"))
}

// writeFileAtomic writes data next to path and renames it into place, so a
// failed write never leaves a partial file
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".ticket-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write ticket: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close ticket: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace ticket: %w", err)
	}
	return nil
}
