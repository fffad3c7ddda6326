package service

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/xuri/excelize/v2"

	"madeireira-orcamento/models"
	"madeireira-orcamento/utils"
)

const (
	salesSheetName   = "Vendas"
	summarySheetName = "Resumo"
)

var salesHeader = []interface{}{
	"Data", "Cliente", "Produto", "Tamanho (m)", "Quantidade",
	"Vlr. M.", "Vlr UN.", "Vlr Total", "Lucro", "Vendedor", "Forma de Pagamento",
}

var summaryHeader = []interface{}{"Cliente", "Vendas", "Total", "Lucro"}

// ReportService builds the sales report over the sales ledger
type ReportService struct {
	session *Session
}

// NewReportService creates a new ReportService
func NewReportService(session *Session) *ReportService {
	return &ReportService{session: session}
}

// Ensure ReportService implements ReportServiceInterface
var _ ReportServiceInterface = (*ReportService)(nil)

// summarize aggregates sales overall and per client, clients sorted by name
func summarize(sales []models.Sale) models.SalesSummary {
	perClient := map[string]*models.ClientSalesTotal{}
	totals := make([]float64, 0, len(sales))
	profits := make([]float64, 0, len(sales))

	for _, s := range sales {
		entry, ok := perClient[s.ClientName]
		if !ok {
			entry = &models.ClientSalesTotal{ClientName: s.ClientName}
			perClient[s.ClientName] = entry
		}
		entry.Count++
		entry.Total = utils.SumMoney(entry.Total, s.Total)
		entry.Profit = utils.SumMoney(entry.Profit, s.Profit)
		totals = append(totals, s.Total)
		profits = append(profits, s.Profit)
	}

	clients := make([]models.ClientSalesTotal, 0, len(perClient))
	for _, entry := range perClient {
		clients = append(clients, *entry)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].ClientName < clients[j].ClientName
	})

	return models.SalesSummary{
		Count:     len(sales),
		Total:     utils.SumMoney(totals...),
		Profit:    utils.SumMoney(profits...),
		PerClient: clients,
	}
}

// Summary returns the sales count, revenue and profit, overall and per client
func (r *ReportService) Summary() models.SalesSummary {
	return summarize(r.session.snapshot().Sales)
}

// ExportSales writes the sales ledger as an xlsx workbook with one sheet
// listing every sale and one sheet with the per-client summary
func (r *ReportService) ExportSales(w io.Writer) error {
	sales := r.session.snapshot().Sales
	summary := summarize(sales)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", salesSheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheetName); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := f.SetSheetRow(salesSheetName, "A1", &salesHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, s := range sales {
		row := []interface{}{
			s.SoldAt, s.ClientName, s.ProductDescription, s.LengthM, s.Quantity,
			s.SellPricePerMeter, s.UnitPrice, s.Total, s.Profit, s.Seller, s.PaymentMethod,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(salesSheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write sale %s: %w", s.ID, err)
		}
	}

	if err := f.SetSheetRow(summarySheetName, "A1", &summaryHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, c := range summary.PerClient {
		row := []interface{}{c.ClientName, c.Count, c.Total, c.Profit}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary for %s: %w", c.ClientName, err)
		}
	}
	totalRow := []interface{}{"TOTAL", summary.Count, summary.Total, summary.Profit}
	cell, err := excelize.CoordinatesToCellName(1, len(summary.PerClient)+2)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(summarySheetName, cell, &totalRow); err != nil {
		return fmt.Errorf("failed to write summary total: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	log.Printf("✅ ExportSales: Exported %d sales for %d clients", summary.Count, len(summary.PerClient))
	return nil
}
