package controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"madeireira-orcamento/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SaleController handles HTTP requests for the sales report
type SaleController struct {
	reports service.ReportServiceInterface
}

// NewSaleController creates a new SaleController
func NewSaleController(reports service.ReportServiceInterface) *SaleController {
	return &SaleController{reports: reports}
}

// SalesSummary handles GET /vendas
// Example response:
// {"quantidade_vendas": 1, "total": 360, "lucro": 358.92,
//
//	"clientes": [{"cliente": "MARIA SILVA", "quantidade_vendas": 1, "total": 360, "lucro": 358.92}]}
func (c *SaleController) SalesSummary(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SalesSummary: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary := c.reports.Summary()
	log.Printf("✅ SalesSummary: %d sales, total=%.2f", summary.Count, summary.Total)
	writeJSON(w, "SalesSummary", http.StatusOK, summary)
}

// ExportSales handles GET /vendas/export and downloads the xlsx report
func (c *SaleController) ExportSales(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ExportSales: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Buffer the workbook so a failure can still be reported with a status code
	var buf bytes.Buffer
	if err := c.reports.ExportSales(&buf); err != nil {
		writeError(w, "ExportSales", err)
		return
	}

	filename := fmt.Sprintf("vendas_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("❌ ExportSales: Error writing response: %v", err)
	}
}
