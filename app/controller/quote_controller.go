package controller

import (
	"log"
	"net/http"

	"madeireira-orcamento/models"
	"madeireira-orcamento/service"
)

// QuoteController handles HTTP requests for the quote being assembled
type QuoteController struct {
	quotes service.QuoteServiceInterface
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(quotes service.QuoteServiceInterface) *QuoteController {
	return &QuoteController{quotes: quotes}
}

// GetQuote handles GET /orcamento
// Example response:
// {"cliente": "MARIA SILVA", "linhas": [{"numero": 1, "descricao": "TABUA PINUS", "tamanho": 3,
//
//	"quantidade": 2, "vlr_m": 60, "vlr_un": 180, "total": 360, "lucro": 358.92}], "total": 360, "lucro": 358.92}
func (c *QuoteController) GetQuote(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetQuote: Received %s request to %s", r.Method, r.URL.Path)
	writeJSON(w, "GetQuote", http.StatusOK, c.quotes.Current())
}

// ResetQuote handles DELETE /orcamento and starts a new quote
func (c *QuoteController) ResetQuote(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ResetQuote: Received %s request to %s", r.Method, r.URL.Path)

	if err := c.quotes.Reset(); err != nil {
		writeError(w, "ResetQuote", err)
		return
	}
	writeJSON(w, "ResetQuote", http.StatusOK, c.quotes.Current())
}

// SelectClient handles POST /orcamento/cliente
// Example request: {"nome": "MARIA SILVA"}
func (c *QuoteController) SelectClient(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SelectClient: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SelectClientRequest
	if !decodeBody(w, r, "SelectClient", &req) {
		return
	}
	client, err := c.quotes.SelectClient(req.Name)
	if err != nil {
		writeError(w, "SelectClient", err)
		return
	}
	writeJSON(w, "SelectClient", http.StatusOK, client)
}

// AddLine handles POST /orcamento/linhas
func (c *QuoteController) AddLine(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddLine: Received %s request to %s", r.Method, r.URL.Path)

	var req models.AddLineRequest
	if !decodeBody(w, r, "AddLine", &req) {
		return
	}
	line, err := c.quotes.AddLine(req)
	if err != nil {
		writeError(w, "AddLine", err)
		return
	}
	writeJSON(w, "AddLine", http.StatusCreated, line)
}

// RemoveLines handles DELETE /orcamento/linhas
// Example request: {"indices": [0, 2]}
func (c *QuoteController) RemoveLines(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 RemoveLines: Received %s request to %s", r.Method, r.URL.Path)

	var req models.RemoveLinesRequest
	if !decodeBody(w, r, "RemoveLines", &req) {
		return
	}
	if err := c.quotes.RemoveLines(req.Indexes...); err != nil {
		writeError(w, "RemoveLines", err)
		return
	}
	writeJSON(w, "RemoveLines", http.StatusOK, c.quotes.Current())
}
