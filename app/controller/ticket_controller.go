package controller

import (
	"log"
	"net/http"

	"madeireira-orcamento/models"
	"madeireira-orcamento/service"
)

// TicketController handles HTTP requests for the sales ticket
type TicketController struct {
	tickets service.TicketServiceInterface
}

// NewTicketController creates a new TicketController
func NewTicketController(tickets service.TicketServiceInterface) *TicketController {
	return &TicketController{tickets: tickets}
}

// GenerateTicket handles POST /orcamento/ticket
// Example request:
// {"vendedor": "JOAO", "forma_pagamento": "DINHEIRO", "condicao_pagamento": "A VISTA",
//
//	"limite_credito_utilizado": "0,00", "limite_credito_disponivel": "0,00"}
//
// Example response:
// {"arquivo": "Ticket_Venda_Exemplo.pdf", "cliente": "MARIA SILVA", "linhas": 1, "total": 360, "arquivado": false}
func (c *TicketController) GenerateTicket(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GenerateTicket: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.TicketRequest
	if !decodeBody(w, r, "GenerateTicket", &req) {
		return
	}

	resp, err := c.tickets.Generate(r.Context(), req.SellerMeta)
	if err != nil {
		writeError(w, "GenerateTicket", err)
		return
	}
	writeJSON(w, "GenerateTicket", http.StatusOK, resp)
}
