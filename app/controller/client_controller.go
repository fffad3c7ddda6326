package controller

import (
	"log"
	"net/http"

	"madeireira-orcamento/models"
	"madeireira-orcamento/service"
)

// ClientController handles HTTP requests for clients
type ClientController struct {
	catalog service.CatalogServiceInterface
}

// NewClientController creates a new ClientController
func NewClientController(catalog service.CatalogServiceInterface) *ClientController {
	return &ClientController{catalog: catalog}
}

// ListClients handles GET /clientes
func (c *ClientController) ListClients(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListClients: Received %s request to %s", r.Method, r.URL.Path)

	clients := c.catalog.ListClients()
	writeJSON(w, "ListClients", http.StatusOK, models.ClientListResponse{Clients: clients})
}

// AddClient handles POST /clientes
// Example request:
// {"nome": "MARIA SILVA", "tipo_documento": "CPF", "cpf_cnpj": "12345678901",
//
//	"endereco": "RUA A, 10", "cidade": "XAMBRE", "telefone": "44999999999"}
func (c *ClientController) AddClient(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddClient: Received %s request to %s", r.Method, r.URL.Path)

	var req models.ClientInput
	if !decodeBody(w, r, "AddClient", &req) {
		return
	}

	client, err := c.catalog.AddClient(req)
	if err != nil {
		writeError(w, "AddClient", err)
		return
	}
	writeJSON(w, "AddClient", http.StatusCreated, client)
}

// SearchClients handles GET /clientes/search?prefix=MA
func (c *ClientController) SearchClients(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SearchClients: Received %s request to %s", r.Method, r.URL.String())

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clients := c.catalog.SearchClients(r.URL.Query().Get("prefix"))
	writeJSON(w, "SearchClients", http.StatusOK, models.ClientListResponse{Clients: clients})
}

// GetClient handles GET /clientes/item?nome=MARIA%20SILVA
func (c *ClientController) GetClient(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetClient: Received %s request to %s", r.Method, r.URL.String())

	input, err := c.catalog.EditClient(r.URL.Query().Get("nome"))
	if err != nil {
		writeError(w, "GetClient", err)
		return
	}
	writeJSON(w, "GetClient", http.StatusOK, input)
}

// DeleteClient handles DELETE /clientes/item?nome=MARIA%20SILVA
func (c *ClientController) DeleteClient(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteClient: Received %s request to %s", r.Method, r.URL.String())

	name := r.URL.Query().Get("nome")
	if name == "" {
		http.Error(w, "nome parameter is required", http.StatusBadRequest)
		return
	}
	removed, err := c.catalog.DeleteClient(name)
	if err != nil {
		writeError(w, "DeleteClient", err)
		return
	}
	writeJSON(w, "DeleteClient", http.StatusOK, map[string]int{"removidos": removed})
}
