package router

import (
	"net/http"

	"madeireira-orcamento/app/controller"
)

// Controllers groups the HTTP controllers the routes dispatch to
type Controllers struct {
	Product *controller.ProductController
	Client  *controller.ClientController
	Quote   *controller.QuoteController
	Ticket  *controller.TicketController
	Sale    *controller.SaleController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// byMethod routes a path to one handler per HTTP method
func byMethod(handlers map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// SetupRoutes registers all application routes on mux
func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Products routes
	mux.HandleFunc("/produtos", byMethod(map[string]http.HandlerFunc{
		http.MethodGet:  controllers.Product.ListProducts,
		http.MethodPost: controllers.Product.AddProduct,
	}))
	mux.HandleFunc("/produtos/item", byMethod(map[string]http.HandlerFunc{
		http.MethodGet:    controllers.Product.GetProduct,
		http.MethodDelete: controllers.Product.DeleteProduct,
	}))
	mux.HandleFunc("/produtos/import", controllers.Product.ImportProducts)

	// Clients routes
	mux.HandleFunc("/clientes", byMethod(map[string]http.HandlerFunc{
		http.MethodGet:  controllers.Client.ListClients,
		http.MethodPost: controllers.Client.AddClient,
	}))
	mux.HandleFunc("/clientes/search", controllers.Client.SearchClients)
	mux.HandleFunc("/clientes/item", byMethod(map[string]http.HandlerFunc{
		http.MethodGet:    controllers.Client.GetClient,
		http.MethodDelete: controllers.Client.DeleteClient,
	}))

	// Quote routes
	mux.HandleFunc("/orcamento", byMethod(map[string]http.HandlerFunc{
		http.MethodGet:    controllers.Quote.GetQuote,
		http.MethodDelete: controllers.Quote.ResetQuote,
	}))
	mux.HandleFunc("/orcamento/cliente", controllers.Quote.SelectClient)
	mux.HandleFunc("/orcamento/linhas", byMethod(map[string]http.HandlerFunc{
		http.MethodPost:   controllers.Quote.AddLine,
		http.MethodDelete: controllers.Quote.RemoveLines,
	}))
	mux.HandleFunc("/orcamento/ticket", controllers.Ticket.GenerateTicket)

	// Sales routes
	mux.HandleFunc("/vendas", controllers.Sale.SalesSummary)
	mux.HandleFunc("/vendas/export", controllers.Sale.ExportSales)
}
