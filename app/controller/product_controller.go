package controller

import (
	"fmt"
	"log"
	"net/http"

	"madeireira-orcamento/models"
	"madeireira-orcamento/service"
	"madeireira-orcamento/utils"
)

// ProductController handles HTTP requests for the product catalog
type ProductController struct {
	catalog service.CatalogServiceInterface
}

// NewProductController creates a new ProductController
func NewProductController(catalog service.CatalogServiceInterface) *ProductController {
	return &ProductController{catalog: catalog}
}

// productKeyFromQuery reads the composite product key from the query string
// GET /produtos/item?descricao=TABUA%20PINUS&tipo_madeira=PINUS&largura=2&espessura=15
func productKeyFromQuery(r *http.Request) (models.ProductKey, error) {
	q := r.URL.Query()
	description, err := utils.RequireText("descricao", q.Get("descricao"))
	if err != nil {
		return models.ProductKey{}, err
	}
	woodType, err := utils.RequireText("tipo_madeira", q.Get("tipo_madeira"))
	if err != nil {
		return models.ProductKey{}, err
	}
	width, err := utils.ParsePositiveFloat("largura", q.Get("largura"))
	if err != nil {
		return models.ProductKey{}, err
	}
	thickness, err := utils.ParsePositiveFloat("espessura", q.Get("espessura"))
	if err != nil {
		return models.ProductKey{}, err
	}
	return models.ProductKey{
		Description: description,
		WoodType:    woodType,
		WidthCM:     width,
		ThicknessCM: thickness,
	}, nil
}

// ListProducts handles GET /produtos
// Example response:
// {"produtos": [{"descricao": "TABUA PINUS", "tipo_madeira": "PINUS", "largura": 2, "espessura": 15, "custo_m3": 800}]}
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListProducts: Received %s request to %s", r.Method, r.URL.Path)

	products := c.catalog.ListProducts()
	log.Printf("✅ ListProducts: Returning %d products", len(products))
	writeJSON(w, "ListProducts", http.StatusOK, models.ProductListResponse{Products: products})
}

// AddProduct handles POST /produtos
// Example request:
// {"descricao": "TABUA PINUS", "tipo_madeira": "PINUS", "largura": "2", "espessura": "15", "custo_m3": "800"}
func (c *ProductController) AddProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddProduct: Received %s request to %s", r.Method, r.URL.Path)

	var req models.ProductInput
	if !decodeBody(w, r, "AddProduct", &req) {
		return
	}

	product, err := c.catalog.AddProduct(req)
	if err != nil {
		writeError(w, "AddProduct", err)
		return
	}
	writeJSON(w, "AddProduct", http.StatusCreated, product)
}

// GetProduct handles GET /produtos/item and returns the product as form
// values ready to be edited and submitted again
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetProduct: Received %s request to %s", r.Method, r.URL.String())

	key, err := productKeyFromQuery(r)
	if err != nil {
		writeError(w, "GetProduct", err)
		return
	}
	input, err := c.catalog.EditProduct(key)
	if err != nil {
		writeError(w, "GetProduct", err)
		return
	}
	writeJSON(w, "GetProduct", http.StatusOK, input)
}

// DeleteProduct handles DELETE /produtos/item
// Example response: {"removidos": 1}
func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteProduct: Received %s request to %s", r.Method, r.URL.String())

	key, err := productKeyFromQuery(r)
	if err != nil {
		writeError(w, "DeleteProduct", err)
		return
	}
	removed, err := c.catalog.DeleteProduct(key)
	if err != nil {
		writeError(w, "DeleteProduct", err)
		return
	}
	writeJSON(w, "DeleteProduct", http.StatusOK, map[string]int{"removidos": removed})
}

// ImportProducts handles POST /produtos/import with a CSV body
// descricao,tipo_madeira,largura,espessura,custo_m3
func (c *ProductController) ImportProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ImportProducts: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	imported, err := c.catalog.ImportProducts(r.Body)
	if err != nil {
		writeError(w, "ImportProducts", fmt.Errorf("failed to import products: %w", err))
		return
	}
	writeJSON(w, "ImportProducts", http.StatusOK, map[string]int{"importados": imported})
}
