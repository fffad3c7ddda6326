package service

import (
	"io"

	"madeireira-orcamento/models"
)

// CatalogServiceInterface defines the contract for product and client management
type CatalogServiceInterface interface {
	AddProduct(in models.ProductInput) (models.Product, error)
	EditProduct(key models.ProductKey) (models.ProductInput, error)
	DeleteProduct(key models.ProductKey) (int, error)
	ListProducts() []models.Product
	ImportProducts(r io.Reader) (int, error)
	AddClient(in models.ClientInput) (models.Client, error)
	EditClient(name string) (models.ClientInput, error)
	DeleteClient(name string) (int, error)
	ListClients() []models.Client
	SearchClients(prefix string) []models.Client
}
