package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"

	"madeireira-orcamento/models"
	"madeireira-orcamento/utils"
)

// CatalogService manages the products and clients of the session
type CatalogService struct {
	session *Session
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(session *Session) *CatalogService {
	return &CatalogService{session: session}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// parseProduct validates the raw form values of a product
func parseProduct(in models.ProductInput) (models.Product, error) {
	description, err := utils.RequireText("descricao", in.Description)
	if err != nil {
		return models.Product{}, err
	}
	woodType, err := utils.RequireText("tipo_madeira", in.WoodType)
	if err != nil {
		return models.Product{}, err
	}
	width, err := utils.ParsePositiveFloat("largura", in.Width)
	if err != nil {
		return models.Product{}, err
	}
	thickness, err := utils.ParsePositiveFloat("espessura", in.Thickness)
	if err != nil {
		return models.Product{}, err
	}
	cost, err := utils.ParsePositiveFloat("custo_m3", in.CostPerCubicMeter)
	if err != nil {
		return models.Product{}, err
	}

	return models.Product{
		Description:       description,
		WoodType:          woodType,
		WidthCM:           width,
		ThicknessCM:       thickness,
		CostPerCubicMeter: cost,
	}, nil
}

// upsertProduct replaces the product with the same composite key in place,
// or appends it
func upsertProduct(products []models.Product, p models.Product) ([]models.Product, bool) {
	for i := range products {
		if products[i].Matches(p.Key()) {
			products[i] = p
			return products, true
		}
	}
	return append(products, p), false
}

// AddProduct validates and registers a product. Resubmitting a product with
// the same composite key replaces the stored one.
func (c *CatalogService) AddProduct(in models.ProductInput) (models.Product, error) {
	product, err := parseProduct(in)
	if err != nil {
		log.Printf("❌ AddProduct: %v", err)
		return models.Product{}, err
	}

	var replaced bool
	err = c.session.commit(func(d *models.Dataset) error {
		d.Products, replaced = upsertProduct(d.Products, product)
		return nil
	})
	if err != nil {
		log.Printf("❌ AddProduct: %v", err)
		return models.Product{}, err
	}

	if replaced {
		log.Printf("✅ AddProduct: Updated product %q (%s %gx%g)", product.Description, product.WoodType, product.WidthCM, product.ThicknessCM)
	} else {
		log.Printf("✅ AddProduct: Registered product %q (%s %gx%g)", product.Description, product.WoodType, product.WidthCM, product.ThicknessCM)
	}
	return product, nil
}

// EditProduct returns the stored values of a product as form values so they
// can be changed and submitted again. It does not mutate anything.
func (c *CatalogService) EditProduct(key models.ProductKey) (models.ProductInput, error) {
	for _, p := range c.session.snapshot().Products {
		if p.Matches(key) {
			return models.ProductInput{
				Description:       p.Description,
				WoodType:          p.WoodType,
				Width:             strconv.FormatFloat(p.WidthCM, 'f', -1, 64),
				Thickness:         strconv.FormatFloat(p.ThicknessCM, 'f', -1, 64),
				CostPerCubicMeter: strconv.FormatFloat(p.CostPerCubicMeter, 'f', -1, 64),
			}, nil
		}
	}
	return models.ProductInput{}, fmt.Errorf("product %q: %w", key.Description, models.ErrNotFound)
}

// DeleteProduct removes every product matching the composite key and returns
// how many were removed. Zero matches is not an error.
func (c *CatalogService) DeleteProduct(key models.ProductKey) (int, error) {
	removed := 0
	err := c.session.commit(func(d *models.Dataset) error {
		kept := d.Products[:0]
		for _, p := range d.Products {
			if p.Matches(key) {
				removed++
				continue
			}
			kept = append(kept, p)
		}
		d.Products = kept
		return nil
	})
	if err != nil {
		log.Printf("❌ DeleteProduct: %v", err)
		return 0, err
	}
	log.Printf("✅ DeleteProduct: Removed %d products matching %q", removed, key.Description)
	return removed, nil
}

// ListProducts returns the products in insertion order
func (c *CatalogService) ListProducts() []models.Product {
	return c.session.snapshot().Products
}

// parseClient validates the raw form values of a client
func parseClient(in models.ClientInput) (models.Client, error) {
	name, err := utils.RequireText("nome", in.Name)
	if err != nil {
		return models.Client{}, err
	}
	if !utils.IsLettersAndSpaces(name) {
		return models.Client{}, models.NewValidationError("nome", "must contain only letters and spaces")
	}

	docType := models.DocumentType(strings.ToUpper(strings.TrimSpace(in.DocumentType)))
	if docType.DigitCount() == 0 {
		return models.Client{}, models.NewValidationError("tipo_documento", "must be CPF or CNPJ")
	}

	docNumber, err := utils.RequireText("cpf_cnpj", in.DocumentNumber)
	if err != nil {
		return models.Client{}, err
	}
	if !utils.IsDigits(docNumber) {
		return models.Client{}, models.NewValidationError("cpf_cnpj", "must contain only digits")
	}
	if len(docNumber) != docType.DigitCount() {
		return models.Client{}, models.NewValidationError("cpf_cnpj",
			fmt.Sprintf("%s must have %d digits", docType, docType.DigitCount()))
	}

	address, err := utils.RequireText("endereco", in.Address)
	if err != nil {
		return models.Client{}, err
	}
	city, err := utils.RequireText("cidade", in.City)
	if err != nil {
		return models.Client{}, err
	}
	phone, err := utils.RequireText("telefone", in.Phone)
	if err != nil {
		return models.Client{}, err
	}
	if !utils.IsDigits(phone) {
		return models.Client{}, models.NewValidationError("telefone", "must contain only digits")
	}

	return models.Client{
		Name:           name,
		DocumentType:   docType,
		DocumentNumber: docNumber,
		Address:        address,
		City:           city,
		Phone:          phone,
	}, nil
}

// AddClient validates and registers a client. Names are not deduplicated.
func (c *CatalogService) AddClient(in models.ClientInput) (models.Client, error) {
	client, err := parseClient(in)
	if err != nil {
		log.Printf("❌ AddClient: %v", err)
		return models.Client{}, err
	}

	err = c.session.commit(func(d *models.Dataset) error {
		d.Clients = append(d.Clients, client)
		return nil
	})
	if err != nil {
		log.Printf("❌ AddClient: %v", err)
		return models.Client{}, err
	}

	log.Printf("✅ AddClient: Registered client %q (%s)", client.Name, client.DocumentType)
	return client, nil
}

// FindClient returns the first client with the given name
func (c *CatalogService) FindClient(name string) (models.Client, error) {
	return findClient(c.session.snapshot().Clients, name)
}

func findClient(clients []models.Client, name string) (models.Client, error) {
	name = strings.TrimSpace(name)
	for _, cl := range clients {
		if cl.Name == name {
			return cl, nil
		}
	}
	return models.Client{}, fmt.Errorf("client %q: %w", name, models.ErrNotFound)
}

// EditClient returns the stored values of the first client with the given
// name as form values. It does not mutate anything.
func (c *CatalogService) EditClient(name string) (models.ClientInput, error) {
	cl, err := c.FindClient(name)
	if err != nil {
		return models.ClientInput{}, err
	}
	return models.ClientInput{
		Name:           cl.Name,
		DocumentType:   string(cl.DocumentType),
		DocumentNumber: cl.DocumentNumber,
		Address:        cl.Address,
		City:           cl.City,
		Phone:          cl.Phone,
	}, nil
}

// DeleteClient removes every client with the given name
func (c *CatalogService) DeleteClient(name string) (int, error) {
	name = strings.TrimSpace(name)
	removed := 0
	err := c.session.commit(func(d *models.Dataset) error {
		kept := d.Clients[:0]
		for _, cl := range d.Clients {
			if cl.Name == name {
				removed++
				continue
			}
			kept = append(kept, cl)
		}
		d.Clients = kept
		return nil
	})
	if err != nil {
		log.Printf("❌ DeleteClient: %v", err)
		return 0, err
	}
	log.Printf("✅ DeleteClient: Removed %d clients named %q", removed, name)
	return removed, nil
}

// ListClients returns the clients in insertion order
func (c *CatalogService) ListClients() []models.Client {
	return c.session.snapshot().Clients
}

// SearchClients returns the clients whose name starts with prefix
func (c *CatalogService) SearchClients(prefix string) []models.Client {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []models.Client{}
	}
	matches := []models.Client{}
	for _, cl := range c.session.snapshot().Clients {
		if strings.HasPrefix(cl.Name, prefix) {
			matches = append(matches, cl)
		}
	}
	return matches
}

// ImportProducts reads products from CSV with the header
// descricao,tipo_madeira,largura,espessura,custo_m3. Every row must be valid
// or nothing is imported. Returns the number of rows imported.
func (c *CatalogService) ImportProducts(r io.Reader) (int, error) {
	decoder, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, models.NewValidationError("csv", "file is empty")
		}
		return 0, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	var inputs []models.ProductInput
	if err := decoder.Decode(&inputs); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, models.NewValidationError("csv", "file has no product rows")
		}
		return 0, fmt.Errorf("failed to decode CSV: %w", err)
	}

	products := make([]models.Product, 0, len(inputs))
	for i, in := range inputs {
		p, err := parseProduct(in)
		if err != nil {
			log.Printf("❌ ImportProducts: row %d: %v", i+2, err)
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
		products = append(products, p)
	}

	err = c.session.commit(func(d *models.Dataset) error {
		for _, p := range products {
			d.Products, _ = upsertProduct(d.Products, p)
		}
		return nil
	})
	if err != nil {
		log.Printf("❌ ImportProducts: %v", err)
		return 0, err
	}

	log.Printf("✅ ImportProducts: Imported %d products", len(products))
	return len(products), nil
}
