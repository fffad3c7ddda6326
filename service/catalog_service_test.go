package service

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madeireira-orcamento/models"
	"madeireira-orcamento/repository"
)

func TestCatalogService_AddProduct(t *testing.T) {
	session, store := newTestSession(t)
	catalog := NewCatalogService(session)

	product, err := catalog.AddProduct(pinusInput())
	require.NoError(t, err)
	assert.Equal(t, models.Product{
		Description: "TABUA PINUS", WoodType: "PINUS", WidthCM: 2, ThicknessCM: 15, CostPerCubicMeter: 800,
	}, product)

	// persisted before returning
	data, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []models.Product{product}, data.Products)
}

func TestCatalogService_AddProductDecimalComma(t *testing.T) {
	session, _ := newTestSession(t)
	catalog := NewCatalogService(session)

	in := pinusInput()
	in.Width = "2,5"
	product, err := catalog.AddProduct(in)
	require.NoError(t, err)
	assert.Equal(t, 2.5, product.WidthCM)
}

func TestCatalogService_AddProductValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.ProductInput)
		field  string
	}{
		{"empty description", func(in *models.ProductInput) { in.Description = "  " }, "descricao"},
		{"empty wood type", func(in *models.ProductInput) { in.WoodType = "" }, "tipo_madeira"},
		{"non numeric width", func(in *models.ProductInput) { in.Width = "abc" }, "largura"},
		{"zero thickness", func(in *models.ProductInput) { in.Thickness = "0" }, "espessura"},
		{"negative cost", func(in *models.ProductInput) { in.CostPerCubicMeter = "-5" }, "custo_m3"},
		{"empty cost", func(in *models.ProductInput) { in.CostPerCubicMeter = "" }, "custo_m3"},
		{"infinite width", func(in *models.ProductInput) { in.Width = "Inf" }, "largura"},
		{"NaN thickness", func(in *models.ProductInput) { in.Thickness = "NaN" }, "espessura"},
		{"overflowing cost", func(in *models.ProductInput) { in.CostPerCubicMeter = "1e400" }, "custo_m3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, _ := newTestSession(t)
			catalog := NewCatalogService(session)

			in := pinusInput()
			tt.mutate(&in)
			_, err := catalog.AddProduct(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrValidation))

			var verr *models.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Empty(t, catalog.ListProducts())
		})
	}
}

func TestCatalogService_AddProductReplacesSameKey(t *testing.T) {
	session, _ := newTestSession(t)
	catalog := NewCatalogService(session)

	_, err := catalog.AddProduct(pinusInput())
	require.NoError(t, err)

	in := pinusInput()
	in.CostPerCubicMeter = "950"
	_, err = catalog.AddProduct(in)
	require.NoError(t, err)

	products := catalog.ListProducts()
	require.Len(t, products, 1)
	assert.Equal(t, 950.0, products[0].CostPerCubicMeter)
}

func TestCatalogService_EditProduct(t *testing.T) {
	session, _ := seededSession(t)
	catalog := NewCatalogService(session)

	in, err := catalog.EditProduct(models.ProductKey{Description: "TABUA PINUS", WoodType: "PINUS", WidthCM: 2, ThicknessCM: 15})
	require.NoError(t, err)
	assert.Equal(t, pinusInput(), in)

	_, err = catalog.EditProduct(models.ProductKey{Description: "VIGA", WoodType: "PINUS", WidthCM: 2, ThicknessCM: 15})
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	session, store := seededSession(t)
	catalog := NewCatalogService(session)

	other := pinusInput()
	other.Width = "3"
	_, err := catalog.AddProduct(other)
	require.NoError(t, err)

	removed, err := catalog.DeleteProduct(models.ProductKey{Description: "TABUA PINUS", WoodType: "PINUS", WidthCM: 2, ThicknessCM: 15})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	products := catalog.ListProducts()
	require.Len(t, products, 1)
	assert.Equal(t, 3.0, products[0].WidthCM)

	data, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, data.Products, 1)

	removed, err = catalog.DeleteProduct(models.ProductKey{Description: "NADA"})
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestCatalogService_AddClientValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.ClientInput)
		field  string
	}{
		{"name with digits", func(in *models.ClientInput) { in.Name = "MARIA 2" }, "nome"},
		{"empty name", func(in *models.ClientInput) { in.Name = "" }, "nome"},
		{"unknown document type", func(in *models.ClientInput) { in.DocumentType = "RG" }, "tipo_documento"},
		{"short CPF", func(in *models.ClientInput) { in.DocumentNumber = "1234567890" }, "cpf_cnpj"},
		{"CPF with CNPJ length", func(in *models.ClientInput) { in.DocumentNumber = "12345678000199" }, "cpf_cnpj"},
		{"document with dots", func(in *models.ClientInput) { in.DocumentNumber = "123.456.789-01" }, "cpf_cnpj"},
		{"empty address", func(in *models.ClientInput) { in.Address = "" }, "endereco"},
		{"empty city", func(in *models.ClientInput) { in.City = " " }, "cidade"},
		{"phone with letters", func(in *models.ClientInput) { in.Phone = "44-9999" }, "telefone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, _ := newTestSession(t)
			catalog := NewCatalogService(session)

			in := mariaInput()
			tt.mutate(&in)
			_, err := catalog.AddClient(in)

			var verr *models.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Empty(t, catalog.ListClients())
		})
	}
}

func TestCatalogService_AddClientCNPJ(t *testing.T) {
	session, _ := newTestSession(t)
	catalog := NewCatalogService(session)

	in := mariaInput()
	in.Name = "JOSÉ MADEIRAS"
	in.DocumentType = "cnpj"
	in.DocumentNumber = "12345678000199"
	client, err := catalog.AddClient(in)
	require.NoError(t, err)
	assert.Equal(t, models.DocumentCNPJ, client.DocumentType)
}

func TestCatalogService_ClientsAreNotDeduplicated(t *testing.T) {
	session, _ := seededSession(t)
	catalog := NewCatalogService(session)

	second := mariaInput()
	second.City = "UMUARAMA"
	_, err := catalog.AddClient(second)
	require.NoError(t, err)
	require.Len(t, catalog.ListClients(), 2)

	// the first client with the name wins
	in, err := catalog.EditClient("MARIA SILVA")
	require.NoError(t, err)
	assert.Equal(t, "XAMBRE", in.City)

	removed, err := catalog.DeleteClient("MARIA SILVA")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Empty(t, catalog.ListClients())
}

func TestCatalogService_EditClientNotFound(t *testing.T) {
	session, _ := newTestSession(t)
	catalog := NewCatalogService(session)

	_, err := catalog.EditClient("NINGUEM")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestCatalogService_SearchClients(t *testing.T) {
	session, _ := seededSession(t)
	catalog := NewCatalogService(session)

	other := mariaInput()
	other.Name = "MARCOS LIMA"
	_, err := catalog.AddClient(other)
	require.NoError(t, err)
	other.Name = "ANA SOUZA"
	_, err = catalog.AddClient(other)
	require.NoError(t, err)

	matches := catalog.SearchClients("MAR")
	require.Len(t, matches, 2)
	assert.Equal(t, "MARIA SILVA", matches[0].Name)
	assert.Equal(t, "MARCOS LIMA", matches[1].Name)

	assert.Empty(t, catalog.SearchClients(""))
	assert.Empty(t, catalog.SearchClients("ZE"))
}

func TestCatalogService_ImportProducts(t *testing.T) {
	session, store := newTestSession(t)
	catalog := NewCatalogService(session)

	csv := "descricao,tipo_madeira,largura,espessura,custo_m3\n" +
		"TABUA PINUS,PINUS,2,15,800\n" +
		"VIGA EUCALIPTO,EUCALIPTO,\"6,5\",12,1200\n"
	imported, err := catalog.ImportProducts(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	data, err := store.Load()
	require.NoError(t, err)
	require.Len(t, data.Products, 2)
	assert.Equal(t, 6.5, data.Products[1].WidthCM)
}

func TestCatalogService_ImportProductsAllOrNothing(t *testing.T) {
	session, _ := newTestSession(t)
	catalog := NewCatalogService(session)

	csv := "descricao,tipo_madeira,largura,espessura,custo_m3\n" +
		"TABUA PINUS,PINUS,2,15,800\n" +
		"VIGA EUCALIPTO,EUCALIPTO,0,12,1200\n"
	_, err := catalog.ImportProducts(strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Contains(t, err.Error(), "row 3")
	assert.Empty(t, catalog.ListProducts())
}

func TestCatalogService_ImportProductsEmpty(t *testing.T) {
	session, _ := newTestSession(t)
	catalog := NewCatalogService(session)

	_, err := catalog.ImportProducts(strings.NewReader(""))
	assert.True(t, errors.Is(err, models.ErrValidation))

	_, err = catalog.ImportProducts(strings.NewReader("descricao,tipo_madeira,largura,espessura,custo_m3\n"))
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestCatalogService_FailedSaveLeavesStateUntouched(t *testing.T) {
	store := &failingStore{RecordStoreInterface: repository.NewRecordStore(filepath.Join(t.TempDir(), "dados.json"))}
	session, err := NewSession(store)
	require.NoError(t, err)
	catalog := NewCatalogService(session)

	_, err = catalog.AddProduct(pinusInput())
	require.NoError(t, err)

	store.failWrites = true
	in := pinusInput()
	in.Description = "VIGA"
	_, err = catalog.AddProduct(in)
	assert.True(t, errors.Is(err, errDiskFull))
	assert.Len(t, catalog.ListProducts(), 1)
}
