package models

import "strings"

// Product represents a lumber product registered in the catalog
type Product struct {
	Description       string  `json:"descricao"`
	WoodType          string  `json:"tipo_madeira"`
	WidthCM           float64 `json:"largura"`
	ThicknessCM       float64 `json:"espessura"`
	CostPerCubicMeter float64 `json:"custo_m3"`
}

// ProductKey is the composite identity of a product:
// description + wood type + width + thickness
type ProductKey struct {
	Description string  `json:"descricao"`
	WoodType    string  `json:"tipo_madeira"`
	WidthCM     float64 `json:"largura"`
	ThicknessCM float64 `json:"espessura"`
}

// Key returns the composite identity of the product
func (p Product) Key() ProductKey {
	return ProductKey{
		Description: p.Description,
		WoodType:    p.WoodType,
		WidthCM:     p.WidthCM,
		ThicknessCM: p.ThicknessCM,
	}
}

// Matches reports whether the product has the given composite key.
// Text fields are compared after trimming surrounding spaces.
func (p Product) Matches(key ProductKey) bool {
	return strings.TrimSpace(p.Description) == strings.TrimSpace(key.Description) &&
		strings.TrimSpace(p.WoodType) == strings.TrimSpace(key.WoodType) &&
		p.WidthCM == key.WidthCM &&
		p.ThicknessCM == key.ThicknessCM
}

// ProductInput holds the raw form values for adding a product.
// Numeric fields are kept as typed by the user and parsed by the catalog.
// Example request:
// {"descricao": "TABUA PINUS", "tipo_madeira": "PINUS", "largura": "2", "espessura": "15", "custo_m3": "800"}
type ProductInput struct {
	Description       string `json:"descricao" csv:"descricao"`
	WoodType          string `json:"tipo_madeira" csv:"tipo_madeira"`
	Width             string `json:"largura" csv:"largura"`
	Thickness         string `json:"espessura" csv:"espessura"`
	CostPerCubicMeter string `json:"custo_m3" csv:"custo_m3"`
}

// ProductListResponse represents the response for listing products
type ProductListResponse struct {
	Products []Product `json:"produtos"`
}
