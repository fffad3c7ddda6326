package models

// QuoteLine is one product line of the in-progress quote (orçamento).
// UnitPrice, LineTotal and LineProfit are always derived by the pricing
// engine from the other fields and never edited directly.
type QuoteLine struct {
	ProductDescription    string  `json:"descricao"`
	WoodType              string  `json:"tipo_madeira"`
	WidthCM               float64 `json:"largura"`
	ThicknessCM           float64 `json:"espessura"`
	LengthM               float64 `json:"tamanho"`
	Quantity              int     `json:"quantidade"`
	UnitSellPricePerMeter float64 `json:"vlr_m"`
	UnitPrice             float64 `json:"vlr_un"`
	LineTotal             float64 `json:"total"`
	LineProfit            float64 `json:"lucro"`
}

// ProductKey returns the composite key of the product the line refers to
func (l QuoteLine) ProductKey() ProductKey {
	return ProductKey{
		Description: l.ProductDescription,
		WoodType:    l.WoodType,
		WidthCM:     l.WidthCM,
		ThicknessCM: l.ThicknessCM,
	}
}

// Quote is the transient quote of the current session
type Quote struct {
	ClientName string      `json:"cliente"`
	Lines      []QuoteLine `json:"linhas"`
}

// SellerMeta holds the values attached to a quote only when the ticket is rendered
type SellerMeta struct {
	Seller          string `json:"vendedor"`
	PaymentMethod   string `json:"forma_pagamento"`
	PaymentTerms    string `json:"condicao_pagamento"`
	CreditUsed      string `json:"limite_credito_utilizado"`
	CreditAvailable string `json:"limite_credito_disponivel"`
}

// AddLineRequest represents the request body for adding a line to the quote
// Example request:
// {"descricao": "TABUA PINUS", "tipo_madeira": "PINUS", "largura": 2, "espessura": 15,
//
//	"tamanho": "3", "quantidade": "2", "vlr_m": "60"}
type AddLineRequest struct {
	ProductKey
	Length        string `json:"tamanho"`
	Quantity      string `json:"quantidade"`
	SellPricePerM string `json:"vlr_m"`
}

// RemoveLinesRequest represents the request body for removing selected lines
// Example request: {"indices": [0, 2]}
type RemoveLinesRequest struct {
	Indexes []int `json:"indices"`
}

// SelectClientRequest represents the request body for binding a client to the quote
type SelectClientRequest struct {
	Name string `json:"nome"`
}

// QuoteLineView is a line of the quote as shown to the user, with its
// 1-based sequence number
type QuoteLineView struct {
	Number int `json:"numero"`
	QuoteLine
}

// QuoteResponse represents the current quote
// Example response:
// {"cliente": "MARIA SILVA", "linhas": [{"numero": 1, "descricao": "TABUA PINUS", ...}],
//
//	"total": 360, "lucro": 358.92}
type QuoteResponse struct {
	ClientName string          `json:"cliente"`
	Lines      []QuoteLineView `json:"linhas"`
	Total      float64         `json:"total"`
	Profit     float64         `json:"lucro"`
}
