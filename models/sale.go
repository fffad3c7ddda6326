package models

// Sale is one finalized quote line recorded in the sales ledger (vendas).
// Every generated ticket appends one Sale per quote line.
type Sale struct {
	ID                 string  `json:"id"`
	SoldAt             string  `json:"data"`
	ClientName         string  `json:"cliente"`
	ProductDescription string  `json:"descricao"`
	LengthM            float64 `json:"tamanho"`
	Quantity           int     `json:"quantidade"`
	SellPricePerMeter  float64 `json:"vlr_m"`
	UnitPrice          float64 `json:"vlr_un"`
	Total              float64 `json:"total"`
	Profit             float64 `json:"lucro"`
	Seller             string  `json:"vendedor,omitempty"`
	PaymentMethod      string  `json:"forma_pagamento,omitempty"`
}

// ClientSalesTotal aggregates the sales of a single client
type ClientSalesTotal struct {
	ClientName string  `json:"cliente"`
	Count      int     `json:"quantidade_vendas"`
	Total      float64 `json:"total"`
	Profit     float64 `json:"lucro"`
}

// SalesSummary represents the sales report
// Example response:
//
//	{
//	  "quantidade_vendas": 2,
//	  "total": 560,
//	  "lucro": 549.2,
//	  "clientes": [{"cliente": "MARIA SILVA", "quantidade_vendas": 2, "total": 560, "lucro": 549.2}]
//	}
type SalesSummary struct {
	Count     int                `json:"quantidade_vendas"`
	Total     float64            `json:"total"`
	Profit    float64            `json:"lucro"`
	PerClient []ClientSalesTotal `json:"clientes"`
}
