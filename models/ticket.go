package models

import (
	"html/template"
	"time"
)

// Ticket is the fixed-layout sales ticket produced from a finalized quote.
// All cell values are already formatted for printing. LogoDataURI is trusted
// and printed as-is, so it must only come from a locally encoded logo.
type Ticket struct {
	Title        string
	Letterhead   []string
	LogoDataURI  template.URL
	Client       TicketClient
	Columns      []string
	Rows         []TicketRow
	Footer       TicketFooter
	Installments []TicketInstallment
	Notes        []string
	GeneratedAt  time.Time
	GrandTotal   float64
}

// TicketClient is the client-info block of the ticket
type TicketClient struct {
	Name     string
	Address  string
	City     string
	Document string
	Phone    string
}

// TicketRow is one line-item row of the ticket table
type TicketRow struct {
	Number        string
	Product       string
	Unit          string
	Freight       string
	Other         string
	Insurance     string
	Quantity      string
	PricePerMeter string
	UnitPrice     string
	Total         string
}

// TicketFooter is the totals and payment block of the ticket
type TicketFooter struct {
	Seller          string
	PaymentMethod   string
	PaymentTerms    string
	CreditUsed      string
	CreditAvailable string
	Others          string
	Insurance       string
	Surcharge       string
	NetTotal        string
	GrandTotal      string
}

// TicketInstallment is one row of the payment composition block
type TicketInstallment struct {
	Number  string
	Method  string
	Amount  string
	DueDate string
}

// Letterhead holds the static business information printed on top of every ticket
type Letterhead struct {
	CompanyName string
	TradeName   string
	Phone       string
	Address     string
	CNPJ        string
	IE          string
}

// TicketRequest represents the request body for generating the ticket
// Example request:
// {"vendedor": "JOAO", "forma_pagamento": "DINHEIRO", "condicao_pagamento": "A VISTA",
//
//	"limite_credito_utilizado": "0,00", "limite_credito_disponivel": "0,00"}
type TicketRequest struct {
	SellerMeta
}

// TicketResponse represents the result of a ticket generation
type TicketResponse struct {
	File       string  `json:"arquivo"`
	ClientName string  `json:"cliente"`
	Lines      int     `json:"linhas"`
	Total      float64 `json:"total"`
	Archived   bool    `json:"arquivado"`
}
