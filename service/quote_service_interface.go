package service

import "madeireira-orcamento/models"

// QuoteServiceInterface defines the contract for assembling the quote
type QuoteServiceInterface interface {
	SelectClient(name string) (models.Client, error)
	AddLine(req models.AddLineRequest) (models.QuoteLine, error)
	RemoveLines(indexes ...int) error
	Lines() []models.QuoteLineView
	Total() float64
	Current() models.QuoteResponse
	Reset() error
}
