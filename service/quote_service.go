package service

import (
	"fmt"
	"log"
	"math"
	"sort"

	"madeireira-orcamento/models"
	"madeireira-orcamento/pricing"
	"madeireira-orcamento/utils"
)

// QuoteService assembles the quote (orçamento) of the session
type QuoteService struct {
	session *Session
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(session *Session) *QuoteService {
	return &QuoteService{session: session}
}

// Ensure QuoteService implements QuoteServiceInterface
var _ QuoteServiceInterface = (*QuoteService)(nil)

// SelectClient binds the quote to an existing client
func (q *QuoteService) SelectClient(name string) (models.Client, error) {
	client, err := findClient(q.session.snapshot().Clients, name)
	if err != nil {
		log.Printf("❌ SelectClient: %v", err)
		return models.Client{}, err
	}
	q.session.setClient(client.Name)
	log.Printf("✅ SelectClient: Quote bound to client %q", client.Name)
	return client, nil
}

// AddLine prices a product line and appends it to the quote
func (q *QuoteService) AddLine(req models.AddLineRequest) (models.QuoteLine, error) {
	length, err := utils.ParsePositiveFloat("tamanho", req.Length)
	if err != nil {
		log.Printf("❌ AddLine: %v", err)
		return models.QuoteLine{}, err
	}
	quantity, err := utils.ParsePositiveInt("quantidade", req.Quantity)
	if err != nil {
		log.Printf("❌ AddLine: %v", err)
		return models.QuoteLine{}, err
	}
	sellPrice, err := utils.ParsePositiveFloat("vlr_m", req.SellPricePerM)
	if err != nil {
		log.Printf("❌ AddLine: %v", err)
		return models.QuoteLine{}, err
	}

	var line models.QuoteLine
	err = q.session.commit(func(d *models.Dataset) error {
		for _, p := range d.Products {
			if p.Matches(req.ProductKey) {
				line = pricing.CalculateLine(pricing.LineInput{
					Product:           p,
					LengthM:           length,
					Quantity:          quantity,
					SellPricePerMeter: sellPrice,
				})
				if !isFinite(line.UnitPrice, line.LineTotal, line.LineProfit) {
					return models.NewValidationError("vlr_m", "line total is too large")
				}
				d.QuoteLines = append(d.QuoteLines, line)
				if !isFinite(pricing.Total(d.QuoteLines), pricing.Profit(d.QuoteLines)) {
					return models.NewValidationError("vlr_m", "quote total is too large")
				}
				return nil
			}
		}
		return fmt.Errorf("product %q: %w", req.Description, models.ErrNotFound)
	})
	if err != nil {
		log.Printf("❌ AddLine: %v", err)
		return models.QuoteLine{}, err
	}

	log.Printf("✅ AddLine: %s - %sM - Qtd: %d - Vlr. M: %s - Total: %s",
		line.ProductDescription, utils.FormatLength(line.LengthM), line.Quantity,
		utils.FormatBRL(line.UnitSellPricePerMeter), utils.FormatBRL(line.LineTotal))
	return line, nil
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// RemoveLines removes the selected lines (0-based indexes). With nothing
// selected it fails with models.ErrEmptySelection; with any index out of
// range it fails with models.ErrIndexOutOfRange and removes nothing.
func (q *QuoteService) RemoveLines(indexes ...int) error {
	if len(indexes) == 0 {
		log.Printf("⚠️  RemoveLines: no line selected")
		return models.ErrEmptySelection
	}

	removed := 0
	err := q.session.commit(func(d *models.Dataset) error {
		selected := make(map[int]bool, len(indexes))
		for _, i := range indexes {
			if i < 0 || i >= len(d.QuoteLines) {
				return fmt.Errorf("line %d of %d: %w", i, len(d.QuoteLines), models.ErrIndexOutOfRange)
			}
			selected[i] = true
		}

		order := make([]int, 0, len(selected))
		for i := range selected {
			order = append(order, i)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(order)))
		for _, i := range order {
			d.QuoteLines = append(d.QuoteLines[:i], d.QuoteLines[i+1:]...)
		}
		removed = len(order)
		return nil
	})
	if err != nil {
		log.Printf("❌ RemoveLines: %v", err)
		return err
	}

	log.Printf("✅ RemoveLines: Removed %d lines", removed)
	return nil
}

// RemoveLine removes a single line by index
func (q *QuoteService) RemoveLine(index int) error {
	return q.RemoveLines(index)
}

// Lines returns the quote lines with their 1-based sequence numbers
func (q *QuoteService) Lines() []models.QuoteLineView {
	return lineViews(q.session.Quote().Lines)
}

func lineViews(lines []models.QuoteLine) []models.QuoteLineView {
	views := make([]models.QuoteLineView, len(lines))
	for i, l := range lines {
		views[i] = models.QuoteLineView{Number: i + 1, QuoteLine: l}
	}
	return views
}

// Total returns the sum of all line totals
func (q *QuoteService) Total() float64 {
	return pricing.Total(q.session.Quote().Lines)
}

// Profit returns the sum of all line profits
func (q *QuoteService) Profit() float64 {
	return pricing.Profit(q.session.Quote().Lines)
}

// Current returns the quote with its computed totals
func (q *QuoteService) Current() models.QuoteResponse {
	quote := q.session.Quote()
	return models.QuoteResponse{
		ClientName: quote.ClientName,
		Lines:      lineViews(quote.Lines),
		Total:      pricing.Total(quote.Lines),
		Profit:     pricing.Profit(quote.Lines),
	}
}

// Reset clears the lines and the selected client to start a new quote
func (q *QuoteService) Reset() error {
	err := q.session.commit(func(d *models.Dataset) error {
		d.QuoteLines = []models.QuoteLine{}
		return nil
	})
	if err != nil {
		log.Printf("❌ Reset: %v", err)
		return err
	}
	q.session.setClient("")
	log.Printf("✅ Reset: Quote cleared")
	return nil
}
