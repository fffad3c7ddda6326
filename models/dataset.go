package models

// Dataset is the full content of the persisted record file
type Dataset struct {
	Products   []Product   `json:"produtos"`
	Clients    []Client    `json:"clientes"`
	QuoteLines []QuoteLine `json:"orcamento_produtos"`
	Sales      []Sale      `json:"vendas"`
}

// Clone returns a copy of the dataset whose slices can be mutated
// without affecting d. Collections are never nil.
func (d *Dataset) Clone() *Dataset {
	return &Dataset{
		Products:   append(make([]Product, 0, len(d.Products)), d.Products...),
		Clients:    append(make([]Client, 0, len(d.Clients)), d.Clients...),
		QuoteLines: append(make([]QuoteLine, 0, len(d.QuoteLines)), d.QuoteLines...),
		Sales:      append(make([]Sale, 0, len(d.Sales)), d.Sales...),
	}
}
