package models

// DocumentType is the kind of Brazilian taxpayer document a client presents
type DocumentType string

const (
	DocumentCPF  DocumentType = "CPF"
	DocumentCNPJ DocumentType = "CNPJ"
)

// DigitCount returns the number of digits a document of this type has,
// or 0 for an unknown type
func (d DocumentType) DigitCount() int {
	switch d {
	case DocumentCPF:
		return 11
	case DocumentCNPJ:
		return 14
	}
	return 0
}

// Client represents a registered customer
type Client struct {
	Name           string       `json:"nome"`
	DocumentType   DocumentType `json:"tipo_documento"`
	DocumentNumber string       `json:"cpf_cnpj"`
	Address        string       `json:"endereco"`
	City           string       `json:"cidade"`
	Phone          string       `json:"telefone"`
}

// ClientInput holds the raw form values for adding a client
// Example request:
// {"nome": "MARIA SILVA", "tipo_documento": "CPF", "cpf_cnpj": "12345678901",
//
//	"endereco": "RUA A, 10", "cidade": "XAMBRE", "telefone": "44999990000"}
type ClientInput struct {
	Name           string `json:"nome"`
	DocumentType   string `json:"tipo_documento"`
	DocumentNumber string `json:"cpf_cnpj"`
	Address        string `json:"endereco"`
	City           string `json:"cidade"`
	Phone          string `json:"telefone"`
}

// ClientListResponse represents the response for listing clients
type ClientListResponse struct {
	Clients []Client `json:"clientes"`
}
