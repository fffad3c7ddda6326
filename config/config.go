package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"madeireira-orcamento/db"
	"madeireira-orcamento/models"
)

// Config holds the runtime settings of the application
type Config struct {
	DataFile       string
	TicketFile     string
	Port           string
	ChromePath     string
	TicketAutoOpen bool
	TicketLogo     string
	Letterhead     models.Letterhead

	// Optional integrations, disabled when empty
	DatabaseURL          string
	DriveCredentialsPath string
	DriveTicketsFolderID string
}

// LoadEnvFile loads .env in development. In production variables should be
// set directly.
func LoadEnvFile() {
	if os.Getenv("ENV") == "production" {
		return
	}
	// Use Overload to ensure .env values override system environment variables
	envPath := ".env"
	if err := godotenv.Overload(envPath); err != nil {
		log.Printf("⚠️  .env file not found at %s, using system environment variables", envPath)
		return
	}
	log.Printf("Successfully loaded environment variables from %s", envPath)
}

// Load reads the configuration from the environment
func Load() Config {
	port := getenvDefault("PORT", "8080")
	// PORT from some hosts is given with a leading colon
	port = strings.TrimPrefix(port, ":")

	return Config{
		DataFile:       getenvDefault("DATA_FILE", "dados.json"),
		TicketFile:     getenvDefault("TICKET_FILE", "Ticket_Venda_Exemplo.pdf"),
		Port:           port,
		ChromePath:     os.Getenv("CHROME_PATH"),
		TicketAutoOpen: getenvBool("TICKET_AUTO_OPEN", false),
		TicketLogo:     getenvDefault("TICKET_LOGO", "static/ticket/logo.png"),
		Letterhead: models.Letterhead{
			CompanyName: getenvDefault("COMPANY_NAME", "TIGELA MADEIRAS E ARTEFATOS LTDA"),
			TradeName:   getenvDefault("COMPANY_TRADE_NAME", "TIGELA MADEIREIRA E ARTEFATOS"),
			Phone:       getenvDefault("COMPANY_PHONE", "(44) 9754-8463"),
			Address:     getenvDefault("COMPANY_ADDRESS", "AVENIDA BRASIL, No 1621, DISTRITO CASA BRANCA, XAMBRE - PR"),
			CNPJ:        getenvDefault("COMPANY_CNPJ", "39.594.567/0001-79"),
			IE:          getenvDefault("COMPANY_IE", "9086731905"),
		},
		DatabaseURL:          db.ConnectionString(),
		DriveCredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		DriveTicketsFolderID: os.Getenv("DRIVE_TICKETS_FOLDER_ID"),
	}
}

func getenvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("⚠️  Invalid boolean for %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}
