package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"madeireira-orcamento/app/controller"
	"madeireira-orcamento/app/router"
	"madeireira-orcamento/config"
	"madeireira-orcamento/db"
	"madeireira-orcamento/repository"
	"madeireira-orcamento/service"
)

// App holds the wired services of one running instance
type App struct {
	Config  config.Config
	Catalog *service.CatalogService
	Quotes  *service.QuoteService
	Tickets *service.TicketService
	Reports *service.ReportService
	// Sync is nil when no sales mirror is configured
	Sync *service.SyncService

	conn *sql.DB
}

// Initialize loads the record file and wires the services. The sales mirror
// and the ticket archive are only enabled when configured; failing to reach
// them is logged and the application keeps working on the local file.
func Initialize(ctx context.Context, cfg config.Config) (*App, error) {
	store := repository.NewRecordStore(cfg.DataFile)
	session, err := service.NewSession(store)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	log.Printf("✓ Records loaded from %s", store.Path())

	a := &App{
		Config:  cfg,
		Catalog: service.NewCatalogService(session),
		Quotes:  service.NewQuoteService(session),
		Reports: service.NewReportService(session),
	}

	var mirror repository.SaleMirrorInterface
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️  Sales mirror disabled: %v", err)
		} else {
			saleRepo := repository.NewSaleRepository(conn)
			if err := saleRepo.EnsureSchema(ctx); err != nil {
				log.Printf("⚠️  Sales mirror disabled: %v", err)
				conn.Close()
			} else {
				a.conn = conn
				mirror = saleRepo
				a.Sync = service.NewSyncService(session, saleRepo)
			}
		}
	}

	var archive service.TicketArchiveInterface
	if cfg.DriveCredentialsPath != "" {
		driveService, err := service.NewDriveService(ctx, cfg.DriveCredentialsPath, cfg.DriveTicketsFolderID)
		if err != nil {
			log.Printf("⚠️  Ticket archive disabled: %v", err)
		} else {
			archive = driveService
		}
	}

	logo, err := service.LoadLogoDataURI(cfg.TicketLogo)
	if err != nil {
		log.Printf("⚠️  Ticket logo disabled: %v", err)
	}

	a.Tickets, err = service.NewTicketService(session, service.NewChromePrinter(cfg.ChromePath), archive, mirror,
		service.TicketOptions{
			OutputPath:  cfg.TicketFile,
			Letterhead:  cfg.Letterhead,
			LogoDataURI: logo,
			AutoOpen:    cfg.TicketAutoOpen,
		})
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// Handler returns the HTTP handler serving the JSON endpoints
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	router.SetupRoutes(mux, &router.Controllers{
		Product: controller.NewProductController(a.Catalog),
		Client:  controller.NewClientController(a.Catalog),
		Quote:   controller.NewQuoteController(a.Quotes),
		Ticket:  controller.NewTicketController(a.Tickets),
		Sale:    controller.NewSaleController(a.Reports),
	})
	return mux
}

// Close releases the database connection, if any
func (a *App) Close() {
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			log.Printf("⚠️  Failed to close database connection: %v", err)
		}
		a.conn = nil
	}
}
