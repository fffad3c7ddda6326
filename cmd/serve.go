package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"madeireira-orcamento/app"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON endpoints",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (default from PORT or 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if port != "" {
		cfg.Port = port
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker)
	addr := "0.0.0.0:" + cfg.Port
	server := &http.Server{Addr: addr, Handler: a.Handler()}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
