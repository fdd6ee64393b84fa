package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/vsinha/filmplant/pkg/application/reference"
	"github.com/vsinha/filmplant/pkg/application/services"
	"github.com/vsinha/filmplant/pkg/infrastructure/config"
	"github.com/vsinha/filmplant/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/filmplant/pkg/interfaces/api"
)

const shutdownTimeout = 5 * time.Second

// ServeCommand runs the HTTP evaluation endpoint until the context is cancelled
type ServeCommand struct {
	config config.Config
}

// NewServeCommand creates a new serve command
func NewServeCommand(cfg config.Config) *ServeCommand {
	return &ServeCommand{config: cfg}
}

// Execute runs the serve command
func (c *ServeCommand) Execute(ctx context.Context) error {
	catalog, err := memory.NewMaterialRepositoryFrom(reference.Materials())
	if err != nil {
		return fmt.Errorf("failed to load material catalog: %w", err)
	}

	srv := api.NewServer(services.NewEvaluationService(catalog), c.config.SweepMaxTons)
	httpServer := &http.Server{
		Addr:              ":" + c.config.Port,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		log.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}
