// filepath: internal/cli/serve_command.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"people/internal/api"
	"people/internal/api/handlers"
	"people/internal/audit"
	"people/internal/initconfig"
	"people/internal/metrics"
	"people/internal/services"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func NewServeCommand(globalOptions *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), globalOptions)
		},
	}
}

// runServer wires storage, services and the router, then serves until SIGINT or SIGTERM.
func runServer(ctx context.Context, options *GlobalOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := options.Conf
	logger := options.Logger

	repo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	// Service Initialization
	auditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)
	personService := services.NewPersonService(repo, auditor)
	infoService := services.NewInfoService(Version, StartTime, cfg.Storage.Backend)

	if cfg.Seed.Path != "" {
		if _, err := initconfig.Run(ctx, personService, cfg.Seed.Path); err != nil {
			logger.Errorf("Seeding failed: %v", err)
		}
	}

	h := handlers.NewHandlers(infoService, personService)
	r := api.SetupRouter(h, metrics.New())

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("Server starting on %s (storage: %s)", srv.Addr, cfg.Storage.Backend)
	if err := serveUntilDone(ctx, srv, ln); err != nil {
		return err
	}
	logger.Info("Server exiting")
	return nil
}

// serveUntilDone serves on ln until ctx is cancelled, then shuts srv down gracefully.
func serveUntilDone(ctx context.Context, srv *http.Server, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
