package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/wire"
	"farm-storefront/pkg/upstream"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("api_url", config.Upstream.BaseURL),
		zap.String("session_store", config.Session.Store),
		zap.Bool("debug", config.App.Debug),
	)

	sessions, closeStore, err := openSessionStore(ctx, config, logger)
	if err != nil {
		logger.Error("Failed to open session store", zap.Error(err))
		return err
	}
	defer closeStore()

	api := upstream.New(config.Upstream.BaseURL, logger, upstream.WithTimeout(config.Upstream.Timeout))

	// Initialize all repositories
	repos := repository.NewRepository(sessions, api, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)
	go app.Limiter.Run(ctx)

	return APIServer(ctx, app.Router, config.App.Port, logger)
}

// APIServer serves route until ctx is cancelled, then drains in-flight
// requests.
func APIServer(ctx context.Context, route *chi.Mux, port string, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           route,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("addr", "http://localhost"+srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server error", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown error", zap.Error(err))
		return err
	}
	return nil
}
