// Package server initializes and runs the application server: it loads the
// RSA key pair, assembles the HTTP API and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"classkeeper/internal/app/server/api"
	"classkeeper/internal/app/server/config"
	"classkeeper/internal/app/server/crypto"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	log    *slog.Logger
	server *http.Server
}

// NewApp wires the application. A key pair that cannot be generated or
// unlocked is fatal here, before the server ever accepts a request.
func NewApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	cipher, err := crypto.EnsureKeyPair(cfg.Crypto.KeysDir, cfg.Crypto.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("init key pair: %w", err)
	}

	mux := api.New(cfg, cipher, log)

	return &App{
		config: cfg,
		log:    log,
		server: &http.Server{
			Addr:    cfg.Server.RunAddress,
			Handler: mux,
		},
	}, nil
}

// Run serves until the context is canceled or a termination signal arrives,
// then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigs
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", "addr", a.config.Server.RunAddress, "env", a.config.Env)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
