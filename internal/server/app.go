// Package server initializes and runs the authentication server: it selects
// the identity storage backend, wires the auth service into the HTTP layer,
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	hs "github.com/dmitrijs2005/authgate/internal/server/http"
	"github.com/dmitrijs2005/authgate/internal/server/shared/db"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *auth.Service
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	manager, err := newRepositoryManager(cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	authService := auth.NewService(manager.Identities(), cfg)

	return &App{config: cfg, logger: logger, authService: authService}, nil
}

func newRepositoryManager(cfg *config.Config) (db.RepositoryManager, error) {
	if cfg.DatabaseDSN == "" {
		return db.NewInMemoryRepositoryManager(), nil
	}
	return db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	handler := hs.NewAuthHandler(app.authService, app.logger)
	router := hs.NewRouter(handler, app.authService, app.logger)
	s := hs.NewServer(app.config.EndpointAddr, app.logger, router)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
