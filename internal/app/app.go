package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"library/internal/catalog"
	"library/internal/config"
	"library/internal/menu"
	"library/internal/storage"
	"library/internal/storage/flatfile"
	"library/internal/storage/stubs"
)

// App wires the configuration, logger, storage, catalog session, and
// interactive menu into one run of the program.
type App struct {
	config  *config.Config
	logger  *zap.Logger
	store   storage.Storage
	catalog *catalog.Catalog
	menu    *menu.Menu
}

// New creates and initializes a new application instance. Diagnostics go
// to stderr so the menu owns stdout.
func New(cfg *config.Config) (*App, error) {
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	app := &App{config: cfg, logger: logger}

	if cfg.UseMemoryDB {
		logger.Info("Using in-memory store")
		app.store = stubs.NewMockStore()
	} else {
		logger.Info("Using flat-file store",
			zap.String("data_dir", cfg.DataDir),
			zap.String("delimiter", cfg.Delimiter),
		)
		store, err := flatfile.NewStore(cfg.DataDir, cfg.Delimiter, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open flat-file store: %w", err)
		}
		app.store = store
	}

	app.catalog = catalog.New(app.store, logger, catalog.WithLoanPeriod(cfg.LoanPeriodDays))
	app.menu = menu.New(app.catalog, os.Stdin, os.Stdout, logger)

	return app, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Run loads the catalog, drives the menu until the operator exits, and
// then persists everything. A crash or kill mid-session saves nothing;
// only the clean exit path writes the data files back.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.catalog.Load(ctx); err != nil {
		a.logger.Error("Failed to load catalog", zap.Error(err))
		return err
	}

	if err := a.menu.Run(); err != nil {
		a.logger.Error("Menu session failed", zap.Error(err))
		return err
	}

	return a.Shutdown(ctx)
}

// Shutdown persists every collection, releases the session, and flushes
// the logs.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.catalog.Save(ctx); err != nil {
		a.logger.Error("Failed to save catalog", zap.Error(err))
		return err
	}
	if err := a.catalog.Close(); err != nil {
		a.logger.Error("Failed to close storage", zap.Error(err))
		return err
	}

	a.logger.Info("Shutdown complete")
	_ = a.logger.Sync()
	return nil
}
