// Package shoesclean собирает HTTP-приложение каталога: хранилище, миграции,
// кеш, публикацию событий и маршруты.
package shoesclean

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/jayden648/shoesclean/internal/cache"
	"github.com/jayden648/shoesclean/internal/config"
	"github.com/jayden648/shoesclean/internal/events"
	"github.com/jayden648/shoesclean/internal/lib/sl"
	"github.com/jayden648/shoesclean/internal/migrations"
	"github.com/jayden648/shoesclean/internal/services/catalog"
	"github.com/jayden648/shoesclean/internal/storage/repository"
)

type App struct {
	server  *http.Server
	logger  *slog.Logger
	db      *repository.Storage
	cache   cache.Store
	events  events.Publisher
	timeout config.HTTPServer
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		db.Close()
		return nil, err
	}
	if err = db.CheckDatabaseReady(ctx); err != nil {
		db.Close()
		return nil, err
	}

	store, err := cache.New(ctx, cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.RabbitMQ.URL != "" {
		amqpPublisher, err := events.NewAMQP(cfg.RabbitMQ, logger)
		if err != nil {
			store.Close()
			db.Close()
			return nil, err
		}
		publisher = amqpPublisher
	} else {
		logger.Info("rabbitmq url is empty, catalog events are disabled")
	}

	serviceCatalog := catalog.NewService(db, store, publisher, cfg.Cache.TTL, logger)
	productCatalog := catalog.NewProductService(db, store, publisher, cfg.Cache.TTL, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, serviceCatalog, productCatalog)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		db:      db,
		cache:   store,
		events:  publisher,
		timeout: cfg.HTTPServer,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), a.timeout.ShutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if err := a.events.Close(); err != nil {
		a.logger.Warn("failed to close event publisher", sl.Err(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("failed to close cache", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
}
