// Package server exposes the catalog, result submission and ranking over a
// small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match-league/internal/catalog"
	"github.com/vovakirdan/match-league/internal/storage"
)

// Store is the part of storage.Store the API needs.
type Store interface {
	SaveResult(ctx context.Context, r storage.Record) (id int64, ranking int, err error)
	TopResults(ctx context.Context, limit int) ([]storage.Record, error)
	Stats(ctx context.Context, player string) (storage.PlayerStats, error)
}

// API serves the HTTP endpoints.
type API struct {
	logger   *log.Logger
	store    Store
	catalogs catalog.Provider
	router   *http.ServeMux
	now      func() time.Time
}

// New creates the API. store may be nil, in which case result and ranking
// endpoints answer 503.
func New(store Store, catalogs catalog.Provider, logger *log.Logger) *API {
	if logger == nil {
		logger = log.Default()
	}
	if catalogs == nil {
		catalogs = catalog.Builtin{}
	}
	a := &API{
		logger:   logger,
		store:    store,
		catalogs: catalogs,
		router:   http.NewServeMux(),
		now:      time.Now,
	}
	a.loadRoutes()
	return a
}

func (a *API) loadRoutes() {
	a.router.HandleFunc("GET /api/catalog", a.DefaultCatalog)
	a.router.HandleFunc("GET /api/catalog/{id}", a.Catalog)
	a.router.HandleFunc("POST /api/results", a.SaveResult)
	a.router.HandleFunc("GET /api/ranking", a.Ranking)
	a.router.HandleFunc("GET /api/stats", a.Stats)
}

// Handler returns the router wrapped in the middleware chain.
func (a *API) Handler() http.Handler {
	return Wrap(a.router, Logging(a.logger), Cors())
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (a *API) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errc := make(chan error, 1)
	go func() {
		a.logger.Info("starting HTTP API", "address", addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP API")
		return server.Shutdown(shutdownCtx)
	}
}
