// Package linkdeck wires the saved-links dashboard: a SQLite-backed store, a
// JSON API and a server-rendered HTML front page.
package linkdeck

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/3-lines-studio/linkdeck/internal/api"
	"github.com/3-lines-studio/linkdeck/internal/config"
	"github.com/3-lines-studio/linkdeck/internal/logging"
	"github.com/3-lines-studio/linkdeck/internal/page"
	"github.com/3-lines-studio/linkdeck/internal/store"
)

type App struct {
	cfg   config.Config
	store *store.Store
	isDev bool
	log   *logrus.Entry
}

// router is the subset of a mux the app registers routes onto. Satisfied by
// *http.ServeMux and most third-party routers.
type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

func New(cfg config.Config) (*App, error) {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("linkdeck: %w", err)
	}

	return &App{
		cfg:   cfg,
		store: st,
		isDev: config.IsDev(),
		log:   logging.NewLogger("linkdeck"),
	}, nil
}

// Wrap registers every page and API route onto mux and returns the final
// handler with middleware applied. Callers that want extra routes register
// them on mux before or after calling Wrap.
func (a *App) Wrap(mux router) http.Handler {
	if mux == nil {
		panic("linkdeck: nil router passed to Wrap; use app.Handler()")
	}

	pages := page.NewHandler(a.store, a.cfg.Title, a.isDev)
	mux.Handle("GET /{$}", pages.Dashboard())
	mux.Handle("GET /static/app.css", pages.Stylesheet())
	mux.Handle("POST /links/{id}/delete", pages.DeleteLink())

	api.NewHandlers(a.store).Register(mux)

	var h http.Handler = mux
	h = api.WithSecurityHeaders(h)
	h = api.WithCORS(h)
	h = api.WithRequestLog(a.log, h)
	return h
}

// Handler is Wrap over a fresh ServeMux.
func (a *App) Handler() http.Handler {
	return a.Wrap(http.NewServeMux())
}

func (a *App) Close() error {
	return a.store.Close()
}
