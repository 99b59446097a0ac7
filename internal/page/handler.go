package page

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/3-lines-studio/linkdeck/internal/core"
	"github.com/3-lines-studio/linkdeck/internal/logging"
	"github.com/3-lines-studio/linkdeck/internal/store"
)

// Store is the slice of persistence the page handlers need.
type Store interface {
	Sections(ctx context.Context) ([]core.Section, error)
	DeleteLink(ctx context.Context, id int64) error
}

type Handler struct {
	store Store
	title string
	isDev bool
	log   *logrus.Entry
}

func NewHandler(s Store, title string, isDev bool) *Handler {
	return &Handler{
		store: s,
		title: title,
		isDev: isDev,
		log:   logging.NewLogger("page"),
	}
}

// Dashboard serves the rendered dashboard at the site root.
func (h *Handler) Dashboard() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sections, err := h.store.Sections(r.Context())
		if err != nil {
			h.log.WithError(err).Error("load sections")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		html, err := RenderDashboard(ViewData{
			Title:              h.title,
			Sections:           sections,
			WithDeleteControls: true,
		})
		if err != nil {
			h.log.WithError(err).Error("render dashboard")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	})
}

// Stylesheet serves the dashboard CSS.
func (h *Handler) Stylesheet() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		if h.isDev {
			w.Header().Set("Cache-Control", "no-store")
		}
		_, _ = w.Write([]byte(AppCSS))
	})
}

// DeleteLink handles the delete form posted by a link row, then sends the
// browser back to the dashboard.
func (h *Handler) DeleteLink() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid link id", http.StatusBadRequest)
			return
		}

		if err := h.store.DeleteLink(r.Context(), id); err != nil {
			if errors.Is(err, store.ErrLinkNotFound) {
				http.Error(w, "link not found", http.StatusNotFound)
				return
			}
			h.log.WithError(err).WithField("link_id", id).Error("delete link")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		h.log.WithField("link_id", id).Info("link deleted")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})
}
