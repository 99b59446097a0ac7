// Package api exposes the JSON API for sections and links.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/3-lines-studio/linkdeck/internal/core"
	"github.com/3-lines-studio/linkdeck/internal/logging"
	"github.com/3-lines-studio/linkdeck/internal/store"
)

// Store is the persistence surface the API needs.
type Store interface {
	Sections(ctx context.Context) ([]core.Section, error)
	CreateSection(ctx context.Context, name string) (core.Section, error)
	UpdateSection(ctx context.Context, id int64, upd core.SectionUpdate) error
	DeleteSection(ctx context.Context, id int64) error
	AddLink(ctx context.Context, sectionID int64, title, url string) (core.Link, error)
	UpdateLink(ctx context.Context, id int64, upd core.LinkUpdate) error
	DeleteLink(ctx context.Context, id int64) error
	ReorderSections(ctx context.Context, orderedIDs []int64) error
	ReorderLinks(ctx context.Context, sectionID int64, orderedIDs []int64) error
}

// Router is the piece of a mux the API registers itself onto.
type Router interface {
	Handle(pattern string, handler http.Handler)
}

type Handlers struct {
	store Store
	log   *logrus.Entry
}

func NewHandlers(s Store) *Handlers {
	return &Handlers{store: s, log: logging.NewLogger("api")}
}

// Register wires every API route onto r using method-qualified patterns.
func (h *Handlers) Register(r Router) {
	r.Handle("GET /sections", http.HandlerFunc(h.listSections))
	r.Handle("POST /sections", http.HandlerFunc(h.createSection))
	r.Handle("PUT /sections/{id}", http.HandlerFunc(h.updateSection))
	r.Handle("DELETE /sections/{id}", http.HandlerFunc(h.deleteSection))
	r.Handle("POST /sections/{id}/links", http.HandlerFunc(h.addLink))
	r.Handle("PUT /links/{id}", http.HandlerFunc(h.updateLink))
	r.Handle("DELETE /links/{id}", http.HandlerFunc(h.deleteLink))
	r.Handle("PUT /sections-reorder", http.HandlerFunc(h.reorderSections))
	r.Handle("PUT /sections/{id}/links-reorder", http.HandlerFunc(h.reorderLinks))
}

type sectionResponse struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name"`
	Color string         `json:"color"`
	Links []linkResponse `json:"links"`
}

type linkResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type sectionCreateRequest struct {
	Name string `json:"name"`
}

type sectionUpdateRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type linkCreateRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type linkUpdateRequest struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`
}

type reorderRequest struct {
	OrderedIDs []int64 `json:"ordered_ids"`
}

func (h *Handlers) listSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.store.Sections(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	out := make([]sectionResponse, 0, len(sections))
	for _, section := range sections {
		links := make([]linkResponse, 0, len(section.Links))
		for _, link := range section.Links {
			links = append(links, linkResponse{ID: link.ID, Title: link.Title, URL: link.URL})
		}
		out = append(out, sectionResponse{
			ID:    section.ID,
			Name:  section.Name,
			Color: section.Color,
			Links: links,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createSection(w http.ResponseWriter, r *http.Request) {
	var req sectionCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	section, err := h.store.CreateSection(r.Context(), req.Name)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.log.WithField("section", section.Name).Info("section created")
	writeJSON(w, http.StatusCreated, sectionResponse{
		ID:    section.ID,
		Name:  section.Name,
		Color: section.Color,
		Links: []linkResponse{},
	})
}

func (h *Handlers) updateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req sectionUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.store.UpdateSection(r.Context(), id, core.SectionUpdate{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w)
}

func (h *Handlers) deleteSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteSection(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	h.log.WithField("section_id", id).Info("section deleted")
	writeOK(w)
}

func (h *Handlers) addLink(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req linkCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	link, err := h.store.AddLink(r.Context(), sectionID, req.Title, req.URL)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, linkResponse{ID: link.ID, Title: link.Title, URL: link.URL})
}

func (h *Handlers) updateLink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req linkUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.store.UpdateLink(r.Context(), id, core.LinkUpdate{
		Title: req.Title,
		URL:   req.URL,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w)
}

func (h *Handlers) deleteLink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteLink(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w)
}

func (h *Handlers) reorderSections(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.store.ReorderSections(r.Context(), req.OrderedIDs); err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w)
}

func (h *Handlers) reorderLinks(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.store.ReorderLinks(r.Context(), sectionID, req.OrderedIDs); err != nil {
		h.fail(w, err)
		return
	}
	writeOK(w)
}

// fail maps domain and store errors onto status codes and a FastAPI-shaped
// {"detail": ...} body.
func (h *Handlers) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrSectionNotFound), errors.Is(err, store.ErrLinkNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrDuplicateSection):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.log.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
