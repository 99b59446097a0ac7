package linkdeck

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/3-lines-studio/linkdeck/internal/config"
)

type mockRouter struct {
	http.Handler
	patterns []string
}

func newMockRouter() *mockRouter {
	return &mockRouter{Handler: http.NewServeMux()}
}

func (m *mockRouter) Handle(pattern string, handler http.Handler) {
	m.patterns = append(m.patterns, pattern)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "links.db")
	app, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestWrapRegistersRoutes(t *testing.T) {
	app := newTestApp(t)
	router := newMockRouter()
	app.Wrap(router)

	want := []string{
		"GET /{$}",
		"GET /static/app.css",
		"POST /links/{id}/delete",
		"GET /sections",
		"POST /sections",
		"PUT /sections/{id}",
		"DELETE /sections/{id}",
		"POST /sections/{id}/links",
		"PUT /links/{id}",
		"DELETE /links/{id}",
		"PUT /sections-reorder",
		"PUT /sections/{id}/links-reorder",
	}

	registered := make(map[string]bool, len(router.patterns))
	for _, p := range router.patterns {
		registered[p] = true
	}
	for _, pattern := range want {
		if !registered[pattern] {
			t.Errorf("pattern %q not registered", pattern)
		}
	}
	if len(router.patterns) != len(want) {
		t.Errorf("registered %d patterns, want %d", len(router.patterns), len(want))
	}
}

func TestWrapNilRouterPanics(t *testing.T) {
	app := newTestApp(t)
	defer func() {
		if recover() == nil {
			t.Fatal("Wrap(nil) did not panic")
		}
	}()
	app.Wrap(nil)
}

func TestEndToEndCreateRenderDelete(t *testing.T) {
	app := newTestApp(t)
	handler := app.Handler()

	do := func(method, path, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	if rr := do(http.MethodPost, "/sections", `{"name":"Reading"}`); rr.Code != http.StatusCreated {
		t.Fatalf("create section: status %d: %s", rr.Code, rr.Body.String())
	}
	if rr := do(http.MethodPost, "/sections/1/links", `{"title":"Go Blog","url":"https://go.dev/blog"}`); rr.Code != http.StatusCreated {
		t.Fatalf("add link: status %d: %s", rr.Code, rr.Body.String())
	}

	rr := do(http.MethodGet, "/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("dashboard: status %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Go Blog") || !strings.Contains(body, `href="https://go.dev/blog"`) {
		t.Fatalf("dashboard missing rendered link:\n%s", body)
	}
	if !strings.Contains(body, `action="/links/1/delete"`) {
		t.Fatalf("dashboard missing delete form:\n%s", body)
	}

	if rr := do(http.MethodPost, "/links/1/delete", ""); rr.Code != http.StatusSeeOther {
		t.Fatalf("form delete: status %d", rr.Code)
	}

	rr = do(http.MethodGet, "/", "")
	if strings.Contains(rr.Body.String(), "Go Blog") {
		t.Fatal("deleted link still rendered")
	}
	if !strings.Contains(rr.Body.String(), "No links yet.") {
		t.Fatal("empty section placeholder missing after delete")
	}
}

func TestHandlerAppliesMiddleware(t *testing.T) {
	app := newTestApp(t)
	handler := app.Handler()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sections", nil))

	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS header missing")
	}
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing")
	}
}
