package linkdeck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/3-lines-studio/linkdeck/internal/page"
)

// Export writes a static snapshot of the dashboard to dir: index.html plus
// static/app.css. Delete controls are omitted since there is no server behind
// the exported files.
func (a *App) Export(ctx context.Context, dir string) error {
	sections, err := a.store.Sections(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	html, err := page.RenderDashboard(page.ViewData{
		Title:              a.cfg.Title,
		Sections:           sections,
		WithDeleteControls: false,
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	staticDir := filepath.Join(dir, "static")
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(html), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "app.css"), []byte(page.AppCSS), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	a.log.WithField("dir", dir).Info("static export written")
	return nil
}
