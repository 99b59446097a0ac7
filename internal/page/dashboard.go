// Package page renders and serves the no-JS HTML dashboard.
package page

import (
	"fmt"
	"strconv"

	"github.com/3-lines-studio/linkdeck/internal/core"
	"github.com/3-lines-studio/linkdeck/internal/render"
)

// ViewData is everything needed to render one dashboard page.
type ViewData struct {
	Title    string
	Sections []core.Section
	// WithDeleteControls adds a delete form to every link row. Static export
	// turns this off since there is no server to post to.
	WithDeleteControls bool
}

// DeleteActionPath is the form action for a link's delete control.
func DeleteActionPath(id int64) string {
	return "/links/" + strconv.FormatInt(id, 10) + "/delete"
}

// RenderDashboard builds the full dashboard HTML document.
func RenderDashboard(data ViewData) (string, error) {
	body := render.NewElement("main", render.Attr{Key: "class", Val: "container"})

	header := render.NewElement("header", render.Attr{Key: "class", Val: "header"})
	title := render.NewElement("h1", render.Attr{Key: "class", Val: "title"})
	title.AppendChild(render.Text(data.Title))
	header.AppendChild(title)
	body.AppendChild(header)

	if len(data.Sections) == 0 {
		empty := render.NewElement("div", render.Attr{Key: "class", Val: "empty"})
		empty.AppendChild(render.Text("No sections yet."))
		body.AppendChild(empty)
	}

	for _, section := range data.Sections {
		body.AppendChild(sectionPanel(section, data.WithDeleteControls))
	}

	bodyHTML, err := body.HTML()
	if err != nil {
		return "", fmt.Errorf("render dashboard body: %w", err)
	}
	return renderShell(data.Title, bodyHTML)
}

func sectionPanel(section core.Section, withDelete bool) *render.Element {
	panel := render.NewElement("section", render.Attr{Key: "class", Val: "panel color-" + section.Color})

	heading := render.NewElement("h2", render.Attr{Key: "class", Val: "panelTitle"})
	heading.AppendChild(render.Text(section.Name))
	panel.AppendChild(heading)

	if len(section.Links) == 0 {
		empty := render.NewElement("div", render.Attr{Key: "class", Val: "empty"})
		empty.AppendChild(render.Text("No links yet."))
		panel.AppendChild(empty)
		return panel
	}

	list := render.NewElement("div", render.Attr{Key: "class", Val: "links"})
	opts := render.Options{}
	if withDelete {
		opts.DeleteAction = DeleteActionPath
	} else {
		opts.OmitDelete = true
	}
	render.RenderWith(viewLinks(section.Links), list, opts)
	panel.AppendChild(list)
	return panel
}

func viewLinks(links []core.Link) []render.Link {
	view := make([]render.Link, len(links))
	for i, link := range links {
		view[i] = render.Link{ID: link.ID, URL: link.URL, Title: link.Title}
	}
	return view
}
