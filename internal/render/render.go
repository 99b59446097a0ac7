// Package render builds the link-list portion of the dashboard as a tree of
// structured elements. Titles and urls are set as node text and attribute
// values, never spliced into markup strings, and each delete control captures
// its own link id in a closure.
package render

import "fmt"

// Link is the view record for one rendered row.
type Link struct {
	ID    int64
	URL   string
	Title string
}

// Policy controls what happens to the container's existing children.
type Policy int

const (
	// PolicyAppend keeps existing children; repeated renders accumulate rows.
	PolicyAppend Policy = iota
	// PolicyReplace clears the container before appending.
	PolicyReplace
)

// Options configures RenderWith.
type Options struct {
	// OnDelete is invoked with the row's link id when its delete control is
	// activated. May be nil.
	OnDelete func(id int64)
	// DeleteAction, when set, wraps each delete control in a form posting to
	// the returned action URL, so serialized output stays functional without
	// scripting. When nil the control is a bare button.
	DeleteAction func(id int64) string
	// OmitDelete drops the delete control from each row. Used for static
	// export, where no server is behind the output.
	OmitDelete bool
	// Policy defaults to PolicyAppend.
	Policy Policy
}

// Render appends one row per link to container, in input order. Each row
// holds an anchor labeled with the link's title, pointing at its url and
// opening in a new browsing context, and a delete control whose activation
// invokes onDelete with that row's id. An empty slice appends nothing and
// leaves existing children untouched.
func Render(links []Link, container *Element, onDelete func(id int64)) {
	RenderWith(links, container, Options{OnDelete: onDelete})
}

// RenderWith is Render with an explicit policy and serialization options.
func RenderWith(links []Link, container *Element, opts Options) {
	if opts.Policy == PolicyReplace {
		container.RemoveChildren()
	}
	for _, link := range links {
		container.AppendChild(Row(link, opts))
	}
}

// Row builds the element subtree for a single link.
func Row(link Link, opts Options) *Element {
	row := NewElement("div", Attr{"class", "link-row"})

	anchor := NewElement("a",
		Attr{"class", "link-ref"},
		Attr{"href", link.URL},
		Attr{"target", "_blank"},
		Attr{"rel", "noopener"},
	)
	anchor.AppendChild(Text(link.Title))
	row.AppendChild(anchor)

	if opts.OmitDelete {
		return row
	}

	button := NewElement("button",
		Attr{"class", "link-delete"},
		Attr{"type", "submit"},
		Attr{"aria-label", fmt.Sprintf("Delete %s", link.Title)},
	)
	button.AppendChild(Text("✕"))

	id := link.ID
	if opts.OnDelete != nil {
		onDelete := opts.OnDelete
		button.OnActivate(func() { onDelete(id) })
	}

	if opts.DeleteAction != nil {
		form := NewElement("form",
			Attr{"class", "link-delete-form"},
			Attr{"method", "post"},
			Attr{"action", opts.DeleteAction(id)},
		)
		form.AppendChild(button)
		row.AppendChild(form)
	} else {
		row.AppendChild(button)
	}

	return row
}
