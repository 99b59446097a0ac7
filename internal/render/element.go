package render

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Attr is a single HTML attribute.
type Attr struct {
	Key string
	Val string
}

// Element is a mutable display-tree node. An Element with an empty Tag is a
// text node and renders its Text content; all other fields are ignored for
// text nodes. Elements are not safe for concurrent mutation.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element

	onActivate func()
}

// NewElement returns an element node with the given tag and attributes.
func NewElement(tag string, attrs ...Attr) *Element {
	return &Element{Tag: tag, Attrs: attrs}
}

// Text returns a text node. The content is escaped at serialization time, so
// it may safely contain markup metacharacters.
func Text(content string) *Element {
	return &Element{Text: content}
}

// AppendChild adds child as the last child of e.
func (e *Element) AppendChild(child *Element) {
	e.Children = append(e.Children, child)
}

// RemoveChildren detaches all children of e.
func (e *Element) RemoveChildren() {
	e.Children = nil
}

// SetAttr sets an attribute, replacing any existing value for key.
func (e *Element) SetAttr(key, val string) {
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			e.Attrs[i].Val = val
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Val: val})
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// OnActivate registers the callback invoked by Activate.
func (e *Element) OnActivate(fn func()) {
	e.onActivate = fn
}

// Activate simulates a user activation of e (a click on a control). The
// registered callback runs exactly once per call; activating an element
// without a callback is a no-op.
func (e *Element) Activate() {
	if e.onActivate != nil {
		e.onActivate()
	}
}

// TextContent returns the concatenated text of e and its descendants.
func (e *Element) TextContent() string {
	if e.Tag == "" {
		return e.Text
	}
	var b strings.Builder
	for _, child := range e.Children {
		b.WriteString(child.TextContent())
	}
	return b.String()
}

// Find returns the first descendant (depth-first, e included) with the given
// tag, or nil.
func (e *Element) Find(tag string) *Element {
	if e.Tag == tag {
		return e
	}
	for _, child := range e.Children {
		if found := child.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// WriteHTML serializes e to w. Text and attribute values are escaped by the
// html package during rendering, never interpolated as raw markup.
func (e *Element) WriteHTML(w io.Writer) error {
	return html.Render(w, e.toNode())
}

// HTML returns the serialized markup for e.
func (e *Element) HTML() (string, error) {
	var b strings.Builder
	if err := e.WriteHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (e *Element) toNode() *html.Node {
	if e.Tag == "" {
		return &html.Node{Type: html.TextNode, Data: e.Text}
	}

	node := &html.Node{Type: html.ElementNode, Data: e.Tag}
	for _, a := range e.Attrs {
		node.Attr = append(node.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, child := range e.Children {
		node.AppendChild(child.toNode())
	}
	return node
}
