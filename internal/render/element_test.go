package render

import (
	"strings"
	"testing"
)

func TestElementSetAttrReplaces(t *testing.T) {
	e := NewElement("div", Attr{"class", "one"})
	e.SetAttr("class", "two")
	e.SetAttr("id", "x")

	if got, _ := e.Attr("class"); got != "two" {
		t.Errorf("class = %q, want two", got)
	}
	if got, _ := e.Attr("id"); got != "x" {
		t.Errorf("id = %q, want x", got)
	}
	if len(e.Attrs) != 2 {
		t.Errorf("attr count = %d, want 2", len(e.Attrs))
	}
}

func TestElementAttrMissing(t *testing.T) {
	e := NewElement("div")
	if _, ok := e.Attr("href"); ok {
		t.Error("missing attribute reported as present")
	}
}

func TestActivateWithoutCallbackIsNoop(t *testing.T) {
	e := NewElement("button")
	e.Activate() // must not panic
}

func TestTextContentConcatenatesDescendants(t *testing.T) {
	root := NewElement("div")
	child := NewElement("span")
	child.AppendChild(Text("hello "))
	root.AppendChild(child)
	root.AppendChild(Text("world"))

	if got := root.TextContent(); got != "hello world" {
		t.Errorf("TextContent = %q", got)
	}
}

func TestFindDepthFirst(t *testing.T) {
	root := NewElement("div")
	inner := NewElement("div")
	target := NewElement("a", Attr{"href", "first"})
	inner.AppendChild(target)
	root.AppendChild(inner)
	root.AppendChild(NewElement("a", Attr{"href", "second"}))

	found := root.Find("a")
	if found == nil {
		t.Fatal("Find returned nil")
	}
	if href, _ := found.Attr("href"); href != "first" {
		t.Errorf("Find returned href %q, want first", href)
	}
	if root.Find("table") != nil {
		t.Error("Find returned a node for an absent tag")
	}
}

func TestWriteHTMLEscapes(t *testing.T) {
	e := NewElement("p", Attr{"title", `a"b`})
	e.AppendChild(Text("<x> & y"))

	markup, err := e.HTML()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(markup, "<x>") {
		t.Errorf("text not escaped: %s", markup)
	}
	if !strings.Contains(markup, "&lt;x&gt;") || !strings.Contains(markup, "&amp; y") {
		t.Errorf("escaped entities missing: %s", markup)
	}
}

func TestRemoveChildren(t *testing.T) {
	e := NewElement("div")
	e.AppendChild(NewElement("p"))
	e.AppendChild(NewElement("p"))
	e.RemoveChildren()
	if len(e.Children) != 0 {
		t.Fatalf("children remain after RemoveChildren: %d", len(e.Children))
	}
}
