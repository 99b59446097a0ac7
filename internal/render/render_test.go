package render

import (
	"strings"
	"testing"
)

func TestRenderAppendsOneRowPerLink(t *testing.T) {
	tests := []struct {
		name  string
		links []Link
		want  int
	}{
		{name: "empty collection", links: nil, want: 0},
		{name: "single link", links: []Link{{ID: 1, URL: "http://a", Title: "A"}}, want: 1},
		{
			name: "three links",
			links: []Link{
				{ID: 1, URL: "http://a", Title: "A"},
				{ID: 2, URL: "http://b", Title: "B"},
				{ID: 3, URL: "http://c", Title: "C"},
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := NewElement("div")
			Render(tt.links, container, nil)

			if got := len(container.Children); got != tt.want {
				t.Fatalf("rendered %d rows, want %d", got, tt.want)
			}
			for i, row := range container.Children {
				anchor := row.Find("a")
				if anchor == nil {
					t.Fatalf("row %d has no anchor", i)
				}
				if got := anchor.TextContent(); got != tt.links[i].Title {
					t.Errorf("row %d label = %q, want %q", i, got, tt.links[i].Title)
				}
			}
		})
	}
}

func TestRenderEmptyLeavesExistingChildrenUntouched(t *testing.T) {
	container := NewElement("div")
	existing := NewElement("p")
	container.AppendChild(existing)

	Render(nil, container, nil)

	if len(container.Children) != 1 || container.Children[0] != existing {
		t.Fatalf("existing children changed: %d children", len(container.Children))
	}
}

func TestRenderRowAttributes(t *testing.T) {
	tests := []struct {
		name string
		link Link
	}{
		{name: "plain", link: Link{ID: 1, URL: "http://a", Title: "A"}},
		{name: "empty title and url", link: Link{ID: 2}},
		{name: "markup in title", link: Link{ID: 3, URL: "http://x", Title: "<script>alert(1)</script>"}},
		{name: "quote in url", link: Link{ID: 4, URL: `http://x/?q="y"`, Title: "q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := NewElement("div")
			Render([]Link{tt.link}, container, nil)

			anchor := container.Find("a")
			if anchor == nil {
				t.Fatal("no anchor rendered")
			}
			if href, _ := anchor.Attr("href"); href != tt.link.URL {
				t.Errorf("href = %q, want %q", href, tt.link.URL)
			}
			if target, _ := anchor.Attr("target"); target != "_blank" {
				t.Errorf("target = %q, want _blank", target)
			}
			if rel, _ := anchor.Attr("rel"); rel != "noopener" {
				t.Errorf("rel = %q, want noopener", rel)
			}
			if got := anchor.TextContent(); got != tt.link.Title {
				t.Errorf("label = %q, want %q", got, tt.link.Title)
			}
		})
	}
}

func TestRenderEscapesTitleAndURL(t *testing.T) {
	container := NewElement("div")
	Render([]Link{
		{ID: 1, URL: `http://x/?a=1&b="2"`, Title: `<b>bold & "quoted"</b>`},
	}, container, nil)

	markup, err := container.HTML()
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(markup, "<b>") {
		t.Errorf("title markup not escaped: %s", markup)
	}
	if !strings.Contains(markup, "&lt;b&gt;") {
		t.Errorf("escaped title missing: %s", markup)
	}
	if !strings.Contains(markup, "&#34;2&#34;") && !strings.Contains(markup, "&quot;2&quot;") {
		t.Errorf("url quotes not escaped in attribute: %s", markup)
	}
}

func TestDeleteControlInvokesCallbackWithOwnID(t *testing.T) {
	links := []Link{
		{ID: 101, URL: "http://a", Title: "a"},
		{ID: 102, URL: "http://b", Title: "b"},
		{ID: 103, URL: "http://c", Title: "c"},
	}

	container := NewElement("div")
	var deleted []int64
	Render(links, container, func(id int64) {
		deleted = append(deleted, id)
	})

	// Activate out of order to catch a shared or last-written capture.
	for _, i := range []int{2, 0, 1} {
		button := container.Children[i].Find("button")
		if button == nil {
			t.Fatalf("row %d has no delete control", i)
		}
		button.Activate()
	}

	want := []int64{103, 101, 102}
	if len(deleted) != len(want) {
		t.Fatalf("callback invoked %d times, want %d", len(deleted), len(want))
	}
	for i := range want {
		if deleted[i] != want[i] {
			t.Errorf("activation %d invoked with id %d, want %d", i, deleted[i], want[i])
		}
	}
}

func TestDeleteControlInvokesCallbackOncePerActivation(t *testing.T) {
	container := NewElement("div")
	calls := 0
	Render([]Link{{ID: 7, URL: "http://a", Title: "a"}}, container, func(id int64) {
		calls++
	})

	button := container.Find("button")
	button.Activate()
	if calls != 1 {
		t.Fatalf("one activation invoked callback %d times", calls)
	}
	button.Activate()
	if calls != 2 {
		t.Fatalf("two activations invoked callback %d times", calls)
	}
}

func TestRenderAccumulatesAcrossCalls(t *testing.T) {
	container := NewElement("div")
	Render([]Link{{ID: 1, URL: "http://a", Title: "L1"}}, container, nil)
	Render([]Link{{ID: 2, URL: "http://b", Title: "L2"}}, container, nil)

	if got := len(container.Children); got != 2 {
		t.Fatalf("two appending renders produced %d rows, want 2", got)
	}
	if got := container.Children[0].Find("a").TextContent(); got != "L1" {
		t.Errorf("first row label = %q, want L1", got)
	}
	if got := container.Children[1].Find("a").TextContent(); got != "L2" {
		t.Errorf("second row label = %q, want L2", got)
	}
}

func TestRenderWithReplacePolicy(t *testing.T) {
	container := NewElement("div")
	Render([]Link{{ID: 1, URL: "http://a", Title: "L1"}}, container, nil)
	RenderWith([]Link{{ID: 2, URL: "http://b", Title: "L2"}}, container, Options{Policy: PolicyReplace})

	if got := len(container.Children); got != 1 {
		t.Fatalf("replace render produced %d rows, want 1", got)
	}
	if got := container.Find("a").TextContent(); got != "L2" {
		t.Errorf("remaining row label = %q, want L2", got)
	}
}

func TestRenderWithDeleteAction(t *testing.T) {
	container := NewElement("div")
	RenderWith([]Link{{ID: 42, URL: "http://a", Title: "a"}}, container, Options{
		DeleteAction: func(id int64) string { return "/links/42/delete" },
	})

	form := container.Find("form")
	if form == nil {
		t.Fatal("delete action set but no form rendered")
	}
	if action, _ := form.Attr("action"); action != "/links/42/delete" {
		t.Errorf("form action = %q", action)
	}
	if method, _ := form.Attr("method"); method != "post" {
		t.Errorf("form method = %q, want post", method)
	}
	if form.Find("button") == nil {
		t.Error("form has no button")
	}
}

func TestRenderWithOmitDelete(t *testing.T) {
	container := NewElement("div")
	RenderWith([]Link{
		{ID: 1, URL: "http://a", Title: "A"},
		{ID: 2, URL: "http://b", Title: "B"},
	}, container, Options{OmitDelete: true})

	if got := len(container.Children); got != 2 {
		t.Fatalf("rendered %d rows, want 2", got)
	}
	if container.Find("button") != nil {
		t.Error("row contains a delete button despite OmitDelete")
	}
	if container.Find("form") != nil {
		t.Error("row contains a delete form despite OmitDelete")
	}
	if container.Find("a") == nil {
		t.Error("row is missing its anchor")
	}
}

func TestRenderOrderMatchesInput(t *testing.T) {
	links := []Link{
		{ID: 1, URL: "http://a", Title: "A"},
		{ID: 2, URL: "http://b", Title: "B"},
	}
	container := NewElement("div")
	Render(links, container, nil)

	var labels []string
	for _, row := range container.Children {
		labels = append(labels, row.Find("a").TextContent())
	}
	if len(labels) != 2 || labels[0] != "A" || labels[1] != "B" {
		t.Fatalf("row order = %v, want [A B]", labels)
	}
}
