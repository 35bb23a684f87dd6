package dom

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderEmptyNodes(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"p", "<p></p>"},
		{"html", "<html></html>"},
		{"br", "<br/>"},
		{"source", "<source/>"},
		{"img", "<img>"},
		{"meta", "<meta>"},
		{"custom-tag", "<custom-tag></custom-tag>"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := CreateElement(tt.tag).Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderAttributes(t *testing.T) {
	html := CreateElement("html")
	if err := html.SetAttribute("lang", "en"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := html.Render(); got != `<html lang="en"></html>` {
		t.Errorf("Render() = %q", got)
	}

	img := CreateElement("img")
	err := img.SetAttributeList([]Attr{
		{Name: "src", Value: "/logo.png"},
		{Name: "alt", Value: "logo"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := img.Render(); got != `<img src="/logo.png" alt="logo">` {
		t.Errorf("Render() = %q", got)
	}
}

func TestRenderInnerText(t *testing.T) {
	p := CreateElement("p")
	if err := p.InnerText("Hello World!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Render(); got != "<p>Hello World!</p>" {
		t.Errorf("Render() = %q", got)
	}
}

func TestRenderChildOrder(t *testing.T) {
	parent := CreateElement("div")
	a := CreateElement("span")
	if err := a.InnerText("A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := CreateElement("span")
	if err := b.InnerText("B"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := parent.AppendChildList([]*Node{a, b}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := parent.Render()
	if got != "<div><span>A</span><span>B</span></div>" {
		t.Errorf("Render() = %q", got)
	}
	if strings.Index(got, ">A<") > strings.Index(got, ">B<") {
		t.Error("children should render in insertion order")
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	node := CreateElement("section")
	if err := node.SetAttribute("id", "main"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := node.InnerText("stable"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := node.Render()
	for i := 0; i < 5; i++ {
		if got := node.Render(); got != first {
			t.Fatalf("Render() changed between calls: %q then %q", first, got)
		}
	}
}

func TestRenderDeepNesting(t *testing.T) {
	const depth = 1000

	root := CreateElement("div")
	current := root
	for i := 1; i < depth; i++ {
		child := CreateElement("div")
		if err := current.AppendChild(child); err != nil {
			t.Fatalf("unexpected error at depth %d: %v", i, err)
		}
		current = child
	}
	if err := current.InnerText("bottom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := root.Render()
	if want := strings.Repeat("<div>", depth) + "bottom" + strings.Repeat("</div>", depth); got != want {
		t.Errorf("deep nesting markup mismatch (len %d, want %d)", len(got), len(want))
	}
}

func TestRenderToMatchesRender(t *testing.T) {
	node := CreateElement("article")
	if err := node.SetAttribute("class", "post"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	title := CreateElement("h1")
	if err := title.InnerText("Title"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := node.AppendChild(title); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf strings.Builder
	if err := node.RenderTo(&buf); err != nil {
		t.Fatalf("RenderTo failed: %v", err)
	}
	if buf.String() != node.Render() {
		t.Errorf("RenderTo = %q, Render = %q", buf.String(), node.Render())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write refused")
}

func TestRenderToPropagatesWriterError(t *testing.T) {
	node := CreateElement("p")
	if err := node.RenderTo(failingWriter{}); err == nil {
		t.Error("RenderTo should surface writer errors")
	}
}

func TestSize(t *testing.T) {
	root := CreateElement("ul")
	for i := 0; i < 3; i++ {
		li := CreateElement("li")
		if err := li.InnerText("item"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := root.AppendChild(li); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := root.Size(); got != 4 {
		t.Errorf("Size() = %d, want 4", got)
	}
	if got := CreateElement("br").Size(); got != 1 {
		t.Errorf("Size() = %d, want 1", got)
	}
}
