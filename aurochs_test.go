package aurochs

import (
	"errors"
	"testing"
)

// TestSampleDocument mirrors the canonical usage example: a full document
// assembled through the factory and mutators only.
func TestSampleDocument(t *testing.T) {
	html := CreateElement("html")
	if err := html.SetAttribute("lang", "en"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	title := CreateElement("title")
	if err := title.InnerText("Aurochs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	head := CreateElement("head")
	if err := head.AppendChild(title); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paragraph := CreateElement("p")
	if err := paragraph.InnerText("Hello World!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lineBreak := CreateElement("br")
	if err := lineBreak.SetAttribute("class", "breaking"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lineBreak2 := lineBreak.CloneNode()
	if err := lineBreak2.SetAttribute("id", "still_breaking"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := CreateElement("body")
	if err := body.AppendChildList([]*Node{paragraph, lineBreak, lineBreak2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := html.AppendChildList([]*Node{head, body}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<html lang="en">` +
		`<head><title>Aurochs</title></head>` +
		`<body><p>Hello World!</p>` +
		`<br class="breaking"/>` +
		`<br class="breaking" id="still_breaking"/>` +
		`</body></html>`
	if got := html.Render(); got != want {
		t.Errorf("Render() = %q\nwant %q", got, want)
	}
}

func TestRootReExports(t *testing.T) {
	if ClosingFor("br") != ClosingSelfClosing {
		t.Error(`ClosingFor("br") should be self-closing`)
	}
	if ClosingFor("img") != ClosingVoid {
		t.Error(`ClosingFor("img") should be void`)
	}
	if ClosingFor("div") != ClosingPaired {
		t.Error(`ClosingFor("div") should be paired`)
	}
	if len(KnownElements()) == 0 {
		t.Error("KnownElements() should not be empty")
	}

	var doc Document
	node := doc.CreateElement("br")
	err := node.AppendChild(CreateElement("span"))
	if !errors.Is(err, ErrChildNotAllowed) {
		t.Errorf("want ErrChildNotAllowed, got %v", err)
	}
	err = CreateElement("div").SetAttribute("", "x")
	if !errors.Is(err, ErrInvalidAttribute) {
		t.Errorf("want ErrInvalidAttribute, got %v", err)
	}
}
