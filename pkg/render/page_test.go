package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aurochs-dev/aurochs/el"
	"github.com/aurochs-dev/aurochs/pkg/dom"
)

func TestRenderPage(t *testing.T) {
	renderer := New(Config{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title: "Aurochs",
		Meta: []MetaTag{
			{Charset: "utf-8"},
			{Name: "viewport", Content: "width=device-width"},
		},
		Links: []LinkTag{
			{Rel: "stylesheet", Href: "/main.css"},
		},
		Styles: []string{"body{margin:0}"},
		Body:   el.P("Hello World!"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "<!DOCTYPE html>\n") {
		t.Errorf("page should start with DOCTYPE, got %q", got)
	}
	for _, want := range []string{
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		`<meta name="viewport" content="width=device-width">`,
		`<title>Aurochs</title>`,
		`<link rel="stylesheet" href="/main.css">`,
		`<style>body{margin:0}</style>`,
		`<body><p>Hello World!</p></body>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q in %q", want, got)
		}
	}
}

func TestRenderPageCustomLang(t *testing.T) {
	renderer := New(Config{})

	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, PageData{Lang: "de"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `<html lang="de">`) {
		t.Errorf("expected lang attribute, got %q", buf.String())
	}
}

func TestRenderPageExistingBody(t *testing.T) {
	renderer := New(Config{})

	body := el.Body(el.ID("app"), el.Div("content"))
	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, PageData{Body: body}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, `<body id="app"><div>content</div></body>`) {
		t.Errorf("existing body element should be used as-is, got %q", got)
	}
	if strings.Count(got, "<body") != 1 {
		t.Errorf("body should not be double-wrapped: %q", got)
	}
}

func TestRenderPageEmpty(t *testing.T) {
	renderer := New(Config{})

	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, PageData{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "<!DOCTYPE html>\n<html lang=\"en\"><head></head><body></body></html>" {
		t.Errorf("empty page = %q", got)
	}
}

func TestRenderPageInvalidLang(t *testing.T) {
	renderer := New(Config{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{Lang: "en\x00"})
	if !errors.Is(err, dom.ErrInvalidAttribute) {
		t.Fatalf("want ErrInvalidAttribute, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written when page data is invalid, got %q", buf.String())
	}
}
