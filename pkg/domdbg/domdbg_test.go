package domdbg

import (
	"strings"
	"testing"

	"github.com/aurochs-dev/aurochs/el"
)

func TestSprint(t *testing.T) {
	tree := el.Html(el.Lang("en"),
		el.Head(el.Title("Aurochs")),
		el.Body(
			el.P("Hello World!"),
			el.Br(el.Class("breaking")),
		),
	)

	out := Sprint(tree)
	t.Logf("tree =\n%s", out)

	for _, want := range []string{
		`<html lang="en">`,
		"<head>",
		"<title>",
		`"Aurochs"`,
		`"Hello World!"`,
		`<br class="breaking"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("diagram missing %q:\n%s", want, out)
		}
	}

	// Text is quoted, not re-rendered as markup.
	if strings.Contains(out, "</") {
		t.Errorf("diagram should not contain closing tags:\n%s", out)
	}
}

func TestSprintNil(t *testing.T) {
	if out := Sprint(nil); out == "" {
		t.Error("Sprint(nil) should still produce a diagram skeleton")
	}
}

func TestFprint(t *testing.T) {
	var buf strings.Builder
	if err := Fprint(&buf, el.Div(el.Span("x"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != Sprint(el.Div(el.Span("x"))) {
		t.Error("Fprint should write exactly the Sprint output")
	}
}
