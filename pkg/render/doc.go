// Package render provides the configurable renderer for aurochs node trees.
//
// The canonical compact serialization lives on dom.Node itself; this
// package adds the output concerns around it:
//
//   - Pretty-printed output with indentation for development
//   - Inline-element handling in pretty mode
//   - Full page rendering with DOCTYPE, head, and body scaffolding
//   - Optional Prometheus render metrics
//
// # Basic Usage
//
// To render a node tree to a string:
//
//	renderer := render.New(render.Config{})
//	html, err := renderer.RenderToString(node)
//
// To stream markup to a writer:
//
//	renderer := render.New(render.Config{Pretty: true})
//	err := renderer.RenderToWriter(w, node)
//
// # Full Page Rendering
//
// To render a complete HTML document:
//
//	page := render.PageData{
//	    Title: "My Page",
//	    Body:  bodyNode,
//	}
//	err := renderer.RenderPage(w, page)
//
// # Metrics
//
// Pass a Metrics value in the Config to count renders and nodes and to
// observe render durations:
//
//	m := render.NewMetrics(render.WithNamespace("mysite"))
//	renderer := render.New(render.Config{Metrics: m})
package render
