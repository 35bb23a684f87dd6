package render

import (
	"fmt"
	"io"

	"github.com/aurochs-dev/aurochs/pkg/dom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Title is the page title.
	Title string

	// Meta contains meta tags for the document head.
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.).
	Links []LinkTag

	// Styles contains inline CSS blocks, one style element each.
	Styles []string

	// Body is the page content. A node that is already a body element is
	// used as-is; anything else is wrapped in one.
	Body *dom.Node
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Charset string // charset attribute
	Name    string // name attribute
	Content string // content attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel  string // rel attribute
	Href string // href attribute
	Type string // type attribute
}

// RenderPage renders a complete HTML document to the given writer: the
// DOCTYPE preamble followed by an html element with head and body built
// from the page data.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	root, err := buildPage(page)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return r.RenderToWriter(w, root)
}

// buildPage assembles the html/head/body scaffold through the node API.
func buildPage(page PageData) (*dom.Node, error) {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	root := dom.CreateElement("html")
	if err := root.SetAttribute("lang", lang); err != nil {
		return nil, fmt.Errorf("render: page lang: %w", err)
	}

	head := dom.CreateElement("head")
	for _, meta := range page.Meta {
		node := dom.CreateElement("meta")
		var attrs []dom.Attr
		if meta.Charset != "" {
			attrs = append(attrs, dom.Attr{Name: "charset", Value: meta.Charset})
		}
		if meta.Name != "" {
			attrs = append(attrs, dom.Attr{Name: "name", Value: meta.Name})
		}
		if meta.Content != "" {
			attrs = append(attrs, dom.Attr{Name: "content", Value: meta.Content})
		}
		if err := node.SetAttributeList(attrs); err != nil {
			return nil, fmt.Errorf("render: page meta: %w", err)
		}
		if err := head.AppendChild(node); err != nil {
			return nil, err
		}
	}
	if page.Title != "" {
		title := dom.CreateElement("title")
		if err := title.InnerText(page.Title); err != nil {
			return nil, err
		}
		if err := head.AppendChild(title); err != nil {
			return nil, err
		}
	}
	for _, link := range page.Links {
		node := dom.CreateElement("link")
		var attrs []dom.Attr
		if link.Rel != "" {
			attrs = append(attrs, dom.Attr{Name: "rel", Value: link.Rel})
		}
		if link.Href != "" {
			attrs = append(attrs, dom.Attr{Name: "href", Value: link.Href})
		}
		if link.Type != "" {
			attrs = append(attrs, dom.Attr{Name: "type", Value: link.Type})
		}
		if err := node.SetAttributeList(attrs); err != nil {
			return nil, fmt.Errorf("render: page link: %w", err)
		}
		if err := head.AppendChild(node); err != nil {
			return nil, err
		}
	}
	for _, css := range page.Styles {
		style := dom.CreateElement("style")
		if err := style.InnerText(css); err != nil {
			return nil, err
		}
		if err := head.AppendChild(style); err != nil {
			return nil, err
		}
	}
	if err := root.AppendChild(head); err != nil {
		return nil, err
	}

	body := page.Body
	if body == nil || body.Tag() != "body" {
		wrapper := dom.CreateElement("body")
		if err := wrapper.AppendChild(body); err != nil {
			return nil, err
		}
		body = wrapper
	}
	if err := root.AppendChild(body); err != nil {
		return nil, err
	}

	return root, nil
}
