package el

import "github.com/aurochs-dev/aurochs/pkg/dom"

// newElement creates a node with the given tag and applies the arguments.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string.
func newElement(tag string, args []any) *dom.Node {
	node := dom.CreateElement(tag)

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue

		case dom.Attr:
			_ = node.SetAttribute(v.Name, v.Value)

		case []dom.Attr:
			_ = node.SetAttributeList(v)

		case *dom.Node:
			_ = node.AppendChild(v)

		case []*dom.Node:
			_ = node.AppendChildList(v)

		case string:
			_ = node.InnerText(v)
		}
	}

	return node
}

// Document structure elements

func Html(args ...any) *Node {
	return newElement("html", args)
}
func Head(args ...any) *Node {
	return newElement("head", args)
}
func Body(args ...any) *Node {
	return newElement("body", args)
}
func Title(args ...any) *Node {
	return newElement("title", args)
}
func Meta(args ...any) *Node {
	return newElement("meta", args)
}
func LinkEl(args ...any) *Node {
	return newElement("link", args)
}
func Base(args ...any) *Node {
	return newElement("base", args)
}
func Style(args ...any) *Node {
	return newElement("style", args)
}

// Content sectioning elements

func Header(args ...any) *Node {
	return newElement("header", args)
}
func Footer(args ...any) *Node {
	return newElement("footer", args)
}
func Main(args ...any) *Node {
	return newElement("main", args)
}
func Nav(args ...any) *Node {
	return newElement("nav", args)
}
func Section(args ...any) *Node {
	return newElement("section", args)
}
func Article(args ...any) *Node {
	return newElement("article", args)
}
func Aside(args ...any) *Node {
	return newElement("aside", args)
}
func H1(args ...any) *Node {
	return newElement("h1", args)
}
func H2(args ...any) *Node {
	return newElement("h2", args)
}
func H3(args ...any) *Node {
	return newElement("h3", args)
}
func H4(args ...any) *Node {
	return newElement("h4", args)
}
func H5(args ...any) *Node {
	return newElement("h5", args)
}
func H6(args ...any) *Node {
	return newElement("h6", args)
}

// Text content elements

func Div(args ...any) *Node {
	return newElement("div", args)
}
func P(args ...any) *Node {
	return newElement("p", args)
}
func Span(args ...any) *Node {
	return newElement("span", args)
}
func Ul(args ...any) *Node {
	return newElement("ul", args)
}
func Ol(args ...any) *Node {
	return newElement("ol", args)
}
func Li(args ...any) *Node {
	return newElement("li", args)
}
func Hr(args ...any) *Node {
	return newElement("hr", args)
}
func A(args ...any) *Node {
	return newElement("a", args)
}
func Br(args ...any) *Node {
	return newElement("br", args)
}
func Wbr(args ...any) *Node {
	return newElement("wbr", args)
}

// Form elements

func Form(args ...any) *Node {
	return newElement("form", args)
}
func Input(args ...any) *Node {
	return newElement("input", args)
}
func Textarea(args ...any) *Node {
	return newElement("textarea", args)
}
func Select(args ...any) *Node {
	return newElement("select", args)
}
func Option(args ...any) *Node {
	return newElement("option", args)
}
func Button(args ...any) *Node {
	return newElement("button", args)
}
func Label(args ...any) *Node {
	return newElement("label", args)
}
func Datalist(args ...any) *Node {
	return newElement("datalist", args)
}

// Media elements

func Img(args ...any) *Node {
	return newElement("img", args)
}
func Picture(args ...any) *Node {
	return newElement("picture", args)
}
func Source(args ...any) *Node {
	return newElement("source", args)
}
func Video(args ...any) *Node {
	return newElement("video", args)
}
func Audio(args ...any) *Node {
	return newElement("audio", args)
}
func Track(args ...any) *Node {
	return newElement("track", args)
}
func Embed(args ...any) *Node {
	return newElement("embed", args)
}
func Param(args ...any) *Node {
	return newElement("param", args)
}
func Canvas(args ...any) *Node {
	return newElement("canvas", args)
}
func Svg(args ...any) *Node {
	return newElement("svg", args)
}
func Area(args ...any) *Node {
	return newElement("area", args)
}
func Col(args ...any) *Node {
	return newElement("col", args)
}

// Interactive elements

func Details(args ...any) *Node {
	return newElement("details", args)
}
func Summary(args ...any) *Node {
	return newElement("summary", args)
}
func Dialog(args ...any) *Node {
	return newElement("dialog", args)
}

// Scripting elements

func Script(args ...any) *Node {
	return newElement("script", args)
}
func Template(args ...any) *Node {
	return newElement("template", args)
}

// El creates an element with a custom tag name. Unknown tags resolve to the
// paired closing policy.
func El(tag string, args ...any) *Node {
	return newElement(tag, args)
}
