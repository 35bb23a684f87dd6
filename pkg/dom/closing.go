package dom

import "sort"

// Closing is how an element's start/end markup is emitted.
type Closing uint8

const (
	ClosingPaired      Closing = iota // <tag>children</tag>
	ClosingSelfClosing                // <tag/>
	ClosingVoid                       // <tag>, no closing counterpart
)

// String returns the string representation of the Closing policy.
func (c Closing) String() string {
	switch c {
	case ClosingPaired:
		return "paired"
	case ClosingSelfClosing:
		return "self-closing"
	case ClosingVoid:
		return "void"
	default:
		return "unknown"
	}
}

// selfClosingElements are rendered as <tag/> and cannot have children.
var selfClosingElements = map[string]bool{
	"br":     true,
	"source": true,
	"track":  true,
}

// voidElements are rendered as <tag> with no closing tag and cannot have
// children.
var voidElements = map[string]bool{
	"area":  true,
	"base":  true,
	"col":   true,
	"embed": true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
	"param": true,
	"wbr":   true,
}

// ClosingFor resolves the closing policy for a tag name. The mapping is
// total: tags are matched case-sensitively against the catalog and anything
// not listed is paired. It is called once per node, at creation, and the
// result is cached on the node.
func ClosingFor(tag string) Closing {
	switch {
	case selfClosingElements[tag]:
		return ClosingSelfClosing
	case voidElements[tag]:
		return ClosingVoid
	default:
		return ClosingPaired
	}
}

// IsVoidElement returns true if the tag renders without a closing tag,
// covering both the void and self-closing policies.
func IsVoidElement(tag string) bool {
	return voidElements[tag] || selfClosingElements[tag]
}

// knownElements is the catalog of element names with dedicated constructors
// in the el package. Tags outside this list still work everywhere; they
// simply resolve to the paired default.
var knownElements = []string{
	"a", "area", "article", "aside", "audio",
	"base", "body", "br", "button",
	"canvas", "col",
	"datalist", "details", "dialog", "div",
	"embed",
	"footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"head", "header", "hr", "html",
	"img", "input",
	"label", "li", "link",
	"main", "meta",
	"nav",
	"ol", "option",
	"p", "param",
	"script", "section", "select", "source", "span", "style", "summary", "svg",
	"template", "textarea", "title", "track",
	"ul",
	"video",
	"wbr",
}

// KnownElements returns the element catalog in sorted order.
func KnownElements() []string {
	out := make([]string, len(knownElements))
	copy(out, knownElements)
	sort.Strings(out)
	return out
}
