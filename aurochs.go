// Package aurochs provides the public API for the aurochs HTML builder.
//
// This is the recommended import for most applications:
//
//	import "github.com/aurochs-dev/aurochs"
//
// Usage:
//
//	html := aurochs.CreateElement("html")
//	_ = html.SetAttribute("lang", "en")
//
//	p := aurochs.CreateElement("p")
//	_ = p.InnerText("Hello World!")
//	_ = html.AppendChild(p)
//
//	fmt.Println(html.Render())
//
// The element DSL lives in the el package, the configurable renderer in
// pkg/render, and the tree model in pkg/dom.
package aurochs

import "github.com/aurochs-dev/aurochs/pkg/dom"

// =============================================================================
// Tree model (pkg/dom exposed at the root)
// =============================================================================

// Document is the node factory.
type Document = dom.Document

// Node is one element instance in the tree.
type Node = dom.Node

// Child is one entry in a node's child list: literal text or a nested node.
type Child = dom.Child

// Attr is a name/value attribute pair.
type Attr = dom.Attr

// Closing is how an element's start/end markup is emitted.
type Closing = dom.Closing

// Closing policies.
const (
	ClosingPaired      = dom.ClosingPaired
	ClosingSelfClosing = dom.ClosingSelfClosing
	ClosingVoid        = dom.ClosingVoid
)

// Mutation errors.
var (
	ErrChildNotAllowed  = dom.ErrChildNotAllowed
	ErrInvalidAttribute = dom.ErrInvalidAttribute
)

// CreateElement returns a new, empty node for the given tag with its
// closing policy resolved from the element catalog.
func CreateElement(tag string) *Node {
	return dom.CreateElement(tag)
}

// ClosingFor resolves the closing policy for a tag name.
func ClosingFor(tag string) Closing {
	return dom.ClosingFor(tag)
}

// KnownElements returns the element catalog in sorted order.
func KnownElements() []string {
	return dom.KnownElements()
}
