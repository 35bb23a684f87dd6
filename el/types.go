package el

import "github.com/aurochs-dev/aurochs/pkg/dom"

// Type aliases for the dom primitives used by the DSL.
type Node = dom.Node
type Child = dom.Child
type Attr = dom.Attr
type Closing = dom.Closing

// IsVoidElement reports whether the tag renders without a closing tag.
func IsVoidElement(tag string) bool {
	return dom.IsVoidElement(tag)
}
