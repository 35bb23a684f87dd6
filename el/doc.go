// Package el provides the element DSL for aurochs.
//
// It offers one variadic constructor per catalog element, building on the
// checked mutators of pkg/dom:
//
//	import "github.com/aurochs-dev/aurochs/el"
//
//	page := el.Html(el.Lang("en"),
//	    el.Head(el.Title("Aurochs")),
//	    el.Body(
//	        el.P("Hello World!"),
//	    ),
//	)
//
// Constructor arguments may be dom.Attr, []dom.Attr, *dom.Node, []*dom.Node,
// string (appended as text), or nil (ignored). Arguments the element cannot
// accept, such as children on a void element or attributes with invalid
// names, are dropped; use the dom mutators directly when the error matters.
package el
