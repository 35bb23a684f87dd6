// Package dom implements the element tree at the heart of aurochs.
//
// A Node holds a tag name, an ordered list of pre-formatted attribute
// tokens, and an ordered list of children (text or nested nodes). Its
// closing policy is resolved once from the element catalog when the node is
// created and never changes afterwards.
//
// # Building a tree
//
// Nodes are created through the Document factory and mutated through
// methods:
//
//	html := dom.CreateElement("html")
//	if err := html.SetAttribute("lang", "en"); err != nil { ... }
//
//	p := dom.CreateElement("p")
//	_ = p.InnerText("Hello World!")
//	if err := html.AppendChild(p); err != nil { ... }
//
// # Rendering
//
// Render walks the tree depth-first and produces the canonical compact
// markup: a single space before each attribute token, no whitespace when
// the attribute list is empty, and no inserted indentation or line breaks.
// Render has no side effects and can be called repeatedly.
//
//	html.Render() // <html lang="en"><p>Hello World!</p></html>
//
// # Error contract
//
// Mutations that cannot produce well-formed markup report errors:
// appending any child to a void or self-closing element fails with
// ErrChildNotAllowed, and attribute names or values that cannot be emitted
// safely fail with ErrInvalidAttribute. Render itself never fails.
package dom
