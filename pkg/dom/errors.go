package dom

import "errors"

// ErrChildNotAllowed is returned when a child (text or element) is appended
// to a void or self-closing node. Those elements have no content span, so
// accepting the child would silently drop it at render time.
//
// Errors returned by AppendChild, AppendChildList, and InnerText wrap this
// sentinel; match it with errors.Is.
var ErrChildNotAllowed = errors.New("dom: element cannot have children")

// ErrInvalidAttribute is returned when an attribute name or value cannot be
// emitted as well-formed markup: empty or malformed names, or control
// characters that have no attribute-value encoding.
//
// Errors returned by SetAttribute and SetAttributeList wrap this sentinel;
// match it with errors.Is.
var ErrInvalidAttribute = errors.New("dom: invalid attribute")
