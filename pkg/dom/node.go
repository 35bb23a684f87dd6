package dom

import "fmt"

// ChildKind is the child type discriminator.
type ChildKind uint8

const (
	ChildText    ChildKind = iota // Literal text
	ChildElement                  // Nested node
)

// String returns the string representation of the ChildKind.
func (k ChildKind) String() string {
	switch k {
	case ChildText:
		return "Text"
	case ChildElement:
		return "Element"
	default:
		return "Unknown"
	}
}

// Child is one entry in a node's ordered child list: either literal text or
// a nested node, depending on Kind.
type Child struct {
	Kind ChildKind
	Text string // For ChildText
	Node *Node  // For ChildElement
}

// Attr is a name/value attribute pair, used with SetAttributeList and the
// el constructors.
type Attr struct {
	Name  string
	Value string
}

// Node is one element instance in the tree. It holds a tag name, an ordered
// list of pre-formatted attribute tokens, an ordered list of children, and
// the closing policy resolved at creation time.
//
// Nodes are created through Document.CreateElement and mutated only through
// methods, which keeps the tag/policy pairing consistent for the node's
// lifetime.
type Node struct {
	tag        string
	closing    Closing
	attributes []string
	children   []Child
}

// Tag returns the node's tag name.
func (n *Node) Tag() string {
	return n.tag
}

// Closing returns the node's closing policy.
func (n *Node) Closing() Closing {
	return n.closing
}

// Attributes returns a copy of the node's formatted attribute tokens in
// insertion order.
func (n *Node) Attributes() []string {
	out := make([]string, len(n.attributes))
	copy(out, n.attributes)
	return out
}

// Children returns a copy of the node's child list in insertion order.
func (n *Node) Children() []Child {
	out := make([]Child, len(n.children))
	copy(out, n.children)
	return out
}

// SetAttribute appends a name="value" token to the node's attribute list.
// The value is entity-escaped; names and values that cannot be emitted as
// well-formed markup fail with ErrInvalidAttribute.
//
// Tokens are appended, never merged: setting the same name twice yields two
// tokens in the output, in call order.
func (n *Node) SetAttribute(name, value string) error {
	if err := validateAttribute(name, value); err != nil {
		return err
	}
	n.attributes = append(n.attributes, name+`="`+escapeAttributeValue(value)+`"`)
	return nil
}

// SetAttributeList applies SetAttribute for each pair in order. It stops at
// the first invalid pair; pairs before it remain applied.
func (n *Node) SetAttributeList(attrs []Attr) error {
	for _, attr := range attrs {
		if err := n.SetAttribute(attr.Name, attr.Value); err != nil {
			return err
		}
	}
	return nil
}

// InnerText appends a text child holding text verbatim. No HTML escaping is
// performed; callers emitting untrusted input should escape it first.
//
// Each call appends another text child rather than replacing prior content,
// so text and element children interleave in append order.
func (n *Node) InnerText(text string) error {
	if err := n.childAllowed(); err != nil {
		return err
	}
	n.children = append(n.children, Child{Kind: ChildText, Text: text})
	return nil
}

// AppendChild appends node to the end of the child list. A nil node is
// ignored. Appending to a void or self-closing element fails with
// ErrChildNotAllowed.
func (n *Node) AppendChild(node *Node) error {
	if node == nil {
		return nil
	}
	if err := n.childAllowed(); err != nil {
		return err
	}
	n.children = append(n.children, Child{Kind: ChildElement, Node: node})
	return nil
}

// AppendChildList appends each node in order via AppendChild. It stops at
// the first error; nodes before it remain appended.
func (n *Node) AppendChildList(nodes []*Node) error {
	for _, node := range nodes {
		if err := n.AppendChild(node); err != nil {
			return err
		}
	}
	return nil
}

// CloneNode returns a deep, independent copy of the node: attribute tokens
// are copied element-wise, text children by value, and element children
// recursively. The clone shares no mutable state with the original, so
// mutating either afterwards leaves the other untouched.
func (n *Node) CloneNode() *Node {
	clone := &Node{
		tag:     n.tag,
		closing: n.closing,
	}
	if n.attributes != nil {
		clone.attributes = make([]string, len(n.attributes))
		copy(clone.attributes, n.attributes)
	}
	if n.children != nil {
		clone.children = make([]Child, len(n.children))
		for i, child := range n.children {
			if child.Kind == ChildElement {
				child.Node = child.Node.CloneNode()
			}
			clone.children[i] = child
		}
	}
	return clone
}

// childAllowed reports whether the node's content span can hold children.
func (n *Node) childAllowed() error {
	if n.closing != ClosingPaired {
		return fmt.Errorf("<%s> is a %s element: %w", n.tag, n.closing, ErrChildNotAllowed)
	}
	return nil
}
