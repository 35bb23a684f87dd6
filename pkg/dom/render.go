package dom

import (
	"io"
	"strings"
)

// Render serializes the node and its subtree to the canonical compact
// markup string. The walk is depth-first, read-only, and repeatable; Render
// never fails.
func (n *Node) Render() string {
	var buf strings.Builder
	// strings.Builder writes cannot fail.
	_ = n.RenderTo(&buf)
	return buf.String()
}

// RenderTo streams the canonical markup for the node and its subtree to w.
// The only possible errors are writer errors.
func (n *Node) RenderTo(w io.Writer) error {
	if _, err := io.WriteString(w, "<"+n.tag); err != nil {
		return err
	}
	for _, attr := range n.attributes {
		if _, err := io.WriteString(w, " "+attr); err != nil {
			return err
		}
	}

	switch n.closing {
	case ClosingSelfClosing:
		_, err := io.WriteString(w, "/>")
		return err
	case ClosingVoid:
		_, err := io.WriteString(w, ">")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range n.children {
		switch child.Kind {
		case ChildText:
			if _, err := io.WriteString(w, child.Text); err != nil {
				return err
			}
		case ChildElement:
			if err := child.Node.RenderTo(w); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "</"+n.tag+">")
	return err
}

// Size returns the number of element nodes in the subtree, including the
// node itself.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.children {
		if child.Kind == ChildElement {
			size += child.Node.Size()
		}
	}
	return size
}
