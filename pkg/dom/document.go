package dom

// Document is the node factory. It carries no state; it exists so that
// every node is created with its closing policy resolved from the element
// catalog.
type Document struct{}

// CreateElement returns a new, empty node for the given tag with its
// closing policy resolved. This is the sole way to obtain a node.
func (Document) CreateElement(tag string) *Node {
	return &Node{
		tag:     tag,
		closing: ClosingFor(tag),
	}
}

// CreateElement creates a node using the zero Document.
func CreateElement(tag string) *Node {
	return Document{}.CreateElement(tag)
}
