// Package gomponents bridges aurochs node trees into
// maragu.dev/gomponents views, so a tree built through the Document API can
// be dropped into an existing gomponents component as a child node.
package gomponents

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/aurochs-dev/aurochs/pkg/dom"
)

// nodeAdapter renders an aurochs node through the gomponents Node contract.
type nodeAdapter struct {
	node *dom.Node
}

// Render implements gomponents.Node.
func (a nodeAdapter) Render(w io.Writer) error {
	if a.node == nil {
		return nil
	}
	return a.node.RenderTo(w)
}

// Node wraps an aurochs node as a gomponents Node. The wrapped node is
// rendered in the canonical compact format whenever the surrounding
// gomponents tree renders; it is not copied, so later mutations through the
// aurochs API show up in subsequent renders.
func Node(node *dom.Node) g.Node {
	return nodeAdapter{node: node}
}

// Group wraps several aurochs nodes as a single gomponents Node, rendered
// in order.
func Group(nodes []*dom.Node) g.Node {
	adapters := make([]g.Node, len(nodes))
	for i, node := range nodes {
		adapters[i] = nodeAdapter{node: node}
	}
	return g.Group(adapters)
}
