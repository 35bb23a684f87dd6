// Package domdbg implements helpers to debug an aurochs node tree.
//
// It prints the tree structure rather than its markup: one line per node
// with its opening tag, text children quoted, nesting drawn as branches.
// Useful when a rendered string is hard to read back into a structure.
package domdbg

import (
	"io"
	"strconv"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/aurochs-dev/aurochs/pkg/dom"
)

// Sprint returns a branch diagram of the node tree.
func Sprint(node *dom.Node) string {
	tree := treeprint.New()
	if node == nil {
		return tree.String()
	}
	tree.SetValue(label(node))
	addChildren(tree, node)
	return tree.String()
}

// Fprint writes the branch diagram of the node tree to w.
func Fprint(w io.Writer, node *dom.Node) error {
	_, err := io.WriteString(w, Sprint(node))
	return err
}

// label formats one node as its opening tag.
func label(node *dom.Node) string {
	var buf strings.Builder
	buf.WriteString("<" + node.Tag())
	for _, attr := range node.Attributes() {
		buf.WriteString(" " + attr)
	}
	if node.Closing() == dom.ClosingSelfClosing {
		buf.WriteString("/")
	}
	buf.WriteString(">")
	return buf.String()
}

func addChildren(branch treeprint.Tree, node *dom.Node) {
	for _, child := range node.Children() {
		if child.Kind == dom.ChildText {
			branch.AddNode(strconv.Quote(child.Text))
			continue
		}
		addChildren(branch.AddBranch(label(child.Node)), child.Node)
	}
}
