package render

import (
	"bytes"
	"io"
	"time"

	"github.com/aurochs-dev/aurochs/pkg/dom"
)

// Config configures the renderer.
type Config struct {
	// Pretty enables pretty-printed output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// Metrics receives render observations when non-nil.
	Metrics *Metrics
}

// Renderer serializes node trees according to its Config. The zero Config
// produces the canonical compact format, byte-identical to dom.Node.Render.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node tree to a markup string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	if node == nil {
		return nil
	}

	start := time.Now()
	var err error
	if r.config.Pretty {
		err = r.renderNode(w, node, 0)
	} else {
		err = node.RenderTo(w)
	}
	r.config.Metrics.observe(node, time.Since(start), err)
	return err
}

// renderNode renders one element in pretty mode.
func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int) error {
	if depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	// Opening tag
	if _, err := io.WriteString(w, "<"+node.Tag()); err != nil {
		return err
	}
	for _, attr := range node.Attributes() {
		if _, err := io.WriteString(w, " "+attr); err != nil {
			return err
		}
	}

	switch node.Closing() {
	case dom.ClosingSelfClosing:
		_, err := io.WriteString(w, "/>\n")
		return err
	case dom.ClosingVoid:
		_, err := io.WriteString(w, ">\n")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	// Block elements put each child on its own indented line; inline
	// elements keep their whole subtree compact.
	children := node.Children()
	block := len(children) > 0 && !isInlineElement(node.Tag())
	if block {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	for _, child := range children {
		switch {
		case child.Kind == dom.ChildText && block:
			if err := r.writeIndent(w, depth+1); err != nil {
				return err
			}
			if _, err := io.WriteString(w, child.Text+"\n"); err != nil {
				return err
			}
		case child.Kind == dom.ChildText:
			if _, err := io.WriteString(w, child.Text); err != nil {
				return err
			}
		case block:
			if err := r.renderNode(w, child.Node, depth+1); err != nil {
				return err
			}
		default:
			if err := child.Node.RenderTo(w); err != nil {
				return err
			}
		}
	}

	if block {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</"+node.Tag()+">"); err != nil {
		return err
	}
	if depth > 0 || block {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
