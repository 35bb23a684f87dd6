package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aurochs-dev/aurochs/el"
	"github.com/aurochs-dev/aurochs/pkg/dom"
	"github.com/aurochs-dev/aurochs/pkg/domdbg"
	"github.com/aurochs-dev/aurochs/pkg/render"
)

func demoCmd() *cobra.Command {
	var pretty bool
	var tree bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the sample document",
		Long: `Build the canonical sample document through the node API and print its
markup to stdout. With --tree the node structure is printed instead of the
markup; with --pretty the markup is indented.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := sampleDocument()

			if tree {
				return domdbg.Fprint(os.Stdout, doc)
			}

			renderer := render.New(render.Config{Pretty: pretty})
			out, err := renderer.RenderToString(doc)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the markup output")
	cmd.Flags().BoolVarP(&tree, "tree", "t", false, "Print the node structure instead of markup")

	return cmd
}

// sampleDocument assembles the demo page: a head with a title and a body
// with a paragraph plus a cloned, re-attributed line break.
func sampleDocument() *dom.Node {
	lineBreak := el.Br(el.Class("breaking"))
	lineBreak2 := lineBreak.CloneNode()
	_ = lineBreak2.SetAttribute("id", "still_breaking")

	return el.Html(el.Lang("en"),
		el.Head(el.Title("Aurochs")),
		el.Body(
			el.P("Hello World!"),
			lineBreak,
			lineBreak2,
		),
	)
}
