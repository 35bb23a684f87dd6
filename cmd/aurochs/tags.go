package main

import (
	"github.com/spf13/cobra"

	"github.com/aurochs-dev/aurochs/pkg/dom"
)

func tagsCmd() *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the element catalog",
		Long: `List every element in the catalog together with its closing policy:
paired, self-closing, or void. Tags outside the catalog resolve to paired.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tag := range dom.KnownElements() {
				policy := dom.ClosingFor(tag)
				if only != "" && policy.String() != only {
					continue
				}
				info("%-10s %s", tag, policy)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&only, "policy", "", "Show only tags with this policy (paired|self-closing|void)")

	return cmd
}
