package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬ ┬┬─┐┌─┐┌─┐┬ ┬┌─┐
  ├─┤│ │├┬┘│ ││  ├─┤└─┐
  ┴ ┴└─┘┴└─└─┘└─┘┴ ┴└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "aurochs",
		Short: "Build HTML element trees from the command line",
		Long: `Aurochs builds HTML programmatically instead of by string concatenation.

The library creates nodes through a Document factory, mutates them with
setAttribute/appendChild-style methods, and renders the tree depth-first
to markup. This CLI exercises the same API:

  • demo    renders the canonical sample document
  • tags    lists the element catalog and closing policies
  • version prints build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		demoCmd(),
		tagsCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the aurochs ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
