package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "drsa",
		Short:         "drsa induces dominance-based decision rules from a preference-ordered table.",
		Long: `drsa reads an attribute schema and an object table, computes the
dominance-based rough approximations of a table's decision classes, and
induces a minimal cover of decision rules with VC-DomLEM.

Run 'drsa induce --help' for the induction command's flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInduceCmd())
	return root
}

// Main runs the drsa CLI and returns the process exit code.
func Main() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(Main())
}
