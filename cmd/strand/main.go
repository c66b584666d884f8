// Command strand evaluates string diagram scripts.
//
// Scripts are written in a small Lisp: types are built from generator
// names, diagrams from boxes, cups and caps, and definitions are
// recorded with defty and defdiagram. The eval subcommand reports the
// definitions a script produces; norm reduces a named diagram to its
// normal form, optionally printing every rewrite step.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "strand",
		Short:   "Strand - a calculator for string diagrams",
		Version: Version,
		Long: `Strand evaluates scripts describing string diagrams with adjoint
types: wires can bend with cups and caps, and diagrams are compared up
to the yanking axioms.`,
	}

	rootCmd.AddCommand(evalCmd())
	rootCmd.AddCommand(normCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
