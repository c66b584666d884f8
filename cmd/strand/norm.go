package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// normCmd returns the norm command.
func normCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "norm <script> <diagram>",
		Short: "Reduce a named diagram to its normal form",
		Long: `Reduce a named diagram to its normal form by removing snakes and
normalizing the layer order. With --trace, every intermediate diagram
of the rewrite sequence is printed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := evaluateFile(args[0])
			if err != nil {
				return err
			}

			name := args[1]
			d, ok := ws.Diagram(name)
			if !ok {
				return fmt.Errorf("%s: no diagram named %q", args[0], name)
			}

			bold := color.New(color.Bold)
			bold.Printf("%s : %s -> %s\n", name, d.Dom(), d.Cod())
			if trace {
				fmt.Printf("  %s\n", d)
			}

			norm := d.Normalizer()
			steps := 0
			for {
				current, ok := norm.Step()
				if !ok {
					break
				}
				steps++
				if trace {
					fmt.Printf("  %s\n", current)
				}
			}

			bold.Printf("normal form after %d step(s):\n", steps)
			fmt.Printf("  %s\n", norm.Current())
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "print every rewrite step")
	return cmd
}
