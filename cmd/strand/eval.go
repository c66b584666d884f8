package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chazu/strand/pkg/engine"
)

// evalCmd returns the eval command.
func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <script>",
		Short: "Evaluate a script and list its definitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := evaluateFile(args[0])
			if err != nil {
				return err
			}

			for _, name := range ws.TyNames() {
				t, _ := ws.Ty(name)
				fmt.Printf("type    %-16s %s\n", name, t)
			}
			for _, name := range ws.DiagramNames() {
				d, _ := ws.Diagram(name)
				fmt.Printf("diagram %-16s %s -> %s (%d layers)\n",
					name, d.Dom(), d.Cod(), d.Len())
			}
			if ws.Count() == 0 {
				fmt.Println("no definitions")
			}
			return nil
		},
	}
}

// evaluateFile runs a script through a fresh engine, printing eval
// errors to stderr.
func evaluateFile(path string) (*engine.Workspace, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	eng := engine.NewEngine()
	ws, evalErrs, err := eng.Evaluate(string(source))
	if err != nil {
		return nil, err
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			color.New(color.FgRed).Fprintf(os.Stderr, "%s: %s\n", path, e.Error())
		}
		return nil, fmt.Errorf("%s: %d evaluation error(s)", path, len(evalErrs))
	}
	return ws, nil
}
