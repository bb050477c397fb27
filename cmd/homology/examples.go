package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/isaiahtx/simplicial-homology/complexes"
)

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples [name]",
		Short: "List catalog complexes, or print one as YAML",
		Long: `Without arguments, list the built-in complexes.
With a name, print that complex as a YAML document accepted by "compute".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, e := range complexes.Catalog() {
					fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Description)
				}
				return tw.Flush()
			}

			faces, err := complexes.Named(args[0])
			if err != nil {
				return fmt.Errorf("%w (known: %v)", err, complexes.Names())
			}

			return complexes.Encode(out, &complexes.Document{Name: args[0], Faces: faces})
		},
	}
}
