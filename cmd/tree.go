package cmd

import (
	"fmt"

	"casetree/internal/hierarchy"

	"github.com/spf13/cobra"
)

// newTreeCmd creates the Cobra command that renders the resolved suite
// forest of a project.
func newTreeCmd() *cobra.Command {
	var enriched bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Render the resolved suite hierarchy",
		Long: `Resolves the project's flat suite list into a forest and renders it.
Suites whose declared parent is missing from the snapshot become roots
and are marked as orphaned.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(cmd)
			if err != nil {
				return err
			}

			suites, err := eng.cache.Get(cmd.Context(), eng.project)
			if err != nil {
				return err
			}
			if enriched {
				suites = hierarchy.Enrich(suites)
			}

			roots := hierarchy.BuildTree(suites)
			fmt.Fprint(cmd.OutOrStdout(), eng.formatter.FormatSuiteTree(roots))
			return nil
		},
	}

	cmd.Flags().BoolVar(&enriched, "enriched", false, "Annotate suites with level, root and path before rendering")
	return cmd
}
